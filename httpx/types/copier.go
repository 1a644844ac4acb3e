// Package types holds shared request/response helper types for the HTTP layer.
package types

import "github.com/jinzhu/copier"

// CopyOption copy behavior flags
type CopyOption struct {
	IgnoreEmpty bool
	DeepCopy    bool
}

// Copy copies matching fields from src into dst
func Copy(dst, src interface{}) error {
	return copier.Copy(dst, src)
}

// CopyWithOption copies matching fields with explicit options
// IgnoreEmpty gives merge semantics: zero-valued src fields leave dst alone
func CopyWithOption(dst, src interface{}, opt CopyOption) error {
	return copier.CopyWithOption(dst, src, copier.Option{
		IgnoreEmpty: opt.IgnoreEmpty,
		DeepCopy:    opt.DeepCopy,
	})
}

// CopySlice converts a slice element by element
// A nil input yields a nil output so cache semantics for absent results hold
func CopySlice[S, D any](src []S, converter func(S) D) []D {
	if src == nil {
		return nil
	}
	dst := make([]D, len(src))
	for i, s := range src {
		dst[i] = converter(s)
	}
	return dst
}
