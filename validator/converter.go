// Package validator bridges ozzo-validation results into the service's
// hierarchical error codes.
package validator

import (
	"net/http"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/KOMKZ/go-pubsite-service/errcode"
)

// ErrValidation generic request validation failure, field detail in Data
var ErrValidation = errcode.New(
	errcode.ModuleCommon, 1010,
	"common", "error.common.validation_failed", "request validation failed",
	http.StatusBadRequest,
)

// Validatable a request type that can validate itself
type Validatable interface {
	Validate() error
}

// ValidateRequest runs the request's own validation and converts
// ozzo-validation errors into a LayeredError with per-field detail
func ValidateRequest(req Validatable) error {
	err := req.Validate()
	if err == nil {
		return nil
	}

	if validationErrs, ok := err.(validation.Errors); ok {
		return ConvertValidationError(validationErrs)
	}

	return err
}

// ConvertValidationError flattens ozzo-validation field errors into
// the generic validation LayeredError
func ConvertValidationError(validationErrs validation.Errors) error {
	fields := make(map[string]string)
	for field, fieldErr := range validationErrs {
		if fieldErr != nil {
			fields[field] = fieldErr.Error()
		}
	}

	return ErrValidation.WithData("fields", fields)
}
