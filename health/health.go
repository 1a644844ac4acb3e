// Package health aggregates per-dependency health checks into one response
// and exposes them over HTTP probe endpoints.
package health

import (
	"context"
	"time"
)

// Status health status enum
type Status string

const (
	// StatusHealthy every check passed
	StatusHealthy Status = "healthy"
	// StatusDegraded some non-critical checks failed
	StatusDegraded Status = "degraded"
	// StatusUnhealthy at least one check failed
	StatusUnhealthy Status = "unhealthy"
)

// Checker a single named health check
type Checker interface {
	// Name returns the check name, used as the key in the response
	Name() string
	// Check returns nil when the dependency is healthy
	Check(ctx context.Context) error
}

// CheckResult result of a single check
type CheckResult struct {
	Name      string        `json:"name"`
	Status    Status        `json:"status"`
	Message   string        `json:"message,omitempty"`
	Error     string        `json:"error,omitempty"`
	Timestamp time.Time     `json:"timestamp"`
	Duration  time.Duration `json:"duration,omitempty"`
}

// Response aggregated health check response
type Response struct {
	Status    Status                 `json:"status"`
	Timestamp time.Time              `json:"timestamp"`
	Duration  time.Duration          `json:"duration"`
	Checks    map[string]CheckResult `json:"checks"`
	Metadata  map[string]interface{} `json:"metadata,omitempty"`
}

// IsHealthy reports whether every check passed
func (r *Response) IsHealthy() bool {
	return r.Status == StatusHealthy
}
