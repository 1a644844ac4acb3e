package cache

import (
	"context"
	"fmt"
)

// HealthChecker cache connectivity check, backed by the store's live ping
type HealthChecker struct {
	service *Service
}

// NewHealthChecker creates a cache health checker
func NewHealthChecker(service *Service) *HealthChecker {
	return &HealthChecker{service: service}
}

// Name returns the check name
func (h *HealthChecker) Name() string {
	return "cache"
}

// Check round-trips to the cache store
func (h *HealthChecker) Check(ctx context.Context) error {
	if h.service == nil {
		return fmt.Errorf("cache service not initialized")
	}
	return h.service.Ping(ctx)
}
