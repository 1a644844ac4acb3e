package redis

import (
	"context"
	"fmt"
)

// HealthChecker Redis connectivity check
type HealthChecker struct {
	manager *Manager
}

// NewHealthChecker creates a Redis health checker
func NewHealthChecker(manager *Manager) *HealthChecker {
	return &HealthChecker{manager: manager}
}

// Name returns the check name
func (h *HealthChecker) Name() string {
	return "redis"
}

// Check pings every configured Redis instance
func (h *HealthChecker) Check(ctx context.Context) error {
	if h.manager == nil {
		return fmt.Errorf("redis manager not initialized")
	}
	return h.manager.Ping(ctx)
}
