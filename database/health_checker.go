package database

import (
	"context"
	"fmt"
)

// HealthChecker database connectivity check
type HealthChecker struct {
	manager *Manager
}

// NewHealthChecker creates a database health checker
func NewHealthChecker(manager *Manager) *HealthChecker {
	return &HealthChecker{manager: manager}
}

// Name returns the check name
func (h *HealthChecker) Name() string {
	return "database"
}

// Check pings all configured database instances
func (h *HealthChecker) Check(ctx context.Context) error {
	if h.manager == nil {
		return fmt.Errorf("database manager not initialized")
	}
	return h.manager.Ping()
}
