package redis

import (
	"context"
	"fmt"
	"sync"

	"github.com/KOMKZ/go-pubsite-service/logger"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// Manager Redis manager (supports multiple named instances)
type Manager struct {
	instances map[string]*redis.Client
	configs   map[string]Config
	logger    *logger.CtxZapLogger
	mu        sync.RWMutex
}

// NewManager creates a Redis manager and connects all configured instances
func NewManager(configs map[string]Config, log *logger.CtxZapLogger) (*Manager, error) {
	if log == nil {
		return nil, fmt.Errorf("logger cannot be nil")
	}

	m := &Manager{
		instances: make(map[string]*redis.Client),
		configs:   make(map[string]Config),
		logger:    log,
	}

	for name, cfg := range configs {
		cfg.ApplyDefaults()
		if err := cfg.Validate(); err != nil {
			return nil, fmt.Errorf("invalid config for %s: %w", name, err)
		}

		client, err := m.createClient(cfg)
		if err != nil {
			return nil, fmt.Errorf("failed to create client %s: %w", name, err)
		}

		m.instances[name] = client
		m.configs[name] = cfg

		m.logger.Debug("redis connected",
			zap.String("name", name),
			zap.String("addr", cfg.Addr))
	}

	return m, nil
}

// createClient creates and verifies one client
func (m *Manager) createClient(cfg Config) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:         cfg.Addr,
		Password:     cfg.Password,
		DB:           cfg.DB,
		PoolSize:     cfg.PoolSize,
		MinIdleConns: cfg.MinIdleConns,
		MaxRetries:   cfg.MaxRetries,
		DialTimeout:  cfg.DialTimeout,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	})

	ctx := context.Background()
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("ping failed: %w", err)
	}

	return client, nil
}

// Client returns a named instance (nil if not configured)
func (m *Manager) Client(name string) *redis.Client {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.instances[name]
}

// Ping checks all connections
func (m *Manager) Ping(ctx context.Context) error {
	m.mu.RLock()
	defer m.mu.RUnlock()

	for name, client := range m.instances {
		if err := client.Ping(ctx).Err(); err != nil {
			return fmt.Errorf("ping %s failed: %w", name, err)
		}
	}
	return nil
}

// InstanceNames returns all configured instance names
func (m *Manager) InstanceNames() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()

	names := make([]string, 0, len(m.instances))
	for name := range m.instances {
		names = append(names, name)
	}
	return names
}

// Close closes all connections
func (m *Manager) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for name, client := range m.instances {
		if err := client.Close(); err != nil {
			m.logger.Error("failed to close redis connection",
				zap.String("name", name),
				zap.Error(err))
		}
	}
	return nil
}

// Shutdown implements the samber/do Shutdownable interface
func (m *Manager) Shutdown() error {
	return m.Close()
}
