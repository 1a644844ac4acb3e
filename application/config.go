// Package application wires configuration, infrastructure managers, domain
// services and the HTTP server into one runnable app.
package application

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/KOMKZ/go-pubsite-service/database"
	"github.com/KOMKZ/go-pubsite-service/httpx"
	"github.com/KOMKZ/go-pubsite-service/logger"
	"github.com/KOMKZ/go-pubsite-service/middleware"
	"github.com/KOMKZ/go-pubsite-service/redis"
)

// EnvPrefix environment variable prefix for config overrides
const EnvPrefix = "PUBSITE"

// Config full application configuration
type Config struct {
	Server     ServerConfig               `mapstructure:"server"`
	Logger     logger.Config              `mapstructure:"logger"`
	Database   map[string]database.Config `mapstructure:"database"`
	Redis      map[string]redis.Config    `mapstructure:"redis"`
	Cache      CacheConfig                `mapstructure:"cache"`
	Httpx      httpx.ErrorLoggingConfig   `mapstructure:"httpx"`
	Middleware MiddlewareConfig           `mapstructure:"middleware"`
}

// ServerConfig HTTP server configuration
type ServerConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	Mode            string        `mapstructure:"mode"` // debug, release, test
	ReadTimeout     time.Duration `mapstructure:"read_timeout"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`

	// AutoMigrate runs schema migration on startup (development convenience)
	AutoMigrate bool `mapstructure:"auto_migrate"`
}

// CacheConfig read-through cache configuration
type CacheConfig struct {
	// Instance redis instance name to back the cache
	Instance string `mapstructure:"instance"`

	// KeyPrefix namespace prefix applied to every cache key
	KeyPrefix string `mapstructure:"key_prefix"`

	// DefaultTTL entry lifetime (TTL backstop for missed invalidations)
	DefaultTTL time.Duration `mapstructure:"default_ttl"`
}

// MiddlewareConfig middleware toggles
type MiddlewareConfig struct {
	CORS       CORSConfig       `mapstructure:"cors"`
	RequestLog RequestLogConfig `mapstructure:"request_log"`
}

// CORSConfig CORS middleware toggle
type CORSConfig struct {
	Enable       bool     `mapstructure:"enable"`
	AllowOrigins []string `mapstructure:"allow_origins"`
}

// RequestLogConfig request log middleware configuration
type RequestLogConfig struct {
	SkipPaths []string `mapstructure:"skip_paths"`
}

// DatabaseInstance name of the primary database instance
const DatabaseInstance = "master"

// ApplyDefaults fills zero-valued fields
func (c *Config) ApplyDefaults() {
	if c.Server.Host == "" {
		c.Server.Host = "0.0.0.0"
	}
	if c.Server.Port == 0 {
		c.Server.Port = 8080
	}
	if c.Server.Mode == "" {
		c.Server.Mode = "release"
	}
	if c.Server.ReadTimeout == 0 {
		c.Server.ReadTimeout = 10 * time.Second
	}
	if c.Server.WriteTimeout == 0 {
		c.Server.WriteTimeout = 10 * time.Second
	}
	if c.Server.ShutdownTimeout == 0 {
		c.Server.ShutdownTimeout = 10 * time.Second
	}
	c.Logger.ApplyDefaults()
	if c.Cache.Instance == "" {
		c.Cache.Instance = "default"
	}
	if c.Cache.KeyPrefix == "" {
		c.Cache.KeyPrefix = "cache"
	}
	if c.Cache.DefaultTTL == 0 {
		c.Cache.DefaultTTL = 10 * time.Minute
	}
	if len(c.Middleware.RequestLog.SkipPaths) == 0 {
		c.Middleware.RequestLog.SkipPaths = []string{"/health", "/health/liveness", "/health/readiness"}
	}
}

// Validate checks cross-section consistency
func (c *Config) Validate() error {
	if len(c.Database) == 0 {
		return fmt.Errorf("config: no database instance configured")
	}
	if _, ok := c.Database[DatabaseInstance]; !ok {
		return fmt.Errorf("config: database instance %q missing", DatabaseInstance)
	}
	if len(c.Redis) == 0 {
		return fmt.Errorf("config: no redis instance configured")
	}
	if _, ok := c.Redis[c.Cache.Instance]; !ok {
		return fmt.Errorf("config: cache redis instance %q missing", c.Cache.Instance)
	}
	for name, dbCfg := range c.Database {
		if err := dbCfg.Validate(); err != nil {
			return fmt.Errorf("config: database %q: %w", name, err)
		}
	}
	return nil
}

// LoadConfig reads the YAML config file with environment overrides
// (PUBSITE_ prefix, dots become underscores, e.g. PUBSITE_SERVER_PORT)
func LoadConfig(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// corsConfig maps the config section onto the middleware config
func (c *Config) corsConfig() middleware.CORSConfig {
	cfg := middleware.DefaultCORSConfig()
	if len(c.Middleware.CORS.AllowOrigins) > 0 {
		cfg.AllowOrigins = c.Middleware.CORS.AllowOrigins
	}
	return cfg
}
