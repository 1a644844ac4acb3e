package middleware

import (
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"
)

// CORSConfig CORS middleware configuration
type CORSConfig struct {
	// AllowOrigins allowed origins (default ["*"])
	AllowOrigins []string

	// AllowMethods allowed HTTP methods
	AllowMethods []string

	// AllowHeaders allowed request headers
	AllowHeaders []string

	// ExposeHeaders response headers exposed to the client
	ExposeHeaders []string

	// AllowCredentials allows cookies and auth headers
	// AllowOrigins must not be "*" when true
	AllowCredentials bool

	// MaxAge preflight cache duration in seconds (default 43200)
	MaxAge int
}

// DefaultCORSConfig returns the default configuration
func DefaultCORSConfig() CORSConfig {
	return CORSConfig{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "HEAD", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{},
		AllowCredentials: false,
		MaxAge:           43200,
	}
}

// CORS creates the CORS middleware with default config
func CORS() gin.HandlerFunc {
	return CORSWithConfig(DefaultCORSConfig())
}

// CORSWithConfig creates the CORS middleware
// Preflight OPTIONS requests are answered with 204 directly
func CORSWithConfig(cfg CORSConfig) gin.HandlerFunc {
	if len(cfg.AllowOrigins) == 0 {
		cfg.AllowOrigins = []string{"*"}
	}
	if len(cfg.AllowMethods) == 0 {
		cfg.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "HEAD", "OPTIONS"}
	}
	if len(cfg.AllowHeaders) == 0 {
		cfg.AllowHeaders = []string{"Origin", "Content-Type", "Accept", "Authorization"}
	}
	if cfg.MaxAge == 0 {
		cfg.MaxAge = 43200
	}

	allowMethodsStr := strings.Join(cfg.AllowMethods, ", ")
	allowHeadersStr := strings.Join(cfg.AllowHeaders, ", ")
	exposeHeadersStr := strings.Join(cfg.ExposeHeaders, ", ")

	return func(c *gin.Context) {
		origin := c.Request.Header.Get("Origin")

		allowOrigin := ""
		if len(cfg.AllowOrigins) == 1 && cfg.AllowOrigins[0] == "*" {
			allowOrigin = "*"
		} else if origin != "" {
			for _, allowedOrigin := range cfg.AllowOrigins {
				if allowedOrigin == origin {
					allowOrigin = origin
					break
				}
			}
		}

		// disallowed origin: pass through without CORS headers
		if allowOrigin == "" && origin != "" {
			c.Next()
			return
		}

		if allowOrigin != "" {
			c.Writer.Header().Set("Access-Control-Allow-Origin", allowOrigin)
		}

		c.Writer.Header().Set("Access-Control-Allow-Methods", allowMethodsStr)
		c.Writer.Header().Set("Access-Control-Allow-Headers", allowHeadersStr)

		if len(cfg.ExposeHeaders) > 0 {
			c.Writer.Header().Set("Access-Control-Expose-Headers", exposeHeadersStr)
		}

		if cfg.AllowCredentials {
			c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		}

		if c.Request.Method == "OPTIONS" {
			c.Writer.Header().Set("Access-Control-Max-Age", fmt.Sprintf("%d", cfg.MaxAge))
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}
