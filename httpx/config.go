package httpx

// ErrorLoggingConfig controls server-side logging inside HandleError
type ErrorLoggingConfig struct {
	// Enable turns error logging on (default off; the response itself
	// already carries the code and message)
	Enable bool `mapstructure:"enable" json:"enable"`

	// IgnoreHTTPStatus lists HTTP status codes that are never logged,
	// e.g. []int{400, 404} for expected client errors
	IgnoreHTTPStatus []int `mapstructure:"ignore_http_status" json:"ignore_http_status"`

	// LogLevel level for business errors: error, warn or info (default error)
	LogLevel string `mapstructure:"log_level" json:"log_level"`
}

// DefaultErrorLoggingConfig returns the default configuration
func DefaultErrorLoggingConfig() ErrorLoggingConfig {
	return ErrorLoggingConfig{
		Enable:           false,
		IgnoreHTTPStatus: []int{},
		LogLevel:         "error",
	}
}
