package server

import (
	"github.com/articledry/dryer/server/middleware"
	"github.com/articledry/dryer/validation"
)

// Config holds HTTP server configuration.
type Config struct {
	Host              string                `yaml:"host" mapstructure:"host"`
	Port              int                   `yaml:"port" mapstructure:"port"`
	ReadTimeout       int                   `yaml:"read_timeout" mapstructure:"read_timeout"`   // seconds
	WriteTimeout      int                   `yaml:"write_timeout" mapstructure:"write_timeout"` // seconds
	IdleTimeout       int                   `yaml:"idle_timeout" mapstructure:"idle_timeout"`   // seconds
	MaxBodySize       string                `yaml:"max_body_size" mapstructure:"max_body_size"` // e.g. "10MB"
	RequestsPerMinute int                   `yaml:"requests_per_minute" mapstructure:"requests_per_minute"`
	CORS              middleware.CORSConfig `yaml:"cors" mapstructure:"cors"`
}

// ApplyDefaults sets sensible default values for unset fields.
//
// WriteTimeout intentionally defaults to zero: processing responses
// stream token by token and a global write deadline would cut off
// long generations.
func (c *Config) ApplyDefaults() {
	if c.Port == 0 {
		c.Port = 8080
	}
	if c.ReadTimeout == 0 {
		c.ReadTimeout = 15
	}
	if c.IdleTimeout == 0 {
		c.IdleTimeout = 60
	}
	if c.MaxBodySize == "" {
		c.MaxBodySize = "10MB"
	}
	if len(c.CORS.AllowedOrigins) == 0 {
		c.CORS.AllowedOrigins = []string{"*"}
	}
	if len(c.CORS.AllowedMethods) == 0 {
		c.CORS.AllowedMethods = []string{"GET", "POST", "OPTIONS"}
	}
	if len(c.CORS.AllowedHeaders) == 0 {
		c.CORS.AllowedHeaders = []string{"Origin", "Content-Type", "Accept", "Authorization"}
	}
}

// Validate checks the configuration for invalid values.
func (c *Config) Validate() error {
	return validation.New().
		Range("server.port", c.Port, 0, 65535).
		Min("server.read_timeout", c.ReadTimeout, 0).
		Min("server.write_timeout", c.WriteTimeout, 0).
		Min("server.idle_timeout", c.IdleTimeout, 0).
		Min("server.requests_per_minute", c.RequestsPerMinute, 0).
		Err()
}
