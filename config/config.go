package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/articledry/dryer/llm"
	"github.com/articledry/dryer/logger"
	"github.com/articledry/dryer/pipeline"
	"github.com/articledry/dryer/server"
	"github.com/articledry/dryer/validation"
)

// Config is the full configuration of the dryer service.
type Config struct {
	Name        string `yaml:"name" mapstructure:"name" validate:"required"`
	Environment string `yaml:"environment" mapstructure:"environment" validate:"omitempty,oneof=development staging production"`
	Version     string `yaml:"version" mapstructure:"version"`
	Debug       bool   `yaml:"debug" mapstructure:"debug"`

	Logging   logger.Config   `yaml:"logging" mapstructure:"logging"`
	Server    server.Config   `yaml:"server" mapstructure:"server"`
	LLM       llm.Config      `yaml:"llm" mapstructure:"llm"`
	Pipeline  pipeline.Config `yaml:"pipeline" mapstructure:"pipeline"`
	Telemetry TelemetryConfig `yaml:"telemetry" mapstructure:"telemetry"`
}

// TelemetryConfig controls trace and metric export.
type TelemetryConfig struct {
	Enabled    bool    `yaml:"enabled" mapstructure:"enabled"`
	Endpoint   string  `yaml:"endpoint" mapstructure:"endpoint"`
	Insecure   bool    `yaml:"insecure" mapstructure:"insecure"`
	SampleRate float64 `yaml:"sample_rate" mapstructure:"sample_rate"`
}

// ApplyDefaults fills in unset fields.
func (c *Config) ApplyDefaults() {
	if c.Name == "" {
		c.Name = "dryer"
	}
	if c.Environment == "" {
		c.Environment = "development"
	}
	if c.Environment == "development" {
		c.Debug = true
	}
	c.Logging.ApplyDefaults()
	c.Server.ApplyDefaults()
	if c.LLM.Provider == "" {
		c.LLM.Provider = "openai"
	}
	if c.Telemetry.SampleRate == 0 {
		c.Telemetry.SampleRate = 1.0
	}
}

// Validate checks the configuration. Struct tags cover the simple
// shapes; nested sections validate themselves.
func (c *Config) Validate() error {
	if err := validation.ValidateStruct(c); err != nil {
		return err
	}
	if err := c.Logging.Validate(); err != nil {
		return fmt.Errorf("config.logging: %w", err)
	}
	if err := c.Server.Validate(); err != nil {
		return fmt.Errorf("config.server: %w", err)
	}
	if len(c.Pipeline.Plugins) > 0 {
		if err := c.Pipeline.Validate(); err != nil {
			return fmt.Errorf("config.pipeline: %w", err)
		}
	}
	return nil
}

// Load reads the service configuration from config files and the
// environment, applies defaults, and validates the result.
func Load(opts ...LoaderOption) (*Config, error) {
	var cfg Config
	if err := LoadInto("dryer", &cfg, opts...); err != nil {
		return nil, err
	}
	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// LoadPipelineFile reads a standalone pipeline definition from a YAML
// file (a plugins list with options, plus optional globalOptions).
func LoadPipelineFile(path string) (pipeline.Config, error) {
	var cfg pipeline.Config
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("config: read pipeline file: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("config: parse pipeline file %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config: pipeline file %s: %w", path, err)
	}
	return cfg, nil
}
