package pipeline

import (
	"fmt"

	"github.com/articledry/dryer/plugin"
)

// PluginSpec names one plugin and its options in a declarative
// pipeline configuration.
type PluginSpec struct {
	Name    string         `yaml:"name" json:"name" mapstructure:"name"`
	Options map[string]any `yaml:"options" json:"options" mapstructure:"options"`
}

// Config is the declarative form of a pipeline: an ordered plugin list
// plus global options merged under each plugin's own options.
type Config struct {
	Plugins       []PluginSpec   `yaml:"plugins" json:"plugins" mapstructure:"plugins"`
	GlobalOptions map[string]any `yaml:"globalOptions" json:"globalOptions" mapstructure:"global_options"`
}

// Validate checks that the config names at least one plugin and no
// plugin entry is blank.
func (c Config) Validate() error {
	if len(c.Plugins) == 0 {
		return fmt.Errorf("pipeline: no plugins configured")
	}
	for i, spec := range c.Plugins {
		if spec.Name == "" {
			return fmt.Errorf("pipeline: plugin %d has no name", i)
		}
	}
	return nil
}

// FromConfig assembles a Pipeline by resolving each named plugin
// against the registry. Global options are merged under each plugin's
// own options; plugin-specific keys win on conflict.
func FromConfig(reg *plugin.Registry, cfg Config, opts ...Option) (*Pipeline, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	plugins := make([]plugin.Plugin, 0, len(cfg.Plugins))
	for _, spec := range cfg.Plugins {
		merged := mergeOptions(cfg.GlobalOptions, spec.Options)
		pl, err := reg.Create(spec.Name, merged)
		if err != nil {
			return nil, err
		}
		plugins = append(plugins, pl)
	}

	return New(plugins, opts...), nil
}

func mergeOptions(global, own map[string]any) map[string]any {
	if len(global) == 0 && len(own) == 0 {
		return nil
	}
	merged := make(map[string]any, len(global)+len(own))
	for k, v := range global {
		merged[k] = v
	}
	for k, v := range own {
		merged[k] = v
	}
	return merged
}
