// Package plugins assembles the built-in plugin set into a registry.
// Callers get a fresh registry and create fresh plugin instances per
// pipeline run, so no state leaks between runs.
package plugins

import (
	"time"

	"github.com/articledry/dryer/llm"
	"github.com/articledry/dryer/plugin"
	"github.com/articledry/dryer/plugins/fetch"
	"github.com/articledry/dryer/plugins/stats"
	"github.com/articledry/dryer/plugins/summarize"
	"github.com/articledry/dryer/plugins/wordlevel"
)

// Builtin returns a registry populated with the built-in plugins:
// article-fetch, text-statistics, summarizer and word-level-analyzer.
func Builtin() *plugin.Registry {
	reg := plugin.NewRegistry()
	reg.MustRegister(fetch.Name, plugin.FactoryRecipe(func() plugin.Plugin { return fetch.New() }))
	reg.MustRegister(stats.Name, plugin.FactoryRecipe(func() plugin.Plugin { return stats.New() }))
	reg.MustRegister(wordlevel.Name, plugin.FactoryRecipe(func() plugin.Plugin { return wordlevel.New() }))
	reg.MustRegister(summarize.Name, plugin.ConstructorRecipe(newSummarizer))
	return reg
}

// newSummarizer builds the summarizer from generator options. The
// provider is constructed per instance so each run gets its own client.
func newSummarizer(options map[string]any) (plugin.Plugin, error) {
	cfg := llm.Config{
		Provider:    plugin.StringOption(options, "provider", "openai"),
		BaseURL:     plugin.StringOption(options, "base_url", ""),
		APIKey:      plugin.StringOption(options, "api_key", ""),
		Model:       plugin.StringOption(options, "model", ""),
		Temperature: plugin.FloatOption(options, "temperature", 0),
		MaxTokens:   plugin.IntOption(options, "max_tokens", 0),
	}
	if secs := plugin.IntOption(options, "timeout_seconds", 0); secs > 0 {
		cfg.Timeout = time.Duration(secs) * time.Second
	}

	p, err := summarize.FromConfig(cfg)
	if err != nil {
		return nil, err
	}
	if err := p.Configure(options); err != nil {
		return nil, err
	}
	return p, nil
}
