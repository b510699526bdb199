package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/articledry/dryer/config"
	"github.com/articledry/dryer/logger"
	"github.com/articledry/dryer/pipeline"
	"github.com/articledry/dryer/plugins"
	"github.com/articledry/dryer/sse"
)

func newProcessCmd(flags *rootFlags) *cobra.Command {
	var (
		url          string
		file         string
		pipelineFile string
	)

	cmd := &cobra.Command{
		Use:   "process",
		Short: "Run a pipeline over one article and stream events to stdout",
		Long: `Run a processing pipeline over a single article and print the
event stream as JSON lines, ending with the [DONE] sentinel.

The article comes from --url (resolved by the fetch stage), --file, or
stdin when neither is given.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runProcess(cmd.Context(), flags, url, file, pipelineFile)
		},
	}

	cmd.Flags().StringVar(&url, "url", "", "Fetch the article from this URL")
	cmd.Flags().StringVar(&file, "file", "", `Read the article from this file ("-" for stdin)`)
	cmd.Flags().StringVar(&pipelineFile, "pipeline", "", "Pipeline definition YAML file")
	return cmd
}

func runProcess(ctx context.Context, flags *rootFlags, url, file, pipelineFile string) error {
	cfg, err := config.Load(
		config.WithConfigFile(flags.configFile),
		config.WithEnvFile(flags.envFile),
	)
	if err != nil {
		return err
	}

	log := logger.New(&cfg.Logging, cfg.Name)
	logger.SetGlobalLogger(log)

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	payload, err := readInput(url, file)
	if err != nil {
		return err
	}

	pc, err := processPipeline(cfg, pipelineFile, url != "")
	if err != nil {
		return err
	}

	p, err := pipeline.FromConfig(plugins.Builtin(), pc, pipeline.WithLogger(log))
	if err != nil {
		return err
	}

	p.BindStreaming(sse.NewEventWriter(os.Stdout))
	return p.ProcessStreamingRequest(ctx, payload, nil)
}

// readInput resolves the article payload. A URL is passed through as
// the payload so the fetch stage can resolve it.
func readInput(url, file string) (string, error) {
	if url != "" {
		if file != "" {
			return "", fmt.Errorf("--url and --file are mutually exclusive")
		}
		return url, nil
	}

	if file != "" && file != "-" {
		data, err := os.ReadFile(file)
		if err != nil {
			return "", fmt.Errorf("read input file: %w", err)
		}
		return string(data), nil
	}

	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", fmt.Errorf("read stdin: %w", err)
	}
	text := strings.TrimSpace(string(data))
	if text == "" {
		return "", fmt.Errorf("no input: pass --url, --file, or pipe text on stdin")
	}
	return text, nil
}

// processPipeline picks the pipeline for a CLI run: an explicit
// --pipeline file wins, then the configured pipeline, then a local
// default. When the input is a URL a fetch stage is prepended unless
// one is already present.
func processPipeline(cfg *config.Config, pipelineFile string, fromURL bool) (pipeline.Config, error) {
	var pc pipeline.Config
	switch {
	case pipelineFile != "":
		loaded, err := config.LoadPipelineFile(pipelineFile)
		if err != nil {
			return pipeline.Config{}, err
		}
		pc = loaded
	case len(cfg.Pipeline.Plugins) > 0:
		pc = cfg.Pipeline
	default:
		pc = pipeline.Config{Plugins: []pipeline.PluginSpec{
			{Name: "text-statistics"},
			{Name: "word-level-analyzer"},
		}}
	}

	if fromURL && !hasPlugin(pc, "article-fetch") {
		pc.Plugins = append([]pipeline.PluginSpec{{Name: "article-fetch"}}, pc.Plugins...)
	}

	return applyLLMGlobals(pc, cfg), nil
}

// applyLLMGlobals folds the configured LLM settings into the pipeline's
// global options so any stage that drives a provider picks them up.
// Explicit global options win.
func applyLLMGlobals(pc pipeline.Config, cfg *config.Config) pipeline.Config {
	global := make(map[string]any, len(pc.GlobalOptions)+4)
	for k, v := range pc.GlobalOptions {
		global[k] = v
	}
	setIfAbsent(global, "provider", cfg.LLM.Provider)
	setIfAbsent(global, "base_url", cfg.LLM.BaseURL)
	setIfAbsent(global, "api_key", cfg.LLM.APIKey)
	setIfAbsent(global, "model", cfg.LLM.Model)
	pc.GlobalOptions = global
	return pc
}

func setIfAbsent(m map[string]any, key, value string) {
	if value == "" {
		return
	}
	if _, ok := m[key]; !ok {
		m[key] = value
	}
}

func hasPlugin(pc pipeline.Config, name string) bool {
	for _, spec := range pc.Plugins {
		if spec.Name == name {
			return true
		}
	}
	return false
}
