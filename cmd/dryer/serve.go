package main

import (
	"context"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/articledry/dryer/component"
	"github.com/articledry/dryer/config"
	"github.com/articledry/dryer/logger"
	"github.com/articledry/dryer/observability"
	"github.com/articledry/dryer/pipeline"
	"github.com/articledry/dryer/plugins"
	"github.com/articledry/dryer/server"
	"github.com/articledry/dryer/util"
)

func newServeCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the article processing HTTP server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context(), flags)
		},
	}
}

func runServe(ctx context.Context, flags *rootFlags) error {
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

	var pipelineOpts []pipeline.Option
	if cfg.Telemetry.Enabled {
		shutdown, metrics, err := initTelemetry(ctx, cfg)
		if err != nil {
			return err
		}
		defer shutdown()
		pipelineOpts = append(pipelineOpts, pipeline.WithMetrics(metrics))
	}

	log.Info("Configuration loaded", map[string]interface{}{
		"environment": cfg.Environment,
		"provider":    cfg.LLM.Provider,
		"api_key":     util.MaskSecret(cfg.LLM.APIKey, 6),
	})

	registry := component.NewRegistry()

	srv := server.New(cfg.Server, log)
	srv.ApplyDefaults(cfg.Name, registry.HealthAll)
	srv.RegisterProcessRoutes(plugins.Builtin(), serverPipeline(cfg), pipelineOpts...)

	if err := registry.Register(server.NewComponent(srv)); err != nil {
		return err
	}
	if err := registry.StartAll(ctx); err != nil {
		return err
	}

	<-ctx.Done()
	log.Info("Shutdown signal received")

	stopCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	return registry.StopAll(stopCtx)
}

// serverPipeline derives the default pipeline served to requests that
// carry no pipeline of their own. The configured LLM settings flow in
// as global options so a summarizer stage named by any request picks
// them up.
func serverPipeline(cfg *config.Config) pipeline.Config {
	pc := cfg.Pipeline
	if len(pc.Plugins) == 0 {
		pc.Plugins = []pipeline.PluginSpec{
			{Name: "text-statistics"},
			{Name: "word-level-analyzer"},
		}
	}

	return applyLLMGlobals(pc, cfg)
}

// initTelemetry starts the OTLP trace and metric exporters and returns
// a shutdown function plus the pipeline instruments.
func initTelemetry(ctx context.Context, cfg *config.Config) (func(), *observability.Metrics, error) {
	tracerCfg := observability.DefaultTracerConfig(cfg.Name)
	tracerCfg.ServiceVersion = cfg.Version
	tracerCfg.Environment = cfg.Environment
	tracerCfg.Endpoint = cfg.Telemetry.Endpoint
	tracerCfg.Insecure = cfg.Telemetry.Insecure
	tracerCfg.SampleRate = cfg.Telemetry.SampleRate

	tp, err := observability.InitTracer(ctx, tracerCfg)
	if err != nil {
		return nil, nil, err
	}

	meterCfg := observability.DefaultMeterConfig(cfg.Name)
	meterCfg.ServiceVersion = cfg.Version
	meterCfg.Environment = cfg.Environment
	meterCfg.Endpoint = cfg.Telemetry.Endpoint
	meterCfg.Insecure = cfg.Telemetry.Insecure

	mp, err := observability.InitMeter(ctx, meterCfg)
	if err != nil {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = tp.Shutdown(shutdownCtx)
		return nil, nil, err
	}

	metrics, err := observability.NewMetrics(observability.Meter("pipeline"))
	if err != nil {
		logger.Warn("Pipeline metrics unavailable", map[string]interface{}{
			"error": err.Error(),
		})
	}

	shutdown := func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := mp.Shutdown(shutdownCtx); err != nil {
			logger.Warn("Meter shutdown error", map[string]interface{}{"error": err.Error()})
		}
		if err := tp.Shutdown(shutdownCtx); err != nil {
			logger.Warn("Tracer shutdown error", map[string]interface{}{"error": err.Error()})
		}
	}
	return shutdown, metrics, nil
}
