package pipeline

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/articledry/dryer/errors"
	"github.com/articledry/dryer/logger"
	"github.com/articledry/dryer/observability"
	"github.com/articledry/dryer/plugin"
	"github.com/articledry/dryer/sse"
)

// Run states.
const (
	stateIdle int32 = iota
	stateRunning
	stateCompleted
	stateFailed
)

// Pipeline feeds one content item through an ordered list of plugins.
type Pipeline struct {
	plugins []plugin.Plugin
	sink    plugin.Sink
	stream  *sse.EventWriter
	log     *logger.Logger
	metrics *observability.Metrics
	state   atomic.Int32
}

// Option configures a Pipeline.
type Option func(*Pipeline)

// WithSink sets the output sink shared by all stages.
func WithSink(sink plugin.Sink) Option {
	return func(p *Pipeline) { p.sink = sink }
}

// WithLogger sets the pipeline's logger.
func WithLogger(log *logger.Logger) Option {
	return func(p *Pipeline) { p.log = log }
}

// WithMetrics sets the instruments recorded per run and stage.
func WithMetrics(m *observability.Metrics) Option {
	return func(p *Pipeline) { p.metrics = m }
}

// New creates a Pipeline over the given plugins, in order.
func New(plugins []plugin.Plugin, opts ...Option) *Pipeline {
	p := &Pipeline{
		plugins: plugins,
		log:     logger.WithComponent("pipeline"),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Plugins returns the configured plugins in execution order.
func (p *Pipeline) Plugins() []plugin.Plugin {
	return p.plugins
}

// SetSink replaces the pipeline's sink. Must not be called while a run
// is in flight.
func (p *Pipeline) SetSink(sink plugin.Sink) {
	p.sink = sink
}

// Process runs every plugin in declared order over the initial payload,
// feeding each stage the previous stage's output. On any stage failure
// it emits exactly one error-kind OutputEvent naming the plugin, then
// returns a PLUGIN_EXECUTION error wrapping the cause; remaining stages
// never run.
func (p *Pipeline) Process(ctx context.Context, payload string, initialMetadata map[string]any) (plugin.ContentItem, error) {
	if !p.state.CompareAndSwap(stateIdle, stateRunning) &&
		!p.state.CompareAndSwap(stateCompleted, stateRunning) &&
		!p.state.CompareAndSwap(stateFailed, stateRunning) {
		return plugin.ContentItem{}, fmt.Errorf("pipeline: run already in flight")
	}

	ctx, span := observability.StartSpan(ctx, observability.SpanPipelineRun)
	defer span.End()
	p.metrics.RecordRunStart(ctx)

	item := plugin.NewContentItem(payload, initialMetadata)

	for _, pl := range p.plugins {
		var err error
		item, err = p.runStage(ctx, pl, item)
		if err != nil {
			p.state.Store(stateFailed)
			p.metrics.RecordRunFailure(ctx, pl.Name())
			observability.SetSpanError(ctx, err)

			plugin.Emit(p.sink, plugin.ErrorEvent(fmt.Sprintf("Error in plugin %s: %v", pl.Name(), err)))
			p.log.Error("stage failed", logger.Fields(logger.FieldPlugin, pl.Name(), logger.FieldError, err.Error()))

			return item, wrapStageError(pl.Name(), err)
		}
	}

	p.state.Store(stateCompleted)
	return item, nil
}

// runStage executes one plugin inside its own span.
func (p *Pipeline) runStage(ctx context.Context, pl plugin.Plugin, item plugin.ContentItem) (plugin.ContentItem, error) {
	ctx, span := observability.StartSpan(ctx, observability.SpanPipelineStage,
		trace.WithAttributes(attribute.String(observability.AttrPlugin, pl.Name())))
	defer span.End()

	start := time.Now()
	out, err := pl.Process(ctx, item, p.sink)
	p.metrics.RecordStageDuration(ctx, pl.Name(), time.Since(start))

	if err == nil {
		p.log.Debug("stage completed", logger.DurationFields(pl.Name(), time.Since(start)))
	}
	return out, err
}

// wrapStageError tags err with the plugin name unless it already is a
// tagged execution failure.
func wrapStageError(pluginName string, err error) error {
	if appErr, ok := errors.AsAppError(err); ok && appErr.Code == errors.ErrCodePluginExecution {
		return err
	}
	return errors.PluginExecution(pluginName, err)
}
