package pipeline

import (
	"context"
	"fmt"

	"github.com/articledry/dryer/sse"
)

// BindStreaming associates a live event writer with the pipeline for
// the duration of one run: every OutputEvent a stage emits is written
// to it. Call before ProcessStreamingRequest.
func (p *Pipeline) BindStreaming(ew *sse.EventWriter) {
	p.stream = ew
	p.sink = ew.Sink()
}

// ProcessStreamingRequest runs the pipeline and writes every
// OutputEvent plus the final ContentItem to the bound writer. The
// end-of-stream sentinel is always written, on the error and
// empty-output paths included, so the consumer never hangs.
func (p *Pipeline) ProcessStreamingRequest(ctx context.Context, payload string, initialMetadata map[string]any) error {
	if p.stream == nil {
		return fmt.Errorf("pipeline: not bound to a stream")
	}
	defer func() { _ = p.stream.Done() }()

	item, err := p.Process(ctx, payload, initialMetadata)
	if err != nil {
		// The failing stage already produced its error event.
		return err
	}
	return p.stream.WriteResult(item)
}
