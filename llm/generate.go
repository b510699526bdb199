package llm

import (
	"context"
	"strings"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/articledry/dryer/errors"
	"github.com/articledry/dryer/observability"
	"github.com/articledry/dryer/resilience"
)

// ChunkFunc receives one streamed text fragment.
type ChunkFunc func(fragment string)

// Generate asks the provider to transform content under systemPrompt.
// When onChunk is non-nil the call streams: onChunk is invoked once per
// received fragment, and the full concatenated text is still returned
// at the end. When onChunk is nil a single blocking completion is made.
//
// On a mid-stream error the text received so far is returned alongside
// the error.
func Generate(ctx context.Context, p Provider, content, systemPrompt string, onChunk ChunkFunc) (string, error) {
	ctx, span := observability.StartSpan(ctx, observability.SpanRemoteGenerate,
		trace.WithAttributes(attribute.String(observability.AttrProviderName, p.Name())))
	defer span.End()

	req := CompletionRequest{
		SystemPrompt: systemPrompt,
		Messages:     []Message{{Role: "user", Content: content}},
	}

	if onChunk == nil {
		// Blocking completions are retried on transient remote failures
		// (rate limits, unavailability). Streams are not: a consumer has
		// already seen partial output by the time a stream breaks.
		resp, err := resilience.Retry(ctx, completionRetryConfig(), func() (*CompletionResponse, error) {
			return p.Complete(ctx, req)
		})
		if err != nil {
			observability.SetSpanError(ctx, err)
			return "", err
		}
		return resp.Content, nil
	}

	ch, err := p.Stream(ctx, req)
	if err != nil {
		observability.SetSpanError(ctx, err)
		return "", err
	}

	var full strings.Builder
	for chunk := range ch {
		if chunk.Err != nil {
			observability.SetSpanError(ctx, chunk.Err)
			return full.String(), chunk.Err
		}
		if chunk.Content != "" {
			onChunk(chunk.Content)
			full.WriteString(chunk.Content)
		}
	}
	return full.String(), nil
}

func completionRetryConfig() resilience.RetryConfig {
	cfg := resilience.DefaultRetryConfig()
	cfg.RetryIf = func(err error) bool {
		appErr, ok := errors.AsAppError(err)
		return ok && appErr.Retryable
	}
	return cfg
}
