// Package summarize implements the summarizer plugin. It sends the
// payload to a remote generator with a prompt that asks for a shortened
// rewrite plus keywords, streams the response through the sink, and
// stores the full summary in metadata. The payload passes through
// unchanged.
package summarize

import (
	"context"
	"time"

	"github.com/articledry/dryer/errors"
	"github.com/articledry/dryer/llm"
	"github.com/articledry/dryer/plugin"
	"github.com/articledry/dryer/streamparse"
)

// Name is the registered plugin name.
const Name = "summarizer"

// Metadata keys written by the plugin.
const (
	MetaSummary     = "summary"
	MetaShortened   = "shortened"
	MetaKeywords    = "keywords"
	MetaProcessedAt = "processedAt"
)

// SystemPrompt asks the generator for the marker format the stream
// parser reconstructs on the other end.
const SystemPrompt = `Understand the meaning of this paragraph, rewrite it into a shorter version with keywords.
Return with markdown format like this:
# Shortened
Shortened text...
# Keywords
- keyword1
- keyword2`

// Plugin drives a remote generator to summarize the payload.
type Plugin struct {
	provider llm.Provider
	stream   bool
	now      func() time.Time
}

// New creates a summarizer plugin bound to the given provider.
func New(provider llm.Provider) (*Plugin, error) {
	if provider == nil {
		return nil, errors.PluginConfiguration(Name, "a remote generator provider is required")
	}
	return &Plugin{provider: provider, stream: true, now: time.Now}, nil
}

// FromConfig builds the provider from generator config and wraps it.
func FromConfig(cfg llm.Config) (*Plugin, error) {
	provider, err := llm.NewProvider(cfg)
	if err != nil {
		return nil, errors.PluginConfiguration(Name, err.Error())
	}
	return New(provider)
}

// Name returns the plugin name.
func (p *Plugin) Name() string { return Name }

// Configure applies plugin options: stream (default true).
func (p *Plugin) Configure(options map[string]any) error {
	p.stream = plugin.BoolOption(options, "stream", p.stream)
	return nil
}

// Process generates the summary. Streamed fragments are emitted as text
// events and fed through a stream parser; whenever the parser extracts
// more of the shortened text or keyword list, the updated record goes
// out as a structured event. The full text lands in metadata under
// MetaSummary, the parsed pieces under MetaShortened and MetaKeywords,
// together with a MetaProcessedAt timestamp. Authentication failures
// surface with a distinct message so callers can tell a bad key from
// an outage.
func (p *Plugin) Process(ctx context.Context, item plugin.ContentItem, sink plugin.Sink) (plugin.ContentItem, error) {
	plugin.Emit(sink, plugin.TextEvent("Generating summary...\n"))

	parser := streamparse.NewParser()
	key := sourceKey(item)

	var onChunk llm.ChunkFunc
	if p.stream {
		onChunk = func(fragment string) {
			plugin.Emit(sink, plugin.TextEvent(fragment))
			if parser.Feed(key, fragment) {
				plugin.Emit(sink, plugin.StructuredEvent(parser.Record(key)))
			}
		}
	}

	summary, err := llm.Generate(ctx, p.provider, item.Payload, SystemPrompt, onChunk)
	if err != nil {
		if errors.HasCode(err, errors.ErrCodeRemoteAuth) {
			plugin.Emit(sink, plugin.ErrorEvent("Authentication failed: please check your API key."))
		}
		return item, err
	}

	// Close the trailing block. Blocking completions arrive in one piece
	// and are parsed here as well.
	final := "\n\n"
	if !p.stream {
		final = summary + "\n\n"
	}
	if parser.Feed(key, final) && p.stream {
		plugin.Emit(sink, plugin.StructuredEvent(parser.Record(key)))
	}

	meta := map[string]any{
		MetaSummary:     summary,
		MetaProcessedAt: p.now().Format(time.RFC3339),
	}
	if rec := parser.Record(key); rec != nil {
		if rec.Summary != "" {
			meta[MetaShortened] = rec.Summary
		}
		if len(rec.Keywords) > 0 {
			meta[MetaKeywords] = rec.Keywords
		}
	}
	return item.WithMeta(meta), nil
}

// sourceKey identifies the article in the stream parser. Items fetched
// from a URL keep that URL as the key; everything else shares a
// constant key since a plugin run handles one article.
func sourceKey(item plugin.ContentItem) string {
	if url, ok := item.Metadata["requested_url"].(string); ok && url != "" {
		return url
	}
	return "article"
}
