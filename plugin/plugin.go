package plugin

import "context"

// Plugin is a named, independently testable unit transforming one
// ContentItem into another, optionally reporting progress through the
// sink. On success the returned item's metadata must be a superset of
// the input's. Plugins performing network work should observe ctx and
// always eventually return: no implicit infinite waiting.
//
// Plugin instances are not guaranteed reentrant. Use a fresh instance
// per concurrent pipeline unless the implementation documents otherwise.
type Plugin interface {
	// Name returns the plugin's registered name.
	Name() string

	// Process transforms item, emitting zero or more progress events to
	// sink along the way. sink may be nil.
	Process(ctx context.Context, item ContentItem, sink Sink) (ContentItem, error)
}

// Configurable is optionally implemented by plugins that accept options.
// Configure validates and stores recognized options, ignoring unknown
// keys, and is safe to call zero or more times before Process.
type Configurable interface {
	Configure(options map[string]any) error
}

// Configure applies options to p if it implements Configurable.
// A nil or empty option map is a no-op.
func Configure(p Plugin, options map[string]any) error {
	if len(options) == 0 {
		return nil
	}
	if c, ok := p.(Configurable); ok {
		return c.Configure(options)
	}
	return nil
}
