package plugin

// ContentItem is the unit of work flowing through a pipeline. Payload is
// overwritten by stages that transform text; Metadata only grows, stages
// add keys and never remove them. An item is owned by exactly one in-flight
// pipeline run.
type ContentItem struct {
	Payload  string         `json:"payload"`
	Metadata map[string]any `json:"metadata"`
}

// NewContentItem creates a ContentItem with a non-nil metadata map.
func NewContentItem(payload string, metadata map[string]any) ContentItem {
	if metadata == nil {
		metadata = make(map[string]any)
	}
	return ContentItem{Payload: payload, Metadata: metadata}
}

// WithMeta returns a copy of the item with the given keys merged into a
// fresh metadata map. The receiver's map is left untouched so stages can
// hand their input onward without aliasing surprises.
func (c ContentItem) WithMeta(keys map[string]any) ContentItem {
	merged := make(map[string]any, len(c.Metadata)+len(keys))
	for k, v := range c.Metadata {
		merged[k] = v
	}
	for k, v := range keys {
		merged[k] = v
	}
	return ContentItem{Payload: c.Payload, Metadata: merged}
}

// EventKind classifies an OutputEvent.
type EventKind string

const (
	// KindText carries a free-text fragment, e.g. one streamed chunk.
	KindText EventKind = "text"
	// KindStructured carries a JSON-serializable value.
	KindStructured EventKind = "structured"
	// KindError carries a failure description.
	KindError EventKind = "error"
)

// OutputEvent is a transient progress, result, or error notification
// pushed from a plugin or the pipeline to the run's sink. It is not
// persisted.
type OutputEvent struct {
	Kind    EventKind `json:"kind"`
	Content any       `json:"content"`
}

// TextEvent builds a text-kind event.
func TextEvent(content string) OutputEvent {
	return OutputEvent{Kind: KindText, Content: content}
}

// StructuredEvent builds a structured-kind event.
func StructuredEvent(content any) OutputEvent {
	return OutputEvent{Kind: KindStructured, Content: content}
}

// ErrorEvent builds an error-kind event.
func ErrorEvent(content any) OutputEvent {
	return OutputEvent{Kind: KindError, Content: content}
}

// Sink consumes OutputEvents for the lifetime of one pipeline run.
type Sink interface {
	Emit(ev OutputEvent)
}

// SinkFunc adapts a function to the Sink interface.
type SinkFunc func(ev OutputEvent)

// Emit calls f(ev).
func (f SinkFunc) Emit(ev OutputEvent) { f(ev) }

// Emit sends ev to sink if sink is non-nil. Plugins call this so a nil
// sink is always safe.
func Emit(sink Sink, ev OutputEvent) {
	if sink != nil {
		sink.Emit(ev)
	}
}
