package sse

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sync"

	"github.com/articledry/dryer/plugin"
)

// Sentinel is the end-of-stream marker line. It is always the last
// thing written to a stream.
const Sentinel = "[DONE]"

// EventWriter serializes OutputEvents onto a writer, one JSON object
// per line with a blank separator line, and flushes after every event
// when the underlying writer supports it. It is safe for concurrent
// use, though events from one run normally arrive from a single
// goroutine.
type EventWriter struct {
	mu   sync.Mutex
	w    io.Writer
	f    http.Flusher
	done bool
}

// NewEventWriter creates an EventWriter over w. If w implements
// http.Flusher each event is flushed immediately so clients see
// progress live.
func NewEventWriter(w io.Writer) *EventWriter {
	ew := &EventWriter{w: w}
	if f, ok := w.(http.Flusher); ok {
		ew.f = f
	}
	return ew
}

// eventLine is the wire form of one event.
type eventLine struct {
	Content any `json:"content,omitempty"`
	Error   any `json:"error,omitempty"`
}

// WriteEvent writes one event. Error-kind events are serialized under
// the "error" field, everything else under "content". Writes after
// Done are dropped.
func (ew *EventWriter) WriteEvent(ev plugin.OutputEvent) error {
	line := eventLine{}
	if ev.Kind == plugin.KindError {
		line.Error = ev.Content
	} else {
		line.Content = ev.Content
	}

	data, err := json.Marshal(line)
	if err != nil {
		return fmt.Errorf("sse: marshal event: %w", err)
	}

	ew.mu.Lock()
	defer ew.mu.Unlock()
	if ew.done {
		return nil
	}
	if _, err := fmt.Fprintf(ew.w, "%s\n\n", data); err != nil {
		return fmt.Errorf("sse: write event: %w", err)
	}
	ew.flush()
	return nil
}

// WriteResult writes the final ContentItem under the "content" field.
func (ew *EventWriter) WriteResult(item plugin.ContentItem) error {
	return ew.WriteEvent(plugin.StructuredEvent(item))
}

// Done writes the end-of-stream sentinel. Safe to call multiple times;
// only the first call writes.
func (ew *EventWriter) Done() error {
	ew.mu.Lock()
	defer ew.mu.Unlock()
	if ew.done {
		return nil
	}
	ew.done = true
	if _, err := fmt.Fprintf(ew.w, "%s\n\n", Sentinel); err != nil {
		return fmt.Errorf("sse: write sentinel: %w", err)
	}
	ew.flush()
	return nil
}

// Sink returns a plugin.Sink that forwards every event to the writer.
// Write failures are swallowed: a consumer that went away must not
// abort the producing run, cancellation happens via context.
func (ew *EventWriter) Sink() plugin.Sink {
	return plugin.SinkFunc(func(ev plugin.OutputEvent) {
		_ = ew.WriteEvent(ev)
	})
}

func (ew *EventWriter) flush() {
	if ew.f != nil {
		ew.f.Flush()
	}
}
