package wordlevel

import (
	"context"
	"strings"
	"testing"

	"github.com/articledry/dryer/plugin"
	"github.com/articledry/dryer/words"
)

func testLists(t *testing.T) *words.Lists {
	t.Helper()
	l, err := words.Load(strings.NewReader(`[
		{"word": "hello", "level": "A1"},
		{"word": "world", "level": "A1"},
		{"word": "culture", "level": "B1"},
		{"word": "paradigm", "level": "C2"}
	]`))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	return l
}

func TestProcessInline(t *testing.T) {
	p := New().WithLists(testLists(t))

	var events []plugin.OutputEvent
	sink := plugin.SinkFunc(func(ev plugin.OutputEvent) { events = append(events, ev) })

	out, err := p.Process(context.Background(), plugin.NewContentItem("hello paradigm xyzzy", nil), sink)
	if err != nil {
		t.Fatalf("Process: %v", err)
	}
	if out.Payload != "hello [A1] paradigm [C2] xyzzy [UNKNOWN]" {
		t.Errorf("payload = %q", out.Payload)
	}

	analysis, ok := out.Metadata[MetaKey].(map[string]any)
	if !ok {
		t.Fatalf("metadata %q missing: %+v", MetaKey, out.Metadata)
	}
	stats := analysis["statistics"].(map[string]any)
	if got := stats["totalWords"]; got != 3 {
		t.Errorf("totalWords = %v, want 3", got)
	}
	grouped := stats["groupedCounts"].(map[string]int)
	if grouped["elementary"] != 1 || grouped["advanced"] != 1 || grouped["unknown"] != 1 {
		t.Errorf("groupedCounts = %+v", grouped)
	}

	if len(events) != 1 || events[0].Kind != plugin.KindStructured {
		t.Errorf("expected one structured event, got %+v", events)
	}
}

func TestProcessJSONFormatKeepsPayload(t *testing.T) {
	p := New().WithLists(testLists(t))
	if err := p.Configure(map[string]any{"outputFormat": FormatJSON}); err != nil {
		t.Fatalf("Configure: %v", err)
	}

	item := plugin.NewContentItem("hello world", nil)
	out, err := p.Process(context.Background(), item, nil)
	if err != nil {
		t.Fatalf("Process: %v", err)
	}
	if out.Payload != item.Payload {
		t.Errorf("payload changed: %q", out.Payload)
	}
	if _, ok := out.Metadata[MetaKey]; !ok {
		t.Error("analysis metadata missing")
	}
}

func TestConfigureRejectsUnknownFormat(t *testing.T) {
	p := New()
	if err := p.Configure(map[string]any{"outputFormat": "interpretive-dance"}); err == nil {
		t.Fatal("expected error for unknown format")
	}
}

func TestProcessEmptyPayload(t *testing.T) {
	p := New()
	out, err := p.Process(context.Background(), plugin.NewContentItem("", nil), nil)
	if err != nil {
		t.Fatalf("Process: %v", err)
	}
	analysis := out.Metadata[MetaKey].(map[string]any)
	stats := analysis["statistics"].(map[string]any)
	if got := stats["totalWords"]; got != 0 {
		t.Errorf("totalWords = %v, want 0", got)
	}
}
