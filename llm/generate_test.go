package llm

import (
	"context"
	"errors"
	"testing"

	apperrors "github.com/articledry/dryer/errors"
)

type fakeProvider struct {
	complete func(req CompletionRequest) (*CompletionResponse, error)
	stream   func(req CompletionRequest) []StreamChunk
}

func (f *fakeProvider) Name() string { return "fake" }
func (f *fakeProvider) IsAvailable(_ context.Context) bool { return true }

func (f *fakeProvider) Complete(_ context.Context, req CompletionRequest) (*CompletionResponse, error) {
	return f.complete(req)
}

func (f *fakeProvider) Stream(_ context.Context, req CompletionRequest) (<-chan StreamChunk, error) {
	ch := make(chan StreamChunk)
	go func() {
		defer close(ch)
		for _, c := range f.stream(req) {
			ch <- c
		}
	}()
	return ch, nil
}

func TestGenerateBlocking(t *testing.T) {
	p := &fakeProvider{
		complete: func(req CompletionRequest) (*CompletionResponse, error) {
			if req.SystemPrompt != "shorten it" {
				t.Errorf("system prompt = %q, want %q", req.SystemPrompt, "shorten it")
			}
			if len(req.Messages) != 1 || req.Messages[0].Role != "user" {
				t.Fatalf("unexpected messages: %+v", req.Messages)
			}
			return &CompletionResponse{Content: "short"}, nil
		},
	}

	got, err := Generate(context.Background(), p, "long text", "shorten it", nil)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if got != "short" {
		t.Errorf("content = %q, want %q", got, "short")
	}
}

func TestGenerateBlockingRetriesRateLimit(t *testing.T) {
	calls := 0
	p := &fakeProvider{
		complete: func(_ CompletionRequest) (*CompletionResponse, error) {
			calls++
			if calls == 1 {
				return nil, apperrors.RemoteRateLimited("fake")
			}
			return &CompletionResponse{Content: "ok"}, nil
		},
	}

	got, err := Generate(context.Background(), p, "text", "prompt", nil)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if got != "ok" {
		t.Errorf("content = %q", got)
	}
	if calls != 2 {
		t.Errorf("calls = %d, want 2", calls)
	}
}

func TestGenerateBlockingNoRetryOnAuth(t *testing.T) {
	calls := 0
	p := &fakeProvider{
		complete: func(_ CompletionRequest) (*CompletionResponse, error) {
			calls++
			return nil, apperrors.RemoteAuth("fake")
		},
	}

	if _, err := Generate(context.Background(), p, "text", "prompt", nil); err == nil {
		t.Fatal("expected auth error")
	}
	if calls != 1 {
		t.Errorf("calls = %d, auth failures must not be retried", calls)
	}
}

func TestGenerateStreaming(t *testing.T) {
	p := &fakeProvider{
		stream: func(_ CompletionRequest) []StreamChunk {
			return []StreamChunk{
				{Content: "# Short"},
				{Content: "ened\nHi."},
				{Done: true},
			}
		},
	}

	var fragments []string
	got, err := Generate(context.Background(), p, "text", "prompt", func(frag string) {
		fragments = append(fragments, frag)
	})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if got != "# Shortened\nHi." {
		t.Errorf("full text = %q", got)
	}
	if len(fragments) != 2 || fragments[0] != "# Short" || fragments[1] != "ened\nHi." {
		t.Errorf("fragments = %q", fragments)
	}
}

func TestGenerateStreamErrorReturnsPartial(t *testing.T) {
	streamErr := errors.New("connection reset")
	p := &fakeProvider{
		stream: func(_ CompletionRequest) []StreamChunk {
			return []StreamChunk{
				{Content: "partial "},
				{Err: streamErr},
			}
		},
	}

	got, err := Generate(context.Background(), p, "text", "prompt", func(string) {})
	if !errors.Is(err, streamErr) {
		t.Fatalf("err = %v, want %v", err, streamErr)
	}
	if got != "partial " {
		t.Errorf("partial text = %q, want %q", got, "partial ")
	}
}

func TestNewProviderUnknown(t *testing.T) {
	if _, err := NewProvider(Config{Provider: "no-such-driver"}); err == nil {
		t.Fatal("expected error for unknown provider")
	}
}

func TestRegisterDriver(t *testing.T) {
	RegisterDriver("test-fake", func(cfg Config) (Provider, error) {
		return &fakeProvider{}, nil
	})

	p, err := NewProvider(Config{Provider: "test-fake"})
	if err != nil {
		t.Fatalf("NewProvider: %v", err)
	}
	if p.Name() != "fake" {
		t.Errorf("name = %q", p.Name())
	}

	found := false
	for _, name := range Drivers() {
		if name == "test-fake" {
			found = true
		}
	}
	if !found {
		t.Error("Drivers() missing registered driver")
	}
}
