package openai

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/articledry/dryer/errors"
	"github.com/articledry/dryer/llm"
)

func newTestProvider(t *testing.T, handler http.HandlerFunc) *Provider {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	p, err := New(llm.Config{APIKey: "test-key", BaseURL: srv.URL, Model: "test-model"})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return p
}

func TestNewRequiresAPIKey(t *testing.T) {
	if _, err := New(llm.Config{}); err == nil {
		t.Fatal("expected error without api key")
	}
}

func TestComplete(t *testing.T) {
	p := newTestProvider(t, func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Authorization"); got != "Bearer test-key" {
			t.Errorf("authorization = %q", got)
		}
		if r.URL.Path != "/v1/chat/completions" {
			t.Errorf("path = %q", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"model": "test-model",
			"choices": [{"message": {"role": "assistant", "content": "hello"}}],
			"usage": {"prompt_tokens": 3, "completion_tokens": 2, "total_tokens": 5}
		}`))
	})

	resp, err := p.Complete(context.Background(), llm.CompletionRequest{
		Messages: []llm.Message{{Role: "user", Content: "hi"}},
	})
	if err != nil {
		t.Fatalf("Complete: %v", err)
	}
	if resp.Content != "hello" {
		t.Errorf("content = %q", resp.Content)
	}
	if resp.Usage.TotalTokens != 5 {
		t.Errorf("total tokens = %d", resp.Usage.TotalTokens)
	}
}

func TestStream(t *testing.T) {
	p := newTestProvider(t, func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/event-stream")
		_, _ = w.Write([]byte(
			"data: {\"choices\":[{\"delta\":{\"content\":\"# Short\"}}]}\n\n" +
				"data: {\"choices\":[{\"delta\":{\"content\":\"ened\"}}]}\n\n" +
				"data: [DONE]\n\n"))
	})

	ch, err := p.Stream(context.Background(), llm.CompletionRequest{
		Messages: []llm.Message{{Role: "user", Content: "hi"}},
	})
	if err != nil {
		t.Fatalf("Stream: %v", err)
	}

	var text string
	var done bool
	for chunk := range ch {
		if chunk.Err != nil {
			t.Fatalf("chunk error: %v", chunk.Err)
		}
		text += chunk.Content
		if chunk.Done {
			done = true
		}
	}
	if text != "# Shortened" {
		t.Errorf("streamed text = %q", text)
	}
	if !done {
		t.Error("missing done chunk")
	}
}

func TestStatusMapping(t *testing.T) {
	cases := []struct {
		status int
		code   errors.ErrorCode
	}{
		{http.StatusUnauthorized, errors.ErrCodeRemoteAuth},
		{http.StatusTooManyRequests, errors.ErrCodeRemoteRateLimited},
		{http.StatusNotFound, errors.ErrCodeRemoteModelNotFound},
		{http.StatusInternalServerError, errors.ErrCodeRemoteUnavailable},
	}
	for _, tc := range cases {
		p := newTestProvider(t, func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(tc.status)
		})

		_, err := p.Complete(context.Background(), llm.CompletionRequest{})
		if err == nil {
			t.Fatalf("status %d: expected error", tc.status)
		}
		if !errors.HasCode(err, tc.code) {
			t.Errorf("status %d: err = %v, want code %s", tc.status, err, tc.code)
		}
	}
}

func TestUnreachableServer(t *testing.T) {
	p, err := New(llm.Config{APIKey: "k", BaseURL: "http://127.0.0.1:1"})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	_, err = p.Complete(context.Background(), llm.CompletionRequest{})
	if !errors.HasCode(err, errors.ErrCodeRemoteUnavailable) {
		t.Errorf("err = %v, want remote unavailable", err)
	}
}
