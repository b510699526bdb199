package server_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/articledry/dryer/logger"
	"github.com/articledry/dryer/pipeline"
	"github.com/articledry/dryer/plugin"
	"github.com/articledry/dryer/server"
	"github.com/articledry/dryer/sse"
)

// shoutPlugin uppercases the payload and reports progress.
type shoutPlugin struct{}

func (shoutPlugin) Name() string { return "shout" }

func (shoutPlugin) Process(ctx context.Context, item plugin.ContentItem, sink plugin.Sink) (plugin.ContentItem, error) {
	plugin.Emit(sink, plugin.TextEvent("shouting\n"))
	item.Payload = strings.ToUpper(item.Payload)
	return item, nil
}

// noopPlugin passes the item through untouched.
type noopPlugin struct{}

func (noopPlugin) Name() string { return "noop" }

func (noopPlugin) Process(ctx context.Context, item plugin.ContentItem, sink plugin.Sink) (plugin.ContentItem, error) {
	return item, nil
}

func newTestServer(t *testing.T) (*server.Server, *plugin.Registry) {
	t.Helper()

	reg := plugin.NewRegistry()
	reg.MustRegister("shout", plugin.FactoryRecipe(func() plugin.Plugin { return shoutPlugin{} }))

	cfg := server.Config{}
	cfg.ApplyDefaults()

	s := server.New(cfg, logger.NewDefault("test"))
	s.ApplyDefaults("dryer-test", nil)
	s.RegisterProcessRoutes(reg, pipeline.Config{
		Plugins: []pipeline.PluginSpec{{Name: "shout"}},
	})
	return s, reg
}

func postProcess(t *testing.T, s *server.Server, body string) *httptest.ResponseRecorder {
	t.Helper()
	rr := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/v1/process", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	s.GinEngine().ServeHTTP(rr, req)
	return rr
}

// streamLines splits an NDJSON response into its non-empty lines.
func streamLines(body string) []string {
	var lines []string
	for _, line := range strings.Split(body, "\n") {
		if strings.TrimSpace(line) != "" {
			lines = append(lines, line)
		}
	}
	return lines
}

func TestProcessStreamsEvents(t *testing.T) {
	s, _ := newTestServer(t)

	rr := postProcess(t, s, `{"content": "hello"}`)
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rr.Code, rr.Body.String())
	}
	if ct := rr.Header().Get("Content-Type"); !strings.HasPrefix(ct, "application/x-ndjson") {
		t.Errorf("content type = %q", ct)
	}

	lines := streamLines(rr.Body.String())
	if len(lines) != 3 {
		t.Fatalf("expected 3 stream lines, got %d: %v", len(lines), lines)
	}

	var progress struct {
		Content string `json:"content"`
	}
	if err := json.Unmarshal([]byte(lines[0]), &progress); err != nil {
		t.Fatalf("parse progress line: %v", err)
	}
	if progress.Content != "shouting\n" {
		t.Errorf("progress = %q", progress.Content)
	}

	var result struct {
		Content plugin.ContentItem `json:"content"`
	}
	if err := json.Unmarshal([]byte(lines[1]), &result); err != nil {
		t.Fatalf("parse result line: %v", err)
	}
	if result.Content.Payload != "HELLO" {
		t.Errorf("payload = %q", result.Content.Payload)
	}

	if lines[2] != sse.Sentinel {
		t.Errorf("last line = %q, want sentinel", lines[2])
	}
}

func TestProcessRequestPipelineOverride(t *testing.T) {
	s, reg := newTestServer(t)
	reg.MustRegister("noop", plugin.FactoryRecipe(func() plugin.Plugin { return noopPlugin{} }))

	rr := postProcess(t, s, `{"content": "hello", "pipeline": {"plugins": [{"name": "noop"}]}}`)
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}

	lines := streamLines(rr.Body.String())
	// No progress event from noop: result plus sentinel only.
	if len(lines) != 2 {
		t.Fatalf("expected 2 stream lines, got %v", lines)
	}
	var result struct {
		Content plugin.ContentItem `json:"content"`
	}
	if err := json.Unmarshal([]byte(lines[0]), &result); err != nil {
		t.Fatalf("parse result line: %v", err)
	}
	if result.Content.Payload != "hello" {
		t.Errorf("payload = %q, want untransformed input", result.Content.Payload)
	}
}

func TestProcessRejectsEmptyBody(t *testing.T) {
	s, _ := newTestServer(t)

	rr := postProcess(t, s, `{}`)
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rr.Code)
	}
}

func TestProcessRejectsContentAndURL(t *testing.T) {
	s, _ := newTestServer(t)

	rr := postProcess(t, s, `{"content": "x", "url": "https://example.com"}`)
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rr.Code)
	}
}

func TestProcessUnknownPlugin(t *testing.T) {
	s, _ := newTestServer(t)

	rr := postProcess(t, s, `{"content": "x", "pipeline": {"plugins": [{"name": "nope"}]}}`)
	if rr.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d: %s", rr.Code, rr.Body.String())
	}
}

func TestPluginsEndpoint(t *testing.T) {
	s, _ := newTestServer(t)

	rr := httptest.NewRecorder()
	s.GinEngine().ServeHTTP(rr, httptest.NewRequest("GET", "/v1/plugins", http.NoBody))
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}
	if !strings.Contains(rr.Body.String(), "shout") {
		t.Errorf("plugin list missing shout: %s", rr.Body.String())
	}
}

func TestHealthEndpoint(t *testing.T) {
	s, _ := newTestServer(t)

	rr := httptest.NewRecorder()
	s.GinEngine().ServeHTTP(rr, httptest.NewRequest("GET", "/health", http.NoBody))
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}
	if !strings.Contains(rr.Body.String(), `"status":"healthy"`) {
		t.Errorf("unexpected health body: %s", rr.Body.String())
	}
}

func TestConfigDefaults(t *testing.T) {
	cfg := server.Config{}
	cfg.ApplyDefaults()

	if cfg.Port != 8080 {
		t.Errorf("port = %d", cfg.Port)
	}
	if cfg.WriteTimeout != 0 {
		t.Errorf("write_timeout = %d, streaming needs no global deadline", cfg.WriteTimeout)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}

	cfg.Port = -1
	if err := cfg.Validate(); err == nil {
		t.Error("expected validation error for negative port")
	}
}
