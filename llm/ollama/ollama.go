// Package ollama implements the llm.Provider driver for a local or
// self-hosted Ollama server. No API key is required.
package ollama

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/articledry/dryer/errors"
	"github.com/articledry/dryer/llm"
)

// DriverName is the registered name for this driver.
const DriverName = "ollama"

const (
	defaultBaseURL = "http://localhost:11434"
	defaultModel   = "llama3"
	defaultTimeout = 120 * time.Second

	chatPath = "/api/chat"
)

func init() {
	llm.RegisterDriver(DriverName, func(cfg llm.Config) (llm.Provider, error) {
		return New(cfg), nil
	})
}

// Provider implements llm.Provider using Ollama's HTTP chat API.
type Provider struct {
	cfg    llm.Config
	client *http.Client
}

// New creates an Ollama provider with defaults applied.
func New(cfg llm.Config) *Provider {
	if cfg.BaseURL == "" {
		cfg.BaseURL = defaultBaseURL
	}
	if cfg.Model == "" {
		cfg.Model = defaultModel
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = defaultTimeout
	}
	return &Provider{
		cfg:    cfg,
		client: &http.Client{Timeout: cfg.Timeout},
	}
}

// Name returns the driver name.
func (p *Provider) Name() string { return DriverName }

// IsAvailable checks if the Ollama server is reachable.
func (p *Provider) IsAvailable(ctx context.Context) bool {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.cfg.BaseURL+"/api/tags", http.NoBody)
	if err != nil {
		return false
	}
	resp, err := p.client.Do(req)
	if err != nil {
		return false
	}
	_ = resp.Body.Close()
	return resp.StatusCode == http.StatusOK
}

// Complete sends a completion request and returns the full response.
func (p *Provider) Complete(ctx context.Context, req llm.CompletionRequest) (*llm.CompletionResponse, error) {
	httpResp, err := p.send(ctx, p.buildChatRequest(req, false))
	if err != nil {
		return nil, err
	}
	defer httpResp.Body.Close() //nolint:errcheck // Error on close is safe to ignore for read operations

	var resp chatResponse
	if err := json.NewDecoder(httpResp.Body).Decode(&resp); err != nil {
		return nil, fmt.Errorf("ollama: decode response: %w", err)
	}

	return &llm.CompletionResponse{
		Content: resp.Message.Content,
		Model:   resp.Model,
		Usage: llm.Usage{
			PromptTokens:     resp.PromptEvalCount,
			CompletionTokens: resp.EvalCount,
			TotalTokens:      resp.PromptEvalCount + resp.EvalCount,
		},
	}, nil
}

// Stream sends a completion request and returns a channel of chunks
// parsed from the newline-delimited JSON response.
func (p *Provider) Stream(ctx context.Context, req llm.CompletionRequest) (<-chan llm.StreamChunk, error) {
	httpResp, err := p.send(ctx, p.buildChatRequest(req, true))
	if err != nil {
		return nil, err
	}

	ch := make(chan llm.StreamChunk)
	go func() {
		defer close(ch)
		defer httpResp.Body.Close() //nolint:errcheck // Error on close is safe to ignore for read operations

		scanner := bufio.NewScanner(httpResp.Body)
		for scanner.Scan() {
			line := scanner.Bytes()
			if len(line) == 0 {
				continue
			}

			var resp chatResponse
			if err := json.Unmarshal(line, &resp); err != nil {
				ch <- llm.StreamChunk{Err: fmt.Errorf("ollama: unmarshal chunk: %w", err)}
				return
			}

			chunk := llm.StreamChunk{
				Content: resp.Message.Content,
				Done:    resp.Done,
			}
			select {
			case ch <- chunk:
			case <-ctx.Done():
				ch <- llm.StreamChunk{Err: ctx.Err()}
				return
			}
			if resp.Done {
				return
			}
		}

		if err := scanner.Err(); err != nil {
			ch <- llm.StreamChunk{Err: fmt.Errorf("ollama: read response: %w", err)}
		}
	}()

	return ch, nil
}

// send posts the chat request and maps failure statuses to
// distinguishable error causes. Ollama reports an unknown model as 404
// with a "model ... not found" body.
func (p *Provider) send(ctx context.Context, chatReq chatRequest) (*http.Response, error) {
	body, err := json.Marshal(chatReq)
	if err != nil {
		return nil, fmt.Errorf("ollama: marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, p.cfg.BaseURL+chatPath, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("ollama: create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	//nolint:bodyclose // Body is closed by the caller or the stream goroutine
	httpResp, err := p.client.Do(httpReq)
	if err != nil {
		return nil, errors.RemoteUnavailable(DriverName, err)
	}

	if httpResp.StatusCode != http.StatusOK {
		respBody, _ := io.ReadAll(httpResp.Body)
		_ = httpResp.Body.Close()

		if httpResp.StatusCode == http.StatusNotFound && strings.Contains(string(respBody), "not found") {
			return nil, errors.RemoteModelNotFound(DriverName, chatReq.Model)
		}
		return nil, errors.RemoteUnavailable(DriverName,
			fmt.Errorf("unexpected status %d: %s", httpResp.StatusCode, respBody))
	}
	return httpResp, nil
}

// --- Ollama API wire types ---

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []llm.Message `json:"messages"`
	Stream      bool          `json:"stream"`
	Temperature float64       `json:"temperature,omitempty"`
}

type chatResponse struct {
	Model           string      `json:"model"`
	Message         llm.Message `json:"message"`
	Done            bool        `json:"done"`
	PromptEvalCount int         `json:"prompt_eval_count,omitempty"`
	EvalCount       int         `json:"eval_count,omitempty"`
}

// buildChatRequest creates an Ollama API request from a llm.CompletionRequest.
func (p *Provider) buildChatRequest(req llm.CompletionRequest, stream bool) chatRequest {
	model := p.cfg.Model
	if req.Model != "" {
		model = req.Model
	}
	temp := p.cfg.Temperature
	if req.Temperature != 0 {
		temp = req.Temperature
	}

	msgs := make([]llm.Message, 0, len(req.Messages)+1)
	if req.SystemPrompt != "" {
		msgs = append(msgs, llm.Message{Role: "system", Content: req.SystemPrompt})
	}
	msgs = append(msgs, req.Messages...)

	return chatRequest{
		Model:       model,
		Messages:    msgs,
		Stream:      stream,
		Temperature: temp,
	}
}
