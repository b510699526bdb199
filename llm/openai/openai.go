// Package openai implements the llm.Provider driver for OpenAI-style
// chat completion APIs, including compatible self-hosted endpoints.
package openai

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
const DriverName = "openai"

const (
	defaultBaseURL = "https://api.openai.com"
	defaultModel   = "gpt-4o-mini"
	defaultTimeout = 120 * time.Second

	chatPath  = "/v1/chat/completions"
	sseData   = "data: "
	sseDone   = "[DONE]"
	maxErrLen = 2048
)

func init() {
	llm.RegisterDriver(DriverName, func(cfg llm.Config) (llm.Provider, error) {
		return New(cfg)
	})
}

// Provider implements llm.Provider against the chat completions API.
type Provider struct {
	cfg    llm.Config
	client *http.Client
}

// New creates an OpenAI provider. An API key is required.
func New(cfg llm.Config) (*Provider, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("openai: api key is required")
	}
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
	}, nil
}

// Name returns the driver name.
func (p *Provider) Name() string { return DriverName }

// IsAvailable checks if the API answers the models endpoint.
func (p *Provider) IsAvailable(ctx context.Context) bool {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.cfg.BaseURL+"/v1/models", http.NoBody)
	if err != nil {
		return false
	}
	req.Header.Set("Authorization", "Bearer "+p.cfg.APIKey)
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
	defer httpResp.Body.Close() //nolint:errcheck // close error irrelevant after full read

	var resp chatResponse
	if err := json.NewDecoder(httpResp.Body).Decode(&resp); err != nil {
		return nil, fmt.Errorf("openai: decode response: %w", err)
	}
	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("openai: response contained no choices")
	}

	return &llm.CompletionResponse{
		Content: resp.Choices[0].Message.Content,
		Model:   resp.Model,
		Usage: llm.Usage{
			PromptTokens:     resp.Usage.PromptTokens,
			CompletionTokens: resp.Usage.CompletionTokens,
			TotalTokens:      resp.Usage.TotalTokens,
		},
	}, nil
}

// Stream sends a completion request and returns a channel of streamed
// chunks parsed from the server-sent-events response.
func (p *Provider) Stream(ctx context.Context, req llm.CompletionRequest) (<-chan llm.StreamChunk, error) {
	httpResp, err := p.send(ctx, p.buildChatRequest(req, true))
	if err != nil {
		return nil, err
	}

	ch := make(chan llm.StreamChunk)
	go func() {
		defer close(ch)
		defer httpResp.Body.Close() //nolint:errcheck // read side, close error is safe to ignore

		scanner := bufio.NewScanner(httpResp.Body)
		for scanner.Scan() {
			line := strings.TrimSpace(scanner.Text())
			if !strings.HasPrefix(line, sseData) {
				continue
			}
			payload := strings.TrimPrefix(line, sseData)
			if payload == sseDone {
				ch <- llm.StreamChunk{Done: true}
				return
			}

			var delta chatStreamResponse
			if err := json.Unmarshal([]byte(payload), &delta); err != nil {
				ch <- llm.StreamChunk{Err: fmt.Errorf("openai: unmarshal chunk: %w", err)}
				return
			}
			if len(delta.Choices) == 0 {
				continue
			}

			chunk := llm.StreamChunk{
				Content: delta.Choices[0].Delta.Content,
				Done:    delta.Choices[0].FinishReason != "",
			}
			select {
			case ch <- chunk:
			case <-ctx.Done():
				ch <- llm.StreamChunk{Err: ctx.Err()}
				return
			}
			if chunk.Done {
				return
			}
		}
		if err := scanner.Err(); err != nil {
			ch <- llm.StreamChunk{Err: fmt.Errorf("openai: read stream: %w", err)}
		}
	}()

	return ch, nil
}

// send posts the chat request and maps HTTP failure statuses to
// distinguishable error causes.
func (p *Provider) send(ctx context.Context, chatReq chatRequest) (*http.Response, error) {
	body, err := json.Marshal(chatReq)
	if err != nil {
		return nil, fmt.Errorf("openai: marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, p.cfg.BaseURL+chatPath, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("openai: create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+p.cfg.APIKey)

	//nolint:bodyclose // body is closed by the caller or the stream goroutine
	httpResp, err := p.client.Do(httpReq)
	if err != nil {
		return nil, errors.RemoteUnavailable(DriverName, err)
	}

	if httpResp.StatusCode != http.StatusOK {
		respBody, _ := io.ReadAll(io.LimitReader(httpResp.Body, maxErrLen))
		_ = httpResp.Body.Close()

		switch httpResp.StatusCode {
		case http.StatusUnauthorized:
			return nil, errors.RemoteAuth(DriverName)
		case http.StatusTooManyRequests:
			return nil, errors.RemoteRateLimited(DriverName)
		case http.StatusNotFound:
			return nil, errors.RemoteModelNotFound(DriverName, chatReq.Model)
		default:
			return nil, errors.RemoteUnavailable(DriverName,
				fmt.Errorf("unexpected status %d: %s", httpResp.StatusCode, respBody))
		}
	}
	return httpResp, nil
}

// --- chat completions wire types ---

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []llm.Message `json:"messages"`
	Temperature float64       `json:"temperature,omitempty"`
	MaxTokens   int           `json:"max_tokens,omitempty"`
	Stream      bool          `json:"stream,omitempty"`
}

type chatResponse struct {
	Model   string `json:"model"`
	Choices []struct {
		Message llm.Message `json:"message"`
	} `json:"choices"`
	Usage struct {
		PromptTokens     int `json:"prompt_tokens"`
		CompletionTokens int `json:"completion_tokens"`
		TotalTokens      int `json:"total_tokens"`
	} `json:"usage"`
}

type chatStreamResponse struct {
	Choices []struct {
		Delta struct {
			Content string `json:"content"`
		} `json:"delta"`
		FinishReason string `json:"finish_reason"`
	} `json:"choices"`
}

func (p *Provider) buildChatRequest(req llm.CompletionRequest, stream bool) chatRequest {
	model := p.cfg.Model
	if req.Model != "" {
		model = req.Model
	}
	temp := p.cfg.Temperature
	if req.Temperature != 0 {
		temp = req.Temperature
	}
	maxTokens := p.cfg.MaxTokens
	if req.MaxTokens != 0 {
		maxTokens = req.MaxTokens
	}

	msgs := make([]llm.Message, 0, len(req.Messages)+1)
	if req.SystemPrompt != "" {
		msgs = append(msgs, llm.Message{Role: "system", Content: req.SystemPrompt})
	}
	msgs = append(msgs, req.Messages...)

	return chatRequest{
		Model:       model,
		Messages:    msgs,
		Temperature: temp,
		MaxTokens:   maxTokens,
		Stream:      stream,
	}
}
