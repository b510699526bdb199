package llm

import "time"

// Message represents a single chat message.
type Message struct {
	Role    string `json:"role"` // "system", "user", "assistant"
	Content string `json:"content"`
}

// CompletionRequest is the universal input for all providers.
type CompletionRequest struct {
	// Model overrides the provider's default model.
	Model string `json:"model,omitempty"`
	// Messages is the conversation history.
	Messages []Message `json:"messages"`
	// SystemPrompt is prepended as a system message.
	SystemPrompt string `json:"system_prompt,omitempty"`
	// Temperature controls randomness (0.0 = deterministic).
	Temperature float64 `json:"temperature,omitempty"`
	// MaxTokens limits the response length. 0 means provider default.
	MaxTokens int `json:"max_tokens,omitempty"`
	// Stream requests streaming mode. Set by Stream implementations.
	Stream bool `json:"stream,omitempty"`
}

// CompletionResponse is the universal output from all providers.
type CompletionResponse struct {
	// Content is the generated text.
	Content string `json:"content"`
	// Model is the model that produced the response.
	Model string `json:"model"`
	// Usage reports token consumption.
	Usage Usage `json:"usage"`
}

// StreamChunk is a single piece of a streamed response.
type StreamChunk struct {
	// Content is the text fragment.
	Content string `json:"content"`
	// Done indicates this is the final chunk.
	Done bool `json:"done"`
	// Err is set when a streaming error occurs.
	Err error `json:"-"`
}

// Usage reports token consumption.
type Usage struct {
	PromptTokens     int `json:"prompt_tokens"`
	CompletionTokens int `json:"completion_tokens"`
	TotalTokens      int `json:"total_tokens"`
}

// Config holds provider-agnostic client configuration.
type Config struct {
	// Provider names a registered driver ("openai", "ollama").
	Provider string `yaml:"provider" mapstructure:"provider"`
	// BaseURL overrides the driver's default endpoint.
	BaseURL string `yaml:"base_url" mapstructure:"base_url"`
	// APIKey authenticates against the remote service, where required.
	APIKey string `yaml:"api_key" mapstructure:"api_key"`
	// Model is the default model for requests.
	Model string `yaml:"model" mapstructure:"model"`
	// Temperature is the default sampling temperature.
	Temperature float64 `yaml:"temperature" mapstructure:"temperature"`
	// MaxTokens is the default response length limit.
	MaxTokens int `yaml:"max_tokens" mapstructure:"max_tokens"`
	// Timeout bounds a single remote call. A stalled call fails rather
	// than blocking forever.
	Timeout time.Duration `yaml:"timeout" mapstructure:"timeout"`
}
