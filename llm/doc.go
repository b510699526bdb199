// Package llm abstracts the remote text-generation service behind a
// provider interface with universal request/response types and a
// channel-based streaming mode. Provider drivers live in sub-packages
// (openai, ollama) and register themselves at init time:
//
//	import _ "github.com/articledry/dryer/llm/openai"
//
//	p, err := llm.NewProvider(llm.Config{Provider: "openai", APIKey: key})
//	full, err := llm.Generate(ctx, p, content, systemPrompt, onChunk)
//
// Generate invokes onChunk once per received fragment and still returns
// the full concatenated text at the end. Authentication failures, rate
// limiting, and unknown models surface as distinguishable error codes.
package llm
