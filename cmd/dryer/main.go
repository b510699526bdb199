package main

import (
	"fmt"
	"os"

	// Register the LLM provider drivers.
	_ "github.com/articledry/dryer/llm/ollama"
	_ "github.com/articledry/dryer/llm/openai"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
