// Package resilience provides retry with exponential backoff and
// jitter for calls to remote collaborators. The LLM client uses it for
// blocking completions; RetryIf decides which failures are worth
// another attempt.
package resilience
