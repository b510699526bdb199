// Package errors provides unified error handling for dryer.
// It implements structured error types with machine-readable codes,
// HTTP status mapping, and retryable detection.
//
// The taxonomy mirrors the failure modes of the processing core:
// plugin configuration and execution failures, registry misuse, and
// remote generator failures with distinguishable causes. Incomplete
// streamed markup is deliberately not an error anywhere in this
// package; the stream parser treats it as "not yet parseable".
package errors
