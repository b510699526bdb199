package errors

import (
	"fmt"
	"net/http"
)

// AppError is the unified application error type.
type AppError struct {
	// Code is a machine-readable error code.
	Code ErrorCode `json:"code"`
	// Message is a human-readable error message.
	Message string `json:"message"`
	// Retryable indicates if the operation can be retried.
	Retryable bool `json:"retryable"`
	// HTTPStatus is the recommended HTTP status code for this error.
	HTTPStatus int `json:"-"`
	// Details contains additional context for the error.
	Details map[string]any `json:"details,omitempty"`
	// Cause is the underlying error that caused this error.
	Cause error `json:"-"`
}

// Error returns the string representation of the error.
func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %v)", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause of the error.
func (e *AppError) Unwrap() error { return e.Cause }

// WithCause sets the underlying cause of the error and returns the receiver.
func (e *AppError) WithCause(cause error) *AppError {
	e.Cause = cause
	return e
}

// WithDetail sets a single detail key-value pair and returns the receiver.
func (e *AppError) WithDetail(key string, value any) *AppError {
	if e.Details == nil {
		e.Details = make(map[string]any)
	}
	e.Details[key] = value
	return e
}

// New creates a new AppError with automatic retryable detection.
func New(code ErrorCode, message string, httpStatus int) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
		Retryable:  IsRetryableCode(code),
	}
}

// --- Plugin error constructors ---

// PluginConfiguration creates a new AppError for invalid plugin options.
func PluginConfiguration(plugin, reason string) *AppError {
	return &AppError{
		Code: ErrCodePluginConfiguration, Message: fmt.Sprintf("Plugin %s is misconfigured: %s", plugin, reason),
		HTTPStatus: http.StatusBadRequest, Retryable: false,
		Details: map[string]any{"plugin": plugin},
	}
}

// PluginExecution wraps a failure during a plugin's Process, tagged with the
// plugin name. This is the error the pipeline surfaces when a stage fails.
func PluginExecution(plugin string, cause error) *AppError {
	return &AppError{
		Code: ErrCodePluginExecution, Message: fmt.Sprintf("Plugin %s failed.", plugin),
		HTTPStatus: http.StatusInternalServerError, Retryable: false,
		Details: map[string]any{"plugin": plugin}, Cause: cause,
	}
}

// PluginConstruction wraps a registry recipe failure for the named plugin.
func PluginConstruction(plugin string, cause error) *AppError {
	return &AppError{
		Code: ErrCodePluginConstruction, Message: fmt.Sprintf("Failed to construct plugin %s.", plugin),
		HTTPStatus: http.StatusInternalServerError, Retryable: false,
		Details: map[string]any{"plugin": plugin}, Cause: cause,
	}
}

// --- Registry error constructors ---

// UnknownPlugin creates a new AppError for an unregistered plugin name.
func UnknownPlugin(name string) *AppError {
	return &AppError{
		Code: ErrCodeUnknownPlugin, Message: fmt.Sprintf("Plugin %q is not registered.", name),
		HTTPStatus: http.StatusNotFound, Retryable: false,
		Details: map[string]any{"plugin": name},
	}
}

// DuplicatePlugin creates a new AppError for a plugin name registered twice.
func DuplicatePlugin(name string) *AppError {
	return &AppError{
		Code: ErrCodeDuplicatePlugin, Message: fmt.Sprintf("Plugin %q is already registered.", name),
		HTTPStatus: http.StatusConflict, Retryable: false,
		Details: map[string]any{"plugin": name},
	}
}

// --- Remote generator error constructors ---

// RemoteAuth creates a new AppError for rejected remote credentials.
func RemoteAuth(provider string) *AppError {
	return &AppError{
		Code: ErrCodeRemoteAuth, Message: "Authentication failed: please check your API key.",
		HTTPStatus: http.StatusUnauthorized, Retryable: false,
		Details: map[string]any{"provider": provider},
	}
}

// RemoteRateLimited creates a new AppError for a rate-limited remote call.
func RemoteRateLimited(provider string) *AppError {
	return &AppError{
		Code: ErrCodeRemoteRateLimited, Message: "Rate limit exceeded: too many requests.",
		HTTPStatus: http.StatusTooManyRequests, Retryable: true,
		Details: map[string]any{"provider": provider},
	}
}

// RemoteModelNotFound creates a new AppError for an unknown model name.
func RemoteModelNotFound(provider, model string) *AppError {
	return &AppError{
		Code: ErrCodeRemoteModelNotFound, Message: fmt.Sprintf("Model %q not found.", model),
		HTTPStatus: http.StatusNotFound, Retryable: false,
		Details: map[string]any{"provider": provider, "model": model},
	}
}

// RemoteUnavailable creates a new AppError for an unreachable remote generator.
func RemoteUnavailable(provider string, cause error) *AppError {
	return &AppError{
		Code: ErrCodeRemoteUnavailable, Message: fmt.Sprintf("Unable to reach %s. Check the endpoint and your connection.", provider),
		HTTPStatus: http.StatusBadGateway, Retryable: true,
		Details: map[string]any{"provider": provider}, Cause: cause,
	}
}

// Timeout creates a new AppError for a stalled operation.
func Timeout(operation string) *AppError {
	return &AppError{
		Code: ErrCodeTimeout, Message: "The operation took too long. Please try again.",
		HTTPStatus: http.StatusGatewayTimeout, Retryable: true,
		Details: map[string]any{"operation": operation},
	}
}

// --- Generic constructors ---

// InvalidInput creates a new AppError for invalid request input.
func InvalidInput(reason string) *AppError {
	return &AppError{
		Code: ErrCodeInvalidInput, Message: reason,
		HTTPStatus: http.StatusBadRequest, Retryable: false,
	}
}

// Internal creates a new AppError for an unexpected internal error.
func Internal(cause error) *AppError {
	return &AppError{
		Code: ErrCodeInternal, Message: "An unexpected error occurred.",
		HTTPStatus: http.StatusInternalServerError, Retryable: false, Cause: cause,
	}
}
