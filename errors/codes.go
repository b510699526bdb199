package errors

// ErrorCode represents a machine-readable error code.
type ErrorCode string

// Plugin errors
const (
	// ErrCodePluginConfiguration indicates bad or missing plugin options,
	// caught at construction time.
	ErrCodePluginConfiguration ErrorCode = "PLUGIN_CONFIGURATION"
	// ErrCodePluginExecution wraps any failure during a plugin's Process.
	ErrCodePluginExecution ErrorCode = "PLUGIN_EXECUTION"
	// ErrCodePluginConstruction indicates a registry recipe failed to build a plugin.
	ErrCodePluginConstruction ErrorCode = "PLUGIN_CONSTRUCTION"
)

// Registry errors
const (
	// ErrCodeUnknownPlugin indicates the requested plugin name is not registered.
	ErrCodeUnknownPlugin ErrorCode = "UNKNOWN_PLUGIN"
	// ErrCodeDuplicatePlugin indicates the plugin name is already registered.
	ErrCodeDuplicatePlugin ErrorCode = "DUPLICATE_PLUGIN"
)

// Remote generator errors (retryable where indicated)
const (
	// ErrCodeRemoteAuth indicates the remote generator rejected the credentials.
	ErrCodeRemoteAuth ErrorCode = "REMOTE_AUTH"
	// ErrCodeRemoteRateLimited indicates the remote generator is rate limiting.
	ErrCodeRemoteRateLimited ErrorCode = "REMOTE_RATE_LIMITED"
	// ErrCodeRemoteModelNotFound indicates the requested model does not exist.
	ErrCodeRemoteModelNotFound ErrorCode = "REMOTE_MODEL_NOT_FOUND"
	// ErrCodeRemoteUnavailable indicates the remote generator could not be reached.
	ErrCodeRemoteUnavailable ErrorCode = "REMOTE_UNAVAILABLE"
	// ErrCodeTimeout indicates a stalled call exceeded its deadline.
	ErrCodeTimeout ErrorCode = "TIMEOUT"
)

// Validation and internal errors
const (
	// ErrCodeInvalidInput indicates the request input is invalid.
	ErrCodeInvalidInput ErrorCode = "INVALID_INPUT"
	// ErrCodeInternal indicates an unexpected internal error.
	ErrCodeInternal ErrorCode = "INTERNAL_ERROR"
)

var retryableCodes = map[ErrorCode]bool{
	ErrCodeRemoteRateLimited: true,
	ErrCodeRemoteUnavailable: true,
	ErrCodeTimeout:           true,
}

// IsRetryableCode returns true if the error code indicates a retryable error.
func IsRetryableCode(code ErrorCode) bool {
	return retryableCodes[code]
}
