package tools

import "fmt"

// Error represents an error that occurred during tool execution, carrying a
// code so transport layers can map it onto their own error space.
type Error struct {
	Code    int
	Message string
	Cause   error // The underlying error, if any
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s (code: %d): %v", e.Message, e.Code, e.Cause)
	}
	return fmt.Sprintf("%s (code: %d)", e.Message, e.Code)
}

// Unwrap returns the underlying error.
func (e *Error) Unwrap() error {
	return e.Cause
}

// NewErrorWithCause creates a new tool error wrapping an underlying error.
func NewErrorWithCause(code int, message string, cause error) *Error {
	return &Error{Code: code, Message: message, Cause: cause}
}

// NewInvalidParamsError creates a new error indicating invalid parameters.
func NewInvalidParamsError(message string) *Error {
	return &Error{Code: CodeInvalidParams, Message: message}
}

// Common error codes. These match standard JSON-RPC 2.0 error codes so
// results bridge cleanly onto RPC transports.
const (
	CodeInvalidParams = -32602
	CodeInternalError = -32603
)
