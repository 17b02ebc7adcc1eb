package errors

import (
	"errors"
	"fmt"
)

// ErrorCode represents a unique error code for stable testing
type ErrorCode string

// Error codes for different error categories
const (
	// General errors
	ErrUnknown      ErrorCode = "UNKNOWN"
	ErrInternal     ErrorCode = "INTERNAL"
	ErrInvalidInput ErrorCode = "INVALID_INPUT"
	ErrNotFound     ErrorCode = "NOT_FOUND"

	// Configuration errors
	ErrConfigLoad  ErrorCode = "CONFIG_LOAD"
	ErrConfigParse ErrorCode = "CONFIG_PARSE"
	ErrConfigValid ErrorCode = "CONFIG_INVALID"

	// Settings errors (application settings, not the tools document)
	ErrSettingsLoad ErrorCode = "SETTINGS_LOAD"

	// Environment errors
	ErrEnvApply   ErrorCode = "ENV_APPLY"
	ErrEnvRestore ErrorCode = "ENV_RESTORE"

	// Command errors
	ErrCommandSpawn ErrorCode = "COMMAND_SPAWN"
	ErrCommandExit  ErrorCode = "COMMAND_EXIT"
)

// NagError represents a structured error with code and details
type NagError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *NagError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *NagError) Unwrap() error {
	return e.Wrapped
}

// Is matches any NagError carrying the same code
func (e *NagError) Is(target error) bool {
	var targetErr *NagError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new NagError with the given code and message
func New(code ErrorCode, message string) *NagError {
	return &NagError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new NagError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *NagError {
	return &NagError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a NagError
func Wrap(err error, code ErrorCode, message string) *NagError {
	if err == nil {
		return nil
	}
	return &NagError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *NagError {
	if err == nil {
		return nil
	}
	return &NagError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *NagError) WithDetail(key string, value interface{}) *NagError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var nagErr *NagError
	if errors.As(err, &nagErr) {
		return nagErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a NagError
func GetErrorCode(err error) ErrorCode {
	var nagErr *NagError
	if errors.As(err, &nagErr) {
		return nagErr.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details from an error, or nil if not a NagError
func GetErrorDetails(err error) map[string]interface{} {
	var nagErr *NagError
	if errors.As(err, &nagErr) {
		return nagErr.Details
	}
	return nil
}
