package errors

import (
	"encoding/json"
	"fmt"
)

// ErrorCode represents a specific error condition
type ErrorCode string

const (
	// Configuration errors
	ErrCodeConfigNotFound ErrorCode = "CONFIG_NOT_FOUND"
	ErrCodeConfigInvalid  ErrorCode = "CONFIG_INVALID"

	// Editor adapter errors
	ErrCodeEditorAttach  ErrorCode = "EDITOR_ATTACH_FAILED"
	ErrCodeEditorRPC     ErrorCode = "EDITOR_RPC_FAILED"
	ErrCodeBufferMissing ErrorCode = "BUFFER_MISSING"
	ErrCodeFileNotFound  ErrorCode = "FILE_NOT_FOUND"

	// General errors
	ErrCodeInternal     ErrorCode = "INTERNAL_ERROR"
	ErrCodeInvalidInput ErrorCode = "INVALID_INPUT"
)

// QuicknavError represents a structured error with context
type QuicknavError struct {
	Code    ErrorCode              `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
	Cause   error                  `json:"-"`
}

// Error implements the error interface
func (e *QuicknavError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (caused by: %v)", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *QuicknavError) Unwrap() error {
	return e.Cause
}

// WithDetail adds a detail to the error
func (e *QuicknavError) WithDetail(key string, value interface{}) *QuicknavError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// ToJSON converts the error to JSON
func (e *QuicknavError) ToJSON() string {
	data, _ := json.MarshalIndent(e, "", "  ")
	return string(data)
}

// New creates a new QuicknavError
func New(code ErrorCode, message string) *QuicknavError {
	return &QuicknavError{
		Code:    code,
		Message: message,
	}
}

// Wrap wraps an existing error with a QuicknavError
func Wrap(err error, code ErrorCode, message string) *QuicknavError {
	return &QuicknavError{
		Code:    code,
		Message: message,
		Cause:   err,
	}
}

// Is checks if an error carries a specific error code
func Is(err error, code ErrorCode) bool {
	if err == nil {
		return false
	}

	qErr, ok := err.(*QuicknavError)
	if !ok {
		if unwrapper, ok := err.(interface{ Unwrap() error }); ok {
			return Is(unwrapper.Unwrap(), code)
		}
		return false
	}

	return qErr.Code == code
}

// GetCode extracts the error code from an error
func GetCode(err error) ErrorCode {
	if err == nil {
		return ""
	}

	qErr, ok := err.(*QuicknavError)
	if !ok {
		if unwrapper, ok := err.(interface{ Unwrap() error }); ok {
			return GetCode(unwrapper.Unwrap())
		}
		return ErrCodeInternal
	}

	return qErr.Code
}
