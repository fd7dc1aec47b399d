package common

import (
	"errors"
	"fmt"
)

// AppError represents application-specific errors
type AppError struct {
	Code    string
	Message string
	Cause   error
}

func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Cause
}

// Stable error codes for the extraction pipeline. Every per-file failure maps
// to exactly one of these.
const (
	CodeUnsupportedType    = "UNSUPPORTED_TYPE"
	CodeContentRead        = "CONTENT_READ"
	CodeInvocationFailed   = "INVOCATION_FAILED"
	CodeUnparsableResponse = "UNPARSABLE_RESPONSE"
)

// Common application errors
var (
	ErrNotFound           = errors.New("resource not found")
	ErrInvalidInput       = errors.New("invalid input")
	ErrUnsupportedType    = errors.New("unsupported file type")
	ErrContentRead        = errors.New("content read failed")
	ErrInvocationFailed   = errors.New("model invocation failed")
	ErrUnparsableResponse = errors.New("unparsable model response")
)

// Error constructors
func NewAppError(code, message string, cause error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

// UnsupportedTypeError is raised before any I/O is attempted on the file.
func UnsupportedTypeError(mimeType string) *AppError {
	return NewAppError(CodeUnsupportedType, fmt.Sprintf("unsupported file type: %s", mimeType), ErrUnsupportedType)
}

func ContentReadError(cause error) *AppError {
	return NewAppError(CodeContentRead, "failed to read file content", errors.Join(ErrContentRead, cause))
}

func InvocationError(cause error) *AppError {
	return NewAppError(CodeInvocationFailed, "model invocation failed", errors.Join(ErrInvocationFailed, cause))
}

func UnparsableResponseError(cause error) *AppError {
	return NewAppError(CodeUnparsableResponse, "could not extract valid JSON from model response", errors.Join(ErrUnparsableResponse, cause))
}

// ErrorCode extracts the stable code from an error chain, or "" if the error
// is not an AppError.
func ErrorCode(err error) string {
	var ae *AppError
	if errors.As(err, &ae) {
		return ae.Code
	}
	return ""
}

func WrapError(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}
