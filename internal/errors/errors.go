package errors

import (
	"errors"
	"fmt"
)

// ErrorCode represents a category of application error.
type ErrorCode string

const (
	// ErrCodeEmptyInput indicates the submitted passkey was empty after trimming.
	ErrCodeEmptyInput ErrorCode = "empty_input"
	// ErrCodeUnsafeInput indicates the submitted passkey matched the character denylist.
	ErrCodeUnsafeInput ErrorCode = "unsafe_characters"
	// ErrCodeTransport indicates the backend could not be reached (DNS, connect, abort).
	ErrCodeTransport ErrorCode = "transport"
	// ErrCodeProtocol indicates a successful HTTP response with a missing or invalid payload.
	ErrCodeProtocol ErrorCode = "protocol"
	// ErrCodeContract indicates a caller passed malformed arguments to a pure helper.
	ErrCodeContract ErrorCode = "contract"
	// ErrCodeNotFound indicates a resource was not found.
	ErrCodeNotFound ErrorCode = "not_found"
	// ErrCodeInternal indicates an internal error.
	ErrCodeInternal ErrorCode = "internal"
	// ErrCodeTimeout indicates a timeout occurred.
	ErrCodeTimeout ErrorCode = "timeout"
	// ErrCodeCanceled indicates the operation was canceled.
	ErrCodeCanceled ErrorCode = "canceled"
)

// AppError represents a structured application error with a code, message, and optional cause.
// It supports error wrapping and unwrapping for use with errors.Is and errors.As.
type AppError struct {
	// Code categorizes the error type
	Code ErrorCode
	// Message is a human-readable error message
	Message string
	// Cause is the underlying error that caused this error (optional)
	Cause error
	// Field is the specific field that caused the error (optional)
	Field string
}

// Error implements the error interface.
func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

// Unwrap returns the underlying cause, enabling errors.Is and errors.As.
func (e *AppError) Unwrap() error {
	return e.Cause
}

// EmptyInput creates a new EmptyInput error.
func EmptyInput(message string) *AppError {
	return &AppError{Code: ErrCodeEmptyInput, Message: message}
}

// UnsafeInput creates a new UnsafeInput error.
func UnsafeInput(message string) *AppError {
	return &AppError{Code: ErrCodeUnsafeInput, Message: message}
}

// Transport wraps a failed round trip to the backend.
func Transport(err error, message string) *AppError {
	return &AppError{Code: ErrCodeTransport, Message: message, Cause: err}
}

// Protocol creates a new Protocol error.
func Protocol(message string) *AppError {
	return &AppError{Code: ErrCodeProtocol, Message: message}
}

// Contract creates a new Contract error for the given argument name.
func Contract(field, message string) *AppError {
	return &AppError{Code: ErrCodeContract, Message: message, Field: field}
}

// NotFound creates a new NotFound error.
func NotFound(message string) *AppError {
	return &AppError{Code: ErrCodeNotFound, Message: message}
}

// NotFoundf creates a new NotFound error with formatted message.
func NotFoundf(format string, args ...any) *AppError {
	return &AppError{Code: ErrCodeNotFound, Message: fmt.Sprintf(format, args...)}
}

// Internal creates a new Internal error.
func Internal(message string) *AppError {
	return &AppError{Code: ErrCodeInternal, Message: message}
}

// Internalf creates a new Internal error with formatted message.
func Internalf(format string, args ...any) *AppError {
	return &AppError{Code: ErrCodeInternal, Message: fmt.Sprintf(format, args...)}
}

// Wrap wraps an existing error with an AppError, preserving the cause.
func Wrap(err error, code ErrorCode, message string) *AppError {
	if err == nil {
		return nil
	}
	return &AppError{
		Code:    code,
		Message: message,
		Cause:   err,
	}
}

// Wrapf wraps an existing error with an AppError and formatted message.
func Wrapf(err error, code ErrorCode, format string, args ...any) *AppError {
	return Wrap(err, code, fmt.Sprintf(format, args...))
}

// isCode checks if an error has a specific error code.
func isCode(err error, code ErrorCode) bool {
	var appErr *AppError
	return errors.As(err, &appErr) && appErr.Code == code
}

// IsEmptyInput checks if an error is an EmptyInput error.
func IsEmptyInput(err error) bool {
	return isCode(err, ErrCodeEmptyInput)
}

// IsUnsafeInput checks if an error is an UnsafeInput error.
func IsUnsafeInput(err error) bool {
	return isCode(err, ErrCodeUnsafeInput)
}

// IsInput reports whether err belongs to the input family (empty or unsafe).
func IsInput(err error) bool {
	return IsEmptyInput(err) || IsUnsafeInput(err)
}

// IsTransport checks if an error is a Transport error.
func IsTransport(err error) bool {
	return isCode(err, ErrCodeTransport)
}

// IsProtocol checks if an error is a Protocol error.
func IsProtocol(err error) bool {
	return isCode(err, ErrCodeProtocol)
}

// IsContract checks if an error is a Contract error.
func IsContract(err error) bool {
	return isCode(err, ErrCodeContract)
}

// IsNotFound checks if an error is a NotFound error.
func IsNotFound(err error) bool {
	return isCode(err, ErrCodeNotFound)
}

// IsInternal checks if an error is an Internal error.
func IsInternal(err error) bool {
	return isCode(err, ErrCodeInternal)
}

// IsTimeout checks if an error is a Timeout error.
func IsTimeout(err error) bool {
	return isCode(err, ErrCodeTimeout)
}

// IsCanceled checks if an error is a Canceled error.
func IsCanceled(err error) bool {
	return isCode(err, ErrCodeCanceled)
}

// GetCode returns the ErrorCode from an error, or empty string if not an AppError.
func GetCode(err error) ErrorCode {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Code
	}
	return ""
}

// GetField returns the Field from an error, or empty string if not an AppError or no field set.
func GetField(err error) string {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Field
	}
	return ""
}
