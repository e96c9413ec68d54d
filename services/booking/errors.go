package booking

import (
	"errors"
	"fmt"
)

// Error codes for booking failures.
const (
	CodeInvalid      = "invalid"
	CodeConflict     = "conflict"
	CodeNotFound     = "notFound"
	CodeUnauthorized = "unauthorized"
)

type BookingError struct {
	Code    string
	Message string
}

func (e *BookingError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func NewInvalidError(format string, args ...interface{}) error {
	return &BookingError{Code: CodeInvalid, Message: fmt.Sprintf(format, args...)}
}

func NewConflictError(format string, args ...interface{}) error {
	return &BookingError{Code: CodeConflict, Message: fmt.Sprintf(format, args...)}
}

func NewNotFoundError(format string, args ...interface{}) error {
	return &BookingError{Code: CodeNotFound, Message: fmt.Sprintf(format, args...)}
}

func NewUnauthorizedError(format string, args ...interface{}) error {
	return &BookingError{Code: CodeUnauthorized, Message: fmt.Sprintf(format, args...)}
}

// ErrorCode returns the booking error code, or "" for untyped errors.
func ErrorCode(err error) string {
	var be *BookingError
	if errors.As(err, &be) {
		return be.Code
	}
	return ""
}

// ErrorMessage returns the human-readable part of a booking error.
func ErrorMessage(err error) string {
	var be *BookingError
	if errors.As(err, &be) {
		return be.Message
	}
	return err.Error()
}

func IsInvalid(err error) bool      { return ErrorCode(err) == CodeInvalid }
func IsConflict(err error) bool     { return ErrorCode(err) == CodeConflict }
func IsNotFound(err error) bool     { return ErrorCode(err) == CodeNotFound }
func IsUnauthorized(err error) bool { return ErrorCode(err) == CodeUnauthorized }
