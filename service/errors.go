package service

import (
	"errors"
	"fmt"
)

// ErrorKind classifies failures of the data access layer.
type ErrorKind string

const (
	KindNotFound            ErrorKind = "NotFound"
	KindConstraintViolation ErrorKind = "ConstraintViolation"
	KindValidation          ErrorKind = "ValidationError"
	KindInternal            ErrorKind = "Internal"
)

// Error is returned by every service operation that fails. Err keeps the
// underlying driver error, if any.
type Error struct {
	Kind    ErrorKind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err == nil {
		return e.Message
	}
	return fmt.Sprintf("%s: %v", e.Message, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

func NotFound(format string, args ...interface{}) *Error {
	return &Error{Kind: KindNotFound, Message: fmt.Sprintf(format, args...)}
}

func Validation(format string, args ...interface{}) *Error {
	return &Error{Kind: KindValidation, Message: fmt.Sprintf(format, args...)}
}

func ConstraintViolation(message string, err error) *Error {
	return &Error{Kind: KindConstraintViolation, Message: message, Err: err}
}

func Internal(message string, err error) *Error {
	return &Error{Kind: KindInternal, Message: message, Err: err}
}

// KindOf reports the kind of err. Errors that are not *Error are Internal.
func KindOf(err error) ErrorKind {
	var serviceErr *Error
	if errors.As(err, &serviceErr) {
		return serviceErr.Kind
	}
	return KindInternal
}
