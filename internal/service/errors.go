package service

import (
	"errors"
	"fmt"
)

// ErrorKind is the machine-readable classification attached to every
// domain error the services return.
type ErrorKind string

const (
	KindUnauthenticated    ErrorKind = "UNAUTHENTICATED"
	KindForbidden          ErrorKind = "FORBIDDEN"
	KindNotAMember         ErrorKind = "NOT_A_MEMBER"
	KindInvalidBatch       ErrorKind = "INVALID_BATCH"
	KindInvalidGrade       ErrorKind = "INVALID_GRADE"
	KindResponseNotFound   ErrorKind = "RESPONSE_NOT_FOUND"
	KindAttemptNotFound    ErrorKind = "ATTEMPT_NOT_FOUND"
	KindNotificationFailed ErrorKind = "NOTIFICATION_FAILED"
	KindStoreUnavailable   ErrorKind = "STORE_UNAVAILABLE"

	// KindNotFound covers supporting resources (e.g. notifications)
	// outside the grading taxonomy proper.
	KindNotFound ErrorKind = "NOT_FOUND"
)

// Error is a domain error with a kind the HTTP layer maps to a status
// code and a message safe to return to callers. The wrapped cause, if
// any, stays server-side.
type Error struct {
	Kind    ErrorKind
	Message string
	cause   error
}

func (e *Error) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.cause)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error { return e.cause }

func NewError(kind ErrorKind, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

func WrapError(kind ErrorKind, cause error, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...), cause: cause}
}

// KindOf extracts the kind from an error chain; unknown errors report
// KindStoreUnavailable since anything unclassified here is an
// infrastructure failure.
func KindOf(err error) ErrorKind {
	var domainErr *Error
	if errors.As(err, &domainErr) {
		return domainErr.Kind
	}
	return KindStoreUnavailable
}

// MessageOf returns the caller-safe message for an error chain.
func MessageOf(err error) string {
	var domainErr *Error
	if errors.As(err, &domainErr) {
		return domainErr.Message
	}
	return "internal server error"
}
