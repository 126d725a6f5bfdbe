package core

import (
	"errors"
	"net/http"
)

// ErrorKind classifies failures of the review pipeline.
type ErrorKind int

const (
	KindValidation ErrorKind = iota + 1
	KindTemplateUnavailable
	KindProviderFailure
)

func (k ErrorKind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindTemplateUnavailable:
		return "template_unavailable"
	case KindProviderFailure:
		return "provider_failure"
	default:
		return "unknown"
	}
}

// Error is returned by the review pipeline. Message is what callers see; Err keeps
// the underlying cause for logs and errors.Is.
type Error struct {
	Kind    ErrorKind
	Message string
	Err     error
}

// NewError builds an Error, taking the message from err when none is given.
func NewError(kind ErrorKind, message string, err error) *Error {
	if message == "" && err != nil {
		message = err.Error()
	}
	return &Error{Kind: kind, Message: message, Err: err}
}

func (e *Error) Error() string {
	if e.Err != nil && e.Err.Error() != e.Message {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.Err }

// HTTPStatus maps the kind onto the status code sent to clients.
func (e *Error) HTTPStatus() int {
	if e.Kind == KindValidation {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

// KindOf extracts the kind from err, or 0 when err is not a pipeline error.
func KindOf(err error) ErrorKind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return 0
}
