// Package apperrors defines the caller-visible error taxonomy. Handlers map
// these to HTTP statuses; everything else travels wrapped.
package apperrors

import (
	"errors"
	"net/http"
)

// Error is a domain error carrying the HTTP status it maps to.
type Error struct {
	Status  int
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

// NewNotFound signals that neither live nor cached data exists.
func NewNotFound(message string) *Error {
	if message == "" {
		message = "not found"
	}
	return &Error{Status: http.StatusNotFound, Message: message}
}

// NewServerError signals a data-layer inconsistency or unexpected failure.
func NewServerError(message string) *Error {
	if message == "" {
		message = "internal server error"
	}
	return &Error{Status: http.StatusInternalServerError, Message: message}
}

// NewEmailInUse signals a registration attempt with a taken email.
func NewEmailInUse() *Error {
	return &Error{Status: http.StatusForbidden, Message: "the received email is already in use"}
}

// NewBadRequest signals invalid caller input.
func NewBadRequest(message string) *Error {
	if message == "" {
		message = "bad request"
	}
	return &Error{Status: http.StatusBadRequest, Message: message}
}

// StatusOf extracts the HTTP status for err, defaulting to 500.
func StatusOf(err error) int {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Status
	}
	return http.StatusInternalServerError
}

// IsNotFound reports whether err is a not-found domain error.
func IsNotFound(err error) bool {
	var appErr *Error
	return errors.As(err, &appErr) && appErr.Status == http.StatusNotFound
}
