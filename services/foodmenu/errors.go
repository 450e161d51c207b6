// File: services/foodmenu/errors.go
package foodmenu

import (
	"fmt"
	"net/http"
)

// Error is a domain error that carries its intended HTTP status end-to-end.
// The wrapped cause is kept for server-side logging only; callers see just the
// code and message.
type Error struct {
	Code    int
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

func NewNotFound(msg string) *Error {
	return &Error{Code: http.StatusNotFound, Message: msg}
}

func NewBadRequest(msg string) *Error {
	return &Error{Code: http.StatusBadRequest, Message: msg}
}

// genericInternalMessage is the fixed user-facing message for unexpected
// failures; the original cause travels only in the wrapped error.
const genericInternalMessage = "An unexpected error occurred. Please try again later."

func NewInternal(cause error) *Error {
	return &Error{Code: http.StatusInternalServerError, Message: genericInternalMessage, Err: cause}
}
