// Package apperr defines the client-visible failures of the service.
package apperr

import (
	"errors"
	"fmt"
	"net/http"
)

// Error is a failure the caller is allowed to see. Status is the HTTP status
// it maps to.
type Error struct {
	Code    string
	Status  int
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

func New(status int, code, message string) *Error {
	return &Error{Code: code, Status: status, Message: message}
}

var (
	ErrDuplicateUsername            = New(http.StatusBadRequest, "duplicate_username", "Username already registered")
	ErrDuplicateParentEmail         = New(http.StatusBadRequest, "duplicate_parent_email", "Email already registered")
	ErrMissingEmailForParent        = New(http.StatusBadRequest, "missing_email", "Email required for parent signup")
	ErrParentRequiredForChildSignup = New(http.StatusForbidden, "parent_required", "Only parents can create child accounts")
	ErrInvalidCredentials           = New(http.StatusBadRequest, "invalid_credentials", "Incorrect username or password")
	ErrInvalidToken                 = New(http.StatusUnauthorized, "invalid_token", "Could not validate credentials")
	ErrUserNotFound                 = New(http.StatusUnauthorized, "user_not_found", "User not found")
	ErrForbidden                    = New(http.StatusForbidden, "forbidden", "Not authorized")
	ErrParentsOnly                  = New(http.StatusForbidden, "forbidden", "Only parents can access this endpoint")
	ErrNotFound                     = New(http.StatusNotFound, "not_found", "Not found")
)

// BadRequest reports malformed input.
func BadRequest(format string, args ...any) *Error {
	return New(http.StatusBadRequest, "bad_request", fmt.Sprintf(format, args...))
}

// As returns the *Error in err's chain, if any.
func As(err error) (*Error, bool) {
	var ae *Error
	if errors.As(err, &ae) {
		return ae, true
	}
	return nil, false
}
