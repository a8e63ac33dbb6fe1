package util

import (
	"errors"
	"fmt"
	"net/http"
)

// DomainError standardizes application errors. A non-empty Redirect means the
// error is reported to the browser as a redirect instead of a status page.
type DomainError struct {
	Code       string
	Message    string
	HTTPStatus int
	Redirect   string
	Err        error
}

func (e *DomainError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *DomainError) Unwrap() error {
	return e.Err
}

// NewDomainError constructs a DomainError.
func NewDomainError(code, message string, status int) *DomainError {
	return &DomainError{Code: code, Message: message, HTTPStatus: status}
}

// WithRedirect returns a copy of e that is surfaced as a redirect to location.
func (e *DomainError) WithRedirect(location string) *DomainError {
	cp := *e
	cp.Redirect = location
	cp.HTTPStatus = http.StatusFound
	return &cp
}

// NewInvalidCredentials sends the browser back to the login form.
func NewInvalidCredentials() error {
	return NewDomainError("INVALID_CREDENTIALS", "invalid credentials", http.StatusUnauthorized).
		WithRedirect("/auth/login?error=invalid_credentials")
}

// NewAccountExists sends the browser back to the signup form.
func NewAccountExists() error {
	return NewDomainError("ACCOUNT_EXISTS", "account already exists", http.StatusConflict).
		WithRedirect("/auth/signup?error=user_exists")
}

// NewPasswordTooLong sends the browser back to the signup form.
func NewPasswordTooLong() error {
	return NewDomainError("PASSWORD_TOO_LONG", "password too long", http.StatusBadRequest).
		WithRedirect("/auth/signup?error=password_too_long")
}

// NewUnauthenticated sends the browser to the login form.
func NewUnauthenticated() error {
	return NewDomainError("UNAUTHENTICATED", "login required", http.StatusUnauthorized).
		WithRedirect("/auth/login")
}

func NewInternalError(err error) error {
	return &DomainError{
		Code:       "INTERNAL_ERROR",
		Message:    "internal server error",
		HTTPStatus: http.StatusInternalServerError,
		Err:        err,
	}
}

// ToDomainError converts generic errors to DomainError.
func ToDomainError(err error) *DomainError {
	if err == nil {
		return nil
	}
	var domainErr *DomainError
	if errors.As(err, &domainErr) {
		return domainErr
	}
	return &DomainError{
		Code:       "INTERNAL_ERROR",
		Message:    "internal server error",
		HTTPStatus: http.StatusInternalServerError,
		Err:        err,
	}
}
