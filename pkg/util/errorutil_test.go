package util

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRedirectErrors(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		code     string
		redirect string
	}{
		{"invalid credentials", NewInvalidCredentials(), "INVALID_CREDENTIALS", "/auth/login?error=invalid_credentials"},
		{"account exists", NewAccountExists(), "ACCOUNT_EXISTS", "/auth/signup?error=user_exists"},
		{"password too long", NewPasswordTooLong(), "PASSWORD_TOO_LONG", "/auth/signup?error=password_too_long"},
		{"unauthenticated", NewUnauthenticated(), "UNAUTHENTICATED", "/auth/login"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			de := ToDomainError(tt.err)
			require.NotNil(t, de)
			assert.Equal(t, tt.code, de.Code)
			assert.Equal(t, tt.redirect, de.Redirect)
			assert.Equal(t, http.StatusFound, de.HTTPStatus)
		})
	}
}

func TestToDomainError_WrapsUnknown(t *testing.T) {
	cause := errors.New("disk full")

	de := ToDomainError(fmt.Errorf("save tickets: %w", cause))

	assert.Equal(t, "INTERNAL_ERROR", de.Code)
	assert.Equal(t, http.StatusInternalServerError, de.HTTPStatus)
	assert.Empty(t, de.Redirect)
	assert.ErrorIs(t, de, cause)
}

func TestToDomainError_FindsWrapped(t *testing.T) {
	wrapped := fmt.Errorf("login: %w", NewInvalidCredentials())

	de := ToDomainError(wrapped)

	assert.Equal(t, "INVALID_CREDENTIALS", de.Code)
	assert.Nil(t, ToDomainError(nil))
}

func TestWithRedirect_DoesNotMutate(t *testing.T) {
	base := NewDomainError("X", "x", http.StatusBadRequest)
	redirected := base.WithRedirect("/somewhere")

	assert.Empty(t, base.Redirect)
	assert.Equal(t, http.StatusBadRequest, base.HTTPStatus)
	assert.Equal(t, "/somewhere", redirected.Redirect)
}
