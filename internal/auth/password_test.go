package auth

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/helpdesk/internal/config"
)

func TestPlainScheme(t *testing.T) {
	scheme := PlainScheme{}

	stored, err := scheme.Hash("hunter2")

	require.NoError(t, err)
	assert.Equal(t, "hunter2", stored)
	assert.True(t, scheme.Verify(stored, "hunter2"))
	assert.False(t, scheme.Verify(stored, "Hunter2"))
	assert.True(t, scheme.Verify("", ""))
}

func TestBcryptScheme(t *testing.T) {
	scheme := BcryptScheme{Cost: 4}

	stored, err := scheme.Hash("hunter2")

	require.NoError(t, err)
	assert.NotEqual(t, "hunter2", stored)
	assert.True(t, scheme.Verify(stored, "hunter2"))
	assert.False(t, scheme.Verify(stored, "hunter3"))
	assert.False(t, scheme.Verify("hunter2", "hunter2"), "plain value is not a bcrypt hash")
}

func TestBcryptScheme_PasswordTooLong(t *testing.T) {
	scheme := BcryptScheme{Cost: 4}

	_, err := scheme.Hash(strings.Repeat("a", 73))
	assert.ErrorIs(t, err, ErrPasswordTooLong)

	stored, err := scheme.Hash(strings.Repeat("a", 72))
	require.NoError(t, err)
	assert.True(t, scheme.Verify(stored, strings.Repeat("a", 72)))
}

func TestNewPasswordScheme(t *testing.T) {
	plain, err := NewPasswordScheme(config.AuthConfig{PasswordScheme: config.PasswordSchemePlain})
	require.NoError(t, err)
	assert.IsType(t, PlainScheme{}, plain)

	hashed, err := NewPasswordScheme(config.AuthConfig{PasswordScheme: config.PasswordSchemeBcrypt, BcryptCost: 4})
	require.NoError(t, err)
	assert.Equal(t, BcryptScheme{Cost: 4}, hashed)

	_, err = NewPasswordScheme(config.AuthConfig{PasswordScheme: "rot13"})
	assert.Error(t, err)
}
