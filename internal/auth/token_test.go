package auth

import (
	"testing"

	jwt "github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenManager_RoundTrip(t *testing.T) {
	tm := NewTokenManager("secret")

	token, err := tm.Sign("session-1")
	require.NoError(t, err)

	id, err := tm.Parse(token)
	require.NoError(t, err)
	assert.Equal(t, "session-1", id)
}

func TestTokenManager_RejectsForeignSecret(t *testing.T) {
	token, err := NewTokenManager("other").Sign("session-1")
	require.NoError(t, err)

	_, err = NewTokenManager("secret").Parse(token)
	assert.Error(t, err)
}

func TestTokenManager_RejectsGarbageAndNone(t *testing.T) {
	tm := NewTokenManager("secret")

	_, err := tm.Parse("not-a-token")
	assert.Error(t, err)

	unsigned, err := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.RegisteredClaims{ID: "x"}).
		SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)
	_, err = tm.Parse(unsigned)
	assert.Error(t, err)
}

func TestTokenManager_RequiresSessionID(t *testing.T) {
	tm := NewTokenManager("secret")
	token, err := tm.Sign("")
	require.NoError(t, err)

	_, err = tm.Parse(token)
	assert.Error(t, err)
}
