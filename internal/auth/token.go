package auth

import (
	"errors"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"
)

// TokenManager signs and verifies the session cookie value. The token only
// carries the session id; the account snapshot stays server side.
type TokenManager struct {
	secret []byte
}

// NewTokenManager builds a new manager.
func NewTokenManager(secret string) *TokenManager {
	return &TokenManager{secret: []byte(secret)}
}

// Sign wraps a session id in an HS256 token. Tokens carry no expiry; a session
// ends when it is deleted from the store.
func (tm *TokenManager) Sign(sessionID string) (string, error) {
	claims := jwt.RegisteredClaims{
		ID:       sessionID,
		IssuedAt: jwt.NewNumericDate(time.Now()),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(tm.secret)
}

// Parse validates a token and returns its session id.
func (tm *TokenManager) Parse(tokenStr string) (string, error) {
	parsed, err := jwt.ParseWithClaims(tokenStr, &jwt.RegisteredClaims{}, func(token *jwt.Token) (interface{}, error) {
		return tm.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return "", err
	}

	claims, ok := parsed.Claims.(*jwt.RegisteredClaims)
	if !ok || !parsed.Valid || claims.ID == "" {
		return "", errors.New("invalid session token")
	}
	return claims.ID, nil
}
