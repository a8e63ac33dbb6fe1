package auth

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/spec-kit/helpdesk/internal/config"
)

// ErrPasswordTooLong is returned by schemes that cannot store the submitted
// password. bcrypt only accepts up to 72 bytes.
var ErrPasswordTooLong = errors.New("password too long")

// PasswordScheme turns a submitted password into its stored form and checks
// a submission against a stored value.
type PasswordScheme interface {
	Hash(plain string) (string, error)
	Verify(stored, plain string) bool
}

// NewPasswordScheme resolves a configured scheme name.
func NewPasswordScheme(cfg config.AuthConfig) (PasswordScheme, error) {
	switch cfg.PasswordScheme {
	case "", config.PasswordSchemePlain:
		return PlainScheme{}, nil
	case config.PasswordSchemeBcrypt:
		return BcryptScheme{Cost: cfg.BcryptCost}, nil
	default:
		return nil, fmt.Errorf("unknown password scheme %q", cfg.PasswordScheme)
	}
}

// PlainScheme stores passwords verbatim and compares them exactly. It keeps
// existing data files readable and is the default; it offers no protection if
// the account collection leaks.
type PlainScheme struct{}

func (PlainScheme) Hash(plain string) (string, error) {
	return plain, nil
}

func (PlainScheme) Verify(stored, plain string) bool {
	return stored == plain
}

// BcryptScheme stores salted bcrypt hashes.
type BcryptScheme struct {
	Cost int
}

func (s BcryptScheme) Hash(plain string) (string, error) {
	cost := s.Cost
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(plain), cost)
	if errors.Is(err, bcrypt.ErrPasswordTooLong) {
		return "", ErrPasswordTooLong
	}
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

func (BcryptScheme) Verify(stored, plain string) bool {
	return bcrypt.CompareHashAndPassword([]byte(stored), []byte(plain)) == nil
}
