package service

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/spec-kit/helpdesk/internal/auth"
	"github.com/spec-kit/helpdesk/internal/domain"
	"github.com/spec-kit/helpdesk/internal/events"
	"github.com/spec-kit/helpdesk/internal/repository"
)

var (
	// ErrInvalidCredentials means no account matched the email/password pair.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrAccountExists means the email is already registered.
	ErrAccountExists = errors.New("account already exists")
)

// AccountService coordinates signup and login.
type AccountService struct {
	accounts   repository.AccountRepository
	passwords  auth.PasswordScheme
	dispatcher events.Dispatcher
	logger     *zap.Logger
}

// AccountDependencies bundles collaborators for the account service.
type AccountDependencies struct {
	AccountRepo repository.AccountRepository
	Passwords   auth.PasswordScheme
	Dispatcher  events.Dispatcher
	Logger      *zap.Logger
}

// NewAccountService builds the service. Passwords defaults to PlainScheme and
// Logger to a no-op logger.
func NewAccountService(deps AccountDependencies) *AccountService {
	s := &AccountService{
		accounts:   deps.AccountRepo,
		passwords:  deps.Passwords,
		dispatcher: deps.Dispatcher,
		logger:     deps.Logger,
	}
	if s.passwords == nil {
		s.passwords = auth.PlainScheme{}
	}
	if s.logger == nil {
		s.logger = zap.NewNop()
	}
	return s
}

// Authenticate returns the first stored account whose email matches exactly
// and whose password verifies.
func (s *AccountService) Authenticate(ctx context.Context, email, password string) (domain.Account, error) {
	accounts, err := s.accounts.List(ctx)
	if err != nil {
		return domain.Account{}, err
	}
	for _, account := range accounts {
		if account.Email == email && s.passwords.Verify(account.Password, password) {
			return account, nil
		}
	}
	return domain.Account{}, ErrInvalidCredentials
}

// Register appends a new account unless the email is taken. Fields are stored
// unvalidated; empty strings are accepted.
func (s *AccountService) Register(ctx context.Context, name, email, password string) (domain.Account, error) {
	var created domain.Account
	err := s.accounts.Mutate(ctx, func(accounts []domain.Account) ([]domain.Account, error) {
		for _, existing := range accounts {
			if existing.Email == email {
				return nil, ErrAccountExists
			}
		}
		stored, err := s.passwords.Hash(password)
		if err != nil {
			return nil, err
		}
		created = domain.Account{Name: name, Email: email, Password: stored}
		return append(accounts, created), nil
	})
	if err != nil {
		return domain.Account{}, err
	}

	s.logger.Info("account registered", zap.String("email", email))
	publish(ctx, s.dispatcher, s.logger, events.Event{
		Type:    events.EventAccountRegistered,
		Subject: email,
		Payload: events.AccountRegisteredPayload{Name: name, Email: email},
	})
	return created, nil
}
