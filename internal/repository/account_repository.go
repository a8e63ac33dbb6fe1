package repository

import (
	"context"

	"github.com/spec-kit/helpdesk/internal/domain"
	"github.com/spec-kit/helpdesk/internal/persistence"
)

// AccountRepository defines persistence access for accounts.
type AccountRepository interface {
	List(ctx context.Context) ([]domain.Account, error)
	Mutate(ctx context.Context, fn func([]domain.Account) ([]domain.Account, error)) error
}

// NewAccountRepository returns the account collection on store.
func NewAccountRepository(store persistence.RecordStore) AccountRepository {
	return &accountRepository{NewCollection[domain.Account](store, persistence.CollectionAccounts)}
}

type accountRepository struct {
	*Collection[domain.Account]
}

func (r *accountRepository) List(ctx context.Context) ([]domain.Account, error) {
	return r.All(ctx)
}
