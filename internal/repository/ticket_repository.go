package repository

import (
	"context"

	"github.com/spec-kit/helpdesk/internal/domain"
	"github.com/spec-kit/helpdesk/internal/persistence"
)

// TicketRepository encapsulates ticket persistence.
type TicketRepository interface {
	List(ctx context.Context) ([]domain.Ticket, error)
	Mutate(ctx context.Context, fn func([]domain.Ticket) ([]domain.Ticket, error)) error
}

// NewTicketRepository returns the ticket collection on store.
func NewTicketRepository(store persistence.RecordStore) TicketRepository {
	return &ticketRepository{NewCollection[domain.Ticket](store, persistence.CollectionTickets)}
}

type ticketRepository struct {
	*Collection[domain.Ticket]
}

func (r *ticketRepository) List(ctx context.Context) ([]domain.Ticket, error) {
	return r.All(ctx)
}
