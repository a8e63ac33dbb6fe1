package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/spec-kit/helpdesk/internal/domain"
	"github.com/spec-kit/helpdesk/internal/events"
	"github.com/spec-kit/helpdesk/internal/repository"
)

// Ticket actions accepted by Apply.
const (
	ActionCreate = "create"
	ActionUpdate = "update"
	ActionDelete = "delete"
)

// TicketFields carries submitted ticket fields. A nil pointer means the field
// was not submitted at all, which differs from submitting an empty value.
type TicketFields struct {
	Title       *string
	Description *string
	Status      *string
}

// TicketAction is one submission to the combined ticket endpoint.
type TicketAction struct {
	Action   string
	TicketID string
	Fields   TicketFields
}

// TicketService coordinates ticket workflows.
type TicketService struct {
	tickets    repository.TicketRepository
	dispatcher events.Dispatcher
	logger     *zap.Logger
	now        func() time.Time
	newID      func() string
}

// TicketDependencies bundles collaborators for the ticket service.
type TicketDependencies struct {
	TicketRepo repository.TicketRepository
	Dispatcher events.Dispatcher
	Logger     *zap.Logger
	// Clock and IDs default to time.Now and uuid.NewString.
	Clock func() time.Time
	IDs   func() string
}

// NewTicketService constructs the service.
func NewTicketService(deps TicketDependencies) *TicketService {
	s := &TicketService{
		tickets:    deps.TicketRepo,
		dispatcher: deps.Dispatcher,
		logger:     deps.Logger,
		now:        deps.Clock,
		newID:      deps.IDs,
	}
	if s.logger == nil {
		s.logger = zap.NewNop()
	}
	if s.now == nil {
		s.now = time.Now
	}
	if s.newID == nil {
		s.newID = uuid.NewString
	}
	return s
}

// List returns all tickets in storage order.
func (s *TicketService) List(ctx context.Context) ([]domain.Ticket, error) {
	return s.tickets.List(ctx)
}

// Create appends a new ticket. Missing title and description become empty
// strings and a missing status becomes open; a submitted status is stored as
// given, including values outside the known set.
func (s *TicketService) Create(ctx context.Context, fields TicketFields) (domain.Ticket, error) {
	now := domain.NewTimestamp(s.now())
	ticket := domain.Ticket{
		Title:       valueOr(fields.Title, ""),
		Description: valueOr(fields.Description, ""),
		Status:      domain.TicketStatus(valueOr(fields.Status, string(domain.TicketStatusOpen))),
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	err := s.tickets.Mutate(ctx, func(tickets []domain.Ticket) ([]domain.Ticket, error) {
		ticket.ID = s.uniqueID(tickets)
		return append(tickets, ticket), nil
	})
	if err != nil {
		return domain.Ticket{}, err
	}

	s.logger.Debug("ticket created", zap.String("ticket_id", ticket.ID), zap.String("status", string(ticket.Status)))
	publish(ctx, s.dispatcher, s.logger, events.Event{
		Type:    events.EventTicketCreated,
		Subject: ticket.ID,
		Payload: events.TicketCreatedPayload{Title: ticket.Title, Status: ticket.Status},
	})
	return ticket, nil
}

// Update changes the submitted fields of the first ticket with the given id
// and refreshes its updated_at. The collection is saved whether or not a
// ticket matched; the bool reports a match.
func (s *TicketService) Update(ctx context.Context, id string, fields TicketFields) (bool, error) {
	var (
		found     bool
		oldStatus domain.TicketStatus
		updated   domain.Ticket
	)
	err := s.tickets.Mutate(ctx, func(tickets []domain.Ticket) ([]domain.Ticket, error) {
		for i := range tickets {
			if tickets[i].ID != id {
				continue
			}
			t := &tickets[i]
			oldStatus = t.Status
			if fields.Title != nil {
				t.Title = *fields.Title
			}
			if fields.Description != nil {
				t.Description = *fields.Description
			}
			if fields.Status != nil {
				t.Status = domain.TicketStatus(*fields.Status)
			}
			t.UpdatedAt = domain.NewTimestamp(s.now())
			if t.UpdatedAt.Before(t.CreatedAt.Time) {
				t.UpdatedAt = t.CreatedAt
			}
			found = true
			updated = *t
			break
		}
		return tickets, nil
	})
	if err != nil {
		return false, err
	}

	if !found {
		s.logger.Debug("ticket update matched nothing", zap.String("ticket_id", id))
		return false, nil
	}
	publish(ctx, s.dispatcher, s.logger, events.Event{
		Type:    events.EventTicketUpdated,
		Subject: id,
		Payload: events.TicketUpdatedPayload{OldStatus: oldStatus, NewStatus: updated.Status},
	})
	return true, nil
}

// Delete removes every ticket with the given id, keeping the order of the
// rest, and returns how many were removed.
func (s *TicketService) Delete(ctx context.Context, id string) (int, error) {
	removed := 0
	err := s.tickets.Mutate(ctx, func(tickets []domain.Ticket) ([]domain.Ticket, error) {
		kept := make([]domain.Ticket, 0, len(tickets))
		for _, t := range tickets {
			if t.ID == id {
				removed++
				continue
			}
			kept = append(kept, t)
		}
		return kept, nil
	})
	if err != nil {
		return 0, err
	}

	if removed > 0 {
		publish(ctx, s.dispatcher, s.logger, events.Event{
			Type:    events.EventTicketDeleted,
			Subject: id,
			Payload: events.TicketDeletedPayload{Removed: removed},
		})
	}
	return removed, nil
}

// Stats counts tickets per status.
func (s *TicketService) Stats(ctx context.Context) (domain.TicketStats, error) {
	tickets, err := s.tickets.List(ctx)
	if err != nil {
		return domain.TicketStats{}, err
	}
	return countByStatus(tickets), nil
}

// Apply dispatches a submission to Create, Update or Delete. Unknown actions
// are ignored.
func (s *TicketService) Apply(ctx context.Context, action TicketAction) error {
	s.logger.Debug("ticket action", zap.String("action", action.Action), zap.String("ticket_id", action.TicketID))

	switch action.Action {
	case ActionCreate:
		_, err := s.Create(ctx, action.Fields)
		return err
	case ActionUpdate:
		_, err := s.Update(ctx, action.TicketID, action.Fields)
		return err
	case ActionDelete:
		_, err := s.Delete(ctx, action.TicketID)
		return err
	default:
		return nil
	}
}

func (s *TicketService) uniqueID(tickets []domain.Ticket) string {
	taken := make(map[string]struct{}, len(tickets))
	for _, t := range tickets {
		taken[t.ID] = struct{}{}
	}
	for {
		id := s.newID()
		if _, dup := taken[id]; !dup && id != "" {
			return id
		}
	}
}

func countByStatus(tickets []domain.Ticket) domain.TicketStats {
	stats := domain.TicketStats{Total: len(tickets)}
	for _, t := range tickets {
		switch t.Status {
		case domain.TicketStatusOpen:
			stats.Open++
		case domain.TicketStatusInProgress:
			stats.InProgress++
		case domain.TicketStatusClosed:
			stats.Closed++
		}
	}
	return stats
}

func valueOr(v *string, fallback string) string {
	if v == nil {
		return fallback
	}
	return *v
}
