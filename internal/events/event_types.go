package events

import (
	"time"

	"github.com/spec-kit/helpdesk/internal/domain"
)

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventAccountRegistered EventType = "account_registered"
	EventTicketCreated     EventType = "ticket_created"
	EventTicketUpdated     EventType = "ticket_updated"
	EventTicketDeleted     EventType = "ticket_deleted"
)

// Event represents a domain event emitted by services.
type Event struct {
	ID        string      `json:"id"`
	Type      EventType   `json:"type"`
	Subject   string      `json:"subject"`
	Timestamp time.Time   `json:"timestamp"`
	Payload   interface{} `json:"payload"`
}

// AccountRegisteredPayload payload. The password is never carried.
type AccountRegisteredPayload struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// TicketCreatedPayload payload.
type TicketCreatedPayload struct {
	Title  string              `json:"title"`
	Status domain.TicketStatus `json:"status"`
}

// TicketUpdatedPayload payload.
type TicketUpdatedPayload struct {
	OldStatus domain.TicketStatus `json:"old_status"`
	NewStatus domain.TicketStatus `json:"new_status"`
}

// TicketDeletedPayload payload.
type TicketDeletedPayload struct {
	Removed int `json:"removed"`
}
