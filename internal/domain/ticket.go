package domain

import (
	"encoding/json"
	"time"
)

// TicketStatus enumerates lifecycle states for tickets.
type TicketStatus string

const (
	TicketStatusOpen       TicketStatus = "open"
	TicketStatusInProgress TicketStatus = "in_progress"
	TicketStatusClosed     TicketStatus = "closed"
)

// Known reports whether the status is one of the recognized values.
func (s TicketStatus) Known() bool {
	switch s {
	case TicketStatusOpen, TicketStatusInProgress, TicketStatusClosed:
		return true
	}
	return false
}

// TimestampLayout is the persisted timestamp format, second resolution.
const TimestampLayout = "2006-01-02 15:04:05"

// Timestamp serializes as TimestampLayout.
type Timestamp struct {
	time.Time
}

// NewTimestamp truncates t to whole seconds.
func NewTimestamp(t time.Time) Timestamp {
	return Timestamp{Time: t.Truncate(time.Second)}
}

func (t Timestamp) String() string {
	return t.Format(TimestampLayout)
}

// MarshalJSON writes the zero time as an empty string.
func (t Timestamp) MarshalJSON() ([]byte, error) {
	if t.IsZero() {
		return json.Marshal("")
	}
	return json.Marshal(t.String())
}

func (t *Timestamp) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if raw == "" {
		t.Time = time.Time{}
		return nil
	}
	parsed, err := time.ParseInLocation(TimestampLayout, raw, time.Local)
	if err != nil {
		return err
	}
	t.Time = parsed
	return nil
}

// Ticket is a support request.
type Ticket struct {
	ID          string       `json:"id"`
	Title       string       `json:"title"`
	Description string       `json:"description"`
	Status      TicketStatus `json:"status"`
	CreatedAt   Timestamp    `json:"created_at"`
	UpdatedAt   Timestamp    `json:"updated_at"`
}

// TicketStats aggregates tickets by status. Tickets with an unrecognized
// status count toward Total only.
type TicketStats struct {
	Total      int `json:"total"`
	Open       int `json:"open"`
	InProgress int `json:"in_progress"`
	Closed     int `json:"closed"`
}
