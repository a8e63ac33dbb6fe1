package persistence

import (
	"context"
	"encoding/json"
	"fmt"
	"regexp"
)

// Collection names used by the helpdesk.
const (
	CollectionAccounts = "users"
	CollectionTickets  = "tickets"
)

// RecordStore persists named collections of records. Every Save fully
// replaces the collection; there is no partial update.
type RecordStore interface {
	// Load returns the records of a collection in storage order. A collection
	// that was never saved loads as an empty sequence.
	Load(ctx context.Context, collection string) ([]json.RawMessage, error)
	// Save overwrites the collection with records.
	Save(ctx context.Context, collection string, records []json.RawMessage) error
	// Ping reports whether the backend is reachable.
	Ping(ctx context.Context) error
}

var collectionNamePattern = regexp.MustCompile(`^[a-z0-9_-]+$`)

func validateCollection(name string) error {
	if !collectionNamePattern.MatchString(name) {
		return fmt.Errorf("invalid collection name %q", name)
	}
	return nil
}

// decodeRecords parses a serialized collection. Empty input and JSON null load
// as an empty sequence.
func decodeRecords(data []byte) ([]json.RawMessage, error) {
	var records []json.RawMessage
	if len(data) == 0 {
		return []json.RawMessage{}, nil
	}
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, err
	}
	if records == nil {
		records = []json.RawMessage{}
	}
	return records, nil
}

func encodeRecords(records []json.RawMessage) ([]byte, error) {
	if records == nil {
		records = []json.RawMessage{}
	}
	return json.MarshalIndent(records, "", "    ")
}
