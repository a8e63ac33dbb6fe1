package persistence

import (
	"context"
	"encoding/json"
	"sync"
)

// MemoryStore is a volatile RecordStore. Records are copied in and out so
// callers never share backing arrays with the store.
type MemoryStore struct {
	mu          sync.RWMutex
	collections map[string][]json.RawMessage
}

// NewMemoryStore returns an empty store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{collections: make(map[string][]json.RawMessage)}
}

func (s *MemoryStore) Load(_ context.Context, collection string) ([]json.RawMessage, error) {
	if err := validateCollection(collection); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneRecords(s.collections[collection]), nil
}

func (s *MemoryStore) Save(_ context.Context, collection string, records []json.RawMessage) error {
	if err := validateCollection(collection); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.collections[collection] = cloneRecords(records)
	return nil
}

func (s *MemoryStore) Ping(_ context.Context) error {
	return nil
}

func cloneRecords(records []json.RawMessage) []json.RawMessage {
	out := make([]json.RawMessage, len(records))
	for i, rec := range records {
		out[i] = append(json.RawMessage(nil), rec...)
	}
	return out
}
