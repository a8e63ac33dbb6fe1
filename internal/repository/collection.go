package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/spec-kit/helpdesk/internal/persistence"
)

// Collection is a typed view over one RecordStore collection. Mutate holds the
// collection mutex for the whole load-modify-save cycle so writers within the
// process never interleave; readers are not blocked by the lock.
type Collection[T any] struct {
	store persistence.RecordStore
	name  string
	mu    sync.Mutex
}

// NewCollection binds a record type to a named collection.
func NewCollection[T any](store persistence.RecordStore, name string) *Collection[T] {
	return &Collection[T]{store: store, name: name}
}

// All decodes every record in storage order.
func (c *Collection[T]) All(ctx context.Context) ([]T, error) {
	records, err := c.store.Load(ctx, c.name)
	if err != nil {
		return nil, err
	}
	items := make([]T, 0, len(records))
	for i, rec := range records {
		var item T
		if err := json.Unmarshal(rec, &item); err != nil {
			return nil, fmt.Errorf("decode %s[%d]: %w", c.name, i, err)
		}
		items = append(items, item)
	}
	return items, nil
}

// Mutate loads the collection, applies fn, and saves what fn returns. If fn
// returns an error nothing is written.
func (c *Collection[T]) Mutate(ctx context.Context, fn func([]T) ([]T, error)) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	items, err := c.All(ctx)
	if err != nil {
		return err
	}
	updated, err := fn(items)
	if err != nil {
		return err
	}
	records := make([]json.RawMessage, 0, len(updated))
	for i := range updated {
		data, err := json.Marshal(updated[i])
		if err != nil {
			return fmt.Errorf("encode %s[%d]: %w", c.name, i, err)
		}
		records = append(records, data)
	}
	return c.store.Save(ctx, c.name, records)
}
