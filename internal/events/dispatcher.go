package events

import (
	"context"
	"errors"
	"fmt"
	"sync"
)

// EventHandler handles a published event.
type EventHandler func(context.Context, Event) error

// Dispatcher routes events to subscribers.
type Dispatcher interface {
	Publish(ctx context.Context, event Event) error
	Subscribe(eventType EventType, handler EventHandler)
	// SubscribeAll registers handler for every event type, after the
	// type-specific handlers.
	SubscribeAll(handler EventHandler)
}

type syncDispatcher struct {
	mu       sync.RWMutex
	byType   map[EventType][]EventHandler
	wildcard []EventHandler
}

// NewInMemoryDispatcher returns a dispatcher that runs handlers on the
// publishing goroutine, in subscription order.
func NewInMemoryDispatcher() Dispatcher {
	return &syncDispatcher{byType: make(map[EventType][]EventHandler)}
}

// Publish runs every matching handler even if earlier ones fail and returns
// the failures joined.
func (d *syncDispatcher) Publish(ctx context.Context, event Event) error {
	d.mu.RLock()
	typed := d.byType[event.Type]
	handlers := make([]EventHandler, 0, len(typed)+len(d.wildcard))
	handlers = append(handlers, typed...)
	handlers = append(handlers, d.wildcard...)
	d.mu.RUnlock()

	var errs []error
	for i, handle := range handlers {
		if err := handle(ctx, event); err != nil {
			errs = append(errs, fmt.Errorf("%s handler %d: %w", event.Type, i, err))
		}
	}
	return errors.Join(errs...)
}

func (d *syncDispatcher) Subscribe(eventType EventType, handler EventHandler) {
	d.mu.Lock()
	d.byType[eventType] = append(d.byType[eventType], handler)
	d.mu.Unlock()
}

func (d *syncDispatcher) SubscribeAll(handler EventHandler) {
	d.mu.Lock()
	d.wildcard = append(d.wildcard, handler)
	d.mu.Unlock()
}
