package events

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDispatcher_DeliversToSubscribers(t *testing.T) {
	d := NewInMemoryDispatcher()
	var got []string
	d.Subscribe(EventTicketCreated, func(_ context.Context, e Event) error {
		got = append(got, "first:"+e.Subject)
		return nil
	})
	d.Subscribe(EventTicketCreated, func(_ context.Context, e Event) error {
		got = append(got, "second:"+e.Subject)
		return nil
	})
	d.Subscribe(EventTicketDeleted, func(_ context.Context, e Event) error {
		got = append(got, "deleted")
		return nil
	})

	err := d.Publish(context.Background(), Event{Type: EventTicketCreated, Subject: "t1"})

	assert.NoError(t, err)
	assert.Equal(t, []string{"first:t1", "second:t1"}, got)
}

func TestDispatcher_ContinuesAfterFailure(t *testing.T) {
	d := NewInMemoryDispatcher()
	boom := errors.New("boom")
	called := false
	d.Subscribe(EventTicketUpdated, func(context.Context, Event) error { return boom })
	d.Subscribe(EventTicketUpdated, func(context.Context, Event) error {
		called = true
		return nil
	})

	err := d.Publish(context.Background(), Event{Type: EventTicketUpdated})

	assert.ErrorIs(t, err, boom)
	assert.True(t, called)
}

func TestDispatcher_NoSubscribers(t *testing.T) {
	assert.NoError(t, NewInMemoryDispatcher().Publish(context.Background(), Event{Type: EventAccountRegistered}))
}

func TestDispatcher_SubscribeAllRunsAfterTyped(t *testing.T) {
	d := NewInMemoryDispatcher()
	var got []string
	d.SubscribeAll(func(_ context.Context, e Event) error {
		got = append(got, "all:"+string(e.Type))
		return nil
	})
	d.Subscribe(EventTicketDeleted, func(context.Context, Event) error {
		got = append(got, "typed")
		return nil
	})

	assert.NoError(t, d.Publish(context.Background(), Event{Type: EventTicketDeleted}))
	assert.NoError(t, d.Publish(context.Background(), Event{Type: EventAccountRegistered}))

	assert.Equal(t, []string{"typed", "all:ticket_deleted", "all:account_registered"}, got)
}

func TestDispatcher_ErrorNamesEventType(t *testing.T) {
	d := NewInMemoryDispatcher()
	d.Subscribe(EventTicketCreated, func(context.Context, Event) error { return errors.New("smtp down") })

	err := d.Publish(context.Background(), Event{Type: EventTicketCreated})

	assert.ErrorContains(t, err, "ticket_created handler 0: smtp down")
}
