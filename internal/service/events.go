package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/spec-kit/helpdesk/internal/events"
)

// publish stamps and dispatches an event. Subscriber failures are logged and
// never fail the operation that emitted the event.
func publish(ctx context.Context, dispatcher events.Dispatcher, logger *zap.Logger, event events.Event) {
	if dispatcher == nil {
		return
	}
	if event.ID == "" {
		event.ID = uuid.NewString()
	}
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now()
	}
	if err := dispatcher.Publish(ctx, event); err != nil {
		logger.Warn("event handler failed", zap.String("event_type", string(event.Type)), zap.Error(err))
	}
}
