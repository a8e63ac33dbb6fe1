package service

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/spec-kit/helpdesk/internal/config"
	"github.com/spec-kit/helpdesk/internal/events"
)

type notifyChannel string

const (
	channelEmail   notifyChannel = "email"
	channelWebhook notifyChannel = "webhook"
)

// eventChannels lists which outbound channels each event goes to.
var eventChannels = map[events.EventType][]notifyChannel{
	events.EventAccountRegistered: {channelEmail},
	events.EventTicketCreated:     {channelEmail, channelWebhook},
	events.EventTicketUpdated:     {channelWebhook},
	events.EventTicketDeleted:     {channelWebhook},
}

// NotificationService logs every domain event and fans it out to the
// configured email sender and webhook. Both outbound channels are stubs that
// only log what would be sent.
type NotificationService struct {
	logger     *zap.Logger
	emailFrom  string
	webhookURL string
}

// NewNotificationService creates the service.
func NewNotificationService(logger *zap.Logger, cfg config.NotificationConfig) *NotificationService {
	return &NotificationService{
		logger:     logger,
		emailFrom:  strings.TrimSpace(cfg.EmailFrom),
		webhookURL: strings.TrimSpace(cfg.WebhookURL),
	}
}

// RegisterHandlers subscribes the service to every event on dispatcher.
func (n *NotificationService) RegisterHandlers(dispatcher events.Dispatcher) {
	dispatcher.SubscribeAll(n.Handle)
}

// Handle processes one event. It never fails the publisher.
func (n *NotificationService) Handle(ctx context.Context, event events.Event) error {
	n.logger.Info("domain event",
		zap.String("event_id", event.ID),
		zap.String("event_type", string(event.Type)),
		zap.String("subject", event.Subject),
		zap.Any("payload", event.Payload))

	for _, ch := range eventChannels[event.Type] {
		switch ch {
		case channelEmail:
			n.sendEmail(ctx, event)
		case channelWebhook:
			n.postWebhook(ctx, event)
		}
	}
	return nil
}

func (n *NotificationService) sendEmail(_ context.Context, event events.Event) {
	if n.emailFrom == "" {
		return
	}
	n.logger.Debug("email notification (stub)",
		zap.String("from", n.emailFrom),
		zap.String("event_type", string(event.Type)),
		zap.String("subject", event.Subject))
}

func (n *NotificationService) postWebhook(_ context.Context, event events.Event) {
	if n.webhookURL == "" {
		return
	}
	n.logger.Debug("webhook notification (stub)",
		zap.String("url", n.webhookURL),
		zap.String("event_type", string(event.Type)),
		zap.String("subject", event.Subject))
}
