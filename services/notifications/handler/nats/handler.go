package nats

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/HopOn-TAEY/HopOn-BackEnd/internal/pkg/constants"
	"github.com/HopOn-TAEY/HopOn-BackEnd/internal/pkg/logger"
	"github.com/HopOn-TAEY/HopOn-BackEnd/internal/pkg/models"
	natspkg "github.com/HopOn-TAEY/HopOn-BackEnd/internal/pkg/nats"
	"github.com/HopOn-TAEY/HopOn-BackEnd/services/notifications"
)

// Handler consumes notification events off the message bus and hands them to
// the notification usecase for persistence.
type Handler struct {
	notificationUC notifications.NotificationUC
	natsClient     *natspkg.Client
	consumers      []*natspkg.Consumer
}

// NewHandler creates a notification consumer handler and starts its
// subscriptions.
func NewHandler(notificationUC notifications.NotificationUC, natsClient *natspkg.Client) (*Handler, error) {
	h := &Handler{
		notificationUC: notificationUC,
		natsClient:     natsClient,
	}
	if err := h.initConsumers(); err != nil {
		return nil, err
	}
	return h, nil
}

func (h *Handler) initConsumers() error {
	consumer, err := natspkg.NewConsumer(
		h.natsClient,
		constants.SubjectNotificationCreated,
		constants.QueueGroupNotifications,
		h.handleNotificationCreated,
	)
	if err != nil {
		return fmt.Errorf("failed to subscribe to notification events: %w", err)
	}
	h.consumers = append(h.consumers, consumer)
	return nil
}

func (h *Handler) handleNotificationCreated(message []byte) error {
	var event models.NotificationEvent
	if err := json.Unmarshal(message, &event); err != nil {
		return fmt.Errorf("failed to unmarshal notification event: %w", err)
	}

	if err := h.notificationUC.RecordNotification(context.Background(), event); err != nil {
		logger.Error("failed to record notification",
			logger.String("user_id", event.UserID.String()),
			logger.String("kind", string(event.Kind)),
			logger.Err(err))
		return err
	}
	return nil
}

// Close stops all consumers
func (h *Handler) Close() {
	for _, consumer := range h.consumers {
		consumer.Stop()
	}
	h.consumers = nil
}
