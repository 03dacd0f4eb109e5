package gateway

import (
	"context"

	"github.com/HopOn-TAEY/HopOn-BackEnd/internal/pkg/constants"
	"github.com/HopOn-TAEY/HopOn-BackEnd/internal/pkg/models"
	natspkg "github.com/HopOn-TAEY/HopOn-BackEnd/internal/pkg/nats"
)

// ReservationGW publishes reservation notification events to NATS
type ReservationGW struct {
	producer *natspkg.Producer
}

// NewReservationGW creates a new reservation gateway
func NewReservationGW(client *natspkg.Client) *ReservationGW {
	return &ReservationGW{
		producer: natspkg.NewProducer(client),
	}
}

// PublishNotification emits a notification event for the sink to persist
func (g *ReservationGW) PublishNotification(ctx context.Context, event models.NotificationEvent) error {
	return g.producer.PublishWithRetry(ctx, constants.SubjectNotificationCreated, event)
}
