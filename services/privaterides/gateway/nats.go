package gateway

import (
	"context"

	"github.com/HopOn-TAEY/HopOn-BackEnd/internal/pkg/constants"
	"github.com/HopOn-TAEY/HopOn-BackEnd/internal/pkg/models"
	natspkg "github.com/HopOn-TAEY/HopOn-BackEnd/internal/pkg/nats"
)

// PrivateRideGW publishes negotiation notification events to NATS
type PrivateRideGW struct {
	producer *natspkg.Producer
}

// NewPrivateRideGW creates a new private ride gateway
func NewPrivateRideGW(client *natspkg.Client) *PrivateRideGW {
	return &PrivateRideGW{
		producer: natspkg.NewProducer(client),
	}
}

// PublishNotification emits a notification event for the sink to persist
func (g *PrivateRideGW) PublishNotification(ctx context.Context, event models.NotificationEvent) error {
	return g.producer.PublishWithRetry(ctx, constants.SubjectNotificationCreated, event)
}
