package gateway

import (
	"context"

	"github.com/HopOn-TAEY/HopOn-BackEnd/internal/pkg/constants"
	"github.com/HopOn-TAEY/HopOn-BackEnd/internal/pkg/models"
	natspkg "github.com/HopOn-TAEY/HopOn-BackEnd/internal/pkg/nats"
)

// RideGW publishes ride notification events to NATS
type RideGW struct {
	producer *natspkg.Producer
}

// NewRideGW creates a new ride gateway
func NewRideGW(client *natspkg.Client) *RideGW {
	return &RideGW{
		producer: natspkg.NewProducer(client),
	}
}

// PublishNotification emits a notification event for the sink to persist
func (g *RideGW) PublishNotification(ctx context.Context, event models.NotificationEvent) error {
	return g.producer.PublishWithRetry(ctx, constants.SubjectNotificationCreated, event)
}
