package privaterides

import (
	"context"

	"github.com/HopOn-TAEY/HopOn-BackEnd/internal/pkg/models"
)

// PrivateRideGW defines the interface for negotiation notification emission
//
//go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/HopOn-TAEY/HopOn-BackEnd/services/privaterides PrivateRideGW
type PrivateRideGW interface {
	PublishNotification(ctx context.Context, event models.NotificationEvent) error
}
