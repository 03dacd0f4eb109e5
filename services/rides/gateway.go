package rides

import (
	"context"

	"github.com/HopOn-TAEY/HopOn-BackEnd/internal/pkg/models"
)

// RideGW defines the interface for ride notification emission
//
//go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/HopOn-TAEY/HopOn-BackEnd/services/rides RideGW
type RideGW interface {
	PublishNotification(ctx context.Context, event models.NotificationEvent) error
}
