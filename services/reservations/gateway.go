package reservations

import (
	"context"

	"github.com/HopOn-TAEY/HopOn-BackEnd/internal/pkg/models"
)

// ReservationGW defines the interface for reservation notification emission
//
//go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/HopOn-TAEY/HopOn-BackEnd/services/reservations ReservationGW
type ReservationGW interface {
	PublishNotification(ctx context.Context, event models.NotificationEvent) error
}
