package reservations

import (
	"context"

	"github.com/google/uuid"

	"github.com/HopOn-TAEY/HopOn-BackEnd/internal/pkg/models"
)

// ReservationUC defines the interface for reservation business logic
//
//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/HopOn-TAEY/HopOn-BackEnd/services/reservations ReservationUC
type ReservationUC interface {
	CreateReservation(ctx context.Context, callerID uuid.UUID, req models.CreateReservationRequest) (*models.Reservation, error)
	AuthorizeReservation(ctx context.Context, callerID uuid.UUID, reservationID uuid.UUID) (*models.Reservation, error)
	CancelReservation(ctx context.Context, callerID uuid.UUID, reservationID uuid.UUID) error
	ListForRide(ctx context.Context, callerID uuid.UUID, rideID uuid.UUID) ([]*models.Reservation, error)
}
