package reservations

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/HopOn-TAEY/HopOn-BackEnd/internal/pkg/models"
)

// Sentinel errors surfaced by the repository so the usecase can map them
// to user-facing conflicts.
var (
	// ErrInsufficientSeats is returned when the atomic seat increment
	// guard does not match: either the remaining seats are fewer than
	// requested or the ride is no longer SCHEDULED.
	ErrInsufficientSeats = errors.New("insufficient seats available")

	// ErrDuplicateReservation is returned when the (ride, passenger)
	// unique constraint rejects a second reservation.
	ErrDuplicateReservation = errors.New("reservation already exists for this ride and passenger")
)

// ReservationRepo defines the interface for reservation data access
//
//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/HopOn-TAEY/HopOn-BackEnd/services/reservations ReservationRepo
type ReservationRepo interface {
	GetRideWithDriver(ctx context.Context, rideID uuid.UUID) (*models.Ride, error)
	CreateReservation(ctx context.Context, reservation *models.Reservation) error
	GetReservationByID(ctx context.Context, reservationID uuid.UUID) (*models.Reservation, error)
	UpdateReservationStatus(ctx context.Context, reservationID uuid.UUID, to, from models.ReservationStatus) (bool, error)
	ListByRide(ctx context.Context, rideID uuid.UUID) ([]*models.Reservation, error)
}
