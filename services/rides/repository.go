package rides

import (
	"context"

	"github.com/google/uuid"

	"github.com/HopOn-TAEY/HopOn-BackEnd/internal/pkg/models"
)

// RideRepo defines the interface for ride data access operations
//
//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/HopOn-TAEY/HopOn-BackEnd/services/rides RideRepo
type RideRepo interface {
	GetDriverProfileByUserID(ctx context.Context, userID uuid.UUID) (*models.DriverProfile, error)
	GetVehicleByID(ctx context.Context, vehicleID uuid.UUID) (*models.Vehicle, error)
	CreateRide(ctx context.Context, ride *models.Ride) error
	GetRideByID(ctx context.Context, rideID uuid.UUID) (*models.Ride, error)
	ListScheduledRides(ctx context.Context) ([]*models.Ride, error)
	SearchRides(ctx context.Context, req models.SearchRidesRequest) ([]*models.Ride, error)
	ListFinishedByPassenger(ctx context.Context, passengerID uuid.UUID) ([]*models.Ride, error)
	ListReservationsForRide(ctx context.Context, rideID uuid.UUID) ([]*models.Reservation, error)
	ListReservationHolders(ctx context.Context, rideID uuid.UUID, statuses []models.ReservationStatus) ([]uuid.UUID, error)
	CountReservationsByStatus(ctx context.Context, rideID uuid.UUID, status models.ReservationStatus) (int, error)
	TransitionStatus(ctx context.Context, rideID uuid.UUID, to models.RideStatus, from ...models.RideStatus) (bool, error)
	DeleteRide(ctx context.Context, rideID uuid.UUID) error
}
