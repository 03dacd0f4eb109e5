package rides

import (
	"context"

	"github.com/google/uuid"

	"github.com/HopOn-TAEY/HopOn-BackEnd/internal/pkg/models"
)

// RideUC defines the interface for ride lifecycle business logic
//
//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/HopOn-TAEY/HopOn-BackEnd/services/rides RideUC
type RideUC interface {
	CreateRide(ctx context.Context, callerID uuid.UUID, req models.CreateRideRequest) (*models.Ride, error)
	GetRide(ctx context.Context, callerID uuid.UUID, rideID uuid.UUID) (*models.Ride, error)
	ListRides(ctx context.Context) ([]*models.Ride, error)
	SearchRides(ctx context.Context, req models.SearchRidesRequest) ([]*models.Ride, error)
	ListFinishedByUser(ctx context.Context, callerID uuid.UUID) ([]*models.Ride, error)
	StartRide(ctx context.Context, callerID uuid.UUID, rideID uuid.UUID) (*models.Ride, error)
	CancelRide(ctx context.Context, callerID uuid.UUID, rideID uuid.UUID) error
	FinalizeRide(ctx context.Context, callerID uuid.UUID, rideID uuid.UUID) error
	DeleteRide(ctx context.Context, callerID uuid.UUID, rideID uuid.UUID) error
}
