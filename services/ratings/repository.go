package ratings

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/HopOn-TAEY/HopOn-BackEnd/internal/pkg/models"
)

// ErrDuplicateRating is returned when the (ride, rater, ratee) triple
// already exists; the unique constraint is the arbiter under concurrency.
var ErrDuplicateRating = errors.New("rating already exists for this ride")

// RatingRepo defines the interface for rating data access
//
//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/HopOn-TAEY/HopOn-BackEnd/services/ratings RatingRepo
type RatingRepo interface {
	GetRideWithDriver(ctx context.Context, rideID uuid.UUID) (*models.Ride, error)
	HasConfirmedReservation(ctx context.Context, rideID, passengerID uuid.UUID) (bool, error)
	CreateRatingWithRecompute(ctx context.Context, rating *models.Rating, driverProfileID uuid.UUID) error
	ListFinishedUnrated(ctx context.Context, passengerID uuid.UUID) ([]*models.PendingRatingRide, error)
}
