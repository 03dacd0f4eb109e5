package ratings

import (
	"context"

	"github.com/google/uuid"

	"github.com/HopOn-TAEY/HopOn-BackEnd/internal/pkg/models"
)

// RatingUC defines the interface for post-ride driver ratings
//
//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/HopOn-TAEY/HopOn-BackEnd/services/ratings RatingUC
type RatingUC interface {
	SubmitRating(ctx context.Context, callerID uuid.UUID, req models.SubmitRatingRequest) (*models.Rating, error)
	ListPendingRating(ctx context.Context, callerID uuid.UUID) ([]*models.PendingRatingRide, error)
}
