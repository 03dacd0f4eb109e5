package usecase

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/HopOn-TAEY/HopOn-BackEnd/internal/pkg/apperrors"
	"github.com/HopOn-TAEY/HopOn-BackEnd/internal/pkg/logger"
	"github.com/HopOn-TAEY/HopOn-BackEnd/internal/pkg/models"
	"github.com/HopOn-TAEY/HopOn-BackEnd/services/ratings"
)

type ratingUC struct {
	cfg        *models.Config
	ratingRepo ratings.RatingRepo
}

// NewRatingUC creates a new rating use case
func NewRatingUC(cfg *models.Config, repo ratings.RatingRepo) ratings.RatingUC {
	return &ratingUC{
		cfg:        cfg,
		ratingRepo: repo,
	}
}

// SubmitRating records a score from a passenger to the driver of a
// finished ride and recomputes the driver's aggregate.
func (uc *ratingUC) SubmitRating(ctx context.Context, callerID uuid.UUID, req models.SubmitRatingRequest) (*models.Rating, error) {
	if req.Score < 1 || req.Score > 5 {
		return nil, apperrors.InvalidInput("score must be between 1 and 5")
	}

	ride, err := uc.ratingRepo.GetRideWithDriver(ctx, req.RideID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.NotFound("ride not found")
		}
		return nil, apperrors.Internal(err)
	}
	if ride.Status != models.RideStatusFinished {
		return nil, apperrors.Conflict("ride is not finished")
	}

	confirmed, err := uc.ratingRepo.HasConfirmedReservation(ctx, ride.ID, callerID)
	if err != nil {
		return nil, apperrors.Internal(err)
	}
	if !confirmed {
		return nil, apperrors.Forbidden("only passengers with a confirmed reservation can rate this ride")
	}

	rating := &models.Rating{
		ID:        uuid.New(),
		RideID:    ride.ID,
		RaterID:   callerID,
		RateeID:   ride.Driver.UserID,
		Score:     req.Score,
		Comment:   req.Comment,
		CreatedAt: time.Now(),
	}

	if err := uc.ratingRepo.CreateRatingWithRecompute(ctx, rating, ride.Driver.ID); err != nil {
		if errors.Is(err, ratings.ErrDuplicateRating) {
			return nil, apperrors.Conflict("you already rated this ride")
		}
		return nil, apperrors.Internal(err)
	}

	logger.Info("Rating submitted",
		logger.String("rating_id", rating.ID.String()),
		logger.String("ride_id", ride.ID.String()),
		logger.Int("score", rating.Score))

	return rating, nil
}

// ListPendingRating lists finished rides awaiting the caller's rating
func (uc *ratingUC) ListPendingRating(ctx context.Context, callerID uuid.UUID) ([]*models.PendingRatingRide, error) {
	pending, err := uc.ratingRepo.ListFinishedUnrated(ctx, callerID)
	if err != nil {
		return nil, apperrors.Internal(err)
	}
	return pending, nil
}
