package usecase

import (
	"context"
	"database/sql"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/HopOn-TAEY/HopOn-BackEnd/internal/pkg/apperrors"
	"github.com/HopOn-TAEY/HopOn-BackEnd/internal/pkg/models"
	"github.com/HopOn-TAEY/HopOn-BackEnd/services/ratings"
	"github.com/HopOn-TAEY/HopOn-BackEnd/services/ratings/mocks"
)

func newFinishedRide(driverUserID uuid.UUID) *models.Ride {
	return &models.Ride{
		ID:     uuid.New(),
		Status: models.RideStatusFinished,
		Driver: &models.DriverSummary{
			ID:     uuid.New(),
			UserID: driverUserID,
		},
	}
}

func TestSubmitRating_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockRatingRepo(ctrl)
	uc := NewRatingUC(&models.Config{}, mockRepo)

	raterID := uuid.New()
	driverUserID := uuid.New()
	ride := newFinishedRide(driverUserID)

	mockRepo.EXPECT().GetRideWithDriver(gomock.Any(), ride.ID).Return(ride, nil)
	mockRepo.EXPECT().HasConfirmedReservation(gomock.Any(), ride.ID, raterID).Return(true, nil)
	mockRepo.EXPECT().CreateRatingWithRecompute(gomock.Any(), gomock.Any(), ride.Driver.ID).DoAndReturn(
		func(_ context.Context, rating *models.Rating, _ uuid.UUID) error {
			assert.Equal(t, raterID, rating.RaterID)
			assert.Equal(t, driverUserID, rating.RateeID)
			assert.Equal(t, 5, rating.Score)
			return nil
		})

	rating, err := uc.SubmitRating(context.Background(), raterID, models.SubmitRatingRequest{
		RideID: ride.ID,
		Score:  5,
	})

	require.NoError(t, err)
	assert.Equal(t, driverUserID, rating.RateeID)
}

func TestSubmitRating_DuplicateConflict(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockRatingRepo(ctrl)
	uc := NewRatingUC(&models.Config{}, mockRepo)

	raterID := uuid.New()
	ride := newFinishedRide(uuid.New())

	mockRepo.EXPECT().GetRideWithDriver(gomock.Any(), ride.ID).Return(ride, nil)
	mockRepo.EXPECT().HasConfirmedReservation(gomock.Any(), ride.ID, raterID).Return(true, nil)
	mockRepo.EXPECT().CreateRatingWithRecompute(gomock.Any(), gomock.Any(), ride.Driver.ID).
		Return(ratings.ErrDuplicateRating)

	_, err := uc.SubmitRating(context.Background(), raterID, models.SubmitRatingRequest{
		RideID: ride.ID,
		Score:  4,
	})

	require.Error(t, err)
	assert.Equal(t, apperrors.KindConflict, apperrors.KindOf(err))
	assert.Contains(t, apperrors.MessageOf(err), "already rated")
}

func TestSubmitRating_RideNotFinished(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockRatingRepo(ctrl)
	uc := NewRatingUC(&models.Config{}, mockRepo)

	ride := newFinishedRide(uuid.New())
	ride.Status = models.RideStatusInProgress

	mockRepo.EXPECT().GetRideWithDriver(gomock.Any(), ride.ID).Return(ride, nil)

	_, err := uc.SubmitRating(context.Background(), uuid.New(), models.SubmitRatingRequest{
		RideID: ride.ID,
		Score:  5,
	})

	require.Error(t, err)
	assert.Equal(t, apperrors.KindConflict, apperrors.KindOf(err))
}

func TestSubmitRating_NoConfirmedReservation(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockRatingRepo(ctrl)
	uc := NewRatingUC(&models.Config{}, mockRepo)

	raterID := uuid.New()
	ride := newFinishedRide(uuid.New())

	mockRepo.EXPECT().GetRideWithDriver(gomock.Any(), ride.ID).Return(ride, nil)
	mockRepo.EXPECT().HasConfirmedReservation(gomock.Any(), ride.ID, raterID).Return(false, nil)

	_, err := uc.SubmitRating(context.Background(), raterID, models.SubmitRatingRequest{
		RideID: ride.ID,
		Score:  3,
	})

	require.Error(t, err)
	assert.Equal(t, apperrors.KindForbidden, apperrors.KindOf(err))
}

func TestSubmitRating_ScoreOutOfRange(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockRatingRepo(ctrl)
	uc := NewRatingUC(&models.Config{}, mockRepo)

	for _, score := range []int{0, 6, -1} {
		_, err := uc.SubmitRating(context.Background(), uuid.New(), models.SubmitRatingRequest{
			RideID: uuid.New(),
			Score:  score,
		})
		require.Error(t, err)
		assert.Equal(t, apperrors.KindInvalidInput, apperrors.KindOf(err))
	}
}

func TestSubmitRating_RideNotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockRatingRepo(ctrl)
	uc := NewRatingUC(&models.Config{}, mockRepo)

	rideID := uuid.New()
	mockRepo.EXPECT().GetRideWithDriver(gomock.Any(), rideID).Return(nil, sql.ErrNoRows)

	_, err := uc.SubmitRating(context.Background(), uuid.New(), models.SubmitRatingRequest{
		RideID: rideID,
		Score:  5,
	})

	require.Error(t, err)
	assert.Equal(t, apperrors.KindNotFound, apperrors.KindOf(err))
}

func TestListPendingRating_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockRatingRepo(ctrl)
	uc := NewRatingUC(&models.Config{}, mockRepo)

	callerID := uuid.New()
	mockRepo.EXPECT().ListFinishedUnrated(gomock.Any(), callerID).
		Return([]*models.PendingRatingRide{{}}, nil)

	pending, err := uc.ListPendingRating(context.Background(), callerID)

	require.NoError(t, err)
	assert.Len(t, pending, 1)
}
