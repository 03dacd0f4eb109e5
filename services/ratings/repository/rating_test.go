package repository

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jackc/pgconn"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/HopOn-TAEY/HopOn-BackEnd/internal/pkg/models"
	"github.com/HopOn-TAEY/HopOn-BackEnd/services/ratings"
)

func newMockRepo(t *testing.T) (*RatingRepo, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	sqlxDB := sqlx.NewDb(db, "sqlmock")
	return NewRatingRepository(&models.Config{}, sqlxDB), mock
}

func newRating() *models.Rating {
	return &models.Rating{
		ID:        uuid.New(),
		RideID:    uuid.New(),
		RaterID:   uuid.New(),
		RateeID:   uuid.New(),
		Score:     5,
		CreatedAt: time.Now(),
	}
}

func TestCreateRatingWithRecompute_InsertAndRecomputeCommitTogether(t *testing.T) {
	repo, mock := newMockRepo(t)
	rating := newRating()
	profileID := uuid.New()

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO ratings").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("UPDATE driver_profiles").
		WithArgs(rating.RateeID, profileID).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := repo.CreateRatingWithRecompute(context.Background(), rating, profileID)

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateRatingWithRecompute_DuplicateRollsBack(t *testing.T) {
	repo, mock := newMockRepo(t)
	rating := newRating()

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO ratings").
		WillReturnError(&pgconn.PgError{Code: "23505"})
	mock.ExpectRollback()

	err := repo.CreateRatingWithRecompute(context.Background(), rating, uuid.New())

	assert.ErrorIs(t, err, ratings.ErrDuplicateRating)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateRatingWithRecompute_RecomputeFailureRollsBackInsert(t *testing.T) {
	repo, mock := newMockRepo(t)
	rating := newRating()

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO ratings").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("UPDATE driver_profiles").
		WillReturnError(assert.AnError)
	mock.ExpectRollback()

	err := repo.CreateRatingWithRecompute(context.Background(), rating, uuid.New())

	assert.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestHasConfirmedReservation(t *testing.T) {
	repo, mock := newMockRepo(t)
	rideID := uuid.New()
	passengerID := uuid.New()

	mock.ExpectQuery("SELECT COUNT").
		WithArgs(rideID, passengerID, models.ReservationStatusConfirmed).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

	ok, err := repo.HasConfirmedReservation(context.Background(), rideID, passengerID)

	require.NoError(t, err)
	assert.True(t, ok)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListFinishedUnrated_ScansRideAndDriver(t *testing.T) {
	repo, mock := newMockRepo(t)
	passengerID := uuid.New()
	now := time.Now()

	rows := sqlmock.NewRows([]string{
		"id", "driver_id", "vehicle_id", "origin", "destination",
		"departure_time", "total_seats", "occupied_seats", "status", "kind",
		"created_at", "updated_at",
		"d_id", "d_user_id", "d_name", "d_email", "d_average_rating", "d_total_ratings",
	}).AddRow(
		uuid.New(), uuid.New(), uuid.New(), "Campus", "Airport",
		now, 4, 2, models.RideStatusFinished, models.RideKindRecurring,
		now, now,
		uuid.New(), uuid.New(), "Dana", "dana@example.com", 4.5, 12,
	)

	mock.ExpectQuery("SELECT r.id").
		WithArgs(passengerID, models.ReservationStatusConfirmed, models.RideStatusFinished).
		WillReturnRows(rows)

	pending, err := repo.ListFinishedUnrated(context.Background(), passengerID)

	require.NoError(t, err)
	require.Len(t, pending, 1)
	assert.Equal(t, "Dana", pending[0].Driver.Name)
	assert.Equal(t, models.RideStatusFinished, pending[0].Ride.Status)
	assert.NoError(t, mock.ExpectationsWereMet())
}
