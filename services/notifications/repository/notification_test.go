package repository

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/HopOn-TAEY/HopOn-BackEnd/internal/pkg/models"
)

func newMockRepo(t *testing.T) (*NotificationRepo, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	sqlxDB := sqlx.NewDb(db, "sqlmock")
	return &NotificationRepo{cfg: &models.Config{}, db: sqlxDB}, mock
}

func TestListByUser_NewestFirst(t *testing.T) {
	repo, mock := newMockRepo(t)

	userID := uuid.New()
	newer := uuid.New()
	older := uuid.New()
	rideID := uuid.New()
	now := time.Now()

	rows := sqlmock.NewRows([]string{"id", "user_id", "kind", "title", "message", "ride_id", "read", "created_at"}).
		AddRow(newer, userID, "RIDE_FINISHED", "Ride finished", "Your ride is done", rideID, false, now).
		AddRow(older, userID, "RESERVATION_APPROVED", "Reservation approved", "See you there", nil, true, now.Add(-time.Hour))

	mock.ExpectQuery("SELECT id, user_id, kind, title, message, ride_id, read, created_at").
		WithArgs(userID).
		WillReturnRows(rows)

	list, err := repo.ListByUser(context.Background(), userID)

	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, newer, list[0].ID)
	assert.Equal(t, models.NotificationRideFinished, list[0].Kind)
	require.NotNil(t, list[0].RideID)
	assert.Equal(t, rideID, *list[0].RideID)
	assert.Equal(t, older, list[1].ID)
	assert.Nil(t, list[1].RideID)
	assert.True(t, list[1].Read)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMarkRead_OtherUsersRowUntouched(t *testing.T) {
	repo, mock := newMockRepo(t)

	notificationID := uuid.New()
	userID := uuid.New()

	mock.ExpectExec("UPDATE notifications").
		WithArgs(notificationID, userID).
		WillReturnResult(sqlmock.NewResult(0, 0))

	ok, err := repo.MarkRead(context.Background(), notificationID, userID)

	require.NoError(t, err)
	assert.False(t, ok)
	assert.NoError(t, mock.ExpectationsWereMet())
}
