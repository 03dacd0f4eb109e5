package repository

import (
	"context"
	"database/sql"
	"fmt"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/HopOn-TAEY/HopOn-BackEnd/internal/pkg/models"
)

var rideRowColumns = []string{
	"id", "driver_id", "vehicle_id", "origin", "destination",
	"origin_lat", "origin_lng", "dest_lat", "dest_lng",
	"departure_time", "total_seats", "occupied_seats",
	"price", "notes", "status", "kind", "created_at", "updated_at",
	"dp_id", "dp_user_id", "name", "email", "average_rating", "total_ratings",
	"v_id", "v_driver_id", "plate", "brand", "model", "color", "capacity", "v_created_at",
}

func addRideRow(rows *sqlmock.Rows, rideID uuid.UUID, driverName string, kind models.RideKind) *sqlmock.Rows {
	now := time.Now()
	return rows.AddRow(
		rideID, uuid.New(), uuid.New(), "Campus", "Downtown",
		nil, nil, nil, nil,
		now.Add(time.Hour), 4, 1,
		nil, nil, models.RideStatusScheduled, kind, now, now,
		uuid.New(), uuid.New(), driverName, "driver@example.com", 4.5, 12,
		uuid.New(), uuid.New(), "ABC1234", "Fiat", "Uno", "Red", 4, now,
	)
}

func newMockRepo(t *testing.T) (*RideRepo, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	sqlxDB := sqlx.NewDb(db, "sqlmock")
	return NewRideRepository(&models.Config{}, sqlxDB), mock
}

func TestCreateRide_InsertsRideAndRecurrenceInOneTx(t *testing.T) {
	repo, mock := newMockRepo(t)

	ride := &models.Ride{
		ID:            uuid.New(),
		DriverID:      uuid.New(),
		VehicleID:     uuid.New(),
		Origin:        "Campus",
		Destination:   "Downtown",
		DepartureTime: time.Now().Add(time.Hour),
		TotalSeats:    4,
		Status:        models.RideStatusScheduled,
		Kind:          models.RideKindRecurring,
		Recurrence: &models.RecurrencePattern{
			ID:        uuid.New(),
			Days:      []models.Weekday{models.WeekdayMonday, models.WeekdayWednesday},
			StartDate: time.Now(),
		},
	}

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO rides").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("INSERT INTO recurrence_patterns").
		WithArgs(ride.Recurrence.ID, ride.ID, "MONDAY,WEDNESDAY", ride.Recurrence.StartDate, nil).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := repo.CreateRide(context.Background(), ride)

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateRide_RollsBackWhenRecurrenceInsertFails(t *testing.T) {
	repo, mock := newMockRepo(t)

	ride := &models.Ride{
		ID:   uuid.New(),
		Kind: models.RideKindRecurring,
		Recurrence: &models.RecurrencePattern{
			ID:        uuid.New(),
			Days:      []models.Weekday{models.WeekdayMonday},
			StartDate: time.Now(),
		},
	}

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO rides").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("INSERT INTO recurrence_patterns").
		WillReturnError(assert.AnError)
	mock.ExpectRollback()

	err := repo.CreateRide(context.Background(), ride)

	assert.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTransitionStatus_GuardMatches(t *testing.T) {
	repo, mock := newMockRepo(t)
	rideID := uuid.New()

	mock.ExpectExec("UPDATE rides SET status").
		WillReturnResult(sqlmock.NewResult(0, 1))

	ok, err := repo.TransitionStatus(context.Background(), rideID,
		models.RideStatusInProgress, models.RideStatusScheduled)

	require.NoError(t, err)
	assert.True(t, ok)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTransitionStatus_TerminalStateNotLeft(t *testing.T) {
	repo, mock := newMockRepo(t)
	rideID := uuid.New()

	// no row matches the status guard
	mock.ExpectExec("UPDATE rides SET status").
		WillReturnResult(sqlmock.NewResult(0, 0))

	ok, err := repo.TransitionStatus(context.Background(), rideID,
		models.RideStatusCancelled, models.RideStatusScheduled, models.RideStatusInProgress)

	require.NoError(t, err)
	assert.False(t, ok)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCountReservationsByStatus(t *testing.T) {
	repo, mock := newMockRepo(t)
	rideID := uuid.New()

	mock.ExpectQuery("SELECT COUNT").
		WithArgs(rideID, models.ReservationStatusConfirmed).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(3))

	count, err := repo.CountReservationsByStatus(context.Background(), rideID, models.ReservationStatusConfirmed)

	require.NoError(t, err)
	assert.Equal(t, 3, count)
}

func TestListReservationHolders(t *testing.T) {
	repo, mock := newMockRepo(t)
	rideID := uuid.New()
	a, b := uuid.New(), uuid.New()

	mock.ExpectQuery("SELECT passenger_id FROM reservations").
		WillReturnRows(sqlmock.NewRows([]string{"passenger_id"}).AddRow(a).AddRow(b))

	holders, err := repo.ListReservationHolders(context.Background(), rideID,
		[]models.ReservationStatus{models.ReservationStatusPending, models.ReservationStatusConfirmed})

	require.NoError(t, err)
	assert.Equal(t, []uuid.UUID{a, b}, holders)
}

func TestListScheduledRides_SingleJoinedQuery(t *testing.T) {
	repo, mock := newMockRepo(t)

	rideA, rideB := uuid.New(), uuid.New()
	rows := sqlmock.NewRows(rideRowColumns)
	addRideRow(rows, rideA, "Alice", models.RideKindPrivate)
	addRideRow(rows, rideB, "Bob", models.RideKindPrivate)

	// one joined query serves the whole page, no per ride lookups
	mock.ExpectQuery("JOIN driver_profiles").WillReturnRows(rows)

	rides, err := repo.ListScheduledRides(context.Background())

	require.NoError(t, err)
	require.Len(t, rides, 2)
	assert.Equal(t, "Alice", rides[0].Driver.Name)
	assert.Equal(t, "ABC1234", rides[0].Vehicle.Plate)
	assert.Equal(t, "Bob", rides[1].Driver.Name)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListScheduledRides_BatchesRecurrenceLookup(t *testing.T) {
	repo, mock := newMockRepo(t)

	rideA, rideB := uuid.New(), uuid.New()
	rows := sqlmock.NewRows(rideRowColumns)
	addRideRow(rows, rideA, "Alice", models.RideKindRecurring)
	addRideRow(rows, rideB, "Bob", models.RideKindRecurring)
	mock.ExpectQuery("JOIN driver_profiles").WillReturnRows(rows)

	start := time.Now()
	mock.ExpectQuery("FROM recurrence_patterns").
		WillReturnRows(sqlmock.NewRows([]string{"id", "ride_id", "days", "start_date", "end_date"}).
			AddRow(uuid.New(), rideA, "MONDAY", start, nil).
			AddRow(uuid.New(), rideB, "TUESDAY,FRIDAY", start, nil))

	rides, err := repo.ListScheduledRides(context.Background())

	require.NoError(t, err)
	require.Len(t, rides, 2)
	require.NotNil(t, rides[0].Recurrence)
	assert.Equal(t, []models.Weekday{models.WeekdayMonday}, rides[0].Recurrence.Days)
	require.NotNil(t, rides[1].Recurrence)
	assert.Equal(t, []models.Weekday{models.WeekdayTuesday, models.WeekdayFriday}, rides[1].Recurrence.Days)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetRideByID_MissingRecurrenceRowTreatedAsNone(t *testing.T) {
	repo, mock := newMockRepo(t)
	rideID := uuid.New()

	rows := sqlmock.NewRows(rideRowColumns)
	addRideRow(rows, rideID, "Alice", models.RideKindRecurring)
	mock.ExpectQuery("JOIN driver_profiles").WillReturnRows(rows)

	// drivers may wrap the sentinel, the absence check must unwrap it
	mock.ExpectQuery("FROM recurrence_patterns").
		WillReturnError(fmt.Errorf("scan: %w", sql.ErrNoRows))

	ride, err := repo.GetRideByID(context.Background(), rideID)

	require.NoError(t, err)
	assert.Nil(t, ride.Recurrence)
	assert.Equal(t, "Alice", ride.Driver.Name)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteRide(t *testing.T) {
	repo, mock := newMockRepo(t)
	rideID := uuid.New()

	mock.ExpectExec("DELETE FROM rides").
		WithArgs(rideID).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.DeleteRide(context.Background(), rideID)

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
