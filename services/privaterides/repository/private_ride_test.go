package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/HopOn-TAEY/HopOn-BackEnd/internal/pkg/models"
)

func newMockRepo(t *testing.T) (*PrivateRideRepo, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	sqlxDB := sqlx.NewDb(db, "sqlmock")
	return NewPrivateRideRepository(&models.Config{}, sqlxDB), mock
}

func scheduledPrivateRide() *models.PrivateRide {
	now := time.Now()
	return &models.PrivateRide{
		ID:            uuid.New(),
		DriverID:      uuid.New(),
		VehicleID:     uuid.New(),
		PassengerID:   uuid.New(),
		Origin:        "Campus",
		Destination:   "Airport",
		DepartureTime: now.Add(2 * time.Hour),
		TotalSeats:    2,
		OccupiedSeats: 2,
		Status:        models.RideStatusScheduled,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

func TestAcceptProposal_AllThreeWritesCommitTogether(t *testing.T) {
	repo, mock := newMockRepo(t)
	proposalID := uuid.New()
	requestID := uuid.New()
	ride := scheduledPrivateRide()

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE proposals").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("UPDATE trip_requests").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("INSERT INTO private_rides").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	ok, err := repo.AcceptProposal(context.Background(), proposalID, requestID, nil, nil, ride)

	require.NoError(t, err)
	assert.True(t, ok)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAcceptProposal_AlreadyAnsweredRollsBack(t *testing.T) {
	repo, mock := newMockRepo(t)

	// the guard matches no row: a concurrent call answered first
	mock.ExpectBegin()
	mock.ExpectExec("UPDATE proposals").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectRollback()

	ok, err := repo.AcceptProposal(context.Background(), uuid.New(), uuid.New(), nil, nil, scheduledPrivateRide())

	require.NoError(t, err)
	assert.False(t, ok)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAcceptProposal_RideInsertFailureRollsBackProposal(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE proposals").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("UPDATE trip_requests").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("INSERT INTO private_rides").
		WillReturnError(errors.New("connection reset"))
	mock.ExpectRollback()

	ok, err := repo.AcceptProposal(context.Background(), uuid.New(), uuid.New(), nil, nil, scheduledPrivateRide())

	require.Error(t, err)
	assert.False(t, ok)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateTripRequestWithProposal_CommitsBothRows(t *testing.T) {
	repo, mock := newMockRepo(t)

	now := time.Now()
	request := &models.TripRequest{
		ID:            uuid.New(),
		PassengerID:   uuid.New(),
		Origin:        "Campus",
		Destination:   "Airport",
		DepartureTime: now.Add(3 * time.Hour),
		SeatCount:     2,
		Status:        models.TripRequestStatusOpen,
		ExpiresAt:     now.Add(models.TripRequestTTL),
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	proposal := &models.Proposal{
		ID:            uuid.New(),
		TripRequestID: request.ID,
		DriverID:      uuid.New(),
		VehicleID:     uuid.New(),
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO trip_requests").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("INSERT INTO proposals").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := repo.CreateTripRequestWithProposal(context.Background(), request, proposal)

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateTripRequestWithProposal_ProposalFailureRollsBackRequest(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO trip_requests").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("INSERT INTO proposals").
		WillReturnError(errors.New("connection reset"))
	mock.ExpectRollback()

	err := repo.CreateTripRequestWithProposal(context.Background(), &models.TripRequest{ID: uuid.New()}, &models.Proposal{ID: uuid.New()})

	assert.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRejectProposal_GuardsAnsweredProposals(t *testing.T) {
	repo, mock := newMockRepo(t)
	proposalID := uuid.New()

	mock.ExpectExec("UPDATE proposals").
		WillReturnResult(sqlmock.NewResult(0, 0))

	ok, err := repo.RejectProposal(context.Background(), proposalID)

	require.NoError(t, err)
	assert.False(t, ok)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateSeatCount_OnlyWhileScheduled(t *testing.T) {
	repo, mock := newMockRepo(t)
	rideID := uuid.New()

	mock.ExpectExec("UPDATE private_rides").
		WithArgs(3, sqlmock.AnyArg(), rideID, models.RideStatusScheduled).
		WillReturnResult(sqlmock.NewResult(0, 1))

	ok, err := repo.UpdateSeatCount(context.Background(), rideID, 3)

	require.NoError(t, err)
	assert.True(t, ok)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTransitionStatus_RefusesTerminalSource(t *testing.T) {
	repo, mock := newMockRepo(t)
	rideID := uuid.New()

	mock.ExpectExec("UPDATE private_rides").
		WillReturnResult(sqlmock.NewResult(0, 0))

	ok, err := repo.TransitionStatus(context.Background(), rideID, models.RideStatusCancelled,
		models.RideStatusScheduled, models.RideStatusInProgress)

	require.NoError(t, err)
	assert.False(t, ok)
	assert.NoError(t, mock.ExpectationsWereMet())
}

var privateRideRowColumns = []string{
	"id", "driver_id", "vehicle_id", "passenger_id", "origin", "destination",
	"origin_lat", "origin_lng", "dest_lat", "dest_lng",
	"departure_time", "total_seats", "occupied_seats",
	"price", "notes", "status", "created_at", "updated_at",
	"dp_id", "dp_user_id", "driver_name", "driver_email", "average_rating", "total_ratings",
	"pu_id", "passenger_name", "passenger_email",
	"v_id", "v_driver_id", "plate", "brand", "model", "color", "capacity", "v_created_at",
}

func addPrivateRideRow(rows *sqlmock.Rows, rideID uuid.UUID, passengerName string) *sqlmock.Rows {
	now := time.Now()
	return rows.AddRow(
		rideID, uuid.New(), uuid.New(), uuid.New(), "Campus", "Airport",
		nil, nil, nil, nil,
		now.Add(2*time.Hour), 2, 2,
		nil, nil, models.RideStatusScheduled, now, now,
		uuid.New(), uuid.New(), "Dana", "dana@example.com", 4.8, 20,
		uuid.New(), passengerName, "passenger@example.com",
		uuid.New(), uuid.New(), "XYZ9876", "VW", "Gol", "Blue", 4, now,
	)
}

func TestListByDriver_SingleJoinedQuery(t *testing.T) {
	repo, mock := newMockRepo(t)
	driverProfileID := uuid.New()

	rideA, rideB := uuid.New(), uuid.New()
	rows := sqlmock.NewRows(privateRideRowColumns)
	addPrivateRideRow(rows, rideA, "Paula")
	addPrivateRideRow(rows, rideB, "Pedro")

	// one joined query serves the whole page, no per ride lookups
	mock.ExpectQuery("JOIN driver_profiles").
		WithArgs(driverProfileID).
		WillReturnRows(rows)

	rideList, err := repo.ListByDriver(context.Background(), driverProfileID)

	require.NoError(t, err)
	require.Len(t, rideList, 2)
	assert.Equal(t, "Paula", rideList[0].Passenger.Name)
	assert.Equal(t, "Dana", rideList[0].Driver.Name)
	assert.Equal(t, "XYZ9876", rideList[0].Vehicle.Plate)
	assert.Equal(t, "Pedro", rideList[1].Passenger.Name)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetPrivateRideByID_ExpandsAllParties(t *testing.T) {
	repo, mock := newMockRepo(t)
	rideID := uuid.New()

	rows := sqlmock.NewRows(privateRideRowColumns)
	addPrivateRideRow(rows, rideID, "Paula")
	mock.ExpectQuery("JOIN driver_profiles").
		WithArgs(rideID).
		WillReturnRows(rows)

	ride, err := repo.GetPrivateRideByID(context.Background(), rideID)

	require.NoError(t, err)
	assert.Equal(t, rideID, ride.ID)
	assert.Equal(t, "Dana", ride.Driver.Name)
	assert.Equal(t, "Paula", ride.Passenger.Name)
	assert.Equal(t, "XYZ9876", ride.Vehicle.Plate)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMarkTripRequestExpired_OnlyTouchesOpenRequests(t *testing.T) {
	repo, mock := newMockRepo(t)
	requestID := uuid.New()

	mock.ExpectExec("UPDATE trip_requests").
		WithArgs(models.TripRequestStatusExpired, sqlmock.AnyArg(), requestID, models.TripRequestStatusOpen).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.MarkTripRequestExpired(context.Background(), requestID)

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
