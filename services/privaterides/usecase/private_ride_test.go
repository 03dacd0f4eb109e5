package usecase

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/HopOn-TAEY/HopOn-BackEnd/internal/pkg/apperrors"
	"github.com/HopOn-TAEY/HopOn-BackEnd/internal/pkg/models"
	"github.com/HopOn-TAEY/HopOn-BackEnd/services/privaterides/mocks"
)

func floatPtr(v float64) *float64 { return &v }

func newOpenProposal(driverProfileID, passengerID uuid.UUID, seatCount int) *models.Proposal {
	now := time.Now()
	return &models.Proposal{
		ID:            uuid.New(),
		TripRequestID: uuid.New(),
		DriverID:      driverProfileID,
		VehicleID:     uuid.New(),
		OfferedPrice:  floatPtr(50),
		Accepted:      nil,
		TripRequest: &models.TripRequest{
			ID:            uuid.New(),
			PassengerID:   passengerID,
			Origin:        "Campus",
			Destination:   "Airport",
			DepartureTime: now.Add(2 * time.Hour),
			SeatCount:     seatCount,
			Status:        models.TripRequestStatusOpen,
			ExpiresAt:     now.Add(12 * time.Hour),
		},
	}
}

func TestCreateTripRequest_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockPrivateRideRepo(ctrl)
	mockGW := mocks.NewMockPrivateRideGW(ctrl)
	uc := NewPrivateRideUC(&models.Config{}, mockRepo, mockGW)

	passengerID := uuid.New()
	driverUserID := uuid.New()
	profile := &models.DriverProfile{ID: uuid.New(), UserID: driverUserID}
	vehicle := &models.Vehicle{ID: uuid.New(), DriverID: profile.ID, Capacity: 4}

	mockRepo.EXPECT().HasOpenTripRequest(gomock.Any(), passengerID).Return(false, nil)
	mockRepo.EXPECT().GetDriverProfileByID(gomock.Any(), profile.ID).Return(profile, nil)
	mockRepo.EXPECT().GetVehicleByID(gomock.Any(), vehicle.ID).Return(vehicle, nil)
	mockRepo.EXPECT().CreateTripRequestWithProposal(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, request *models.TripRequest, proposal *models.Proposal) error {
			assert.Equal(t, models.TripRequestStatusOpen, request.Status)
			assert.Equal(t, passengerID, request.PassengerID)
			assert.True(t, request.ExpiresAt.After(time.Now().Add(23*time.Hour)))
			assert.Equal(t, request.ID, proposal.TripRequestID)
			assert.Equal(t, profile.ID, proposal.DriverID)
			assert.Nil(t, proposal.Accepted)
			return nil
		})
	mockGW.EXPECT().PublishNotification(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, event models.NotificationEvent) error {
			assert.Equal(t, models.NotificationTripRequested, event.Kind)
			assert.Equal(t, driverUserID, event.UserID)
			return nil
		})

	request, err := uc.CreateTripRequest(context.Background(), passengerID, models.RolePassenger, models.CreateTripRequestRequest{
		DriverID:      profile.ID,
		VehicleID:     vehicle.ID,
		Origin:        "Campus",
		Destination:   "Airport",
		DepartureTime: time.Now().Add(3 * time.Hour),
		SeatCount:     2,
	})

	require.NoError(t, err)
	assert.Len(t, request.Proposals, 1)
	assert.Nil(t, request.Proposals[0].Accepted)
}

func TestCreateTripRequest_DriverForbidden(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockPrivateRideRepo(ctrl)
	mockGW := mocks.NewMockPrivateRideGW(ctrl)
	uc := NewPrivateRideUC(&models.Config{}, mockRepo, mockGW)

	_, err := uc.CreateTripRequest(context.Background(), uuid.New(), models.RoleDriver, models.CreateTripRequestRequest{})

	require.Error(t, err)
	assert.Equal(t, apperrors.KindForbidden, apperrors.KindOf(err))
}

func TestCreateTripRequest_AlreadyOpen(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockPrivateRideRepo(ctrl)
	mockGW := mocks.NewMockPrivateRideGW(ctrl)
	uc := NewPrivateRideUC(&models.Config{}, mockRepo, mockGW)

	passengerID := uuid.New()
	mockRepo.EXPECT().HasOpenTripRequest(gomock.Any(), passengerID).Return(true, nil)

	_, err := uc.CreateTripRequest(context.Background(), passengerID, models.RolePassenger, models.CreateTripRequestRequest{})

	require.Error(t, err)
	assert.Equal(t, apperrors.KindConflict, apperrors.KindOf(err))
	assert.Contains(t, apperrors.MessageOf(err), "open trip request")
}

func TestCreateTripRequest_SeatCountOverCapacity(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockPrivateRideRepo(ctrl)
	mockGW := mocks.NewMockPrivateRideGW(ctrl)
	uc := NewPrivateRideUC(&models.Config{}, mockRepo, mockGW)

	passengerID := uuid.New()
	profile := &models.DriverProfile{ID: uuid.New(), UserID: uuid.New()}
	vehicle := &models.Vehicle{ID: uuid.New(), DriverID: profile.ID, Capacity: 4}

	mockRepo.EXPECT().HasOpenTripRequest(gomock.Any(), passengerID).Return(false, nil)
	mockRepo.EXPECT().GetDriverProfileByID(gomock.Any(), profile.ID).Return(profile, nil)
	mockRepo.EXPECT().GetVehicleByID(gomock.Any(), vehicle.ID).Return(vehicle, nil)

	_, err := uc.CreateTripRequest(context.Background(), passengerID, models.RolePassenger, models.CreateTripRequestRequest{
		DriverID:      profile.ID,
		VehicleID:     vehicle.ID,
		Origin:        "Campus",
		Destination:   "Airport",
		DepartureTime: time.Now().Add(time.Hour),
		SeatCount:     5,
	})

	require.Error(t, err)
	assert.Equal(t, apperrors.KindInvalidInput, apperrors.KindOf(err))
}

func TestCreateTripRequest_VehicleNotDrivers(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockPrivateRideRepo(ctrl)
	mockGW := mocks.NewMockPrivateRideGW(ctrl)
	uc := NewPrivateRideUC(&models.Config{}, mockRepo, mockGW)

	passengerID := uuid.New()
	profile := &models.DriverProfile{ID: uuid.New(), UserID: uuid.New()}
	vehicle := &models.Vehicle{ID: uuid.New(), DriverID: uuid.New(), Capacity: 4}

	mockRepo.EXPECT().HasOpenTripRequest(gomock.Any(), passengerID).Return(false, nil)
	mockRepo.EXPECT().GetDriverProfileByID(gomock.Any(), profile.ID).Return(profile, nil)
	mockRepo.EXPECT().GetVehicleByID(gomock.Any(), vehicle.ID).Return(vehicle, nil)

	_, err := uc.CreateTripRequest(context.Background(), passengerID, models.RolePassenger, models.CreateTripRequestRequest{
		DriverID:  profile.ID,
		VehicleID: vehicle.ID,
		SeatCount: 2,
	})

	require.Error(t, err)
	assert.Equal(t, apperrors.KindInvalidInput, apperrors.KindOf(err))
}

func TestAcceptProposal_CreatesScheduledRide(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockPrivateRideRepo(ctrl)
	mockGW := mocks.NewMockPrivateRideGW(ctrl)
	uc := NewPrivateRideUC(&models.Config{}, mockRepo, mockGW)

	driverUserID := uuid.New()
	passengerID := uuid.New()
	profile := &models.DriverProfile{ID: uuid.New(), UserID: driverUserID}
	proposal := newOpenProposal(profile.ID, passengerID, 2)
	vehicle := &models.Vehicle{ID: proposal.VehicleID, DriverID: profile.ID, Capacity: 4}

	mockRepo.EXPECT().GetProposalByID(gomock.Any(), proposal.ID).Return(proposal, nil)
	mockRepo.EXPECT().GetDriverProfileByUserID(gomock.Any(), driverUserID).Return(profile, nil)
	mockRepo.EXPECT().GetVehicleByID(gomock.Any(), proposal.VehicleID).Return(vehicle, nil)
	mockRepo.EXPECT().AcceptProposal(gomock.Any(), proposal.ID, proposal.TripRequest.ID, floatPtr(60), gomock.Nil(), gomock.Any()).DoAndReturn(
		func(_ context.Context, _, _ uuid.UUID, _ *float64, _ *string, ride *models.PrivateRide) (bool, error) {
			assert.Equal(t, models.RideStatusScheduled, ride.Status)
			assert.Equal(t, 2, ride.TotalSeats)
			assert.Equal(t, 2, ride.OccupiedSeats)
			assert.Equal(t, passengerID, ride.PassengerID)
			require.NotNil(t, ride.Price)
			assert.Equal(t, 60.0, *ride.Price)
			return true, nil
		})
	mockGW.EXPECT().PublishNotification(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, event models.NotificationEvent) error {
			assert.Equal(t, models.NotificationProposalAccepted, event.Kind)
			assert.Equal(t, passengerID, event.UserID)
			return nil
		})

	ride, err := uc.AcceptProposal(context.Background(), driverUserID, models.AcceptProposalRequest{
		ProposalID: proposal.ID,
		FinalPrice: floatPtr(60),
	})

	require.NoError(t, err)
	assert.Equal(t, models.RideStatusScheduled, ride.Status)
	assert.Equal(t, ride.TotalSeats, ride.OccupiedSeats)
}

func TestAcceptProposal_AlreadyAnswered(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockPrivateRideRepo(ctrl)
	mockGW := mocks.NewMockPrivateRideGW(ctrl)
	uc := NewPrivateRideUC(&models.Config{}, mockRepo, mockGW)

	driverUserID := uuid.New()
	profile := &models.DriverProfile{ID: uuid.New(), UserID: driverUserID}
	proposal := newOpenProposal(profile.ID, uuid.New(), 2)
	answered := true
	proposal.Accepted = &answered

	mockRepo.EXPECT().GetProposalByID(gomock.Any(), proposal.ID).Return(proposal, nil)
	mockRepo.EXPECT().GetDriverProfileByUserID(gomock.Any(), driverUserID).Return(profile, nil)

	_, err := uc.AcceptProposal(context.Background(), driverUserID, models.AcceptProposalRequest{ProposalID: proposal.ID})

	require.Error(t, err)
	assert.Equal(t, apperrors.KindConflict, apperrors.KindOf(err))
	assert.Contains(t, apperrors.MessageOf(err), "already answered")
}

func TestAcceptProposal_LostRace(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockPrivateRideRepo(ctrl)
	mockGW := mocks.NewMockPrivateRideGW(ctrl)
	uc := NewPrivateRideUC(&models.Config{}, mockRepo, mockGW)

	driverUserID := uuid.New()
	profile := &models.DriverProfile{ID: uuid.New(), UserID: driverUserID}
	proposal := newOpenProposal(profile.ID, uuid.New(), 2)
	vehicle := &models.Vehicle{ID: proposal.VehicleID, DriverID: profile.ID, Capacity: 4}

	mockRepo.EXPECT().GetProposalByID(gomock.Any(), proposal.ID).Return(proposal, nil)
	mockRepo.EXPECT().GetDriverProfileByUserID(gomock.Any(), driverUserID).Return(profile, nil)
	mockRepo.EXPECT().GetVehicleByID(gomock.Any(), proposal.VehicleID).Return(vehicle, nil)
	mockRepo.EXPECT().AcceptProposal(gomock.Any(), proposal.ID, proposal.TripRequest.ID, gomock.Nil(), gomock.Nil(), gomock.Any()).
		Return(false, nil)

	_, err := uc.AcceptProposal(context.Background(), driverUserID, models.AcceptProposalRequest{ProposalID: proposal.ID})

	require.Error(t, err)
	assert.Equal(t, apperrors.KindConflict, apperrors.KindOf(err))
}

func TestAcceptProposal_ExpiredRequest(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockPrivateRideRepo(ctrl)
	mockGW := mocks.NewMockPrivateRideGW(ctrl)
	uc := NewPrivateRideUC(&models.Config{}, mockRepo, mockGW)

	driverUserID := uuid.New()
	profile := &models.DriverProfile{ID: uuid.New(), UserID: driverUserID}
	proposal := newOpenProposal(profile.ID, uuid.New(), 2)
	proposal.TripRequest.ExpiresAt = time.Now().Add(-time.Minute)

	mockRepo.EXPECT().GetProposalByID(gomock.Any(), proposal.ID).Return(proposal, nil)
	mockRepo.EXPECT().GetDriverProfileByUserID(gomock.Any(), driverUserID).Return(profile, nil)
	mockRepo.EXPECT().MarkTripRequestExpired(gomock.Any(), proposal.TripRequest.ID).Return(nil)

	_, err := uc.AcceptProposal(context.Background(), driverUserID, models.AcceptProposalRequest{ProposalID: proposal.ID})

	require.Error(t, err)
	assert.Equal(t, apperrors.KindConflict, apperrors.KindOf(err))
	assert.Contains(t, apperrors.MessageOf(err), "expired")
}

func TestAcceptProposal_WrongDriver(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockPrivateRideRepo(ctrl)
	mockGW := mocks.NewMockPrivateRideGW(ctrl)
	uc := NewPrivateRideUC(&models.Config{}, mockRepo, mockGW)

	callerUserID := uuid.New()
	proposal := newOpenProposal(uuid.New(), uuid.New(), 2)
	otherProfile := &models.DriverProfile{ID: uuid.New(), UserID: callerUserID}

	mockRepo.EXPECT().GetProposalByID(gomock.Any(), proposal.ID).Return(proposal, nil)
	mockRepo.EXPECT().GetDriverProfileByUserID(gomock.Any(), callerUserID).Return(otherProfile, nil)

	_, err := uc.AcceptProposal(context.Background(), callerUserID, models.AcceptProposalRequest{ProposalID: proposal.ID})

	require.Error(t, err)
	assert.Equal(t, apperrors.KindForbidden, apperrors.KindOf(err))
}

func TestRejectProposal_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockPrivateRideRepo(ctrl)
	mockGW := mocks.NewMockPrivateRideGW(ctrl)
	uc := NewPrivateRideUC(&models.Config{}, mockRepo, mockGW)

	driverUserID := uuid.New()
	passengerID := uuid.New()
	profile := &models.DriverProfile{ID: uuid.New(), UserID: driverUserID}
	proposal := newOpenProposal(profile.ID, passengerID, 2)

	mockRepo.EXPECT().GetProposalByID(gomock.Any(), proposal.ID).Return(proposal, nil)
	mockRepo.EXPECT().GetDriverProfileByUserID(gomock.Any(), driverUserID).Return(profile, nil)
	mockRepo.EXPECT().RejectProposal(gomock.Any(), proposal.ID).Return(true, nil)
	mockGW.EXPECT().PublishNotification(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, event models.NotificationEvent) error {
			assert.Equal(t, models.NotificationProposalRejected, event.Kind)
			assert.Equal(t, passengerID, event.UserID)
			return nil
		})

	err := uc.RejectProposal(context.Background(), driverUserID, models.RejectProposalRequest{ProposalID: proposal.ID})
	require.NoError(t, err)
}

func TestUpdateSeatCount_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockPrivateRideRepo(ctrl)
	mockGW := mocks.NewMockPrivateRideGW(ctrl)
	uc := NewPrivateRideUC(&models.Config{}, mockRepo, mockGW)

	passengerID := uuid.New()
	ride := &models.PrivateRide{
		ID:            uuid.New(),
		PassengerID:   passengerID,
		TotalSeats:    2,
		OccupiedSeats: 2,
		Status:        models.RideStatusScheduled,
		Vehicle:       &models.Vehicle{Capacity: 4},
	}

	mockRepo.EXPECT().GetPrivateRideByID(gomock.Any(), ride.ID).Return(ride, nil)
	mockRepo.EXPECT().UpdateSeatCount(gomock.Any(), ride.ID, 3).Return(true, nil)

	updated, err := uc.UpdateSeatCount(context.Background(), passengerID, models.UpdateSeatCountRequest{
		PrivateRideID: ride.ID,
		TotalSeats:    3,
	})

	require.NoError(t, err)
	assert.Equal(t, 3, updated.TotalSeats)
}

func TestUpdateSeatCount_BelowOccupied(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockPrivateRideRepo(ctrl)
	mockGW := mocks.NewMockPrivateRideGW(ctrl)
	uc := NewPrivateRideUC(&models.Config{}, mockRepo, mockGW)

	passengerID := uuid.New()
	ride := &models.PrivateRide{
		ID:            uuid.New(),
		PassengerID:   passengerID,
		TotalSeats:    3,
		OccupiedSeats: 3,
		Status:        models.RideStatusScheduled,
		Vehicle:       &models.Vehicle{Capacity: 4},
	}

	mockRepo.EXPECT().GetPrivateRideByID(gomock.Any(), ride.ID).Return(ride, nil)

	_, err := uc.UpdateSeatCount(context.Background(), passengerID, models.UpdateSeatCountRequest{
		PrivateRideID: ride.ID,
		TotalSeats:    2,
	})

	require.Error(t, err)
	assert.Equal(t, apperrors.KindInvalidInput, apperrors.KindOf(err))
}

func TestUpdateSeatCount_NotPassenger(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockPrivateRideRepo(ctrl)
	mockGW := mocks.NewMockPrivateRideGW(ctrl)
	uc := NewPrivateRideUC(&models.Config{}, mockRepo, mockGW)

	ride := &models.PrivateRide{
		ID:          uuid.New(),
		PassengerID: uuid.New(),
		Status:      models.RideStatusScheduled,
		Vehicle:     &models.Vehicle{Capacity: 4},
	}

	mockRepo.EXPECT().GetPrivateRideByID(gomock.Any(), ride.ID).Return(ride, nil)

	_, err := uc.UpdateSeatCount(context.Background(), uuid.New(), models.UpdateSeatCountRequest{
		PrivateRideID: ride.ID,
		TotalSeats:    3,
	})

	require.Error(t, err)
	assert.Equal(t, apperrors.KindForbidden, apperrors.KindOf(err))
}

func TestCancelPrivateRide_TerminalConflict(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockPrivateRideRepo(ctrl)
	mockGW := mocks.NewMockPrivateRideGW(ctrl)
	uc := NewPrivateRideUC(&models.Config{}, mockRepo, mockGW)

	driverUserID := uuid.New()
	ride := &models.PrivateRide{
		ID:     uuid.New(),
		Status: models.RideStatusFinished,
		Driver: &models.DriverSummary{ID: uuid.New(), UserID: driverUserID},
	}

	mockRepo.EXPECT().GetPrivateRideByID(gomock.Any(), ride.ID).Return(ride, nil)

	err := uc.CancelPrivateRide(context.Background(), driverUserID, ride.ID)

	require.Error(t, err)
	assert.Equal(t, apperrors.KindConflict, apperrors.KindOf(err))
}

func TestFinalizePrivateRide_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockPrivateRideRepo(ctrl)
	mockGW := mocks.NewMockPrivateRideGW(ctrl)
	uc := NewPrivateRideUC(&models.Config{}, mockRepo, mockGW)

	driverUserID := uuid.New()
	passengerID := uuid.New()
	ride := &models.PrivateRide{
		ID:          uuid.New(),
		PassengerID: passengerID,
		Status:      models.RideStatusInProgress,
		Driver:      &models.DriverSummary{ID: uuid.New(), UserID: driverUserID},
	}

	mockRepo.EXPECT().GetPrivateRideByID(gomock.Any(), ride.ID).Return(ride, nil)
	mockRepo.EXPECT().TransitionStatus(gomock.Any(), ride.ID, models.RideStatusFinished,
		models.RideStatusScheduled, models.RideStatusInProgress).Return(true, nil)
	mockGW.EXPECT().PublishNotification(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, event models.NotificationEvent) error {
			assert.Equal(t, models.NotificationRideFinished, event.Kind)
			assert.Equal(t, passengerID, event.UserID)
			return nil
		})

	err := uc.FinalizePrivateRide(context.Background(), driverUserID, ride.ID)
	require.NoError(t, err)
}

func TestGetPrivateRide_ThirdPartyNotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockPrivateRideRepo(ctrl)
	mockGW := mocks.NewMockPrivateRideGW(ctrl)
	uc := NewPrivateRideUC(&models.Config{}, mockRepo, mockGW)

	ride := &models.PrivateRide{
		ID:          uuid.New(),
		PassengerID: uuid.New(),
		Driver:      &models.DriverSummary{ID: uuid.New(), UserID: uuid.New()},
	}

	mockRepo.EXPECT().GetPrivateRideByID(gomock.Any(), ride.ID).Return(ride, nil)

	_, err := uc.GetPrivateRide(context.Background(), uuid.New(), ride.ID)

	require.Error(t, err)
	assert.Equal(t, apperrors.KindNotFound, apperrors.KindOf(err))
}

func TestListDriverRequests_NotDriver(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockPrivateRideRepo(ctrl)
	mockGW := mocks.NewMockPrivateRideGW(ctrl)
	uc := NewPrivateRideUC(&models.Config{}, mockRepo, mockGW)

	callerID := uuid.New()
	mockRepo.EXPECT().GetDriverProfileByUserID(gomock.Any(), callerID).Return(nil, sql.ErrNoRows)

	_, err := uc.ListDriverRequests(context.Background(), callerID)

	require.Error(t, err)
	assert.Equal(t, apperrors.KindForbidden, apperrors.KindOf(err))
}
