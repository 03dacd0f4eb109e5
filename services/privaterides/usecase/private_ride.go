package usecase

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/HopOn-TAEY/HopOn-BackEnd/internal/pkg/apperrors"
	"github.com/HopOn-TAEY/HopOn-BackEnd/internal/pkg/logger"
	"github.com/HopOn-TAEY/HopOn-BackEnd/internal/pkg/models"
	"github.com/HopOn-TAEY/HopOn-BackEnd/services/privaterides"
)

type privateRideUC struct {
	cfg             *models.Config
	privateRideRepo privaterides.PrivateRideRepo
	privateRideGW   privaterides.PrivateRideGW
}

// NewPrivateRideUC creates a new private ride use case
func NewPrivateRideUC(cfg *models.Config, repo privaterides.PrivateRideRepo, gw privaterides.PrivateRideGW) privaterides.PrivateRideUC {
	return &privateRideUC{
		cfg:             cfg,
		privateRideRepo: repo,
		privateRideGW:   gw,
	}
}

// CreateTripRequest opens a trip request targeted at one driver, creating
// the request and its pending proposal together.
func (uc *privateRideUC) CreateTripRequest(ctx context.Context, callerID uuid.UUID, callerRole models.UserRole, req models.CreateTripRequestRequest) (*models.TripRequest, error) {
	if callerRole != models.RolePassenger {
		return nil, apperrors.Forbidden("only passengers can request private rides")
	}

	open, err := uc.privateRideRepo.HasOpenTripRequest(ctx, callerID)
	if err != nil {
		return nil, apperrors.Internal(err)
	}
	if open {
		return nil, apperrors.Conflict("you already have an open trip request")
	}

	target, err := uc.privateRideRepo.GetDriverProfileByID(ctx, req.DriverID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.NotFound("driver not found")
		}
		return nil, apperrors.Internal(err)
	}

	vehicle, err := uc.privateRideRepo.GetVehicleByID(ctx, req.VehicleID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.NotFound("vehicle not found")
		}
		return nil, apperrors.Internal(err)
	}
	if vehicle.DriverID != target.ID {
		return nil, apperrors.InvalidInput("vehicle does not belong to the requested driver")
	}

	if req.SeatCount < 1 || req.SeatCount > vehicle.Capacity {
		return nil, apperrors.InvalidInput("seat count must be between 1 and %d", vehicle.Capacity)
	}
	if req.Origin == "" || req.Destination == "" {
		return nil, apperrors.InvalidInput("origin and destination are required")
	}
	if !req.DepartureTime.After(time.Now()) {
		return nil, apperrors.InvalidInput("departure time must be in the future")
	}
	if req.MaxPrice != nil && *req.MaxPrice < 0 {
		return nil, apperrors.InvalidInput("max price cannot be negative")
	}

	now := time.Now()
	request := &models.TripRequest{
		ID:            uuid.New(),
		PassengerID:   callerID,
		Origin:        req.Origin,
		Destination:   req.Destination,
		OriginLat:     req.OriginLat,
		OriginLng:     req.OriginLng,
		DestLat:       req.DestLat,
		DestLng:       req.DestLng,
		DepartureTime: req.DepartureTime,
		SeatCount:     req.SeatCount,
		MaxPrice:      req.MaxPrice,
		Description:   req.Description,
		Status:        models.TripRequestStatusOpen,
		ExpiresAt:     now.Add(models.TripRequestTTL),
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	proposal := &models.Proposal{
		ID:            uuid.New(),
		TripRequestID: request.ID,
		DriverID:      target.ID,
		VehicleID:     vehicle.ID,
		OfferedPrice:  req.MaxPrice,
		Accepted:      nil,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if err := uc.privateRideRepo.CreateTripRequestWithProposal(ctx, request, proposal); err != nil {
		return nil, apperrors.Internal(err)
	}
	request.Proposals = []*models.Proposal{proposal}

	logger.Info("Trip request created",
		logger.String("trip_request_id", request.ID.String()),
		logger.String("passenger_id", callerID.String()),
		logger.String("driver_profile_id", target.ID.String()))

	uc.notify(ctx, target.UserID, models.NotificationTripRequested,
		"New trip request",
		fmt.Sprintf("A passenger requested a private ride from %s to %s for %d seat(s)",
			request.Origin, request.Destination, request.SeatCount),
		nil)

	return request, nil
}

// AcceptProposal accepts a pending proposal and creates the resulting
// private ride. The proposal answer, the request status change, and the
// ride creation happen as a single unit.
func (uc *privateRideUC) AcceptProposal(ctx context.Context, callerID uuid.UUID, req models.AcceptProposalRequest) (*models.PrivateRide, error) {
	proposal, err := uc.ownedProposal(ctx, callerID, req.ProposalID)
	if err != nil {
		return nil, err
	}

	request := proposal.TripRequest
	if request.Status != models.TripRequestStatusOpen {
		return nil, apperrors.Conflict("trip request is no longer open")
	}
	if request.Expired(time.Now()) {
		if err := uc.privateRideRepo.MarkTripRequestExpired(ctx, request.ID); err != nil {
			logger.Error("Failed to mark trip request expired",
				logger.String("trip_request_id", request.ID.String()),
				logger.Err(err))
		}
		return nil, apperrors.Conflict("trip request has expired")
	}

	vehicle, err := uc.privateRideRepo.GetVehicleByID(ctx, proposal.VehicleID)
	if err != nil {
		return nil, apperrors.Internal(err)
	}
	if request.SeatCount > vehicle.Capacity {
		return nil, apperrors.Conflict("vehicle no longer fits the requested seat count")
	}

	price := proposal.OfferedPrice
	if req.FinalPrice != nil {
		price = req.FinalPrice
	}
	notes := proposal.Notes
	if req.Notes != nil {
		notes = req.Notes
	}

	now := time.Now()
	ride := &models.PrivateRide{
		ID:            uuid.New(),
		DriverID:      proposal.DriverID,
		VehicleID:     proposal.VehicleID,
		PassengerID:   request.PassengerID,
		Origin:        request.Origin,
		Destination:   request.Destination,
		OriginLat:     request.OriginLat,
		OriginLng:     request.OriginLng,
		DestLat:       request.DestLat,
		DestLng:       request.DestLng,
		DepartureTime: request.DepartureTime,
		TotalSeats:    request.SeatCount,
		OccupiedSeats: request.SeatCount,
		Price:         price,
		Notes:         notes,
		Status:        models.RideStatusScheduled,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	ok, err := uc.privateRideRepo.AcceptProposal(ctx, proposal.ID, request.ID, req.FinalPrice, req.Notes, ride)
	if err != nil {
		return nil, apperrors.Internal(err)
	}
	if !ok {
		return nil, apperrors.Conflict("proposal already answered")
	}

	logger.Info("Proposal accepted",
		logger.String("proposal_id", proposal.ID.String()),
		logger.String("private_ride_id", ride.ID.String()))

	uc.notify(ctx, request.PassengerID, models.NotificationProposalAccepted,
		"Trip request accepted",
		fmt.Sprintf("Your trip request from %s to %s was accepted", request.Origin, request.Destination),
		&ride.ID)

	return ride, nil
}

// RejectProposal declines a pending proposal. The trip request stays open
// until it expires.
func (uc *privateRideUC) RejectProposal(ctx context.Context, callerID uuid.UUID, req models.RejectProposalRequest) error {
	proposal, err := uc.ownedProposal(ctx, callerID, req.ProposalID)
	if err != nil {
		return err
	}

	request := proposal.TripRequest
	if request.Status != models.TripRequestStatusOpen {
		return apperrors.Conflict("trip request is no longer open")
	}
	if request.Expired(time.Now()) {
		if err := uc.privateRideRepo.MarkTripRequestExpired(ctx, request.ID); err != nil {
			logger.Error("Failed to mark trip request expired",
				logger.String("trip_request_id", request.ID.String()),
				logger.Err(err))
		}
		return apperrors.Conflict("trip request has expired")
	}

	ok, err := uc.privateRideRepo.RejectProposal(ctx, proposal.ID)
	if err != nil {
		return apperrors.Internal(err)
	}
	if !ok {
		return apperrors.Conflict("proposal already answered")
	}

	uc.notify(ctx, request.PassengerID, models.NotificationProposalRejected,
		"Trip request declined",
		fmt.Sprintf("Your trip request from %s to %s was declined by the driver", request.Origin, request.Destination),
		nil)

	return nil
}

// UpdateSeatCount lets the passenger adjust the seat total before departure
func (uc *privateRideUC) UpdateSeatCount(ctx context.Context, callerID uuid.UUID, req models.UpdateSeatCountRequest) (*models.PrivateRide, error) {
	ride, err := uc.privateRideRepo.GetPrivateRideByID(ctx, req.PrivateRideID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.NotFound("private ride not found")
		}
		return nil, apperrors.Internal(err)
	}
	if ride.PassengerID != callerID {
		return nil, apperrors.Forbidden("only the ride's passenger may change the seat count")
	}
	if ride.Status != models.RideStatusScheduled {
		return nil, apperrors.Conflict("seat count can only change while the ride is scheduled")
	}
	if req.TotalSeats < ride.OccupiedSeats || req.TotalSeats > ride.Vehicle.Capacity {
		return nil, apperrors.InvalidInput("seat count must be between %d and %d", ride.OccupiedSeats, ride.Vehicle.Capacity)
	}

	ok, err := uc.privateRideRepo.UpdateSeatCount(ctx, ride.ID, req.TotalSeats)
	if err != nil {
		return nil, apperrors.Internal(err)
	}
	if !ok {
		return nil, apperrors.Conflict("seat count can only change while the ride is scheduled")
	}
	ride.TotalSeats = req.TotalSeats

	return ride, nil
}

// CancelPrivateRide cancels a private ride on the driver's initiative
func (uc *privateRideUC) CancelPrivateRide(ctx context.Context, callerID uuid.UUID, privateRideID uuid.UUID) error {
	ride, err := uc.ownedPrivateRide(ctx, callerID, privateRideID)
	if err != nil {
		return err
	}
	if ride.Status.Terminal() {
		return apperrors.Conflict("ride already finished or cancelled")
	}

	ok, err := uc.privateRideRepo.TransitionStatus(ctx, ride.ID, models.RideStatusCancelled,
		models.RideStatusScheduled, models.RideStatusInProgress)
	if err != nil {
		return apperrors.Internal(err)
	}
	if !ok {
		return apperrors.Conflict("ride already finished or cancelled")
	}

	uc.notify(ctx, ride.PassengerID, models.NotificationRideCancelled,
		"Private ride cancelled",
		fmt.Sprintf("Your private ride from %s to %s was cancelled by the driver", ride.Origin, ride.Destination),
		&ride.ID)

	return nil
}

// FinalizePrivateRide marks a private ride finished
func (uc *privateRideUC) FinalizePrivateRide(ctx context.Context, callerID uuid.UUID, privateRideID uuid.UUID) error {
	ride, err := uc.ownedPrivateRide(ctx, callerID, privateRideID)
	if err != nil {
		return err
	}
	if ride.Status.Terminal() {
		return apperrors.Conflict("ride already finished or cancelled")
	}

	ok, err := uc.privateRideRepo.TransitionStatus(ctx, ride.ID, models.RideStatusFinished,
		models.RideStatusScheduled, models.RideStatusInProgress)
	if err != nil {
		return apperrors.Internal(err)
	}
	if !ok {
		return apperrors.Conflict("ride already finished or cancelled")
	}

	uc.notify(ctx, ride.PassengerID, models.NotificationRideFinished,
		"Private ride finished",
		fmt.Sprintf("Your private ride from %s to %s is finished", ride.Origin, ride.Destination),
		&ride.ID)

	return nil
}

// GetPrivateRide retrieves a private ride, visible only to its two parties
func (uc *privateRideUC) GetPrivateRide(ctx context.Context, callerID uuid.UUID, privateRideID uuid.UUID) (*models.PrivateRide, error) {
	ride, err := uc.privateRideRepo.GetPrivateRideByID(ctx, privateRideID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.NotFound("private ride not found")
		}
		return nil, apperrors.Internal(err)
	}
	if ride.PassengerID != callerID && (ride.Driver == nil || ride.Driver.UserID != callerID) {
		return nil, apperrors.NotFound("private ride not found")
	}
	return ride, nil
}

// ListForPassenger lists the caller's private rides as a passenger
func (uc *privateRideUC) ListForPassenger(ctx context.Context, callerID uuid.UUID) ([]*models.PrivateRide, error) {
	rideList, err := uc.privateRideRepo.ListByPassenger(ctx, callerID)
	if err != nil {
		return nil, apperrors.Internal(err)
	}
	return rideList, nil
}

// ListForDriver lists the caller's private rides as a driver
func (uc *privateRideUC) ListForDriver(ctx context.Context, callerID uuid.UUID) ([]*models.PrivateRide, error) {
	profile, err := uc.callerProfile(ctx, callerID)
	if err != nil {
		return nil, err
	}

	rideList, err := uc.privateRideRepo.ListByDriver(ctx, profile.ID)
	if err != nil {
		return nil, apperrors.Internal(err)
	}
	return rideList, nil
}

// ListDriverRequests lists pending proposals waiting on the caller's answer
func (uc *privateRideUC) ListDriverRequests(ctx context.Context, callerID uuid.UUID) ([]*models.Proposal, error) {
	profile, err := uc.callerProfile(ctx, callerID)
	if err != nil {
		return nil, err
	}

	proposals, err := uc.privateRideRepo.ListOpenProposalsForDriver(ctx, profile.ID)
	if err != nil {
		return nil, apperrors.Internal(err)
	}
	return proposals, nil
}

func (uc *privateRideUC) callerProfile(ctx context.Context, callerID uuid.UUID) (*models.DriverProfile, error) {
	profile, err := uc.privateRideRepo.GetDriverProfileByUserID(ctx, callerID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.Forbidden("only drivers can do this")
		}
		return nil, apperrors.Internal(err)
	}
	return profile, nil
}

// ownedProposal loads a proposal with its trip request and verifies the
// caller is the targeted driver.
func (uc *privateRideUC) ownedProposal(ctx context.Context, callerID uuid.UUID, proposalID uuid.UUID) (*models.Proposal, error) {
	proposal, err := uc.privateRideRepo.GetProposalByID(ctx, proposalID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.NotFound("proposal not found")
		}
		return nil, apperrors.Internal(err)
	}

	profile, err := uc.callerProfile(ctx, callerID)
	if err != nil {
		return nil, err
	}
	if proposal.DriverID != profile.ID {
		return nil, apperrors.Forbidden("only the targeted driver may answer this proposal")
	}
	if proposal.Answered() {
		return nil, apperrors.Conflict("proposal already answered")
	}
	return proposal, nil
}

// ownedPrivateRide loads a private ride and verifies the caller drives it
func (uc *privateRideUC) ownedPrivateRide(ctx context.Context, callerID uuid.UUID, privateRideID uuid.UUID) (*models.PrivateRide, error) {
	ride, err := uc.privateRideRepo.GetPrivateRideByID(ctx, privateRideID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.NotFound("private ride not found")
		}
		return nil, apperrors.Internal(err)
	}
	if ride.Driver == nil || ride.Driver.UserID != callerID {
		return nil, apperrors.Forbidden("only the ride's driver may do this")
	}
	return ride, nil
}

func (uc *privateRideUC) notify(ctx context.Context, userID uuid.UUID, kind models.NotificationKind, title, message string, rideID *uuid.UUID) {
	event := models.NotificationEvent{
		UserID:  userID,
		Kind:    kind,
		Title:   title,
		Message: message,
		RideID:  rideID,
	}
	if err := uc.privateRideGW.PublishNotification(ctx, event); err != nil {
		logger.Error("Failed to publish private ride notification",
			logger.String("user_id", userID.String()),
			logger.String("kind", string(kind)),
			logger.Err(err))
	}
}
