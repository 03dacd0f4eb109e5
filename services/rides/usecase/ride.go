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
	"github.com/HopOn-TAEY/HopOn-BackEnd/services/rides"
)

type rideUC struct {
	cfg      *models.Config
	rideRepo rides.RideRepo
	rideGW   rides.RideGW
}

// NewRideUC creates a new ride use case
func NewRideUC(cfg *models.Config, rideRepo rides.RideRepo, rideGW rides.RideGW) rides.RideUC {
	return &rideUC{
		cfg:      cfg,
		rideRepo: rideRepo,
		rideGW:   rideGW,
	}
}

// CreateRide registers a new scheduled ride for the calling driver
func (uc *rideUC) CreateRide(ctx context.Context, callerID uuid.UUID, req models.CreateRideRequest) (*models.Ride, error) {
	profile, err := uc.rideRepo.GetDriverProfileByUserID(ctx, callerID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.Forbidden("only drivers can offer rides")
		}
		return nil, apperrors.Internal(err)
	}

	vehicle, err := uc.rideRepo.GetVehicleByID(ctx, req.VehicleID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.NotFound("vehicle not found")
		}
		return nil, apperrors.Internal(err)
	}
	if vehicle.DriverID != profile.ID {
		return nil, apperrors.NotFound("vehicle not found")
	}

	if req.Origin == "" || req.Destination == "" {
		return nil, apperrors.InvalidInput("origin and destination are required")
	}
	if req.TotalSeats < 1 {
		return nil, apperrors.InvalidInput("total seats must be at least 1")
	}
	if req.TotalSeats > vehicle.Capacity {
		return nil, apperrors.InvalidInput("total seats exceed vehicle capacity of %d", vehicle.Capacity)
	}
	if !req.DepartureTime.After(time.Now()) {
		return nil, apperrors.InvalidInput("departure time must be in the future")
	}
	if req.Kind != models.RideKindRecurring && req.Kind != models.RideKindPrivate {
		return nil, apperrors.InvalidInput("invalid ride kind: %s", req.Kind)
	}

	now := time.Now()
	ride := &models.Ride{
		ID:            uuid.New(),
		DriverID:      profile.ID,
		VehicleID:     vehicle.ID,
		Origin:        req.Origin,
		Destination:   req.Destination,
		OriginLat:     req.OriginLat,
		OriginLng:     req.OriginLng,
		DestLat:       req.DestLat,
		DestLng:       req.DestLng,
		DepartureTime: req.DepartureTime,
		TotalSeats:    req.TotalSeats,
		OccupiedSeats: 0,
		Price:         req.Price,
		Notes:         req.Notes,
		Status:        models.RideStatusScheduled,
		Kind:          req.Kind,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if req.Kind == models.RideKindRecurring {
		recurrence, err := buildRecurrence(ride.ID, req)
		if err != nil {
			return nil, err
		}
		ride.Recurrence = recurrence
	}

	if err := uc.rideRepo.CreateRide(ctx, ride); err != nil {
		return nil, apperrors.Internal(err)
	}

	logger.Info("Ride created",
		logger.String("ride_id", ride.ID.String()),
		logger.String("driver_id", profile.ID.String()),
		logger.Int("total_seats", ride.TotalSeats))

	ride.Vehicle = vehicle
	return ride, nil
}

func buildRecurrence(rideID uuid.UUID, req models.CreateRideRequest) (*models.RecurrencePattern, error) {
	if len(req.Days) == 0 {
		return nil, apperrors.InvalidInput("recurring rides require at least one day of week")
	}
	for _, d := range req.Days {
		if !models.ValidWeekday(d) {
			return nil, apperrors.InvalidInput("invalid day of week: %s", d)
		}
	}
	if req.StartDate == nil {
		return nil, apperrors.InvalidInput("recurring rides require a start date")
	}
	if req.EndDate != nil && req.EndDate.Before(*req.StartDate) {
		return nil, apperrors.InvalidInput("end date must not precede start date")
	}

	return &models.RecurrencePattern{
		ID:        uuid.New(),
		RideID:    rideID,
		Days:      req.Days,
		StartDate: *req.StartDate,
		EndDate:   req.EndDate,
	}, nil
}

// GetRide returns a ride's detail. The ride's own driver additionally sees
// its reservations.
func (uc *rideUC) GetRide(ctx context.Context, callerID uuid.UUID, rideID uuid.UUID) (*models.Ride, error) {
	ride, err := uc.rideRepo.GetRideByID(ctx, rideID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.NotFound("ride not found")
		}
		return nil, apperrors.Internal(err)
	}

	if ride.Driver != nil && ride.Driver.UserID == callerID {
		reservations, err := uc.rideRepo.ListReservationsForRide(ctx, rideID)
		if err != nil {
			return nil, apperrors.Internal(err)
		}
		ride.Reservations = reservations
	}
	return ride, nil
}

// ListRides lists upcoming scheduled rides
func (uc *rideUC) ListRides(ctx context.Context) ([]*models.Ride, error) {
	rideList, err := uc.rideRepo.ListScheduledRides(ctx)
	if err != nil {
		return nil, apperrors.Internal(err)
	}
	return rideList, nil
}

// SearchRides filters scheduled rides by route substrings and date
func (uc *rideUC) SearchRides(ctx context.Context, req models.SearchRidesRequest) ([]*models.Ride, error) {
	rideList, err := uc.rideRepo.SearchRides(ctx, req)
	if err != nil {
		return nil, apperrors.Internal(err)
	}
	return rideList, nil
}

// ListFinishedByUser lists finished rides the caller rode on
func (uc *rideUC) ListFinishedByUser(ctx context.Context, callerID uuid.UUID) ([]*models.Ride, error) {
	rideList, err := uc.rideRepo.ListFinishedByPassenger(ctx, callerID)
	if err != nil {
		return nil, apperrors.Internal(err)
	}
	return rideList, nil
}

// StartRide moves a scheduled ride to IN_PROGRESS
func (uc *rideUC) StartRide(ctx context.Context, callerID uuid.UUID, rideID uuid.UUID) (*models.Ride, error) {
	ride, err := uc.ownedRide(ctx, callerID, rideID)
	if err != nil {
		return nil, err
	}

	ok, err := uc.rideRepo.TransitionStatus(ctx, rideID, models.RideStatusInProgress, models.RideStatusScheduled)
	if err != nil {
		return nil, apperrors.Internal(err)
	}
	if !ok {
		return nil, apperrors.Conflict("ride is not scheduled")
	}

	ride.Status = models.RideStatusInProgress
	return ride, nil
}

// CancelRide cancels a ride and notifies passengers holding active
// reservations.
func (uc *rideUC) CancelRide(ctx context.Context, callerID uuid.UUID, rideID uuid.UUID) error {
	ride, err := uc.ownedRide(ctx, callerID, rideID)
	if err != nil {
		return err
	}
	if ride.Status.Terminal() {
		return apperrors.Conflict("ride already finished or cancelled")
	}

	ok, err := uc.rideRepo.TransitionStatus(ctx, rideID, models.RideStatusCancelled,
		models.RideStatusScheduled, models.RideStatusInProgress)
	if err != nil {
		return apperrors.Internal(err)
	}
	if !ok {
		return apperrors.Conflict("ride already finished or cancelled")
	}

	uc.notifyReservationHolders(ctx, ride, models.NotificationRideCancelled,
		"Ride cancelled",
		fmt.Sprintf("The ride from %s to %s was cancelled by the driver", ride.Origin, ride.Destination))
	return nil
}

// FinalizeRide marks a ride FINISHED and notifies passengers, carrying the
// ride reference used later for rating eligibility.
func (uc *rideUC) FinalizeRide(ctx context.Context, callerID uuid.UUID, rideID uuid.UUID) error {
	ride, err := uc.ownedRide(ctx, callerID, rideID)
	if err != nil {
		return err
	}
	if ride.Status.Terminal() {
		return apperrors.Conflict("ride already finished or cancelled")
	}

	ok, err := uc.rideRepo.TransitionStatus(ctx, rideID, models.RideStatusFinished,
		models.RideStatusScheduled, models.RideStatusInProgress)
	if err != nil {
		return apperrors.Internal(err)
	}
	if !ok {
		return apperrors.Conflict("ride already finished or cancelled")
	}

	uc.notifyReservationHolders(ctx, ride, models.NotificationRideFinished,
		"Ride finished",
		fmt.Sprintf("The ride from %s to %s has finished. You can now rate the driver", ride.Origin, ride.Destination))
	return nil
}

// DeleteRide removes a ride that never got underway. Rides in progress,
// finished, or holding confirmed reservations cannot be deleted.
func (uc *rideUC) DeleteRide(ctx context.Context, callerID uuid.UUID, rideID uuid.UUID) error {
	ride, err := uc.ownedRide(ctx, callerID, rideID)
	if err != nil {
		return err
	}
	if ride.Status == models.RideStatusInProgress || ride.Status == models.RideStatusFinished {
		return apperrors.Conflict("ride in progress or finished cannot be deleted")
	}

	confirmed, err := uc.rideRepo.CountReservationsByStatus(ctx, rideID, models.ReservationStatusConfirmed)
	if err != nil {
		return apperrors.Internal(err)
	}
	if confirmed > 0 {
		return apperrors.Conflict("ride has confirmed reservations")
	}

	if err := uc.rideRepo.DeleteRide(ctx, rideID); err != nil {
		return apperrors.Internal(err)
	}
	return nil
}

// ownedRide loads a ride and verifies the caller is its driver
func (uc *rideUC) ownedRide(ctx context.Context, callerID uuid.UUID, rideID uuid.UUID) (*models.Ride, error) {
	ride, err := uc.rideRepo.GetRideByID(ctx, rideID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.NotFound("ride not found")
		}
		return nil, apperrors.Internal(err)
	}
	if ride.Driver == nil || ride.Driver.UserID != callerID {
		return nil, apperrors.Forbidden("only the ride's driver may do this")
	}
	return ride, nil
}

// notifyReservationHolders emits a best effort notification to every
// passenger with a PENDING or CONFIRMED reservation. Failures are logged
// and never fail the triggering operation.
func (uc *rideUC) notifyReservationHolders(ctx context.Context, ride *models.Ride, kind models.NotificationKind, title, message string) {
	holders, err := uc.rideRepo.ListReservationHolders(ctx, ride.ID,
		[]models.ReservationStatus{models.ReservationStatusPending, models.ReservationStatusConfirmed})
	if err != nil {
		logger.Error("Failed to list reservation holders for notification",
			logger.String("ride_id", ride.ID.String()),
			logger.Err(err))
		return
	}

	rideID := ride.ID
	for _, passengerID := range holders {
		event := models.NotificationEvent{
			UserID:  passengerID,
			Kind:    kind,
			Title:   title,
			Message: message,
			RideID:  &rideID,
		}
		if err := uc.rideGW.PublishNotification(ctx, event); err != nil {
			logger.Error("Failed to publish ride notification",
				logger.String("ride_id", ride.ID.String()),
				logger.String("user_id", passengerID.String()),
				logger.Err(err))
		}
	}
}
