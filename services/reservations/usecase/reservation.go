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
	"github.com/HopOn-TAEY/HopOn-BackEnd/services/reservations"
)

type reservationUC struct {
	cfg             *models.Config
	reservationRepo reservations.ReservationRepo
	reservationGW   reservations.ReservationGW
}

// NewReservationUC creates a new reservation use case
func NewReservationUC(cfg *models.Config, repo reservations.ReservationRepo, gw reservations.ReservationGW) reservations.ReservationUC {
	return &reservationUC{
		cfg:             cfg,
		reservationRepo: repo,
		reservationGW:   gw,
	}
}

// CreateReservation books seats on a scheduled ride for the caller
func (uc *reservationUC) CreateReservation(ctx context.Context, callerID uuid.UUID, req models.CreateReservationRequest) (*models.Reservation, error) {
	if req.SeatCount < 1 {
		return nil, apperrors.InvalidInput("seat count must be at least 1")
	}

	ride, err := uc.reservationRepo.GetRideWithDriver(ctx, req.RideID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.NotFound("ride not found")
		}
		return nil, apperrors.Internal(err)
	}
	if ride.Driver != nil && ride.Driver.UserID == callerID {
		return nil, apperrors.Forbidden("drivers cannot reserve seats on their own ride")
	}
	if ride.Status != models.RideStatusScheduled {
		return nil, apperrors.Conflict("ride is not open for reservations")
	}

	now := time.Now()
	reservation := &models.Reservation{
		ID:          uuid.New(),
		RideID:      ride.ID,
		PassengerID: callerID,
		SeatCount:   req.SeatCount,
		Notes:       req.Notes,
		Status:      models.ReservationStatusPending,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := uc.reservationRepo.CreateReservation(ctx, reservation); err != nil {
		switch {
		case errors.Is(err, reservations.ErrInsufficientSeats):
			// the guard lost a race, re-read so the count is not stale
			remaining := ride.AvailableSeats()
			if fresh, freshErr := uc.reservationRepo.GetRideWithDriver(ctx, ride.ID); freshErr == nil {
				remaining = fresh.AvailableSeats()
			}
			return nil, apperrors.Conflict("insufficient seats: %d remaining", remaining)
		case errors.Is(err, reservations.ErrDuplicateReservation):
			return nil, apperrors.Conflict("you already have a reservation for this ride")
		default:
			return nil, apperrors.Internal(err)
		}
	}

	logger.Info("Reservation created",
		logger.String("reservation_id", reservation.ID.String()),
		logger.String("ride_id", ride.ID.String()),
		logger.Int("seat_count", reservation.SeatCount))

	uc.notify(ctx, ride.Driver.UserID, models.NotificationReservationCreated,
		"New reservation request",
		fmt.Sprintf("A passenger requested %d seat(s) on your ride from %s to %s",
			reservation.SeatCount, ride.Origin, ride.Destination),
		ride.ID)

	return reservation, nil
}

// AuthorizeReservation confirms a pending reservation, driver only
func (uc *reservationUC) AuthorizeReservation(ctx context.Context, callerID uuid.UUID, reservationID uuid.UUID) (*models.Reservation, error) {
	reservation, ride, err := uc.ownedReservation(ctx, callerID, reservationID)
	if err != nil {
		return nil, err
	}

	ok, err := uc.reservationRepo.UpdateReservationStatus(ctx, reservationID,
		models.ReservationStatusConfirmed, models.ReservationStatusPending)
	if err != nil {
		return nil, apperrors.Internal(err)
	}
	if !ok {
		return nil, apperrors.Conflict("reservation is not pending")
	}
	reservation.Status = models.ReservationStatusConfirmed

	uc.notify(ctx, reservation.PassengerID, models.NotificationReservationApproved,
		"Reservation confirmed",
		fmt.Sprintf("Your reservation on the ride from %s to %s was confirmed", ride.Origin, ride.Destination),
		ride.ID)

	return reservation, nil
}

// CancelReservation cancels a reservation on the driver's initiative.
// Only PENDING reservations may be cancelled this way; occupied seats are
// not decremented.
func (uc *reservationUC) CancelReservation(ctx context.Context, callerID uuid.UUID, reservationID uuid.UUID) error {
	reservation, ride, err := uc.ownedReservation(ctx, callerID, reservationID)
	if err != nil {
		return err
	}

	ok, err := uc.reservationRepo.UpdateReservationStatus(ctx, reservationID,
		models.ReservationStatusCancelled, models.ReservationStatusPending)
	if err != nil {
		return apperrors.Internal(err)
	}
	if !ok {
		return apperrors.Conflict("only pending reservations can be cancelled")
	}

	uc.notify(ctx, reservation.PassengerID, models.NotificationReservationCanceled,
		"Reservation cancelled",
		fmt.Sprintf("Your reservation on the ride from %s to %s was declined by the driver", ride.Origin, ride.Destination),
		ride.ID)

	return nil
}

// ListForRide lists a ride's reservations, restricted to its driver
func (uc *reservationUC) ListForRide(ctx context.Context, callerID uuid.UUID, rideID uuid.UUID) ([]*models.Reservation, error) {
	ride, err := uc.reservationRepo.GetRideWithDriver(ctx, rideID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.NotFound("ride not found")
		}
		return nil, apperrors.Internal(err)
	}
	if ride.Driver == nil || ride.Driver.UserID != callerID {
		return nil, apperrors.Forbidden("only the ride's driver may list reservations")
	}

	list, err := uc.reservationRepo.ListByRide(ctx, rideID)
	if err != nil {
		return nil, apperrors.Internal(err)
	}
	return list, nil
}

// ownedReservation loads a reservation plus its ride and verifies the
// caller is the ride's driver.
func (uc *reservationUC) ownedReservation(ctx context.Context, callerID uuid.UUID, reservationID uuid.UUID) (*models.Reservation, *models.Ride, error) {
	reservation, err := uc.reservationRepo.GetReservationByID(ctx, reservationID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil, apperrors.NotFound("reservation not found")
		}
		return nil, nil, apperrors.Internal(err)
	}

	ride, err := uc.reservationRepo.GetRideWithDriver(ctx, reservation.RideID)
	if err != nil {
		return nil, nil, apperrors.Internal(err)
	}
	if ride.Driver == nil || ride.Driver.UserID != callerID {
		return nil, nil, apperrors.Forbidden("only the ride's driver may manage reservations")
	}
	return reservation, ride, nil
}

func (uc *reservationUC) notify(ctx context.Context, userID uuid.UUID, kind models.NotificationKind, title, message string, rideID uuid.UUID) {
	event := models.NotificationEvent{
		UserID:  userID,
		Kind:    kind,
		Title:   title,
		Message: message,
		RideID:  &rideID,
	}
	if err := uc.reservationGW.PublishNotification(ctx, event); err != nil {
		logger.Error("Failed to publish reservation notification",
			logger.String("user_id", userID.String()),
			logger.String("kind", string(kind)),
			logger.Err(err))
	}
}
