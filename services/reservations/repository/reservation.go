package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgconn"
	"github.com/jmoiron/sqlx"

	"github.com/HopOn-TAEY/HopOn-BackEnd/internal/pkg/models"
	"github.com/HopOn-TAEY/HopOn-BackEnd/services/reservations"
)

const pgUniqueViolation = "23505"

// ReservationRepo implements reservation data access on Postgres
type ReservationRepo struct {
	cfg *models.Config
	db  *sqlx.DB
}

// NewReservationRepository creates a new reservation repository
func NewReservationRepository(cfg *models.Config, db *sqlx.DB) *ReservationRepo {
	return &ReservationRepo{
		cfg: cfg,
		db:  db,
	}
}

// GetRideWithDriver retrieves a ride together with its driver summary
func (r *ReservationRepo) GetRideWithDriver(ctx context.Context, rideID uuid.UUID) (*models.Ride, error) {
	query := `
		SELECT r.id, r.driver_id, r.vehicle_id, r.origin, r.destination,
			r.departure_time, r.total_seats, r.occupied_seats, r.status, r.kind,
			r.created_at, r.updated_at
		FROM rides r
		WHERE r.id = $1
	`

	ride := &models.Ride{}
	if err := r.db.GetContext(ctx, ride, query, rideID); err != nil {
		return nil, err
	}

	driverQuery := `
		SELECT dp.id, dp.user_id, u.name, u.email, dp.average_rating, dp.total_ratings
		FROM driver_profiles dp
		JOIN users u ON u.id = dp.user_id
		WHERE dp.id = $1
	`
	driver := &models.DriverSummary{}
	if err := r.db.GetContext(ctx, driver, driverQuery, ride.DriverID); err != nil {
		return nil, err
	}
	ride.Driver = driver

	return ride, nil
}

// CreateReservation books seats on a ride. The seat check and increment
// run as a single conditional UPDATE inside the same transaction as the
// reservation insert, so concurrent bookings can never oversell the ride.
func (r *ReservationRepo) CreateReservation(ctx context.Context, reservation *models.Reservation) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	seatQuery := `
		UPDATE rides
		SET occupied_seats = occupied_seats + $1, updated_at = $2
		WHERE id = $3
		  AND status = $4
		  AND occupied_seats + $1 <= total_seats
	`
	result, err := tx.ExecContext(ctx, seatQuery,
		reservation.SeatCount, time.Now(), reservation.RideID, models.RideStatusScheduled)
	if err != nil {
		return fmt.Errorf("failed to increment occupied seats: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return reservations.ErrInsufficientSeats
	}

	insertQuery := `
		INSERT INTO reservations (id, ride_id, passenger_id, seat_count, notes, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`
	_, err = tx.ExecContext(ctx, insertQuery,
		reservation.ID, reservation.RideID, reservation.PassengerID,
		reservation.SeatCount, reservation.Notes, reservation.Status,
		reservation.CreatedAt, reservation.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return reservations.ErrDuplicateReservation
		}
		return fmt.Errorf("failed to insert reservation: %w", err)
	}

	return tx.Commit()
}

// GetReservationByID retrieves a reservation by ID
func (r *ReservationRepo) GetReservationByID(ctx context.Context, reservationID uuid.UUID) (*models.Reservation, error) {
	query := `
		SELECT id, ride_id, passenger_id, seat_count, notes, status, created_at, updated_at
		FROM reservations
		WHERE id = $1
	`

	reservation := &models.Reservation{}
	if err := r.db.GetContext(ctx, reservation, query, reservationID); err != nil {
		return nil, err
	}
	return reservation, nil
}

// UpdateReservationStatus moves a reservation to a new status only from
// the expected source status.
func (r *ReservationRepo) UpdateReservationStatus(ctx context.Context, reservationID uuid.UUID, to, from models.ReservationStatus) (bool, error) {
	query := `UPDATE reservations SET status = $1, updated_at = $2 WHERE id = $3 AND status = $4`

	result, err := r.db.ExecContext(ctx, query, to, time.Now(), reservationID, from)
	if err != nil {
		return false, err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}

// ListByRide lists a ride's reservations with passenger info, grouped by
// status.
func (r *ReservationRepo) ListByRide(ctx context.Context, rideID uuid.UUID) ([]*models.Reservation, error) {
	query := `
		SELECT res.id, res.ride_id, res.passenger_id, res.seat_count, res.notes,
			res.status, res.created_at, res.updated_at,
			u.id, u.name, u.email
		FROM reservations res
		JOIN users u ON u.id = res.passenger_id
		WHERE res.ride_id = $1
		ORDER BY res.status, res.created_at ASC
	`

	rows, err := r.db.QueryxContext(ctx, query, rideID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := []*models.Reservation{}
	for rows.Next() {
		res := &models.Reservation{Passenger: &models.PassengerSummary{}}
		err := rows.Scan(
			&res.ID, &res.RideID, &res.PassengerID, &res.SeatCount, &res.Notes,
			&res.Status, &res.CreatedAt, &res.UpdatedAt,
			&res.Passenger.ID, &res.Passenger.Name, &res.Passenger.Email,
		)
		if err != nil {
			return nil, err
		}
		result = append(result, res)
	}
	return result, rows.Err()
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation
}
