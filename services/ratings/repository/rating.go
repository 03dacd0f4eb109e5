package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgconn"
	"github.com/jmoiron/sqlx"

	"github.com/HopOn-TAEY/HopOn-BackEnd/internal/pkg/models"
	"github.com/HopOn-TAEY/HopOn-BackEnd/services/ratings"
)

const pgUniqueViolation = "23505"

// RatingRepo implements rating data access on Postgres
type RatingRepo struct {
	cfg *models.Config
	db  *sqlx.DB
}

// NewRatingRepository creates a new rating repository
func NewRatingRepository(cfg *models.Config, db *sqlx.DB) *RatingRepo {
	return &RatingRepo{
		cfg: cfg,
		db:  db,
	}
}

// GetRideWithDriver retrieves a ride together with its driver summary
func (r *RatingRepo) GetRideWithDriver(ctx context.Context, rideID uuid.UUID) (*models.Ride, error) {
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

// HasConfirmedReservation reports whether the passenger holds a CONFIRMED
// reservation on the ride.
func (r *RatingRepo) HasConfirmedReservation(ctx context.Context, rideID, passengerID uuid.UUID) (bool, error) {
	query := `SELECT COUNT(*) FROM reservations WHERE ride_id = $1 AND passenger_id = $2 AND status = $3`

	var count int
	if err := r.db.GetContext(ctx, &count, query, rideID, passengerID, models.ReservationStatusConfirmed); err != nil {
		return false, err
	}
	return count > 0, nil
}

// CreateRatingWithRecompute inserts the rating and recomputes the ratee's
// aggregate in the same transaction, so two concurrent raters cannot
// overwrite each other with a stale average.
func (r *RatingRepo) CreateRatingWithRecompute(ctx context.Context, rating *models.Rating, driverProfileID uuid.UUID) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	insertQuery := `
		INSERT INTO ratings (id, ride_id, rater_id, ratee_id, score, comment, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	_, err = tx.ExecContext(ctx, insertQuery,
		rating.ID, rating.RideID, rating.RaterID, rating.RateeID,
		rating.Score, rating.Comment, rating.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return ratings.ErrDuplicateRating
		}
		return fmt.Errorf("failed to insert rating: %w", err)
	}

	recomputeQuery := `
		UPDATE driver_profiles
		SET average_rating = agg.avg_score,
			total_ratings = agg.total
		FROM (
			SELECT COALESCE(AVG(score), 0) AS avg_score, COUNT(*) AS total
			FROM ratings
			WHERE ratee_id = $1
		) agg
		WHERE driver_profiles.id = $2
	`
	_, err = tx.ExecContext(ctx, recomputeQuery, rating.RateeID, driverProfileID)
	if err != nil {
		return fmt.Errorf("failed to recompute driver rating: %w", err)
	}

	return tx.Commit()
}

// ListFinishedUnrated lists finished rides the passenger held a CONFIRMED
// reservation on and has not yet rated.
func (r *RatingRepo) ListFinishedUnrated(ctx context.Context, passengerID uuid.UUID) ([]*models.PendingRatingRide, error) {
	query := `
		SELECT r.id, r.driver_id, r.vehicle_id, r.origin, r.destination,
			r.departure_time, r.total_seats, r.occupied_seats, r.status, r.kind,
			r.created_at, r.updated_at,
			dp.id AS d_id, dp.user_id AS d_user_id, u.name AS d_name, u.email AS d_email,
			dp.average_rating AS d_average_rating, dp.total_ratings AS d_total_ratings
		FROM rides r
		JOIN reservations res ON res.ride_id = r.id
		JOIN driver_profiles dp ON dp.id = r.driver_id
		JOIN users u ON u.id = dp.user_id
		WHERE res.passenger_id = $1
		  AND res.status = $2
		  AND r.status = $3
		  AND NOT EXISTS (
			SELECT 1 FROM ratings rt
			WHERE rt.ride_id = r.id AND rt.rater_id = $1 AND rt.ratee_id = dp.user_id
		  )
		ORDER BY r.departure_time DESC
	`

	rows, err := r.db.QueryxContext(ctx, query,
		passengerID, models.ReservationStatusConfirmed, models.RideStatusFinished)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	pending := []*models.PendingRatingRide{}
	for rows.Next() {
		item := &models.PendingRatingRide{}
		err := rows.Scan(
			&item.Ride.ID, &item.Ride.DriverID, &item.Ride.VehicleID, &item.Ride.Origin, &item.Ride.Destination,
			&item.Ride.DepartureTime, &item.Ride.TotalSeats, &item.Ride.OccupiedSeats, &item.Ride.Status, &item.Ride.Kind,
			&item.Ride.CreatedAt, &item.Ride.UpdatedAt,
			&item.Driver.ID, &item.Driver.UserID, &item.Driver.Name, &item.Driver.Email,
			&item.Driver.AverageRating, &item.Driver.TotalRatings,
		)
		if err != nil {
			return nil, err
		}
		pending = append(pending, item)
	}
	return pending, rows.Err()
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation
}
