package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/HopOn-TAEY/HopOn-BackEnd/internal/pkg/models"
)

// RideRepo implements ride data access on Postgres
type RideRepo struct {
	cfg *models.Config
	db  *sqlx.DB
}

// NewRideRepository creates a new ride repository
func NewRideRepository(cfg *models.Config, db *sqlx.DB) *RideRepo {
	return &RideRepo{
		cfg: cfg,
		db:  db,
	}
}

const rideColumns = `
	r.id, r.driver_id, r.vehicle_id, r.origin, r.destination,
	r.origin_lat, r.origin_lng, r.dest_lat, r.dest_lng,
	r.departure_time, r.total_seats, r.occupied_seats,
	r.price, r.notes, r.status, r.kind, r.created_at, r.updated_at`

// Ride reads project driver and vehicle in the same query so list
// endpoints stay a single round trip per page.
const rideDetailColumns = rideColumns + `,
	dp.id, dp.user_id, u.name, u.email, dp.average_rating, dp.total_ratings,
	v.id, v.driver_id, v.plate, v.brand, v.model, v.color, v.capacity, v.created_at`

const rideDetailFrom = `
	FROM rides r
	JOIN driver_profiles dp ON dp.id = r.driver_id
	JOIN users u ON u.id = dp.user_id
	JOIN vehicles v ON v.id = r.vehicle_id`

// GetDriverProfileByUserID retrieves the driver profile owned by a user
func (r *RideRepo) GetDriverProfileByUserID(ctx context.Context, userID uuid.UUID) (*models.DriverProfile, error) {
	query := `
		SELECT id, user_id, license_number, average_rating, total_ratings, created_at
		FROM driver_profiles
		WHERE user_id = $1
	`

	profile := &models.DriverProfile{}
	if err := r.db.GetContext(ctx, profile, query, userID); err != nil {
		return nil, err
	}
	return profile, nil
}

// GetVehicleByID retrieves a vehicle by ID
func (r *RideRepo) GetVehicleByID(ctx context.Context, vehicleID uuid.UUID) (*models.Vehicle, error) {
	query := `
		SELECT id, driver_id, plate, brand, model, color, capacity, created_at
		FROM vehicles
		WHERE id = $1
	`

	vehicle := &models.Vehicle{}
	if err := r.db.GetContext(ctx, vehicle, query, vehicleID); err != nil {
		return nil, err
	}
	return vehicle, nil
}

// CreateRide inserts a ride and, for recurring rides, its recurrence
// pattern in a single transaction.
func (r *RideRepo) CreateRide(ctx context.Context, ride *models.Ride) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	query := `
		INSERT INTO rides (
			id, driver_id, vehicle_id, origin, destination,
			origin_lat, origin_lng, dest_lat, dest_lng,
			departure_time, total_seats, occupied_seats,
			price, notes, status, kind, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18)
	`

	_, err = tx.ExecContext(ctx, query,
		ride.ID, ride.DriverID, ride.VehicleID, ride.Origin, ride.Destination,
		ride.OriginLat, ride.OriginLng, ride.DestLat, ride.DestLng,
		ride.DepartureTime, ride.TotalSeats, ride.OccupiedSeats,
		ride.Price, ride.Notes, ride.Status, ride.Kind, ride.CreatedAt, ride.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert ride: %w", err)
	}

	if ride.Recurrence != nil {
		recQuery := `
			INSERT INTO recurrence_patterns (id, ride_id, days, start_date, end_date)
			VALUES ($1, $2, $3, $4, $5)
		`
		_, err = tx.ExecContext(ctx, recQuery,
			ride.Recurrence.ID, ride.ID, joinDays(ride.Recurrence.Days),
			ride.Recurrence.StartDate, ride.Recurrence.EndDate,
		)
		if err != nil {
			return fmt.Errorf("failed to insert recurrence pattern: %w", err)
		}
	}

	return tx.Commit()
}

// GetRideByID retrieves a ride with its driver, vehicle and recurrence
// pattern expanded.
func (r *RideRepo) GetRideByID(ctx context.Context, rideID uuid.UUID) (*models.Ride, error) {
	query := `SELECT ` + rideDetailColumns + rideDetailFrom + ` WHERE r.id = $1`

	ride, err := scanRide(r.db.QueryRowxContext(ctx, query, rideID))
	if err != nil {
		return nil, err
	}

	if ride.Kind == models.RideKindRecurring {
		recurrence, err := r.getRecurrence(ctx, ride.ID)
		if err != nil && !errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		ride.Recurrence = recurrence
	}
	return ride, nil
}

// ListScheduledRides lists upcoming scheduled public rides, soonest first
func (r *RideRepo) ListScheduledRides(ctx context.Context) ([]*models.Ride, error) {
	query := `
		SELECT ` + rideDetailColumns + rideDetailFrom + `
		WHERE r.status = $1 AND r.departure_time > $2
		ORDER BY r.departure_time ASC
	`

	return r.selectRides(ctx, query, models.RideStatusScheduled, time.Now())
}

// SearchRides filters scheduled rides by origin/destination substring and
// optional departure date.
func (r *RideRepo) SearchRides(ctx context.Context, req models.SearchRidesRequest) ([]*models.Ride, error) {
	query := `SELECT ` + rideDetailColumns + rideDetailFrom + ` WHERE r.status = $1`
	args := []interface{}{models.RideStatusScheduled}

	if req.Origin != "" {
		args = append(args, "%"+req.Origin+"%")
		query += fmt.Sprintf(" AND r.origin ILIKE $%d", len(args))
	}
	if req.Destination != "" {
		args = append(args, "%"+req.Destination+"%")
		query += fmt.Sprintf(" AND r.destination ILIKE $%d", len(args))
	}
	if req.Date != nil {
		args = append(args, req.Date.Format("2006-01-02"))
		query += fmt.Sprintf(" AND DATE(r.departure_time) = $%d", len(args))
	}
	query += " ORDER BY r.departure_time ASC"

	return r.selectRides(ctx, query, args...)
}

// ListFinishedByPassenger lists finished rides on which the passenger held
// a reservation.
func (r *RideRepo) ListFinishedByPassenger(ctx context.Context, passengerID uuid.UUID) ([]*models.Ride, error) {
	query := `
		SELECT ` + rideDetailColumns + rideDetailFrom + `
		JOIN reservations res ON res.ride_id = r.id
		WHERE r.status = $1 AND res.passenger_id = $2
		ORDER BY r.departure_time DESC
	`

	return r.selectRides(ctx, query, models.RideStatusFinished, passengerID)
}

// ListReservationsForRide lists a ride's reservations with passenger info
func (r *RideRepo) ListReservationsForRide(ctx context.Context, rideID uuid.UUID) ([]*models.Reservation, error) {
	query := `
		SELECT res.id, res.ride_id, res.passenger_id, res.seat_count, res.notes,
			res.status, res.created_at, res.updated_at,
			u.id AS "passenger.id", u.name AS "passenger.name", u.email AS "passenger.email"
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

	reservations := []*models.Reservation{}
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
		reservations = append(reservations, res)
	}
	return reservations, rows.Err()
}

// ListReservationHolders returns the passenger IDs holding a reservation in
// any of the given statuses.
func (r *RideRepo) ListReservationHolders(ctx context.Context, rideID uuid.UUID, statuses []models.ReservationStatus) ([]uuid.UUID, error) {
	query, args, err := sqlx.In(
		`SELECT passenger_id FROM reservations WHERE ride_id = ? AND status IN (?)`,
		rideID, statuses,
	)
	if err != nil {
		return nil, err
	}
	query = r.db.Rebind(query)

	holders := []uuid.UUID{}
	if err := r.db.SelectContext(ctx, &holders, query, args...); err != nil {
		return nil, err
	}
	return holders, nil
}

// CountReservationsByStatus counts a ride's reservations in a given status
func (r *RideRepo) CountReservationsByStatus(ctx context.Context, rideID uuid.UUID, status models.ReservationStatus) (int, error) {
	query := `SELECT COUNT(*) FROM reservations WHERE ride_id = $1 AND status = $2`

	var count int
	if err := r.db.GetContext(ctx, &count, query, rideID, status); err != nil {
		return 0, err
	}
	return count, nil
}

// TransitionStatus moves a ride to a new status only when its current
// status is one of the allowed source states. Returns false when the
// guard did not match, so terminal states are never left.
func (r *RideRepo) TransitionStatus(ctx context.Context, rideID uuid.UUID, to models.RideStatus, from ...models.RideStatus) (bool, error) {
	query, args, err := sqlx.In(
		`UPDATE rides SET status = ?, updated_at = ? WHERE id = ? AND status IN (?)`,
		to, time.Now(), rideID, from,
	)
	if err != nil {
		return false, err
	}
	query = r.db.Rebind(query)

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return false, err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}

// DeleteRide removes a ride; child rows cascade at the schema level
func (r *RideRepo) DeleteRide(ctx context.Context, rideID uuid.UUID) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM rides WHERE id = $1`, rideID)
	return err
}

func (r *RideRepo) selectRides(ctx context.Context, query string, args ...interface{}) ([]*models.Ride, error) {
	rows, err := r.db.QueryxContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	rides := []*models.Ride{}
	for rows.Next() {
		ride, err := scanRide(rows)
		if err != nil {
			return nil, err
		}
		rides = append(rides, ride)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if err := r.attachRecurrences(ctx, rides); err != nil {
		return nil, err
	}
	return rides, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanRide(row rowScanner) (*models.Ride, error) {
	ride := &models.Ride{Driver: &models.DriverSummary{}, Vehicle: &models.Vehicle{}}
	err := row.Scan(
		&ride.ID, &ride.DriverID, &ride.VehicleID, &ride.Origin, &ride.Destination,
		&ride.OriginLat, &ride.OriginLng, &ride.DestLat, &ride.DestLng,
		&ride.DepartureTime, &ride.TotalSeats, &ride.OccupiedSeats,
		&ride.Price, &ride.Notes, &ride.Status, &ride.Kind, &ride.CreatedAt, &ride.UpdatedAt,
		&ride.Driver.ID, &ride.Driver.UserID, &ride.Driver.Name, &ride.Driver.Email,
		&ride.Driver.AverageRating, &ride.Driver.TotalRatings,
		&ride.Vehicle.ID, &ride.Vehicle.DriverID, &ride.Vehicle.Plate, &ride.Vehicle.Brand,
		&ride.Vehicle.Model, &ride.Vehicle.Color, &ride.Vehicle.Capacity, &ride.Vehicle.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return ride, nil
}

// attachRecurrences loads the recurrence patterns for all recurring rides
// in the batch with one IN query.
func (r *RideRepo) attachRecurrences(ctx context.Context, rides []*models.Ride) error {
	recurring := map[uuid.UUID]*models.Ride{}
	ids := []uuid.UUID{}
	for _, ride := range rides {
		if ride.Kind == models.RideKindRecurring {
			recurring[ride.ID] = ride
			ids = append(ids, ride.ID)
		}
	}
	if len(ids) == 0 {
		return nil
	}

	query, args, err := sqlx.In(
		`SELECT id, ride_id, days, start_date, end_date FROM recurrence_patterns WHERE ride_id IN (?)`,
		ids,
	)
	if err != nil {
		return err
	}
	query = r.db.Rebind(query)

	rows, err := r.db.QueryxContext(ctx, query, args...)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			rec  models.RecurrencePattern
			days string
		)
		if err := rows.Scan(&rec.ID, &rec.RideID, &days, &rec.StartDate, &rec.EndDate); err != nil {
			return err
		}
		rec.Days = splitDays(days)
		if ride, ok := recurring[rec.RideID]; ok {
			ride.Recurrence = &rec
		}
	}
	return rows.Err()
}

func (r *RideRepo) getRecurrence(ctx context.Context, rideID uuid.UUID) (*models.RecurrencePattern, error) {
	query := `
		SELECT id, ride_id, days, start_date, end_date
		FROM recurrence_patterns
		WHERE ride_id = $1
	`

	var (
		rec  models.RecurrencePattern
		days string
	)
	row := r.db.QueryRowxContext(ctx, query, rideID)
	if err := row.Scan(&rec.ID, &rec.RideID, &days, &rec.StartDate, &rec.EndDate); err != nil {
		return nil, err
	}
	rec.Days = splitDays(days)
	return &rec, nil
}

// Recurrence days are stored as a comma joined list in a single column.
func joinDays(days []models.Weekday) string {
	parts := make([]string, len(days))
	for i, d := range days {
		parts[i] = string(d)
	}
	return strings.Join(parts, ",")
}

func splitDays(joined string) []models.Weekday {
	if joined == "" {
		return nil
	}
	parts := strings.Split(joined, ",")
	days := make([]models.Weekday, len(parts))
	for i, p := range parts {
		days[i] = models.Weekday(p)
	}
	return days
}
