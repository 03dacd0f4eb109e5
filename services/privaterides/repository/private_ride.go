package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/HopOn-TAEY/HopOn-BackEnd/internal/pkg/models"
)

// PrivateRideRepo implements negotiation data access on Postgres
type PrivateRideRepo struct {
	cfg *models.Config
	db  *sqlx.DB
}

// NewPrivateRideRepository creates a new private ride repository
func NewPrivateRideRepository(cfg *models.Config, db *sqlx.DB) *PrivateRideRepo {
	return &PrivateRideRepo{
		cfg: cfg,
		db:  db,
	}
}

const privateRideColumns = `
	pr.id, pr.driver_id, pr.vehicle_id, pr.passenger_id, pr.origin, pr.destination,
	pr.origin_lat, pr.origin_lng, pr.dest_lat, pr.dest_lng,
	pr.departure_time, pr.total_seats, pr.occupied_seats,
	pr.price, pr.notes, pr.status, pr.created_at, pr.updated_at`

// Private ride reads project driver, passenger and vehicle in the same
// query so list endpoints stay a single round trip per page.
const privateRideDetailColumns = privateRideColumns + `,
	dp.id, dp.user_id, du.name, du.email, dp.average_rating, dp.total_ratings,
	pu.id, pu.name, pu.email,
	v.id, v.driver_id, v.plate, v.brand, v.model, v.color, v.capacity, v.created_at`

const privateRideDetailFrom = `
	FROM private_rides pr
	JOIN driver_profiles dp ON dp.id = pr.driver_id
	JOIN users du ON du.id = dp.user_id
	JOIN users pu ON pu.id = pr.passenger_id
	JOIN vehicles v ON v.id = pr.vehicle_id`

// GetDriverProfileByUserID retrieves the driver profile owned by a user
func (r *PrivateRideRepo) GetDriverProfileByUserID(ctx context.Context, userID uuid.UUID) (*models.DriverProfile, error) {
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

// GetDriverProfileByID retrieves a driver profile by its own ID
func (r *PrivateRideRepo) GetDriverProfileByID(ctx context.Context, profileID uuid.UUID) (*models.DriverProfile, error) {
	query := `
		SELECT id, user_id, license_number, average_rating, total_ratings, created_at
		FROM driver_profiles
		WHERE id = $1
	`

	profile := &models.DriverProfile{}
	if err := r.db.GetContext(ctx, profile, query, profileID); err != nil {
		return nil, err
	}
	return profile, nil
}

// GetVehicleByID retrieves a vehicle by ID
func (r *PrivateRideRepo) GetVehicleByID(ctx context.Context, vehicleID uuid.UUID) (*models.Vehicle, error) {
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

// HasOpenTripRequest reports whether the passenger already has an OPEN
// request.
func (r *PrivateRideRepo) HasOpenTripRequest(ctx context.Context, passengerID uuid.UUID) (bool, error) {
	query := `SELECT COUNT(*) FROM trip_requests WHERE passenger_id = $1 AND status = $2`

	var count int
	if err := r.db.GetContext(ctx, &count, query, passengerID, models.TripRequestStatusOpen); err != nil {
		return false, err
	}
	return count > 0, nil
}

// CreateTripRequestWithProposal inserts the request and its targeted
// proposal in one transaction.
func (r *PrivateRideRepo) CreateTripRequestWithProposal(ctx context.Context, request *models.TripRequest, proposal *models.Proposal) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	requestQuery := `
		INSERT INTO trip_requests (
			id, passenger_id, origin, destination,
			origin_lat, origin_lng, dest_lat, dest_lng,
			departure_time, seat_count, max_price, description,
			status, expires_at, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)
	`
	_, err = tx.ExecContext(ctx, requestQuery,
		request.ID, request.PassengerID, request.Origin, request.Destination,
		request.OriginLat, request.OriginLng, request.DestLat, request.DestLng,
		request.DepartureTime, request.SeatCount, request.MaxPrice, request.Description,
		request.Status, request.ExpiresAt, request.CreatedAt, request.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert trip request: %w", err)
	}

	proposalQuery := `
		INSERT INTO proposals (id, trip_request_id, driver_id, vehicle_id, offered_price, notes, accepted, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`
	_, err = tx.ExecContext(ctx, proposalQuery,
		proposal.ID, proposal.TripRequestID, proposal.DriverID, proposal.VehicleID,
		proposal.OfferedPrice, proposal.Notes, proposal.Accepted,
		proposal.CreatedAt, proposal.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert proposal: %w", err)
	}

	return tx.Commit()
}

// GetProposalByID retrieves a proposal with its parent trip request
func (r *PrivateRideRepo) GetProposalByID(ctx context.Context, proposalID uuid.UUID) (*models.Proposal, error) {
	query := `
		SELECT id, trip_request_id, driver_id, vehicle_id, offered_price, notes, accepted, created_at, updated_at
		FROM proposals
		WHERE id = $1
	`

	proposal := &models.Proposal{}
	if err := r.db.GetContext(ctx, proposal, query, proposalID); err != nil {
		return nil, err
	}

	requestQuery := `
		SELECT id, passenger_id, origin, destination,
			origin_lat, origin_lng, dest_lat, dest_lng,
			departure_time, seat_count, max_price, description,
			status, expires_at, created_at, updated_at
		FROM trip_requests
		WHERE id = $1
	`
	request := &models.TripRequest{}
	if err := r.db.GetContext(ctx, request, requestQuery, proposal.TripRequestID); err != nil {
		return nil, err
	}
	proposal.TripRequest = request

	return proposal, nil
}

// AcceptProposal applies the acceptance as one atomic unit: the proposal
// flips to accepted (guarded against a prior answer), the parent request
// becomes ACCEPTED, and the derived private ride is created. Either all
// three rows commit or none do. Returns false when the proposal was
// already answered by a concurrent call.
func (r *PrivateRideRepo) AcceptProposal(ctx context.Context, proposalID, tripRequestID uuid.UUID, finalPrice *float64, notes *string, ride *models.PrivateRide) (bool, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return false, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	acceptQuery := `
		UPDATE proposals
		SET accepted = TRUE,
			offered_price = COALESCE($1, offered_price),
			notes = COALESCE($2, notes),
			updated_at = $3
		WHERE id = $4 AND accepted IS NULL
	`
	result, err := tx.ExecContext(ctx, acceptQuery, finalPrice, notes, time.Now(), proposalID)
	if err != nil {
		return false, fmt.Errorf("failed to accept proposal: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return false, err
	}
	if affected == 0 {
		return false, nil
	}

	requestQuery := `UPDATE trip_requests SET status = $1, updated_at = $2 WHERE id = $3`
	_, err = tx.ExecContext(ctx, requestQuery, models.TripRequestStatusAccepted, time.Now(), tripRequestID)
	if err != nil {
		return false, fmt.Errorf("failed to update trip request: %w", err)
	}

	rideQuery := `
		INSERT INTO private_rides (
			id, driver_id, vehicle_id, passenger_id, origin, destination,
			origin_lat, origin_lng, dest_lat, dest_lng,
			departure_time, total_seats, occupied_seats,
			price, notes, status, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18)
	`
	_, err = tx.ExecContext(ctx, rideQuery,
		ride.ID, ride.DriverID, ride.VehicleID, ride.PassengerID, ride.Origin, ride.Destination,
		ride.OriginLat, ride.OriginLng, ride.DestLat, ride.DestLng,
		ride.DepartureTime, ride.TotalSeats, ride.OccupiedSeats,
		ride.Price, ride.Notes, ride.Status, ride.CreatedAt, ride.UpdatedAt,
	)
	if err != nil {
		return false, fmt.Errorf("failed to insert private ride: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return false, err
	}
	return true, nil
}

// RejectProposal flips an unanswered proposal to rejected. Returns false
// when the proposal was already answered.
func (r *PrivateRideRepo) RejectProposal(ctx context.Context, proposalID uuid.UUID) (bool, error) {
	query := `UPDATE proposals SET accepted = FALSE, updated_at = $1 WHERE id = $2 AND accepted IS NULL`

	result, err := r.db.ExecContext(ctx, query, time.Now(), proposalID)
	if err != nil {
		return false, err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}

// MarkTripRequestExpired stamps an overdue request EXPIRED. Expiry is
// lazy, applied when the request is next touched.
func (r *PrivateRideRepo) MarkTripRequestExpired(ctx context.Context, requestID uuid.UUID) error {
	query := `UPDATE trip_requests SET status = $1, updated_at = $2 WHERE id = $3 AND status = $4`

	_, err := r.db.ExecContext(ctx, query,
		models.TripRequestStatusExpired, time.Now(), requestID, models.TripRequestStatusOpen)
	return err
}

// GetPrivateRideByID retrieves a private ride with driver, vehicle and
// passenger expanded.
func (r *PrivateRideRepo) GetPrivateRideByID(ctx context.Context, privateRideID uuid.UUID) (*models.PrivateRide, error) {
	query := `SELECT ` + privateRideDetailColumns + privateRideDetailFrom + ` WHERE pr.id = $1`
	return scanPrivateRide(r.db.QueryRowxContext(ctx, query, privateRideID))
}

// UpdateSeatCount adjusts the ride's seat total while it is SCHEDULED
func (r *PrivateRideRepo) UpdateSeatCount(ctx context.Context, privateRideID uuid.UUID, totalSeats int) (bool, error) {
	query := `UPDATE private_rides SET total_seats = $1, updated_at = $2 WHERE id = $3 AND status = $4`

	result, err := r.db.ExecContext(ctx, query, totalSeats, time.Now(), privateRideID, models.RideStatusScheduled)
	if err != nil {
		return false, err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}

// TransitionStatus moves a private ride to a new status only from one of
// the allowed source states.
func (r *PrivateRideRepo) TransitionStatus(ctx context.Context, privateRideID uuid.UUID, to models.RideStatus, from ...models.RideStatus) (bool, error) {
	query, args, err := sqlx.In(
		`UPDATE private_rides SET status = ?, updated_at = ? WHERE id = ? AND status IN (?)`,
		to, time.Now(), privateRideID, from,
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

// ListByPassenger lists a passenger's private rides, newest first
func (r *PrivateRideRepo) ListByPassenger(ctx context.Context, passengerID uuid.UUID) ([]*models.PrivateRide, error) {
	query := `SELECT ` + privateRideDetailColumns + privateRideDetailFrom + ` WHERE pr.passenger_id = $1 ORDER BY pr.created_at DESC`
	return r.selectPrivateRides(ctx, query, passengerID)
}

// ListByDriver lists a driver's private rides, newest first
func (r *PrivateRideRepo) ListByDriver(ctx context.Context, driverProfileID uuid.UUID) ([]*models.PrivateRide, error) {
	query := `SELECT ` + privateRideDetailColumns + privateRideDetailFrom + ` WHERE pr.driver_id = $1 ORDER BY pr.created_at DESC`
	return r.selectPrivateRides(ctx, query, driverProfileID)
}

// ListOpenProposalsForDriver lists unanswered proposals targeted at the
// driver whose parent request is still OPEN and unexpired.
func (r *PrivateRideRepo) ListOpenProposalsForDriver(ctx context.Context, driverProfileID uuid.UUID) ([]*models.Proposal, error) {
	query := `
		SELECT p.id, p.trip_request_id, p.driver_id, p.vehicle_id, p.offered_price, p.notes, p.accepted,
			p.created_at, p.updated_at,
			tr.id, tr.passenger_id, tr.origin, tr.destination,
			tr.departure_time, tr.seat_count, tr.max_price, tr.status, tr.expires_at
		FROM proposals p
		JOIN trip_requests tr ON tr.id = p.trip_request_id
		WHERE p.driver_id = $1
		  AND p.accepted IS NULL
		  AND tr.status = $2
		  AND tr.expires_at > $3
		ORDER BY p.created_at DESC
	`

	rows, err := r.db.QueryxContext(ctx, query, driverProfileID, models.TripRequestStatusOpen, time.Now())
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	proposals := []*models.Proposal{}
	for rows.Next() {
		p := &models.Proposal{TripRequest: &models.TripRequest{}}
		tr := p.TripRequest
		err := rows.Scan(
			&p.ID, &p.TripRequestID, &p.DriverID, &p.VehicleID, &p.OfferedPrice, &p.Notes, &p.Accepted,
			&p.CreatedAt, &p.UpdatedAt,
			&tr.ID, &tr.PassengerID, &tr.Origin, &tr.Destination,
			&tr.DepartureTime, &tr.SeatCount, &tr.MaxPrice, &tr.Status, &tr.ExpiresAt,
		)
		if err != nil {
			return nil, err
		}
		proposals = append(proposals, p)
	}
	return proposals, rows.Err()
}

func (r *PrivateRideRepo) selectPrivateRides(ctx context.Context, query string, args ...interface{}) ([]*models.PrivateRide, error) {
	rows, err := r.db.QueryxContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	rideList := []*models.PrivateRide{}
	for rows.Next() {
		ride, err := scanPrivateRide(rows)
		if err != nil {
			return nil, err
		}
		rideList = append(rideList, ride)
	}
	return rideList, rows.Err()
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanPrivateRide(row rowScanner) (*models.PrivateRide, error) {
	ride := &models.PrivateRide{
		Driver:    &models.DriverSummary{},
		Passenger: &models.PassengerSummary{},
		Vehicle:   &models.Vehicle{},
	}
	err := row.Scan(
		&ride.ID, &ride.DriverID, &ride.VehicleID, &ride.PassengerID, &ride.Origin, &ride.Destination,
		&ride.OriginLat, &ride.OriginLng, &ride.DestLat, &ride.DestLng,
		&ride.DepartureTime, &ride.TotalSeats, &ride.OccupiedSeats,
		&ride.Price, &ride.Notes, &ride.Status, &ride.CreatedAt, &ride.UpdatedAt,
		&ride.Driver.ID, &ride.Driver.UserID, &ride.Driver.Name, &ride.Driver.Email,
		&ride.Driver.AverageRating, &ride.Driver.TotalRatings,
		&ride.Passenger.ID, &ride.Passenger.Name, &ride.Passenger.Email,
		&ride.Vehicle.ID, &ride.Vehicle.DriverID, &ride.Vehicle.Plate, &ride.Vehicle.Brand,
		&ride.Vehicle.Model, &ride.Vehicle.Color, &ride.Vehicle.Capacity, &ride.Vehicle.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return ride, nil
}
