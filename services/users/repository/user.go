package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgconn"
	"github.com/jmoiron/sqlx"

	"github.com/HopOn-TAEY/HopOn-BackEnd/internal/pkg/constants"
	"github.com/HopOn-TAEY/HopOn-BackEnd/internal/pkg/database"
	"github.com/HopOn-TAEY/HopOn-BackEnd/internal/pkg/logger"
	"github.com/HopOn-TAEY/HopOn-BackEnd/internal/pkg/models"
	"github.com/HopOn-TAEY/HopOn-BackEnd/services/users"
)

const pgUniqueViolation = "23505"

// UserRepo implements user and vehicle data access on Postgres, with a
// Redis cache in front of the public driver listing.
type UserRepo struct {
	cfg   *models.Config
	db    *sqlx.DB
	redis *database.RedisClient
}

// NewUserRepository creates a new user repository
func NewUserRepository(cfg *models.Config, db *sqlx.DB, redis *database.RedisClient) *UserRepo {
	return &UserRepo{
		cfg:   cfg,
		db:    db,
		redis: redis,
	}
}

// CreateUser inserts the user and, for drivers, the driver profile in one
// transaction.
func (r *UserRepo) CreateUser(ctx context.Context, user *models.User) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	userQuery := `
		INSERT INTO users (id, name, email, password, phone, role, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`
	_, err = tx.ExecContext(ctx, userQuery,
		user.ID, user.Name, user.Email, user.Password, user.Phone, user.Role,
		user.CreatedAt, user.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return users.ErrDuplicateEmail
		}
		return fmt.Errorf("failed to insert user: %w", err)
	}

	if user.DriverProfile != nil {
		profileQuery := `
			INSERT INTO driver_profiles (id, user_id, license_number, average_rating, total_ratings, created_at)
			VALUES ($1, $2, $3, $4, $5, $6)
		`
		_, err = tx.ExecContext(ctx, profileQuery,
			user.DriverProfile.ID, user.ID, user.DriverProfile.LicenseNumber,
			user.DriverProfile.AverageRating, user.DriverProfile.TotalRatings,
			user.DriverProfile.CreatedAt,
		)
		if err != nil {
			return fmt.Errorf("failed to insert driver profile: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return err
	}

	if user.DriverProfile != nil {
		r.invalidateDriverList(ctx)
	}
	return nil
}

// UpdateUser persists changed account fields and, when the driver
// profile is attached, its license number, in one transaction.
func (r *UserRepo) UpdateUser(ctx context.Context, user *models.User) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	userQuery := `
		UPDATE users
		SET name = $1, email = $2, password = $3, phone = $4, updated_at = $5
		WHERE id = $6
	`
	_, err = tx.ExecContext(ctx, userQuery,
		user.Name, user.Email, user.Password, user.Phone, user.UpdatedAt, user.ID,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return users.ErrDuplicateEmail
		}
		return fmt.Errorf("failed to update user: %w", err)
	}

	if user.DriverProfile != nil {
		profileQuery := `UPDATE driver_profiles SET license_number = $1 WHERE id = $2`
		_, err = tx.ExecContext(ctx, profileQuery,
			user.DriverProfile.LicenseNumber, user.DriverProfile.ID)
		if err != nil {
			return fmt.Errorf("failed to update driver profile: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return err
	}

	// the public listing carries the driver's name and email
	if user.Role == models.RoleDriver {
		r.invalidateDriverList(ctx)
	}
	return nil
}

// DeleteUser removes the account; profile, vehicles, rides and
// reservations cascade at the schema level.
func (r *UserRepo) DeleteUser(ctx context.Context, user *models.User) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM users WHERE id = $1`, user.ID); err != nil {
		return err
	}

	if user.Role == models.RoleDriver {
		r.invalidateDriverList(ctx)
	}
	return nil
}

// GetUserByEmail retrieves a user by email, password hash included
func (r *UserRepo) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	query := `
		SELECT id, name, email, password, phone, role, created_at, updated_at
		FROM users
		WHERE email = $1
	`

	user := &models.User{}
	if err := r.db.GetContext(ctx, user, query, email); err != nil {
		return nil, err
	}
	return user, nil
}

// GetUserByID retrieves a user, attaching the driver profile for drivers
func (r *UserRepo) GetUserByID(ctx context.Context, userID uuid.UUID) (*models.User, error) {
	query := `
		SELECT id, name, email, password, phone, role, created_at, updated_at
		FROM users
		WHERE id = $1
	`

	user := &models.User{}
	if err := r.db.GetContext(ctx, user, query, userID); err != nil {
		return nil, err
	}

	if user.Role == models.RoleDriver {
		profile, err := r.GetDriverProfileByUserID(ctx, userID)
		if err != nil {
			return nil, err
		}
		user.DriverProfile = profile
	}
	return user, nil
}

// ListDrivers lists all drivers for public browsing, served from Redis
// when the cache is warm.
func (r *UserRepo) ListDrivers(ctx context.Context) ([]*models.DriverSummary, error) {
	if cached, err := r.redis.Get(ctx, constants.KeyDriverList); err == nil {
		driverList := []*models.DriverSummary{}
		if err := json.Unmarshal([]byte(cached), &driverList); err == nil {
			return driverList, nil
		}
	}

	query := `
		SELECT dp.id, dp.user_id, u.name, u.email, dp.average_rating, dp.total_ratings
		FROM driver_profiles dp
		JOIN users u ON u.id = dp.user_id
		ORDER BY dp.average_rating DESC, dp.total_ratings DESC
	`
	driverList := []*models.DriverSummary{}
	if err := r.db.SelectContext(ctx, &driverList, query); err != nil {
		return nil, err
	}

	if payload, err := json.Marshal(driverList); err == nil {
		if err := r.redis.Set(ctx, constants.KeyDriverList, payload, constants.TTLDriverList); err != nil {
			logger.Warn("Failed to cache driver list", logger.Err(err))
		}
	}
	return driverList, nil
}

// GetDriverProfileByUserID retrieves the driver profile owned by a user
func (r *UserRepo) GetDriverProfileByUserID(ctx context.Context, userID uuid.UUID) (*models.DriverProfile, error) {
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

// CreateVehicle registers a vehicle and its images under a driver
// profile in one transaction.
func (r *UserRepo) CreateVehicle(ctx context.Context, vehicle *models.Vehicle) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	query := `
		INSERT INTO vehicles (id, driver_id, plate, brand, model, color, capacity, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`
	_, err = tx.ExecContext(ctx, query,
		vehicle.ID, vehicle.DriverID, vehicle.Plate, vehicle.Brand,
		vehicle.Model, vehicle.Color, vehicle.Capacity, vehicle.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return users.ErrDuplicatePlate
		}
		return fmt.Errorf("failed to insert vehicle: %w", err)
	}

	if err := insertVehicleImages(ctx, tx, vehicle.Images); err != nil {
		return err
	}
	return tx.Commit()
}

// UpdateVehicle persists changed vehicle fields; with replaceImages set
// the stored gallery is swapped for vehicle.Images in the same
// transaction.
func (r *UserRepo) UpdateVehicle(ctx context.Context, vehicle *models.Vehicle, replaceImages bool) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	query := `
		UPDATE vehicles
		SET plate = $1, brand = $2, model = $3, color = $4, capacity = $5
		WHERE id = $6
	`
	_, err = tx.ExecContext(ctx, query,
		vehicle.Plate, vehicle.Brand, vehicle.Model, vehicle.Color,
		vehicle.Capacity, vehicle.ID,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return users.ErrDuplicatePlate
		}
		return fmt.Errorf("failed to update vehicle: %w", err)
	}

	if replaceImages {
		if _, err := tx.ExecContext(ctx, `DELETE FROM vehicle_images WHERE vehicle_id = $1`, vehicle.ID); err != nil {
			return fmt.Errorf("failed to clear vehicle images: %w", err)
		}
		if err := insertVehicleImages(ctx, tx, vehicle.Images); err != nil {
			return err
		}
	}
	return tx.Commit()
}

func insertVehicleImages(ctx context.Context, tx *sqlx.Tx, images []*models.VehicleImage) error {
	query := `
		INSERT INTO vehicle_images (id, vehicle_id, url, kind, position, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	for _, img := range images {
		_, err := tx.ExecContext(ctx, query,
			img.ID, img.VehicleID, img.URL, img.Kind, img.Position, img.CreatedAt)
		if err != nil {
			return fmt.Errorf("failed to insert vehicle image: %w", err)
		}
	}
	return nil
}

// GetVehicleByID retrieves a vehicle with its ordered images
func (r *UserRepo) GetVehicleByID(ctx context.Context, vehicleID uuid.UUID) (*models.Vehicle, error) {
	query := `
		SELECT id, driver_id, plate, brand, model, color, capacity, created_at
		FROM vehicles
		WHERE id = $1
	`

	vehicle := &models.Vehicle{}
	if err := r.db.GetContext(ctx, vehicle, query, vehicleID); err != nil {
		return nil, err
	}

	if err := r.attachVehicleImages(ctx, []*models.Vehicle{vehicle}); err != nil {
		return nil, err
	}
	return vehicle, nil
}

// ListVehiclesByDriver lists a driver's registered vehicles with their
// ordered images.
func (r *UserRepo) ListVehiclesByDriver(ctx context.Context, driverProfileID uuid.UUID) ([]*models.Vehicle, error) {
	query := `
		SELECT id, driver_id, plate, brand, model, color, capacity, created_at
		FROM vehicles
		WHERE driver_id = $1
		ORDER BY created_at DESC
	`

	vehicleList := []*models.Vehicle{}
	if err := r.db.SelectContext(ctx, &vehicleList, query, driverProfileID); err != nil {
		return nil, err
	}

	if err := r.attachVehicleImages(ctx, vehicleList); err != nil {
		return nil, err
	}
	return vehicleList, nil
}

// attachVehicleImages loads the images for a batch of vehicles with one
// IN query, position ascending per vehicle.
func (r *UserRepo) attachVehicleImages(ctx context.Context, vehicles []*models.Vehicle) error {
	if len(vehicles) == 0 {
		return nil
	}

	byID := map[uuid.UUID]*models.Vehicle{}
	ids := make([]uuid.UUID, 0, len(vehicles))
	for _, v := range vehicles {
		byID[v.ID] = v
		ids = append(ids, v.ID)
	}

	query, args, err := sqlx.In(
		`SELECT id, vehicle_id, url, kind, position, created_at
		FROM vehicle_images
		WHERE vehicle_id IN (?)
		ORDER BY position ASC, created_at ASC`,
		ids,
	)
	if err != nil {
		return err
	}
	query = r.db.Rebind(query)

	images := []*models.VehicleImage{}
	if err := r.db.SelectContext(ctx, &images, query, args...); err != nil {
		return err
	}

	for _, img := range images {
		if vehicle, ok := byID[img.VehicleID]; ok {
			vehicle.Images = append(vehicle.Images, img)
		}
	}
	return nil
}

// VehicleInUse reports whether any ride or private ride references the
// vehicle.
func (r *UserRepo) VehicleInUse(ctx context.Context, vehicleID uuid.UUID) (bool, error) {
	query := `
		SELECT (SELECT COUNT(*) FROM rides WHERE vehicle_id = $1)
			 + (SELECT COUNT(*) FROM private_rides WHERE vehicle_id = $1)
	`

	var count int
	if err := r.db.GetContext(ctx, &count, query, vehicleID); err != nil {
		return false, err
	}
	return count > 0, nil
}

// DeleteVehicle removes a vehicle
func (r *UserRepo) DeleteVehicle(ctx context.Context, vehicleID uuid.UUID) error {
	query := `DELETE FROM vehicles WHERE id = $1`

	_, err := r.db.ExecContext(ctx, query, vehicleID)
	return err
}

func (r *UserRepo) invalidateDriverList(ctx context.Context) {
	if err := r.redis.Delete(ctx, constants.KeyDriverList); err != nil {
		logger.Warn("Failed to invalidate driver list cache", logger.Err(err))
	}
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation
}
