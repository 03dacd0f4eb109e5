package usecase

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/HopOn-TAEY/HopOn-BackEnd/internal/pkg/apperrors"
	jwtpkg "github.com/HopOn-TAEY/HopOn-BackEnd/internal/pkg/jwt"
	"github.com/HopOn-TAEY/HopOn-BackEnd/internal/pkg/logger"
	"github.com/HopOn-TAEY/HopOn-BackEnd/internal/pkg/models"
	"github.com/HopOn-TAEY/HopOn-BackEnd/services/users"
)

type userUC struct {
	cfg      *models.Config
	userRepo users.UserRepo
}

// NewUserUC creates a new user use case
func NewUserUC(cfg *models.Config, repo users.UserRepo) users.UserUC {
	return &userUC{
		cfg:      cfg,
		userRepo: repo,
	}
}

// RegisterPassenger creates a passenger account
func (uc *userUC) RegisterPassenger(ctx context.Context, req models.RegisterPassengerRequest) (*models.User, error) {
	user, err := uc.newUser(req.Name, req.Email, req.Password, req.Phone, models.RolePassenger)
	if err != nil {
		return nil, err
	}

	if err := uc.createUser(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// RegisterDriver creates a driver account with its profile
func (uc *userUC) RegisterDriver(ctx context.Context, req models.RegisterDriverRequest) (*models.User, error) {
	if req.LicenseNumber == "" {
		return nil, apperrors.InvalidInput("license number is required")
	}

	user, err := uc.newUser(req.Name, req.Email, req.Password, req.Phone, models.RoleDriver)
	if err != nil {
		return nil, err
	}
	user.DriverProfile = &models.DriverProfile{
		ID:            uuid.New(),
		UserID:        user.ID,
		LicenseNumber: req.LicenseNumber,
		CreatedAt:     user.CreatedAt,
	}

	if err := uc.createUser(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// Login verifies credentials and issues a JWT
func (uc *userUC) Login(ctx context.Context, req models.LoginRequest) (*models.AuthResponse, error) {
	if req.Email == "" || req.Password == "" {
		return nil, apperrors.InvalidInput("email and password are required")
	}

	user, err := uc.userRepo.GetUserByEmail(ctx, strings.ToLower(req.Email))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.Forbidden("invalid email or password")
		}
		return nil, apperrors.Internal(err)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return nil, apperrors.Forbidden("invalid email or password")
	}

	token, expiresAt, err := jwtpkg.GenerateToken(user.ID, user.Email, user.Role, uc.cfg)
	if err != nil {
		return nil, apperrors.Internal(err)
	}

	return &models.AuthResponse{
		Token:     token,
		UserID:    user.ID,
		Role:      user.Role,
		ExpiresAt: expiresAt,
	}, nil
}

// GetProfile retrieves the caller's own account
func (uc *userUC) GetProfile(ctx context.Context, callerID uuid.UUID) (*models.User, error) {
	user, err := uc.userRepo.GetUserByID(ctx, callerID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.NotFound("user not found")
		}
		return nil, apperrors.Internal(err)
	}
	return user, nil
}

// UpdateProfile applies a partial update to the caller's own account
func (uc *userUC) UpdateProfile(ctx context.Context, callerID uuid.UUID, req models.UpdateProfileRequest) (*models.User, error) {
	user, err := uc.userRepo.GetUserByID(ctx, callerID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.NotFound("user not found")
		}
		return nil, apperrors.Internal(err)
	}

	if req.Name != nil {
		if *req.Name == "" {
			return nil, apperrors.InvalidInput("name cannot be empty")
		}
		user.Name = *req.Name
	}
	if req.Email != nil {
		if !strings.Contains(*req.Email, "@") {
			return nil, apperrors.InvalidInput("invalid email address")
		}
		user.Email = strings.ToLower(*req.Email)
	}
	if req.Password != nil {
		if len(*req.Password) < 8 {
			return nil, apperrors.InvalidInput("password must be at least 8 characters")
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(*req.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, apperrors.Internal(err)
		}
		user.Password = string(hash)
	}
	if req.Phone != nil {
		user.Phone = *req.Phone
	}
	if req.LicenseNumber != nil {
		if !user.IsDriver() {
			return nil, apperrors.InvalidInput("only drivers have a license number")
		}
		if *req.LicenseNumber == "" {
			return nil, apperrors.InvalidInput("license number cannot be empty")
		}
		user.DriverProfile.LicenseNumber = *req.LicenseNumber
	}
	user.UpdatedAt = time.Now()

	if err := uc.userRepo.UpdateUser(ctx, user); err != nil {
		if errors.Is(err, users.ErrDuplicateEmail) {
			return nil, apperrors.Conflict("email is already registered")
		}
		return nil, apperrors.Internal(err)
	}

	logger.Info("Profile updated",
		logger.String("user_id", user.ID.String()))

	return user, nil
}

// DeleteAccount removes the caller's own account with everything it owns
func (uc *userUC) DeleteAccount(ctx context.Context, callerID uuid.UUID) error {
	user, err := uc.userRepo.GetUserByID(ctx, callerID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return apperrors.NotFound("user not found")
		}
		return apperrors.Internal(err)
	}

	if err := uc.userRepo.DeleteUser(ctx, user); err != nil {
		return apperrors.Internal(err)
	}

	logger.Info("Account deleted",
		logger.String("user_id", user.ID.String()),
		logger.String("role", string(user.Role)))
	return nil
}

// ListDrivers lists all drivers for browsing
func (uc *userUC) ListDrivers(ctx context.Context) ([]*models.DriverSummary, error) {
	driverList, err := uc.userRepo.ListDrivers(ctx)
	if err != nil {
		return nil, apperrors.Internal(err)
	}
	return driverList, nil
}

// AddVehicle registers a vehicle under the caller's driver profile
func (uc *userUC) AddVehicle(ctx context.Context, callerID uuid.UUID, req models.AddVehicleRequest) (*models.Vehicle, error) {
	if req.Plate == "" || req.Brand == "" || req.Model == "" {
		return nil, apperrors.InvalidInput("plate, brand and model are required")
	}
	if req.Capacity < 1 {
		return nil, apperrors.InvalidInput("capacity must be at least 1")
	}

	profile, err := uc.callerProfile(ctx, callerID)
	if err != nil {
		return nil, err
	}

	vehicle := &models.Vehicle{
		ID:        uuid.New(),
		DriverID:  profile.ID,
		Plate:     strings.ToUpper(req.Plate),
		Brand:     req.Brand,
		Model:     req.Model,
		Color:     req.Color,
		Capacity:  req.Capacity,
		CreatedAt: time.Now(),
	}
	vehicle.Images, err = buildVehicleImages(vehicle.ID, req.Images)
	if err != nil {
		return nil, err
	}

	if err := uc.userRepo.CreateVehicle(ctx, vehicle); err != nil {
		if errors.Is(err, users.ErrDuplicatePlate) {
			return nil, apperrors.Conflict("a vehicle with this plate is already registered")
		}
		return nil, apperrors.Internal(err)
	}

	logger.Info("Vehicle registered",
		logger.String("vehicle_id", vehicle.ID.String()),
		logger.String("driver_profile_id", profile.ID.String()))

	return vehicle, nil
}

// EditVehicle applies a partial update to one of the caller's vehicles.
// A non-nil Images slice replaces the whole gallery.
func (uc *userUC) EditVehicle(ctx context.Context, callerID uuid.UUID, req models.EditVehicleRequest) (*models.Vehicle, error) {
	profile, err := uc.callerProfile(ctx, callerID)
	if err != nil {
		return nil, err
	}

	vehicle, err := uc.userRepo.GetVehicleByID(ctx, req.VehicleID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.NotFound("vehicle not found")
		}
		return nil, apperrors.Internal(err)
	}
	if vehicle.DriverID != profile.ID {
		return nil, apperrors.NotFound("vehicle not found")
	}

	if req.Plate != nil {
		if *req.Plate == "" {
			return nil, apperrors.InvalidInput("plate cannot be empty")
		}
		vehicle.Plate = strings.ToUpper(*req.Plate)
	}
	if req.Brand != nil {
		if *req.Brand == "" {
			return nil, apperrors.InvalidInput("brand cannot be empty")
		}
		vehicle.Brand = *req.Brand
	}
	if req.Model != nil {
		if *req.Model == "" {
			return nil, apperrors.InvalidInput("model cannot be empty")
		}
		vehicle.Model = *req.Model
	}
	if req.Color != nil {
		vehicle.Color = *req.Color
	}
	if req.Capacity != nil {
		if *req.Capacity < 1 {
			return nil, apperrors.InvalidInput("capacity must be at least 1")
		}
		vehicle.Capacity = *req.Capacity
	}

	replaceImages := req.Images != nil
	if replaceImages {
		vehicle.Images, err = buildVehicleImages(vehicle.ID, req.Images)
		if err != nil {
			return nil, err
		}
	}

	if err := uc.userRepo.UpdateVehicle(ctx, vehicle, replaceImages); err != nil {
		if errors.Is(err, users.ErrDuplicatePlate) {
			return nil, apperrors.Conflict("a vehicle with this plate is already registered")
		}
		return nil, apperrors.Internal(err)
	}

	logger.Info("Vehicle updated",
		logger.String("vehicle_id", vehicle.ID.String()),
		logger.String("driver_profile_id", profile.ID.String()))

	return vehicle, nil
}

// ListVehicles lists the caller's registered vehicles
func (uc *userUC) ListVehicles(ctx context.Context, callerID uuid.UUID) ([]*models.Vehicle, error) {
	profile, err := uc.callerProfile(ctx, callerID)
	if err != nil {
		return nil, err
	}

	vehicleList, err := uc.userRepo.ListVehiclesByDriver(ctx, profile.ID)
	if err != nil {
		return nil, apperrors.Internal(err)
	}
	return vehicleList, nil
}

// DeleteVehicle removes one of the caller's vehicles, refused while any
// ride still references it.
func (uc *userUC) DeleteVehicle(ctx context.Context, callerID uuid.UUID, vehicleID uuid.UUID) error {
	profile, err := uc.callerProfile(ctx, callerID)
	if err != nil {
		return err
	}

	vehicle, err := uc.userRepo.GetVehicleByID(ctx, vehicleID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return apperrors.NotFound("vehicle not found")
		}
		return apperrors.Internal(err)
	}
	if vehicle.DriverID != profile.ID {
		return apperrors.NotFound("vehicle not found")
	}

	inUse, err := uc.userRepo.VehicleInUse(ctx, vehicleID)
	if err != nil {
		return apperrors.Internal(err)
	}
	if inUse {
		return apperrors.Conflict("vehicle is referenced by existing rides")
	}

	if err := uc.userRepo.DeleteVehicle(ctx, vehicleID); err != nil {
		return apperrors.Internal(err)
	}
	return nil
}

func (uc *userUC) newUser(name, email, password, phone string, role models.UserRole) (*models.User, error) {
	if name == "" || email == "" {
		return nil, apperrors.InvalidInput("name and email are required")
	}
	if !strings.Contains(email, "@") {
		return nil, apperrors.InvalidInput("invalid email address")
	}
	if len(password) < 8 {
		return nil, apperrors.InvalidInput("password must be at least 8 characters")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, apperrors.Internal(err)
	}

	now := time.Now()
	return &models.User{
		ID:        uuid.New(),
		Name:      name,
		Email:     strings.ToLower(email),
		Password:  string(hash),
		Phone:     phone,
		Role:      role,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

func (uc *userUC) createUser(ctx context.Context, user *models.User) error {
	if err := uc.userRepo.CreateUser(ctx, user); err != nil {
		if errors.Is(err, users.ErrDuplicateEmail) {
			return apperrors.Conflict("email is already registered")
		}
		return apperrors.Internal(err)
	}

	logger.Info("User registered",
		logger.String("user_id", user.ID.String()),
		logger.String("role", string(user.Role)))
	return nil
}

func buildVehicleImages(vehicleID uuid.UUID, inputs []models.VehicleImageInput) ([]*models.VehicleImage, error) {
	if len(inputs) == 0 {
		return nil, nil
	}

	now := time.Now()
	images := make([]*models.VehicleImage, 0, len(inputs))
	for _, in := range inputs {
		if in.URL == "" {
			return nil, apperrors.InvalidInput("image url is required")
		}
		kind := in.Kind
		if kind == "" {
			kind = models.VehicleImageSecondary
		}
		if kind != models.VehicleImagePrimary && kind != models.VehicleImageSecondary {
			return nil, apperrors.InvalidInput("image kind must be PRIMARY or SECONDARY")
		}
		images = append(images, &models.VehicleImage{
			ID:        uuid.New(),
			VehicleID: vehicleID,
			URL:       in.URL,
			Kind:      kind,
			Position:  in.Position,
			CreatedAt: now,
		})
	}
	return images, nil
}

func (uc *userUC) callerProfile(ctx context.Context, callerID uuid.UUID) (*models.DriverProfile, error) {
	profile, err := uc.userRepo.GetDriverProfileByUserID(ctx, callerID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.Forbidden("only drivers can manage vehicles")
		}
		return nil, apperrors.Internal(err)
	}
	return profile, nil
}
