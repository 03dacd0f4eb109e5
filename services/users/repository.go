package users

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/HopOn-TAEY/HopOn-BackEnd/internal/pkg/models"
)

// Sentinel errors surfaced by the repository. Both map to unique
// constraints so racing duplicates are rejected by the store.
var (
	ErrDuplicateEmail = errors.New("email already registered")
	ErrDuplicatePlate = errors.New("vehicle plate already registered")
)

// UserRepo defines the interface for user and vehicle data access
//
//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/HopOn-TAEY/HopOn-BackEnd/services/users UserRepo
type UserRepo interface {
	CreateUser(ctx context.Context, user *models.User) error
	UpdateUser(ctx context.Context, user *models.User) error
	DeleteUser(ctx context.Context, user *models.User) error
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	GetUserByID(ctx context.Context, userID uuid.UUID) (*models.User, error)
	ListDrivers(ctx context.Context) ([]*models.DriverSummary, error)
	GetDriverProfileByUserID(ctx context.Context, userID uuid.UUID) (*models.DriverProfile, error)
	CreateVehicle(ctx context.Context, vehicle *models.Vehicle) error
	UpdateVehicle(ctx context.Context, vehicle *models.Vehicle, replaceImages bool) error
	GetVehicleByID(ctx context.Context, vehicleID uuid.UUID) (*models.Vehicle, error)
	ListVehiclesByDriver(ctx context.Context, driverProfileID uuid.UUID) ([]*models.Vehicle, error)
	VehicleInUse(ctx context.Context, vehicleID uuid.UUID) (bool, error)
	DeleteVehicle(ctx context.Context, vehicleID uuid.UUID) error
}
