package users

import (
	"context"

	"github.com/google/uuid"

	"github.com/HopOn-TAEY/HopOn-BackEnd/internal/pkg/models"
)

// UserUC defines the interface for account, authentication and vehicle
// management.
//
//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/HopOn-TAEY/HopOn-BackEnd/services/users UserUC
type UserUC interface {
	RegisterPassenger(ctx context.Context, req models.RegisterPassengerRequest) (*models.User, error)
	RegisterDriver(ctx context.Context, req models.RegisterDriverRequest) (*models.User, error)
	Login(ctx context.Context, req models.LoginRequest) (*models.AuthResponse, error)
	GetProfile(ctx context.Context, callerID uuid.UUID) (*models.User, error)
	UpdateProfile(ctx context.Context, callerID uuid.UUID, req models.UpdateProfileRequest) (*models.User, error)
	DeleteAccount(ctx context.Context, callerID uuid.UUID) error
	ListDrivers(ctx context.Context) ([]*models.DriverSummary, error)
	AddVehicle(ctx context.Context, callerID uuid.UUID, req models.AddVehicleRequest) (*models.Vehicle, error)
	EditVehicle(ctx context.Context, callerID uuid.UUID, req models.EditVehicleRequest) (*models.Vehicle, error)
	ListVehicles(ctx context.Context, callerID uuid.UUID) ([]*models.Vehicle, error)
	DeleteVehicle(ctx context.Context, callerID uuid.UUID, vehicleID uuid.UUID) error
}
