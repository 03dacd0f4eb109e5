package privaterides

import (
	"context"

	"github.com/google/uuid"

	"github.com/HopOn-TAEY/HopOn-BackEnd/internal/pkg/models"
)

// PrivateRideRepo defines the interface for negotiation data access
//
//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/HopOn-TAEY/HopOn-BackEnd/services/privaterides PrivateRideRepo
type PrivateRideRepo interface {
	GetDriverProfileByUserID(ctx context.Context, userID uuid.UUID) (*models.DriverProfile, error)
	GetDriverProfileByID(ctx context.Context, profileID uuid.UUID) (*models.DriverProfile, error)
	GetVehicleByID(ctx context.Context, vehicleID uuid.UUID) (*models.Vehicle, error)
	HasOpenTripRequest(ctx context.Context, passengerID uuid.UUID) (bool, error)
	CreateTripRequestWithProposal(ctx context.Context, request *models.TripRequest, proposal *models.Proposal) error
	GetProposalByID(ctx context.Context, proposalID uuid.UUID) (*models.Proposal, error)
	AcceptProposal(ctx context.Context, proposalID, tripRequestID uuid.UUID, finalPrice *float64, notes *string, ride *models.PrivateRide) (bool, error)
	RejectProposal(ctx context.Context, proposalID uuid.UUID) (bool, error)
	MarkTripRequestExpired(ctx context.Context, requestID uuid.UUID) error
	GetPrivateRideByID(ctx context.Context, privateRideID uuid.UUID) (*models.PrivateRide, error)
	UpdateSeatCount(ctx context.Context, privateRideID uuid.UUID, totalSeats int) (bool, error)
	TransitionStatus(ctx context.Context, privateRideID uuid.UUID, to models.RideStatus, from ...models.RideStatus) (bool, error)
	ListByPassenger(ctx context.Context, passengerID uuid.UUID) ([]*models.PrivateRide, error)
	ListByDriver(ctx context.Context, driverProfileID uuid.UUID) ([]*models.PrivateRide, error)
	ListOpenProposalsForDriver(ctx context.Context, driverProfileID uuid.UUID) ([]*models.Proposal, error)
}
