package privaterides

import (
	"context"

	"github.com/google/uuid"

	"github.com/HopOn-TAEY/HopOn-BackEnd/internal/pkg/models"
)

// PrivateRideUC defines the interface for the private ride negotiation
// protocol: request, proposal response, and the derived private ride.
//
//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/HopOn-TAEY/HopOn-BackEnd/services/privaterides PrivateRideUC
type PrivateRideUC interface {
	CreateTripRequest(ctx context.Context, callerID uuid.UUID, callerRole models.UserRole, req models.CreateTripRequestRequest) (*models.TripRequest, error)
	AcceptProposal(ctx context.Context, callerID uuid.UUID, req models.AcceptProposalRequest) (*models.PrivateRide, error)
	RejectProposal(ctx context.Context, callerID uuid.UUID, req models.RejectProposalRequest) error
	UpdateSeatCount(ctx context.Context, callerID uuid.UUID, req models.UpdateSeatCountRequest) (*models.PrivateRide, error)
	CancelPrivateRide(ctx context.Context, callerID uuid.UUID, privateRideID uuid.UUID) error
	FinalizePrivateRide(ctx context.Context, callerID uuid.UUID, privateRideID uuid.UUID) error
	GetPrivateRide(ctx context.Context, callerID uuid.UUID, privateRideID uuid.UUID) (*models.PrivateRide, error)
	ListForPassenger(ctx context.Context, callerID uuid.UUID) ([]*models.PrivateRide, error)
	ListForDriver(ctx context.Context, callerID uuid.UUID) ([]*models.PrivateRide, error)
	ListDriverRequests(ctx context.Context, callerID uuid.UUID) ([]*models.Proposal, error)
}
