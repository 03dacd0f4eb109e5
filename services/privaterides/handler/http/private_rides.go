package http

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/HopOn-TAEY/HopOn-BackEnd/internal/pkg/logger"
	"github.com/HopOn-TAEY/HopOn-BackEnd/internal/pkg/middleware"
	"github.com/HopOn-TAEY/HopOn-BackEnd/internal/pkg/models"
	nrpkg "github.com/HopOn-TAEY/HopOn-BackEnd/internal/pkg/newrelic"
	"github.com/HopOn-TAEY/HopOn-BackEnd/internal/utils"
	"github.com/HopOn-TAEY/HopOn-BackEnd/services/privaterides"
)

// PrivateRidesHandler handles HTTP requests for the private ride
// negotiation flow.
type PrivateRidesHandler struct {
	privateRideUC privaterides.PrivateRideUC
}

// NewPrivateRidesHandler creates a new private ride HTTP handler
func NewPrivateRidesHandler(privateRideUC privaterides.PrivateRideUC) *PrivateRidesHandler {
	return &PrivateRidesHandler{
		privateRideUC: privateRideUC,
	}
}

// CreateTripRequest opens a trip request targeted at a driver
func (h *PrivateRidesHandler) CreateTripRequest(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "PrivateRides.CreateTripRequest")

	callerID, ok := middleware.CallerID(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	var req models.CreateTripRequestRequest
	if err := c.Bind(&req); err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return utils.BadRequestResponse(c, "Invalid request body")
	}

	request, err := h.privateRideUC.CreateTripRequest(c.Request().Context(), callerID, middleware.CallerRole(c), req)
	if err != nil {
		logger.Error("Failed to create trip request",
			logger.String("user_id", callerID.String()),
			logger.Err(err))
		nrpkg.NoticeTransactionError(txn, err)
		return utils.AppErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusCreated, "Trip request created successfully", request)
}

// AcceptProposal accepts a pending proposal and returns the new ride
func (h *PrivateRidesHandler) AcceptProposal(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "PrivateRides.AcceptProposal")

	callerID, ok := middleware.CallerID(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	proposalID, err := uuid.Parse(c.Param("proposalID"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid proposal ID")
	}

	var req models.AcceptProposalRequest
	if err := c.Bind(&req); err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return utils.BadRequestResponse(c, "Invalid request body")
	}
	req.ProposalID = proposalID

	ride, err := h.privateRideUC.AcceptProposal(c.Request().Context(), callerID, req)
	if err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return utils.AppErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusCreated, "Proposal accepted successfully", ride)
}

// RejectProposal declines a pending proposal
func (h *PrivateRidesHandler) RejectProposal(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "PrivateRides.RejectProposal")

	callerID, ok := middleware.CallerID(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	proposalID, err := uuid.Parse(c.Param("proposalID"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid proposal ID")
	}

	if err := h.privateRideUC.RejectProposal(c.Request().Context(), callerID, models.RejectProposalRequest{ProposalID: proposalID}); err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return utils.AppErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Proposal rejected successfully", nil)
}

// UpdateSeatCount adjusts the seat total of a scheduled private ride
func (h *PrivateRidesHandler) UpdateSeatCount(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "PrivateRides.UpdateSeatCount")

	callerID, ok := middleware.CallerID(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	privateRideID, err := uuid.Parse(c.Param("privateRideID"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid private ride ID")
	}

	var req models.UpdateSeatCountRequest
	if err := c.Bind(&req); err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return utils.BadRequestResponse(c, "Invalid request body")
	}
	req.PrivateRideID = privateRideID

	ride, err := h.privateRideUC.UpdateSeatCount(c.Request().Context(), callerID, req)
	if err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return utils.AppErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Seat count updated successfully", ride)
}

// CancelPrivateRide cancels a private ride
func (h *PrivateRidesHandler) CancelPrivateRide(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "PrivateRides.CancelPrivateRide")

	callerID, ok := middleware.CallerID(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	privateRideID, err := uuid.Parse(c.Param("privateRideID"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid private ride ID")
	}

	if err := h.privateRideUC.CancelPrivateRide(c.Request().Context(), callerID, privateRideID); err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return utils.AppErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Private ride cancelled successfully", nil)
}

// FinalizePrivateRide marks a private ride finished
func (h *PrivateRidesHandler) FinalizePrivateRide(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "PrivateRides.FinalizePrivateRide")

	callerID, ok := middleware.CallerID(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	privateRideID, err := uuid.Parse(c.Param("privateRideID"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid private ride ID")
	}

	if err := h.privateRideUC.FinalizePrivateRide(c.Request().Context(), callerID, privateRideID); err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return utils.AppErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Private ride finalized successfully", nil)
}

// GetPrivateRide retrieves a private ride for one of its parties
func (h *PrivateRidesHandler) GetPrivateRide(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "PrivateRides.GetPrivateRide")

	callerID, ok := middleware.CallerID(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	privateRideID, err := uuid.Parse(c.Param("privateRideID"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid private ride ID")
	}
	nrpkg.AddTransactionAttribute(txn, "private_ride.id", privateRideID.String())

	ride, err := h.privateRideUC.GetPrivateRide(c.Request().Context(), callerID, privateRideID)
	if err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return utils.AppErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Private ride retrieved successfully", ride)
}

// ListMine lists the caller's private rides as a passenger
func (h *PrivateRidesHandler) ListMine(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "PrivateRides.ListMine")

	callerID, ok := middleware.CallerID(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	rideList, err := h.privateRideUC.ListForPassenger(c.Request().Context(), callerID)
	if err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return utils.AppErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Private rides retrieved successfully", rideList)
}

// ListDriving lists the caller's private rides as a driver
func (h *PrivateRidesHandler) ListDriving(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "PrivateRides.ListDriving")

	callerID, ok := middleware.CallerID(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	rideList, err := h.privateRideUC.ListForDriver(c.Request().Context(), callerID)
	if err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return utils.AppErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Private rides retrieved successfully", rideList)
}

// ListDriverRequests lists proposals waiting on the caller's answer
func (h *PrivateRidesHandler) ListDriverRequests(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "PrivateRides.ListDriverRequests")

	callerID, ok := middleware.CallerID(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	proposals, err := h.privateRideUC.ListDriverRequests(c.Request().Context(), callerID)
	if err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return utils.AppErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Trip requests retrieved successfully", proposals)
}
