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
	"github.com/HopOn-TAEY/HopOn-BackEnd/services/reservations"
)

// ReservationsHandler handles HTTP requests for reservation operations
type ReservationsHandler struct {
	reservationUC reservations.ReservationUC
}

// NewReservationsHandler creates a new reservation HTTP handler
func NewReservationsHandler(reservationUC reservations.ReservationUC) *ReservationsHandler {
	return &ReservationsHandler{
		reservationUC: reservationUC,
	}
}

// CreateReservation books seats on a ride for the caller
func (h *ReservationsHandler) CreateReservation(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Reservations.CreateReservation")

	callerID, ok := middleware.CallerID(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	var req models.CreateReservationRequest
	if err := c.Bind(&req); err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return utils.BadRequestResponse(c, "Invalid request body")
	}

	reservation, err := h.reservationUC.CreateReservation(c.Request().Context(), callerID, req)
	if err != nil {
		logger.Error("Failed to create reservation",
			logger.String("user_id", callerID.String()),
			logger.String("ride_id", req.RideID.String()),
			logger.Err(err))
		nrpkg.NoticeTransactionError(txn, err)
		return utils.AppErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusCreated, "Reservation created successfully", reservation)
}

// AuthorizeReservation confirms a pending reservation
func (h *ReservationsHandler) AuthorizeReservation(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Reservations.AuthorizeReservation")

	callerID, ok := middleware.CallerID(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	reservationID, err := uuid.Parse(c.Param("reservationID"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid reservation ID")
	}

	reservation, err := h.reservationUC.AuthorizeReservation(c.Request().Context(), callerID, reservationID)
	if err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return utils.AppErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Reservation confirmed successfully", reservation)
}

// CancelReservation cancels a pending reservation on the driver's behalf
func (h *ReservationsHandler) CancelReservation(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Reservations.CancelReservation")

	callerID, ok := middleware.CallerID(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	reservationID, err := uuid.Parse(c.Param("reservationID"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid reservation ID")
	}

	if err := h.reservationUC.CancelReservation(c.Request().Context(), callerID, reservationID); err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return utils.AppErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Reservation cancelled successfully", nil)
}

// ListForRide lists a ride's reservations for its driver
func (h *ReservationsHandler) ListForRide(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Reservations.ListForRide")

	callerID, ok := middleware.CallerID(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	rideID, err := uuid.Parse(c.Param("rideID"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid ride ID")
	}
	nrpkg.AddTransactionAttribute(txn, "ride.id", rideID.String())

	list, err := h.reservationUC.ListForRide(c.Request().Context(), callerID, rideID)
	if err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return utils.AppErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Reservations retrieved successfully", list)
}
