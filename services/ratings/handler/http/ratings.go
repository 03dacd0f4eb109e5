package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/HopOn-TAEY/HopOn-BackEnd/internal/pkg/logger"
	"github.com/HopOn-TAEY/HopOn-BackEnd/internal/pkg/middleware"
	"github.com/HopOn-TAEY/HopOn-BackEnd/internal/pkg/models"
	nrpkg "github.com/HopOn-TAEY/HopOn-BackEnd/internal/pkg/newrelic"
	"github.com/HopOn-TAEY/HopOn-BackEnd/internal/utils"
	"github.com/HopOn-TAEY/HopOn-BackEnd/services/ratings"
)

// RatingsHandler handles HTTP requests for rating operations
type RatingsHandler struct {
	ratingUC ratings.RatingUC
}

// NewRatingsHandler creates a new rating HTTP handler
func NewRatingsHandler(ratingUC ratings.RatingUC) *RatingsHandler {
	return &RatingsHandler{
		ratingUC: ratingUC,
	}
}

// SubmitRating rates the driver of a finished ride
func (h *RatingsHandler) SubmitRating(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Ratings.SubmitRating")

	callerID, ok := middleware.CallerID(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	var req models.SubmitRatingRequest
	if err := c.Bind(&req); err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return utils.BadRequestResponse(c, "Invalid request body")
	}

	rating, err := h.ratingUC.SubmitRating(c.Request().Context(), callerID, req)
	if err != nil {
		logger.Error("Failed to submit rating",
			logger.String("user_id", callerID.String()),
			logger.String("ride_id", req.RideID.String()),
			logger.Err(err))
		nrpkg.NoticeTransactionError(txn, err)
		return utils.AppErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusCreated, "Rating submitted successfully", rating)
}

// ListPendingRating lists the caller's finished rides still unrated
func (h *RatingsHandler) ListPendingRating(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Ratings.ListPendingRating")

	callerID, ok := middleware.CallerID(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	pending, err := h.ratingUC.ListPendingRating(c.Request().Context(), callerID)
	if err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return utils.AppErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Pending ratings retrieved successfully", pending)
}
