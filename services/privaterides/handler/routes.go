package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/HopOn-TAEY/HopOn-BackEnd/internal/pkg/middleware"
	"github.com/HopOn-TAEY/HopOn-BackEnd/internal/pkg/models"
	"github.com/HopOn-TAEY/HopOn-BackEnd/services/privaterides"
	httpHandler "github.com/HopOn-TAEY/HopOn-BackEnd/services/privaterides/handler/http"
)

// Handler wires the private ride HTTP handlers
type Handler struct {
	privateRidesHTTP *httpHandler.PrivateRidesHandler
	cfg              *models.Config
}

// NewHandler creates a new private rides handler
func NewHandler(privateRideUC privaterides.PrivateRideUC, cfg *models.Config) *Handler {
	return &Handler{
		privateRidesHTTP: httpHandler.NewPrivateRidesHandler(privateRideUC),
		cfg:              cfg,
	}
}

// RegisterRoutes registers all private ride HTTP routes
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	auth := middleware.JWTAuthMiddleware(h.cfg.JWT)

	requests := e.Group("/trip-requests", auth)
	requests.POST("", h.privateRidesHTTP.CreateTripRequest)
	requests.GET("/incoming", h.privateRidesHTTP.ListDriverRequests)

	proposals := e.Group("/proposals", auth)
	proposals.POST("/:proposalID/accept", h.privateRidesHTTP.AcceptProposal)
	proposals.POST("/:proposalID/reject", h.privateRidesHTTP.RejectProposal)

	group := e.Group("/private-rides", auth)
	group.GET("", h.privateRidesHTTP.ListMine)
	group.GET("/driving", h.privateRidesHTTP.ListDriving)
	group.GET("/:privateRideID", h.privateRidesHTTP.GetPrivateRide)
	group.PATCH("/:privateRideID/seats", h.privateRidesHTTP.UpdateSeatCount)
	group.POST("/:privateRideID/cancel", h.privateRidesHTTP.CancelPrivateRide)
	group.POST("/:privateRideID/finalize", h.privateRidesHTTP.FinalizePrivateRide)
}
