package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/HopOn-TAEY/HopOn-BackEnd/internal/pkg/middleware"
	"github.com/HopOn-TAEY/HopOn-BackEnd/internal/pkg/models"
	"github.com/HopOn-TAEY/HopOn-BackEnd/services/reservations"
	httpHandler "github.com/HopOn-TAEY/HopOn-BackEnd/services/reservations/handler/http"
)

// Handler wires the reservations HTTP handlers
type Handler struct {
	reservationsHTTP *httpHandler.ReservationsHandler
	cfg              *models.Config
}

// NewHandler creates a new reservations handler
func NewHandler(reservationUC reservations.ReservationUC, cfg *models.Config) *Handler {
	return &Handler{
		reservationsHTTP: httpHandler.NewReservationsHandler(reservationUC),
		cfg:              cfg,
	}
}

// RegisterRoutes registers all reservation HTTP routes
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	auth := middleware.JWTAuthMiddleware(h.cfg.JWT)

	group := e.Group("/reservations", auth)
	group.POST("", h.reservationsHTTP.CreateReservation)
	group.POST("/:reservationID/authorize", h.reservationsHTTP.AuthorizeReservation)
	group.POST("/:reservationID/cancel", h.reservationsHTTP.CancelReservation)

	e.GET("/rides/:rideID/reservations", h.reservationsHTTP.ListForRide, auth)
}
