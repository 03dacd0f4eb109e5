package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/HopOn-TAEY/HopOn-BackEnd/internal/pkg/middleware"
	"github.com/HopOn-TAEY/HopOn-BackEnd/internal/pkg/models"
	"github.com/HopOn-TAEY/HopOn-BackEnd/services/rides"
	httpHandler "github.com/HopOn-TAEY/HopOn-BackEnd/services/rides/handler/http"
)

// Handler wires the rides HTTP handlers
type Handler struct {
	ridesHTTP *httpHandler.RidesHandler
	cfg       *models.Config
}

// NewHandler creates a new rides handler
func NewHandler(rideUC rides.RideUC, cfg *models.Config) *Handler {
	return &Handler{
		ridesHTTP: httpHandler.NewRidesHandler(rideUC),
		cfg:       cfg,
	}
}

// RegisterRoutes registers all ride HTTP routes
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	auth := middleware.JWTAuthMiddleware(h.cfg.JWT)

	ridesGroup := e.Group("/rides", auth)
	ridesGroup.POST("", h.ridesHTTP.CreateRide)
	ridesGroup.GET("", h.ridesHTTP.ListRides)
	ridesGroup.GET("/search", h.ridesHTTP.SearchRides)
	ridesGroup.GET("/finished", h.ridesHTTP.ListFinishedByUser)
	ridesGroup.GET("/:rideID", h.ridesHTTP.GetRide)
	ridesGroup.POST("/:rideID/start", h.ridesHTTP.StartRide)
	ridesGroup.POST("/:rideID/cancel", h.ridesHTTP.CancelRide)
	ridesGroup.POST("/:rideID/finalize", h.ridesHTTP.FinalizeRide)
	ridesGroup.DELETE("/:rideID", h.ridesHTTP.DeleteRide)
}
