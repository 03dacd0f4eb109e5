package main

import (
	"context"
	"log"
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/HopOn-TAEY/HopOn-BackEnd/internal/pkg/config"
	"github.com/HopOn-TAEY/HopOn-BackEnd/internal/pkg/database"
	"github.com/HopOn-TAEY/HopOn-BackEnd/internal/pkg/health"
	"github.com/HopOn-TAEY/HopOn-BackEnd/internal/pkg/logger"
	"github.com/HopOn-TAEY/HopOn-BackEnd/internal/pkg/middleware"
	natspkg "github.com/HopOn-TAEY/HopOn-BackEnd/internal/pkg/nats"
	nrpkg "github.com/HopOn-TAEY/HopOn-BackEnd/internal/pkg/newrelic"
	"github.com/HopOn-TAEY/HopOn-BackEnd/internal/pkg/server"

	notificationHandler "github.com/HopOn-TAEY/HopOn-BackEnd/services/notifications/handler"
	notificationNats "github.com/HopOn-TAEY/HopOn-BackEnd/services/notifications/handler/nats"
	notificationRepository "github.com/HopOn-TAEY/HopOn-BackEnd/services/notifications/repository"
	notificationUsecase "github.com/HopOn-TAEY/HopOn-BackEnd/services/notifications/usecase"
	privateRideGateway "github.com/HopOn-TAEY/HopOn-BackEnd/services/privaterides/gateway"
	privateRideHandler "github.com/HopOn-TAEY/HopOn-BackEnd/services/privaterides/handler"
	privateRideRepository "github.com/HopOn-TAEY/HopOn-BackEnd/services/privaterides/repository"
	privateRideUsecase "github.com/HopOn-TAEY/HopOn-BackEnd/services/privaterides/usecase"
	ratingHandler "github.com/HopOn-TAEY/HopOn-BackEnd/services/ratings/handler"
	ratingRepository "github.com/HopOn-TAEY/HopOn-BackEnd/services/ratings/repository"
	ratingUsecase "github.com/HopOn-TAEY/HopOn-BackEnd/services/ratings/usecase"
	reservationGateway "github.com/HopOn-TAEY/HopOn-BackEnd/services/reservations/gateway"
	reservationHandler "github.com/HopOn-TAEY/HopOn-BackEnd/services/reservations/handler"
	reservationRepository "github.com/HopOn-TAEY/HopOn-BackEnd/services/reservations/repository"
	reservationUsecase "github.com/HopOn-TAEY/HopOn-BackEnd/services/reservations/usecase"
	rideGateway "github.com/HopOn-TAEY/HopOn-BackEnd/services/rides/gateway"
	rideHandler "github.com/HopOn-TAEY/HopOn-BackEnd/services/rides/handler"
	rideRepository "github.com/HopOn-TAEY/HopOn-BackEnd/services/rides/repository"
	rideUsecase "github.com/HopOn-TAEY/HopOn-BackEnd/services/rides/usecase"
	userHandler "github.com/HopOn-TAEY/HopOn-BackEnd/services/users/handler"
	userRepository "github.com/HopOn-TAEY/HopOn-BackEnd/services/users/repository"
	userUsecase "github.com/HopOn-TAEY/HopOn-BackEnd/services/users/usecase"
)

func main() {
	appName := "hopon-api"
	configPath := config.GetEnv("CONFIG_PATH", "config/api.env")
	configs := config.InitConfig(configPath)

	// Initialize New Relic and Zap logger
	nrApp := nrpkg.InitNewRelic(configs)

	if nrApp != nil {
		if err := nrApp.WaitForConnection(10 * time.Second); err != nil {
			log.Printf("Warning: New Relic connection timeout: %v", err)
		}
	}

	zapLogger, err := logger.InitZapLoggerFromConfig(configs, nrApp)
	if err != nil {
		log.Fatalf("Failed to create Zap logger: %v", err)
	}
	defer zapLogger.Close()
	logger.SetGlobalLogger(zapLogger)

	zapLogger.Info("Starting application",
		zap.String("app", appName),
		zap.String("version", configs.App.Version),
		zap.String("environment", configs.App.Environment),
	)

	// Initialize PostgreSQL database connection
	postgresClient, err := database.NewPostgresClient(configs.Database)
	if err != nil {
		zapLogger.Fatal("Failed to connect to PostgreSQL", zap.Error(err))
	}
	db := postgresClient.GetDB()

	// Initialize Redis client
	redisClient, err := database.NewRedisClient(configs.Redis)
	if err != nil {
		zapLogger.Fatal("Failed to connect to Redis", zap.Error(err))
	}

	// Initialize NATS
	natsClient, err := natspkg.NewClient(configs.NATS.URL)
	if err != nil {
		zapLogger.Fatal("Failed to connect to NATS", zap.Error(err))
	}

	// Users
	userRepo := userRepository.NewUserRepository(configs, db, redisClient)
	userUC := userUsecase.NewUserUC(configs, userRepo)

	// Rides
	rideRepo := rideRepository.NewRideRepository(configs, db)
	rideGW := rideGateway.NewRideGW(natsClient)
	rideUC := rideUsecase.NewRideUC(configs, rideRepo, rideGW)

	// Reservations
	reservationRepo := reservationRepository.NewReservationRepository(configs, db)
	reservationGW := reservationGateway.NewReservationGW(natsClient)
	reservationUC := reservationUsecase.NewReservationUC(configs, reservationRepo, reservationGW)

	// Private rides
	privateRideRepo := privateRideRepository.NewPrivateRideRepository(configs, db)
	privateRideGW := privateRideGateway.NewPrivateRideGW(natsClient)
	privateRideUC := privateRideUsecase.NewPrivateRideUC(configs, privateRideRepo, privateRideGW)

	// Ratings
	ratingRepo := ratingRepository.NewRatingRepository(configs, db)
	ratingUC := ratingUsecase.NewRatingUC(configs, ratingRepo)

	// Notifications
	notificationRepo := notificationRepository.NewNotificationRepository(configs, db, redisClient)
	notificationUC := notificationUsecase.NewNotificationUC(configs, notificationRepo)

	notificationConsumer, err := notificationNats.NewHandler(notificationUC, natsClient)
	if err != nil {
		zapLogger.Fatal("Failed to initialize NATS consumers", zap.Error(err))
	}

	// Initialize Echo router
	e := echo.New()
	e.HideBanner = true

	e.Use(middleware.RequestIDMiddleware())
	e.Use(logger.ZapEchoMiddleware(zapLogger))
	e.Use(middleware.PanicRecoveryMiddleware(zapLogger))

	health.RegisterHealthEndpoints(e, appName)

	userHandler.NewHandler(userUC, configs).RegisterRoutes(e)
	rideHandler.NewHandler(rideUC, configs).RegisterRoutes(e)
	reservationHandler.NewHandler(reservationUC, configs).RegisterRoutes(e)
	privateRideHandler.NewHandler(privateRideUC, configs).RegisterRoutes(e)
	ratingHandler.NewHandler(ratingUC, configs).RegisterRoutes(e)
	notificationHandler.NewHandler(notificationUC, configs).RegisterRoutes(e)

	shutdownManager := server.NewShutdownManager(zapLogger)
	shutdownManager.Register(func(ctx context.Context) error {
		notificationConsumer.Close()
		return nil
	})
	shutdownManager.Register(func(ctx context.Context) error {
		natsClient.Close()
		return nil
	})
	shutdownManager.Register(func(ctx context.Context) error {
		return redisClient.Close()
	})
	shutdownManager.Register(func(ctx context.Context) error {
		return postgresClient.Close()
	})

	gracefulServer := server.NewGracefulServer(e, zapLogger, configs.Server.Port)
	if err := gracefulServer.Start(); err != nil {
		zapLogger.Error("Server stopped with error", zap.Error(err))
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Duration(configs.Server.ShutdownTimeout)*time.Second)
	defer cancel()
	shutdownManager.Shutdown(shutdownCtx)
}
