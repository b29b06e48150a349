package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	echoMw "github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"

	"github.com/luis-duque-azumo/reservation-api/config"
	"github.com/luis-duque-azumo/reservation-api/internal/catalog"
	"github.com/luis-duque-azumo/reservation-api/internal/handler"
	"github.com/luis-duque-azumo/reservation-api/internal/middleware"
	"github.com/luis-duque-azumo/reservation-api/internal/repository"
	"github.com/luis-duque-azumo/reservation-api/internal/service"
	"github.com/luis-duque-azumo/reservation-api/pkg/database"
	"github.com/luis-duque-azumo/reservation-api/pkg/logger"
	"github.com/luis-duque-azumo/reservation-api/pkg/rabbitmq"
)

func main() {
	cfg := config.Load()

	zlog, err := logger.New(cfg.LogLevel)
	if err != nil {
		log.Fatalf("failed to build logger: %v", err)
	}
	defer zlog.Sync()

	// Reservation store: durable by default, in-memory for local development.
	var repo repository.ReservationRepository
	switch cfg.DBDriver {
	case config.DriverMemory:
		zlog.Warn("using in-memory reservation store, data will not survive restarts")
		repo = repository.NewMemoryRepository()
	default:
		repo = repository.NewReservationRepository(database.NewPostgresDB(cfg.DSN()))
	}

	// Restaurant catalog: a broken catalog is a startup failure.
	cat, err := catalog.Load(cfg.RestaurantsFile)
	if err != nil {
		zlog.Fatal("failed to load restaurant catalog", zap.Error(err))
	}
	zlog.Info("restaurant catalog loaded",
		zap.String("file", cfg.RestaurantsFile),
		zap.Int("restaurants", len(cat.List())))

	// RabbitMQ publisher: lifecycle events, optional.
	var publisher service.EventPublisher
	var mq *rabbitmq.Publisher
	if cfg.RabbitURL != "" {
		mq, err = rabbitmq.NewPublisher(cfg.RabbitURL)
		if err != nil {
			zlog.Fatal("failed to connect to RabbitMQ", zap.Error(err))
		}
		defer mq.Close()
		publisher = mq
		zlog.Info("reservation event publishing enabled")
	}

	svc := service.NewReservationService(repo, cat, publisher, zlog)

	// Echo
	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = middleware.ErrorHandler
	e.Use(echoMw.RequestLoggerWithConfig(echoMw.RequestLoggerConfig{
		LogStatus: true,
		LogURI:    true,
		LogMethod: true,
		LogValuesFunc: func(c echo.Context, v echoMw.RequestLoggerValues) error {
			zlog.Info("request",
				zap.String("method", v.Method),
				zap.String("uri", v.URI),
				zap.Int("status", v.Status))
			return nil
		},
	}))
	e.Use(echoMw.Recover())

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok", "service": "reservation-api"})
	})

	api := e.Group("", middleware.APIKeyAuth(cfg.APIKey))
	handler.NewReservationHandler(svc, cat).RegisterRoutes(api)

	go func() {
		zlog.Info("reservation API starting", zap.String("port", cfg.ServerPort))
		if err := e.Start(":" + cfg.ServerPort); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zlog.Fatal("server stopped", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		zlog.Error("graceful shutdown failed", zap.Error(err))
	}
	zlog.Info("reservation API stopped")
}
