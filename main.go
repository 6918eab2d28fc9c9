package main

import (
	"os"

	"github.com/Romaissazr/travel-agency/config"
	"github.com/Romaissazr/travel-agency/internal/handler"
	"github.com/Romaissazr/travel-agency/internal/middleware"
	"github.com/Romaissazr/travel-agency/internal/repository"
	"github.com/Romaissazr/travel-agency/internal/service"
	"github.com/Romaissazr/travel-agency/pkg/database"
	"github.com/Romaissazr/travel-agency/pkg/rabbitmq"
	"github.com/Romaissazr/travel-agency/pkg/validation"
	"github.com/labstack/echo/v4"
	echoMw "github.com/labstack/echo/v4/middleware"
	"github.com/sirupsen/logrus"
)

func main() {
	log := logrus.New()
	log.SetFormatter(&logrus.JSONFormatter{})
	log.SetOutput(os.Stdout)

	cfg := config.Load()

	if level, err := logrus.ParseLevel(cfg.LogLevel); err == nil {
		log.SetLevel(level)
	}

	db := database.NewPostgresDB(cfg.DSN())

	// Domain events are published best-effort; the API runs without a broker
	var publisher *rabbitmq.Publisher
	if cfg.RabbitURL != "" {
		var err error
		publisher, err = rabbitmq.NewPublisher(cfg.RabbitURL, log)
		if err != nil {
			log.Fatalf("failed to connect to RabbitMQ: %v", err)
		}
		defer publisher.Close()
	} else {
		log.Warn("RABBITMQ_URL not set, domain events disabled")
	}

	// Repositories
	tourRepo := repository.NewTourRepository(db)
	bookingRepo := repository.NewBookingRepository(db)
	reviewRepo := repository.NewReviewRepository(db)
	userRepo := repository.NewUserRepository(db)

	// Services
	bookingSvc := service.NewBookingService(bookingRepo, tourRepo, userRepo, publisher)
	tourSvc := service.NewTourService(tourRepo, bookingRepo, reviewRepo, publisher)
	reviewSvc := service.NewReviewService(reviewRepo, tourRepo, userRepo, publisher)
	userSvc := service.NewUserService(userRepo, bookingRepo, reviewRepo, tourRepo, publisher, cfg.JWTSecret)

	// Echo
	e := echo.New()
	e.Validator = validation.New()
	e.HTTPErrorHandler = middleware.ErrorHandler
	e.Use(echoMw.RequestLoggerWithConfig(echoMw.RequestLoggerConfig{
		LogStatus: true,
		LogURI:    true,
		LogMethod: true,
		LogValuesFunc: func(c echo.Context, v echoMw.RequestLoggerValues) error {
			log.WithFields(logrus.Fields{
				"method": v.Method,
				"uri":    v.URI,
				"status": v.Status,
			}).Info("request")
			return nil
		},
	}))
	e.Use(echoMw.Recover())
	e.Use(echoMw.CORS())

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(200, map[string]string{"status": "ok", "service": "travel-agency"})
	})

	handler.NewBookingHandler(bookingSvc).RegisterRoutes(e)
	handler.NewTourHandler(tourSvc).RegisterRoutes(e)
	handler.NewReviewHandler(reviewSvc).RegisterRoutes(e)
	handler.NewUserHandler(userSvc).RegisterRoutes(e)

	log.Infof("Travel Agency API starting on :%s", cfg.ServerPort)
	e.Logger.Fatal(e.Start(":" + cfg.ServerPort))
}
