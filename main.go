// File: eraflix/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/hibiken/asynq"
	"github.com/stripe/stripe-go/v76"

	"eraflix/config"
	"eraflix/cron"
	"eraflix/database"
	bookingRepoPkg "eraflix/database/repository/booking"
	contactRepoPkg "eraflix/database/repository/contact"
	eventRepoPkg "eraflix/database/repository/event"
	slotRepoPkg "eraflix/database/repository/slot"
	venueRepoPkg "eraflix/database/repository/venue"
	"eraflix/handlers"
	"eraflix/middleware"
	"eraflix/routes"
	"eraflix/services/availability"
	"eraflix/services/booking"
	"eraflix/services/catalog"
	"eraflix/services/contact"
	"eraflix/services/event"
	"eraflix/services/tasks"
	"eraflix/services/venue"
	"eraflix/utils"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitAuthCache()
	stripe.Key = config.AppConfig.StripeKey

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	slotRepo := slotRepoPkg.NewMongoSlotRepo()
	bookingRepo := bookingRepoPkg.NewMongoBookingRepo()
	venueRepo := venueRepoPkg.NewMongoVenueRepo()
	eventRepo := eventRepoPkg.NewMongoEventRepo()
	contactRepo := contactRepoPkg.NewMongoContactRepo()

	for name, ensure := range map[string]func() error{
		"timeslots": slotRepo.EnsureIndexes,
		"bookings":  bookingRepo.EnsureIndexes,
		"venues":    venueRepo.EnsureIndexes,
		"events":    eventRepo.EnsureIndexes,
		"contacts":  contactRepo.EnsureIndexes,
	} {
		if err := ensure(); err != nil {
			logger.Sugar().Fatalf("main: failed to ensure %s indexes: %v", name, err)
		}
	}

	// task queue.
	scheduler := tasks.NewAsynqScheduler(asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisTaskQueueDB,
	})
	cron.InitTaskWorker()

	// services.
	catalogService := &catalog.DefaultCatalogService{
		Repo: slotRepo,
	}
	resolver := &availability.DefaultResolver{
		Slots:    slotRepo,
		Bookings: bookingRepo,
	}
	venueService := &venue.DefaultVenueService{
		Repo: venueRepo,
	}
	eventService := &event.DefaultEventService{
		Repo: eventRepo,
	}
	contactService := &contact.DefaultContactService{
		Repo:     contactRepo,
		Notifier: scheduler,
	}
	bookingService := &booking.DefaultBookingService{
		Bookings: bookingRepo,
		Slots:    slotRepo,
		Venues:   venueRepo,
		Resolver: resolver,
		Payments: booking.NewStripePaymentHandler(logger, ""),
		Tasks:    scheduler,
	}

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		Catalog:      handlers.NewCatalogHandler(catalogService),
		Availability: handlers.NewAvailabilityHandler(resolver),
		Booking:      handlers.NewBookingHandler(bookingService),
		Venue:        handlers.NewVenueHandler(venueService),
		Event:        handlers.NewEventHandler(eventService),
		Contact:      handlers.NewContactHandler(contactService),
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle, utils.GetAuthCacheClient())

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
