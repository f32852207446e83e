// File: doctigo/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"doctigo/catalog"
	"doctigo/config"
	"doctigo/database"
	appointmentRepo "doctigo/database/repository/appointment"
	"doctigo/handlers"
	"doctigo/middleware"
	"doctigo/routes"
	"doctigo/services/conversation"
	"doctigo/services/inventory"
	"doctigo/services/vitals"
	"doctigo/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitSessionCache()
	utils.InitVitalsCache()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())
	router.Use(cors.Default())

	// Catalog and inventory: static directory feed, stock materialized at startup.
	directory := catalog.NewDirectory()
	inventoryManager := inventory.NewManager(directory.DefaultBedStocks(), logger)

	// Stores and collaborators.
	sessionStore := conversation.NewRedisStore(
		utils.GetSessionCacheClient(),
		time.Duration(config.AppConfig.SessionTTLMinutes)*time.Minute,
	)
	vitalsProvider := vitals.NewRedisProvider(
		utils.GetVitalsCacheClient(),
		time.Duration(config.AppConfig.VitalsTTLMinutes)*time.Minute,
	)
	appointmentsRepo := appointmentRepo.NewMongoAppointmentRepo()

	// Conversation engine and service.
	engine := conversation.NewEngine(directory, inventoryManager, vitalsProvider, logger)
	bookingService := conversation.NewService(engine, sessionStore, appointmentsRepo, logger)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		Booking:      handlers.NewBookingHandler(bookingService, logger),
		Catalog:      handlers.NewCatalogHandler(directory),
		Inventory:    handlers.NewInventoryHandler(inventoryManager, directory),
		Vitals:       handlers.NewVitalsHandler(vitalsProvider, logger),
		Appointments: handlers.NewAppointmentHandler(appointmentsRepo, logger),
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	utils.StartHealthMonitor(
		[]*redis.Client{utils.SessionCacheClient, utils.VitalsCacheClient},
		database.MongoClient,
	)

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
