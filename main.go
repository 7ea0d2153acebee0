package main

import (
	"log"
	"time"

	"github.com/gin-gonic/gin"

	"sportconnect-api/config"
	"sportconnect-api/database"
	"sportconnect-api/jobs"
	"sportconnect-api/middleware"
	"sportconnect-api/repositories"
	"sportconnect-api/routes"
	"sportconnect-api/services"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize database
	db, err := database.Initialize(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	// Run migrations
	if err := database.Migrate(db); err != nil {
		log.Fatal("Failed to migrate database:", err)
	}

	// Seed database with test data (optional - for development)
	if err := database.SeedData(db); err != nil {
		log.Printf("Warning: Failed to seed database: %v", err)
	}

	// Open the device-local fallback store
	localStore, err := database.OpenLocalStore(cfg.LocalStorePath)
	if err != nil {
		log.Fatal("Failed to open local store:", err)
	}
	defer localStore.Close()
	localRecords := repositories.NewLocalRecordRepository(localStore)

	// Services
	emailService := services.NewEmailService(cfg)
	geocoder := services.NewNominatimGeocoder(cfg.GeocoderBaseURL)
	osrmRouter := services.NewOSRMRouter(cfg.RouterBaseURL, cfg.RouterProfile)
	tracker := services.NewTracker(cfg.LocationEnabled)
	planner := services.NewPlanner(geocoder, osrmRouter, tracker)

	// Background jobs
	sessionCleanup := jobs.NewSessionCleanupJob(tracker, 10*time.Minute, time.Hour)
	sessionCleanup.Start()
	defer sessionCleanup.Stop()

	// Set Gin mode based on environment
	if cfg.Port == "8080" { // Development
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	// Create router
	router := gin.New()

	// Setup CORS middleware
	router.Use(routes.SetupCORS())

	// Request logging middleware
	router.Use(middleware.RequestLogger())

	// Recovery middleware
	router.Use(gin.Recovery())

	// Security headers and rate limiting
	router.Use(middleware.SecurityHeaders())
	router.Use(middleware.RateLimit(120, 30))

	// Setup routes
	routes.SetupRoutes(router, db, cfg, emailService, planner, tracker, localRecords)

	// Start server
	log.Printf("Starting SportConnect API server on port %s", cfg.Port)
	log.Printf("Health check available at: http://localhost:%s/ping", cfg.Port)

	if err := router.Run(":" + cfg.Port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
