package main

import (
	"context"
	"flag"
	"log"
	"net/http"

	"github.com/gorilla/mux"

	httpapi "jobi-backend/internal/api/http"
	"jobi-backend/internal/config"
	"jobi-backend/internal/logger"
	"jobi-backend/internal/repository/mongodb"
	"jobi-backend/internal/service"
)

func main() {
	// Parse command-line flags
	configPath := flag.String("config", "config/config.dev.yaml", "Path to configuration file")
	flag.Parse()

	// Load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize logger
	logger.Initialize(cfg.Log.Level, cfg.Log.Format)
	logger.Info("Starting JOBI waitlist backend...", "log_level", cfg.Log.Level, "log_format", cfg.Log.Format)
	logger.Info("Server configuration", "address", cfg.GetServerAddress())

	// Initialize store
	ctx := context.Background()
	logger.Info("Connecting to MongoDB...", "database", cfg.Mongo.Database)
	store, err := mongodb.Connect(ctx, cfg.Mongo.URI, cfg.Mongo.Database)
	if err != nil {
		logger.Error("Failed to connect to MongoDB", "error", err)
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	defer store.Close(ctx)

	// The unique phone index is the authoritative dedup guard; refuse to
	// serve without it.
	if err := store.EnsureIndexes(ctx); err != nil {
		logger.Error("Failed to ensure indexes", "error", err)
		log.Fatalf("Failed to ensure indexes: %v", err)
	}
	logger.Info("MongoDB connection established")

	// Initialize Email Delivery Port
	emailSender := service.NewSendGridSender(
		cfg.Email.APIKey,
		cfg.Email.SenderEmail,
		cfg.Email.SenderName,
	)

	// Initialize Services
	registrationSvc := service.NewRegistrationService(store.Registrations, emailSender, cfg.Email.WelcomeTemplateID)
	dispatcher := service.NewNotificationDispatcher(store.Registrations, emailSender, cfg.Dispatch.MaxConcurrentSends)
	statsSvc := service.NewStatsService(store.Registrations)

	// Set up HTTP server
	router := mux.NewRouter()
	handler := httpapi.NewHandler(registrationSvc, dispatcher, statsSvc, cfg.Admin.Token)
	handler.RegisterRoutes(router, cfg.CORS.AllowedOrigin)

	logger.Info("HTTP server listening", "address", cfg.GetServerAddress())
	if err := http.ListenAndServe(cfg.GetServerAddress(), router); err != nil {
		logger.Error("HTTP server error", "error", err)
		log.Fatalf("Failed to serve: %v", err)
	}
}
