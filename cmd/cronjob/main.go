package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"jobi-backend/internal/config"
	"jobi-backend/internal/jobs"
	"jobi-backend/internal/logger"
	"jobi-backend/internal/repository/mongodb"
	"jobi-backend/internal/scheduler"
	"jobi-backend/internal/service"
)

func main() {
	// Parse command-line flags
	configPath := flag.String("config", "config/config.dev.yaml", "Path to configuration file")
	runOnce := flag.String("run-once", "", "Run a specific job once and exit (e.g., 'send-teaser-reminders')")
	flag.Parse()

	// Load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize logger
	logger.Initialize(cfg.Log.Level, cfg.Log.Format)
	logger.Info("Starting JOBI cronjob runner...", "log_level", cfg.Log.Level)

	// Initialize store
	ctx := context.Background()
	logger.Info("Connecting to MongoDB...", "database", cfg.Mongo.Database)
	store, err := mongodb.Connect(ctx, cfg.Mongo.URI, cfg.Mongo.Database)
	if err != nil {
		logger.Error("Failed to connect to MongoDB", "error", err)
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	defer store.Close(ctx)

	// Initialize Services
	emailSender := service.NewSendGridSender(
		cfg.Email.APIKey,
		cfg.Email.SenderEmail,
		cfg.Email.SenderName,
	)
	dispatcher := service.NewNotificationDispatcher(store.Registrations, emailSender, cfg.Dispatch.MaxConcurrentSends)

	jobRunner := jobs.NewJobRunner(dispatcher, cfg)

	// One-shot mode for manual execution
	if *runOnce != "" {
		switch *runOnce {
		case "send-teaser-reminders":
			jobRunner.SendTeaserReminders()
		default:
			log.Fatalf("Unknown job: %s", *runOnce)
		}
		return
	}

	// Scheduled mode
	sched := scheduler.NewScheduler(jobRunner)
	sched.Start()

	// Wait for shutdown signal
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	sig := <-sigCh
	logger.Info("Received shutdown signal", "signal", sig.String())

	sched.Stop()
}
