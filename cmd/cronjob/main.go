package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"farmforce-backend/internal/config"
	"farmforce-backend/internal/jobs"
	"farmforce-backend/internal/logger"
	fsrepo "farmforce-backend/internal/repository/firestore"
	"farmforce-backend/internal/scheduler"
	"farmforce-backend/internal/trigger"
)

func main() {
	// Parse command-line flags
	configPath := flag.String("config", "config/config.dev.yaml", "Path to configuration file")
	runOnce := flag.String("run-once", "", "Run a specific job once and exit (e.g., 'reprocess-stalled-transactions')")
	flag.Parse()

	// Local overrides from .env, if present
	_ = godotenv.Load()

	// Load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize logger
	logger.Initialize(cfg.Log.Level, cfg.Log.Format)
	logger.Info("Starting FarmForce Cronjob Runner...", "log_level", cfg.Log.Level)

	// Initialize Firestore
	ctx := context.Background()
	client, err := fsrepo.NewClient(ctx, cfg.Firebase.ProjectID, cfg.Firebase.CredentialsFile)
	if err != nil {
		logger.Error("Failed to connect to Firestore", "error", err)
		log.Fatalf("Failed to connect to Firestore: %v", err)
	}
	defer client.Close()
	logger.Info("Firestore connection established")

	// Initialize Repositories and the balance trigger handler
	store := fsrepo.NewStore(client)
	adjuster := trigger.NewBalanceAdjuster(
		store.TransactionTypeRepository,
		store.TransactionRepository,
		store.PaymentGroupRepository,
	)

	jobRunner := jobs.NewJobRunner(store.TransactionRepository, adjuster, cfg)

	// Run-once mode for manual execution
	if *runOnce != "" {
		switch *runOnce {
		case "reprocess-stalled-transactions":
			jobRunner.ReprocessStalledTransactions()
		default:
			logger.Error("Unknown job", "job", *runOnce)
			os.Exit(1)
		}
		return
	}

	sched := scheduler.NewScheduler(jobRunner)
	sched.Start()

	// Wait for shutdown signal
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	<-sigCh

	sched.Stop()
}
