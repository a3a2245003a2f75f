package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"

	api "farmforce-backend/internal/api/http"
	"farmforce-backend/internal/config"
	"farmforce-backend/internal/logger"
	fsrepo "farmforce-backend/internal/repository/firestore"
	"farmforce-backend/internal/service"
	"farmforce-backend/internal/trigger"
)

func main() {
	// Parse command-line flags
	configPath := flag.String("config", "config/config.dev.yaml", "Path to configuration file")
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
	logger.Info("Starting FarmForce Backend...", "log_level", cfg.Log.Level, "log_format", cfg.Log.Format)
	logger.Info("Server configuration", "address", cfg.GetServerAddress())
	logger.Info("Firebase configuration", "project_id", cfg.Firebase.ProjectID)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Initialize Firestore
	client, err := fsrepo.NewClient(ctx, cfg.Firebase.ProjectID, cfg.Firebase.CredentialsFile)
	if err != nil {
		logger.Error("Failed to connect to Firestore", "error", err)
		log.Fatalf("Failed to connect to Firestore: %v", err)
	}
	defer client.Close()
	logger.Info("Firestore connection established")

	// Initialize Repositories
	store := fsrepo.NewStore(client)

	// Initialize Services
	workerSvc := service.NewWorkerService(store.WorkerRepository)
	txSvc := service.NewTransactionService(store.TransactionRepository, store.TransactionTypeRepository)
	opSvc := service.NewOperationService(store.OperationRepository)
	wtSvc := service.NewWorkerTypeService(store.WorkerTypeRepository)
	pgSvc := service.NewPaymentGroupService(store.PaymentGroupRepository, store.WorkerRepository)
	farmSvc := service.NewFarmService(store.FarmRepository)
	reportSvc := service.NewReportService(store.ReportRepository)

	// Initialize balance trigger and its collection watcher
	adjuster := trigger.NewBalanceAdjuster(
		store.TransactionTypeRepository,
		store.TransactionRepository,
		store.PaymentGroupRepository,
	)
	watcher := trigger.NewWatcher(client, adjuster, cfg.Trigger.Collection)
	go func() {
		if err := watcher.Run(ctx); err != nil {
			logger.Error("Transaction watcher failed", "error", err)
			stop()
		}
	}()

	// Set up HTTP API
	router := mux.NewRouter()
	api.RegisterRoutes(router, &api.Handlers{
		Worker:       api.NewWorkerHandler(workerSvc),
		Transaction:  api.NewTransactionHandler(txSvc),
		Operation:    api.NewOperationHandler(opSvc),
		WorkerType:   api.NewWorkerTypeHandler(wtSvc),
		PaymentGroup: api.NewPaymentGroupHandler(pgSvc),
		Farm:         api.NewFarmHandler(farmSvc),
		Report:       api.NewReportHandler(reportSvc),
	})

	srv := &http.Server{
		Addr:    cfg.GetServerAddress(),
		Handler: router,
	}
	go func() {
		logger.Info("HTTP server listening", "address", cfg.GetServerAddress())
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("HTTP server error", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("Shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("HTTP server shutdown failed", "error", err)
	}
	logger.Info("Shutdown complete")
}
