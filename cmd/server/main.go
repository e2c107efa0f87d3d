package main

import (
	"database/sql"
	"flag"
	"log"
	"net/http"

	"github.com/gorilla/mux"
	_ "github.com/lib/pq"

	httpapi "dawati-backend/internal/api/http"
	"dawati-backend/internal/config"
	"dawati-backend/internal/logger"
	"dawati-backend/internal/repository/postgres"
	"dawati-backend/internal/security"
	"dawati-backend/internal/service"
	"dawati-backend/internal/storage"
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
	logger.Info("Starting Dawati Backend...", "log_level", cfg.Log.Level, "log_format", cfg.Log.Format)
	logger.Info("Server configuration", "address", cfg.GetServerAddress())
	logger.Info("Database configuration", "host", cfg.Database.Host, "port", cfg.Database.Port, "database", cfg.Database.Database, "user", cfg.Database.User)
	logger.Info("SMTP configuration", "host", cfg.SMTP.Host, "port", cfg.SMTP.Port)

	// Initialize Database
	db, err := sql.Open("postgres", cfg.GetDatabaseConnectionString())
	if err != nil {
		logger.Error("Failed to connect to database", "error", err)
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Test database connection
	if err := db.Ping(); err != nil {
		logger.Error("Failed to ping database", "error", err)
		log.Fatalf("Failed to ping database: %v", err)
	}
	logger.Info("Database connection established")

	// Initialize Repositories
	store := postgres.NewStore(db)

	// Initialize Security
	tokenManager := security.NewTokenManager(cfg.JWT.Secret, cfg.JWT.AccessTokenExpiry, cfg.JWT.RefreshTokenExpiry)

	// Initialize Storage Service
	var storageService storage.StorageInterface
	if cfg.Storage.Type == "" || cfg.Storage.Type == "mock" {
		logger.Info("Using mock storage (local filesystem)", "upload_dir", cfg.Storage.UploadDir)
		mockStorage, err := storage.NewMockStorageService(cfg.Storage.BaseURL, cfg.Storage.UploadDir)
		if err != nil {
			logger.Error("Failed to initialize mock storage", "error", err)
			log.Fatalf("Failed to initialize mock storage: %v", err)
		}
		storageService = mockStorage
	} else {
		logger.Error("Unsupported storage type", "type", cfg.Storage.Type)
		log.Fatalf("Storage type '%s' not yet implemented", cfg.Storage.Type)
	}

	// Initialize Email Service
	emailSvc := service.NewEmailService(
		cfg.SMTP.Host,
		cfg.SMTP.Port,
		cfg.SMTP.User,
		cfg.SMTP.Password,
		cfg.SMTP.From,
	)

	// Initialize Services
	locks := service.NewEventLocks()
	authSvc := service.NewAuthService(store.UserRepository, tokenManager)
	accessSvc := service.NewAccessService(
		store.EventRepository,
		store.CollaboratorRepository,
		store.GuestRepository,
		store.UserRepository,
		locks,
	)
	eventSvc := service.NewEventService(
		store.EventRepository,
		store.GuestRepository,
		store.CollaboratorRepository,
		accessSvc,
		cfg.Packages,
	)
	rosterSvc := service.NewRosterService(
		store.EventRepository,
		store.GuestRepository,
		store.CollaboratorRepository,
		accessSvc,
		locks,
	)
	dispatchSvc := service.NewDispatchService(
		store.EventRepository,
		store.GuestRepository,
		accessSvc,
		locks,
	)
	approvalSvc := service.NewApprovalService(
		store.EventRepository,
		store.CardAssetRepository,
		store.UserRepository,
		emailSvc,
		locks,
	)
	assetSvc := service.NewCardAssetService(
		store.CardAssetRepository,
		store.EventRepository,
		store.UserRepository,
		storageService,
	)

	// Initialize HTTP handlers
	handlers := httpapi.Handlers{
		Auth:         httpapi.NewAuthHandler(authSvc),
		Event:        httpapi.NewEventHandler(eventSvc),
		Guest:        httpapi.NewGuestHandler(rosterSvc, dispatchSvc),
		Collaborator: httpapi.NewCollaboratorHandler(accessSvc),
		Admin:        httpapi.NewAdminHandler(approvalSvc, assetSvc),
	}
	authMiddleware := httpapi.NewAuthMiddleware(tokenManager)

	router := mux.NewRouter()
	httpapi.RegisterRoutes(router, handlers, authMiddleware)

	// Mock storage upload/download endpoints share the API server
	if cfg.Storage.Type == "" || cfg.Storage.Type == "mock" {
		httpapi.RegisterMockStorageRoutes(router, storageService.(*storage.MockStorageService))
	}

	logger.Info("HTTP server listening", "address", cfg.GetServerAddress())
	if err := http.ListenAndServe(cfg.GetServerAddress(), router); err != nil {
		logger.Error("HTTP server error", "error", err)
		log.Fatalf("Failed to serve: %v", err)
	}
}
