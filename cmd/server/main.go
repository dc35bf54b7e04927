package main

import (
	"database/sql"
	"flag"
	"log"
	"net/http"

	httpapi "bloqpoint-backend/internal/api/http"
	"bloqpoint-backend/internal/config"
	"bloqpoint-backend/internal/jobs"
	"bloqpoint-backend/internal/logger"
	"bloqpoint-backend/internal/repository/postgres"
	"bloqpoint-backend/internal/scheduler"
	"bloqpoint-backend/internal/service"

	_ "github.com/lib/pq"
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
	logger.Info("Starting Bloqpoint Backend...", "log_level", cfg.Log.Level, "log_format", cfg.Log.Format)
	logger.Info("Server configuration", "address", cfg.GetServerAddress())
	logger.Info("Database configuration", "host", cfg.Database.Host, "port", cfg.Database.Port, "database", cfg.Database.Database, "user", cfg.Database.User)

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

	// Initialize Services
	bloqSvc := service.NewBloqService(store.BloqRepository)
	lockerSvc := service.NewLockerService(store.LockerRepository, store.BloqRepository)
	rentSvc := service.NewRentService(store.RentRepository, lockerSvc)

	// Start the occupancy audit scheduler
	jobRunner := jobs.NewJobRunner(db, store, cfg)
	sched := scheduler.NewScheduler(jobRunner)
	sched.Start()
	defer sched.Stop()

	// Set up HTTP server
	router := httpapi.NewRouter(bloqSvc, lockerSvc, rentSvc)
	logger.Info("HTTP server listening", "address", cfg.GetServerAddress())
	if err := http.ListenAndServe(cfg.GetServerAddress(), router); err != nil {
		logger.Error("HTTP server error", "error", err)
		log.Fatalf("Failed to serve: %v", err)
	}
}
