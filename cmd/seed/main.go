package main

import (
	"context"
	"database/sql"
	"encoding/json"
	"flag"
	"log"
	"os"
	"path/filepath"

	"bloqpoint-backend/internal/config"
	"bloqpoint-backend/internal/domain"
	"bloqpoint-backend/internal/logger"
	"bloqpoint-backend/internal/repository/postgres"

	_ "github.com/lib/pq"
)

// Bulk fixture loader. Fixture rows carry explicit ids and states and are
// inserted as-is, bypassing the lifecycle services.
func main() {
	configPath := flag.String("config", "config/config.dev.yaml", "Path to configuration file")
	dataDir := flag.String("data", "data", "Directory containing bloqs.json, lockers.json and rents.json")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger.Initialize(cfg.Log.Level, cfg.Log.Format)
	logger.Info("Starting Bloqpoint Seeder...", "data_dir", *dataDir)

	var bloqs []domain.Bloq
	var lockers []domain.Locker
	var rents []domain.Rent
	if err := readFixture(filepath.Join(*dataDir, "bloqs.json"), &bloqs); err != nil {
		log.Fatalf("Failed to read bloqs fixture: %v", err)
	}
	if err := readFixture(filepath.Join(*dataDir, "lockers.json"), &lockers); err != nil {
		log.Fatalf("Failed to read lockers fixture: %v", err)
	}
	if err := readFixture(filepath.Join(*dataDir, "rents.json"), &rents); err != nil {
		log.Fatalf("Failed to read rents fixture: %v", err)
	}

	db, err := sql.Open("postgres", cfg.GetDatabaseConnectionString())
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		log.Fatalf("Failed to ping database: %v", err)
	}

	store := postgres.NewStore(db)
	ctx := context.Background()

	for i := range bloqs {
		if err := store.BloqRepository.Create(ctx, &bloqs[i]); err != nil {
			log.Fatalf("Failed to insert bloq %s: %v", bloqs[i].ID, err)
		}
	}
	logger.Info("Inserted bloqs", "count", len(bloqs))

	for i := range lockers {
		if err := store.LockerRepository.Create(ctx, &lockers[i]); err != nil {
			log.Fatalf("Failed to insert locker %s: %v", lockers[i].ID, err)
		}
	}
	logger.Info("Inserted lockers", "count", len(lockers))

	for i := range rents {
		if err := store.RentRepository.Create(ctx, &rents[i]); err != nil {
			log.Fatalf("Failed to insert rent %s: %v", rents[i].ID, err)
		}
	}
	logger.Info("Inserted rents", "count", len(rents))

	logger.Info("Database seeded successfully")
}

func readFixture(path string, dst any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return json.Unmarshal(data, dst)
}
