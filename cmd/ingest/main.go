package main

import (
	"context"
	"flag"
	"log"
	"os"
	"time"

	"staff-planner/internal/config"
	"staff-planner/internal/database/migration"
	dbpostgres "staff-planner/internal/database/postgres"
	"staff-planner/internal/ingest"
	"staff-planner/internal/logging"
	"staff-planner/migrations"
)

func main() {
	file := flag.String("file", "planning.json", "path to the planning JSON export")
	timeout := flag.Duration("timeout", 5*time.Minute, "overall ingest timeout")
	flag.Parse()

	cfg, err := config.Load(os.Getenv("CONFIG_FILE"))
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := logging.New(cfg.App.Environment)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer func() {
		_ = logger.Sync()
	}()

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	db, err := dbpostgres.Connect(ctx, cfg.Database)
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}
	defer func() {
		_ = db.Close()
	}()

	if err := migration.Run(ctx, db.SQLDB(), migrations.FS); err != nil {
		log.Fatalf("failed to run migrations: %v", err)
	}

	if err := ingest.NewLoader(db, logger).Run(ctx, *file); err != nil {
		log.Fatalf("ingest failed: %v", err)
	}
}
