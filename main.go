package main

import (
	"context"
	"log"
	"os"

	"freqsync/adapters/excel"
	"freqsync/adapters/postgres"
	"freqsync/app"
	"freqsync/internal/config"
	"freqsync/internal/errors"
	"freqsync/internal/migration"
	"freqsync/models"
	"freqsync/ports"

	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
)

// initDatabase initializes the PostgreSQL database connection
func initDatabase(appConfig *config.Config) (*sqlx.DB, error) {
	db, err := sqlx.Connect("postgres", appConfig.Database.URL)
	if err != nil {
		return nil, errors.Wrap(err, "failed to connect to database")
	}

	if err := db.Ping(); err != nil {
		return nil, errors.Wrap(err, "failed to ping database")
	}

	migrator := migration.NewRunner()
	if err := migrator.Run(context.Background(), db); err != nil {
		return nil, errors.Wrap(err, "database migration failed")
	}

	return db, nil
}

func main() {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	appConfig, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := initDatabase(appConfig)
	if err != nil {
		log.Fatal("Failed to initialize database:", err)
	}
	defer db.Close()

	ctx := context.Background()
	run := models.NewSyncRun(appConfig.Plan.FilePath)

	// Stage 1: extract
	planConfig := excel.DefaultConfig()
	planConfig.FilePath = appConfig.Plan.FilePath
	planConfig.Sheet = appConfig.Plan.Sheet
	planConfig.Marker = appConfig.Plan.Marker

	var reader ports.PlanReader = excel.NewPlanReader(planConfig)
	extract, err := reader.Read()
	if err != nil {
		log.Printf("Plan extraction failed: %v", err)
		extract = &ports.Extract{}
	}
	run.RowsScanned = extract.RowsScanned
	run.RowsSkipped = extract.RowsSkipped

	// Stage 2: synchronize
	channelRepo := postgres.NewChannelRepository(db)
	syncer := app.NewSyncService(channelRepo)
	result, syncErr := syncer.Sync(ctx, extract.Records)
	if syncErr != nil {
		log.Printf("Synchronization aborted: %v", syncErr)
	}
	run.RowsInserted = result.Inserted
	run.RowsUpdated = result.Updated

	// Stage 3: report (attempted regardless of sync outcome)
	reporter := app.NewReportService(channelRepo, os.Stdout)
	if err := reporter.Report(ctx); err != nil {
		log.Printf("Report failed: %v", err)
	}

	if syncErr != nil {
		run.Fail(syncErr)
	} else {
		run.Complete()
	}
	if err := postgres.NewSyncRunRepository(db).Record(ctx, run); err != nil {
		log.Printf("Failed to record sync run: %v", err)
	}

	log.Printf("Sync run %s finished: %d scanned, %d skipped, %d inserted, %d updated",
		run.ID, run.RowsScanned, run.RowsSkipped, run.RowsInserted, run.RowsUpdated)
}
