package main

import (
	"context"
	"log"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/zaqqye/console_app_backend/internal/config"
	"github.com/zaqqye/console_app_backend/internal/database"
	"github.com/zaqqye/console_app_backend/internal/logger"
	"github.com/zaqqye/console_app_backend/internal/models"
	"github.com/zaqqye/console_app_backend/internal/repository/postgres"
)

func main() {
	// Load .env (non-fatal if missing in production)
	_ = godotenv.Load()

	cfg := config.Load()

	lg, err := logger.NewLogger(cfg.LogLevel, cfg.LogFormat, cfg.ServiceName)
	if err != nil {
		log.Fatalf("logger init failed: %v", err)
	}
	defer func() { _ = lg.Sync() }()

	db, err := database.Connect(cfg)
	if err != nil {
		lg.Fatal("database connection failed", zap.Error(err))
	}

	if err := database.Migrate(db, cfg.IDSequence); err != nil {
		lg.Fatal("database schema setup failed", zap.Error(err))
	}

	sequence := cfg.IDSequence
	if sequence == "" {
		sequence = models.ConsoleAppConfigSchema.Sequence
	}
	ids := postgres.NewSequenceIDGenerator(db, sequence)
	repo := postgres.NewConsoleAppConfigRepository(db, ids, lg)

	if err := database.SeedConsoleAppConfig(context.Background(), repo, cfg, lg); err != nil {
		lg.Fatal("console app config seed failed", zap.Error(err))
	}

	lg.Info("console app config store ready", zap.String("db", cfg.DBName), zap.String("sequence", sequence))
}
