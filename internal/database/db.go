package database

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/zaqqye/console_app_backend/internal/config"
	"github.com/zaqqye/console_app_backend/internal/models"
)

func Connect(cfg *config.Config) (*gorm.DB, error) {
	dsn := fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=%s TimeZone=UTC",
		cfg.DBHost, cfg.DBUser, cfg.DBPassword, cfg.DBName, cfg.DBPort, cfg.DBSSLMode,
	)
	return gorm.Open(postgres.Open(dsn), &gorm.Config{})
}

// Migrate creates the shared id sequence and the console_app_config table
// from models.ConsoleAppConfigSchema when they do not exist yet.
func Migrate(db *gorm.DB, sequence string) error {
	schema := models.ConsoleAppConfigSchema
	stmts := []string{
		schema.CreateSequenceSQL(sequence),
		schema.CreateTableSQL(),
		schema.CreateIndexSQL(),
	}
	for _, stmt := range stmts {
		if err := db.Exec(stmt).Error; err != nil {
			return fmt.Errorf("failed to apply schema for %s: %w", schema.Table, err)
		}
	}
	return nil
}
