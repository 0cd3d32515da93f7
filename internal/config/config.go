package config

import (
	"os"
)

type Config struct {
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string
	// Shared id sequence; empty means the schema default
	IDSequence string
	// Logging
	LogLevel    string
	LogFormat   string
	ServiceName string
	// Default console app config seeded for SeedRealm when none exists
	SeedRealm          string
	SeedInitialURL     string
	SeedURL            string
	SeedMenuEnabled    string // "true"/"false"
	SeedMenuPosition   string
	SeedMenuImage      string
	SeedPrimaryColor   string
	SeedSecondaryColor string
	SeedLinks          string // JSON array of {displayText, pageLink}
}

func Load() *Config {
	return &Config{
		DBHost:             getenv("DB_HOST", "localhost"),
		DBPort:             getenv("DB_PORT", "5432"),
		DBUser:             getenv("DB_USER", "postgres"),
		DBPassword:         getenv("DB_PASSWORD", "postgres"),
		DBName:             getenv("DB_NAME", "console_app_db"),
		DBSSLMode:          getenv("DB_SSLMODE", "disable"),
		IDSequence:         getenv("ID_SEQUENCE", ""),
		LogLevel:           getenv("LOG_LEVEL", "info"),
		LogFormat:          getenv("LOG_FORMAT", "json"),
		ServiceName:        getenv("SERVICE_NAME", "console-app-backend"),
		SeedRealm:          getenv("SEED_REALM", ""),
		SeedInitialURL:     getenv("SEED_INITIAL_URL", "/"),
		SeedURL:            getenv("SEED_URL", ""),
		SeedMenuEnabled:    getenv("SEED_MENU_ENABLED", "true"),
		SeedMenuPosition:   getenv("SEED_MENU_POSITION", "BOTTOM_LEFT"),
		SeedMenuImage:      getenv("SEED_MENU_IMAGE", "menu.png"),
		SeedPrimaryColor:   getenv("SEED_PRIMARY_COLOR", "#4d9d2a"),
		SeedSecondaryColor: getenv("SEED_SECONDARY_COLOR", "#ffffff"),
		SeedLinks:          getenv("SEED_LINKS", ""),
	}
}

func getenv(key, fallback string) string {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	return v
}
