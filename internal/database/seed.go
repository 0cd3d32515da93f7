package database

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"go.uber.org/zap"

	"github.com/zaqqye/console_app_backend/internal/config"
	"github.com/zaqqye/console_app_backend/internal/models"
	"github.com/zaqqye/console_app_backend/internal/repository"
)

// SeedConsoleAppConfig stores a default config for cfg.SeedRealm unless the
// realm already has one. An empty SeedRealm disables seeding.
func SeedConsoleAppConfig(ctx context.Context, repo repository.ConsoleAppConfigRepository, cfg *config.Config, logger *zap.Logger) error {
	if cfg.SeedRealm == "" {
		return nil
	}
	_, err := repo.GetByRealm(ctx, cfg.SeedRealm)
	if err == nil {
		return nil
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return err
	}

	appCfg, err := seedConfig(cfg)
	if err != nil {
		return err
	}
	if err := repo.Save(ctx, appCfg); err != nil {
		return err
	}
	logger.Info("seeded console app config",
		zap.String("realm", appCfg.Realm()),
		zap.Int64("id", appCfg.ID()),
		zap.Int("links", len(appCfg.Links())),
	)
	return nil
}

func seedConfig(cfg *config.Config) (*models.ConsoleAppConfig, error) {
	menuEnabled, err := strconv.ParseBool(cfg.SeedMenuEnabled)
	if err != nil {
		return nil, fmt.Errorf("SEED_MENU_ENABLED: %w", err)
	}
	position, err := models.ParseMenuPosition(cfg.SeedMenuPosition)
	if err != nil {
		return nil, fmt.Errorf("SEED_MENU_POSITION: %w", err)
	}
	links, err := models.ParseAppLinks([]byte(cfg.SeedLinks))
	if err != nil {
		return nil, fmt.Errorf("SEED_LINKS: %w", err)
	}
	return models.NewConsoleAppConfig(
		cfg.SeedRealm,
		cfg.SeedInitialURL,
		cfg.SeedURL,
		menuEnabled,
		position,
		cfg.SeedMenuImage,
		cfg.SeedPrimaryColor,
		cfg.SeedSecondaryColor,
		links,
	), nil
}
