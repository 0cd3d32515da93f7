package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/zaqqye/console_app_backend/internal/models"
	"github.com/zaqqye/console_app_backend/internal/repository"
)

type consoleAppConfigRepository struct {
	db     *gorm.DB
	ids    repository.IDGenerator
	logger *zap.Logger
}

func NewConsoleAppConfigRepository(db *gorm.DB, ids repository.IDGenerator, logger *zap.Logger) repository.ConsoleAppConfigRepository {
	return &consoleAppConfigRepository{db: db, ids: ids, logger: logger}
}

func (r *consoleAppConfigRepository) GetByID(ctx context.Context, id int64) (*models.ConsoleAppConfig, error) {
	var row models.ConsoleAppConfigRow
	if err := r.db.WithContext(ctx).First(&row, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get console app config: %w", models.MalformedLinks(err))
	}
	return r.toEntity(row)
}

func (r *consoleAppConfigRepository) GetByRealm(ctx context.Context, realm string) (*models.ConsoleAppConfig, error) {
	var row models.ConsoleAppConfigRow
	err := r.db.WithContext(ctx).
		Where("realm = ?", realm).
		Order("id").
		Take(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get console app config for realm %q: %w", realm, models.MalformedLinks(err))
	}
	return r.toEntity(row)
}

func (r *consoleAppConfigRepository) ListByRealm(ctx context.Context, realm string) ([]*models.ConsoleAppConfig, error) {
	var rows []models.ConsoleAppConfigRow
	err := r.db.WithContext(ctx).
		Where("realm = ?", realm).
		Order("id").
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list console app configs for realm %q: %w", realm, models.MalformedLinks(err))
	}
	cfgs := make([]*models.ConsoleAppConfig, 0, len(rows))
	for _, row := range rows {
		cfg, err := r.toEntity(row)
		if err != nil {
			return nil, err
		}
		cfgs = append(cfgs, cfg)
	}
	return cfgs, nil
}

func (r *consoleAppConfigRepository) Save(ctx context.Context, cfg *models.ConsoleAppConfig) error {
	row := models.ToRow(cfg)
	if missing := row.MissingRequired(); len(missing) > 0 {
		return fmt.Errorf("%w: %s", repository.ErrConstraintViolation, strings.Join(missing, ", "))
	}
	if _, err := row.Entity(); err != nil {
		return err
	}
	if row.ID == 0 {
		return r.insert(ctx, cfg, row)
	}
	return r.update(ctx, row)
}

func (r *consoleAppConfigRepository) insert(ctx context.Context, cfg *models.ConsoleAppConfig, row models.ConsoleAppConfigRow) error {
	id, err := r.ids.NextID(ctx)
	if err != nil {
		return fmt.Errorf("failed to allocate console app config id: %w", err)
	}
	row.ID = id
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		r.logger.Error("insert console app config failed", zap.String("realm", row.Realm), zap.Error(err))
		return fmt.Errorf("failed to create console app config: %w", err)
	}
	saved, err := row.Entity()
	if err != nil {
		return err
	}
	*cfg = *saved
	r.logger.Info("console app config created", zap.Int64("id", id), zap.String("realm", row.Realm))
	return nil
}

func (r *consoleAppConfigRepository) update(ctx context.Context, row models.ConsoleAppConfigRow) error {
	res := r.db.WithContext(ctx).Select("*").Updates(&row)
	if res.Error != nil {
		r.logger.Error("update console app config failed", zap.Int64("id", row.ID), zap.Error(res.Error))
		return fmt.Errorf("failed to update console app config: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return repository.ErrNotFound
	}
	r.logger.Info("console app config updated", zap.Int64("id", row.ID), zap.String("realm", row.Realm))
	return nil
}

func (r *consoleAppConfigRepository) Delete(ctx context.Context, id int64) error {
	res := r.db.WithContext(ctx).Delete(&models.ConsoleAppConfigRow{}, id)
	if res.Error != nil {
		return fmt.Errorf("failed to delete console app config: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return repository.ErrNotFound
	}
	r.logger.Info("console app config deleted", zap.Int64("id", id))
	return nil
}

func (r *consoleAppConfigRepository) toEntity(row models.ConsoleAppConfigRow) (*models.ConsoleAppConfig, error) {
	cfg, err := row.Entity()
	if err != nil {
		r.logger.Warn("stored console app config is invalid", zap.Int64("id", row.ID), zap.Error(err))
		return nil, fmt.Errorf("failed to map console app config %d: %w", row.ID, err)
	}
	return cfg, nil
}
