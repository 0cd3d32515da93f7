package repository

import (
	"context"
	"errors"

	"github.com/zaqqye/console_app_backend/internal/models"
)

var (
	ErrNotFound            = errors.New("console app config not found")
	ErrConstraintViolation = errors.New("required field missing")
)

type ConsoleAppConfigRepository interface {
	GetByID(ctx context.Context, id int64) (*models.ConsoleAppConfig, error)
	// GetByRealm returns the realm's config with the lowest id.
	GetByRealm(ctx context.Context, realm string) (*models.ConsoleAppConfig, error)
	ListByRealm(ctx context.Context, realm string) ([]*models.ConsoleAppConfig, error)
	// Save inserts a config whose ID is zero, assigning it a new id, and
	// updates it otherwise.
	Save(ctx context.Context, cfg *models.ConsoleAppConfig) error
	Delete(ctx context.Context, id int64) error
}

// IDGenerator hands out ids from a sequence shared across entities.
type IDGenerator interface {
	NextID(ctx context.Context) (int64, error)
}
