package database

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/zaqqye/console_app_backend/internal/config"
	"github.com/zaqqye/console_app_backend/internal/models"
	"github.com/zaqqye/console_app_backend/internal/repository"
)

// memRepo keeps configs in memory and hands out ids from a counter.
type memRepo struct {
	byID   map[int64]models.ConsoleAppConfig
	nextID int64
	getErr error
}

func newMemRepo() *memRepo {
	return &memRepo{byID: map[int64]models.ConsoleAppConfig{}, nextID: 100}
}

func (m *memRepo) GetByID(ctx context.Context, id int64) (*models.ConsoleAppConfig, error) {
	cfg, ok := m.byID[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &cfg, nil
}

func (m *memRepo) GetByRealm(ctx context.Context, realm string) (*models.ConsoleAppConfig, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}
	cfgs, _ := m.ListByRealm(ctx, realm)
	if len(cfgs) == 0 {
		return nil, repository.ErrNotFound
	}
	return cfgs[0], nil
}

func (m *memRepo) ListByRealm(ctx context.Context, realm string) ([]*models.ConsoleAppConfig, error) {
	var out []*models.ConsoleAppConfig
	for id := int64(0); id < m.nextID; id++ {
		if cfg, ok := m.byID[id]; ok && cfg.Realm() == realm {
			c := cfg
			out = append(out, &c)
		}
	}
	return out, nil
}

func (m *memRepo) Save(ctx context.Context, cfg *models.ConsoleAppConfig) error {
	row := models.ToRow(cfg)
	if missing := row.MissingRequired(); len(missing) > 0 {
		return repository.ErrConstraintViolation
	}
	if row.ID == 0 {
		row.ID = m.nextID
		m.nextID++
	}
	saved, err := row.Entity()
	if err != nil {
		return err
	}
	*cfg = *saved
	m.byID[row.ID] = *saved
	return nil
}

func (m *memRepo) Delete(ctx context.Context, id int64) error {
	if _, ok := m.byID[id]; !ok {
		return repository.ErrNotFound
	}
	delete(m.byID, id)
	return nil
}

func seedTestConfig() *config.Config {
	return &config.Config{
		SeedRealm:          "acme",
		SeedInitialURL:     "/home",
		SeedURL:            "https://acme.example",
		SeedMenuEnabled:    "true",
		SeedMenuPosition:   "TOP_RIGHT",
		SeedMenuImage:      "icon.png",
		SeedPrimaryColor:   "#112233",
		SeedSecondaryColor: "#445566",
		SeedLinks:          `[{"displayText":"Support","pageLink":"/support"},{"displayText":"Docs","pageLink":"/docs"}]`,
	}
}

func TestSeedConsoleAppConfig_CreatesDefault(t *testing.T) {
	repo := newMemRepo()

	require.NoError(t, SeedConsoleAppConfig(context.Background(), repo, seedTestConfig(), zap.NewNop()))

	cfg, err := repo.GetByRealm(context.Background(), "acme")
	require.NoError(t, err)
	assert.Equal(t, int64(100), cfg.ID())
	assert.Equal(t, "/home", cfg.InitialURL())
	assert.Equal(t, "https://acme.example", cfg.URL())
	assert.True(t, cfg.MenuEnabled())
	assert.Equal(t, models.MenuPositionTopRight, cfg.MenuPosition())
	assert.Equal(t, "icon.png", cfg.MenuImage())
	assert.Equal(t, "#112233", cfg.PrimaryColor())
	assert.Equal(t, "#445566", cfg.SecondaryColor())
	require.Len(t, cfg.Links(), 2)
	assert.Equal(t, "Support", cfg.Links()[0].DisplayText())
	assert.Equal(t, "/docs", cfg.Links()[1].PageLink())
}

func TestSeedConsoleAppConfig_SkipsExistingRealm(t *testing.T) {
	repo := newMemRepo()
	existing := models.NewConsoleAppConfig("acme", "/", "https://old.example", false,
		models.MenuPositionBottomLeft, "old.png", "red", "blue", nil)
	require.NoError(t, repo.Save(context.Background(), existing))

	require.NoError(t, SeedConsoleAppConfig(context.Background(), repo, seedTestConfig(), zap.NewNop()))

	cfgs, err := repo.ListByRealm(context.Background(), "acme")
	require.NoError(t, err)
	require.Len(t, cfgs, 1)
	assert.Equal(t, "https://old.example", cfgs[0].URL())
}

func TestSeedConsoleAppConfig_DisabledWithoutRealm(t *testing.T) {
	repo := newMemRepo()
	cfg := seedTestConfig()
	cfg.SeedRealm = ""

	require.NoError(t, SeedConsoleAppConfig(context.Background(), repo, cfg, zap.NewNop()))
	assert.Empty(t, repo.byID)
}

func TestSeedConsoleAppConfig_InvalidSettings(t *testing.T) {
	cases := map[string]func(*config.Config){
		"menu enabled":  func(c *config.Config) { c.SeedMenuEnabled = "maybe" },
		"menu position": func(c *config.Config) { c.SeedMenuPosition = "CENTER" },
		"links":         func(c *config.Config) { c.SeedLinks = `{"displayText":"x"}` },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			repo := newMemRepo()
			cfg := seedTestConfig()
			mutate(cfg)

			err := SeedConsoleAppConfig(context.Background(), repo, cfg, zap.NewNop())
			require.Error(t, err)
			assert.Empty(t, repo.byID)
		})
	}
}

func TestSeedConsoleAppConfig_EmptyURLIsStored(t *testing.T) {
	repo := newMemRepo()
	cfg := seedTestConfig()
	cfg.SeedURL = ""

	require.NoError(t, SeedConsoleAppConfig(context.Background(), repo, cfg, zap.NewNop()))
	require.Len(t, repo.byID, 1)
	for _, stored := range repo.byID {
		assert.Equal(t, "", stored.URL())
	}
}

func TestSeedConsoleAppConfig_LookupError(t *testing.T) {
	repo := newMemRepo()
	repo.getErr = errors.New("connection reset")

	err := SeedConsoleAppConfig(context.Background(), repo, seedTestConfig(), zap.NewNop())
	assert.EqualError(t, err, "connection reset")
	assert.Empty(t, repo.byID)
}
