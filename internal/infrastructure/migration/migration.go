// Package migration creates and evolves the database schema.
package migration

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"modcms/internal/infrastructure/persistence/seeds"
	"modcms/internal/shared/logger"
)

// ScriptsDir is where `migrate create` writes new scripts, relative to the
// repository root.
const ScriptsDir = "internal/infrastructure/migration/scripts"

// Manager runs the strategy matching the database driver and seeds the
// default language afterwards.
type Manager struct {
	strategy        Strategy
	defaultLanguage string
	logger          logger.Interface
}

// NewManager picks goose for mysql and postgres and auto-migrate for sqlite.
func NewManager(driver, defaultLanguage string, log logger.Interface) (*Manager, error) {
	var strategy Strategy
	switch driver {
	case "", "mysql":
		strategy = NewGooseStrategy("mysql", log)
	case "postgres":
		strategy = NewGooseStrategy("postgres", log)
	case "sqlite":
		strategy = NewAutoMigrateStrategy(log)
	default:
		return nil, fmt.Errorf("unsupported database driver %q", driver)
	}
	return NewManagerWithStrategy(strategy, defaultLanguage, log), nil
}

func NewManagerWithStrategy(strategy Strategy, defaultLanguage string, log logger.Interface) *Manager {
	return &Manager{
		strategy:        strategy,
		defaultLanguage: defaultLanguage,
		logger:          log.With("component", "migration.manager"),
	}
}

// Migrate applies the schema, then seeds the default language.
func (m *Manager) Migrate(ctx context.Context, db *gorm.DB) error {
	m.logger.Infow("starting database migration", "strategy", m.strategy.Name())

	if err := m.strategy.Migrate(ctx, db); err != nil {
		m.logger.Errorw("migration failed", "strategy", m.strategy.Name(), "error", err)
		return fmt.Errorf("migration failed with strategy %s: %w", m.strategy.Name(), err)
	}

	if m.defaultLanguage != "" {
		if err := seeds.SeedDefaultLanguage(db.WithContext(ctx), m.defaultLanguage); err != nil {
			return fmt.Errorf("failed to seed default language: %w", err)
		}
	}

	m.logger.Infow("database migration completed", "strategy", m.strategy.Name())
	return nil
}

// Strategy returns the strategy in use.
func (m *Manager) Strategy() Strategy {
	return m.strategy
}

// Goose returns the goose strategy, or nil when the driver uses auto-migrate.
func (m *Manager) Goose() *GooseStrategy {
	g, _ := m.strategy.(*GooseStrategy)
	return g
}
