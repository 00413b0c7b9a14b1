package database

import (
	"fmt"
	"strings"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/andrescamacho/wakfudb/internal/adapters/persistence"
	"github.com/andrescamacho/wakfudb/internal/infrastructure/config"
)

// NewConnection creates a new database connection from configuration.
// TranslateError is enabled so constraint violations surface as
// gorm.ErrDuplicatedKey / gorm.ErrForeignKeyViolated rather than
// driver-specific messages.
func NewConnection(cfg *config.DatabaseConfig) (*gorm.DB, error) {
	var dialector gorm.Dialector

	switch cfg.Type {
	case "postgres":
		// Use URL if provided, otherwise build DSN from individual fields
		var dsn string
		if cfg.URL != "" {
			dsn = cfg.URL
		} else {
			dsn = fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
				cfg.Host, cfg.Port, cfg.User, cfg.Password, cfg.Name, cfg.SSLMode)
		}
		dialector = postgres.Open(dsn)

	case "sqlite":
		// Use Path for SQLite (file path or ":memory:"). Foreign key
		// enforcement is off by default in SQLite and the materializer
		// depends on it.
		path := cfg.Path
		if path == "" {
			path = ":memory:"
		}
		if !strings.Contains(path, "?") {
			path += "?_foreign_keys=on"
		}
		dialector = sqlite.Open(path)

	default:
		return nil, fmt.Errorf("unsupported database type: %s", cfg.Type)
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Configure connection pool (only for PostgreSQL)
	if cfg.Type == "postgres" {
		sqlDB, err := db.DB()
		if err != nil {
			return nil, fmt.Errorf("failed to get underlying db: %w", err)
		}

		sqlDB.SetMaxOpenConns(cfg.Pool.MaxOpen)
		sqlDB.SetMaxIdleConns(cfg.Pool.MaxIdle)
		sqlDB.SetConnMaxLifetime(cfg.Pool.MaxLifetime)
	}

	return db, nil
}

// NewTestConnection creates an in-memory SQLite database for testing
func NewTestConnection() (*gorm.DB, error) {
	cfg := &config.DatabaseConfig{
		Type: "sqlite",
		Path: ":memory:",
	}

	db, err := NewConnection(cfg)
	if err != nil {
		return nil, err
	}

	if err := AutoMigrate(db); err != nil {
		return nil, fmt.Errorf("failed to auto-migrate test database: %w", err)
	}

	return db, nil
}

// AutoMigrate creates the full normalized schema. Models are migrated
// reference-tables-first so foreign key constraints on dependents can be
// created.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&persistence.ActionModel{},
		&persistence.ActionDescriptionModel{},
		&persistence.ItemTypeModel{},
		&persistence.ItemTypeTitleModel{},
		&persistence.ItemPropertyModel{},
		&persistence.StateModel{},
		&persistence.StateTitleModel{},
		&persistence.StateDescriptionModel{},
		&persistence.ItemModel{},
		&persistence.ItemTitleModel{},
		&persistence.ItemDescriptionModel{},
		&persistence.ItemDefinitionModel{},
		&persistence.ItemParametersModel{},
		&persistence.BaseParametersModel{},
		&persistence.UseParametersModel{},
		&persistence.GraphicParametersModel{},
		&persistence.ItemEffectModel{},
		&persistence.EffectDescriptionModel{},
		&persistence.UseEffectModel{},
		&persistence.UseCriticalEffectModel{},
		&persistence.EquipEffectModel{},
	)
}

// Close closes the database connection
func Close(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
