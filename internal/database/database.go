package database

import (
	"fmt"
	"log/slog"
	"time"

	"budget-engine/internal/config"
	"budget-engine/internal/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type DB struct {
	*gorm.DB
	config *config.DatabaseConfig
}

func New(cfg *config.DatabaseConfig, logLevel logger.LogLevel) (*DB, error) {
	gormConfig := &gorm.Config{
		Logger:         logger.Default.LogMode(logLevel),
		TranslateError: true,
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	}

	db, err := gorm.Open(postgres.Open(cfg.DSN()), gormConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get sql.DB: %w", err)
	}

	sqlDB.SetMaxOpenConns(cfg.MaxConnections)
	sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(cfg.ConnMaxLifetime)

	if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &DB{
		DB:     db,
		config: cfg,
	}, nil
}

func (db *DB) AutoMigrate() error {
	return db.DB.AutoMigrate(
		&models.Budget{},
		&models.Transaction{},
	)
}

func (db *DB) Close() error {
	sqlDB, err := db.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func (db *DB) HealthCheck() error {
	sqlDB, err := db.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Ping()
}

func (db *DB) CreateIndexes() error {
	queries := []string{
		"CREATE UNIQUE INDEX IF NOT EXISTS idx_budgets_user_id ON budgets(user_id)",
		"CREATE INDEX IF NOT EXISTS idx_budgets_created_at ON budgets(created_at)",
		"CREATE INDEX IF NOT EXISTS idx_bank_transactions_user_date ON bank_transactions(user_id, date)",
		"CREATE INDEX IF NOT EXISTS idx_bank_transactions_account_id ON bank_transactions(account_id)",
	}

	for _, query := range queries {
		if err := db.DB.Exec(query).Error; err != nil {
			slog.Warn("failed to create index", "query", query, "error", err)
		}
	}

	return nil
}

func (db *DB) migrateSchema(runner *MigrationRunner, runSQLMigrations bool) error {
	if runSQLMigrations {
		err := runner.Run()
		if err == nil {
			return nil
		}
		slog.Warn("migration runner failed, falling back to AutoMigrate", "error", err)
	}

	if err := db.AutoMigrate(); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}
	return nil
}

// Initialize creates the connection and brings the schema up to date. SQL
// migrations run first; AutoMigrate is the fallback when they fail.
func Initialize(cfg *config.Config) (*DB, error) {
	logLevel := logger.Warn
	if cfg.IsDevelopment() {
		logLevel = logger.Info
	}

	db, err := New(&cfg.Database, logLevel)
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get sql.DB: %w", err)
	}

	runner := NewMigrationRunner(sqlDB, cfg.Database.SeedDatabase, slog.Default())
	if err := db.migrateSchema(runner, cfg.Database.RunMigrations); err != nil {
		return nil, err
	}

	if err := db.CreateIndexes(); err != nil {
		slog.Warn("failed to create some indexes", "error", err)
	}

	slog.Info("database initialized", "host", cfg.Database.Host, "name", cfg.Database.Name)

	return db, nil
}
