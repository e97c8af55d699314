package database

import (
	"database/sql"
	"embed"
	"fmt"

	"atelie-backend/internal/logging"

	_ "github.com/lib/pq"
	"github.com/pressly/goose/v3"
	"go.uber.org/zap"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

const migrationsDir = "migrations"

type Migrator struct {
	db     *sql.DB
	logger *zap.Logger
}

func NewMigrator(dbURL string, logger *zap.Logger) (*Migrator, error) {
	db, err := sql.Open("postgres", dbURL)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &Migrator{db: db, logger: logger.Named("migrations")}, nil
}

// Run applies pending migrations: both tables plus the NOTIFY triggers that
// feed the live snapshots.
func (m *Migrator) Run() error {
	goose.SetBaseFS(migrationsFS)
	goose.SetLogger(logging.GooseLogger{Logger: m.logger.Sugar()})

	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("failed to set goose dialect: %w", err)
	}

	if err := goose.Up(m.db, migrationsDir); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	version, err := goose.GetDBVersion(m.db)
	if err != nil {
		return fmt.Errorf("failed to get migration version: %w", err)
	}
	m.logger.Info("schema up to date", zap.Int64("version", version))
	return nil
}

func (m *Migrator) Close() error {
	return m.db.Close()
}
