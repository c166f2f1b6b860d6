// Package migrate applies the schema migrations under migrations/ with golang-migrate.
package migrate

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database"
	pgxmigrate "github.com/golang-migrate/migrate/v4/database/pgx/v5"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file" // file source for migrations
	_ "github.com/jackc/pgx/v5/stdlib"                   // "pgx" database/sql driver
	_ "github.com/lib/pq"                                // "postgres" database/sql driver
	"go.uber.org/zap"
)

const (
	DriverPostgres = "postgres"
	DriverPgx      = "pgx"
)

type Config struct {
	// Driver is the database/sql driver name, "postgres" (lib/pq) or "pgx".
	Driver         string
	DatabaseURL    string
	MigrationsPath string
}

type Runner struct {
	config *Config
	logger *zap.Logger
}

func NewRunner(config *Config, logger *zap.Logger) *Runner {
	if config.Driver == "" {
		config.Driver = DriverPostgres
	}
	return &Runner{
		config: config,
		logger: logger,
	}
}

// Run applies every pending migration.
func (r *Runner) Run() error {
	return r.withMigrate(func(m *migrate.Migrate) error {
		if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
			return fmt.Errorf("failed to run migrations: %w", err)
		}
		return r.checkClean(m)
	})
}

// Steps moves n migrations up, or -n down when n is negative.
func (r *Runner) Steps(n int) error {
	return r.withMigrate(func(m *migrate.Migrate) error {
		if err := m.Steps(n); err != nil && !errors.Is(err, migrate.ErrNoChange) {
			return fmt.Errorf("failed to migrate %d steps: %w", n, err)
		}
		return r.checkClean(m)
	})
}

// Rollback reverts the last applied migration.
func (r *Runner) Rollback() error {
	return r.Steps(-1)
}

// Version returns the current migration version; zero means no migration was applied.
func (r *Runner) Version() (version uint, dirty bool, err error) {
	err = r.withMigrate(func(m *migrate.Migrate) error {
		var verr error
		version, dirty, verr = m.Version()
		if errors.Is(verr, migrate.ErrNilVersion) {
			version, dirty = 0, false
			return nil
		}
		if verr != nil {
			return fmt.Errorf("failed to get version: %w", verr)
		}
		return nil
	})
	return version, dirty, err
}

func (r *Runner) checkClean(m *migrate.Migrate) error {
	version, dirty, err := m.Version()
	if errors.Is(err, migrate.ErrNilVersion) {
		r.logger.Info("No migrations applied")
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to get version: %w", err)
	}
	if dirty {
		return fmt.Errorf("database is in dirty state at version %d", version)
	}

	r.logger.Info("Database schema is up to date", zap.Uint("version", version))
	return nil
}

func (r *Runner) withMigrate(fn func(*migrate.Migrate) error) error {
	db, err := sql.Open(r.config.Driver, r.config.DatabaseURL)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer func() {
		if closeErr := db.Close(); closeErr != nil {
			r.logger.Warn("Failed to close migration connection", zap.Error(closeErr))
		}
	}()

	driver, err := r.databaseDriver(db)
	if err != nil {
		return err
	}

	m, err := migrate.NewWithDatabaseInstance(
		fmt.Sprintf("file://%s", r.config.MigrationsPath),
		r.config.Driver,
		driver,
	)
	if err != nil {
		return fmt.Errorf("failed to create migrate instance: %w", err)
	}

	return fn(m)
}

func (r *Runner) databaseDriver(db *sql.DB) (database.Driver, error) {
	switch r.config.Driver {
	case DriverPostgres:
		driver, err := postgres.WithInstance(db, &postgres.Config{})
		if err != nil {
			return nil, fmt.Errorf("failed to create postgres driver: %w", err)
		}
		return driver, nil
	case DriverPgx:
		driver, err := pgxmigrate.WithInstance(db, &pgxmigrate.Config{})
		if err != nil {
			return nil, fmt.Errorf("failed to create pgx driver: %w", err)
		}
		return driver, nil
	default:
		return nil, fmt.Errorf("unsupported migration driver %q", r.config.Driver)
	}
}
