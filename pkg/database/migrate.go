package database

import (
	"database/sql"
	"errors"
	"fmt"

	migrate "github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	_ "github.com/jackc/pgx/v5/stdlib"
)

// MigrationDirection selects which way RunMigrations moves the schema.
type MigrationDirection string

const (
	MigrateUp   MigrationDirection = "up"
	MigrateDown MigrationDirection = "down"
)

// RunMigrations applies the migrations found at sourceURL (e.g.
// "file://migrations") over a dedicated connection, closed on return.
// It reports whether the schema changed.
func RunMigrations(databaseURL, sourceURL string, dir MigrationDirection) (bool, error) {
	if dir != MigrateUp && dir != MigrateDown {
		return false, fmt.Errorf("unknown migration direction %q", dir)
	}

	migrationDB, err := sql.Open("pgx", databaseURL)
	if err != nil {
		return false, fmt.Errorf("open database for migrations: %w", err)
	}
	if err := migrationDB.Ping(); err != nil {
		migrationDB.Close()
		return false, fmt.Errorf("ping database for migrations: %w", err)
	}

	// The driver owns migrationDB from here on and closes it with m.
	driver, err := postgres.WithInstance(migrationDB, &postgres.Config{})
	if err != nil {
		migrationDB.Close()
		return false, fmt.Errorf("create postgres driver for migrations: %w", err)
	}
	m, err := migrate.NewWithDatabaseInstance(sourceURL, "postgres", driver)
	if err != nil {
		driver.Close()
		return false, fmt.Errorf("create migrate instance: %w", err)
	}

	if dir == MigrateUp {
		err = m.Up()
	} else {
		err = m.Down()
	}
	changed := !errors.Is(err, migrate.ErrNoChange)
	if err != nil && changed {
		m.Close()
		return false, fmt.Errorf("apply %s migrations: %w", dir, err)
	}

	sourceErr, dbErr := m.Close()
	if err := errors.Join(sourceErr, dbErr); err != nil {
		return changed, fmt.Errorf("close migrations: %w", err)
	}
	return changed, nil
}
