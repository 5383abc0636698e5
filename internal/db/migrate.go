package db

import (
	"database/sql"
	"errors"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/database/sqlite3"
	"github.com/golang-migrate/migrate/v4/source/iofs"

	"sem-planner/db/migrations"
)

// Migrate applies all up migrations to the PostgreSQL database at addr.
func Migrate(addr string) error {
	src, err := iofs.New(migrations.Postgres, "postgres")
	if err != nil {
		return err
	}
	defer src.Close()

	mg, err := migrate.NewWithSourceInstance("iofs", src, addr)
	if err != nil {
		return err
	}
	defer mg.Close()

	return apply(mg)
}

// MigrateSQLite applies all up migrations to an open SQLite handle. The
// handle stays open; closing it is up to the caller.
func MigrateSQLite(db *sql.DB) error {
	src, err := iofs.New(migrations.SQLite, "sqlite")
	if err != nil {
		return err
	}
	defer src.Close()

	driver, err := sqlite3.WithInstance(db, &sqlite3.Config{})
	if err != nil {
		return err
	}

	// mg.Close would close db as well, so only the source is released.
	mg, err := migrate.NewWithInstance("iofs", src, "sqlite3", driver)
	if err != nil {
		return err
	}
	return apply(mg)
}

func apply(mg *migrate.Migrate) error {
	_, dirty, err := mg.Version()
	if err != nil && !errors.Is(err, migrate.ErrNilVersion) {
		return err
	}

	if dirty {
		return errors.New("database is in dirty state")
	}

	if err = mg.Migrate(migrations.Version); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return err
	}

	return nil
}
