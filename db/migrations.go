package db

import (
	"database/sql"
	"fmt"
	"strings"

	_ "github.com/mattn/go-sqlite3"
	migrate "github.com/rubenv/sql-migrate"
	"github.com/zkbridge/walletkit/db/migrations"
	"github.com/zkbridge/walletkit/db/types"
	"github.com/zkbridge/walletkit/log"
)

const (
	// UpDownSeparator splits a migration file, the down statements come first
	UpDownSeparator = "-- +migrate Up"
	// NoLimitMigrations applies every pending migration
	NoLimitMigrations = 0

	dbPrefixReplacer = "/*dbprefix*/"
	dialect          = "sqlite3"
)

// RunMigrations opens dbPath and brings it up to date with migs and the base tables
func RunMigrations(dbPath string, migs []types.Migration) error {
	database, err := NewSQLiteDB(dbPath)
	if err != nil {
		return fmt.Errorf("error creating DB %w", err)
	}
	defer database.Close()
	return RunMigrationsDB(log.GetDefaultLogger(), database, migs)
}

// RunMigrationsDB applies every pending migration of migs and then the base ones.
// Stores sharing a file share the gorp_migrations table, so unknown ids are ignored.
func RunMigrationsDB(logger *log.Logger, database *sql.DB, migs []types.Migration) error {
	migrate.SetIgnoreUnknown(true)
	if err := RunMigrationsDBExtended(logger, database, migs, migrate.Up, NoLimitMigrations); err != nil {
		return fmt.Errorf("error running migrations %w", err)
	}
	if err := RunMigrationsDBExtended(logger, database, migrations.GetBaseMigrations(),
		migrate.Up, NoLimitMigrations); err != nil {
		return fmt.Errorf("error running base migrations %w", err)
	}
	return nil
}

// RunMigrationsDBExtended applies at most maxMigrations of migs in dir, used by the
// migration tests to step one migration at a time
func RunMigrationsDBExtended(logger *log.Logger, database *sql.DB, migs []types.Migration,
	dir migrate.MigrationDirection, maxMigrations int) error {
	source, ids, err := memorySource(migs)
	if err != nil {
		return err
	}
	applied, err := migrate.ExecMax(database, dialect, source, dir, maxMigrations)
	if err != nil {
		return fmt.Errorf("error executing migration %w", err)
	}
	logger.Debugw("migrations executed", "applied", applied, "max", maxMigrations, "ids", ids)
	return nil
}

func memorySource(migs []types.Migration) (*migrate.MemoryMigrationSource, []string, error) {
	source := &migrate.MemoryMigrationSource{Migrations: make([]*migrate.Migration, 0, len(migs))}
	ids := make([]string, 0, len(migs))
	for _, m := range migs {
		down, up, found := strings.Cut(strings.ReplaceAll(m.SQL, dbPrefixReplacer, m.Prefix), UpDownSeparator)
		if !found || strings.Contains(up, UpDownSeparator) {
			return nil, nil, fmt.Errorf("migration %s: missing %q separator", m.ID, UpDownSeparator)
		}
		id := m.Prefix + m.ID
		ids = append(ids, id)
		source.Migrations = append(source.Migrations, &migrate.Migration{Id: id, Up: []string{up}, Down: []string{down}})
	}
	return source, ids, nil
}
