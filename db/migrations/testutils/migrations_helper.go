package migrationsutils

import (
	"database/sql"
	"fmt"
	"testing"

	migrate "github.com/rubenv/sql-migrate"
	"github.com/stretchr/testify/require"
	"github.com/zkbridge/walletkit/db"
	"github.com/zkbridge/walletkit/db/types"
	"github.com/zkbridge/walletkit/log"
)

type MigrationTester interface {
	// InsertDataBeforeMigrationUp runs with the schema previous to the migration under test
	InsertDataBeforeMigrationUp(*testing.T, *sql.DB)
	RunAssertsAfterMigrationUp(*testing.T, *sql.DB)
	RunAssertsAfterMigrationDown(*testing.T, *sql.DB)
}

// TestMigration applies migrations up to migrationNumber (1-based), then reverts it
func TestMigration(t *testing.T, dbName string, migrationData []types.Migration,
	migrationNumber int, miter MigrationTester) {
	t.Helper()
	name := fmt.Sprintf("%s-%03d", dbName, migrationNumber)
	logger := log.WithFields("module", "migration-test-"+name)
	database, err := db.NewSQLiteDB(t.TempDir() + "/test_migration_" + name + ".sqlite")
	require.NoError(t, err)
	defer database.Close()

	if migrationNumber > 1 {
		err := db.RunMigrationsDBExtended(logger, database, migrationData, migrate.Up, migrationNumber-1)
		require.NoError(t, err, "failed to run migration up %d", migrationNumber-1)
	}
	miter.InsertDataBeforeMigrationUp(t, database)

	err = db.RunMigrationsDBExtended(logger, database, migrationData, migrate.Up, 1)
	require.NoError(t, err, "failed to run migration up %d", migrationNumber)
	miter.RunAssertsAfterMigrationUp(t, database)

	err = db.RunMigrationsDBExtended(logger, database, migrationData, migrate.Down, 1)
	require.NoError(t, err, "failed to run migration down %d", migrationNumber)
	miter.RunAssertsAfterMigrationDown(t, database)
}

func GetTableColumnNames(db *sql.DB, tableName string) ([]string, error) {
	rows, err := db.Query("SELECT name FROM pragma_table_info(?)", tableName)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var columns []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		columns = append(columns, name)
	}
	return columns, rows.Err()
}
