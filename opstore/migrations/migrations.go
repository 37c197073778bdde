package migrations

import (
	_ "embed"

	"github.com/zkbridge/walletkit/db"
	"github.com/zkbridge/walletkit/db/types"
)

//go:embed opstore0001.sql
var mig001 string

func GetMigrations() []types.Migration {
	return []types.Migration{
		{
			ID:  "opstore0001",
			SQL: mig001,
		},
	}
}

func RunMigrations(dbPath string) error {
	return db.RunMigrations(dbPath, GetMigrations())
}
