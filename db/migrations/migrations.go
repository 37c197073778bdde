package migrations

import (
	_ "embed"

	"github.com/zkbridge/walletkit/db/types"
)

//go:embed basedb0001.sql
var mig001 string

// GetBaseMigrations returns the migrations of the tables shared by every store
func GetBaseMigrations() []types.Migration {
	return []types.Migration{
		{
			ID:  "basedb0001",
			SQL: mig001,
		},
	}
}
