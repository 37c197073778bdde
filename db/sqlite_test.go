package db

import (
	"context"
	"path"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/zkbridge/walletkit/db/types"
	"github.com/zkbridge/walletkit/log"
)

func newTestDB(t *testing.T) *KeyValueStorage {
	t.Helper()
	db, err := NewSQLiteDB(path.Join(t.TempDir(), "base.sqlite"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	require.NoError(t, RunMigrationsDB(log.WithFields("test", "sqlite"), db, []types.Migration{}))
	return NewKeyValueStorage(db)
}

func TestKeyValueStorage(t *testing.T) {
	kv := newTestDB(t)
	owner := "unittest"

	_, err := kv.GetValue(nil, owner, "key")
	require.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, kv.InsertValue(nil, owner, "key", "value"))
	require.Error(t, kv.InsertValue(nil, owner, "key", "again"))
	value, err := kv.GetValue(kv.DB, owner, "key")
	require.NoError(t, err)
	require.Equal(t, "value", value)

	require.NoError(t, kv.UpdateValue(nil, owner, "key", "updated"))
	require.NoError(t, kv.UpdateValue(nil, "other", "key", "new"))
	value, err = kv.GetValue(nil, owner, "key")
	require.NoError(t, err)
	require.Equal(t, "updated", value)
	value, err = kv.GetValue(nil, "other", "key")
	require.NoError(t, err)
	require.Equal(t, "new", value)

	_, err = (&KeyValueStorage{}).GetValue(nil, owner, "key")
	require.ErrorContains(t, err, "no database")
}

func TestTxCallbacks(t *testing.T) {
	kv := newTestDB(t)
	ctx := context.Background()

	committed := false
	tx, err := NewTx(ctx, kv.DB)
	require.NoError(t, err)
	tx.AddCommitCallback(func() { committed = true })
	require.NoError(t, kv.InsertValue(tx, "owner", "a", "1"))
	require.NoError(t, tx.Commit())
	require.True(t, committed)

	rolledBack := false
	tx, err = NewTx(ctx, kv.DB)
	require.NoError(t, err)
	tx.AddRollbackCallback(func() { rolledBack = true })
	require.NoError(t, kv.InsertValue(tx, "owner", "b", "2"))
	require.NoError(t, tx.Rollback())
	require.True(t, rolledBack)

	_, err = kv.GetValue(nil, "owner", "b")
	require.ErrorIs(t, err, ErrNotFound)
}

func TestRunMigrationsBadSeparator(t *testing.T) {
	db, err := NewSQLiteDB(path.Join(t.TempDir(), "bad.sqlite"))
	require.NoError(t, err)
	defer db.Close()
	err = RunMigrationsDB(log.WithFields("test", "sqlite"), db, []types.Migration{{ID: "x", SQL: "CREATE TABLE t (a INT);"}})
	require.ErrorContains(t, err, "missing")
}
