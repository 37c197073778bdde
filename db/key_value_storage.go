package db

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/russross/meddler"
	"github.com/zkbridge/walletkit/db/types"
)

// KeyValueStorage stores small string values scoped by owner in the key_value table
type KeyValueStorage struct {
	*sql.DB
}

func NewKeyValueStorage(db *sql.DB) *KeyValueStorage {
	return &KeyValueStorage{db}
}

type kvRow struct {
	Owner     string `meddler:"owner"`
	Key       string `meddler:"key"`
	Value     string `meddler:"value"`
	UpdatedAt int64  `meddler:"updated_at"`
}

func (kv *KeyValueStorage) querier(tx types.Querier) (types.Querier, error) {
	if tx != nil {
		return tx, nil
	}
	if kv.DB == nil {
		return nil, errors.New("keyValueStorage: no transaction and no database")
	}
	return kv.DB, nil
}

// InsertValue fails if the owner already has a value for key
func (kv *KeyValueStorage) InsertValue(tx types.Querier, owner, key, value string) error {
	q, err := kv.querier(tx)
	if err != nil {
		return err
	}
	return meddler.Insert(q, tableKVName,
		&kvRow{Owner: owner, Key: key, Value: value, UpdatedAt: funcTimeNow().Unix()})
}

// GetValue returns ErrNotFound when the owner has no value for key
func (kv *KeyValueStorage) GetValue(tx types.Querier, owner, key string) (string, error) {
	q, err := kv.querier(tx)
	if err != nil {
		return "", err
	}
	var row kvRow
	err = meddler.QueryRow(q, &row,
		fmt.Sprintf("SELECT * FROM %s WHERE owner = $1 AND key = $2 LIMIT 1;", tableKVName), owner, key)
	return row.Value, ReturnErrNotFound(err)
}

// UpdateValue is an upsert
func (kv *KeyValueStorage) UpdateValue(tx types.Querier, owner, key, value string) error {
	q, err := kv.querier(tx)
	if err != nil {
		return err
	}
	_, err = q.Exec(fmt.Sprintf(`INSERT INTO %s (owner, key, value, updated_at) VALUES ($1, $2, $3, $4)
		ON CONFLICT (owner, key) DO UPDATE SET value = EXCLUDED.value, updated_at = EXCLUDED.updated_at`, tableKVName),
		owner, key, value, funcTimeNow().Unix())
	return err
}
