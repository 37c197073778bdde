package types

import (
	"context"
	"database/sql"
)

// Querier is satisfied by both *sql.DB and *sql.Tx, storage methods accept either
type Querier interface {
	Exec(query string, args ...interface{}) (sql.Result, error)
	Query(query string, args ...interface{}) (*sql.Rows, error)
	QueryRow(query string, args ...interface{}) *sql.Row
}

// DBer can open transactions
type DBer interface {
	Querier
	BeginTx(ctx context.Context, opts *sql.TxOptions) (*sql.Tx, error)
}

type SQLTxer interface {
	Querier
	Commit() error
	Rollback() error
}

// Txer is a transaction that runs callbacks once it is committed or rolled back
type Txer interface {
	SQLTxer
	AddRollbackCallback(cb func())
	AddCommitCallback(cb func())
}

// Migration is a schema change, SQL holds the down statements followed by the up ones.
// Prefix is prepended to the id and replaces the /*dbprefix*/ marker.
type Migration struct {
	ID     string
	SQL    string
	Prefix string
}

// KeyValueStorager keeps small values per owner, such as the compatibility data of a store
type KeyValueStorager interface {
	InsertValue(tx Querier, owner, key, value string) error
	GetValue(tx Querier, owner, key string) (string, error)
	// UpdateValue inserts the value when the key does not exist yet
	UpdateValue(tx Querier, owner, key, value string) error
}
