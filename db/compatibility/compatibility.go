package compatibility

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/zkbridge/walletkit/db"
	dbtypes "github.com/zkbridge/walletkit/db/types"
	"github.com/zkbridge/walletkit/log"
	"github.com/zkbridge/walletkit/types"
)

const compatibilityContentKey = "compatibility_content"

var ErrIncompatibleData = errors.New("incompatible data")

type CompatibilityComparer[T any] interface {
	fmt.Stringer
	// IsCompatible returns an error if the stored data can not be used with the runtime one
	IsCompatible(storage T) error
}

// CompatibilityDataStorager persists the data the database was created with
type CompatibilityDataStorager[T any] interface {
	// GetCompatibilityData returns false when nothing has been stored yet
	GetCompatibilityData(ctx context.Context, tx dbtypes.Querier) (bool, T, error)
	SetCompatibilityData(ctx context.Context, tx dbtypes.Querier, data T) error
}

type CompatibilityDataGetter[T CompatibilityComparer[T]] func(ctx context.Context) (T, error)

// CompatibilityCheck stores the runtime data on first use and compares it on every later start
type CompatibilityCheck[T CompatibilityComparer[T]] struct {
	RequireStorageContentCompatibility bool
	RuntimeDataGetter                  CompatibilityDataGetter[T]
	Storage                            CompatibilityDataStorager[T]
	Logger                             types.Logger
}

func NewCompatibilityCheck[T CompatibilityComparer[T]](
	requireStorageContentCompatibility bool,
	runtimeDataGetter CompatibilityDataGetter[T],
	storage CompatibilityDataStorager[T]) *CompatibilityCheck[T] {
	return &CompatibilityCheck[T]{
		RequireStorageContentCompatibility: requireStorageContentCompatibility,
		RuntimeDataGetter:                  runtimeDataGetter,
		Storage:                            storage,
		Logger:                             log.WithFields("module", "compatibilityCheck"),
	}
}

func (s *CompatibilityCheck[T]) Check(ctx context.Context, tx dbtypes.Querier) error {
	if s.RuntimeDataGetter == nil || s.Storage == nil {
		return errors.New("compatibilityCheck: runtime data getter and storage are required")
	}
	runtimeData, err := s.RuntimeDataGetter(ctx)
	if err != nil {
		return fmt.Errorf("compatibilityCheck: runtime data: %w", err)
	}
	exists, storageData, err := s.Storage.GetCompatibilityData(ctx, tx)
	if err != nil {
		return fmt.Errorf("compatibilityCheck: error reading value from storage. Err: %w", err)
	}
	if !exists {
		return s.Storage.SetCompatibilityData(ctx, tx, runtimeData)
	}
	if err := runtimeData.IsCompatible(storageData); err != nil {
		if s.RequireStorageContentCompatibility {
			return fmt.Errorf("compatibilityCheck: data on DB is [%s] != runtime [%s]. Err: %w",
				storageData.String(), runtimeData.String(), err)
		}
		s.Logger.Warnf("compatibilityCheck: data on DB is [%s] != runtime [%s]. Err: %v",
			storageData.String(), runtimeData.String(), err)
	}
	return nil
}

type KeyValueStorager interface {
	InsertValue(tx dbtypes.Querier, owner, key, value string) error
	GetValue(tx dbtypes.Querier, owner, key string) (string, error)
}

// KeyValueToCompatibilityStorage keeps the data as JSON in the key_value table
type KeyValueToCompatibilityStorage[T any] struct {
	KVStorage KeyValueStorager
	OwnerName string
}

func NewKeyValueToCompatibilityStorage[T any](kvStorage KeyValueStorager,
	ownerName string) *KeyValueToCompatibilityStorage[T] {
	return &KeyValueToCompatibilityStorage[T]{KVStorage: kvStorage, OwnerName: ownerName}
}

func (s *KeyValueToCompatibilityStorage[T]) GetCompatibilityData(_ context.Context,
	tx dbtypes.Querier) (bool, T, error) {
	var data T
	raw, err := s.KVStorage.GetValue(tx, s.OwnerName, compatibilityContentKey)
	if errors.Is(err, db.ErrNotFound) {
		return false, data, nil
	}
	if err != nil {
		return false, data, err
	}
	if err := json.Unmarshal([]byte(raw), &data); err != nil {
		return false, data, fmt.Errorf("compatibilityCheck: fails to unmarshal stored data. Err: %w", err)
	}
	return true, data, nil
}

func (s *KeyValueToCompatibilityStorage[T]) SetCompatibilityData(_ context.Context, tx dbtypes.Querier, data T) error {
	raw, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("compatibilityCheck: fails to marshal runtime data. Err: %w", err)
	}
	return s.KVStorage.InsertValue(tx, s.OwnerName, compatibilityContentKey, string(raw))
}
