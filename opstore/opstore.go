package opstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/russross/meddler"
	"github.com/zkbridge/walletkit/db"
	"github.com/zkbridge/walletkit/db/compatibility"
	"github.com/zkbridge/walletkit/log"
	"github.com/zkbridge/walletkit/opstore/migrations"
)

type Kind string

const (
	KindApproval       Kind = "approval"
	KindDeposit        Kind = "deposit"
	KindWithdraw       Kind = "withdraw"
	KindTransfer       Kind = "transfer"
	KindRequestExecute Kind = "request_execute"
)

// IsPriorityOp is true for operations submitted on L1 and executed on L2
func (k Kind) IsPriorityOp() bool {
	return k == KindDeposit || k == KindRequestExecute
}

const (
	StatusSubmitted = "SUBMITTED"
	StatusMined     = "MINED"
	StatusFailed    = "FAILED"

	ownerName = "opstore"
)

var ErrOperationNotFound = errors.New("operation not found")

// Operation is one journal entry, Status holds the last stage reached
type Operation struct {
	ID        int64          `meddler:"id,pk"                 json:"id"`
	Kind      Kind           `meddler:"kind"                  json:"kind"`
	Token     common.Address `meddler:"token,address"         json:"token"`
	Amount    *big.Int       `meddler:"amount,bigint"         json:"amount,omitempty"`
	Recipient common.Address `meddler:"recipient,address"     json:"recipient"`
	L1Hash    *common.Hash   `meddler:"l1_hash,hash"          json:"l1_hash,omitempty"`
	L2Hash    *common.Hash   `meddler:"l2_hash,hash"          json:"l2_hash,omitempty"`
	Status    string         `meddler:"status"                json:"status"`
	Error     string         `meddler:"error"                 json:"error,omitempty"`
	CreatedAt int64          `meddler:"created_at"            json:"created_at"`
	UpdatedAt int64          `meddler:"updated_at"            json:"updated_at"`
}

// ChainData pins the journal to the chains it was created for
type ChainData struct {
	L1ChainID uint64 `json:"l1ChainID"`
	L2ChainID uint64 `json:"l2ChainID"`
}

func (c ChainData) String() string {
	return fmt.Sprintf("l1ChainID=%d l2ChainID=%d", c.L1ChainID, c.L2ChainID)
}

func (c ChainData) IsCompatible(storage ChainData) error {
	if c != storage {
		return fmt.Errorf("%w: chain ids changed", compatibility.ErrIncompatibleData)
	}
	return nil
}

// OpStore is the sqlite journal of the operations sent by the CLI
type OpStore struct {
	logger *log.Logger
	db     *sql.DB
}

// New opens the journal and checks it was created for chains
func New(ctx context.Context, logger *log.Logger, cfg Config, chains ChainData) (*OpStore, error) {
	store, err := Open(logger, cfg)
	if err != nil {
		return nil, err
	}
	database := store.db
	check := compatibility.NewCompatibilityCheck(
		cfg.RequireStorageContentCompatibility,
		func(context.Context) (ChainData, error) { return chains, nil },
		compatibility.NewKeyValueToCompatibilityStorage[ChainData](db.NewKeyValueStorage(database), ownerName),
	)
	if err := check.Check(ctx, nil); err != nil {
		database.Close()
		return nil, fmt.Errorf("opstore: %w", err)
	}
	return store, nil
}

// Open opens the journal, running its migrations, without any compatibility check
func Open(logger *log.Logger, cfg Config) (*OpStore, error) {
	if cfg.DBPath == "" {
		return nil, errors.New("opstore: DBPath is not set")
	}
	if err := migrations.RunMigrations(cfg.DBPath); err != nil {
		return nil, fmt.Errorf("opstore: migrations: %w", err)
	}
	database, err := db.NewSQLiteDB(cfg.DBPath)
	if err != nil {
		return nil, err
	}
	return &OpStore{logger: logger, db: database}, nil
}

func (s *OpStore) Close() error {
	return s.db.Close()
}

// Add stores op and sets its ID and timestamps
func (s *OpStore) Add(op *Operation) error {
	now := timeNow().Unix()
	op.ID = 0
	op.CreatedAt = now
	op.UpdatedAt = now
	if err := meddler.Insert(s.db, "operation", op); err != nil {
		return fmt.Errorf("opstore: insert %s: %w", op.Kind, err)
	}
	s.logger.Debugf("journaled %s operation %d with status %s", op.Kind, op.ID, op.Status)
	return nil
}

func (s *OpStore) Get(id int64) (*Operation, error) {
	op := &Operation{}
	err := meddler.QueryRow(s.db, op, `SELECT * FROM operation WHERE id = $1`, id)
	if err != nil {
		return nil, s.notFound(err)
	}
	return op, nil
}

// GetByHash looks the operation up by its L1 or L2 transaction hash
func (s *OpStore) GetByHash(hash common.Hash) (*Operation, error) {
	op := &Operation{}
	err := meddler.QueryRow(s.db, op,
		`SELECT * FROM operation WHERE l1_hash = $1 OR l2_hash = $1 ORDER BY id DESC LIMIT 1`, hash.Hex())
	if err != nil {
		return nil, s.notFound(err)
	}
	return op, nil
}

// List returns the latest operations first, an empty kind matches all of them
func (s *OpStore) List(kind Kind, limit int) ([]*Operation, error) {
	if limit <= 0 {
		limit = -1
	}
	var ops []*Operation
	var err error
	if kind == "" {
		err = meddler.QueryAll(s.db, &ops, `SELECT * FROM operation ORDER BY id DESC LIMIT $1`, limit)
	} else {
		err = meddler.QueryAll(s.db, &ops,
			`SELECT * FROM operation WHERE kind = $1 ORDER BY id DESC LIMIT $2`, kind, limit)
	}
	if err != nil {
		return nil, err
	}
	return ops, nil
}

// UpdateStatus records a new stage of the operation. l2Hash is kept when nil and
// opErr, when set, moves the operation to StatusFailed
func (s *OpStore) UpdateStatus(ctx context.Context, id int64, status string, l2Hash *common.Hash, opErr error) error {
	tx, err := db.NewTx(ctx, s.db)
	if err != nil {
		return err
	}
	shouldRollback := true
	defer func() {
		if shouldRollback {
			if errRllbck := tx.Rollback(); errRllbck != nil {
				s.logger.Errorf("error while rolling back tx %v", errRllbck)
			}
		}
	}()

	op := &Operation{}
	if err := meddler.QueryRow(tx, op, `SELECT * FROM operation WHERE id = $1`, id); err != nil {
		return s.notFound(err)
	}
	op.Status = status
	op.Error = ""
	if opErr != nil {
		op.Status = StatusFailed
		op.Error = fmt.Sprintf("%s: %v", status, opErr)
	}
	if l2Hash != nil {
		op.L2Hash = l2Hash
	}
	op.UpdatedAt = timeNow().Unix()
	if err := meddler.Update(tx, "operation", op); err != nil {
		return fmt.Errorf("opstore: update %d: %w", id, err)
	}
	if err := tx.Commit(); err != nil {
		return err
	}
	shouldRollback = false
	return nil
}

func (s *OpStore) notFound(err error) error {
	if errors.Is(db.ReturnErrNotFound(err), db.ErrNotFound) {
		return ErrOperationNotFound
	}
	return err
}
