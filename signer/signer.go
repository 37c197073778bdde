package signer

import (
	"context"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
)

// Signer signs the transactions of a single account
type Signer interface {
	Initialize(ctx context.Context) error
	// SignTx returns the signed transaction in its binary encoding, ready to be broadcast
	SignTx(ctx context.Context, tx *types.Transaction, chainID *big.Int) ([]byte, error)
	SignHash(ctx context.Context, hash common.Hash) ([]byte, error)
	Address() common.Address
	String() string
}
