// Package priorityop links an L1 transaction to the L2 transaction it enqueued.
package priorityop

import (
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/iden3/go-iden3-crypto/keccak256"
	"github.com/zkbridge/walletkit/contracts"
	wtypes "github.com/zkbridge/walletkit/types"
)

const (
	newPriorityRequestEvent = "NewPriorityRequest"
	wordSize                = 32
	// txId, txHash, expirationTimestamp, transaction offset, factoryDeps offset
	headWords = 5
)

// PriorityOp is a priority queue entry as emitted by the main contract
type PriorityOp struct {
	TxID                *big.Int
	L2Hash              common.Hash
	ExpirationTimestamp uint64
	// L1Log is the log the entry was read from
	L1Log *types.Log
}

// FromReceipt returns the first priority operation emitted by mainContract in receipt
func FromReceipt(receipt *types.Receipt, mainContract common.Address) (*PriorityOp, error) {
	if receipt == nil {
		return nil, fmt.Errorf("%w: nil receipt", wtypes.ErrPriorityOpNotFound)
	}
	eventID, err := contracts.MainContract.EventID(newPriorityRequestEvent)
	if err != nil {
		return nil, err
	}
	for _, l := range receipt.Logs {
		if l == nil || l.Address != mainContract || len(l.Topics) == 0 || l.Topics[0] != eventID {
			continue
		}
		out, err := contracts.MainContract.UnpackEvent(newPriorityRequestEvent, *l)
		if err != nil {
			return nil, fmt.Errorf("priority op in tx %s: %w", receipt.TxHash.Hex(), err)
		}
		op := &PriorityOp{
			TxID:                out[0].(*big.Int),
			L2Hash:              common.Hash(out[1].([32]byte)),
			ExpirationTimestamp: out[2].(uint64),
			L1Log:               l,
		}
		canonical, err := CanonicalTxHash(l.Data)
		if err != nil {
			return nil, fmt.Errorf("priority op in tx %s: %w", receipt.TxHash.Hex(), err)
		}
		if canonical != op.L2Hash {
			return nil, fmt.Errorf("priority op in tx %s: emitted hash %s does not match transaction hash %s",
				receipt.TxHash.Hex(), op.L2Hash.Hex(), canonical.Hex())
		}
		return op, nil
	}
	return nil, fmt.Errorf("%w: tx %s has no %s log from %s",
		wtypes.ErrPriorityOpNotFound, receipt.TxHash.Hex(), newPriorityRequestEvent, mainContract.Hex())
}

// L2HashFromReceipt returns the hash of the L2 transaction enqueued by the L1 transaction of receipt
func L2HashFromReceipt(receipt *types.Receipt, mainContract common.Address) (common.Hash, error) {
	op, err := FromReceipt(receipt, mainContract)
	if err != nil {
		return common.Hash{}, err
	}
	return op.L2Hash, nil
}

// CanonicalTxHash computes keccak256(abi.encode(transaction)) from the data of a
// NewPriorityRequest log, where the encoded transaction is the tail between the
// transaction offset and the factory deps offset.
func CanonicalTxHash(data []byte) (common.Hash, error) {
	if len(data) < headWords*wordSize {
		return common.Hash{}, fmt.Errorf("priority request data too short: %d bytes", len(data))
	}
	txOffset := new(big.Int).SetBytes(data[3*wordSize : 4*wordSize])
	depsOffset := new(big.Int).SetBytes(data[4*wordSize : 5*wordSize])
	if !txOffset.IsUint64() || !depsOffset.IsUint64() ||
		txOffset.Uint64() >= depsOffset.Uint64() || depsOffset.Uint64() > uint64(len(data)) {
		return common.Hash{}, fmt.Errorf("priority request data has invalid offsets %s, %s", txOffset, depsOffset)
	}
	encoded := make([]byte, 0, wordSize+depsOffset.Uint64()-txOffset.Uint64())
	encoded = append(encoded, common.LeftPadBytes([]byte{wordSize}, wordSize)...)
	encoded = append(encoded, data[txOffset.Uint64():depsOffset.Uint64()]...)
	return common.BytesToHash(keccak256.Hash(encoded)), nil
}
