package types

import (
	"errors"
	"fmt"
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum/common"
)

var (
	// ErrInsufficientFee is returned when a caller supplied fee is below the computed minimum
	ErrInsufficientFee = errors.New("insufficient fee")
	// ErrUnknownToken is returned when the bridge registry has no mapping for a token
	ErrUnknownToken = errors.New("unknown token")
	// ErrPriorityOpNotFound is returned when a receipt has no priority queue log
	ErrPriorityOpNotFound = errors.New("priority operation not found in receipt")
	// ErrConfirmationTimeout is returned when a receipt does not appear before the deadline
	ErrConfirmationTimeout = errors.New("confirmation timeout")
	// ErrAllowanceInsufficient is returned on token deposits without enough approval
	ErrAllowanceInsufficient = errors.New("allowance insufficient")
	// ErrInvalidTransaction is returned for malformed amounts or addresses
	ErrInvalidTransaction = errors.New("invalid transaction")
	// ErrInsufficientBalance is returned when the account can't pay the base cost
	ErrInsufficientBalance = errors.New("insufficient balance")
	// ErrTxReverted is returned when a mined transaction has a failed status
	ErrTxReverted = errors.New("transaction reverted")
)

// InsufficientFeeError carries the supplied and required amounts of a fee check
type InsufficientFeeError struct {
	Field    string
	Supplied *big.Int
	Required *big.Int
}

func (e *InsufficientFeeError) Error() string {
	return fmt.Sprintf("%s: %s is %s, required at least %s", ErrInsufficientFee, e.Field, e.Supplied, e.Required)
}

// Is makes errors.Is(err, ErrInsufficientFee) match
func (e *InsufficientFeeError) Is(target error) bool {
	return target == ErrInsufficientFee
}

// ConfirmationTimeoutError is returned by the wait primitive. The caller may retry
// with a fresh poll, the transaction itself may still be mined.
type ConfirmationTimeoutError struct {
	TxHash  common.Hash
	Timeout time.Duration
}

func (e *ConfirmationTimeoutError) Error() string {
	return fmt.Sprintf("%s: receipt of tx %s not found after %s", ErrConfirmationTimeout, e.TxHash.Hex(), e.Timeout)
}

// Is makes errors.Is(err, ErrConfirmationTimeout) match
func (e *ConfirmationTimeoutError) Is(target error) bool {
	return target == ErrConfirmationTimeout
}
