package chainclient

import (
	"context"
	"errors"
	"time"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/zkbridge/walletkit/log"
	wtypes "github.com/zkbridge/walletkit/types"
)

// DefaultReceiptPollInterval is used when WaitForReceipt gets a non positive interval
const DefaultReceiptPollInterval = time.Second

// ReceiptFetcher returns the receipt of a mined transaction or ethereum.NotFound
type ReceiptFetcher interface {
	TransactionReceipt(ctx context.Context, txHash common.Hash) (*types.Receipt, error)
}

// WaitForReceipt polls client every pollInterval until the receipt of txHash is found.
// After timeout a *ConfirmationTimeoutError is returned, a zero timeout waits
// until ctx is done. Failed lookups other than not found are logged and retried.
func WaitForReceipt(ctx context.Context, client ReceiptFetcher, txHash common.Hash,
	timeout, pollInterval time.Duration) (*types.Receipt, error) {
	var deadline <-chan time.Time
	if timeout > 0 {
		timer := time.NewTimer(timeout)
		defer timer.Stop()
		deadline = timer.C
	}
	if pollInterval <= 0 {
		pollInterval = DefaultReceiptPollInterval
	}
	ticker := time.NewTicker(pollInterval)
	defer ticker.Stop()

	for {
		receipt, err := client.TransactionReceipt(ctx, txHash)
		if err == nil && receipt != nil {
			return receipt, nil
		}
		if err != nil && !errors.Is(err, ethereum.NotFound) {
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			log.Warnf("error getting receipt of tx %s: %v", txHash.Hex(), err)
		}
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-deadline:
			return nil, &wtypes.ConfirmationTimeoutError{TxHash: txHash, Timeout: timeout}
		case <-ticker.C:
		}
	}
}
