package wallet

import (
	"context"
	"fmt"
	"time"

	"github.com/ethereum/go-ethereum/common"
	coretypes "github.com/ethereum/go-ethereum/core/types"
	"github.com/zkbridge/walletkit/priorityop"
	"github.com/zkbridge/walletkit/wallet/metrics"
)

// Stage is the progress of a cross-chain operation
type Stage int

const (
	StageBuilt Stage = iota
	StageApproved
	StageSubmittedL1
	StageL1Confirmed
	StagePriorityHashDerived
	StageL2Confirmed
)

var stageNames = map[Stage]string{
	StageBuilt:               "BUILT",
	StageApproved:            "APPROVED",
	StageSubmittedL1:         "SUBMITTED_L1",
	StageL1Confirmed:         "L1_CONFIRMED",
	StagePriorityHashDerived: "PRIORITY_HASH_DERIVED",
	StageL2Confirmed:         "L2_CONFIRMED",
}

func (s Stage) String() string {
	if name, ok := stageNames[s]; ok {
		return name
	}
	return fmt.Sprintf("Stage(%d)", int(s))
}

// PriorityOpStatus is the state of a priority operation as tracked by WaitPriorityOp
type PriorityOpStatus struct {
	Stage     Stage
	L1Hash    common.Hash
	L2Hash    common.Hash
	L1Receipt *coretypes.Receipt
	L2Receipt *coretypes.Receipt
}

// L2HashFromPriorityOp returns the hash of the L2 transaction created by the priority
// operation of l1Receipt
func (w *Wallet) L2HashFromPriorityOp(ctx context.Context, l1Receipt *coretypes.Receipt) (common.Hash, error) {
	mainContract, err := w.resolver.MainContract(ctx)
	if err != nil {
		return common.Hash{}, err
	}
	return priorityop.L2HashFromReceipt(l1Receipt, mainContract)
}

// WaitPriorityOp follows the L1 transaction l1Hash until its priority operation is
// executed on L2. The returned status holds the last stage reached, also on error.
func (w *Wallet) WaitPriorityOp(ctx context.Context, l1Hash common.Hash) (*PriorityOpStatus, error) {
	status := &PriorityOpStatus{Stage: StageSubmittedL1, L1Hash: l1Hash}
	start := time.Now()
	l1Receipt, err := w.waitMined(ctx, w.l1, l1Hash, w.cfg.L1ConfirmationTimeout.Duration)
	status.L1Receipt = l1Receipt
	if err != nil {
		return status, fmt.Errorf("priority op: %w", err)
	}
	status.Stage = StageL1Confirmed
	metrics.L1ConfirmationTime(time.Since(start).Seconds())

	l2Hash, err := w.L2HashFromPriorityOp(ctx, l1Receipt)
	if err != nil {
		return status, fmt.Errorf("priority op: %w", err)
	}
	status.L2Hash = l2Hash
	status.Stage = StagePriorityHashDerived
	w.log.Debugf("priority op of %s has l2 hash %s", l1Hash.Hex(), l2Hash.Hex())

	start = time.Now()
	l2Receipt, err := w.waitMined(ctx, w.l2, l2Hash, w.cfg.L2ConfirmationTimeout.Duration)
	status.L2Receipt = l2Receipt
	if err != nil {
		return status, fmt.Errorf("priority op: %w", err)
	}
	status.Stage = StageL2Confirmed
	metrics.L2ConfirmationTime(time.Since(start).Seconds())
	metrics.PriorityOpConfirmed()
	w.log.Infof("priority op %s executed on l2 in block %s", l2Hash.Hex(), l2Receipt.BlockNumber)
	return status, nil
}
