package wallet

import (
	"context"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	coretypes "github.com/ethereum/go-ethereum/core/types"
	"github.com/zkbridge/walletkit/fees"
	"github.com/zkbridge/walletkit/types"
	"github.com/zkbridge/walletkit/wallet/metrics"
)

// ApprovalStatus is the outcome of an approval request
type ApprovalStatus int

const (
	// ApprovalAlreadySufficient means the allowance already covered the amount, nothing was sent
	ApprovalAlreadySufficient ApprovalStatus = iota
	// ApprovalSubmitted means an approval was sent and mined
	ApprovalSubmitted
)

func (s ApprovalStatus) String() string {
	switch s {
	case ApprovalAlreadySufficient:
		return "already-sufficient"
	case ApprovalSubmitted:
		return "submitted"
	default:
		return fmt.Sprintf("ApprovalStatus(%d)", int(s))
	}
}

// ApprovalResult is the answer of ApproveERC20
type ApprovalResult struct {
	Status  ApprovalStatus
	Spender common.Address
	TxHash  common.Hash
	Receipt *coretypes.Receipt
}

// DepositResult is the answer of DepositWithApproval. Approval is nil when no
// approval was sent.
type DepositResult struct {
	Hash     common.Hash
	Approval *ApprovalResult
}

// ApproveERC20 lets bridge pull amount of token from the account on L1. A nil bridge is the
// default L1 ERC20 bridge. The approval is only sent when the current allowance is below
// amount, and the call returns once it is mined.
func (w *Wallet) ApproveERC20(ctx context.Context, token common.Address, amount *big.Int,
	bridge *common.Address) (*ApprovalResult, error) {
	if types.IsETH(token) {
		return nil, fmt.Errorf("approve: %w: ETH can not be approved", types.ErrInvalidTransaction)
	}
	spender, err := w.l1ERC20Bridge(ctx, bridge)
	if err != nil {
		return nil, fmt.Errorf("approve: %w", err)
	}
	allowance, err := w.builder.Allowance(ctx, token, spender)
	if err != nil {
		return nil, fmt.Errorf("approve: %w", err)
	}
	if amount != nil && allowance.Cmp(amount) >= 0 {
		w.log.Debugf("allowance %s of %s for %s already covers %s", allowance, token.Hex(), spender.Hex(), amount)
		return &ApprovalResult{Status: ApprovalAlreadySufficient, Spender: spender}, nil
	}
	req, err := w.builder.ApproveTx(token, spender, amount)
	if err != nil {
		return nil, err
	}
	return w.submitApproval(ctx, req, spender)
}

func (w *Wallet) submitApproval(ctx context.Context, req *types.TxRequest,
	spender common.Address) (*ApprovalResult, error) {
	hash, err := w.send(ctx, w.l1, req, nil)
	if err != nil {
		return nil, fmt.Errorf("approve: %w", err)
	}
	metrics.ApprovalSent()
	receipt, err := w.waitMined(ctx, w.l1, hash, w.cfg.L1ConfirmationTimeout.Duration)
	if err != nil {
		return nil, fmt.Errorf("approve: %w", err)
	}
	w.log.Infof("approval %s mined in block %s", hash.Hex(), receipt.BlockNumber)
	return &ApprovalResult{Status: ApprovalSubmitted, Spender: spender, TxHash: hash, Receipt: receipt}, nil
}

// Deposit sends a deposit to L2 and returns the L1 transaction hash without waiting for it.
// Token deposits with ApproveERC20 set first send the approval and wait until it is mined.
func (w *Wallet) Deposit(ctx context.Context, tx *types.DepositTransaction) (common.Hash, error) {
	res, err := w.DepositWithApproval(ctx, tx)
	if err != nil {
		return common.Hash{}, err
	}
	return res.Hash, nil
}

// DepositWithApproval is Deposit that also reports the approval sent before the deposit.
// When the deposit fails after a mined approval, the approval is returned with the error.
func (w *Wallet) DepositWithApproval(ctx context.Context, tx *types.DepositTransaction) (*DepositResult, error) {
	prepared, err := w.builder.PrepareDepositTx(ctx, tx)
	if err != nil {
		return nil, fmt.Errorf("deposit: %w", err)
	}
	plan, err := w.builder.DepositPlan(ctx, prepared)
	if err != nil {
		return nil, fmt.Errorf("deposit: %w", err)
	}
	res := &DepositResult{}
	deposit := plan.Deposit
	if plan.Approval != nil {
		if deposit.Options.Nonce != nil {
			// the approval takes the caller's nonce, the deposit the next one
			nonce := *deposit.Options.Nonce
			plan.Approval.Options.Nonce = &nonce
			next := nonce + 1
			deposit.Options.Nonce = &next
		}
		approval, err := w.submitApproval(ctx, plan.Approval, plan.BridgeAddress)
		if err != nil {
			return nil, fmt.Errorf("deposit: %w", err)
		}
		res.Approval = approval
	}
	isETH := types.IsETH(prepared.Token)
	hash, err := w.send(ctx, w.l1, deposit, func(gas uint64) uint64 {
		return fees.RecommendedL1GasLimit(gas, isETH)
	})
	if err != nil {
		return res, fmt.Errorf("deposit: %w", err)
	}
	res.Hash = hash
	metrics.DepositSent()
	w.log.Infof("deposit of %s %s to %s sent through %s: %s", prepared.Amount, prepared.Token.Hex(),
		prepared.To.Hex(), plan.BridgeAddress.Hex(), hash.Hex())
	return res, nil
}

// Withdraw starts a withdrawal to L1 and returns the L2 transaction hash
func (w *Wallet) Withdraw(ctx context.Context, tx *types.WithdrawTransaction) (common.Hash, error) {
	req, err := w.builder.WithdrawTx(ctx, tx)
	if err != nil {
		return common.Hash{}, err
	}
	hash, err := w.send(ctx, w.l2, req, nil)
	if err != nil {
		return common.Hash{}, fmt.Errorf("withdraw: %w", err)
	}
	metrics.WithdrawalSent()
	w.log.Infof("withdrawal of %s %s sent: %s", tx.Amount, tx.Token.Hex(), hash.Hex())
	return hash, nil
}

// Transfer sends ETH or a token to another L2 account and returns the L2 transaction hash
func (w *Wallet) Transfer(ctx context.Context, tx *types.TransferTransaction) (common.Hash, error) {
	req, err := w.builder.TransferTx(ctx, tx)
	if err != nil {
		return common.Hash{}, err
	}
	hash, err := w.send(ctx, w.l2, req, nil)
	if err != nil {
		return common.Hash{}, fmt.Errorf("transfer: %w", err)
	}
	return hash, nil
}

// RequestExecute asks the main contract to execute an L2 call and returns the L1 transaction hash
func (w *Wallet) RequestExecute(ctx context.Context, msg *types.RequestExecuteCallMsg) (common.Hash, error) {
	req, err := w.builder.GetRequestExecuteTransaction(ctx, msg)
	if err != nil {
		return common.Hash{}, err
	}
	hash, err := w.send(ctx, w.l1, req, nil)
	if err != nil {
		return common.Hash{}, fmt.Errorf("execute: %w", err)
	}
	w.log.Infof("request execute of %s sent: %s", msg.ContractAddress.Hex(), hash.Hex())
	return hash, nil
}
