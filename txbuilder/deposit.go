package txbuilder

import (
	"context"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/zkbridge/walletkit/contracts"
	"github.com/zkbridge/walletkit/fees"
	"github.com/zkbridge/walletkit/resolver"
	"github.com/zkbridge/walletkit/types"
)

// dummyAmount is the deposit amount used when only the fee of a deposit is requested
var dummyAmount = big.NewInt(1)

// DepositPlan is the ordered list of L1 transactions of a deposit
type DepositPlan struct {
	// Approval is set when the bridge must be approved before a token deposit
	Approval *types.TxRequest
	Deposit  *types.TxRequest
	// BridgeAddress is the contract receiving the deposit call
	BridgeAddress common.Address
}

// PrepareDepositTx returns a copy of tx with every optional field resolved. Calling it on
// an already prepared deposit returns an equal value. A caller supplied value is checked
// against the base cost and never raised.
func (b *Builder) PrepareDepositTx(ctx context.Context, tx *types.DepositTransaction) (*types.DepositTransaction, error) {
	res, _, err := b.prepareDeposit(ctx, tx)
	return res, err
}

func (b *Builder) prepareDeposit(ctx context.Context, tx *types.DepositTransaction) (*types.DepositTransaction, *big.Int, error) {
	if err := tx.Validate(); err != nil {
		return nil, nil, fmt.Errorf("prepare deposit: %w", err)
	}
	res := cloneDeposit(tx)
	if res.To == nil {
		to := b.from
		res.To = &to
	}
	if res.RefundRecipient == nil {
		refund := b.from
		res.RefundRecipient = &refund
	}
	if res.OperatorTip == nil {
		res.OperatorTip = big.NewInt(0)
	}
	if res.GasPerPubdataByte == nil {
		res.GasPerPubdataByte = big.NewInt(fees.DefaultGasPerPubdataByte)
	}
	if res.L2Value == nil {
		if types.IsETH(res.Token) {
			res.L2Value = new(big.Int).Set(res.Amount)
		} else {
			res.L2Value = big.NewInt(0)
		}
	}
	if err := FillFees(ctx, b.l1Client, &res.Options); err != nil {
		return nil, nil, fmt.Errorf("prepare deposit: %w", err)
	}
	if res.L2GasLimit == nil {
		gas, err := b.depositL2GasLimit(ctx, res)
		if err != nil {
			return nil, nil, fmt.Errorf("prepare deposit: %w", err)
		}
		res.L2GasLimit = gas
	}
	baseCost, err := b.baseCoster.BaseCost(ctx, res.Options.PriceForEstimation(), res.L2GasLimit, res.GasPerPubdataByte)
	if err != nil {
		return nil, nil, fmt.Errorf("prepare deposit: %w", err)
	}
	required := fees.RequiredValue(baseCost, res.OperatorTip, res.L2Value)
	if res.Options.Value == nil {
		res.Options.Value = required
	} else if err := fees.CheckValue(res.Options.Value, required); err != nil {
		return nil, nil, fmt.Errorf("prepare deposit: %w", err)
	}
	return res, baseCost, nil
}

func (b *Builder) depositL2GasLimit(ctx context.Context, tx *types.DepositTransaction) (*big.Int, error) {
	// a custom bridge has an unknown L2 counterpart
	if !b.cfg.EstimateL2GasLimit || len(tx.CustomBridgeData) > 0 {
		return big.NewInt(fees.DefaultL2GasLimit), nil
	}
	var msg ethereum.CallMsg
	if types.IsETH(tx.Token) {
		msg = ethereum.CallMsg{From: b.from, To: tx.To, Value: tx.L2Value}
	} else {
		l1Bridges, err := b.resolver.L1BridgeContracts(ctx)
		if err != nil {
			return nil, err
		}
		l2Bridges, err := b.resolver.L2BridgeContracts(ctx)
		if err != nil {
			return nil, err
		}
		l1Bridge := l1Bridges.ERC20
		if tx.BridgeAddress != nil {
			l1Bridge = *tx.BridgeAddress
		}
		meta, err := contracts.ReadTokenMetadata(ctx, b.l1Client, tx.Token)
		if err != nil {
			return nil, fmt.Errorf("token metadata: %w", err)
		}
		bridgeData, err := contracts.EncodeBridgeData(meta)
		if err != nil {
			return nil, err
		}
		data, err := contracts.L2Bridge.Encode("finalizeDeposit", b.from, *tx.To, tx.Token, tx.Amount, bridgeData)
		if err != nil {
			return nil, err
		}
		msg = ethereum.CallMsg{From: resolver.ApplyL1ToL2Alias(l1Bridge), To: &l2Bridges.ERC20, Data: data}
	}
	gas, err := b.l2Client.EstimateGasL1ToL2(ctx, msg, tx.GasPerPubdataByte)
	if err != nil {
		return nil, fmt.Errorf("estimate l2 gas limit: %w", err)
	}
	b.log.Debugf("estimated l2 gas limit of deposit of %s: %d", tx.Token.Hex(), gas)
	return new(big.Int).SetUint64(gas), nil
}

// DepositPlan routes a prepared deposit. ETH goes through the main contract, tokens
// through the ERC20 bridge, preceded by an approval when ApproveERC20 is set and the
// allowance does not cover the amount.
func (b *Builder) DepositPlan(ctx context.Context, tx *types.DepositTransaction) (*DepositPlan, error) {
	if tx.Options.Value == nil || tx.L2GasLimit == nil || tx.To == nil || tx.RefundRecipient == nil {
		return nil, fmt.Errorf("deposit plan: %w: deposit is not prepared", types.ErrInvalidTransaction)
	}
	l1Bridges, err := b.resolver.L1BridgeContracts(ctx)
	if err != nil {
		return nil, fmt.Errorf("deposit plan: %w", err)
	}
	if types.IsETH(tx.Token) {
		data, err := contracts.MainContract.Encode("requestL2Transaction", *tx.To, tx.L2Value, []byte{},
			tx.L2GasLimit, tx.GasPerPubdataByte, [][]byte{}, *tx.RefundRecipient)
		if err != nil {
			return nil, fmt.Errorf("deposit plan: %w", err)
		}
		return &DepositPlan{
			BridgeAddress: l1Bridges.ETH,
			Deposit: &types.TxRequest{
				From:    b.from,
				To:      l1Bridges.ETH,
				Value:   cloneBig(tx.Options.Value),
				Data:    data,
				Options: cloneOptions(tx.Options),
			},
		}, nil
	}

	bridge := l1Bridges.ERC20
	if tx.BridgeAddress != nil {
		bridge = *tx.BridgeAddress
	}
	plan := &DepositPlan{BridgeAddress: bridge}
	allowance, err := b.Allowance(ctx, tx.Token, bridge)
	if err != nil {
		return nil, fmt.Errorf("deposit plan: %w", err)
	}
	if allowance.Cmp(tx.Amount) < 0 {
		if !tx.ApproveERC20 {
			return nil, fmt.Errorf("deposit plan: %w: allowance %s of %s is below %s",
				types.ErrAllowanceInsufficient, allowance, bridge.Hex(), tx.Amount)
		}
		approval, err := b.ApproveTx(tx.Token, bridge, tx.Amount)
		if err != nil {
			return nil, fmt.Errorf("deposit plan: %w", err)
		}
		approval.Options = feeOptions(tx.Options)
		plan.Approval = approval
	}
	data := common.CopyBytes(tx.CustomBridgeData)
	if len(data) == 0 {
		data, err = contracts.L1ERC20Bridge.Encode("deposit", *tx.To, tx.Token, tx.Amount,
			tx.L2GasLimit, tx.GasPerPubdataByte, *tx.RefundRecipient)
		if err != nil {
			return nil, fmt.Errorf("deposit plan: %w", err)
		}
	}
	plan.Deposit = &types.TxRequest{
		From:    b.from,
		To:      bridge,
		Value:   cloneBig(tx.Options.Value),
		Data:    data,
		Options: cloneOptions(tx.Options),
	}
	return plan, nil
}

// Allowance returns the amount of token the bridge may pull from the account on L1
func (b *Builder) Allowance(ctx context.Context, token, bridge common.Address) (*big.Int, error) {
	allowance, err := contracts.ERC20.CallBig(ctx, b.l1Client, token, nil, "allowance", b.from, bridge)
	if err != nil {
		return nil, fmt.Errorf("allowance: %w", err)
	}
	return allowance, nil
}

// EstimateGasDeposit returns the L1 gas units of the deposit call, without margin
func (b *Builder) EstimateGasDeposit(ctx context.Context, tx *types.DepositTransaction) (uint64, error) {
	prepared, err := b.PrepareDepositTx(ctx, tx)
	if err != nil {
		return 0, err
	}
	return b.estimateDeposit(ctx, prepared)
}

func (b *Builder) estimateDeposit(ctx context.Context, prepared *types.DepositTransaction) (uint64, error) {
	plan, err := b.DepositPlan(ctx, prepared)
	if err != nil {
		return 0, err
	}
	gas, err := b.l1Client.EstimateGas(ctx, plan.Deposit.CallMsg())
	if err != nil {
		return 0, fmt.Errorf("estimate deposit gas: %w", err)
	}
	return gas, nil
}

// GetFullRequiredDepositFee returns the L1 and L2 costs of a deposit. It fails with
// ErrInsufficientBalance when the account can't pay the base cost.
func (b *Builder) GetFullRequiredDepositFee(ctx context.Context, tx *types.DepositTransaction) (*types.FullDepositFee, error) {
	req := cloneDeposit(tx)
	req.Amount = new(big.Int).Set(dummyAmount)
	req.Options.Value = nil
	prepared, baseCost, err := b.prepareDeposit(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("deposit fee: %w", err)
	}
	balance, err := b.l1Client.BalanceAt(ctx, b.from, nil)
	if err != nil {
		return nil, fmt.Errorf("deposit fee: l1 balance: %w", err)
	}
	if baseCost.Cmp(new(big.Int).Add(balance, dummyAmount)) >= 0 {
		return nil, fmt.Errorf("deposit fee: %w: base cost %s, balance %s", types.ErrInsufficientBalance, baseCost, balance)
	}
	if !types.IsETH(prepared.Token) {
		// the fee estimation must not enqueue an approval
		prepared.ApproveERC20 = false
	}
	l1GasLimit, err := b.estimateDeposit(ctx, prepared)
	if err != nil {
		return nil, fmt.Errorf("deposit fee: %w", err)
	}
	fee := &types.FullDepositFee{
		BaseCost:   baseCost,
		L1GasLimit: l1GasLimit,
		L2GasLimit: prepared.L2GasLimit,
	}
	if prepared.Options.IsLegacy() {
		fee.GasPrice = prepared.Options.GasPrice
	} else {
		fee.MaxFeePerGas = prepared.Options.MaxFeePerGas
		fee.MaxPriorityFeePerGas = prepared.Options.MaxPriorityFeePerGas
	}
	return fee, nil
}
