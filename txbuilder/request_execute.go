package txbuilder

import (
	"context"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum"
	"github.com/zkbridge/walletkit/contracts"
	"github.com/zkbridge/walletkit/fees"
	"github.com/zkbridge/walletkit/types"
)

// GetRequestExecuteTransaction builds the L1 call to the main contract that enqueues
// an L2 call of msg.ContractAddress with msg.CallData.
func (b *Builder) GetRequestExecuteTransaction(ctx context.Context, msg *types.RequestExecuteCallMsg) (*types.TxRequest, error) {
	if err := msg.Validate(); err != nil {
		return nil, fmt.Errorf("request execute: %w", err)
	}
	l2Value := cloneBig(msg.L2Value)
	if l2Value == nil {
		l2Value = big.NewInt(0)
	}
	gasPerPubdata := cloneBig(msg.GasPerPubdataByte)
	if gasPerPubdata == nil {
		gasPerPubdata = big.NewInt(fees.DefaultGasPerPubdataByte)
	}
	tip := cloneBig(msg.OperatorTip)
	if tip == nil {
		tip = big.NewInt(0)
	}
	refund := b.from
	if msg.RefundRecipient != nil {
		refund = *msg.RefundRecipient
	}
	factoryDeps := msg.FactoryDeps
	if factoryDeps == nil {
		factoryDeps = [][]byte{}
	}
	callData := msg.CallData
	if callData == nil {
		callData = []byte{}
	}

	opts := cloneOptions(msg.Options)
	if err := FillFees(ctx, b.l1Client, &opts); err != nil {
		return nil, fmt.Errorf("request execute: %w", err)
	}
	l2GasLimit := cloneBig(msg.L2GasLimit)
	if l2GasLimit == nil {
		l2GasLimit = big.NewInt(fees.DefaultL2GasLimit)
		if b.cfg.EstimateL2GasLimit {
			contract := msg.ContractAddress
			gas, err := b.l2Client.EstimateGasL1ToL2(ctx, ethereum.CallMsg{
				From:  b.from,
				To:    &contract,
				Value: l2Value,
				Data:  callData,
			}, gasPerPubdata)
			if err != nil {
				return nil, fmt.Errorf("request execute: estimate l2 gas limit: %w", err)
			}
			l2GasLimit = new(big.Int).SetUint64(gas)
		}
	}
	baseCost, err := b.baseCoster.BaseCost(ctx, opts.PriceForEstimation(), l2GasLimit, gasPerPubdata)
	if err != nil {
		return nil, fmt.Errorf("request execute: %w", err)
	}
	required := fees.RequiredValue(baseCost, tip, l2Value)
	if opts.Value == nil {
		opts.Value = required
	} else if err := fees.CheckValue(opts.Value, required); err != nil {
		return nil, fmt.Errorf("request execute: %w", err)
	}

	mainContract, err := b.resolver.MainContract(ctx)
	if err != nil {
		return nil, fmt.Errorf("request execute: %w", err)
	}
	data, err := contracts.MainContract.Encode("requestL2Transaction", msg.ContractAddress, l2Value, callData,
		l2GasLimit, gasPerPubdata, factoryDeps, refund)
	if err != nil {
		return nil, fmt.Errorf("request execute: %w", err)
	}
	return &types.TxRequest{
		From:    b.from,
		To:      mainContract,
		Value:   cloneBig(opts.Value),
		Data:    data,
		Options: opts,
	}, nil
}

// EstimateGasRequestExecute returns the L1 gas units of the request execute call
func (b *Builder) EstimateGasRequestExecute(ctx context.Context, msg *types.RequestExecuteCallMsg) (uint64, error) {
	req, err := b.GetRequestExecuteTransaction(ctx, msg)
	if err != nil {
		return 0, err
	}
	gas, err := b.l1Client.EstimateGas(ctx, req.CallMsg())
	if err != nil {
		return 0, fmt.Errorf("estimate request execute gas: %w", err)
	}
	return gas, nil
}
