package txbuilder

import (
	"context"
	"fmt"
	"math/big"

	"github.com/zkbridge/walletkit/contracts"
	"github.com/zkbridge/walletkit/types"
)

// WithdrawTx builds the L2 call starting a withdrawal. ETH is withdrawn through the
// L2 ETH token, other tokens through the L2 bridge.
func (b *Builder) WithdrawTx(ctx context.Context, tx *types.WithdrawTransaction) (*types.TxRequest, error) {
	if err := tx.Validate(); err != nil {
		return nil, fmt.Errorf("withdraw: %w", err)
	}
	to := b.from
	if tx.To != nil {
		to = *tx.To
	}
	if types.IsETH(tx.Token) {
		data, err := contracts.L2EthToken.Encode("withdraw", to)
		if err != nil {
			return nil, fmt.Errorf("withdraw: %w", err)
		}
		return &types.TxRequest{
			From:    b.from,
			To:      types.L2EthTokenAddress,
			Value:   new(big.Int).Set(tx.Amount),
			Data:    data,
			Options: cloneOptions(tx.Options),
		}, nil
	}
	bridge := tx.BridgeAddress
	if bridge == nil {
		bridges, err := b.resolver.L2BridgeContracts(ctx)
		if err != nil {
			return nil, fmt.Errorf("withdraw: %w", err)
		}
		bridge = &bridges.ERC20
	}
	data, err := contracts.L2Bridge.Encode("withdraw", to, tx.Token, tx.Amount)
	if err != nil {
		return nil, fmt.Errorf("withdraw: %w", err)
	}
	return &types.TxRequest{
		From:    b.from,
		To:      *bridge,
		Value:   big.NewInt(0),
		Data:    data,
		Options: cloneOptions(tx.Options),
	}, nil
}

// TransferTx builds an L2 transfer, a plain value transfer for ETH and an ERC20
// transfer call otherwise
func (b *Builder) TransferTx(_ context.Context, tx *types.TransferTransaction) (*types.TxRequest, error) {
	if err := tx.Validate(); err != nil {
		return nil, fmt.Errorf("transfer: %w", err)
	}
	if types.IsETH(tx.TokenAddress) {
		return &types.TxRequest{
			From:    b.from,
			To:      tx.To,
			Value:   new(big.Int).Set(tx.Amount),
			Options: cloneOptions(tx.Options),
		}, nil
	}
	data, err := contracts.ERC20.Encode("transfer", tx.To, tx.Amount)
	if err != nil {
		return nil, fmt.Errorf("transfer: %w", err)
	}
	return &types.TxRequest{
		From:    b.from,
		To:      tx.TokenAddress,
		Value:   big.NewInt(0),
		Data:    data,
		Options: cloneOptions(tx.Options),
	}, nil
}
