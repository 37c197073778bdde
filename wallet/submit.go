package wallet

import (
	"context"
	"fmt"
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum/common"
	coretypes "github.com/ethereum/go-ethereum/core/types"
	"github.com/zkbridge/walletkit/chainclient"
	"github.com/zkbridge/walletkit/fees"
	"github.com/zkbridge/walletkit/txbuilder"
	"github.com/zkbridge/walletkit/types"
	"github.com/zkbridge/walletkit/wallet/metrics"
)

// gasAdjuster changes the scaled gas estimate of a transaction before it is signed
type gasAdjuster func(gas uint64) uint64

// send fills nonce, gas and fees of req, signs it and broadcasts it on l.
// Nothing is retried: any failure is returned to the caller.
func (w *Wallet) send(ctx context.Context, l layer, req *types.TxRequest, adjust gasAdjuster) (common.Hash, error) {
	hash, err := w.signAndSend(ctx, l, req, adjust)
	if err != nil {
		metrics.TxInError()
		return common.Hash{}, err
	}
	metrics.TxSent()
	return hash, nil
}

func (w *Wallet) signAndSend(ctx context.Context, l layer, req *types.TxRequest, adjust gasAdjuster) (common.Hash, error) {
	opts := req.Options
	if err := txbuilder.FillFees(ctx, l.client, &opts); err != nil {
		return common.Hash{}, err
	}
	var nonce uint64
	if opts.Nonce != nil {
		nonce = *opts.Nonce
	} else {
		pending, err := l.client.PendingNonceAt(ctx, w.Address())
		if err != nil {
			return common.Hash{}, fmt.Errorf("%s nonce: %w", l.name, err)
		}
		nonce = pending
	}
	var gas uint64
	if opts.GasLimit != nil {
		gas = *opts.GasLimit
	} else {
		estimation := types.TxRequest{From: req.From, To: req.To, Value: req.Value, Data: req.Data, Options: opts}
		estimated, err := l.client.EstimateGas(ctx, estimation.CallMsg())
		if err != nil {
			return common.Hash{}, fmt.Errorf("%s estimate gas: %w", l.name, err)
		}
		gas = fees.ScaleGasLimit(estimated)
		if adjust != nil {
			gas = adjust(gas)
		}
	}

	to := req.To
	value := req.Value
	if value == nil {
		value = big.NewInt(0)
	}
	var tx *coretypes.Transaction
	if opts.IsLegacy() {
		tx = coretypes.NewTx(&coretypes.LegacyTx{
			Nonce:    nonce,
			GasPrice: opts.GasPrice,
			Gas:      gas,
			To:       &to,
			Value:    value,
			Data:     req.Data,
		})
	} else {
		tip := opts.MaxPriorityFeePerGas
		if tip == nil {
			tip = big.NewInt(0)
		}
		tx = coretypes.NewTx(&coretypes.DynamicFeeTx{
			ChainID:   l.chainID,
			Nonce:     nonce,
			GasTipCap: tip,
			GasFeeCap: opts.MaxFeePerGas,
			Gas:       gas,
			To:        &to,
			Value:     value,
			Data:      req.Data,
		})
	}
	raw, err := w.signer.SignTx(ctx, tx, l.chainID)
	if err != nil {
		return common.Hash{}, fmt.Errorf("%s sign: %w", l.name, err)
	}
	hash, err := l.client.SendRawTransaction(ctx, raw)
	if err != nil {
		return common.Hash{}, fmt.Errorf("%s send: %w", l.name, err)
	}
	w.log.Debugf("sent %s tx %s to %s, nonce %d, gas %d", l.name, hash.Hex(), to.Hex(), nonce, gas)
	return hash, nil
}

// waitMined waits for the receipt of hash on l and checks its status
func (w *Wallet) waitMined(ctx context.Context, l layer, hash common.Hash, timeout time.Duration) (*coretypes.Receipt, error) {
	receipt, err := chainclient.WaitForReceipt(ctx, l.client, hash, timeout, w.cfg.pollInterval())
	if err != nil {
		return nil, fmt.Errorf("%s receipt: %w", l.name, err)
	}
	if receipt.Status != coretypes.ReceiptStatusSuccessful {
		return receipt, fmt.Errorf("%s tx %s: %w", l.name, hash.Hex(), types.ErrTxReverted)
	}
	return receipt, nil
}
