package txbuilder

import (
	"context"
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/require"
	"github.com/zkbridge/walletkit/contracts"
	"github.com/zkbridge/walletkit/types"
)

func TestWithdrawTx(t *testing.T) {
	receiver := common.HexToAddress("0xa61464658AfeAf65CccaaFD3a512b69A83B77618")

	t.Run("eth", func(t *testing.T) {
		b, _, _ := newTestBuilder(t, Config{})
		req, err := b.WithdrawTx(context.Background(), &types.WithdrawTransaction{
			Token:  types.EthAddress,
			Amount: big.NewInt(7_000_000_000),
		})
		require.NoError(t, err)
		require.Equal(t, types.L2EthTokenAddress, req.To)
		require.Equal(t, big.NewInt(7_000_000_000), req.Value)
		args, err := contracts.L2EthToken.DecodeInput("withdraw", req.Data)
		require.NoError(t, err)
		require.Equal(t, walletAddr, args[0].(common.Address))
	})
	t.Run("token through default bridge", func(t *testing.T) {
		b, _, l2 := newTestBuilder(t, Config{})
		expectBridgeDiscovery(l2)
		req, err := b.WithdrawTx(context.Background(), &types.WithdrawTransaction{
			Token:  l2Token,
			Amount: big.NewInt(5),
			To:     &receiver,
		})
		require.NoError(t, err)
		require.Equal(t, l2Bridge, req.To)
		require.Equal(t, big.NewInt(0), req.Value)
		args, err := contracts.L2Bridge.DecodeInput("withdraw", req.Data)
		require.NoError(t, err)
		require.Equal(t, receiver, args[0].(common.Address))
		require.Equal(t, l2Token, args[1].(common.Address))
		require.Equal(t, big.NewInt(5), args[2].(*big.Int))
	})
	t.Run("token through custom bridge", func(t *testing.T) {
		b, _, _ := newTestBuilder(t, Config{})
		custom := common.HexToAddress("0xc0ffee")
		req, err := b.WithdrawTx(context.Background(), &types.WithdrawTransaction{
			Token:         l2Token,
			Amount:        big.NewInt(5),
			BridgeAddress: &custom,
		})
		require.NoError(t, err)
		require.Equal(t, custom, req.To)
	})
	t.Run("invalid amount", func(t *testing.T) {
		b, _, _ := newTestBuilder(t, Config{})
		_, err := b.WithdrawTx(context.Background(), &types.WithdrawTransaction{Token: l2Token})
		require.ErrorIs(t, err, types.ErrInvalidTransaction)
	})
}

func TestTransferTx(t *testing.T) {
	b, _, _ := newTestBuilder(t, Config{})
	to := common.HexToAddress("0xa61464658AfeAf65CccaaFD3a512b69A83B77618")
	nonce := uint64(3)

	req, err := b.TransferTx(context.Background(), &types.TransferTransaction{
		To:           to,
		TokenAddress: types.L2EthTokenAddress,
		Amount:       big.NewInt(7_000_000_000),
		Options:      types.TransactionOptions{Nonce: &nonce},
	})
	require.NoError(t, err)
	require.Equal(t, to, req.To)
	require.Empty(t, req.Data)
	require.Equal(t, big.NewInt(7_000_000_000), req.Value)
	require.Equal(t, nonce, *req.Options.Nonce)
	require.NotSame(t, &nonce, req.Options.Nonce)

	req, err = b.TransferTx(context.Background(), &types.TransferTransaction{
		To:           to,
		TokenAddress: l2Token,
		Amount:       big.NewInt(5),
	})
	require.NoError(t, err)
	require.Equal(t, l2Token, req.To)
	args, err := contracts.ERC20.DecodeInput("transfer", req.Data)
	require.NoError(t, err)
	require.Equal(t, to, args[0].(common.Address))

	_, err = b.TransferTx(context.Background(), &types.TransferTransaction{TokenAddress: l2Token, Amount: big.NewInt(5)})
	require.ErrorIs(t, err, types.ErrInvalidTransaction)
}
