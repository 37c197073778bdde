package txbuilder

import (
	"context"
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	coretypes "github.com/ethereum/go-ethereum/core/types"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/zkbridge/walletkit/contracts"
	"github.com/zkbridge/walletkit/fees"
	"github.com/zkbridge/walletkit/log"
	"github.com/zkbridge/walletkit/resolver"
	"github.com/zkbridge/walletkit/types"
	"github.com/zkbridge/walletkit/types/mocks"
)

var (
	walletAddr   = common.HexToAddress("0x36615Cf349d7F6344891B1e7CA7C72883F5dc049")
	mainContract = common.HexToAddress("0x9A6DE0f62Aa270A8bCB1e2610078650D539B1Ef9")
	l1Bridge     = common.HexToAddress("0x927DdFcc55164a59E0F33918D13a2D559bC10ce7")
	l2Bridge     = common.HexToAddress("0x00ff932A6d70E2B8f1Eb4919e1e09C1923E7e57b")
	l1Token      = common.HexToAddress("0x881567B68502e6d7A7a3556FF4313B637Ba47F4E")
	l2Token      = common.HexToAddress("0x5A3e7a5d2E4F1Ccc31bA7bD3D6AF5e9c91F0a4b8")
)

func newTestBuilder(t *testing.T, cfg Config) (*Builder, *mocks.ChainClienter, *mocks.L2Clienter) {
	t.Helper()
	l1 := mocks.NewChainClienter(t)
	l2 := mocks.NewL2Clienter(t)
	res := resolver.New(log.WithFields("module", "resolver"), l2, nil)
	b := New(log.WithFields("module", "txbuilder"), cfg, walletAddr, l1, l2, res, fees.NewLocalBaseCoster(fees.DefaultParams()))
	return b, l1, l2
}

func expectBridgeDiscovery(l2 *mocks.L2Clienter) {
	l2.EXPECT().BridgeContracts(mock.Anything).Return(&types.BridgeAddresses{
		L1ERC20DefaultBridge: l1Bridge,
		L2ERC20DefaultBridge: l2Bridge,
	}, nil).Maybe()
	l2.EXPECT().MainContractAddress(mock.Anything).Return(mainContract, nil).Maybe()
}

func expectHeader(l1 *mocks.ChainClienter, baseFee *big.Int) {
	l1.EXPECT().HeaderByNumber(mock.Anything, (*big.Int)(nil)).Return(&coretypes.Header{BaseFee: baseFee}, nil)
}

// erc20Answers serves ERC20 view calls of l1Token on the mocked L1
func erc20Answers(t *testing.T, allowance *big.Int) func(context.Context, ethereum.CallMsg, *big.Int) ([]byte, error) {
	t.Helper()
	return func(_ context.Context, call ethereum.CallMsg, _ *big.Int) ([]byte, error) {
		require.Equal(t, l1Token, *call.To)
		method, err := contracts.ERC20.MethodByID(call.Data)
		require.NoError(t, err)
		switch method.Name {
		case "name":
			return method.Outputs.Pack("Crown")
		case "symbol":
			return method.Outputs.Pack("CRWN")
		case "decimals":
			return method.Outputs.Pack(uint8(18))
		case "allowance":
			args, err := method.Inputs.Unpack(call.Data[4:])
			require.NoError(t, err)
			require.Equal(t, walletAddr, args[0].(common.Address))
			return method.Outputs.Pack(allowance)
		}
		t.Fatalf("unexpected call %s", method.Name)
		return nil, nil
	}
}

func TestFillFees(t *testing.T) {
	t.Run("dynamic fees from chain", func(t *testing.T) {
		l1 := mocks.NewChainClienter(t)
		expectHeader(l1, big.NewInt(7))
		l1.EXPECT().SuggestGasTipCap(mock.Anything).Return(big.NewInt(1_500_000_000), nil).Once()
		var opts types.TransactionOptions
		require.NoError(t, FillFees(context.Background(), l1, &opts))
		require.Equal(t, big.NewInt(1_500_000_010), opts.MaxFeePerGas)
		require.Equal(t, big.NewInt(1_500_000_000), opts.MaxPriorityFeePerGas)
		require.Nil(t, opts.GasPrice)
	})
	t.Run("legacy chain", func(t *testing.T) {
		l1 := mocks.NewChainClienter(t)
		expectHeader(l1, nil)
		l1.EXPECT().SuggestGasPrice(mock.Anything).Return(big.NewInt(3), nil).Once()
		var opts types.TransactionOptions
		require.NoError(t, FillFees(context.Background(), l1, &opts))
		require.Equal(t, big.NewInt(3), opts.GasPrice)
		require.True(t, opts.IsLegacy())
	})
	t.Run("max fee on legacy chain becomes the gas price", func(t *testing.T) {
		l1 := mocks.NewChainClienter(t)
		expectHeader(l1, nil)
		opts := types.TransactionOptions{MaxFeePerGas: big.NewInt(2_000_000_000), MaxPriorityFeePerGas: big.NewInt(1)}
		require.NoError(t, FillFees(context.Background(), l1, &opts))
		require.True(t, opts.IsLegacy())
		require.Equal(t, big.NewInt(2_000_000_000), opts.GasPrice)
		require.Nil(t, opts.MaxPriorityFeePerGas)
	})
	t.Run("explicit legacy price is kept without queries", func(t *testing.T) {
		l1 := mocks.NewChainClienter(t)
		opts := types.TransactionOptions{GasPrice: big.NewInt(0)}
		require.NoError(t, FillFees(context.Background(), l1, &opts))
		require.Equal(t, big.NewInt(0), opts.GasPrice)
	})
	t.Run("max fee below base fee", func(t *testing.T) {
		l1 := mocks.NewChainClienter(t)
		expectHeader(l1, big.NewInt(100))
		opts := types.TransactionOptions{MaxFeePerGas: big.NewInt(50), MaxPriorityFeePerGas: big.NewInt(1)}
		require.ErrorIs(t, FillFees(context.Background(), l1, &opts), types.ErrInsufficientFee)
	})
	t.Run("tip capped at max fee", func(t *testing.T) {
		l1 := mocks.NewChainClienter(t)
		expectHeader(l1, big.NewInt(1))
		l1.EXPECT().SuggestGasTipCap(mock.Anything).Return(big.NewInt(1_000), nil).Once()
		opts := types.TransactionOptions{MaxFeePerGas: big.NewInt(10)}
		require.NoError(t, FillFees(context.Background(), l1, &opts))
		require.Equal(t, big.NewInt(10), opts.MaxPriorityFeePerGas)
	})
}

func TestApproveTx(t *testing.T) {
	b, _, _ := newTestBuilder(t, Config{})
	req, err := b.ApproveTx(l1Token, l1Bridge, big.NewInt(5))
	require.NoError(t, err)
	require.Equal(t, l1Token, req.To)
	require.Equal(t, walletAddr, req.From)
	args, err := contracts.ERC20.DecodeInput("approve", req.Data)
	require.NoError(t, err)
	require.Equal(t, l1Bridge, args[0].(common.Address))
	require.Equal(t, big.NewInt(5), args[1].(*big.Int))

	_, err = b.ApproveTx(l1Token, l1Bridge, big.NewInt(-5))
	require.ErrorIs(t, err, types.ErrInvalidTransaction)
}
