package wallet

import (
	"context"
	"errors"
	"math/big"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	cfgtypes "github.com/zkbridge/walletkit/config/types"
	"github.com/zkbridge/walletkit/fees"
	"github.com/zkbridge/walletkit/log"
	"github.com/zkbridge/walletkit/signer"
	"github.com/zkbridge/walletkit/types"
	"github.com/zkbridge/walletkit/types/mocks"
)

// well known development key of 0x36615Cf349d7F6344891B1e7CA7C72883F5dc049
const devPrivateKey = "0x7726827caac94a7f9e1b160f7ea819f172f7b6f9d2a97f992c38edeab82d4110"

var walletAddr = common.HexToAddress("0x36615Cf349d7F6344891B1e7CA7C72883F5dc049")

func eth(n int64) *big.Int {
	return new(big.Int).Mul(big.NewInt(n), big.NewInt(1_000_000_000_000_000_000))
}

func newTestSigner(t *testing.T) signer.Signer {
	t.Helper()
	s := signer.NewPrivateKeySign("test", log.WithFields("module", "signer"), devPrivateKey)
	require.NoError(t, s.Initialize(context.Background()))
	return s
}

func newTestWallet(t *testing.T, env *bridgeEnv, cfg Config) *Wallet {
	t.Helper()
	if cfg.PollInterval.Duration == 0 {
		cfg.PollInterval = cfgtypes.NewDuration(time.Millisecond)
	}
	w, err := New(context.Background(), log.WithFields("module", "wallet"), cfg, env.l1, env.l2, newTestSigner(t), nil)
	require.NoError(t, err)
	return w
}

func TestNew(t *testing.T) {
	t.Run("l1 chain id error", func(t *testing.T) {
		l1 := mocks.NewChainClienter(t)
		l2 := mocks.NewL2Clienter(t)
		l1.EXPECT().ChainID(mock.Anything).Return(nil, errors.New("connection refused")).Once()
		_, err := New(context.Background(), log.WithFields("module", "wallet"), Config{}, l1, l2, newTestSigner(t), nil)
		require.ErrorContains(t, err, "l1 chain id: connection refused")
	})
	t.Run("unknown fee model", func(t *testing.T) {
		env := newBridgeEnv(big.NewInt(1_000_000_000))
		_, err := New(context.Background(), log.WithFields("module", "wallet"),
			Config{Fees: fees.Config{Model: "oracle"}}, env.l1, env.l2, newTestSigner(t), nil)
		require.ErrorContains(t, err, "unknown fee model")
	})
	t.Run("ok", func(t *testing.T) {
		env := newBridgeEnv(big.NewInt(1_000_000_000))
		w := newTestWallet(t, env, Config{})
		require.Equal(t, walletAddr, w.Address())
		require.Equal(t, walletAddr, w.Builder().From())
		require.Equal(t, 0, w.Resolver().Cache().Len())
	})
}

func TestAddresses(t *testing.T) {
	ctx := context.Background()
	env := newBridgeEnv(big.NewInt(1_000_000_000))
	w := newTestWallet(t, env, Config{})

	main, err := w.MainContract(ctx)
	require.NoError(t, err)
	require.Equal(t, mainContractAddr, main)

	l1Bridges, err := w.L1BridgeContracts(ctx)
	require.NoError(t, err)
	require.Equal(t, types.BridgeContracts{ETH: mainContractAddr, ERC20: l1BridgeAddr}, l1Bridges)

	l2Bridges, err := w.L2BridgeContracts(ctx)
	require.NoError(t, err)
	require.Equal(t, types.BridgeContracts{ETH: types.L2EthTokenAddress, ERC20: l2BridgeAddr}, l2Bridges)

	l2, err := w.L2TokenAddress(ctx, l1TokenAddr)
	require.NoError(t, err)
	require.Equal(t, l2TokenAddr, l2)
	l1, err := w.L1TokenAddress(ctx, l2)
	require.NoError(t, err)
	require.Equal(t, l1TokenAddr, l1)

	ethL2, err := w.L2TokenAddress(ctx, types.EthAddress)
	require.NoError(t, err)
	require.Equal(t, types.EthAddress, ethL2)

	_, err = w.L2TokenAddress(ctx, otherAddr)
	require.ErrorIs(t, err, types.ErrUnknownToken)
}

func TestBalances(t *testing.T) {
	ctx := context.Background()
	env := newBridgeEnv(big.NewInt(1_000_000_000))
	env.l1.setBalance(walletAddr, eth(10))
	env.l2.setBalance(walletAddr, eth(2))
	env.l1Token.mint(walletAddr, big.NewInt(1000))
	env.l2Token.mint(walletAddr, big.NewInt(30))
	w := newTestWallet(t, env, Config{})

	balance, err := w.GetBalance(ctx, types.EthAddress, types.LatestBlock)
	require.NoError(t, err)
	require.Equal(t, eth(2), balance)

	balance, err = w.GetBalance(ctx, types.L2EthTokenAddress, types.LatestBlock)
	require.NoError(t, err)
	require.Equal(t, eth(2), balance)

	balance, err = w.GetBalance(ctx, l2TokenAddr, types.FinalizedBlock)
	require.NoError(t, err)
	require.Equal(t, big.NewInt(30), balance)

	balance, err = w.GetL1Balance(ctx, types.EthAddress, types.LatestBlock)
	require.NoError(t, err)
	require.Equal(t, eth(10), balance)

	balance, err = w.GetL1Balance(ctx, l1TokenAddr, types.LatestBlock)
	require.NoError(t, err)
	require.Equal(t, big.NewInt(1000), balance)

	all, err := w.GetAllBalances(ctx)
	require.NoError(t, err)
	require.Equal(t, map[common.Address]*big.Int{
		types.EthAddress: eth(2),
		l2TokenAddr:      big.NewInt(30),
	}, all)

	balances, err := w.GetBalances(ctx, []common.Address{types.EthAddress, l2TokenAddr}, types.LatestBlock)
	require.NoError(t, err)
	require.Equal(t, all, balances)

	_, err = w.GetBalances(ctx, []common.Address{types.EthAddress, otherAddr}, types.LatestBlock)
	require.ErrorContains(t, err, "no contract")
}

func TestGetBaseCost(t *testing.T) {
	ctx := context.Background()
	expected := big.NewInt(577984 * 500_000_000)
	for _, model := range []string{fees.ModelLocal, fees.ModelContract} {
		t.Run(model, func(t *testing.T) {
			env := newBridgeEnv(big.NewInt(1_000_000_000))
			w := newTestWallet(t, env, Config{Fees: fees.Config{Model: model}})

			baseCost, err := w.GetBaseCost(ctx, big.NewInt(fees.DefaultL2GasLimit), nil, big.NewInt(1_000_000_000))
			require.NoError(t, err)
			require.Equal(t, expected, baseCost)

			baseCost, err = w.GetBaseCost(ctx, big.NewInt(fees.DefaultL2GasLimit), big.NewInt(800), nil)
			require.NoError(t, err)
			require.Equal(t, expected, baseCost)
		})
	}

	env := newBridgeEnv(big.NewInt(1_000_000_000))
	w := newTestWallet(t, env, Config{})
	_, err := w.GetBaseCost(ctx, nil, nil, nil)
	require.ErrorIs(t, err, types.ErrInvalidTransaction)
}

func TestGetDeploymentNonceAndAllowance(t *testing.T) {
	ctx := context.Background()
	env := newBridgeEnv(big.NewInt(1_000_000_000))
	env.l1Token.setAllowance(walletAddr, l1BridgeAddr, big.NewInt(77))
	env.l1Token.setAllowance(walletAddr, otherAddr, big.NewInt(5))
	w := newTestWallet(t, env, Config{})

	nonce, err := w.GetDeploymentNonce(ctx)
	require.NoError(t, err)
	require.Equal(t, big.NewInt(deploymentNonce), nonce)

	allowance, err := w.GetAllowanceL1(ctx, l1TokenAddr, nil)
	require.NoError(t, err)
	require.Equal(t, big.NewInt(77), allowance)

	other := otherAddr
	allowance, err = w.GetAllowanceL1(ctx, l1TokenAddr, &other)
	require.NoError(t, err)
	require.Equal(t, big.NewInt(5), allowance)
}

func TestDelegatedEstimations(t *testing.T) {
	ctx := context.Background()
	env := newBridgeEnv(big.NewInt(1_000_000_000))
	env.l1.setBalance(walletAddr, eth(10))
	w := newTestWallet(t, env, Config{})

	prepared, err := w.PrepareDepositTx(ctx, &types.DepositTransaction{Token: types.EthAddress, Amount: big.NewInt(7_000_000)})
	require.NoError(t, err)
	require.Equal(t, big.NewInt(288_992_007_000_000), prepared.Options.Value)

	gas, err := w.EstimateGasDeposit(ctx, &types.DepositTransaction{Token: types.EthAddress, Amount: big.NewInt(0)})
	require.NoError(t, err)
	require.Positive(t, gas)

	fee, err := w.GetFullRequiredDepositFee(ctx, &types.DepositTransaction{Token: types.EthAddress})
	require.NoError(t, err)
	require.Equal(t, big.NewInt(288_992_000_000_000), fee.BaseCost)
	require.Equal(t, uint64(estimateCall), fee.L1GasLimit)
	require.Equal(t, big.NewInt(2_500_000_000), fee.MaxFeePerGas)

	msg := &types.RequestExecuteCallMsg{ContractAddress: otherAddr, CallData: []byte{0xde, 0xad}}
	req, err := w.GetRequestExecuteTransaction(ctx, msg)
	require.NoError(t, err)
	require.Equal(t, mainContractAddr, req.To)
	gas, err = w.EstimateGasRequestExecute(ctx, msg)
	require.NoError(t, err)
	require.Equal(t, uint64(estimateCall), gas)
}
