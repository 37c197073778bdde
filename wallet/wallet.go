package wallet

import (
	"context"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/zkbridge/walletkit/contracts"
	"github.com/zkbridge/walletkit/fees"
	"github.com/zkbridge/walletkit/log"
	"github.com/zkbridge/walletkit/resolver"
	"github.com/zkbridge/walletkit/signer"
	"github.com/zkbridge/walletkit/txbuilder"
	"github.com/zkbridge/walletkit/types"
	"golang.org/x/sync/errgroup"
)

// layer is one of the two chains the wallet sends transactions to
type layer struct {
	name    string
	client  types.ChainClienter
	chainID *big.Int
}

// Wallet is the bridge wallet of a single account. It keeps no state besides the
// resolver caches, so it is safe for concurrent use.
type Wallet struct {
	log        *log.Logger
	cfg        Config
	signer     signer.Signer
	l1         layer
	l2         layer
	l2Client   types.L2Clienter
	resolver   *resolver.Resolver
	baseCoster fees.BaseCoster
	builder    *txbuilder.Builder
}

// New creates a Wallet for the account of s. A nil cache gives the wallet its own token cache.
func New(ctx context.Context, logger *log.Logger, cfg Config,
	l1Client types.ChainClienter, l2Client types.L2Clienter,
	s signer.Signer, cache *resolver.TokenCache) (*Wallet, error) {
	l1ChainID, err := l1Client.ChainID(ctx)
	if err != nil {
		return nil, fmt.Errorf("wallet: l1 chain id: %w", err)
	}
	l2ChainID, err := l2Client.ChainID(ctx)
	if err != nil {
		return nil, fmt.Errorf("wallet: l2 chain id: %w", err)
	}
	res := resolver.New(logger.WithFields("component", "resolver"), l2Client, cache)
	baseCoster, err := fees.NewBaseCoster(cfg.Fees, l1Client, res)
	if err != nil {
		return nil, fmt.Errorf("wallet: %w", err)
	}
	builder := txbuilder.New(logger.WithFields("component", "txbuilder"), cfg.Builder,
		s.Address(), l1Client, l2Client, res, baseCoster)
	logger.Infof("wallet %s ready, l1 chain %s, l2 chain %s", s.Address().Hex(), l1ChainID, l2ChainID)
	return &Wallet{
		log:        logger,
		cfg:        cfg,
		signer:     s,
		l1:         layer{name: "l1", client: l1Client, chainID: l1ChainID},
		l2:         layer{name: "l2", client: l2Client, chainID: l2ChainID},
		l2Client:   l2Client,
		resolver:   res,
		baseCoster: baseCoster,
		builder:    builder,
	}, nil
}

// Address returns the account of the wallet
func (w *Wallet) Address() common.Address {
	return w.signer.Address()
}

// Resolver returns the token and address resolver of the wallet
func (w *Wallet) Resolver() *resolver.Resolver {
	return w.resolver
}

// Builder returns the transaction builder of the wallet
func (w *Wallet) Builder() *txbuilder.Builder {
	return w.builder
}

func (w *Wallet) MainContract(ctx context.Context) (common.Address, error) {
	return w.resolver.MainContract(ctx)
}

func (w *Wallet) L1BridgeContracts(ctx context.Context) (types.BridgeContracts, error) {
	return w.resolver.L1BridgeContracts(ctx)
}

func (w *Wallet) L2BridgeContracts(ctx context.Context) (types.BridgeContracts, error) {
	return w.resolver.L2BridgeContracts(ctx)
}

// L2TokenAddress returns the L2 address of the L1 token l1Token
func (w *Wallet) L2TokenAddress(ctx context.Context, l1Token common.Address) (common.Address, error) {
	return w.resolver.L2TokenAddress(ctx, l1Token)
}

// L1TokenAddress returns the L1 address of the L2 token l2Token
func (w *Wallet) L1TokenAddress(ctx context.Context, l2Token common.Address) (common.Address, error) {
	return w.resolver.L1TokenAddress(ctx, l2Token)
}

// GetBalance returns the L2 balance of token at block
func (w *Wallet) GetBalance(ctx context.Context, token common.Address, block types.BlockParam) (*big.Int, error) {
	return w.balanceOf(ctx, w.l2, token, block)
}

// GetL1Balance returns the L1 balance of token at block
func (w *Wallet) GetL1Balance(ctx context.Context, token common.Address, block types.BlockParam) (*big.Int, error) {
	return w.balanceOf(ctx, w.l1, token, block)
}

func (w *Wallet) balanceOf(ctx context.Context, l layer, token common.Address, block types.BlockParam) (*big.Int, error) {
	blockNum, err := block.ToBlockNum()
	if err != nil {
		return nil, err
	}
	if types.IsETH(token) {
		balance, err := l.client.BalanceAt(ctx, w.Address(), blockNum)
		if err != nil {
			return nil, fmt.Errorf("%s balance: %w", l.name, err)
		}
		return balance, nil
	}
	balance, err := contracts.ERC20.CallBig(ctx, l.client, token, blockNum, "balanceOf", w.Address())
	if err != nil {
		return nil, fmt.Errorf("%s balance of %s: %w", l.name, token.Hex(), err)
	}
	return balance, nil
}

// GetAllBalances returns every non-zero L2 balance of the account
func (w *Wallet) GetAllBalances(ctx context.Context) (map[common.Address]*big.Int, error) {
	balances, err := w.l2Client.AllAccountBalances(ctx, w.Address())
	if err != nil {
		return nil, fmt.Errorf("all balances: %w", err)
	}
	return balances, nil
}

// GetBalances returns the L2 balances of tokens at block, queried concurrently
func (w *Wallet) GetBalances(ctx context.Context, tokens []common.Address,
	block types.BlockParam) (map[common.Address]*big.Int, error) {
	results := make([]*big.Int, len(tokens))
	g, gctx := errgroup.WithContext(ctx)
	for i, token := range tokens {
		g.Go(func() error {
			balance, err := w.GetBalance(gctx, token, block)
			if err != nil {
				return err
			}
			results[i] = balance
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	balances := make(map[common.Address]*big.Int, len(tokens))
	for i, token := range tokens {
		balances[token] = results[i]
	}
	return balances, nil
}

// GetAllowanceL1 returns the amount of token the bridge may pull from the account.
// A nil bridge is the default L1 ERC20 bridge.
func (w *Wallet) GetAllowanceL1(ctx context.Context, token common.Address, bridge *common.Address) (*big.Int, error) {
	spender, err := w.l1ERC20Bridge(ctx, bridge)
	if err != nil {
		return nil, err
	}
	return w.builder.Allowance(ctx, token, spender)
}

func (w *Wallet) l1ERC20Bridge(ctx context.Context, bridge *common.Address) (common.Address, error) {
	if bridge != nil {
		return *bridge, nil
	}
	bridges, err := w.resolver.L1BridgeContracts(ctx)
	if err != nil {
		return common.Address{}, err
	}
	return bridges.ERC20, nil
}

// GetBaseCost returns the base cost of a priority operation with l2GasLimit. A nil
// gasPerPubdata uses the protocol default and a nil gasPrice the current L1 gas price.
func (w *Wallet) GetBaseCost(ctx context.Context, l2GasLimit, gasPerPubdata, gasPrice *big.Int) (*big.Int, error) {
	if l2GasLimit == nil || l2GasLimit.Sign() < 0 {
		return nil, fmt.Errorf("base cost: %w: invalid l2 gas limit %v", types.ErrInvalidTransaction, l2GasLimit)
	}
	if gasPerPubdata == nil {
		gasPerPubdata = big.NewInt(fees.DefaultGasPerPubdataByte)
	}
	if gasPrice == nil {
		price, err := w.l1.client.SuggestGasPrice(ctx)
		if err != nil {
			return nil, fmt.Errorf("base cost: gas price: %w", err)
		}
		gasPrice = price
	}
	return w.baseCoster.BaseCost(ctx, gasPrice, l2GasLimit, gasPerPubdata)
}

// GetDeploymentNonce returns the number of contracts deployed by the account on L2
func (w *Wallet) GetDeploymentNonce(ctx context.Context) (*big.Int, error) {
	nonce, err := contracts.NonceHolder.CallBig(ctx, w.l2.client, types.NonceHolderAddress, nil,
		"getDeploymentNonce", w.Address())
	if err != nil {
		return nil, fmt.Errorf("deployment nonce: %w", err)
	}
	return nonce, nil
}

func (w *Wallet) PrepareDepositTx(ctx context.Context, tx *types.DepositTransaction) (*types.DepositTransaction, error) {
	return w.builder.PrepareDepositTx(ctx, tx)
}

func (w *Wallet) GetFullRequiredDepositFee(ctx context.Context, tx *types.DepositTransaction) (*types.FullDepositFee, error) {
	return w.builder.GetFullRequiredDepositFee(ctx, tx)
}

func (w *Wallet) EstimateGasDeposit(ctx context.Context, tx *types.DepositTransaction) (uint64, error) {
	return w.builder.EstimateGasDeposit(ctx, tx)
}

func (w *Wallet) GetRequestExecuteTransaction(ctx context.Context,
	msg *types.RequestExecuteCallMsg) (*types.TxRequest, error) {
	return w.builder.GetRequestExecuteTransaction(ctx, msg)
}

func (w *Wallet) EstimateGasRequestExecute(ctx context.Context, msg *types.RequestExecuteCallMsg) (uint64, error) {
	return w.builder.EstimateGasRequestExecute(ctx, msg)
}
