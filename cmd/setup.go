package main

import (
	"context"
	"errors"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/urfave/cli/v2"
	walletkit "github.com/zkbridge/walletkit"
	"github.com/zkbridge/walletkit/chainclient"
	"github.com/zkbridge/walletkit/config"
	"github.com/zkbridge/walletkit/log"
	"github.com/zkbridge/walletkit/opstore"
	"github.com/zkbridge/walletkit/resolver"
	"github.com/zkbridge/walletkit/signer"
	"github.com/zkbridge/walletkit/tokenlist"
	"github.com/zkbridge/walletkit/types"
	"github.com/zkbridge/walletkit/wallet"
)

var errMissingAddress = errors.New("address is required")

// runtimeEnv holds everything a command needs, Close releases it
type runtimeEnv struct {
	cfg    *config.Config
	l1     *chainclient.Client
	l2     *chainclient.Client
	wallet *wallet.Wallet
	tokens *tokenlist.List
	store  *opstore.OpStore
}

func (e *runtimeEnv) Close() {
	if e.store != nil {
		if err := e.store.Close(); err != nil {
			log.Warnf("closing operation store: %v", err)
		}
	}
	if e.l1 != nil {
		e.l1.Close()
	}
	if e.l2 != nil {
		e.l2.Close()
	}
}

func loadConfig(cliCtx *cli.Context) (*config.Config, error) {
	cfg, err := config.Load(cliCtx)
	if err != nil {
		return nil, err
	}
	log.Init(cfg.Log)
	log.Debugf("%s %s", appName, walletkit.GetVersion().Brief())
	return cfg, nil
}

// setup connects both layers and builds the wallet, the token list and the journal
func setup(cliCtx *cli.Context) (*runtimeEnv, error) {
	cfg, err := loadConfig(cliCtx)
	if err != nil {
		return nil, err
	}
	return newRuntimeEnv(cliCtx.Context, cfg)
}

func newRuntimeEnv(ctx context.Context, cfg *config.Config) (*runtimeEnv, error) {
	env := &runtimeEnv{cfg: cfg}
	var err error
	if env.l1, err = chainclient.Dial(ctx, cfg.L1); err != nil {
		return nil, fmt.Errorf("l1: %w", err)
	}
	if env.l2, err = chainclient.Dial(ctx, cfg.L2); err != nil {
		env.Close()
		return nil, fmt.Errorf("l2: %w", err)
	}
	if env.tokens, err = tokenlist.Load(cfg.TokenList); err != nil {
		env.Close()
		return nil, err
	}

	logger := log.WithFields("module", "wallet")
	s, err := signer.NewSigner(ctx, "wallet", logger, cfg.Wallet.Signer)
	if err != nil {
		env.Close()
		return nil, fmt.Errorf("signer: %w", err)
	}
	cache := resolver.NewTokenCache()
	if env.wallet, err = wallet.New(ctx, logger, cfg.Wallet, env.l1, env.l2, s, cache); err != nil {
		env.Close()
		return nil, err
	}
	env.wallet.Resolver().Preload(env.tokens.Tokens())

	l1ChainID, err := env.l1.ChainID(ctx)
	if err != nil {
		env.Close()
		return nil, fmt.Errorf("l1 chain id: %w", err)
	}
	l2ChainID, err := env.l2.ChainID(ctx)
	if err != nil {
		env.Close()
		return nil, fmt.Errorf("l2 chain id: %w", err)
	}
	env.store, err = opstore.New(ctx, log.WithFields("module", "opstore"), cfg.OpStore, opstore.ChainData{
		L1ChainID: l1ChainID.Uint64(),
		L2ChainID: l2ChainID.Uint64(),
	})
	if err != nil {
		env.Close()
		return nil, err
	}
	return env, nil
}

// journal records a submitted operation, a journal failure never hides the submission
func (e *runtimeEnv) journal(op *opstore.Operation) {
	op.Status = opstore.StatusSubmitted
	if err := e.store.Add(op); err != nil {
		log.Errorf("journaling %s operation: %v", op.Kind, err)
	}
}

// journalApproval records a mined approval, nothing is stored when the allowance was
// already sufficient
func (e *runtimeEnv) journalApproval(ctx context.Context, token common.Address, amount *big.Int,
	res *wallet.ApprovalResult) {
	if res.Status != wallet.ApprovalSubmitted {
		return
	}
	hash := res.TxHash
	op := &opstore.Operation{Kind: opstore.KindApproval, Token: token, Amount: amount,
		Recipient: res.Spender, L1Hash: &hash}
	e.journal(op)
	if op.ID == 0 {
		return
	}
	// the wallet only returns the approval once it is mined
	if err := e.store.UpdateStatus(ctx, op.ID, opstore.StatusMined, nil, nil); err != nil {
		log.Errorf("updating approval %d: %v", op.ID, err)
	}
}

// l2Token returns the L2 address of token, ETH maps to the ETH sentinel
func (e *runtimeEnv) l2Token(ctx context.Context, token types.Token) (common.Address, error) {
	if token.IsETH() {
		return types.EthAddress, nil
	}
	if token.L2Address != (common.Address{}) {
		return token.L2Address, nil
	}
	return e.wallet.L2TokenAddress(ctx, token.L1Address)
}

// lookupToken resolves the --token flag and warns when the decimals are unknown
func (e *runtimeEnv) lookupToken(s string) (types.Token, error) {
	token, err := e.tokens.Lookup(s)
	if err != nil {
		return types.Token{}, err
	}
	if !token.IsETH() && token.Symbol == "" {
		log.Warnf("token %s is not listed, amounts are read in base units", token.L1Address.Hex())
	}
	return token, nil
}

// requiredAddress parses the address given to flag, which can not be empty
func requiredAddress(flag, s string) (common.Address, error) {
	if s == "" {
		return common.Address{}, fmt.Errorf("flag %s: %w", flag, errMissingAddress)
	}
	addr, err := optionalAddress(s)
	if err != nil {
		return common.Address{}, err
	}
	return *addr, nil
}

func optionalAddress(s string) (*common.Address, error) {
	if s == "" {
		return nil, nil
	}
	if !common.IsHexAddress(s) {
		return nil, fmt.Errorf("invalid address %q", s)
	}
	addr := common.HexToAddress(s)
	return &addr, nil
}
