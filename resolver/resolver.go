package resolver

import (
	"context"
	"fmt"
	"sync"

	"github.com/ethereum/go-ethereum/common"
	"github.com/zkbridge/walletkit/contracts"
	"github.com/zkbridge/walletkit/log"
	"github.com/zkbridge/walletkit/types"
)

// Resolver answers token mapping and bridge routing questions. Answers are cached
// for the lifetime of the process.
type Resolver struct {
	log      *log.Logger
	l2Client types.L2Clienter
	cache    *TokenCache

	mu           sync.Mutex
	mainContract *common.Address
	bridges      *types.BridgeAddresses
}

// New creates a Resolver that queries l2Client
func New(logger *log.Logger, l2Client types.L2Clienter, cache *TokenCache) *Resolver {
	if cache == nil {
		cache = NewTokenCache()
	}
	return &Resolver{
		log:      logger,
		l2Client: l2Client,
		cache:    cache,
	}
}

// Cache returns the token cache owned by the resolver
func (r *Resolver) Cache() *TokenCache {
	return r.cache
}

// MainContract returns the address of the rollup main contract on L1
func (r *Resolver) MainContract(ctx context.Context) (common.Address, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.mainContract != nil {
		return *r.mainContract, nil
	}
	addr, err := r.l2Client.MainContractAddress(ctx)
	if err != nil {
		return common.Address{}, fmt.Errorf("main contract: %w", err)
	}
	r.log.Debugf("main contract resolved to %s", addr.Hex())
	r.mainContract = &addr
	return addr, nil
}

func (r *Resolver) bridgeAddresses(ctx context.Context) (types.BridgeAddresses, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.bridges != nil {
		return *r.bridges, nil
	}
	bridges, err := r.l2Client.BridgeContracts(ctx)
	if err != nil {
		return types.BridgeAddresses{}, fmt.Errorf("bridge contracts: %w", err)
	}
	r.log.Debugf("bridge contracts resolved: l1 erc20 %s, l2 erc20 %s",
		bridges.L1ERC20DefaultBridge.Hex(), bridges.L2ERC20DefaultBridge.Hex())
	r.bridges = bridges
	return *bridges, nil
}

// L1BridgeContracts returns the canonical bridges on L1. ETH is bridged by the main contract.
func (r *Resolver) L1BridgeContracts(ctx context.Context) (types.BridgeContracts, error) {
	bridges, err := r.bridgeAddresses(ctx)
	if err != nil {
		return types.BridgeContracts{}, err
	}
	mainContract, err := r.MainContract(ctx)
	if err != nil {
		return types.BridgeContracts{}, err
	}
	return types.BridgeContracts{ETH: mainContract, ERC20: bridges.L1ERC20DefaultBridge}, nil
}

// L2BridgeContracts returns the canonical bridges on L2. ETH is bridged by the L2 ETH token.
func (r *Resolver) L2BridgeContracts(ctx context.Context) (types.BridgeContracts, error) {
	bridges, err := r.bridgeAddresses(ctx)
	if err != nil {
		return types.BridgeContracts{}, err
	}
	return types.BridgeContracts{ETH: types.L2EthTokenAddress, ERC20: bridges.L2ERC20DefaultBridge}, nil
}

// L2TokenAddress returns the L2 address of l1Token. ETH is returned unchanged.
// A token that was never bridged yields ErrUnknownToken.
func (r *Resolver) L2TokenAddress(ctx context.Context, l1Token common.Address) (common.Address, error) {
	if l1Token == types.EthAddress {
		return types.EthAddress, nil
	}
	if addr, ok := r.cache.L2(l1Token); ok {
		return addr, nil
	}
	bridges, err := r.L2BridgeContracts(ctx)
	if err != nil {
		return common.Address{}, err
	}
	addr, err := contracts.L2Bridge.CallAddress(ctx, r.l2Client, bridges.ERC20, nil, "l2TokenAddress", l1Token)
	if err != nil {
		return common.Address{}, fmt.Errorf("l2 token address of %s: %w", l1Token.Hex(), err)
	}
	if addr == (common.Address{}) {
		return common.Address{}, fmt.Errorf("%w: no l2 token for %s", types.ErrUnknownToken, l1Token.Hex())
	}
	// the bridge derives the address even for tokens never bridged, only a deployed
	// token maps back to its l1 origin
	origin, err := contracts.L2Bridge.CallAddress(ctx, r.l2Client, bridges.ERC20, nil, "l1TokenAddress", addr)
	if err != nil {
		return common.Address{}, fmt.Errorf("l1 token address of %s: %w", addr.Hex(), err)
	}
	if origin != l1Token {
		return common.Address{}, fmt.Errorf("%w: %s is not deployed on l2", types.ErrUnknownToken, l1Token.Hex())
	}
	r.cache.Store(l1Token, addr)
	return addr, nil
}

// L1TokenAddress returns the L1 address of l2Token. ETH is returned unchanged.
func (r *Resolver) L1TokenAddress(ctx context.Context, l2Token common.Address) (common.Address, error) {
	if types.IsETH(l2Token) {
		return types.EthAddress, nil
	}
	if addr, ok := r.cache.L1(l2Token); ok {
		return addr, nil
	}
	bridges, err := r.L2BridgeContracts(ctx)
	if err != nil {
		return common.Address{}, err
	}
	addr, err := contracts.L2Bridge.CallAddress(ctx, r.l2Client, bridges.ERC20, nil, "l1TokenAddress", l2Token)
	if err != nil {
		return common.Address{}, fmt.Errorf("l1 token address of %s: %w", l2Token.Hex(), err)
	}
	if addr == (common.Address{}) {
		return common.Address{}, fmt.Errorf("%w: no l1 token for %s", types.ErrUnknownToken, l2Token.Hex())
	}
	r.cache.Store(addr, l2Token)
	return addr, nil
}

// Preload stores known token pairs, typically read from a token list
func (r *Resolver) Preload(tokens []types.Token) {
	for _, t := range tokens {
		if t.IsETH() || t.L2Address == (common.Address{}) {
			continue
		}
		r.cache.Store(t.L1Address, t.L2Address)
	}
}
