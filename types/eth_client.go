package types

import (
	"context"
	"math/big"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
)

// ChainClienter defines the methods the wallet needs from a single chain (L1 or L2).
// Both layers are served by implementations of this same interface.
type ChainClienter interface {
	ethereum.ChainIDReader
	ethereum.GasPricer
	ethereum.GasEstimator
	ethereum.ContractCaller

	// SendRawTransaction broadcasts an already signed transaction and returns its hash
	SendRawTransaction(ctx context.Context, rawTx []byte) (common.Hash, error)
	// BalanceAt returns the native balance of account at block (nil is latest)
	BalanceAt(ctx context.Context, account common.Address, blockNumber *big.Int) (*big.Int, error)
	// TransactionReceipt returns ethereum.NotFound while the transaction is pending
	TransactionReceipt(ctx context.Context, txHash common.Hash) (*types.Receipt, error)
	SuggestGasTipCap(ctx context.Context) (*big.Int, error)
	HeaderByNumber(ctx context.Context, number *big.Int) (*types.Header, error)
	PendingNonceAt(ctx context.Context, account common.Address) (uint64, error)
}

// ZkSyncRPCer defines the rollup specific RPC namespace exposed by the L2 node.
type ZkSyncRPCer interface {
	// MainContractAddress returns the address of the main (diamond proxy) contract on L1
	MainContractAddress(ctx context.Context) (common.Address, error)
	// BridgeContracts returns the default bridge addresses on both layers
	BridgeContracts(ctx context.Context) (*BridgeAddresses, error)
	// AllAccountBalances returns every non-zero token balance of account on L2
	AllAccountBalances(ctx context.Context, account common.Address) (map[common.Address]*big.Int, error)
	L1ToL2GasEstimator
}

// L1ToL2GasEstimator estimates the L2 gas limit of a priority operation.
type L1ToL2GasEstimator interface {
	EstimateGasL1ToL2(ctx context.Context, msg ethereum.CallMsg, gasPerPubdata *big.Int) (uint64, error)
}

// L2Clienter is a ChainClienter that also speaks the rollup RPC namespace.
type L2Clienter interface {
	ChainClienter
	ZkSyncRPCer
}

// BridgeAddresses is the answer of the bridge discovery RPC.
type BridgeAddresses struct {
	L1ERC20DefaultBridge common.Address `json:"l1Erc20DefaultBridge"`
	L2ERC20DefaultBridge common.Address `json:"l2Erc20DefaultBridge"`
	L1WethBridge         common.Address `json:"l1WethBridge"`
	L2WethBridge         common.Address `json:"l2WethBridge"`
}

// BridgeContracts is the pair of canonical bridges on one layer.
type BridgeContracts struct {
	ETH   common.Address
	ERC20 common.Address
}
