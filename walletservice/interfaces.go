package walletservice

import (
	"context"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/zkbridge/walletkit/opstore"
	"github.com/zkbridge/walletkit/types"
)

// Walleter is the read-only part of the wallet exposed by the service
type Walleter interface {
	Address() common.Address
	GetBalance(ctx context.Context, token common.Address, block types.BlockParam) (*big.Int, error)
	GetL1Balance(ctx context.Context, token common.Address, block types.BlockParam) (*big.Int, error)
	GetAllBalances(ctx context.Context) (map[common.Address]*big.Int, error)
	GetFullRequiredDepositFee(ctx context.Context, tx *types.DepositTransaction) (*types.FullDepositFee, error)
	MainContract(ctx context.Context) (common.Address, error)
	L1BridgeContracts(ctx context.Context) (types.BridgeContracts, error)
	L2BridgeContracts(ctx context.Context) (types.BridgeContracts, error)
	L2TokenAddress(ctx context.Context, l1Token common.Address) (common.Address, error)
	L1TokenAddress(ctx context.Context, l2Token common.Address) (common.Address, error)
}

type TokenLister interface {
	Tokens() []types.Token
	Lookup(s string) (types.Token, error)
}

type OperationLister interface {
	GetByHash(hash common.Hash) (*opstore.Operation, error)
	List(kind opstore.Kind, limit int) ([]*opstore.Operation, error)
}
