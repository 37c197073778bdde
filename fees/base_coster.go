package fees

import (
	"context"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/zkbridge/walletkit/contracts"
)

// BaseCoster computes the base cost of a priority operation
type BaseCoster interface {
	BaseCost(ctx context.Context, l1GasPrice, l2GasLimit, gasPerPubdata *big.Int) (*big.Int, error)
}

// MainContractResolver returns the address of the rollup main contract on L1
type MainContractResolver interface {
	MainContract(ctx context.Context) (common.Address, error)
}

// LocalBaseCoster computes the base cost with the local fee model
type LocalBaseCoster struct {
	Params Params
}

// NewLocalBaseCoster creates a LocalBaseCoster
func NewLocalBaseCoster(params Params) *LocalBaseCoster {
	return &LocalBaseCoster{Params: params}
}

// BaseCost implements BaseCoster
func (l *LocalBaseCoster) BaseCost(_ context.Context, l1GasPrice, l2GasLimit, gasPerPubdata *big.Int) (*big.Int, error) {
	if l1GasPrice == nil || l2GasLimit == nil {
		return nil, fmt.Errorf("base cost: gas price and l2 gas limit are required")
	}
	return l.Params.BaseCost(l1GasPrice, l2GasLimit, gasPerPubdata), nil
}

// ContractBaseCoster asks the main contract for the base cost
type ContractBaseCoster struct {
	l1Client     ethereum.ContractCaller
	mainContract MainContractResolver
}

// NewContractBaseCoster creates a ContractBaseCoster
func NewContractBaseCoster(l1Client ethereum.ContractCaller, mainContract MainContractResolver) *ContractBaseCoster {
	return &ContractBaseCoster{l1Client: l1Client, mainContract: mainContract}
}

// BaseCost implements BaseCoster
func (c *ContractBaseCoster) BaseCost(ctx context.Context, l1GasPrice, l2GasLimit, gasPerPubdata *big.Int) (*big.Int, error) {
	if gasPerPubdata == nil {
		gasPerPubdata = big.NewInt(DefaultGasPerPubdataByte)
	}
	addr, err := c.mainContract.MainContract(ctx)
	if err != nil {
		return nil, fmt.Errorf("base cost: main contract: %w", err)
	}
	cost, err := contracts.MainContract.CallBig(ctx, c.l1Client, addr, nil, "l2TransactionBaseCost",
		l1GasPrice, l2GasLimit, gasPerPubdata)
	if err != nil {
		return nil, fmt.Errorf("base cost: %w", err)
	}
	return cost, nil
}
