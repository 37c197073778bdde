package walletservice

import (
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/zkbridge/walletkit/opstore"
	"github.com/zkbridge/walletkit/types"
)

type BalanceResult struct {
	Layer   string         `json:"layer"`
	Token   common.Address `json:"token"`
	Block   string         `json:"block"`
	Balance string         `json:"balance"`
}

type AllBalancesResult struct {
	Address  common.Address    `json:"address"`
	Balances map[string]string `json:"balances"`
}

type FeeResult struct {
	BaseCost             string `json:"base_cost"`
	L1GasLimit           uint64 `json:"l1_gas_limit"`
	L2GasLimit           string `json:"l2_gas_limit"`
	GasPrice             string `json:"gas_price,omitempty"`
	MaxFeePerGas         string `json:"max_fee_per_gas,omitempty"`
	MaxPriorityFeePerGas string `json:"max_priority_fee_per_gas,omitempty"`
}

type ContractsResult struct {
	MainContract common.Address        `json:"main_contract"`
	L1Bridges    types.BridgeContracts `json:"l1_bridges"`
	L2Bridges    types.BridgeContracts `json:"l2_bridges"`
}

type TokenMappingResult struct {
	L1Address common.Address `json:"l1_address"`
	L2Address common.Address `json:"l2_address"`
}

type OperationsResult struct {
	Operations []*opstore.Operation `json:"operations"`
	Count      int                  `json:"count"`
}

func bigString(n *big.Int) string {
	if n == nil {
		return ""
	}
	return n.String()
}

func newFeeResult(fee *types.FullDepositFee) FeeResult {
	return FeeResult{
		BaseCost:             bigString(fee.BaseCost),
		L1GasLimit:           fee.L1GasLimit,
		L2GasLimit:           bigString(fee.L2GasLimit),
		GasPrice:             bigString(fee.GasPrice),
		MaxFeePerGas:         bigString(fee.MaxFeePerGas),
		MaxPriorityFeePerGas: bigString(fee.MaxPriorityFeePerGas),
	}
}
