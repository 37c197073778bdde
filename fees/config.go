package fees

import (
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum"
)

const (
	// ModelLocal computes base costs with Params
	ModelLocal = "local"
	// ModelContract asks the main contract for base costs
	ModelContract = "contract"
)

// Config is the configuration of the fee model
type Config struct {
	// Model selects the BaseCoster: local or contract
	Model string `mapstructure:"Model" jsonschema:"enum=local,enum=contract"`
	// FairL2GasPrice is the minimum L2 gas price in wei used by the local model
	FairL2GasPrice uint64 `mapstructure:"FairL2GasPrice"`
	// L1GasPerPubdataByte is the L1 gas cost of a published byte used by the local model
	L1GasPerPubdataByte uint64 `mapstructure:"L1GasPerPubdataByte"`
}

// Params returns the local model params, protocol defaults fill unset values
func (c Config) Params() Params {
	p := DefaultParams()
	if c.FairL2GasPrice != 0 {
		p.FairL2GasPrice = new(big.Int).SetUint64(c.FairL2GasPrice)
	}
	if c.L1GasPerPubdataByte != 0 {
		p.L1GasPerPubdataByte = new(big.Int).SetUint64(c.L1GasPerPubdataByte)
	}
	return p
}

// NewBaseCoster returns the BaseCoster selected by cfg
func NewBaseCoster(cfg Config, l1Client ethereum.ContractCaller, mainContract MainContractResolver) (BaseCoster, error) {
	switch cfg.Model {
	case "", ModelLocal:
		return NewLocalBaseCoster(cfg.Params()), nil
	case ModelContract:
		return NewContractBaseCoster(l1Client, mainContract), nil
	default:
		return nil, fmt.Errorf("unknown fee model: %s", cfg.Model)
	}
}
