package contracts

import (
	"context"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
)

var (
	stringArgs     = mustArguments("string")
	uint256Args    = mustArguments("uint256")
	bridgeDataArgs = mustArguments("bytes", "bytes", "bytes")
)

func mustArguments(kinds ...string) abi.Arguments {
	args := make(abi.Arguments, 0, len(kinds))
	for _, k := range kinds {
		t, err := abi.NewType(k, "", nil)
		if err != nil {
			panic(err)
		}
		args = append(args, abi.Argument{Type: t})
	}
	return args
}

// TokenMetadata is what the L2 bridge needs to deploy the L2 counterpart of an L1 token
type TokenMetadata struct {
	Name     string
	Symbol   string
	Decimals uint8
}

// EncodeBridgeData builds the default data argument of finalizeDeposit:
// abi.encode(abi.encode(name), abi.encode(symbol), abi.encode(decimals))
func EncodeBridgeData(meta TokenMetadata) ([]byte, error) {
	name, err := stringArgs.Pack(meta.Name)
	if err != nil {
		return nil, fmt.Errorf("failed to encode token name: %w", err)
	}
	symbol, err := stringArgs.Pack(meta.Symbol)
	if err != nil {
		return nil, fmt.Errorf("failed to encode token symbol: %w", err)
	}
	decimals, err := uint256Args.Pack(new(big.Int).SetUint64(uint64(meta.Decimals)))
	if err != nil {
		return nil, fmt.Errorf("failed to encode token decimals: %w", err)
	}
	return bridgeDataArgs.Pack(name, symbol, decimals)
}

// DecodeBridgeData is the inverse of EncodeBridgeData
func DecodeBridgeData(data []byte) (TokenMetadata, error) {
	out, err := bridgeDataArgs.Unpack(data)
	if err != nil {
		return TokenMetadata{}, fmt.Errorf("failed to decode bridge data: %w", err)
	}
	name, err := stringArgs.Unpack(out[0].([]byte))
	if err != nil {
		return TokenMetadata{}, fmt.Errorf("failed to decode token name: %w", err)
	}
	symbol, err := stringArgs.Unpack(out[1].([]byte))
	if err != nil {
		return TokenMetadata{}, fmt.Errorf("failed to decode token symbol: %w", err)
	}
	decimals, err := uint256Args.Unpack(out[2].([]byte))
	if err != nil {
		return TokenMetadata{}, fmt.Errorf("failed to decode token decimals: %w", err)
	}
	return TokenMetadata{
		Name:     name[0].(string),
		Symbol:   symbol[0].(string),
		Decimals: uint8(decimals[0].(*big.Int).Uint64()),
	}, nil
}

// ReadTokenMetadata queries name, symbol and decimals of an ERC20 token
func ReadTokenMetadata(ctx context.Context, caller ethereum.ContractCaller, token common.Address) (TokenMetadata, error) {
	var meta TokenMetadata
	out, err := ERC20.Call(ctx, caller, token, nil, "name")
	if err != nil {
		return meta, err
	}
	meta.Name = out[0].(string)
	if out, err = ERC20.Call(ctx, caller, token, nil, "symbol"); err != nil {
		return meta, err
	}
	meta.Symbol = out[0].(string)
	if out, err = ERC20.Call(ctx, caller, token, nil, "decimals"); err != nil {
		return meta, err
	}
	meta.Decimals = out[0].(uint8)
	return meta, nil
}
