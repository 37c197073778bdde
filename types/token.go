package types

import (
	"fmt"

	"github.com/ethereum/go-ethereum/common"
)

var (
	// EthAddress is the sentinel used for ETH on both layers
	EthAddress = common.Address{}
	// L2EthTokenAddress is the system contract holding ETH balances on L2
	L2EthTokenAddress = common.HexToAddress("0x000000000000000000000000000000000000800a")
	// NonceHolderAddress is the system contract tracking account and deployment nonces on L2
	NonceHolderAddress = common.HexToAddress("0x0000000000000000000000000000000000008003")
)

// IsETH returns true for the ETH sentinel and the L2 ETH token system contract
func IsETH(token common.Address) bool {
	return token == EthAddress || token == L2EthTokenAddress
}

// Token is a token known on both layers
type Token struct {
	L1Address common.Address `json:"address"`
	L2Address common.Address `json:"l2Address"`
	Symbol    string         `json:"symbol"`
	Decimals  uint8          `json:"decimals"`
}

// CreateETH returns the ETH token
func CreateETH() Token {
	return Token{
		L1Address: EthAddress,
		L2Address: EthAddress,
		Symbol:    "ETH",
		Decimals:  18,
	}
}

// IsETH returns true if the token is ETH
func (t Token) IsETH() bool {
	return IsETH(t.L1Address) && IsETH(t.L2Address)
}

func (t Token) String() string {
	return fmt.Sprintf("%s(l1: %s, l2: %s, decimals: %d)", t.Symbol, t.L1Address.Hex(), t.L2Address.Hex(), t.Decimals)
}
