package resolver

import (
	"math/big"

	"github.com/ethereum/go-ethereum/common"
)

var (
	// L1ToL2AliasOffset is added to the address of an L1 contract sending a message to L2
	L1ToL2AliasOffset = common.HexToAddress("0x1111000000000000000000000000000000001111")

	addressModulus = new(big.Int).Lsh(big.NewInt(1), common.AddressLength*8)
)

// ApplyL1ToL2Alias returns the address an L1 contract has as msg.sender on L2
func ApplyL1ToL2Alias(addr common.Address) common.Address {
	sum := new(big.Int).Add(addr.Big(), L1ToL2AliasOffset.Big())
	return common.BigToAddress(sum.Mod(sum, addressModulus))
}

// UndoL1ToL2Alias is the inverse of ApplyL1ToL2Alias
func UndoL1ToL2Alias(addr common.Address) common.Address {
	diff := new(big.Int).Sub(addr.Big(), L1ToL2AliasOffset.Big())
	return common.BigToAddress(diff.Mod(diff, addressModulus))
}
