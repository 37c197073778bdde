package fees

import (
	"math/big"

	"github.com/zkbridge/walletkit/types"
)

const (
	// DefaultL2GasLimit is used for deposits when no estimation is available
	DefaultL2GasLimit = 0x8d1c0
	// DefaultGasPerPubdataByte is the L2 gas charged per byte of published data
	DefaultGasPerPubdataByte = 800
	// L1GasPerPubdataByte is the L1 gas needed to publish one byte of data
	L1GasPerPubdataByte = 17
	// FairL2GasPrice is the minimum L2 gas price in wei
	FairL2GasPrice = 500_000_000

	L1FeeEstimationCoefNumerator   = 12
	L1FeeEstimationCoefDenominator = 10

	// L1RecommendedMinETHDepositGasLimit is the minimum L1 gas limit of an ETH deposit
	L1RecommendedMinETHDepositGasLimit = 200_000
	// L1RecommendedMinERC20DepositGasLimit is the minimum L1 gas limit of a token deposit
	L1RecommendedMinERC20DepositGasLimit = 400_000
)

// Params are the protocol constants of the local fee model
type Params struct {
	FairL2GasPrice      *big.Int
	L1GasPerPubdataByte *big.Int
}

// DefaultParams returns the protocol defaults
func DefaultParams() Params {
	return Params{
		FairL2GasPrice:      big.NewInt(FairL2GasPrice),
		L1GasPerPubdataByte: big.NewInt(L1GasPerPubdataByte),
	}
}

// L2GasPrice returns max(FairL2GasPrice, ceil(L1GasPerPubdataByte * l1GasPrice / gasPerPubdata)).
// A nil or zero gasPerPubdata uses DefaultGasPerPubdataByte.
func (p Params) L2GasPrice(l1GasPrice, gasPerPubdata *big.Int) *big.Int {
	if gasPerPubdata == nil || gasPerPubdata.Sign() <= 0 {
		gasPerPubdata = big.NewInt(DefaultGasPerPubdataByte)
	}
	pubdataPrice := new(big.Int).Mul(p.L1GasPerPubdataByte, l1GasPrice)
	minL2GasPrice := ceilDiv(pubdataPrice, gasPerPubdata)
	if minL2GasPrice.Cmp(p.FairL2GasPrice) < 0 {
		return new(big.Int).Set(p.FairL2GasPrice)
	}
	return minL2GasPrice
}

// BaseCost returns the amount of wei that must be locked on L1 to pay for l2GasLimit on L2
func (p Params) BaseCost(l1GasPrice, l2GasLimit, gasPerPubdata *big.Int) *big.Int {
	return new(big.Int).Mul(l2GasLimit, p.L2GasPrice(l1GasPrice, gasPerPubdata))
}

// RequiredValue is the msg.value of a priority operation: base cost plus operator tip plus L2 value
func RequiredValue(baseCost, operatorTip, l2Value *big.Int) *big.Int {
	res := new(big.Int).Set(baseCost)
	if operatorTip != nil {
		res.Add(res, operatorTip)
	}
	if l2Value != nil {
		res.Add(res, l2Value)
	}
	return res
}

// CheckValue fails with an InsufficientFeeError when supplied is below required
func CheckValue(supplied, required *big.Int) error {
	if supplied.Cmp(required) < 0 {
		return &types.InsufficientFeeError{Field: "value", Supplied: supplied, Required: required}
	}
	return nil
}

// CheckMaxFee fails with an InsufficientFeeError when maxFee is below max(maxPriorityFee, baseFee)
func CheckMaxFee(maxFee, maxPriorityFee, baseFee *big.Int) error {
	required := baseFee
	if maxPriorityFee != nil && (required == nil || maxPriorityFee.Cmp(required) > 0) {
		required = maxPriorityFee
	}
	if required == nil || maxFee == nil {
		return nil
	}
	if maxFee.Cmp(required) < 0 {
		return &types.InsufficientFeeError{Field: "maxFeePerGas", Supplied: maxFee, Required: required}
	}
	return nil
}

// MaxFeePerGas returns baseFee * 3/2 + tip
func MaxFeePerGas(baseFee, tip *big.Int) *big.Int {
	res := new(big.Int).Mul(baseFee, big.NewInt(3))
	res.Div(res, big.NewInt(2))
	return res.Add(res, tip)
}

// ScaleGasLimit adds the estimation margin to an L1 gas estimate
func ScaleGasLimit(gas uint64) uint64 {
	return gas * L1FeeEstimationCoefNumerator / L1FeeEstimationCoefDenominator
}

// RecommendedL1GasLimit floors gasLimit at the recommended minimum of a deposit
func RecommendedL1GasLimit(gasLimit uint64, isETH bool) uint64 {
	minimum := uint64(L1RecommendedMinERC20DepositGasLimit)
	if isETH {
		minimum = L1RecommendedMinETHDepositGasLimit
	}
	if gasLimit < minimum {
		return minimum
	}
	return gasLimit
}

func ceilDiv(a, b *big.Int) *big.Int {
	q, r := new(big.Int).QuoRem(a, b, new(big.Int))
	if r.Sign() > 0 {
		q.Add(q, big.NewInt(1))
	}
	return q
}
