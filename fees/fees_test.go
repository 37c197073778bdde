package fees

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/zkbridge/walletkit/types"
)

func TestL2GasPrice(t *testing.T) {
	p := DefaultParams()
	testCases := []struct {
		name          string
		l1GasPrice    *big.Int
		gasPerPubdata *big.Int
		expected      *big.Int
	}{
		{
			name:       "fair price floor",
			l1GasPrice: big.NewInt(1_500_000_010),
			expected:   big.NewInt(FairL2GasPrice),
		},
		{
			name:          "pubdata price above the floor",
			l1GasPrice:    big.NewInt(100_000_000_000),
			gasPerPubdata: big.NewInt(800),
			// 17 * 1e11 / 800
			expected: big.NewInt(2_125_000_000),
		},
		{
			name:          "ceiling is applied",
			l1GasPrice:    big.NewInt(100_000_000_001),
			gasPerPubdata: big.NewInt(800),
			// 17 * (1e11 + 1) / 800 = 2125000000.02125
			expected: big.NewInt(2_125_000_001),
		},
		{
			name:          "zero gas per pubdata uses the default",
			l1GasPrice:    big.NewInt(100_000_000_000),
			gasPerPubdata: big.NewInt(0),
			expected:      big.NewInt(2_125_000_000),
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.expected, p.L2GasPrice(tc.l1GasPrice, tc.gasPerPubdata))
		})
	}
}

func TestBaseCostFixture(t *testing.T) {
	p := DefaultParams()
	cost := p.BaseCost(big.NewInt(1_500_000_010), big.NewInt(570193), big.NewInt(800))
	require.Equal(t, big.NewInt(285096500000000), cost)

	// ETH deposit value with the default l2 gas limit and a zero amount
	defaultCost := p.BaseCost(big.NewInt(1_500_000_010), big.NewInt(DefaultL2GasLimit), nil)
	value := RequiredValue(defaultCost, big.NewInt(0), big.NewInt(7_000_000))
	require.Equal(t, big.NewInt(288_992_007_000_000), value)
}

func TestBaseCostMonotone(t *testing.T) {
	p := DefaultParams()
	l1GasPrices := []*big.Int{big.NewInt(1), big.NewInt(1_000_000_000), big.NewInt(300_000_000_000)}
	for _, price := range l1GasPrices {
		prev := big.NewInt(-1)
		for limit := int64(0); limit <= 2_000_000; limit += 125_000 {
			cost := p.BaseCost(price, big.NewInt(limit), big.NewInt(DefaultGasPerPubdataByte))
			require.GreaterOrEqual(t, cost.Cmp(prev), 0, "price %s limit %d", price, limit)
			prev = cost
		}
	}
}

func TestCheckValue(t *testing.T) {
	require.NoError(t, CheckValue(big.NewInt(10), big.NewInt(10)))
	err := CheckValue(big.NewInt(9), big.NewInt(10))
	require.ErrorIs(t, err, types.ErrInsufficientFee)
	var feeErr *types.InsufficientFeeError
	require.ErrorAs(t, err, &feeErr)
	require.Equal(t, "value", feeErr.Field)
}

func TestCheckMaxFee(t *testing.T) {
	testCases := []struct {
		name           string
		maxFee         *big.Int
		maxPriorityFee *big.Int
		baseFee        *big.Int
		fails          bool
	}{
		{name: "above base fee", maxFee: big.NewInt(10), baseFee: big.NewInt(9)},
		{name: "below base fee", maxFee: big.NewInt(8), baseFee: big.NewInt(9), fails: true},
		{name: "below priority fee", maxFee: big.NewInt(10), maxPriorityFee: big.NewInt(11), baseFee: big.NewInt(1), fails: true},
		{name: "no base fee", maxFee: big.NewInt(10)},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := CheckMaxFee(tc.maxFee, tc.maxPriorityFee, tc.baseFee)
			if tc.fails {
				require.ErrorIs(t, err, types.ErrInsufficientFee)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestGasHelpers(t *testing.T) {
	require.Equal(t, big.NewInt(1_500_000_010), MaxFeePerGas(big.NewInt(1_000_000_000), big.NewInt(10)))
	require.Equal(t, uint64(120_000), ScaleGasLimit(100_000))
	require.Equal(t, uint64(L1RecommendedMinETHDepositGasLimit), RecommendedL1GasLimit(10, true))
	require.Equal(t, uint64(L1RecommendedMinERC20DepositGasLimit), RecommendedL1GasLimit(250_000, false))
	require.Equal(t, uint64(500_000), RecommendedL1GasLimit(500_000, false))
}
