package types

import (
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
)

// TransactionOptions holds the optional submission parameters of a transaction.
// A nil field is resolved at build time: explicit value, then live chain state,
// then protocol constant. An explicit zero is kept as is.
type TransactionOptions struct {
	GasPrice             *big.Int
	MaxFeePerGas         *big.Int
	MaxPriorityFeePerGas *big.Int
	Value                *big.Int
	Nonce                *uint64
	GasLimit             *uint64
}

// HasGasPrice returns true if any of the fee fields has been set by the caller
func (o TransactionOptions) HasGasPrice() bool {
	return o.GasPrice != nil || o.MaxFeePerGas != nil
}

// IsLegacy returns true when the options describe a legacy (gas price) transaction
func (o TransactionOptions) IsLegacy() bool {
	return o.GasPrice != nil && o.MaxFeePerGas == nil
}

// PriceForEstimation returns the gas price to use on fee computations
func (o TransactionOptions) PriceForEstimation() *big.Int {
	if o.MaxFeePerGas != nil {
		return o.MaxFeePerGas
	}
	return o.GasPrice
}

// DepositTransaction represents a deposit of ETH or an ERC20 token from L1 to L2
type DepositTransaction struct {
	// Token is the L1 address of the token, EthAddress for ETH
	Token  common.Address
	Amount *big.Int
	// To is the L2 recipient, defaults to the sender
	To          *common.Address
	OperatorTip *big.Int
	// BridgeAddress overrides the default L1 ERC20 bridge
	BridgeAddress     *common.Address
	L2GasLimit        *big.Int
	GasPerPubdataByte *big.Int
	// RefundRecipient receives the unused base cost on L2, defaults to the sender
	RefundRecipient *common.Address
	L2Value         *big.Int
	// CustomBridgeData is sent verbatim to the bridge instead of the default encoding
	CustomBridgeData []byte
	ApproveERC20     bool
	Options          TransactionOptions
}

// Validate checks the caller input that can not be defaulted
func (d *DepositTransaction) Validate() error {
	if d.Amount == nil {
		return fmt.Errorf("%w: deposit amount is not set", ErrInvalidTransaction)
	}
	if d.Amount.Sign() < 0 {
		return fmt.Errorf("%w: negative deposit amount %s", ErrInvalidTransaction, d.Amount)
	}
	if d.L2Value != nil && d.L2Value.Sign() < 0 {
		return fmt.Errorf("%w: negative l2 value %s", ErrInvalidTransaction, d.L2Value)
	}
	if d.OperatorTip != nil && d.OperatorTip.Sign() < 0 {
		return fmt.Errorf("%w: negative operator tip %s", ErrInvalidTransaction, d.OperatorTip)
	}
	return nil
}

// WithdrawTransaction represents a withdrawal from L2 to L1
type WithdrawTransaction struct {
	// Token is the L2 address of the token, EthAddress or L2EthTokenAddress for ETH
	Token  common.Address
	Amount *big.Int
	// To is the L1 receiver, defaults to the sender
	To            *common.Address
	BridgeAddress *common.Address
	Options       TransactionOptions
}

// Validate checks the caller input that can not be defaulted
func (w *WithdrawTransaction) Validate() error {
	if w.Amount == nil || w.Amount.Sign() < 0 {
		return fmt.Errorf("%w: invalid withdraw amount %v", ErrInvalidTransaction, w.Amount)
	}
	return nil
}

// TransferTransaction represents a transfer between two L2 addresses
type TransferTransaction struct {
	To           common.Address
	TokenAddress common.Address
	Amount       *big.Int
	Options      TransactionOptions
}

// Validate checks the caller input that can not be defaulted
func (t *TransferTransaction) Validate() error {
	if t.To == (common.Address{}) {
		return fmt.Errorf("%w: transfer recipient is not set", ErrInvalidTransaction)
	}
	if t.Amount == nil || t.Amount.Sign() < 0 {
		return fmt.Errorf("%w: invalid transfer amount %v", ErrInvalidTransaction, t.Amount)
	}
	return nil
}

// RequestExecuteCallMsg is an L2 contract call requested from L1 through the priority queue
type RequestExecuteCallMsg struct {
	ContractAddress   common.Address
	CallData          []byte
	L2Value           *big.Int
	L2GasLimit        *big.Int
	GasPerPubdataByte *big.Int
	OperatorTip       *big.Int
	RefundRecipient   *common.Address
	FactoryDeps       [][]byte
	Options           TransactionOptions
}

// Validate checks the caller input that can not be defaulted
func (r *RequestExecuteCallMsg) Validate() error {
	if r.L2Value != nil && r.L2Value.Sign() < 0 {
		return fmt.Errorf("%w: negative l2 value %s", ErrInvalidTransaction, r.L2Value)
	}
	if r.OperatorTip != nil && r.OperatorTip.Sign() < 0 {
		return fmt.Errorf("%w: negative operator tip %s", ErrInvalidTransaction, r.OperatorTip)
	}
	return nil
}

// TxRequest is an unsigned call on either layer, as produced by the transaction builders
type TxRequest struct {
	From    common.Address
	To      common.Address
	Value   *big.Int
	Data    []byte
	Options TransactionOptions
}

// CallMsg converts the request to a message usable for gas estimation and calls
func (r *TxRequest) CallMsg() ethereum.CallMsg {
	to := r.To
	msg := ethereum.CallMsg{
		From:  r.From,
		To:    &to,
		Value: r.Value,
		Data:  r.Data,
	}
	if r.Options.GasLimit != nil {
		msg.Gas = *r.Options.GasLimit
	}
	if r.Options.IsLegacy() {
		msg.GasPrice = r.Options.GasPrice
	} else {
		msg.GasFeeCap = r.Options.MaxFeePerGas
		msg.GasTipCap = r.Options.MaxPriorityFeePerGas
	}
	return msg
}

// FullDepositFee is the full cost of a deposit, both on L1 and L2
type FullDepositFee struct {
	BaseCost             *big.Int
	L1GasLimit           uint64
	L2GasLimit           *big.Int
	GasPrice             *big.Int
	MaxFeePerGas         *big.Int
	MaxPriorityFeePerGas *big.Int
}
