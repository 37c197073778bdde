package txbuilder

import (
	"context"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/zkbridge/walletkit/contracts"
	"github.com/zkbridge/walletkit/fees"
	"github.com/zkbridge/walletkit/log"
	"github.com/zkbridge/walletkit/types"
)

// AddressResolver is the part of the token/address resolver the builders depend on
type AddressResolver interface {
	MainContract(ctx context.Context) (common.Address, error)
	L1BridgeContracts(ctx context.Context) (types.BridgeContracts, error)
	L2BridgeContracts(ctx context.Context) (types.BridgeContracts, error)
	L2TokenAddress(ctx context.Context, l1Token common.Address) (common.Address, error)
}

// Config is the configuration of the transaction builders
type Config struct {
	// EstimateL2GasLimit asks the L2 node for the gas limit of priority operations
	// instead of using the protocol default
	EstimateL2GasLimit bool `mapstructure:"EstimateL2GasLimit"`
}

// Builder turns user intents into unsigned transactions for the account from
type Builder struct {
	log        *log.Logger
	cfg        Config
	from       common.Address
	l1Client   types.ChainClienter
	l2Client   types.L2Clienter
	resolver   AddressResolver
	baseCoster fees.BaseCoster
}

// New creates a Builder
func New(logger *log.Logger, cfg Config, from common.Address,
	l1Client types.ChainClienter, l2Client types.L2Clienter,
	resolver AddressResolver, baseCoster fees.BaseCoster) *Builder {
	return &Builder{
		log:        logger,
		cfg:        cfg,
		from:       from,
		l1Client:   l1Client,
		l2Client:   l2Client,
		resolver:   resolver,
		baseCoster: baseCoster,
	}
}

// From returns the account the transactions are built for
func (b *Builder) From() common.Address {
	return b.from
}

// ApproveTx builds an ERC20 approval of amount for spender on token
func (b *Builder) ApproveTx(token, spender common.Address, amount *big.Int) (*types.TxRequest, error) {
	if amount == nil || amount.Sign() < 0 {
		return nil, fmt.Errorf("approve: %w: invalid amount %v", types.ErrInvalidTransaction, amount)
	}
	data, err := contracts.ERC20.Encode("approve", spender, amount)
	if err != nil {
		return nil, fmt.Errorf("approve: %w", err)
	}
	return &types.TxRequest{
		From:  b.from,
		To:    token,
		Value: big.NewInt(0),
		Data:  data,
	}, nil
}

// FillFees resolves the unset fee fields of opts from client. A chain reporting a base fee
// gets dynamic fees, otherwise a legacy gas price is used and a supplied max fee is
// turned into that gas price. Caller supplied values are kept and a max fee below the
// current base fee is rejected.
func FillFees(ctx context.Context, client types.ChainClienter, opts *types.TransactionOptions) error {
	if opts.GasPrice != nil && opts.MaxFeePerGas == nil {
		return nil
	}
	header, err := client.HeaderByNumber(ctx, nil)
	if err != nil {
		return fmt.Errorf("fees: latest header: %w", err)
	}
	if header.BaseFee == nil {
		if opts.MaxFeePerGas != nil {
			// no london fork: the max fee becomes the legacy gas price
			if opts.GasPrice == nil {
				opts.GasPrice = opts.MaxFeePerGas
			}
			opts.MaxFeePerGas = nil
			opts.MaxPriorityFeePerGas = nil
			return nil
		}
		price, err := client.SuggestGasPrice(ctx)
		if err != nil {
			return fmt.Errorf("fees: gas price: %w", err)
		}
		opts.GasPrice = price
		return nil
	}
	if opts.MaxPriorityFeePerGas == nil {
		tip, err := client.SuggestGasTipCap(ctx)
		if err != nil {
			return fmt.Errorf("fees: gas tip cap: %w", err)
		}
		if opts.MaxFeePerGas != nil && tip.Cmp(opts.MaxFeePerGas) > 0 {
			tip = new(big.Int).Set(opts.MaxFeePerGas)
		}
		opts.MaxPriorityFeePerGas = tip
	}
	if opts.MaxFeePerGas == nil {
		opts.MaxFeePerGas = fees.MaxFeePerGas(header.BaseFee, opts.MaxPriorityFeePerGas)
		return nil
	}
	return fees.CheckMaxFee(opts.MaxFeePerGas, opts.MaxPriorityFeePerGas, header.BaseFee)
}

func cloneBig(v *big.Int) *big.Int {
	if v == nil {
		return nil
	}
	return new(big.Int).Set(v)
}

func cloneAddress(a *common.Address) *common.Address {
	if a == nil {
		return nil
	}
	c := *a
	return &c
}

func cloneUint64(v *uint64) *uint64 {
	if v == nil {
		return nil
	}
	c := *v
	return &c
}

func cloneOptions(o types.TransactionOptions) types.TransactionOptions {
	return types.TransactionOptions{
		GasPrice:             cloneBig(o.GasPrice),
		MaxFeePerGas:         cloneBig(o.MaxFeePerGas),
		MaxPriorityFeePerGas: cloneBig(o.MaxPriorityFeePerGas),
		Value:                cloneBig(o.Value),
		Nonce:                cloneUint64(o.Nonce),
		GasLimit:             cloneUint64(o.GasLimit),
	}
}

// feeOptions keeps only the fee fields of o
func feeOptions(o types.TransactionOptions) types.TransactionOptions {
	return types.TransactionOptions{
		GasPrice:             cloneBig(o.GasPrice),
		MaxFeePerGas:         cloneBig(o.MaxFeePerGas),
		MaxPriorityFeePerGas: cloneBig(o.MaxPriorityFeePerGas),
	}
}

func cloneDeposit(tx *types.DepositTransaction) *types.DepositTransaction {
	return &types.DepositTransaction{
		Token:             tx.Token,
		Amount:            cloneBig(tx.Amount),
		To:                cloneAddress(tx.To),
		OperatorTip:       cloneBig(tx.OperatorTip),
		BridgeAddress:     cloneAddress(tx.BridgeAddress),
		L2GasLimit:        cloneBig(tx.L2GasLimit),
		GasPerPubdataByte: cloneBig(tx.GasPerPubdataByte),
		RefundRecipient:   cloneAddress(tx.RefundRecipient),
		L2Value:           cloneBig(tx.L2Value),
		CustomBridgeData:  common.CopyBytes(tx.CustomBridgeData),
		ApproveERC20:      tx.ApproveERC20,
		Options:           cloneOptions(tx.Options),
	}
}
