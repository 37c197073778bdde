package contracts

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
)

var (
	MainContract  = MustNewCodec("MainContract", MainContractABI)
	L1ERC20Bridge = MustNewCodec("L1ERC20Bridge", L1ERC20BridgeABI)
	L2Bridge      = MustNewCodec("L2Bridge", L2BridgeABI)
	ERC20         = MustNewCodec("ERC20", ERC20ABI)
	L2EthToken    = MustNewCodec("L2EthToken", L2EthTokenABI)
	NonceHolder   = MustNewCodec("NonceHolder", NonceHolderABI)

	ErrEventNotFound = errors.New("event not found in log")
)

// Codec encodes calls to, and decodes results and logs of, one contract
type Codec struct {
	name string
	abi  abi.ABI
}

// NewCodec parses the JSON ABI of a contract
func NewCodec(name, abiJSON string) (*Codec, error) {
	parsed, err := abi.JSON(strings.NewReader(abiJSON))
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s abi: %w", name, err)
	}
	return &Codec{name: name, abi: parsed}, nil
}

// MustNewCodec is NewCodec for package level descriptors, it panics on a malformed ABI
func MustNewCodec(name, abiJSON string) *Codec {
	c, err := NewCodec(name, abiJSON)
	if err != nil {
		panic(err)
	}
	return c
}

// Name returns the contract name the codec was created with
func (c *Codec) Name() string {
	return c.name
}

// ABI returns the parsed ABI
func (c *Codec) ABI() abi.ABI {
	return c.abi
}

// MethodByID looks up the method called by calldata from its 4 byte selector
func (c *Codec) MethodByID(data []byte) (*abi.Method, error) {
	return c.abi.MethodById(data)
}

// Encode returns the calldata of method called with args
func (c *Codec) Encode(method string, args ...interface{}) ([]byte, error) {
	data, err := c.abi.Pack(method, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to encode %s: %w", c.name, method, err)
	}
	return data, nil
}

// Decode unpacks the return data of method
func (c *Codec) Decode(method string, data []byte) ([]interface{}, error) {
	out, err := c.abi.Unpack(method, data)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to decode %s: %w", c.name, method, err)
	}
	return out, nil
}

// DecodeInput unpacks the arguments of calldata produced for method, selector included
func (c *Codec) DecodeInput(method string, calldata []byte) ([]interface{}, error) {
	m, ok := c.abi.Methods[method]
	if !ok {
		return nil, fmt.Errorf("%s: method %s not found", c.name, method)
	}
	if len(calldata) < len(m.ID) || !bytes.Equal(calldata[:len(m.ID)], m.ID) {
		return nil, fmt.Errorf("%s: calldata is not a %s call", c.name, method)
	}
	return m.Inputs.Unpack(calldata[len(m.ID):])
}

// EventID returns the topic of event
func (c *Codec) EventID(event string) (common.Hash, error) {
	ev, ok := c.abi.Events[event]
	if !ok {
		return common.Hash{}, fmt.Errorf("%s: event %s not found", c.name, event)
	}
	return ev.ID, nil
}

// UnpackLog decodes the non indexed fields of event from log into out
func (c *Codec) UnpackLog(out interface{}, event string, log types.Log) error {
	id, err := c.EventID(event)
	if err != nil {
		return err
	}
	if len(log.Topics) == 0 || log.Topics[0] != id {
		return fmt.Errorf("%s: %w: %s", c.name, ErrEventNotFound, event)
	}
	if err := c.abi.UnpackIntoInterface(out, event, log.Data); err != nil {
		return fmt.Errorf("%s: failed to unpack %s: %w", c.name, event, err)
	}
	return nil
}

// UnpackEvent decodes the non indexed fields of event from log in declaration order
func (c *Codec) UnpackEvent(event string, log types.Log) ([]interface{}, error) {
	id, err := c.EventID(event)
	if err != nil {
		return nil, err
	}
	if len(log.Topics) == 0 || log.Topics[0] != id {
		return nil, fmt.Errorf("%s: %w: %s", c.name, ErrEventNotFound, event)
	}
	out, err := c.abi.Unpack(event, log.Data)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to unpack %s: %w", c.name, event, err)
	}
	return out, nil
}

// Call executes a read only call of method on the contract deployed at to.
// A nil block means latest.
func (c *Codec) Call(ctx context.Context, caller ethereum.ContractCaller, to common.Address,
	block *big.Int, method string, args ...interface{}) ([]interface{}, error) {
	data, err := c.Encode(method, args...)
	if err != nil {
		return nil, err
	}
	res, err := caller.CallContract(ctx, ethereum.CallMsg{To: &to, Data: data}, block)
	if err != nil {
		return nil, fmt.Errorf("%s: call %s on %s: %w", c.name, method, to.Hex(), err)
	}
	return c.Decode(method, res)
}

// CallAddress is Call for methods returning a single address
func (c *Codec) CallAddress(ctx context.Context, caller ethereum.ContractCaller, to common.Address,
	block *big.Int, method string, args ...interface{}) (common.Address, error) {
	out, err := c.Call(ctx, caller, to, block, method, args...)
	if err != nil {
		return common.Address{}, err
	}
	if len(out) != 1 {
		return common.Address{}, fmt.Errorf("%s: unexpected %s output length %d", c.name, method, len(out))
	}
	return *abi.ConvertType(out[0], new(common.Address)).(*common.Address), nil
}

// CallBig is Call for methods returning a single uint256
func (c *Codec) CallBig(ctx context.Context, caller ethereum.ContractCaller, to common.Address,
	block *big.Int, method string, args ...interface{}) (*big.Int, error) {
	out, err := c.Call(ctx, caller, to, block, method, args...)
	if err != nil {
		return nil, err
	}
	if len(out) != 1 {
		return nil, fmt.Errorf("%s: unexpected %s output length %d", c.name, method, len(out))
	}
	return *abi.ConvertType(out[0], new(*big.Int)).(**big.Int), nil
}
