package types

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/rpc"
	"github.com/invopop/jsonschema"
)

// BlockParam selects the block a read-only query is evaluated at
type BlockParam struct {
	string
}

var (
	LatestBlock    = BlockParam{"latest"}
	PendingBlock   = BlockParam{"pending"}
	SafeBlock      = BlockParam{"safe"}
	FinalizedBlock = BlockParam{"finalized"}
	EarliestBlock  = BlockParam{"earliest"}
)

// NewBlockParam parses a block tag or a decimal / hex block number
func NewBlockParam(s string) (BlockParam, error) {
	res := BlockParam{strings.ToLower(strings.TrimSpace(s))}
	if res.string == "" {
		return LatestBlock, nil
	}
	if _, err := res.ToBlockNum(); err != nil {
		return BlockParam{}, err
	}
	return res, nil
}

// ToBlockNum converts the param to the representation expected by go-ethereum clients.
// Latest is returned as nil.
func (b BlockParam) ToBlockNum() (*big.Int, error) {
	switch b.string {
	case "", LatestBlock.string:
		return nil, nil
	case PendingBlock.string:
		return big.NewInt(int64(rpc.PendingBlockNumber)), nil
	case SafeBlock.string:
		return big.NewInt(int64(rpc.SafeBlockNumber)), nil
	case FinalizedBlock.string:
		return big.NewInt(int64(rpc.FinalizedBlockNumber)), nil
	case EarliestBlock.string:
		return big.NewInt(int64(rpc.EarliestBlockNumber)), nil
	}
	if strings.HasPrefix(b.string, "0x") {
		n, err := hexutil.DecodeBig(b.string)
		if err != nil {
			return nil, fmt.Errorf("invalid block param %s: %w", b.string, err)
		}
		return n, nil
	}
	n, ok := new(big.Int).SetString(b.string, 10)
	if !ok || n.Sign() < 0 {
		return nil, fmt.Errorf("invalid block param: %s", b.string)
	}
	return n, nil
}

func (b BlockParam) String() string {
	if b.string == "" {
		return LatestBlock.string
	}
	return b.string
}

// UnmarshalText unmarshalls BlockParam from text.
func (b *BlockParam) UnmarshalText(data []byte) error {
	res, err := NewBlockParam(string(data))
	if err != nil {
		return fmt.Errorf("failed to parse BlockParam %s: %w", string(data), err)
	}
	b.string = res.string
	return nil
}

func (BlockParam) JSONSchema() *jsonschema.Schema {
	return &jsonschema.Schema{
		Type:        "string",
		Title:       "BlockParam",
		Description: "Block tag or number",
		Examples:    []interface{}{"latest", "finalized", "0x10", "1024"},
	}
}
