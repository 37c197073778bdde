package chainclient

import (
	"context"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/ethereum/go-ethereum/rpc"
	walletkit "github.com/zkbridge/walletkit"
	"github.com/zkbridge/walletkit/log"
	"github.com/zkbridge/walletkit/types"
)

type ethRealClient = ethclient.Client

// Client is the RPC backed chain client. It serves both layers; the zks_ namespace
// methods only work against an L2 node.
type Client struct {
	*ethRealClient
	rpc *rpc.Client
}

var (
	_ types.ChainClienter = (*Client)(nil)
	_ types.L2Clienter    = (*Client)(nil)
)

// Dial connects to the node described by cfg and checks its chain id
func Dial(ctx context.Context, cfg Config) (*Client, error) {
	log.Debugf("creating RPC client with URL %s", cfg.URL)
	if cfg.DialTimeout.Duration > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cfg.DialTimeout.Duration)
		defer cancel()
	}
	rpcClient, err := rpc.DialOptions(ctx, cfg.URL, rpc.WithHeader("User-Agent", walletkit.UserAgent()))
	if err != nil {
		return nil, fmt.Errorf("fails to create RPC client. Err: %w", err)
	}
	c := New(rpcClient)
	if cfg.ChainID != 0 {
		chainID, err := c.ChainID(ctx)
		if err != nil {
			c.Close()
			return nil, fmt.Errorf("chain id of %s: %w", cfg.URL, err)
		}
		if chainID.Uint64() != cfg.ChainID {
			c.Close()
			return nil, fmt.Errorf("node %s is on chain %d, expected %d", cfg.URL, chainID.Uint64(), cfg.ChainID)
		}
	}
	return c, nil
}

// New wraps an already connected rpc client
func New(rpcClient *rpc.Client) *Client {
	return &Client{
		ethRealClient: ethclient.NewClient(rpcClient),
		rpc:           rpcClient,
	}
}

// SendRawTransaction broadcasts a signed transaction
func (c *Client) SendRawTransaction(ctx context.Context, rawTx []byte) (common.Hash, error) {
	var hash common.Hash
	if err := c.rpc.CallContext(ctx, &hash, "eth_sendRawTransaction", hexutil.Bytes(rawTx)); err != nil {
		return common.Hash{}, err
	}
	return hash, nil
}

// MainContractAddress implements types.ZkSyncRPCer
func (c *Client) MainContractAddress(ctx context.Context) (common.Address, error) {
	var addr common.Address
	if err := c.rpc.CallContext(ctx, &addr, "zks_getMainContract"); err != nil {
		return common.Address{}, err
	}
	return addr, nil
}

// BridgeContracts implements types.ZkSyncRPCer
func (c *Client) BridgeContracts(ctx context.Context) (*types.BridgeAddresses, error) {
	var res types.BridgeAddresses
	if err := c.rpc.CallContext(ctx, &res, "zks_getBridgeContracts"); err != nil {
		return nil, err
	}
	return &res, nil
}

// AllAccountBalances implements types.ZkSyncRPCer
func (c *Client) AllAccountBalances(ctx context.Context, account common.Address) (map[common.Address]*big.Int, error) {
	var raw map[common.Address]*hexutil.Big
	if err := c.rpc.CallContext(ctx, &raw, "zks_getAllAccountBalances", account); err != nil {
		return nil, err
	}
	res := make(map[common.Address]*big.Int, len(raw))
	for token, balance := range raw {
		if balance == nil {
			continue
		}
		res[token] = balance.ToInt()
	}
	return res, nil
}

type eip712Meta struct {
	GasPerPubdata *hexutil.Big `json:"gasPerPubdata,omitempty"`
}

type l1ToL2CallArg struct {
	From       common.Address  `json:"from"`
	To         *common.Address `json:"to,omitempty"`
	Value      *hexutil.Big    `json:"value,omitempty"`
	Data       hexutil.Bytes   `json:"data,omitempty"`
	EIP712Meta *eip712Meta     `json:"eip712Meta,omitempty"`
}

// EstimateGasL1ToL2 implements types.L1ToL2GasEstimator
func (c *Client) EstimateGasL1ToL2(ctx context.Context, msg ethereum.CallMsg, gasPerPubdata *big.Int) (uint64, error) {
	arg := l1ToL2CallArg{
		From:  msg.From,
		To:    msg.To,
		Value: (*hexutil.Big)(msg.Value),
		Data:  msg.Data,
	}
	if gasPerPubdata != nil {
		arg.EIP712Meta = &eip712Meta{GasPerPubdata: (*hexutil.Big)(gasPerPubdata)}
	}
	var gas hexutil.Uint64
	if err := c.rpc.CallContext(ctx, &gas, "zks_estimateGasL1ToL2", arg); err != nil {
		return 0, err
	}
	return uint64(gas), nil
}
