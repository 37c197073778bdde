package chainclient

import (
	"context"
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/rpc"
	"github.com/stretchr/testify/require"
	"github.com/zkbridge/walletkit/types"
)

var (
	mainContract = common.HexToAddress("0x9A6DE0f62Aa270A8bCB1e2610078650D539B1Ef9")
	l1Bridge     = common.HexToAddress("0x927DdFcc55164a59E0F33918D13a2D559bC10ce7")
	l2Bridge     = common.HexToAddress("0x00ff932A6d70E2B8f1Eb4919e1e09C1923E7e57b")
	account      = common.HexToAddress("0x36615Cf349d7F6344891B1e7CA7C72883F5dc049")
)

type zksService struct {
	lastEstimate map[string]interface{}
}

func (s *zksService) GetMainContract() (common.Address, error) {
	return mainContract, nil
}

func (s *zksService) GetBridgeContracts() (map[string]common.Address, error) {
	return map[string]common.Address{
		"l1Erc20DefaultBridge": l1Bridge,
		"l2Erc20DefaultBridge": l2Bridge,
	}, nil
}

func (s *zksService) GetAllAccountBalances(addr common.Address) (map[common.Address]*hexutil.Big, error) {
	if addr != account {
		return map[common.Address]*hexutil.Big{}, nil
	}
	return map[common.Address]*hexutil.Big{
		types.EthAddress:              (*hexutil.Big)(big.NewInt(1_000)),
		common.HexToAddress("0xdead"): (*hexutil.Big)(big.NewInt(5)),
	}, nil
}

func (s *zksService) EstimateGasL1ToL2(arg map[string]interface{}) (hexutil.Uint64, error) {
	s.lastEstimate = arg
	return hexutil.Uint64(577984), nil
}

type ethService struct {
	sent []hexutil.Bytes
}

func (s *ethService) SendRawTransaction(data hexutil.Bytes) (common.Hash, error) {
	s.sent = append(s.sent, data)
	return common.BytesToHash(data), nil
}

func (s *ethService) ChainId() (*hexutil.Big, error) {
	return (*hexutil.Big)(big.NewInt(270)), nil
}

func newTestClient(t *testing.T) (*Client, *zksService, *ethService) {
	t.Helper()
	server := rpc.NewServer()
	zks := &zksService{}
	eth := &ethService{}
	require.NoError(t, server.RegisterName("zks", zks))
	require.NoError(t, server.RegisterName("eth", eth))
	t.Cleanup(server.Stop)
	c := New(rpc.DialInProc(server))
	t.Cleanup(c.Close)
	return c, zks, eth
}

func TestZksNamespace(t *testing.T) {
	c, zks, _ := newTestClient(t)
	ctx := context.Background()

	main, err := c.MainContractAddress(ctx)
	require.NoError(t, err)
	require.Equal(t, mainContract, main)

	bridges, err := c.BridgeContracts(ctx)
	require.NoError(t, err)
	require.Equal(t, l1Bridge, bridges.L1ERC20DefaultBridge)
	require.Equal(t, l2Bridge, bridges.L2ERC20DefaultBridge)

	balances, err := c.AllAccountBalances(ctx, account)
	require.NoError(t, err)
	require.Len(t, balances, 2)
	require.Equal(t, big.NewInt(1_000), balances[types.EthAddress])

	to := common.HexToAddress("0x1")
	gas, err := c.EstimateGasL1ToL2(ctx, ethereum.CallMsg{From: account, To: &to, Value: big.NewInt(7)}, big.NewInt(800))
	require.NoError(t, err)
	require.Equal(t, uint64(577984), gas)
	require.Equal(t, "0x7", zks.lastEstimate["value"])
	require.Equal(t, map[string]interface{}{"gasPerPubdata": "0x320"}, zks.lastEstimate["eip712Meta"])
}

func TestSendRawTransaction(t *testing.T) {
	c, _, eth := newTestClient(t)
	raw := common.FromHex("0x02f86b")
	hash, err := c.SendRawTransaction(context.Background(), raw)
	require.NoError(t, err)
	require.Equal(t, common.BytesToHash(raw), hash)
	require.Len(t, eth.sent, 1)

	chainID, err := c.ChainID(context.Background())
	require.NoError(t, err)
	require.Equal(t, big.NewInt(270), chainID)
}

func TestDialWrongURL(t *testing.T) {
	_, err := Dial(context.Background(), Config{URL: "unknown://nowhere"})
	require.Error(t, err)
}
