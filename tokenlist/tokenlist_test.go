package tokenlist

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/require"
	"github.com/zkbridge/walletkit/types"
)

const testList = `[
	{"address": "0x881567B68502e6d7A7a3556FF4313B637Ba47F4E", "l2Address": "0x5A3e7a5d2E4F1Ccc31bA7bD3D6AF5e9c91F0a4b8", "symbol": "CRWN", "decimals": 18},
	{"address": "0xa61464658AfeAf65CccaaFD3a512b69A83B77618", "symbol": "DAI", "decimals": 6}
]`

var (
	crwnL1 = common.HexToAddress("0x881567B68502e6d7A7a3556FF4313B637Ba47F4E")
	crwnL2 = common.HexToAddress("0x5A3e7a5d2E4F1Ccc31bA7bD3D6AF5e9c91F0a4b8")
	daiL1  = common.HexToAddress("0xa61464658AfeAf65CccaaFD3a512b69A83B77618")
)

func TestParse(t *testing.T) {
	l, err := Parse([]byte(testList))
	require.NoError(t, err)

	tokens := l.Tokens()
	require.Len(t, tokens, 3)
	require.True(t, tokens[0].IsETH())
	require.Equal(t, types.Token{L1Address: crwnL1, L2Address: crwnL2, Symbol: "CRWN", Decimals: 18}, tokens[1])
	require.Equal(t, types.Token{L1Address: daiL1, Symbol: "DAI", Decimals: 6}, tokens[2])

	token, ok := l.ByL2(crwnL2)
	require.True(t, ok)
	require.Equal(t, crwnL1, token.L1Address)
	token, ok = l.ByL2(types.L2EthTokenAddress)
	require.True(t, ok)
	require.True(t, token.IsETH())
	_, ok = l.ByL2(daiL1)
	require.False(t, ok)

	token, ok = l.BySymbol("dai")
	require.True(t, ok)
	require.Equal(t, daiL1, token.L1Address)
	_, ok = l.ByL1(common.HexToAddress("0x1"))
	require.False(t, ok)
}

func TestLookup(t *testing.T) {
	l, err := Parse([]byte(testList))
	require.NoError(t, err)

	token, err := l.Lookup("eth")
	require.NoError(t, err)
	require.True(t, token.IsETH())

	token, err = l.Lookup(crwnL1.Hex())
	require.NoError(t, err)
	require.Equal(t, "CRWN", token.Symbol)

	unlisted := common.HexToAddress("0x00000000000000000000000000000000000000aa")
	token, err = l.Lookup(unlisted.Hex())
	require.NoError(t, err)
	require.Equal(t, types.Token{L1Address: unlisted}, token)

	_, err = l.Lookup("USDC")
	require.ErrorIs(t, err, ErrTokenNotListed)
}

func TestParseErrors(t *testing.T) {
	testCases := []struct {
		name     string
		data     string
		errorMsg string
	}{
		{name: "not json", data: `[{`, errorMsg: "token list"},
		{name: "invalid address", data: `[{"address": "0x12", "symbol": "X"}]`, errorMsg: "invalid address"},
		{name: "invalid l2 address", data: `[{"address": "0xa61464658AfeAf65CccaaFD3a512b69A83B77618", "l2Address": "nope", "symbol": "X"}]`, errorMsg: "invalid l2 address"},
		{name: "missing symbol", data: `[{"address": "0xa61464658AfeAf65CccaaFD3a512b69A83B77618"}]`, errorMsg: "missing symbol"},
		{name: "duplicated address", data: `[
			{"address": "0xa61464658AfeAf65CccaaFD3a512b69A83B77618", "symbol": "A"},
			{"address": "0xa61464658AfeAf65CccaaFD3a512b69A83B77618", "symbol": "B"}]`, errorMsg: "duplicated address"},
		{name: "duplicated symbol", data: `[
			{"address": "0xa61464658AfeAf65CccaaFD3a512b69A83B77618", "symbol": "eth"}]`, errorMsg: "duplicated symbol"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Parse([]byte(tc.data))
			require.ErrorContains(t, err, tc.errorMsg)
		})
	}
}

func TestLoad(t *testing.T) {
	l, err := Load(Config{})
	require.NoError(t, err)
	require.Len(t, l.Tokens(), 1)

	path := filepath.Join(t.TempDir(), "tokens.json")
	require.NoError(t, os.WriteFile(path, []byte(testList), 0600))
	l, err = Load(Config{Path: path})
	require.NoError(t, err)
	require.Len(t, l.Tokens(), 3)

	_, err = Load(Config{Path: filepath.Join(t.TempDir(), "missing.json")})
	require.Error(t, err)
}

const testListTOML = `
[[tokens]]
address = "0x881567B68502e6d7A7a3556FF4313B637Ba47F4E"
l2Address = "0x5A3e7a5d2E4F1Ccc31bA7bD3D6AF5e9c91F0a4b8"
symbol = "CRWN"
decimals = 18

[[tokens]]
address = "0xa61464658AfeAf65CccaaFD3a512b69A83B77618"
symbol = "DAI"
decimals = 6
`

func TestParseTOML(t *testing.T) {
	fromTOML, err := ParseTOML([]byte(testListTOML))
	require.NoError(t, err)
	fromJSON, err := Parse([]byte(testList))
	require.NoError(t, err)
	require.Equal(t, fromJSON.Tokens(), fromTOML.Tokens())

	empty, err := ParseTOML(nil)
	require.NoError(t, err)
	require.Len(t, empty.Tokens(), 1)

	path := filepath.Join(t.TempDir(), "tokens.toml")
	require.NoError(t, os.WriteFile(path, []byte(testListTOML), 0600))
	l, err := Load(Config{Path: path})
	require.NoError(t, err)
	token, ok := l.BySymbol("dai")
	require.True(t, ok)
	require.Equal(t, daiL1, token.L1Address)
}
