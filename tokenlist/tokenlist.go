package tokenlist

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/rawbytes"
	"github.com/knadh/koanf/v2"
	"github.com/zkbridge/walletkit/types"
)

const tokensKey = "tokens"

var ErrTokenNotListed = errors.New("token not in token list")

// Config is the configuration of the token list
type Config struct {
	// Path of the JSON token list, empty means only ETH is known
	Path string `mapstructure:"Path"`
}

type entry struct {
	Address   string `koanf:"address"`
	L2Address string `koanf:"l2Address"`
	Symbol    string `koanf:"symbol"`
	Decimals  uint8  `koanf:"decimals"`
}

// List is a read-only list of known tokens. ETH is always part of it.
type List struct {
	tokens   []types.Token
	byL1     map[common.Address]int
	byL2     map[common.Address]int
	bySymbol map[string]int
}

// Load reads the token list of cfg
func Load(cfg Config) (*List, error) {
	if cfg.Path == "" {
		return Parse(nil)
	}
	data, err := os.ReadFile(filepath.Clean(cfg.Path))
	if err != nil {
		return nil, fmt.Errorf("token list: %w", err)
	}
	if strings.EqualFold(filepath.Ext(cfg.Path), ".toml") {
		return ParseTOML(data)
	}
	return Parse(data)
}

// Parse decodes a JSON array of tokens: [{"address", "l2Address", "symbol", "decimals"}].
// A missing l2Address is resolved later through the bridge.
func Parse(data []byte) (*List, error) {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return newList(), nil
	}
	// the parser only accepts objects at the top level
	wrapped := append([]byte(`{"`+tokensKey+`":`), data...)
	wrapped = append(wrapped, '}')
	return parse(wrapped, json.Parser())
}

// ParseTOML decodes a list written as [[tokens]] tables with the same keys as the JSON one
func ParseTOML(data []byte) (*List, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return newList(), nil
	}
	return parse(data, toml.Parser())
}

func newList() *List {
	l := &List{
		byL1:     make(map[common.Address]int),
		byL2:     make(map[common.Address]int),
		bySymbol: make(map[string]int),
	}
	l.add(types.CreateETH())
	return l
}

func parse(data []byte, parser koanf.Parser) (*List, error) {
	l := newList()
	k := koanf.New(".")
	if err := k.Load(rawbytes.Provider(data), parser); err != nil {
		return nil, fmt.Errorf("token list: %w", err)
	}
	var entries []entry
	if err := k.Unmarshal(tokensKey, &entries); err != nil {
		return nil, fmt.Errorf("token list: %w", err)
	}
	for i, e := range entries {
		token, err := e.toToken()
		if err != nil {
			return nil, fmt.Errorf("token list: entry %d: %w", i, err)
		}
		if _, ok := l.byL1[token.L1Address]; ok {
			return nil, fmt.Errorf("token list: entry %d: duplicated address %s", i, token.L1Address.Hex())
		}
		if _, ok := l.bySymbol[strings.ToUpper(token.Symbol)]; ok {
			return nil, fmt.Errorf("token list: entry %d: duplicated symbol %s", i, token.Symbol)
		}
		l.add(token)
	}
	return l, nil
}

func (e entry) toToken() (types.Token, error) {
	if !common.IsHexAddress(e.Address) {
		return types.Token{}, fmt.Errorf("invalid address %q", e.Address)
	}
	if e.Symbol == "" {
		return types.Token{}, fmt.Errorf("missing symbol of %s", e.Address)
	}
	token := types.Token{
		L1Address: common.HexToAddress(e.Address),
		Symbol:    e.Symbol,
		Decimals:  e.Decimals,
	}
	if e.L2Address != "" {
		if !common.IsHexAddress(e.L2Address) {
			return types.Token{}, fmt.Errorf("invalid l2 address %q", e.L2Address)
		}
		token.L2Address = common.HexToAddress(e.L2Address)
	}
	return token, nil
}

func (l *List) add(token types.Token) {
	idx := len(l.tokens)
	l.tokens = append(l.tokens, token)
	l.byL1[token.L1Address] = idx
	if token.L2Address != (common.Address{}) {
		l.byL2[token.L2Address] = idx
	}
	l.bySymbol[strings.ToUpper(token.Symbol)] = idx
}

// Tokens returns a copy of the listed tokens, ETH first
func (l *List) Tokens() []types.Token {
	return append([]types.Token{}, l.tokens...)
}

func (l *List) ByL1(addr common.Address) (types.Token, bool) {
	idx, ok := l.byL1[addr]
	if !ok {
		return types.Token{}, false
	}
	return l.tokens[idx], true
}

func (l *List) ByL2(addr common.Address) (types.Token, bool) {
	if addr == types.L2EthTokenAddress {
		return types.CreateETH(), true
	}
	idx, ok := l.byL2[addr]
	if !ok {
		return types.Token{}, false
	}
	return l.tokens[idx], true
}

// BySymbol looks a token up by its case insensitive symbol
func (l *List) BySymbol(symbol string) (types.Token, bool) {
	idx, ok := l.bySymbol[strings.ToUpper(symbol)]
	if !ok {
		return types.Token{}, false
	}
	return l.tokens[idx], true
}

// Lookup accepts a symbol or an L1 address. Unlisted addresses are returned with only
// their L1 address set.
func (l *List) Lookup(s string) (types.Token, error) {
	if token, ok := l.BySymbol(s); ok {
		return token, nil
	}
	if !common.IsHexAddress(s) {
		return types.Token{}, fmt.Errorf("%w: %s", ErrTokenNotListed, s)
	}
	addr := common.HexToAddress(s)
	if token, ok := l.ByL1(addr); ok {
		return token, nil
	}
	return types.Token{L1Address: addr}, nil
}
