package chainclient

import (
	"github.com/zkbridge/walletkit/config/types"
)

// Config is the configuration of the connection to one chain
type Config struct {
	// URL is the JSON-RPC endpoint of the node
	URL string `mapstructure:"URL"`
	// ChainID is checked against the node when not zero
	ChainID uint64 `mapstructure:"ChainID"`
	// DialTimeout bounds the connection and the chain id check, zero disables it
	DialTimeout types.Duration `mapstructure:"DialTimeout"`
}
