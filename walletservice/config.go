package walletservice

import "github.com/zkbridge/walletkit/config/types"

// Config of the REST API
type Config struct {
	Enabled      bool           `mapstructure:"Enabled"`
	Host         string         `mapstructure:"Host"`
	Port         int            `mapstructure:"Port"`
	ReadTimeout  types.Duration `mapstructure:"ReadTimeout"`
	WriteTimeout types.Duration `mapstructure:"WriteTimeout"`
}
