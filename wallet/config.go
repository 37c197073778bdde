package wallet

import (
	"time"

	cfgtypes "github.com/zkbridge/walletkit/config/types"
	"github.com/zkbridge/walletkit/fees"
	"github.com/zkbridge/walletkit/signer"
	"github.com/zkbridge/walletkit/txbuilder"
)

// DefaultPollInterval is used when PollInterval is not configured
const DefaultPollInterval = time.Second

// Config is the configuration of the wallet
type Config struct {
	// Signer signs every transaction of the wallet on both layers
	Signer signer.SignerConfig `mapstructure:"Signer"`
	// Fees selects the base cost model of priority operations
	Fees fees.Config `mapstructure:"Fees"`
	// Builder configures the transaction builders
	Builder txbuilder.Config `mapstructure:"Builder"`
	// L1ConfirmationTimeout bounds the wait of L1 receipts, 0 waits until the context is done
	L1ConfirmationTimeout cfgtypes.Duration `mapstructure:"L1ConfirmationTimeout"`
	// L2ConfirmationTimeout bounds the wait of the L2 receipt of a priority operation
	L2ConfirmationTimeout cfgtypes.Duration `mapstructure:"L2ConfirmationTimeout"`
	// PollInterval is the interval between receipt lookups
	PollInterval cfgtypes.Duration `mapstructure:"PollInterval"`
}

func (c Config) pollInterval() time.Duration {
	if c.PollInterval.Duration <= 0 {
		return DefaultPollInterval
	}
	return c.PollInterval.Duration
}
