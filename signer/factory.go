package signer

import (
	"context"
	"fmt"

	"github.com/zkbridge/walletkit/types"
)

var (
	ErrUnknownSignerMethod = fmt.Errorf("unknown signer method")
)

func NewSigner(ctx context.Context, name string, logger types.Logger, cfg SignerConfig) (Signer, error) {
	var res Signer
	if cfg.Method == "" {
		logger.Warnf("No signer method specified, defaulting to local (keystore file)")
		cfg.Method = MethodLocal
	}
	switch cfg.Method {
	case MethodLocal:
		specificCfg, err := NewKeyStoreFileConfig(cfg)
		if err != nil {
			return nil, err
		}
		res = NewKeyStoreFileSign(name, logger, specificCfg)
	case MethodPrivateKey:
		key, err := cfg.getString(FieldPrivateKey, true)
		if err != nil {
			return nil, err
		}
		res = NewPrivateKeySign(name, logger, key)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownSignerMethod, cfg.Method)
	}
	if err := res.Initialize(ctx); err != nil {
		return nil, err
	}
	return res, nil
}
