package signer

import (
	"context"
	"crypto/ecdsa"
	"errors"
	"fmt"
	"math/big"
	"os"
	"path/filepath"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/keystore"
	"github.com/ethereum/go-ethereum/common"
	ethtypes "github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	cfgtypes "github.com/zkbridge/walletkit/config/types"
	"github.com/zkbridge/walletkit/types"
)

var errNotInitialized = errors.New("private key is nil")

// keySigner signs with an in-memory private key
type keySigner struct {
	privateKey    *ecdsa.PrivateKey
	publicAddress common.Address
}

func (k *keySigner) setKey(privateKey *ecdsa.PrivateKey) {
	k.privateKey = privateKey
	k.publicAddress = crypto.PubkeyToAddress(privateKey.PublicKey)
}

func (k *keySigner) SignHash(_ context.Context, hash common.Hash) ([]byte, error) {
	if k.privateKey == nil {
		return nil, errNotInitialized
	}
	return crypto.Sign(hash.Bytes(), k.privateKey)
}

func (k *keySigner) SignTx(_ context.Context, tx *ethtypes.Transaction, chainID *big.Int) ([]byte, error) {
	if k.privateKey == nil {
		return nil, errNotInitialized
	}
	signed, err := ethtypes.SignTx(tx, ethtypes.LatestSignerForChainID(chainID), k.privateKey)
	if err != nil {
		return nil, fmt.Errorf("sign tx: %w", err)
	}
	return signed.MarshalBinary()
}

func (k *keySigner) Address() common.Address {
	return k.publicAddress
}

// KeyStoreFileSign signs with the key of an encrypted keystore file
type KeyStoreFileSign struct {
	keySigner
	name   string
	logger types.Logger
	file   cfgtypes.KeystoreFileConfig
}

func NewKeyStoreFileConfig(cfg SignerConfig) (cfgtypes.KeystoreFileConfig, error) {
	var res cfgtypes.KeystoreFileConfig
	if cfg.Method != MethodLocal {
		return res, fmt.Errorf("invalid signer method %s", cfg.Method)
	}
	path, err := cfg.getString(FieldPath, false)
	if err != nil {
		return res, err
	}
	pass, err := cfg.getString(FieldPassword, false)
	if err != nil {
		return res, err
	}
	return cfgtypes.KeystoreFileConfig{Path: path, Password: pass}, nil
}

func NewKeyStoreFileSign(name string, logger types.Logger, file cfgtypes.KeystoreFileConfig) *KeyStoreFileSign {
	return &KeyStoreFileSign{
		name:   name,
		logger: logger,
		file:   file,
	}
}

func (e *KeyStoreFileSign) Initialize(_ context.Context) error {
	privateKey, err := NewKeyFromKeystore(e.file)
	if err != nil {
		return fmt.Errorf("signer %s: %w", e.name, err)
	}
	e.setKey(privateKey)
	e.logger.Infof("signer %s: loaded key of %s", e.name, e.publicAddress.Hex())
	return nil
}

func (e *KeyStoreFileSign) String() string {
	return fmt.Sprintf("%s[%s]: path:%s, pubAddr: %s", MethodLocal, e.name, e.file.Path, e.publicAddress.String())
}

// NewKeyFromKeystore decrypts the private key of a keystore file
func NewKeyFromKeystore(cfg cfgtypes.KeystoreFileConfig) (*ecdsa.PrivateKey, error) {
	if cfg.Path == "" {
		return nil, errors.New("keystore path is not set")
	}
	keystoreEncrypted, err := os.ReadFile(filepath.Clean(cfg.Path))
	if err != nil {
		return nil, err
	}
	key, err := keystore.DecryptKey(keystoreEncrypted, cfg.Password)
	if err != nil {
		return nil, err
	}
	return key.PrivateKey, nil
}

// PrivateKeySign signs with a hex encoded private key
type PrivateKeySign struct {
	keySigner
	name   string
	logger types.Logger
	hexKey string
}

func NewPrivateKeySign(name string, logger types.Logger, hexKey string) *PrivateKeySign {
	return &PrivateKeySign{
		name:   name,
		logger: logger,
		hexKey: hexKey,
	}
}

func (p *PrivateKeySign) Initialize(_ context.Context) error {
	privateKey, err := crypto.HexToECDSA(strings.TrimPrefix(p.hexKey, "0x"))
	if err != nil {
		return fmt.Errorf("signer %s: invalid private key: %w", p.name, err)
	}
	p.setKey(privateKey)
	p.logger.Warnf("signer %s: using a plain private key for %s", p.name, p.publicAddress.Hex())
	return nil
}

func (p *PrivateKeySign) String() string {
	return fmt.Sprintf("%s[%s]: pubAddr: %s", MethodPrivateKey, p.name, p.publicAddress.String())
}
