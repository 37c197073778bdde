package db

import (
	"errors"
	"fmt"
	"math/big"
	"reflect"

	"github.com/ethereum/go-ethereum/common"
	"github.com/russross/meddler"
)

// init registers the meddlers used by the stores: "hash", "address" and "bigint"
func init() {
	meddler.Default = meddler.SQLite
	meddler.Register("hash", HashMeddler{})
	meddler.Register("address", AddressMeddler{})
	meddler.Register("bigint", BigIntMeddler{})
}

// HashMeddler stores common.Hash and *common.Hash as hex strings
type HashMeddler struct{}

func (h HashMeddler) PreRead(fieldAddr interface{}) (scanTarget interface{}, err error) {
	return new(string), nil
}

func (h HashMeddler) PostRead(fieldPtr, scanTarget interface{}) error {
	raw, ok := scanTarget.(*string)
	if !ok {
		return errors.New("scanTarget is not *string")
	}
	switch field := fieldPtr.(type) {
	case *common.Hash:
		*field = common.HexToHash(*raw)
	case **common.Hash:
		if *raw == "" {
			*field = nil
			return nil
		}
		hash := common.HexToHash(*raw)
		*field = &hash
	default:
		return fmt.Errorf("HashMeddler: unsupported field type %s", reflect.TypeOf(fieldPtr))
	}
	return nil
}

func (h HashMeddler) PreWrite(fieldPtr interface{}) (saveValue interface{}, err error) {
	switch field := fieldPtr.(type) {
	case common.Hash:
		return field.Hex(), nil
	case *common.Hash:
		if field == nil {
			return []byte{}, nil
		}
		return field.Hex(), nil
	default:
		return nil, fmt.Errorf("HashMeddler: unsupported field type %s", reflect.TypeOf(fieldPtr))
	}
}

// AddressMeddler stores common.Address and *common.Address as hex strings
type AddressMeddler struct{}

func (a AddressMeddler) PreRead(fieldAddr interface{}) (scanTarget interface{}, err error) {
	return new(string), nil
}

func (a AddressMeddler) PostRead(fieldPtr, scanTarget interface{}) error {
	raw, ok := scanTarget.(*string)
	if !ok {
		return errors.New("scanTarget is not *string")
	}
	switch field := fieldPtr.(type) {
	case *common.Address:
		*field = common.HexToAddress(*raw)
	case **common.Address:
		if *raw == "" {
			*field = nil
			return nil
		}
		addr := common.HexToAddress(*raw)
		*field = &addr
	default:
		return fmt.Errorf("AddressMeddler: unsupported field type %s", reflect.TypeOf(fieldPtr))
	}
	return nil
}

func (a AddressMeddler) PreWrite(fieldPtr interface{}) (saveValue interface{}, err error) {
	switch field := fieldPtr.(type) {
	case common.Address:
		return field.Hex(), nil
	case *common.Address:
		if field == nil {
			return []byte{}, nil
		}
		return field.Hex(), nil
	default:
		return nil, fmt.Errorf("AddressMeddler: unsupported field type %s", reflect.TypeOf(fieldPtr))
	}
}

// BigIntMeddler stores *big.Int as a base 10 string, nil as NULL
type BigIntMeddler struct{}

func (b BigIntMeddler) PreRead(fieldAddr interface{}) (scanTarget interface{}, err error) {
	return new(*string), nil
}

func (b BigIntMeddler) PostRead(fieldPtr, scanTarget interface{}) error {
	raw, ok := scanTarget.(**string)
	if !ok {
		return errors.New("scanTarget is not **string")
	}
	field, ok := fieldPtr.(**big.Int)
	if !ok {
		return fmt.Errorf("BigIntMeddler: unsupported field type %s", reflect.TypeOf(fieldPtr))
	}
	if *raw == nil {
		*field = nil
		return nil
	}
	value, ok := new(big.Int).SetString(**raw, 10) //nolint:mnd
	if !ok {
		return fmt.Errorf("BigIntMeddler: invalid value %q", **raw)
	}
	*field = value
	return nil
}

func (b BigIntMeddler) PreWrite(fieldPtr interface{}) (saveValue interface{}, err error) {
	field, ok := fieldPtr.(*big.Int)
	if !ok {
		return nil, fmt.Errorf("BigIntMeddler: unsupported field type %s", reflect.TypeOf(fieldPtr))
	}
	if field == nil {
		return nil, nil
	}
	return field.String(), nil
}
