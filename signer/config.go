package signer

import (
	"fmt"
	"strings"
)

const (
	// MethodLocal signs with a key read from an encrypted keystore file
	MethodLocal = "local"
	// MethodPrivateKey signs with a hex encoded private key, meant for development networks
	MethodPrivateKey = "privatekey"

	FieldPath       = "path"
	FieldPassword   = "pass"
	FieldPrivateKey = "privateKey"
)

type SignerConfig struct {
	Method string                 `jsonschema:"enum=local, enum=privatekey" mapstructure:"Method"`
	Config map[string]interface{} `jsonschema:"omitempty" mapstructure:",remain"`
}

// getString matches field case insensitively, viper lowercases the keys it loads
func (c SignerConfig) getString(field string, mandatory bool) (string, error) {
	v, ok := c.Config[field]
	if !ok {
		for k, value := range c.Config {
			if strings.EqualFold(k, field) {
				v, ok = value, true
				break
			}
		}
	}
	if !ok {
		if mandatory {
			return "", fmt.Errorf("field %s is not present", field)
		}
		return "", nil
	}
	s, ok := v.(string)
	if !ok {
		return "", fmt.Errorf("field %s is not string %v", field, v)
	}
	return s, nil
}
