package main

import (
	"errors"
	"fmt"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/common/math"
)

var errInvalidAmount = errors.New("invalid amount")

// parseAmount converts a human readable amount such as "1.5" into base units of a
// token with the given decimals. Digits beyond the token precision are rejected.
func parseAmount(s string, decimals uint8) (*big.Int, error) {
	s = strings.TrimSpace(s)
	if s == "" || strings.HasPrefix(s, "-") || strings.HasPrefix(s, "+") {
		return nil, fmt.Errorf("%w: %q", errInvalidAmount, s)
	}
	whole, frac, hasDot := strings.Cut(s, ".")
	if hasDot && frac == "" {
		return nil, fmt.Errorf("%w: %q", errInvalidAmount, s)
	}
	if whole == "" {
		whole = "0"
	}
	frac = strings.TrimRight(frac, "0")
	if len(frac) > int(decimals) {
		return nil, fmt.Errorf("%w: %q has more than %d decimals", errInvalidAmount, s, decimals)
	}
	digits := whole + frac + strings.Repeat("0", int(decimals)-len(frac))
	if strings.HasPrefix(digits, "0x") || strings.HasPrefix(digits, "0X") {
		return nil, fmt.Errorf("%w: %q", errInvalidAmount, s)
	}
	v, ok := math.ParseBig256(digits)
	if !ok {
		return nil, fmt.Errorf("%w: %q", errInvalidAmount, s)
	}
	return v, nil
}

// formatAmount is the inverse of parseAmount, trailing zeros are dropped
func formatAmount(v *big.Int, decimals uint8) string {
	if v == nil {
		return "0"
	}
	s := v.String()
	if decimals == 0 {
		return s
	}
	if len(s) <= int(decimals) {
		s = strings.Repeat("0", int(decimals)-len(s)+1) + s
	}
	cut := len(s) - int(decimals)
	frac := strings.TrimRight(s[cut:], "0")
	if frac == "" {
		return s[:cut]
	}
	return s[:cut] + "." + frac
}

// parseWei parses an integer amount of wei, decimal or 0x prefixed
func parseWei(s string) (*big.Int, error) {
	v, ok := math.ParseBig256(strings.TrimSpace(s))
	if !ok {
		return nil, fmt.Errorf("%w: %q", errInvalidAmount, s)
	}
	return v, nil
}
