package base62

import (
	"fmt"
	"math/big"
	"strings"
)

// EncodeHex encodes a hexadecimal integer. Spaces anywhere in hex are ignored and
// both letter cases are accepted. Leading zeros carry no weight, so "000f" and "f"
// encode the same.
func (c *Converter) EncodeHex(hex string) (string, error) {
	stripped := strings.ReplaceAll(hex, " ", "")
	if stripped == "" {
		return "", fmt.Errorf("%w: hex is empty", ErrEmptyInput)
	}

	n, ok := new(big.Int).SetString(stripped, 16)
	if !ok || n.Sign() < 0 {
		return "", fmt.Errorf("%w: invalid character in %q, valid digits are 0-9a-f", ErrInvalidHex, hex)
	}
	return c.encodeInt(n), nil
}

// DecodeHex decodes symbols and formats the value as lowercase hex without padding.
// Zero is returned as "0".
func (c *Converter) DecodeHex(symbols string) (string, error) {
	n, err := c.DecodeInt(symbols)
	if err != nil {
		return "", err
	}
	return n.Text(16), nil
}

// ConvertBase reinterprets value, written in base from, as a numeral in base to.
// A leading sign is allowed. Digits are the canonical 0-9, a-z, A-Z of math/big, not
// a Converter's alphabet; both bases must be in [2, 62].
func ConvertBase(value string, from, to int) (string, error) {
	if from < 2 || from > big.MaxBase {
		return "", fmt.Errorf("%w: source base %d out of range [2, %d]", ErrInvalidConfiguration, from, big.MaxBase)
	}
	if to < 2 || to > big.MaxBase {
		return "", fmt.Errorf("%w: target base %d out of range [2, %d]", ErrInvalidConfiguration, to, big.MaxBase)
	}

	n, ok := new(big.Int).SetString(value, from)
	if !ok {
		return "", fmt.Errorf("%w: %q is not a base-%d integer", ErrInvalidNumeral, value, from)
	}
	return n.Text(to), nil
}
