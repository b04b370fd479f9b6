// Package base62 converts unsigned integers and byte sequences to and from compact
// strings over a configurable alphabet.
//
// A Converter owns one alphabet/radix pair. The default is the 62-symbol alphabet
// 0-9, A-Z, a-z, but any set of distinct symbols works, and presets for base2 through
// base67 are provided (see Preset). Integers of any size are supported; arithmetic is
// done with math/big.
//
// Byte sequences keep their leading zero bytes: EncodeBytes writes each run of zero
// bytes as two-symbol markers ahead of the integer payload, so [0x00 0x01] and [0x01]
// encode differently.
//
// Example usage:
//
//	conv := base62.NewDefault()
//
//	s, err := conv.Encode("34441886726")
//	if err != nil {
//		log.Fatal(err)
//	}
//	// s == "base62"
//
//	b58, err := base62.New(base62.AlphabetBase58, 58)
//	if err != nil {
//		log.Fatal(err)
//	}
//	s, err = b58.EncodeHex("636363")
//	// s == "aPEr"
package base62

import (
	"fmt"
	"math/big"

	"github.com/vdparikh/base62/subtle"
)

// Converter encodes and decodes numerals using one alphabet/radix pair.
//
// Thread safety: encode and decode methods do not modify the Converter and are safe
// for concurrent use. SetAlphabet and SetBaseAlphabet must not run concurrently with
// any other method; use separate Converters when different alphabets are needed
// concurrently.
type Converter struct {
	alpha *alphabet
	radix int
}

// New creates a Converter for the given alphabet and radix.
// The alphabet must hold exactly radix distinct symbols and radix must be at least 2.
func New(alphabet string, radix int) (*Converter, error) {
	a, err := newAlphabet(alphabet, radix)
	if err != nil {
		return nil, err
	}
	return &Converter{alpha: a, radix: radix}, nil
}

// NewDefault creates a Converter for AlphabetBase62.
func NewDefault() *Converter {
	return MustNew(AlphabetBase62, DefaultRadix)
}

// MustNew is like New but panics on an invalid alphabet/radix pair.
func MustNew(alphabet string, radix int) *Converter {
	c, err := New(alphabet, radix)
	if err != nil {
		panic(err)
	}
	return c
}

// Alphabet returns the current alphabet.
func (c *Converter) Alphabet() string {
	return c.alpha.String()
}

// Radix returns the current radix.
func (c *Converter) Radix() int {
	return c.radix
}

// SetAlphabet replaces the alphabet, keeping the current radix.
// On error the Converter is unchanged.
func (c *Converter) SetAlphabet(alphabet string) error {
	a, err := newAlphabet(alphabet, c.radix)
	if err != nil {
		return err
	}
	c.alpha = a
	return nil
}

// SetBaseAlphabet replaces the alphabet and radix together.
// On error the Converter is unchanged.
func (c *Converter) SetBaseAlphabet(alphabet string, radix int) error {
	a, err := newAlphabet(alphabet, radix)
	if err != nil {
		return err
	}
	c.alpha, c.radix = a, radix
	return nil
}

// Using returns a new Converter with the same radix as c and a different alphabet.
// It is the way to encode or decode a single value under another alphabet without
// touching c.
func (c *Converter) Using(alphabet string) (*Converter, error) {
	return New(alphabet, c.radix)
}

// Encode converts an unsigned base-10 integer, given as a string so that it may
// exceed 64 bits, to its symbol string. Zero encodes to the alphabet's first symbol.
func (c *Converter) Encode(numeral string) (string, error) {
	n, ok := new(big.Int).SetString(numeral, 10)
	if !ok || n.Sign() < 0 {
		return "", fmt.Errorf("%w: %q must be an unsigned base-10 integer", ErrInvalidNumeral, numeral)
	}
	return c.encodeInt(n), nil
}

// EncodeInt is like Encode but takes the integer directly.
func (c *Converter) EncodeInt(n *big.Int) (string, error) {
	if n == nil || n.Sign() < 0 {
		return "", fmt.Errorf("%w: %v must be a non-negative integer", ErrInvalidNumeral, n)
	}
	return c.encodeInt(n), nil
}

func (c *Converter) encodeInt(n *big.Int) string {
	return c.alpha.text(subtle.StrRadix(n, c.radix))
}

// Decode converts a symbol string back to a base-10 integer string.
// Leading zero symbols are allowed and the empty string decodes to "0".
func (c *Converter) Decode(symbols string) (string, error) {
	n, err := c.DecodeInt(symbols)
	if err != nil {
		return "", err
	}
	return n.String(), nil
}

// DecodeInt is like Decode but returns the integer directly.
func (c *Converter) DecodeInt(symbols string) (*big.Int, error) {
	return c.decodeRunes([]rune(symbols), 0)
}

func (c *Converter) decodeRunes(symbols []rune, offset int) (*big.Int, error) {
	digits, err := c.alpha.digits(symbols, offset)
	if err != nil {
		return nil, err
	}
	return subtle.NumRadix(digits, c.radix), nil
}

// std backs the package-level functions. It is never mutated.
var std = NewDefault()

// Encode encodes numeral with AlphabetBase62. See Converter.Encode.
func Encode(numeral string) (string, error) {
	return std.Encode(numeral)
}

// Decode decodes symbols with AlphabetBase62. See Converter.Decode.
func Decode(symbols string) (string, error) {
	return std.Decode(symbols)
}

// EncodeBytes encodes b with AlphabetBase62. See Converter.EncodeBytes.
func EncodeBytes(b []byte) string {
	return std.EncodeBytes(b)
}

// DecodeBytes decodes symbols with AlphabetBase62. See Converter.DecodeBytes.
func DecodeBytes(symbols string) ([]byte, error) {
	return std.DecodeBytes(symbols)
}

// EncodeHex encodes a hex string with AlphabetBase62. See Converter.EncodeHex.
func EncodeHex(hex string) (string, error) {
	return std.EncodeHex(hex)
}

// DecodeHex decodes symbols to hex with AlphabetBase62. See Converter.DecodeHex.
func DecodeHex(symbols string) (string, error) {
	return std.DecodeHex(symbols)
}
