package base62

import (
	"math/big"
	"strings"

	"github.com/vdparikh/base62/subtle"
)

// EncodeBytes encodes b as a big-endian unsigned integer, preserving leading zero bytes.
//
// A run of z leading zero bytes is written first as markers: each full chunk of
// radix-1 zeros becomes the zero symbol followed by the last symbol of the alphabet,
// and a remainder r > 0 becomes the zero symbol followed by the symbol for r. The
// encoded integer follows, unless every byte is zero. An empty b encodes to "".
func (c *Converter) EncodeBytes(b []byte) string {
	zeros := 0
	for zeros < len(b) && b[zeros] == 0 {
		zeros++
	}

	var sb strings.Builder
	zero := c.alpha.symbols[0]
	chunk := c.radix - 1
	for n := zeros / chunk; n > 0; n-- {
		sb.WriteRune(zero)
		sb.WriteRune(c.alpha.symbols[chunk])
	}
	if r := zeros % chunk; r > 0 {
		sb.WriteRune(zero)
		sb.WriteRune(c.alpha.symbols[r])
	}

	if zeros == len(b) {
		return sb.String()
	}

	sb.WriteString(c.encodeInt(new(big.Int).SetBytes(b)))
	return sb.String()
}

// DecodeBytes reverses EncodeBytes, restoring leading zero bytes from their markers.
// The result is never nil.
func (c *Converter) DecodeBytes(symbols string) ([]byte, error) {
	runes := []rune(symbols)
	zero := c.alpha.symbols[0]

	leading, pos := 0, 0
	for len(runes)-pos >= 2 && runes[pos] == zero {
		k, ok := c.alpha.index[runes[pos+1]]
		if !ok {
			return nil, &InvalidCharacterError{Char: runes[pos+1], Pos: pos + 1}
		}
		leading += int(k)
		pos += 2
	}

	n, err := c.decodeRunes(runes[pos:], pos)
	if err != nil {
		return nil, err
	}

	tail := subtle.SplitBytes(n)
	out := make([]byte, leading, leading+len(tail))
	return append(out, tail...), nil
}
