// Package subtle provides the arbitrary-precision arithmetic behind base62 conversion.
// It works on raw digit values and does not know about alphabets; most users want the
// Converter in the parent package instead.
package subtle

import (
	"math/big"
)

// MaxRadix is the largest radix whose digit values fit in a uint16.
const MaxRadix = 1 << 16

// NumRadix interprets digits (most significant first) as a base-radix numeral
// and returns its value. An empty digit slice is zero.
func NumRadix(digits []uint16, radix int) *big.Int {
	result := new(big.Int)
	radixBig := big.NewInt(int64(radix))
	digit := new(big.Int)

	for _, d := range digits {
		result.Mul(result, radixBig)
		if d != 0 {
			result.Add(result, digit.SetUint64(uint64(d)))
		}
	}

	return result
}

// StrRadix returns the base-radix digits of val, most significant first.
// Zero yields a single zero digit, never an empty slice. val must not be negative
// and is left unmodified.
func StrRadix(val *big.Int, radix int) []uint16 {
	if val.Sign() == 0 {
		return []uint16{0}
	}

	radixBig := big.NewInt(int64(radix))
	temp := new(big.Int).Set(val)
	var remainder big.Int

	// Digits come out least significant first.
	result := make([]uint16, 0, val.BitLen()/(bitLength(radix)-1)+1)
	for temp.Sign() > 0 {
		temp.QuoRem(temp, radixBig, &remainder)
		result = append(result, uint16(remainder.Uint64()))
	}
	reverse(result)

	return result
}

// SplitBytes returns the big-endian bytes of val with no leading zero bytes.
// Zero yields an empty, non-nil slice.
func SplitBytes(val *big.Int) []byte {
	if val.Sign() == 0 {
		return []byte{}
	}
	return val.Bytes()
}

// bitLength returns the number of bits needed to represent radix.
func bitLength(radix int) int {
	if radix <= 1 {
		return 1
	}
	bits := 0
	for n := radix; n > 0; n >>= 1 {
		bits++
	}
	return bits
}

func reverse(digits []uint16) {
	for i, j := 0, len(digits)-1; i < j; i, j = i+1, j-1 {
		digits[i], digits[j] = digits[j], digits[i]
	}
}
