package base62

import (
	"fmt"
	"sort"
	"strings"

	"github.com/vdparikh/base62/subtle"
)

// Preset alphabets. Symbol order is part of the encoded format and must not change.
const (
	AlphabetBase62         = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz"
	AlphabetBase62Inverted = "0123456789abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"
	AlphabetBase2          = "01"
	AlphabetBase8          = "01234567"
	AlphabetBase11         = "0123456789a"
	AlphabetBase16         = "0123456789abcdef"
	AlphabetBase32         = "0123456789ABCDEFGHJKMNPQRSTVWXYZ"
	AlphabetBase36         = "0123456789abcdefghijklmnopqrstuvwxyz"
	AlphabetBase58         = "123456789ABCDEFGHJKLMNPQRSTUVWXYZabcdefghijkmnopqrstuvwxyz"
	AlphabetBase64         = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789+/"
	AlphabetBase67         = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789-_.!~"

	// DefaultRadix is the radix of AlphabetBase62.
	DefaultRadix = 62
)

var presets = map[string]string{
	"base62":          AlphabetBase62,
	"base62-inverted": AlphabetBase62Inverted,
	"base2":           AlphabetBase2,
	"base8":           AlphabetBase8,
	"base11":          AlphabetBase11,
	"base16":          AlphabetBase16,
	"base32":          AlphabetBase32,
	"base36":          AlphabetBase36,
	"base58":          AlphabetBase58,
	"base64":          AlphabetBase64,
	"base67":          AlphabetBase67,
}

// Preset returns the preset alphabet registered under name, e.g. "base58".
// Lookup is case-insensitive.
func Preset(name string) (string, bool) {
	alphabet, ok := presets[strings.ToLower(name)]
	return alphabet, ok
}

// PresetNames returns the names accepted by Preset, sorted.
func PresetNames() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// alphabet maps symbols to digit values and back.
type alphabet struct {
	symbols []rune
	index   map[rune]uint16
}

// newAlphabet validates s against radix: the radix must be in range,
// s must hold exactly radix symbols, and no symbol may repeat.
func newAlphabet(s string, radix int) (*alphabet, error) {
	if radix < 2 || radix > subtle.MaxRadix {
		return nil, fmt.Errorf("%w: radix %d out of range [2, %d]", ErrInvalidConfiguration, radix, subtle.MaxRadix)
	}

	symbols := []rune(s)
	if len(symbols) != radix {
		return nil, &ConfigError{AlphabetLen: len(symbols), Radix: radix}
	}

	index := make(map[rune]uint16, len(symbols))
	for i, sym := range symbols {
		if _, dup := index[sym]; dup {
			return nil, fmt.Errorf("%w: duplicate symbol %q at position %d", ErrInvalidConfiguration, sym, i)
		}
		index[sym] = uint16(i)
	}

	return &alphabet{symbols: symbols, index: index}, nil
}

// digits converts symbols to digit values. offset is added to the position
// reported in an InvalidCharacterError.
func (a *alphabet) digits(symbols []rune, offset int) ([]uint16, error) {
	result := make([]uint16, len(symbols))
	for i, sym := range symbols {
		d, ok := a.index[sym]
		if !ok {
			return nil, &InvalidCharacterError{Char: sym, Pos: offset + i}
		}
		result[i] = d
	}
	return result, nil
}

// text renders digit values as symbols.
func (a *alphabet) text(digits []uint16) string {
	var sb strings.Builder
	sb.Grow(len(digits))
	for _, d := range digits {
		sb.WriteRune(a.symbols[d])
	}
	return sb.String()
}

func (a *alphabet) String() string {
	return string(a.symbols)
}
