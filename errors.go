package base62

import (
	"errors"
	"fmt"
)

// Error values. Every error returned by this package matches one of them with errors.Is.
var (
	// ErrTypeMismatch reports a value of the wrong kind, such as a non-numeric radix in a config file.
	ErrTypeMismatch = errors.New("base62: type mismatch")

	// ErrInvalidConfiguration reports an alphabet/radix pair that cannot be used together.
	ErrInvalidConfiguration = errors.New("base62: invalid configuration")

	// ErrInvalidNumeral reports input that is not an integer in the expected base.
	ErrInvalidNumeral = errors.New("base62: invalid numeral")

	// ErrInvalidHex reports input that is not a hexadecimal integer.
	ErrInvalidHex = errors.New("base62: invalid hex")

	// ErrInvalidCharacter reports a symbol that is not in the active alphabet.
	ErrInvalidCharacter = errors.New("base62: invalid character")

	// ErrEmptyInput reports hex input that is empty once spaces are removed.
	ErrEmptyInput = errors.New("base62: empty input")
)

// ConfigError is returned when an alphabet's length does not equal the radix.
type ConfigError struct {
	AlphabetLen int
	Radix       int
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("base62: the length of the alphabet and the radix must be equal; alphabet length is %d and radix is %d",
		e.AlphabetLen, e.Radix)
}

// Is reports whether target is ErrInvalidConfiguration.
func (e *ConfigError) Is(target error) bool {
	return target == ErrInvalidConfiguration
}

// InvalidCharacterError is returned when decoding meets a symbol outside the alphabet.
// Pos counts symbols, not bytes.
type InvalidCharacterError struct {
	Char rune
	Pos  int
}

func (e *InvalidCharacterError) Error() string {
	return fmt.Sprintf("base62: invalid character %q at position %d", e.Char, e.Pos)
}

// Is reports whether target is ErrInvalidCharacter.
func (e *InvalidCharacterError) Is(target error) bool {
	return target == ErrInvalidCharacter
}
