package base62

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"gopkg.in/yaml.v3"
)

// Config describes a Converter in a form that can be loaded from YAML:
//
//	preset: base58
//
// or
//
//	alphabet: "0123456789abcdef"
//	radix: 16
//
// Preset and Alphabet are mutually exclusive. Radix defaults to the alphabet length.
// The zero Config describes the default base62 Converter.
type Config struct {
	Preset   string `yaml:"preset,omitempty"`
	Alphabet string `yaml:"alphabet,omitempty"`
	Radix    int    `yaml:"radix,omitempty"`
}

// LoadConfig decodes a single YAML document from r. Unknown fields are rejected.
// A value of the wrong kind, such as a non-numeric radix, returns ErrTypeMismatch.
// Empty input yields the zero Config.
func LoadConfig(r io.Reader) (Config, error) {
	var cfg Config
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	if err := dec.Decode(&cfg); err != nil {
		if errors.Is(err, io.EOF) {
			return Config{}, nil
		}
		var typeErr *yaml.TypeError
		if errors.As(err, &typeErr) && !unknownField(typeErr) {
			return Config{}, fmt.Errorf("%w: %s", ErrTypeMismatch, strings.Join(typeErr.Errors, "; "))
		}
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("parse config: multiple documents or trailing content")
	}

	return cfg, nil
}

// unknownField reports whether a strict-mode TypeError is about an unknown key
// rather than a value of the wrong kind.
func unknownField(err *yaml.TypeError) bool {
	for _, msg := range err.Errors {
		if strings.Contains(msg, "not found in type") {
			return true
		}
	}
	return false
}

// Converter builds the Converter described by cfg.
func (cfg Config) Converter() (*Converter, error) {
	alphabet := cfg.Alphabet
	if cfg.Preset != "" {
		if alphabet != "" {
			return nil, fmt.Errorf("%w: preset %q and an explicit alphabet are mutually exclusive", ErrInvalidConfiguration, cfg.Preset)
		}
		preset, ok := Preset(cfg.Preset)
		if !ok {
			return nil, fmt.Errorf("%w: unknown preset %q (known: %s)", ErrInvalidConfiguration, cfg.Preset, strings.Join(PresetNames(), ", "))
		}
		alphabet = preset
	}
	if alphabet == "" {
		alphabet = AlphabetBase62
	}

	radix := cfg.Radix
	if radix == 0 {
		radix = utf8.RuneCountInString(alphabet)
	}

	return New(alphabet, radix)
}
