// Package tinkbase62 provides Tink integration for base62 tokens.
// A token is a Tink deterministic-AEAD (AES-SIV) ciphertext encoded with a base62.Converter,
// which keeps it short, URL-friendly when the alphabet is, and stable for a given key.
package tinkbase62

import (
	"fmt"

	"github.com/google/tink/go/daead"
	"github.com/google/tink/go/keyset"
	"github.com/google/tink/go/tink"
	"github.com/vdparikh/base62"
)

// New creates a Tokenizer from a Tink keyset handle holding deterministic-AEAD keys.
// associatedData is authenticated with every token; tokens made with one value do not
// detokenize under another. A nil conv uses the default base62 alphabet.
//
// Example:
//
//	handle, err := keyset.NewHandle(tinkbase62.KeyTemplate())
//	if err != nil {
//	    return err
//	}
//	tok, err := tinkbase62.New(handle, nil, []byte("tenant-1234|user.id"))
//	if err != nil {
//	    return err
//	}
//	token, err := tok.Tokenize([]byte("42"))
func New(handle *keyset.Handle, conv *base62.Converter, associatedData []byte) (base62.Tokenizer, error) {
	if handle == nil {
		return nil, fmt.Errorf("keyset handle cannot be nil")
	}

	primitive, err := daead.New(handle)
	if err != nil {
		return nil, fmt.Errorf("failed to get deterministic AEAD primitive: %w", err)
	}

	if conv == nil {
		conv = base62.NewDefault()
	}

	return &tokenizer{
		daead:          primitive,
		conv:           conv,
		associatedData: associatedData,
	}, nil
}

// tokenizer implements base62.Tokenizer on top of tink.DeterministicAEAD.
type tokenizer struct {
	daead          tink.DeterministicAEAD
	conv           *base62.Converter
	associatedData []byte
}

// Tokenize encrypts plaintext and encodes the ciphertext.
func (t *tokenizer) Tokenize(plaintext []byte) (string, error) {
	ciphertext, err := t.daead.EncryptDeterministically(plaintext, t.associatedData)
	if err != nil {
		return "", fmt.Errorf("failed to tokenize: %w", err)
	}
	return t.conv.EncodeBytes(ciphertext), nil
}

// Detokenize decodes token and decrypts the ciphertext.
func (t *tokenizer) Detokenize(token string) ([]byte, error) {
	ciphertext, err := t.conv.DecodeBytes(token)
	if err != nil {
		return nil, fmt.Errorf("failed to decode token: %w", err)
	}

	plaintext, err := t.daead.DecryptDeterministically(ciphertext, t.associatedData)
	if err != nil {
		return nil, fmt.Errorf("failed to detokenize: %w", err)
	}
	return plaintext, nil
}

// Verify that tokenizer implements base62.Tokenizer
var _ base62.Tokenizer = (*tokenizer)(nil)
