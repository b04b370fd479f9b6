// This file defines the Tokenizer interface implemented by the tinkbase62 package.

package base62

// Tokenizer turns byte strings into opaque, alphabet-encoded tokens and back.
// Implementations are deterministic: the same plaintext and key give the same token,
// so tokens can be compared or used as lookup keys without being decrypted.
type Tokenizer interface {
	// Tokenize encrypts plaintext and encodes the ciphertext with a Converter.
	Tokenize(plaintext []byte) (string, error)

	// Detokenize reverses Tokenize.
	Detokenize(token string) ([]byte, error)
}
