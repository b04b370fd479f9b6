package tinkbase62

import (
	"crypto/rand"
	"encoding/binary"
	"fmt"
	"io"

	"github.com/google/tink/go/daead"
	"github.com/google/tink/go/insecurecleartextkeyset"
	"github.com/google/tink/go/keyset"
	aspb "github.com/google/tink/go/proto/aes_siv_go_proto"
	tinkpb "github.com/google/tink/go/proto/tink_go_proto"
	"google.golang.org/protobuf/proto"
)

const (
	// AESSIVKeyTypeURL is the type URL of Tink's AES-SIV deterministic AEAD keys.
	AESSIVKeyTypeURL = "type.googleapis.com/google.crypto.tink.AesSivKey"

	// AESSIVKeySize is the only key size AES-SIV accepts: two 256-bit AES keys.
	AESSIVKeySize = 64
)

// KeyTemplate returns the key template for tokenizer keys.
// This allows users to generate keys with a single line:
//
//	handle, err := keyset.NewHandle(tinkbase62.KeyTemplate())
func KeyTemplate() *tinkpb.KeyTemplate {
	return daead.AESSIVKeyTemplate()
}

// NewKeysetHandleFromKey creates a keyset handle from a raw 64-byte AES-SIV key,
// e.g. one held in an HSM or another key management system.
//
// The keyset uses the RAW output prefix so tokens carry no Tink key-ID prefix.
//
// Note: This creates an unencrypted keyset. In production, consider encrypting
// the keyset before storing it using keyset.Write() with an AEAD.
func NewKeysetHandleFromKey(key []byte) (*keyset.Handle, error) {
	if len(key) != AESSIVKeySize {
		return nil, fmt.Errorf("invalid key size: %d bytes (must be %d)", len(key), AESSIVKeySize)
	}

	serializedKey, err := proto.Marshal(&aspb.AesSivKey{
		Version:  0,
		KeyValue: key,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to serialize key: %w", err)
	}

	keyIDBytes := make([]byte, 4)
	if _, err := rand.Read(keyIDBytes); err != nil {
		return nil, fmt.Errorf("failed to generate key ID: %w", err)
	}
	keyID := binary.BigEndian.Uint32(keyIDBytes)

	ks := &tinkpb.Keyset{
		PrimaryKeyId: keyID,
		Key: []*tinkpb.Keyset_Key{{
			KeyData: &tinkpb.KeyData{
				TypeUrl:         AESSIVKeyTypeURL,
				Value:           serializedKey,
				KeyMaterialType: tinkpb.KeyData_SYMMETRIC,
			},
			KeyId:            keyID,
			Status:           tinkpb.KeyStatusType_ENABLED,
			OutputPrefixType: tinkpb.OutputPrefixType_RAW,
		}},
	}

	return insecurecleartextkeyset.Read(&keyset.MemReaderWriter{Keyset: ks})
}

// WriteKeyset writes handle to w as cleartext JSON.
// WARNING: In production, use encrypted keysets with handle.Write() and an AEAD.
func WriteKeyset(handle *keyset.Handle, w io.Writer) error {
	if err := insecurecleartextkeyset.Write(handle, keyset.NewJSONWriter(w)); err != nil {
		return fmt.Errorf("failed to write keyset: %w", err)
	}
	return nil
}

// ReadKeyset reads a cleartext JSON keyset written by WriteKeyset.
// WARNING: In production, use encrypted keysets with keyset.Read() and an AEAD.
func ReadKeyset(r io.Reader) (*keyset.Handle, error) {
	handle, err := insecurecleartextkeyset.Read(keyset.NewJSONReader(r))
	if err != nil {
		return nil, fmt.Errorf("failed to read keyset: %w", err)
	}
	return handle, nil
}
