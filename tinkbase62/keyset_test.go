package tinkbase62

import (
	"bytes"
	"crypto/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewKeysetHandleFromKey(t *testing.T) {
	key := make([]byte, AESSIVKeySize)
	_, err := rand.Read(key)
	require.NoError(t, err)

	h1, err := NewKeysetHandleFromKey(key)
	require.NoError(t, err)
	h2, err := NewKeysetHandleFromKey(key)
	require.NoError(t, err)

	// RAW keys carry no key-ID prefix, so the same key material yields the same
	// token regardless of the keyset's random key ID.
	t1, err := New(h1, nil, []byte("ad"))
	require.NoError(t, err)
	t2, err := New(h2, nil, []byte("ad"))
	require.NoError(t, err)

	a, err := t1.Tokenize([]byte("4532-1234-5678-9010"))
	require.NoError(t, err)
	b, err := t2.Tokenize([]byte("4532-1234-5678-9010"))
	require.NoError(t, err)
	require.Equal(t, a, b)

	plaintext, err := t2.Detokenize(a)
	require.NoError(t, err)
	require.Equal(t, "4532-1234-5678-9010", string(plaintext))
}

func TestNewKeysetHandleFromKeyInvalidSize(t *testing.T) {
	for _, size := range []int{0, 16, 32, 63, 65} {
		_, err := NewKeysetHandleFromKey(make([]byte, size))
		require.Error(t, err, "key size %d", size)
	}
}

func TestKeysetWriteRead(t *testing.T) {
	key := bytes.Repeat([]byte{0x2b}, AESSIVKeySize)
	handle, err := NewKeysetHandleFromKey(key)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, WriteKeyset(handle, &buf))

	loaded, err := ReadKeyset(&buf)
	require.NoError(t, err)

	before, err := New(handle, nil, nil)
	require.NoError(t, err)
	after, err := New(loaded, nil, nil)
	require.NoError(t, err)

	want, err := before.Tokenize([]byte("persisted"))
	require.NoError(t, err)
	got, err := after.Tokenize([]byte("persisted"))
	require.NoError(t, err)
	require.Equal(t, want, got)
}

func TestReadKeysetInvalid(t *testing.T) {
	_, err := ReadKeyset(bytes.NewBufferString("not a keyset"))
	require.Error(t, err)
}
