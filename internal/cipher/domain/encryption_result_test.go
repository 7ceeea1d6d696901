package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEncryptionResult(t *testing.T) {
	nonce := []byte{0x01, 0x02, 0x03}
	payload := []byte{0xaa, 0xbb}

	result := NewEncryptionResult(nonce, payload)
	assert.Equal(t, "010203", result.Nonce)
	assert.Equal(t, "aabb", result.Encrypted)
}

func TestEncryptionResult_Validate(t *testing.T) {
	t.Run("valid result", func(t *testing.T) {
		result := EncryptionResult{Nonce: "0102", Encrypted: "aabb"}
		assert.NoError(t, result.Validate())
	})

	t.Run("missing nonce", func(t *testing.T) {
		result := EncryptionResult{Encrypted: "aabb"}
		assert.ErrorIs(t, result.Validate(), ErrInvalidPayload)
	})

	t.Run("missing encrypted data", func(t *testing.T) {
		result := EncryptionResult{Nonce: "0102"}
		assert.ErrorIs(t, result.Validate(), ErrInvalidPayload)
	})
}

func TestEncryptionResult_Decode(t *testing.T) {
	t.Run("round-trips with NewEncryptionResult", func(t *testing.T) {
		original := NewEncryptionResult([]byte{0x01, 0x02}, []byte{0xaa, 0xbb, 0xcc})

		nonce, payload, err := original.Decode()
		require.NoError(t, err)
		assert.Equal(t, []byte{0x01, 0x02}, nonce)
		assert.Equal(t, []byte{0xaa, 0xbb, 0xcc}, payload)
	})

	t.Run("rejects non-hex nonce", func(t *testing.T) {
		result := EncryptionResult{Nonce: "zz", Encrypted: "aabb"}
		_, _, err := result.Decode()
		assert.ErrorIs(t, err, ErrInvalidPayload)
	})

	t.Run("rejects non-hex encrypted data", func(t *testing.T) {
		result := EncryptionResult{Nonce: "0102", Encrypted: "not-hex"}
		_, _, err := result.Decode()
		assert.ErrorIs(t, err, ErrInvalidPayload)
	})

	t.Run("rejects odd-length hex", func(t *testing.T) {
		result := EncryptionResult{Nonce: "010", Encrypted: "aabb"}
		_, _, err := result.Decode()
		assert.ErrorIs(t, err, ErrInvalidPayload)
	})
}

func TestSplitAuthTag(t *testing.T) {
	t.Run("splits trailing tag", func(t *testing.T) {
		payload := make([]byte, 20)
		for i := range payload {
			payload[i] = byte(i)
		}

		ciphertext, tag, err := SplitAuthTag(payload, 16)
		require.NoError(t, err)
		assert.Equal(t, payload[:4], ciphertext)
		assert.Equal(t, payload[4:], tag)
	})

	t.Run("tag-only payload yields empty ciphertext", func(t *testing.T) {
		payload := make([]byte, 16)
		ciphertext, tag, err := SplitAuthTag(payload, 16)
		require.NoError(t, err)
		assert.Empty(t, ciphertext)
		assert.Len(t, tag, 16)
	})

	t.Run("rejects payload shorter than tag", func(t *testing.T) {
		_, _, err := SplitAuthTag(make([]byte, 15), 16)
		assert.ErrorIs(t, err, ErrInvalidPayload)
	})
}

func TestZero(t *testing.T) {
	b := []byte{1, 2, 3}
	Zero(b)
	assert.Equal(t, []byte{0, 0, 0}, b)

	// nil must not panic
	Zero(nil)
}
