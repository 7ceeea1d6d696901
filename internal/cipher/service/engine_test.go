package service

import (
	"crypto/rand"
	"encoding/hex"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/allisson/cryptokit/internal/cipher/domain"
)

func randomKey(t *testing.T, length int) []byte {
	t.Helper()
	key := make([]byte, length)
	_, err := rand.Read(key)
	require.NoError(t, err)
	return key
}

func TestCipherEngine_RoundTrip(t *testing.T) {
	engine := NewCipherEngine()
	plaintexts := [][]byte{
		[]byte("hello world"),
		[]byte(""),
		[]byte("exactly sixteen!"), // one full AES block, forces a padding block in CBC
		randomKey(t, 1024),
	}

	for _, alg := range domain.Algorithms() {
		t.Run(alg.ID, func(t *testing.T) {
			key := randomKey(t, alg.KeyLength)
			for _, plaintext := range plaintexts {
				result, err := engine.Encrypt(alg.ID, key, plaintext)
				require.NoError(t, err)

				recovered, err := engine.Decrypt(alg.ID, key, result)
				require.NoError(t, err)
				assert.Equal(t, plaintext, recovered)
			}
		})
	}
}

func TestCipherEngine_Encrypt(t *testing.T) {
	engine := NewCipherEngine()

	t.Run("aes-256-gcm framing for hello world", func(t *testing.T) {
		key := randomKey(t, 32)
		result, err := engine.Encrypt("aes-256-gcm", key, []byte("hello world"))
		require.NoError(t, err)

		// 12-byte nonce -> 24 hex chars
		assert.Len(t, result.Nonce, 24)
		// 11-byte ciphertext + 16-byte tag -> 54 hex chars
		assert.Len(t, result.Encrypted, 2*(11+16))
	})

	t.Run("cbc output carries no tag", func(t *testing.T) {
		key := randomKey(t, 16)
		result, err := engine.Encrypt("aes-128-cbc", key, []byte("hello world"))
		require.NoError(t, err)

		// 16-byte IV -> 32 hex chars; plaintext pads to a single block
		assert.Len(t, result.Nonce, 32)
		assert.Len(t, result.Encrypted, 2*16)
	})

	t.Run("nonces are unique across calls", func(t *testing.T) {
		key := randomKey(t, 32)
		first, err := engine.Encrypt("aes-256-gcm", key, []byte("same plaintext"))
		require.NoError(t, err)
		second, err := engine.Encrypt("aes-256-gcm", key, []byte("same plaintext"))
		require.NoError(t, err)

		assert.NotEqual(t, first.Nonce, second.Nonce)
		assert.NotEqual(t, first.Encrypted, second.Encrypted)
	})

	t.Run("rejects unknown algorithm", func(t *testing.T) {
		_, err := engine.Encrypt("aes256gcm", randomKey(t, 32), []byte("data"))
		assert.ErrorIs(t, err, domain.ErrInvalidAlgorithm)
	})

	t.Run("rejects wrong key length", func(t *testing.T) {
		_, err := engine.Encrypt("aes-256-gcm", randomKey(t, 16), []byte("data"))
		assert.ErrorIs(t, err, domain.ErrInvalidKeyLength)
	})

	t.Run("rejects nil key", func(t *testing.T) {
		_, err := engine.Encrypt("aes-128-cbc", nil, []byte("data"))
		assert.ErrorIs(t, err, domain.ErrInvalidKeyLength)
	})
}

func TestCipherEngine_Decrypt(t *testing.T) {
	engine := NewCipherEngine()
	key := randomKey(t, 32)

	encrypt := func(t *testing.T, identifier string, plaintext string) domain.EncryptionResult {
		t.Helper()
		result, err := engine.Encrypt(identifier, key, []byte(plaintext))
		require.NoError(t, err)
		return result
	}

	t.Run("rejects missing fields", func(t *testing.T) {
		_, err := engine.Decrypt("aes-256-gcm", key, domain.EncryptionResult{})
		assert.ErrorIs(t, err, domain.ErrInvalidPayload)

		_, err = engine.Decrypt("aes-256-gcm", key, domain.EncryptionResult{Nonce: "00"})
		assert.ErrorIs(t, err, domain.ErrInvalidPayload)
	})

	t.Run("rejects non-hex payload", func(t *testing.T) {
		result := encrypt(t, "aes-256-gcm", "data")
		result.Encrypted = "not hex at all"
		_, err := engine.Decrypt("aes-256-gcm", key, result)
		assert.ErrorIs(t, err, domain.ErrInvalidPayload)
	})

	t.Run("rejects wrong nonce length", func(t *testing.T) {
		result := encrypt(t, "aes-256-gcm", "data")
		result.Nonce = "0102"
		_, err := engine.Decrypt("aes-256-gcm", key, result)
		assert.ErrorIs(t, err, domain.ErrInvalidPayload)
	})

	t.Run("rejects payload shorter than tag", func(t *testing.T) {
		result := encrypt(t, "aes-256-gcm", "data")
		result.Encrypted = "aabb"
		_, err := engine.Decrypt("aes-256-gcm", key, result)
		assert.ErrorIs(t, err, domain.ErrInvalidPayload)
	})

	t.Run("rejects wrong key", func(t *testing.T) {
		result := encrypt(t, "aes-256-gcm", "secret data")
		_, err := engine.Decrypt("aes-256-gcm", randomKey(t, 32), result)
		assert.ErrorIs(t, err, domain.ErrDecryptionFailed)
	})

	t.Run("key length is checked before payload", func(t *testing.T) {
		result := encrypt(t, "aes-256-gcm", "data")
		_, err := engine.Decrypt("aes-256-gcm", randomKey(t, 31), result)
		assert.ErrorIs(t, err, domain.ErrInvalidKeyLength)
	})
}

func TestCipherEngine_TamperDetection(t *testing.T) {
	engine := NewCipherEngine()
	authenticated := []string{"aes-256-gcm", "aes-128-ccm", "aes-192-ocb", "chacha20-poly1305"}

	for _, identifier := range authenticated {
		t.Run(identifier, func(t *testing.T) {
			alg, err := domain.ResolveAlgorithm(identifier)
			require.NoError(t, err)
			key := randomKey(t, alg.KeyLength)

			result, err := engine.Encrypt(identifier, key, []byte("integrity matters"))
			require.NoError(t, err)

			payload, err := hex.DecodeString(result.Encrypted)
			require.NoError(t, err)

			// Flip one bit in every byte position, covering both the
			// ciphertext and the tag.
			for i := range payload {
				tampered := make([]byte, len(payload))
				copy(tampered, payload)
				tampered[i] ^= 0x01

				_, err := engine.Decrypt(identifier, key, domain.EncryptionResult{
					Nonce:     result.Nonce,
					Encrypted: hex.EncodeToString(tampered),
				})
				assert.ErrorIs(t, err, domain.ErrDecryptionFailed, "byte %d", i)
			}
		})
	}
}

func TestCipherEngine_WireFormat(t *testing.T) {
	engine := NewCipherEngine()

	t.Run("tag is the trailing 16 bytes", func(t *testing.T) {
		key := randomKey(t, 32)
		plaintext := []byte("wire format check")

		result, err := engine.Encrypt("aes-256-gcm", key, plaintext)
		require.NoError(t, err)

		payload, err := hex.DecodeString(result.Encrypted)
		require.NoError(t, err)
		assert.Len(t, payload, len(plaintext)+16)

		// Truncating the tag must break decryption: the prefix alone is
		// only the raw ciphertext.
		_, err = engine.Decrypt("aes-256-gcm", key, domain.EncryptionResult{
			Nonce:     result.Nonce,
			Encrypted: hex.EncodeToString(payload[:len(plaintext)]),
		})
		assert.ErrorIs(t, err, domain.ErrDecryptionFailed)
	})

	t.Run("hex output is lowercase", func(t *testing.T) {
		key := randomKey(t, 32)
		result, err := engine.Encrypt("aes-256-gcm", key, []byte("data"))
		require.NoError(t, err)
		assert.Equal(t, strings.ToLower(result.Nonce), result.Nonce)
		assert.Equal(t, strings.ToLower(result.Encrypted), result.Encrypted)
	})
}

func TestCipherEngine_ConvenienceWrappers(t *testing.T) {
	engine := NewCipherEngine()

	t.Run("aes-256-gcm pair", func(t *testing.T) {
		key := randomKey(t, 32)
		result, err := engine.EncryptAES256GCM(key, []byte("wrapped"))
		require.NoError(t, err)

		plaintext, err := engine.DecryptAES256GCM(key, result)
		require.NoError(t, err)
		assert.Equal(t, []byte("wrapped"), plaintext)
	})

	t.Run("aes-128-cbc pair", func(t *testing.T) {
		key := randomKey(t, 16)
		result, err := engine.EncryptAES128CBC(key, []byte("wrapped"))
		require.NoError(t, err)

		plaintext, err := engine.DecryptAES128CBC(key, result)
		require.NoError(t, err)
		assert.Equal(t, []byte("wrapped"), plaintext)
	})

	t.Run("wrapper results decrypt through the generic entry point", func(t *testing.T) {
		key := randomKey(t, 24)
		result, err := engine.EncryptAES192OCB(key, []byte("interop"))
		require.NoError(t, err)

		plaintext, err := engine.Decrypt(domain.AES192OCB, key, result)
		require.NoError(t, err)
		assert.Equal(t, []byte("interop"), plaintext)
	})
}
