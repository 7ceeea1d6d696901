package service

import (
	"crypto/rand"
	"fmt"

	"github.com/allisson/cryptokit/internal/cipher/domain"
)

// CipherEngine implements the Engine interface.
//
// The engine is stateless and safe for concurrent use: every call resolves
// its algorithm parameters fresh from the identifier, generates an
// independent random nonce, and shares nothing with other calls.
type CipherEngine struct{}

// NewCipherEngine creates a new CipherEngine.
func NewCipherEngine() *CipherEngine {
	return &CipherEngine{}
}

// Encrypt encrypts plaintext under the named algorithm.
//
// The key length must exactly match the algorithm's requirement; no key
// derivation or stretching is performed. A cryptographically random nonce of
// the algorithm's nonce length is generated per call, so encrypting the same
// plaintext twice yields different results.
//
// For authenticated modes the returned Encrypted field is
// hex(ciphertext || tag) with the 16-byte tag last; for CBC it is
// hex(ciphertext) with PKCS#7 padding applied.
//
// Returns ErrInvalidAlgorithm for unknown identifiers and
// ErrInvalidKeyLength for a key of the wrong size.
func (e *CipherEngine) Encrypt(
	identifier string,
	key, plaintext []byte,
) (domain.EncryptionResult, error) {
	alg, err := domain.ResolveAlgorithm(identifier)
	if err != nil {
		return domain.EncryptionResult{}, err
	}

	if err := validateKeyLength(alg, key); err != nil {
		return domain.EncryptionResult{}, err
	}

	nonce := make([]byte, alg.NonceLength)
	if _, err := rand.Read(nonce); err != nil {
		return domain.EncryptionResult{}, fmt.Errorf("failed to generate nonce: %w", err)
	}

	var payload []byte
	if alg.Authenticated() {
		aead, err := newAEAD(alg, key)
		if err != nil {
			return domain.EncryptionResult{}, err
		}
		// Seal appends the tag to the ciphertext, which is exactly the
		// ciphertext-then-tag wire ordering.
		payload = aead.Seal(nil, nonce, plaintext, nil)
	} else {
		payload, err = encryptCBC(key, nonce, plaintext)
		if err != nil {
			return domain.EncryptionResult{}, err
		}
	}

	return domain.NewEncryptionResult(nonce, payload), nil
}

// Decrypt recovers the plaintext from a framed result.
//
// The result must carry both hex fields and a nonce of the algorithm's
// nonce length. For authenticated modes the trailing 16-byte tag is
// verified before any plaintext is produced; a tag mismatch, a wrong key,
// and corrupted ciphertext are all reported as the same
// ErrDecryptionFailed with no partial output.
func (e *CipherEngine) Decrypt(
	identifier string,
	key []byte,
	result domain.EncryptionResult,
) ([]byte, error) {
	if err := result.Validate(); err != nil {
		return nil, err
	}

	alg, err := domain.ResolveAlgorithm(identifier)
	if err != nil {
		return nil, err
	}

	if err := validateKeyLength(alg, key); err != nil {
		return nil, err
	}

	nonce, payload, err := result.Decode()
	if err != nil {
		return nil, err
	}

	if len(nonce) != alg.NonceLength {
		return nil, fmt.Errorf(
			"%w: nonce must be %d bytes, got %d",
			domain.ErrInvalidPayload, alg.NonceLength, len(nonce),
		)
	}

	if alg.Authenticated() {
		// Reject payloads too short to carry a tag before touching the cipher.
		if _, _, err := domain.SplitAuthTag(payload, alg.TagLength); err != nil {
			return nil, err
		}

		aead, err := newAEAD(alg, key)
		if err != nil {
			return nil, err
		}

		plaintext, err := aead.Open(nil, nonce, payload, nil)
		if err != nil {
			return nil, domain.ErrDecryptionFailed
		}
		return plaintext, nil
	}

	return decryptCBC(key, nonce, payload)
}

// validateKeyLength checks the exact key length the algorithm requires.
func validateKeyLength(alg domain.Algorithm, key []byte) error {
	if len(key) != alg.KeyLength {
		return fmt.Errorf(
			"%w: %s requires a %d-byte key, got %d bytes",
			domain.ErrInvalidKeyLength, alg.ID, alg.KeyLength, len(key),
		)
	}
	return nil
}
