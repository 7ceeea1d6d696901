// Package service provides the symmetric cipher engine. It resolves
// algorithm identifiers to their parameter sets, delegates the block cipher
// work to audited providers, and owns the hex framing of nonce, ciphertext,
// and authentication tag.
package service

import (
	"github.com/allisson/cryptokit/internal/cipher/domain"
)

// Engine defines the interface for symmetric encryption and decryption.
type Engine interface {
	// Encrypt encrypts plaintext under the named algorithm with a fresh
	// random nonce and returns the framed result.
	Encrypt(identifier string, key, plaintext []byte) (domain.EncryptionResult, error)

	// Decrypt recovers the plaintext from a framed result. For
	// authenticated modes the tag is verified before any plaintext is
	// returned.
	Decrypt(identifier string, key []byte, result domain.EncryptionResult) ([]byte, error)
}
