// Package usecase provides the cipher business operations consumed by the
// HTTP handlers and CLI commands.
package usecase

import (
	"context"

	"github.com/allisson/cryptokit/internal/cipher/domain"
)

// CipherUseCase defines the symmetric cipher operations.
type CipherUseCase interface {
	// Algorithms lists all supported algorithms in a stable order.
	Algorithms(ctx context.Context) []domain.Algorithm

	// Encrypt encrypts plaintext under the named algorithm.
	Encrypt(ctx context.Context, identifier string, key, plaintext []byte) (domain.EncryptionResult, error)

	// Decrypt recovers the plaintext from a framed encryption result.
	Decrypt(ctx context.Context, identifier string, key []byte, result domain.EncryptionResult) ([]byte, error)
}
