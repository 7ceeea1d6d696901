package usecase

import (
	"context"

	"github.com/allisson/cryptokit/internal/cipher/domain"
	"github.com/allisson/cryptokit/internal/cipher/service"
)

// cipherUseCase implements CipherUseCase by delegating to the cipher engine.
// Cipher operations are fast and CPU-bound; they run synchronously on the
// calling goroutine and take context only for decorator and tracing parity.
type cipherUseCase struct {
	engine service.Engine
}

// NewCipherUseCase creates a CipherUseCase backed by the given engine.
func NewCipherUseCase(engine service.Engine) CipherUseCase {
	return &cipherUseCase{engine: engine}
}

// Algorithms lists all supported algorithms.
func (u *cipherUseCase) Algorithms(ctx context.Context) []domain.Algorithm {
	return domain.Algorithms()
}

// Encrypt encrypts plaintext under the named algorithm.
func (u *cipherUseCase) Encrypt(
	ctx context.Context,
	identifier string,
	key, plaintext []byte,
) (domain.EncryptionResult, error) {
	return u.engine.Encrypt(identifier, key, plaintext)
}

// Decrypt recovers the plaintext from a framed encryption result.
func (u *cipherUseCase) Decrypt(
	ctx context.Context,
	identifier string,
	key []byte,
	result domain.EncryptionResult,
) ([]byte, error) {
	return u.engine.Decrypt(identifier, key, result)
}
