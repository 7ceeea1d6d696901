package usecase

import (
	"context"
	"time"

	"github.com/allisson/cryptokit/internal/cipher/domain"
	"github.com/allisson/cryptokit/internal/metrics"
)

// cipherUseCaseWithMetrics decorates CipherUseCase with metrics instrumentation.
type cipherUseCaseWithMetrics struct {
	next    CipherUseCase
	metrics metrics.BusinessMetrics
}

// NewCipherUseCaseWithMetrics wraps a CipherUseCase with metrics recording.
func NewCipherUseCaseWithMetrics(useCase CipherUseCase, m metrics.BusinessMetrics) CipherUseCase {
	return &cipherUseCaseWithMetrics{
		next:    useCase,
		metrics: m,
	}
}

// Algorithms delegates without instrumentation; listing is not an operation
// worth counting.
func (u *cipherUseCaseWithMetrics) Algorithms(ctx context.Context) []domain.Algorithm {
	return u.next.Algorithms(ctx)
}

// Encrypt records metrics for encryption operations.
func (u *cipherUseCaseWithMetrics) Encrypt(
	ctx context.Context,
	identifier string,
	key, plaintext []byte,
) (domain.EncryptionResult, error) {
	start := time.Now()
	result, err := u.next.Encrypt(ctx, identifier, key, plaintext)

	status := "success"
	if err != nil {
		status = "error"
	}

	u.metrics.RecordOperation(ctx, "cipher", "encrypt", status)
	u.metrics.RecordDuration(ctx, "cipher", "encrypt", time.Since(start), status)

	return result, err
}

// Decrypt records metrics for decryption operations.
func (u *cipherUseCaseWithMetrics) Decrypt(
	ctx context.Context,
	identifier string,
	key []byte,
	result domain.EncryptionResult,
) ([]byte, error) {
	start := time.Now()
	plaintext, err := u.next.Decrypt(ctx, identifier, key, result)

	status := "success"
	if err != nil {
		status = "error"
	}

	u.metrics.RecordOperation(ctx, "cipher", "decrypt", status)
	u.metrics.RecordDuration(ctx, "cipher", "decrypt", time.Since(start), status)

	return plaintext, err
}
