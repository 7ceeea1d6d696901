package usecase

import (
	"context"
	"time"

	"github.com/allisson/cryptokit/internal/keys/domain"
	"github.com/allisson/cryptokit/internal/metrics"
)

// keyUseCaseWithMetrics decorates KeyUseCase with metrics instrumentation.
type keyUseCaseWithMetrics struct {
	next    KeyUseCase
	metrics metrics.BusinessMetrics
}

// NewKeyUseCaseWithMetrics wraps a KeyUseCase with metrics recording.
func NewKeyUseCaseWithMetrics(useCase KeyUseCase, m metrics.BusinessMetrics) KeyUseCase {
	return &keyUseCaseWithMetrics{
		next:    useCase,
		metrics: m,
	}
}

func (u *keyUseCaseWithMetrics) record(ctx context.Context, operation string, start time.Time, err error) {
	status := "success"
	if err != nil {
		status = "error"
	}

	u.metrics.RecordOperation(ctx, "keys", operation, status)
	u.metrics.RecordDuration(ctx, "keys", operation, time.Since(start), status)
}

// GenerateKeyPair records metrics for key pair generation.
func (u *keyUseCaseWithMetrics) GenerateKeyPair(
	ctx context.Context,
	size domain.RSAKeySize,
	passphrase string,
	encrypted bool,
) (domain.KeyPair, error) {
	start := time.Now()
	keyPair, err := u.next.GenerateKeyPair(ctx, size, passphrase, encrypted)
	u.record(ctx, "generate_key_pair", start, err)
	return keyPair, err
}

// LoadPrivateKey records metrics for private key loading.
func (u *keyUseCaseWithMetrics) LoadPrivateKey(ctx context.Context, data []byte, passphrase string) (string, error) {
	start := time.Now()
	pemText, err := u.next.LoadPrivateKey(ctx, data, passphrase)
	u.record(ctx, "load_private_key", start, err)
	return pemText, err
}

// LoadPublicKey records metrics for public key loading.
func (u *keyUseCaseWithMetrics) LoadPublicKey(ctx context.Context, data []byte) (string, error) {
	start := time.Now()
	pemText, err := u.next.LoadPublicKey(ctx, data)
	u.record(ctx, "load_public_key", start, err)
	return pemText, err
}

// LoadPrivateKeyFromBase64 records metrics for base64 private key loading.
func (u *keyUseCaseWithMetrics) LoadPrivateKeyFromBase64(
	ctx context.Context,
	encoded string,
	passphrase string,
) (string, error) {
	start := time.Now()
	pemText, err := u.next.LoadPrivateKeyFromBase64(ctx, encoded, passphrase)
	u.record(ctx, "load_private_key", start, err)
	return pemText, err
}

// LoadPublicKeyFromBase64 records metrics for base64 public key loading.
func (u *keyUseCaseWithMetrics) LoadPublicKeyFromBase64(ctx context.Context, encoded string) (string, error) {
	start := time.Now()
	pemText, err := u.next.LoadPublicKeyFromBase64(ctx, encoded)
	u.record(ctx, "load_public_key", start, err)
	return pemText, err
}

// LoadPrivateKeyAsBase64 records metrics for private key export.
func (u *keyUseCaseWithMetrics) LoadPrivateKeyAsBase64(
	ctx context.Context,
	data []byte,
	passphrase string,
) (string, error) {
	start := time.Now()
	encoded, err := u.next.LoadPrivateKeyAsBase64(ctx, data, passphrase)
	u.record(ctx, "export_private_key", start, err)
	return encoded, err
}

// LoadPublicKeyAsBase64 records metrics for public key export.
func (u *keyUseCaseWithMetrics) LoadPublicKeyAsBase64(ctx context.Context, data []byte) (string, error) {
	start := time.Now()
	encoded, err := u.next.LoadPublicKeyAsBase64(ctx, data)
	u.record(ctx, "export_public_key", start, err)
	return encoded, err
}
