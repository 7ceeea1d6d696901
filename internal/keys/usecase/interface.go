// Package usecase implements key management business logic.
package usecase

import (
	"context"

	"github.com/allisson/cryptokit/internal/keys/domain"
)

// KeyUseCase exposes key management operations to transport layers.
type KeyUseCase interface {
	// GenerateKeyPair creates an RSA key pair. Generation runs in the
	// background and the call honors context cancellation.
	GenerateKeyPair(ctx context.Context, size domain.RSAKeySize, passphrase string, encrypted bool) (domain.KeyPair, error)

	// LoadPrivateKey canonicalizes a PEM or DER private key to PKCS#8 PEM.
	LoadPrivateKey(ctx context.Context, data []byte, passphrase string) (string, error)

	// LoadPublicKey canonicalizes a PEM or DER public key to SPKI PEM.
	LoadPublicKey(ctx context.Context, data []byte) (string, error)

	// LoadPrivateKeyFromBase64 base64-decodes then canonicalizes a private key.
	LoadPrivateKeyFromBase64(ctx context.Context, encoded string, passphrase string) (string, error)

	// LoadPublicKeyFromBase64 base64-decodes then canonicalizes a public key.
	LoadPublicKeyFromBase64(ctx context.Context, encoded string) (string, error)

	// LoadPrivateKeyAsBase64 canonicalizes a private key and base64-encodes the PEM.
	LoadPrivateKeyAsBase64(ctx context.Context, data []byte, passphrase string) (string, error)

	// LoadPublicKeyAsBase64 canonicalizes a public key and base64-encodes the PEM.
	LoadPublicKeyAsBase64(ctx context.Context, data []byte) (string, error)
}
