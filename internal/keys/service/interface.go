// Package service implements RSA key pair generation and import/export.
package service

import (
	"context"

	"github.com/allisson/cryptokit/internal/keys/domain"
)

// Manager handles RSA key pair generation and key canonicalization.
type Manager interface {
	// GenerateKeyPair creates an RSA key pair of the given size. When
	// encrypted is true the private key is wrapped in a passphrase-encrypted
	// PKCS#8 container.
	GenerateKeyPair(size domain.RSAKeySize, passphrase string, encrypted bool) (domain.KeyPair, error)

	// GenerateKeyPairAsync starts generation in the background and returns a
	// task the caller can wait on.
	GenerateKeyPairAsync(ctx context.Context, size domain.RSAKeySize, passphrase string, encrypted bool) *GenerateTask

	// LoadPrivateKey parses a PEM or DER encoded RSA private key and returns
	// its canonical PKCS#8 PEM encoding. The passphrase is used when the
	// input is an encrypted PKCS#8 container.
	LoadPrivateKey(data []byte, passphrase string) (string, error)

	// LoadPublicKey parses a PEM or DER encoded RSA public key and returns
	// its canonical SPKI PEM encoding.
	LoadPublicKey(data []byte) (string, error)

	// LoadPrivateKeyFromBase64 base64-decodes the input before loading it as
	// a private key.
	LoadPrivateKeyFromBase64(encoded string, passphrase string) (string, error)

	// LoadPublicKeyFromBase64 base64-decodes the input before loading it as
	// a public key.
	LoadPublicKeyFromBase64(encoded string) (string, error)

	// LoadPrivateKeyAsBase64 canonicalizes a private key and returns the
	// base64 encoding of the resulting PEM text.
	LoadPrivateKeyAsBase64(data []byte, passphrase string) (string, error)

	// LoadPublicKeyAsBase64 canonicalizes a public key and returns the
	// base64 encoding of the resulting PEM text.
	LoadPublicKeyAsBase64(data []byte) (string, error)
}
