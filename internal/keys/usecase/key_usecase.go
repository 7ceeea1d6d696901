package usecase

import (
	"context"

	"github.com/allisson/cryptokit/internal/keys/domain"
	"github.com/allisson/cryptokit/internal/keys/service"
)

type keyUseCase struct {
	manager service.Manager
}

// NewKeyUseCase creates a KeyUseCase backed by the given key manager.
func NewKeyUseCase(manager service.Manager) KeyUseCase {
	return &keyUseCase{manager: manager}
}

func (u *keyUseCase) GenerateKeyPair(
	ctx context.Context,
	size domain.RSAKeySize,
	passphrase string,
	encrypted bool,
) (domain.KeyPair, error) {
	task := u.manager.GenerateKeyPairAsync(ctx, size, passphrase, encrypted)
	return task.Wait(ctx)
}

func (u *keyUseCase) LoadPrivateKey(ctx context.Context, data []byte, passphrase string) (string, error) {
	return u.manager.LoadPrivateKey(data, passphrase)
}

func (u *keyUseCase) LoadPublicKey(ctx context.Context, data []byte) (string, error) {
	return u.manager.LoadPublicKey(data)
}

func (u *keyUseCase) LoadPrivateKeyFromBase64(ctx context.Context, encoded string, passphrase string) (string, error) {
	return u.manager.LoadPrivateKeyFromBase64(encoded, passphrase)
}

func (u *keyUseCase) LoadPublicKeyFromBase64(ctx context.Context, encoded string) (string, error) {
	return u.manager.LoadPublicKeyFromBase64(encoded)
}

func (u *keyUseCase) LoadPrivateKeyAsBase64(ctx context.Context, data []byte, passphrase string) (string, error) {
	return u.manager.LoadPrivateKeyAsBase64(data, passphrase)
}

func (u *keyUseCase) LoadPublicKeyAsBase64(ctx context.Context, data []byte) (string, error) {
	return u.manager.LoadPublicKeyAsBase64(data)
}
