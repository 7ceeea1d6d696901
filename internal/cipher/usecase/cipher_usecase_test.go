package usecase

import (
	"context"
	"crypto/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/allisson/cryptokit/internal/cipher/domain"
	"github.com/allisson/cryptokit/internal/cipher/service"
)

func TestCipherUseCase_Algorithms(t *testing.T) {
	useCase := NewCipherUseCase(service.NewCipherEngine())

	algs := useCase.Algorithms(context.Background())
	assert.Len(t, algs, 13)
}

func TestCipherUseCase_EncryptDecrypt(t *testing.T) {
	useCase := NewCipherUseCase(service.NewCipherEngine())
	ctx := context.Background()

	key := make([]byte, 32)
	_, err := rand.Read(key)
	require.NoError(t, err)

	t.Run("round-trip", func(t *testing.T) {
		result, err := useCase.Encrypt(ctx, "aes-256-gcm", key, []byte("use case data"))
		require.NoError(t, err)

		plaintext, err := useCase.Decrypt(ctx, "aes-256-gcm", key, result)
		require.NoError(t, err)
		assert.Equal(t, []byte("use case data"), plaintext)
	})

	t.Run("propagates engine errors", func(t *testing.T) {
		_, err := useCase.Encrypt(ctx, "aes-256-gcm", key[:16], []byte("data"))
		assert.ErrorIs(t, err, domain.ErrInvalidKeyLength)
	})
}
