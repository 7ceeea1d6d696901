package commands

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"

	cipherDomain "github.com/allisson/cryptokit/internal/cipher/domain"
	cipherUseCase "github.com/allisson/cryptokit/internal/cipher/usecase"
)

// RunEncrypt encrypts a plaintext under a base64 key and prints the
// nonce/encrypted pair as JSON.
func RunEncrypt(
	ctx context.Context,
	useCase cipherUseCase.CipherUseCase,
	writer io.Writer,
	algorithm string,
	encodedKey string,
	plaintext string,
) error {
	key, err := base64.StdEncoding.DecodeString(encodedKey)
	if err != nil {
		return fmt.Errorf("invalid base64 key: %w", err)
	}
	defer cipherDomain.Zero(key)

	result, err := useCase.Encrypt(ctx, algorithm, key, []byte(plaintext))
	if err != nil {
		return err
	}

	encoder := json.NewEncoder(writer)
	encoder.SetIndent("", "  ")
	return encoder.Encode(result)
}
