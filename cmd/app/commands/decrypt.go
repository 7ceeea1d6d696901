package commands

import (
	"context"
	"encoding/base64"
	"fmt"
	"io"

	cipherDomain "github.com/allisson/cryptokit/internal/cipher/domain"
	cipherUseCase "github.com/allisson/cryptokit/internal/cipher/usecase"
)

// RunDecrypt decrypts a nonce/encrypted pair under a base64 key and prints
// the recovered plaintext.
func RunDecrypt(
	ctx context.Context,
	useCase cipherUseCase.CipherUseCase,
	writer io.Writer,
	algorithm string,
	encodedKey string,
	nonce string,
	encrypted string,
) error {
	key, err := base64.StdEncoding.DecodeString(encodedKey)
	if err != nil {
		return fmt.Errorf("invalid base64 key: %w", err)
	}
	defer cipherDomain.Zero(key)

	result := cipherDomain.EncryptionResult{
		Nonce:     nonce,
		Encrypted: encrypted,
	}

	plaintext, err := useCase.Decrypt(ctx, algorithm, key, result)
	if err != nil {
		return err
	}
	defer cipherDomain.Zero(plaintext)

	_, err = fmt.Fprintln(writer, string(plaintext))
	return err
}
