package commands

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	keysUseCase "github.com/allisson/cryptokit/internal/keys/usecase"
)

// Key type and encoding values accepted by RunLoadKey.
const (
	keyTypePrivate = "private"
	keyTypePublic  = "public"

	encodingPEM    = "pem"
	encodingBase64 = "base64"
)

// RunLoadKey reads a key from a file, canonicalizes it, and prints it as PEM
// or base64 of the PEM text.
func RunLoadKey(
	ctx context.Context,
	useCase keysUseCase.KeyUseCase,
	writer io.Writer,
	keyType string,
	inputPath string,
	encoding string,
	passphrase string,
	output string,
) error {
	if keyType != keyTypePrivate && keyType != keyTypePublic {
		return fmt.Errorf("invalid key type: %s (valid options: private, public)", keyType)
	}
	if encoding != encodingPEM && encoding != encodingBase64 {
		return fmt.Errorf("invalid encoding: %s (valid options: pem, base64)", encoding)
	}
	if output != encodingPEM && output != encodingBase64 {
		return fmt.Errorf("invalid output: %s (valid options: pem, base64)", output)
	}

	data, err := os.ReadFile(inputPath)
	if err != nil {
		return fmt.Errorf("failed to read key file: %w", err)
	}

	var result string
	switch {
	case keyType == keyTypePrivate && output == encodingBase64:
		result, err = loadPrivate(ctx, useCase, data, encoding, passphrase, true)
	case keyType == keyTypePrivate:
		result, err = loadPrivate(ctx, useCase, data, encoding, passphrase, false)
	case output == encodingBase64:
		result, err = loadPublic(ctx, useCase, data, encoding, true)
	default:
		result, err = loadPublic(ctx, useCase, data, encoding, false)
	}
	if err != nil {
		return err
	}

	if output == encodingBase64 {
		_, err = fmt.Fprintln(writer, result)
		return err
	}
	_, err = fmt.Fprint(writer, result)
	return err
}

func loadPrivate(
	ctx context.Context,
	useCase keysUseCase.KeyUseCase,
	data []byte,
	encoding string,
	passphrase string,
	asBase64 bool,
) (string, error) {
	pemText, err := canonicalizePrivate(ctx, useCase, data, encoding, passphrase)
	if err != nil {
		return "", err
	}
	if asBase64 {
		return useCase.LoadPrivateKeyAsBase64(ctx, []byte(pemText), passphrase)
	}
	return pemText, nil
}

func loadPublic(
	ctx context.Context,
	useCase keysUseCase.KeyUseCase,
	data []byte,
	encoding string,
	asBase64 bool,
) (string, error) {
	pemText, err := canonicalizePublic(ctx, useCase, data, encoding)
	if err != nil {
		return "", err
	}
	if asBase64 {
		return useCase.LoadPublicKeyAsBase64(ctx, []byte(pemText))
	}
	return pemText, nil
}

func canonicalizePrivate(
	ctx context.Context,
	useCase keysUseCase.KeyUseCase,
	data []byte,
	encoding string,
	passphrase string,
) (string, error) {
	if encoding == encodingBase64 {
		return useCase.LoadPrivateKeyFromBase64(ctx, strings.TrimSpace(string(data)), passphrase)
	}
	return useCase.LoadPrivateKey(ctx, data, passphrase)
}

func canonicalizePublic(
	ctx context.Context,
	useCase keysUseCase.KeyUseCase,
	data []byte,
	encoding string,
) (string, error) {
	if encoding == encodingBase64 {
		return useCase.LoadPublicKeyFromBase64(ctx, strings.TrimSpace(string(data)))
	}
	return useCase.LoadPublicKey(ctx, data)
}
