package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	keysDomain "github.com/allisson/cryptokit/internal/keys/domain"
	keysUseCase "github.com/allisson/cryptokit/internal/keys/usecase"
)

// RunGenerateKeyPair generates an RSA key pair and prints it in the requested
// format.
func RunGenerateKeyPair(
	ctx context.Context,
	useCase keysUseCase.KeyUseCase,
	writer io.Writer,
	sizeBits int,
	passphrase string,
	encrypted bool,
	format string,
) error {
	if err := validateFormat(format); err != nil {
		return err
	}

	size, err := keysDomain.ParseRSAKeySize(sizeBits)
	if err != nil {
		return err
	}

	keyPair, err := useCase.GenerateKeyPair(ctx, size, passphrase, encrypted)
	if err != nil {
		return err
	}

	if format == formatJSON {
		payload := map[string]interface{}{
			"id":          keyPair.ID.String(),
			"public_key":  keyPair.PublicKey,
			"private_key": keyPair.PrivateKey,
			"key_size":    int(keyPair.KeySize),
			"encrypted":   keyPair.Encrypted,
			"created_at":  keyPair.CreatedAt,
		}
		encoder := json.NewEncoder(writer)
		encoder.SetIndent("", "  ")
		return encoder.Encode(payload)
	}

	if _, err := fmt.Fprintf(writer, "id: %s\nkey size: %d bits\n\n", keyPair.ID, keyPair.KeySize); err != nil {
		return err
	}
	if _, err := fmt.Fprint(writer, keyPair.PublicKey); err != nil {
		return err
	}
	_, err = fmt.Fprint(writer, keyPair.PrivateKey)
	return err
}
