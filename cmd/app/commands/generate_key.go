package commands

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"io"

	cipherDomain "github.com/allisson/cryptokit/internal/cipher/domain"
)

// RunGenerateKey generates a random symmetric key of the algorithm's key
// length and prints it base64-encoded.
func RunGenerateKey(writer io.Writer, algorithm string) error {
	alg, err := cipherDomain.ResolveAlgorithm(algorithm)
	if err != nil {
		return err
	}

	key := make([]byte, alg.KeyLength)
	if _, err := rand.Read(key); err != nil {
		return fmt.Errorf("failed to generate key: %w", err)
	}
	defer cipherDomain.Zero(key)

	_, err = fmt.Fprintln(writer, base64.StdEncoding.EncodeToString(key))
	return err
}
