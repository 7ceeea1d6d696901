package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	cipherUseCase "github.com/allisson/cryptokit/internal/cipher/usecase"
)

// RunListAlgorithms prints the supported cipher suites.
func RunListAlgorithms(
	ctx context.Context,
	useCase cipherUseCase.CipherUseCase,
	writer io.Writer,
	format string,
) error {
	if err := validateFormat(format); err != nil {
		return err
	}

	algs := useCase.Algorithms(ctx)

	if format == formatJSON {
		encoder := json.NewEncoder(writer)
		encoder.SetIndent("", "  ")
		return encoder.Encode(algs)
	}

	for _, alg := range algs {
		authenticated := "unauthenticated"
		if alg.Authenticated() {
			authenticated = "authenticated"
		}
		_, err := fmt.Fprintf(
			writer,
			"%s\tkey=%d bytes\tnonce=%d bytes\t%s\n",
			alg.ID, alg.KeyLength, alg.NonceLength, authenticated,
		)
		if err != nil {
			return err
		}
	}

	return nil
}
