package domain

import (
	"github.com/allisson/cryptokit/internal/errors"
)

// Symmetric cipher error definitions.
//
// These domain-specific errors wrap standard errors from internal/errors
// to provide context for cipher failures. All errors are mapped to
// appropriate HTTP status codes by the error handling layer.
var (
	// ErrInvalidAlgorithm indicates the algorithm identifier is malformed or
	// not in the supported vocabulary.
	ErrInvalidAlgorithm = errors.Wrap(errors.ErrInvalidInput, "invalid algorithm identifier")

	// ErrInvalidKeyLength indicates the key length does not match the length
	// the resolved algorithm requires. Keys are used as-is; there is no key
	// stretching.
	ErrInvalidKeyLength = errors.Wrap(errors.ErrInvalidInput, "invalid key length")

	// ErrInvalidPayload indicates a malformed decrypt payload: a missing
	// nonce or encrypted field, invalid hex, or a buffer too short to carry
	// the expected nonce or authentication tag.
	ErrInvalidPayload = errors.Wrap(errors.ErrInvalidInput, "invalid encrypted payload")

	// ErrDecryptionFailed indicates a decryption operation failed.
	//
	// This error covers authentication tag mismatches, wrong keys, and
	// corrupted ciphertext alike. The specific cause is deliberately not
	// disclosed, and no partial plaintext is ever returned.
	ErrDecryptionFailed = errors.Wrap(errors.ErrInvalidInput, "decryption failed")
)
