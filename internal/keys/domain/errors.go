package domain

import (
	"github.com/allisson/cryptokit/internal/errors"
)

// Key management error definitions.
//
// These domain-specific errors wrap standard errors from internal/errors
// to provide context for key management failures.
var (
	// ErrUnsupportedKeySize indicates an RSA modulus length outside the
	// supported set. There is no fallback to a default size.
	ErrUnsupportedKeySize = errors.Wrap(errors.ErrInvalidInput, "unsupported RSA key size")

	// ErrPassphraseRequired indicates private-key encryption was requested
	// without a passphrase.
	ErrPassphraseRequired = errors.Wrap(errors.ErrInvalidInput, "passphrase required for encrypted private key")

	// ErrKeyGeneration indicates the underlying provider failed to generate
	// or encode an RSA key pair.
	ErrKeyGeneration = errors.Wrap(errors.ErrInternal, "key generation failed")

	// ErrKeyParse indicates the input is not a structurally valid key in any
	// recognized encoding.
	ErrKeyParse = errors.Wrap(errors.ErrInvalidInput, "failed to parse key")

	// ErrBase64Decode indicates the base64 wrapping of a key is malformed.
	ErrBase64Decode = errors.Wrap(errors.ErrInvalidInput, "invalid base64 encoding")
)
