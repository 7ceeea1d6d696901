// Package domain defines the symmetric cipher domain models: the closed
// algorithm table, the encryption result wire format, and domain errors.
package domain

import (
	"fmt"
)

// Mode represents a block cipher mode of operation.
//
// The mode determines the nonce length and whether the cipher produces an
// authentication tag. Membership in the authenticated set is a property of
// the Algorithm table entry, never re-derived from the identifier string.
type Mode string

const (
	// ModeCBC is AES in Cipher Block Chaining mode with PKCS#7 padding.
	// CBC provides confidentiality only; it produces no authentication tag.
	ModeCBC Mode = "cbc"

	// ModeGCM is AES in Galois/Counter Mode (AEAD).
	ModeGCM Mode = "gcm"

	// ModeCCM is AES in Counter with CBC-MAC mode (AEAD, RFC 3610).
	ModeCCM Mode = "ccm"

	// ModeOCB is AES in Offset Codebook mode (AEAD, RFC 7253).
	ModeOCB Mode = "ocb"

	// ModeChaCha20Poly1305 is the ChaCha20 stream cipher with the Poly1305
	// authenticator (AEAD, RFC 8439).
	ModeChaCha20Poly1305 Mode = "chacha20-poly1305"
)

// Nonce and tag parameters shared by the algorithm table.
//
// Authenticated modes all use a 96-bit nonce and a 128-bit tag; CBC uses a
// full 128-bit IV. These values are part of the wire contract and must not
// change.
const (
	// CBCNonceLength is the IV length in bytes for CBC mode.
	CBCNonceLength = 16

	// AEADNonceLength is the nonce length in bytes for authenticated modes.
	AEADNonceLength = 12

	// AuthTagLength is the authentication tag length in bytes for
	// authenticated modes.
	AuthTagLength = 16
)

// Supported algorithm identifiers. The identifier vocabulary follows the
// OpenSSL naming convention: "<cipher>-<keySizeBits>-<mode>".
const (
	AES128CBC = "aes-128-cbc"
	AES192CBC = "aes-192-cbc"
	AES256CBC = "aes-256-cbc"
	AES128GCM = "aes-128-gcm"
	AES192GCM = "aes-192-gcm"
	AES256GCM = "aes-256-gcm"
	AES128CCM = "aes-128-ccm"
	AES192CCM = "aes-192-ccm"
	AES256CCM = "aes-256-ccm"
	AES128OCB = "aes-128-ocb"
	AES192OCB = "aes-192-ocb"
	AES256OCB = "aes-256-ocb"

	// ChaCha20Poly1305 carries no key-size segment; the key is always 256 bits.
	ChaCha20Poly1305 = "chacha20-poly1305"
)

// Algorithm describes one supported cipher suite.
//
// Every field is fixed at definition time in the algorithms table below;
// instances are never constructed outside this package. This replaces
// per-call string parsing with a closed, validated vocabulary: an identifier
// either resolves to a complete parameter set or fails with
// ErrInvalidAlgorithm.
//
// Fields:
//   - ID: the algorithm identifier (e.g. "aes-256-gcm")
//   - Mode: the block cipher mode of operation
//   - KeyLength: required key length in bytes
//   - NonceLength: nonce/IV length in bytes (16 for CBC, 12 otherwise)
//   - TagLength: authentication tag length in bytes (0 for CBC)
type Algorithm struct {
	ID          string
	Mode        Mode
	KeyLength   int
	NonceLength int
	TagLength   int
}

// Authenticated reports whether the algorithm produces an authentication tag.
func (a Algorithm) Authenticated() bool {
	return a.TagLength > 0
}

// String returns the algorithm identifier.
func (a Algorithm) String() string {
	return a.ID
}

// algorithms is the closed table of supported cipher suites. Unknown
// identifiers fail fast; there is no permissive fallback for unrecognized
// modes.
var algorithms = map[string]Algorithm{
	AES128CBC: {ID: AES128CBC, Mode: ModeCBC, KeyLength: 16, NonceLength: CBCNonceLength},
	AES192CBC: {ID: AES192CBC, Mode: ModeCBC, KeyLength: 24, NonceLength: CBCNonceLength},
	AES256CBC: {ID: AES256CBC, Mode: ModeCBC, KeyLength: 32, NonceLength: CBCNonceLength},

	AES128GCM: {ID: AES128GCM, Mode: ModeGCM, KeyLength: 16, NonceLength: AEADNonceLength, TagLength: AuthTagLength},
	AES192GCM: {ID: AES192GCM, Mode: ModeGCM, KeyLength: 24, NonceLength: AEADNonceLength, TagLength: AuthTagLength},
	AES256GCM: {ID: AES256GCM, Mode: ModeGCM, KeyLength: 32, NonceLength: AEADNonceLength, TagLength: AuthTagLength},

	AES128CCM: {ID: AES128CCM, Mode: ModeCCM, KeyLength: 16, NonceLength: AEADNonceLength, TagLength: AuthTagLength},
	AES192CCM: {ID: AES192CCM, Mode: ModeCCM, KeyLength: 24, NonceLength: AEADNonceLength, TagLength: AuthTagLength},
	AES256CCM: {ID: AES256CCM, Mode: ModeCCM, KeyLength: 32, NonceLength: AEADNonceLength, TagLength: AuthTagLength},

	AES128OCB: {ID: AES128OCB, Mode: ModeOCB, KeyLength: 16, NonceLength: AEADNonceLength, TagLength: AuthTagLength},
	AES192OCB: {ID: AES192OCB, Mode: ModeOCB, KeyLength: 24, NonceLength: AEADNonceLength, TagLength: AuthTagLength},
	AES256OCB: {ID: AES256OCB, Mode: ModeOCB, KeyLength: 32, NonceLength: AEADNonceLength, TagLength: AuthTagLength},

	ChaCha20Poly1305: {
		ID:          ChaCha20Poly1305,
		Mode:        ModeChaCha20Poly1305,
		KeyLength:   32,
		NonceLength: AEADNonceLength,
		TagLength:   AuthTagLength,
	},
}

// algorithmOrder fixes the listing order for Algorithms.
var algorithmOrder = []string{
	AES128CBC, AES128GCM, AES128CCM, AES128OCB,
	AES192CBC, AES192GCM, AES192CCM, AES192OCB,
	AES256CBC, AES256GCM, AES256CCM, AES256OCB,
	ChaCha20Poly1305,
}

// ResolveAlgorithm resolves an algorithm identifier to its parameter set.
//
// The identifier must exactly match one of the supported suites
// (aes-{128,192,256}-{cbc,gcm,ccm,ocb} or chacha20-poly1305).
// Returns ErrInvalidAlgorithm for anything else, including identifiers with
// unknown modes: unsupported modes fail fast rather than being treated as
// unauthenticated.
func ResolveAlgorithm(identifier string) (Algorithm, error) {
	alg, ok := algorithms[identifier]
	if !ok {
		return Algorithm{}, fmt.Errorf("%w: %q", ErrInvalidAlgorithm, identifier)
	}
	return alg, nil
}

// Algorithms returns all supported algorithms in a stable order.
func Algorithms() []Algorithm {
	out := make([]Algorithm, 0, len(algorithmOrder))
	for _, id := range algorithmOrder {
		out = append(out, algorithms[id])
	}
	return out
}
