// Package domain defines RSA key management domain models.
package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// RSAKeySize is an RSA modulus length in bits.
//
// The size is an enumerated parameter: generation with a size outside the
// supported set fails with ErrUnsupportedKeySize instead of silently
// substituting a default.
type RSAKeySize int

// Supported RSA modulus lengths.
const (
	RSA2048 RSAKeySize = 2048
	RSA3072 RSAKeySize = 3072
	RSA4096 RSAKeySize = 4096
)

// ParseRSAKeySize converts a bit count to an RSAKeySize.
// Returns ErrUnsupportedKeySize for anything outside the supported set.
func ParseRSAKeySize(bits int) (RSAKeySize, error) {
	switch RSAKeySize(bits) {
	case RSA2048, RSA3072, RSA4096:
		return RSAKeySize(bits), nil
	default:
		return 0, fmt.Errorf("%w: %d bits (supported: 2048, 3072, 4096)", ErrUnsupportedKeySize, bits)
	}
}

// Validate checks that the key size is in the supported set.
func (s RSAKeySize) Validate() error {
	_, err := ParseRSAKeySize(int(s))
	return err
}

// KeyPair holds a generated RSA key pair in its canonical PEM encodings.
//
// The public key uses the SPKI container, the private key the PKCS#8
// container — encrypted with a passphrase when Encrypted is set. The pair is
// created once and never mutated; persisting it is the caller's concern.
type KeyPair struct {
	ID         uuid.UUID
	PublicKey  string
	PrivateKey string
	KeySize    RSAKeySize
	Encrypted  bool
	CreatedAt  time.Time
}
