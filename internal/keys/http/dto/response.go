// Package dto provides data transfer objects for the key management HTTP layer.
package dto

import (
	"time"

	keysDomain "github.com/allisson/cryptokit/internal/keys/domain"
)

// KeyPairResponse contains a freshly generated RSA key pair.
// SECURITY: The private key is only returned once and must be saved securely.
type KeyPairResponse struct {
	ID         string    `json:"id"`
	PublicKey  string    `json:"public_key"`
	PrivateKey string    `json:"private_key"` //nolint:gosec // returned once on creation
	KeySize    int       `json:"key_size"`
	Encrypted  bool      `json:"encrypted"`
	CreatedAt  time.Time `json:"created_at"`
}

// MapKeyPairToResponse converts a domain key pair to an API response.
func MapKeyPairToResponse(keyPair keysDomain.KeyPair) KeyPairResponse {
	return KeyPairResponse{
		ID:         keyPair.ID.String(),
		PublicKey:  keyPair.PublicKey,
		PrivateKey: keyPair.PrivateKey,
		KeySize:    int(keyPair.KeySize),
		Encrypted:  keyPair.Encrypted,
		CreatedAt:  keyPair.CreatedAt,
	}
}

// LoadKeyResponse carries a canonicalized key in PEM form.
type LoadKeyResponse struct {
	PEM string `json:"pem"`
}

// EncodeKeyResponse carries a canonicalized key as base64 of the PEM text.
type EncodeKeyResponse struct {
	Base64 string `json:"base64"`
}
