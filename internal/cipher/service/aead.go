package service

import (
	"crypto/aes"
	"crypto/cipher"
	"fmt"

	"github.com/ProtonMail/go-crypto/ocb"
	"github.com/pion/dtls/v2/pkg/crypto/ccm"
	"golang.org/x/crypto/chacha20poly1305"

	"github.com/allisson/cryptokit/internal/cipher/domain"
)

// newAEAD builds a cipher.AEAD for an authenticated algorithm.
//
// GCM and ChaCha20-Poly1305 come from the standard library and x/crypto.
// CCM and OCB have no standard library implementation; they are provided by
// pion's RFC 3610 CCM and ProtonMail's RFC 7253 OCB, both configured for the
// table's 12-byte nonce and 16-byte tag. The caller validates the key length
// before this point.
func newAEAD(alg domain.Algorithm, key []byte) (cipher.AEAD, error) {
	switch alg.Mode {
	case domain.ModeGCM:
		block, err := aes.NewCipher(key)
		if err != nil {
			return nil, fmt.Errorf("failed to create AES cipher: %w", err)
		}
		aead, err := cipher.NewGCM(block)
		if err != nil {
			return nil, fmt.Errorf("failed to create GCM: %w", err)
		}
		return aead, nil

	case domain.ModeCCM:
		block, err := aes.NewCipher(key)
		if err != nil {
			return nil, fmt.Errorf("failed to create AES cipher: %w", err)
		}
		// pion takes the nonce size directly and derives the RFC 3610
		// length field (L = 15 - nonce size) itself.
		aead, err := ccm.NewCCM(block, alg.TagLength, alg.NonceLength)
		if err != nil {
			return nil, fmt.Errorf("failed to create CCM: %w", err)
		}
		return aead, nil

	case domain.ModeOCB:
		block, err := aes.NewCipher(key)
		if err != nil {
			return nil, fmt.Errorf("failed to create AES cipher: %w", err)
		}
		aead, err := ocb.NewOCBWithNonceAndTagSize(block, alg.NonceLength, alg.TagLength)
		if err != nil {
			return nil, fmt.Errorf("failed to create OCB: %w", err)
		}
		return aead, nil

	case domain.ModeChaCha20Poly1305:
		aead, err := chacha20poly1305.New(key)
		if err != nil {
			return nil, fmt.Errorf("failed to create ChaCha20-Poly1305 cipher: %w", err)
		}
		return aead, nil

	default:
		return nil, fmt.Errorf("%w: mode %q has no AEAD construction", domain.ErrInvalidAlgorithm, alg.Mode)
	}
}
