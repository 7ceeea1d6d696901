package domain

import (
	"encoding/hex"
	"fmt"
)

// EncryptionResult is the wire representation of an encrypted payload.
//
// Both fields are lowercase hex strings. Nonce is the hex encoding of the
// random nonce/IV (2 * NonceLength characters). Encrypted is the hex
// encoding of ciphertext followed by the authentication tag for
// authenticated modes, or just the ciphertext for CBC. The
// ciphertext-then-tag ordering is part of the persisted format and must
// never change.
type EncryptionResult struct {
	Nonce     string `json:"nonce"`
	Encrypted string `json:"encrypted"`
}

// NewEncryptionResult frames a nonce and a combined ciphertext buffer as hex.
// For authenticated modes the payload must already carry the tag appended to
// the ciphertext.
func NewEncryptionResult(nonce, payload []byte) EncryptionResult {
	return EncryptionResult{
		Nonce:     hex.EncodeToString(nonce),
		Encrypted: hex.EncodeToString(payload),
	}
}

// Validate checks that both fields are present.
// Returns ErrInvalidPayload if either field is empty.
func (r EncryptionResult) Validate() error {
	if r.Nonce == "" {
		return fmt.Errorf("%w: missing nonce", ErrInvalidPayload)
	}
	if r.Encrypted == "" {
		return fmt.Errorf("%w: missing encrypted data", ErrInvalidPayload)
	}
	return nil
}

// Decode hex-decodes the nonce and the combined payload.
// Returns ErrInvalidPayload if either field is not valid hex.
func (r EncryptionResult) Decode() (nonce, payload []byte, err error) {
	nonce, err = hex.DecodeString(r.Nonce)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: nonce is not valid hex", ErrInvalidPayload)
	}
	payload, err = hex.DecodeString(r.Encrypted)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: encrypted data is not valid hex", ErrInvalidPayload)
	}
	return nonce, payload, nil
}

// SplitAuthTag splits a combined payload into ciphertext and trailing
// authentication tag. Returns ErrInvalidPayload if the payload is shorter
// than the tag.
func SplitAuthTag(payload []byte, tagLength int) (ciphertext, tag []byte, err error) {
	if len(payload) < tagLength {
		return nil, nil, fmt.Errorf(
			"%w: payload of %d bytes cannot carry a %d-byte auth tag",
			ErrInvalidPayload, len(payload), tagLength,
		)
	}
	split := len(payload) - tagLength
	return payload[:split], payload[split:], nil
}
