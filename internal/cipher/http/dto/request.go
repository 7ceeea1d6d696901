// Package dto provides data transfer objects for the cipher HTTP layer.
package dto

import (
	validation "github.com/jellydator/validation"

	appValidation "github.com/allisson/cryptokit/internal/validation"
)

// EncryptRequest represents the API request for symmetric encryption.
// Key and plaintext are base64-encoded binary data.
type EncryptRequest struct {
	Algorithm string `json:"algorithm"`
	Key       string `json:"key"`
	Plaintext string `json:"plaintext"`
}

// Validate validates the EncryptRequest. Plaintext may be empty: encrypting
// zero bytes is a valid operation.
func (r *EncryptRequest) Validate() error {
	err := validation.ValidateStruct(r,
		validation.Field(&r.Algorithm,
			validation.Required.Error("algorithm is required"),
			appValidation.NotBlank,
		),
		validation.Field(&r.Key,
			validation.Required.Error("key is required"),
			appValidation.Base64,
		),
		validation.Field(&r.Plaintext,
			appValidation.Base64,
		),
	)
	return appValidation.WrapValidationError(err)
}

// DecryptRequest represents the API request for symmetric decryption.
// Key is base64-encoded; nonce and encrypted carry the hex wire format
// produced by encryption.
type DecryptRequest struct {
	Algorithm string `json:"algorithm"`
	Key       string `json:"key"`
	Nonce     string `json:"nonce"`
	Encrypted string `json:"encrypted"`
}

// Validate validates the DecryptRequest.
func (r *DecryptRequest) Validate() error {
	err := validation.ValidateStruct(r,
		validation.Field(&r.Algorithm,
			validation.Required.Error("algorithm is required"),
			appValidation.NotBlank,
		),
		validation.Field(&r.Key,
			validation.Required.Error("key is required"),
			appValidation.Base64,
		),
		validation.Field(&r.Nonce,
			validation.Required.Error("nonce is required"),
			appValidation.Hex,
		),
		validation.Field(&r.Encrypted,
			validation.Required.Error("encrypted is required"),
			appValidation.Hex,
		),
	)
	return appValidation.WrapValidationError(err)
}
