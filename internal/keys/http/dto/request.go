// Package dto provides data transfer objects for the key management HTTP layer.
package dto

import (
	validation "github.com/jellydator/validation"

	appValidation "github.com/allisson/cryptokit/internal/validation"
)

// Key input encodings accepted by the load and export endpoints.
const (
	EncodingPEM    = "pem"
	EncodingBase64 = "base64"
)

// CreateKeyPairRequest represents the API request for RSA key pair generation.
// A zero key size selects the configured default.
type CreateKeyPairRequest struct {
	KeySize           int    `json:"key_size"`
	Passphrase        string `json:"passphrase"`
	EncryptPrivateKey bool   `json:"encrypt_private_key"`
}

// Validate validates the CreateKeyPairRequest.
func (r *CreateKeyPairRequest) Validate() error {
	err := validation.ValidateStruct(r,
		validation.Field(&r.KeySize,
			validation.In(0, 2048, 3072, 4096).Error("key_size must be one of 2048, 3072, 4096"),
		),
		validation.Field(&r.Passphrase,
			validation.Required.When(r.EncryptPrivateKey).Error("passphrase is required to encrypt the private key"),
		),
	)
	return appValidation.WrapValidationError(err)
}

// LoadKeyRequest represents the API request for key canonicalization.
// Data carries the key material: PEM text, or the base64 wrapping of it when
// encoding is "base64".
type LoadKeyRequest struct {
	Data       string `json:"data"`
	Encoding   string `json:"encoding"`
	Passphrase string `json:"passphrase"`
}

// Validate validates the LoadKeyRequest. An empty encoding defaults to PEM.
func (r *LoadKeyRequest) Validate() error {
	err := validation.ValidateStruct(r,
		validation.Field(&r.Data,
			validation.Required.Error("data is required"),
			appValidation.NotBlank,
		),
		validation.Field(&r.Encoding,
			validation.In(EncodingPEM, EncodingBase64).Error("encoding must be pem or base64"),
		),
	)
	if err != nil {
		return appValidation.WrapValidationError(err)
	}

	if r.Encoding == EncodingBase64 {
		err = validation.Validate(r.Data, appValidation.Base64)
	}
	return appValidation.WrapValidationError(err)
}

// EncodeKeyRequest represents the API request for base64 key export.
type EncodeKeyRequest struct {
	Data       string `json:"data"`
	Passphrase string `json:"passphrase"`
}

// Validate validates the EncodeKeyRequest.
func (r *EncodeKeyRequest) Validate() error {
	err := validation.ValidateStruct(r,
		validation.Field(&r.Data,
			validation.Required.Error("data is required"),
			appValidation.NotBlank,
		),
	)
	return appValidation.WrapValidationError(err)
}
