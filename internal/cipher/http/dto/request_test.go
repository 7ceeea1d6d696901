package dto

import (
	"testing"

	"github.com/stretchr/testify/assert"

	apperrors "github.com/allisson/cryptokit/internal/errors"
)

func TestEncryptRequest_Validate(t *testing.T) {
	tests := []struct {
		name    string
		request EncryptRequest
		wantErr bool
	}{
		{
			name: "valid request",
			request: EncryptRequest{
				Algorithm: "aes-256-gcm",
				Key:       "a2V5",
				Plaintext: "aGVsbG8=",
			},
		},
		{
			name: "empty plaintext is allowed",
			request: EncryptRequest{
				Algorithm: "aes-256-gcm",
				Key:       "a2V5",
			},
		},
		{
			name:    "missing algorithm",
			request: EncryptRequest{Key: "a2V5"},
			wantErr: true,
		},
		{
			name:    "blank algorithm",
			request: EncryptRequest{Algorithm: "   ", Key: "a2V5"},
			wantErr: true,
		},
		{
			name:    "missing key",
			request: EncryptRequest{Algorithm: "aes-256-gcm"},
			wantErr: true,
		},
		{
			name: "invalid base64 key",
			request: EncryptRequest{
				Algorithm: "aes-256-gcm",
				Key:       "not base64!",
			},
			wantErr: true,
		},
		{
			name: "invalid base64 plaintext",
			request: EncryptRequest{
				Algorithm: "aes-256-gcm",
				Key:       "a2V5",
				Plaintext: "???",
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.request.Validate()
			if tt.wantErr {
				assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestDecryptRequest_Validate(t *testing.T) {
	valid := DecryptRequest{
		Algorithm: "aes-256-gcm",
		Key:       "a2V5",
		Nonce:     "deadbeef",
		Encrypted: "cafebabe",
	}

	t.Run("valid request", func(t *testing.T) {
		assert.NoError(t, valid.Validate())
	})

	t.Run("missing nonce", func(t *testing.T) {
		request := valid
		request.Nonce = ""
		assert.ErrorIs(t, request.Validate(), apperrors.ErrInvalidInput)
	})

	t.Run("missing encrypted", func(t *testing.T) {
		request := valid
		request.Encrypted = ""
		assert.ErrorIs(t, request.Validate(), apperrors.ErrInvalidInput)
	})

	t.Run("non-hex nonce", func(t *testing.T) {
		request := valid
		request.Nonce = "xyz"
		assert.ErrorIs(t, request.Validate(), apperrors.ErrInvalidInput)
	})

	t.Run("non-hex encrypted", func(t *testing.T) {
		request := valid
		request.Encrypted = "xyz"
		assert.ErrorIs(t, request.Validate(), apperrors.ErrInvalidInput)
	})
}
