package validation

import (
	"testing"

	validation "github.com/jellydator/validation"
	"github.com/stretchr/testify/assert"

	apperrors "github.com/allisson/cryptokit/internal/errors"
)

func TestNotBlank(t *testing.T) {
	assert.NoError(t, validation.Validate("value", NotBlank))
	assert.Error(t, validation.Validate("   ", NotBlank))
	assert.Error(t, validation.Validate("\t\n", NotBlank))
}

func TestNoWhitespace(t *testing.T) {
	assert.NoError(t, validation.Validate("value", NoWhitespace))
	assert.Error(t, validation.Validate(" value", NoWhitespace))
	assert.Error(t, validation.Validate("value ", NoWhitespace))
}

func TestBase64(t *testing.T) {
	assert.NoError(t, validation.Validate("aGVsbG8=", Base64))
	assert.NoError(t, validation.Validate("", Base64))
	assert.Error(t, validation.Validate("not base64!", Base64))
}

func TestHex(t *testing.T) {
	assert.NoError(t, validation.Validate("deadbeef", Hex))
	assert.NoError(t, validation.Validate("", Hex))
	assert.Error(t, validation.Validate("xyz", Hex))
	assert.Error(t, validation.Validate("abc", Hex)) // odd length
}

func TestWrapValidationError(t *testing.T) {
	assert.NoError(t, WrapValidationError(nil))

	err := WrapValidationError(validation.NewError("validation_test", "test failed"))
	assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
	assert.Contains(t, err.Error(), "test failed")
}
