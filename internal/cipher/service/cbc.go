package service

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/subtle"
	"fmt"

	"github.com/allisson/cryptokit/internal/cipher/domain"
)

// encryptCBC encrypts plaintext with AES-CBC and PKCS#7 padding.
// The padding scheme matches OpenSSL's default so ciphertexts interoperate
// with other implementations of the same wire format.
func encryptCBC(key, iv, plaintext []byte) ([]byte, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("failed to create AES cipher: %w", err)
	}

	padded := pkcs7Pad(plaintext, block.BlockSize())
	ciphertext := make([]byte, len(padded))
	cipher.NewCBCEncrypter(block, iv).CryptBlocks(ciphertext, padded)

	return ciphertext, nil
}

// decryptCBC decrypts an AES-CBC ciphertext and strips PKCS#7 padding.
// Every failure maps to ErrDecryptionFailed; the specific cause (length,
// padding byte, padding value) is never disclosed.
func decryptCBC(key, iv, ciphertext []byte) ([]byte, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("failed to create AES cipher: %w", err)
	}

	if len(ciphertext) == 0 || len(ciphertext)%block.BlockSize() != 0 {
		return nil, domain.ErrDecryptionFailed
	}

	plaintext := make([]byte, len(ciphertext))
	cipher.NewCBCDecrypter(block, iv).CryptBlocks(plaintext, ciphertext)

	unpadded, ok := pkcs7Unpad(plaintext, block.BlockSize())
	if !ok {
		return nil, domain.ErrDecryptionFailed
	}
	return unpadded, nil
}

// pkcs7Pad appends PKCS#7 padding up to the next block boundary.
// A full block of padding is added when the input is already aligned.
func pkcs7Pad(data []byte, blockSize int) []byte {
	padLen := blockSize - len(data)%blockSize
	padded := make([]byte, len(data)+padLen)
	copy(padded, data)
	for i := len(data); i < len(padded); i++ {
		padded[i] = byte(padLen)
	}
	return padded
}

// pkcs7Unpad validates and strips PKCS#7 padding using a constant-time
// comparison of the padding bytes.
func pkcs7Unpad(data []byte, blockSize int) ([]byte, bool) {
	if len(data) == 0 || len(data)%blockSize != 0 {
		return nil, false
	}

	padLen := int(data[len(data)-1])
	if padLen == 0 || padLen > blockSize || padLen > len(data) {
		return nil, false
	}

	pad := data[len(data)-padLen:]
	expected := make([]byte, padLen)
	for i := range expected {
		expected[i] = byte(padLen)
	}
	if subtle.ConstantTimeCompare(pad, expected) != 1 {
		return nil, false
	}

	return data[:len(data)-padLen], true
}
