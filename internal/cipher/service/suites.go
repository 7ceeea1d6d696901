package service

import (
	"github.com/allisson/cryptokit/internal/cipher/domain"
)

// Convenience wrappers binding the engine to a fixed algorithm identifier.
// They carry no logic beyond the argument binding.

// EncryptAES128CBC encrypts with aes-128-cbc.
func (e *CipherEngine) EncryptAES128CBC(key, plaintext []byte) (domain.EncryptionResult, error) {
	return e.Encrypt(domain.AES128CBC, key, plaintext)
}

// DecryptAES128CBC decrypts an aes-128-cbc result.
func (e *CipherEngine) DecryptAES128CBC(key []byte, result domain.EncryptionResult) ([]byte, error) {
	return e.Decrypt(domain.AES128CBC, key, result)
}

// EncryptAES192CBC encrypts with aes-192-cbc.
func (e *CipherEngine) EncryptAES192CBC(key, plaintext []byte) (domain.EncryptionResult, error) {
	return e.Encrypt(domain.AES192CBC, key, plaintext)
}

// DecryptAES192CBC decrypts an aes-192-cbc result.
func (e *CipherEngine) DecryptAES192CBC(key []byte, result domain.EncryptionResult) ([]byte, error) {
	return e.Decrypt(domain.AES192CBC, key, result)
}

// EncryptAES256CBC encrypts with aes-256-cbc.
func (e *CipherEngine) EncryptAES256CBC(key, plaintext []byte) (domain.EncryptionResult, error) {
	return e.Encrypt(domain.AES256CBC, key, plaintext)
}

// DecryptAES256CBC decrypts an aes-256-cbc result.
func (e *CipherEngine) DecryptAES256CBC(key []byte, result domain.EncryptionResult) ([]byte, error) {
	return e.Decrypt(domain.AES256CBC, key, result)
}

// EncryptAES128GCM encrypts with aes-128-gcm.
func (e *CipherEngine) EncryptAES128GCM(key, plaintext []byte) (domain.EncryptionResult, error) {
	return e.Encrypt(domain.AES128GCM, key, plaintext)
}

// DecryptAES128GCM decrypts an aes-128-gcm result.
func (e *CipherEngine) DecryptAES128GCM(key []byte, result domain.EncryptionResult) ([]byte, error) {
	return e.Decrypt(domain.AES128GCM, key, result)
}

// EncryptAES192GCM encrypts with aes-192-gcm.
func (e *CipherEngine) EncryptAES192GCM(key, plaintext []byte) (domain.EncryptionResult, error) {
	return e.Encrypt(domain.AES192GCM, key, plaintext)
}

// DecryptAES192GCM decrypts an aes-192-gcm result.
func (e *CipherEngine) DecryptAES192GCM(key []byte, result domain.EncryptionResult) ([]byte, error) {
	return e.Decrypt(domain.AES192GCM, key, result)
}

// EncryptAES256GCM encrypts with aes-256-gcm.
func (e *CipherEngine) EncryptAES256GCM(key, plaintext []byte) (domain.EncryptionResult, error) {
	return e.Encrypt(domain.AES256GCM, key, plaintext)
}

// DecryptAES256GCM decrypts an aes-256-gcm result.
func (e *CipherEngine) DecryptAES256GCM(key []byte, result domain.EncryptionResult) ([]byte, error) {
	return e.Decrypt(domain.AES256GCM, key, result)
}

// EncryptAES128CCM encrypts with aes-128-ccm.
func (e *CipherEngine) EncryptAES128CCM(key, plaintext []byte) (domain.EncryptionResult, error) {
	return e.Encrypt(domain.AES128CCM, key, plaintext)
}

// DecryptAES128CCM decrypts an aes-128-ccm result.
func (e *CipherEngine) DecryptAES128CCM(key []byte, result domain.EncryptionResult) ([]byte, error) {
	return e.Decrypt(domain.AES128CCM, key, result)
}

// EncryptAES192CCM encrypts with aes-192-ccm.
func (e *CipherEngine) EncryptAES192CCM(key, plaintext []byte) (domain.EncryptionResult, error) {
	return e.Encrypt(domain.AES192CCM, key, plaintext)
}

// DecryptAES192CCM decrypts an aes-192-ccm result.
func (e *CipherEngine) DecryptAES192CCM(key []byte, result domain.EncryptionResult) ([]byte, error) {
	return e.Decrypt(domain.AES192CCM, key, result)
}

// EncryptAES256CCM encrypts with aes-256-ccm.
func (e *CipherEngine) EncryptAES256CCM(key, plaintext []byte) (domain.EncryptionResult, error) {
	return e.Encrypt(domain.AES256CCM, key, plaintext)
}

// DecryptAES256CCM decrypts an aes-256-ccm result.
func (e *CipherEngine) DecryptAES256CCM(key []byte, result domain.EncryptionResult) ([]byte, error) {
	return e.Decrypt(domain.AES256CCM, key, result)
}

// EncryptAES128OCB encrypts with aes-128-ocb.
func (e *CipherEngine) EncryptAES128OCB(key, plaintext []byte) (domain.EncryptionResult, error) {
	return e.Encrypt(domain.AES128OCB, key, plaintext)
}

// DecryptAES128OCB decrypts an aes-128-ocb result.
func (e *CipherEngine) DecryptAES128OCB(key []byte, result domain.EncryptionResult) ([]byte, error) {
	return e.Decrypt(domain.AES128OCB, key, result)
}

// EncryptAES192OCB encrypts with aes-192-ocb.
func (e *CipherEngine) EncryptAES192OCB(key, plaintext []byte) (domain.EncryptionResult, error) {
	return e.Encrypt(domain.AES192OCB, key, plaintext)
}

// DecryptAES192OCB decrypts an aes-192-ocb result.
func (e *CipherEngine) DecryptAES192OCB(key []byte, result domain.EncryptionResult) ([]byte, error) {
	return e.Decrypt(domain.AES192OCB, key, result)
}

// EncryptAES256OCB encrypts with aes-256-ocb.
func (e *CipherEngine) EncryptAES256OCB(key, plaintext []byte) (domain.EncryptionResult, error) {
	return e.Encrypt(domain.AES256OCB, key, plaintext)
}

// DecryptAES256OCB decrypts an aes-256-ocb result.
func (e *CipherEngine) DecryptAES256OCB(key []byte, result domain.EncryptionResult) ([]byte, error) {
	return e.Decrypt(domain.AES256OCB, key, result)
}

// EncryptChaCha20Poly1305 encrypts with chacha20-poly1305.
func (e *CipherEngine) EncryptChaCha20Poly1305(key, plaintext []byte) (domain.EncryptionResult, error) {
	return e.Encrypt(domain.ChaCha20Poly1305, key, plaintext)
}

// DecryptChaCha20Poly1305 decrypts a chacha20-poly1305 result.
func (e *CipherEngine) DecryptChaCha20Poly1305(key []byte, result domain.EncryptionResult) ([]byte, error) {
	return e.Decrypt(domain.ChaCha20Poly1305, key, result)
}
