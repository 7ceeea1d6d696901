package service

import (
	"context"
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/base64"
	"encoding/pem"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/youmark/pkcs8"

	"github.com/allisson/cryptokit/internal/keys/domain"
)

// PEM block types produced and accepted by the manager.
const (
	pemTypePublicKey           = "PUBLIC KEY"
	pemTypeRSAPublicKey        = "RSA PUBLIC KEY"
	pemTypePrivateKey          = "PRIVATE KEY"
	pemTypeRSAPrivateKey       = "RSA PRIVATE KEY"
	pemTypeEncryptedPrivateKey = "ENCRYPTED PRIVATE KEY"
)

// RSAKeyManager implements Manager using the standard library RSA provider.
// Encrypted private keys use PKCS#8 with AES-256-CBC and PBKDF2.
type RSAKeyManager struct{}

// NewRSAKeyManager returns a new RSAKeyManager.
func NewRSAKeyManager() *RSAKeyManager {
	return &RSAKeyManager{}
}

func (m *RSAKeyManager) GenerateKeyPair(
	size domain.RSAKeySize,
	passphrase string,
	encrypted bool,
) (domain.KeyPair, error) {
	if err := size.Validate(); err != nil {
		return domain.KeyPair{}, err
	}
	if encrypted && passphrase == "" {
		return domain.KeyPair{}, domain.ErrPassphraseRequired
	}

	privateKey, err := rsa.GenerateKey(rand.Reader, int(size))
	if err != nil {
		return domain.KeyPair{}, fmt.Errorf("%w: %v", domain.ErrKeyGeneration, err)
	}

	publicPEM, err := encodePublicKey(&privateKey.PublicKey)
	if err != nil {
		return domain.KeyPair{}, fmt.Errorf("%w: %v", domain.ErrKeyGeneration, err)
	}

	privatePEM, err := encodePrivateKey(privateKey, passphrase, encrypted)
	if err != nil {
		return domain.KeyPair{}, fmt.Errorf("%w: %v", domain.ErrKeyGeneration, err)
	}

	id, err := uuid.NewV7()
	if err != nil {
		return domain.KeyPair{}, fmt.Errorf("%w: %v", domain.ErrKeyGeneration, err)
	}

	return domain.KeyPair{
		ID:         id,
		PublicKey:  publicPEM,
		PrivateKey: privatePEM,
		KeySize:    size,
		Encrypted:  encrypted,
		CreatedAt:  time.Now().UTC(),
	}, nil
}

func (m *RSAKeyManager) GenerateKeyPairAsync(
	ctx context.Context,
	size domain.RSAKeySize,
	passphrase string,
	encrypted bool,
) *GenerateTask {
	task := newGenerateTask()

	go func() {
		if err := ctx.Err(); err != nil {
			task.complete(domain.KeyPair{}, err)
			return
		}
		task.complete(m.GenerateKeyPair(size, passphrase, encrypted))
	}()

	return task
}

func (m *RSAKeyManager) LoadPrivateKey(data []byte, passphrase string) (string, error) {
	privateKey, err := parsePrivateKey(data, passphrase)
	if err != nil {
		return "", err
	}
	return encodePrivateKey(privateKey, "", false)
}

func (m *RSAKeyManager) LoadPublicKey(data []byte) (string, error) {
	publicKey, err := parsePublicKey(data)
	if err != nil {
		return "", err
	}
	return encodePublicKey(publicKey)
}

func (m *RSAKeyManager) LoadPrivateKeyFromBase64(encoded string, passphrase string) (string, error) {
	data, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrBase64Decode, err)
	}
	return m.LoadPrivateKey(data, passphrase)
}

func (m *RSAKeyManager) LoadPublicKeyFromBase64(encoded string) (string, error) {
	data, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrBase64Decode, err)
	}
	return m.LoadPublicKey(data)
}

func (m *RSAKeyManager) LoadPrivateKeyAsBase64(data []byte, passphrase string) (string, error) {
	pemText, err := m.LoadPrivateKey(data, passphrase)
	if err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString([]byte(pemText)), nil
}

func (m *RSAKeyManager) LoadPublicKeyAsBase64(data []byte) (string, error) {
	pemText, err := m.LoadPublicKey(data)
	if err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString([]byte(pemText)), nil
}

func encodePublicKey(publicKey *rsa.PublicKey) (string, error) {
	der, err := x509.MarshalPKIXPublicKey(publicKey)
	if err != nil {
		return "", err
	}
	return string(pem.EncodeToMemory(&pem.Block{Type: pemTypePublicKey, Bytes: der})), nil
}

func encodePrivateKey(privateKey *rsa.PrivateKey, passphrase string, encrypted bool) (string, error) {
	if encrypted {
		der, err := pkcs8.MarshalPrivateKey(privateKey, []byte(passphrase), pkcs8.DefaultOpts)
		if err != nil {
			return "", err
		}
		return string(pem.EncodeToMemory(&pem.Block{Type: pemTypeEncryptedPrivateKey, Bytes: der})), nil
	}

	der, err := x509.MarshalPKCS8PrivateKey(privateKey)
	if err != nil {
		return "", err
	}
	return string(pem.EncodeToMemory(&pem.Block{Type: pemTypePrivateKey, Bytes: der})), nil
}

// parsePrivateKey accepts PKCS#8 (plain or encrypted) and PKCS#1 inputs, in
// PEM or raw DER form.
func parsePrivateKey(data []byte, passphrase string) (*rsa.PrivateKey, error) {
	der := data
	if block, _ := pem.Decode(data); block != nil {
		switch block.Type {
		case pemTypePrivateKey, pemTypeRSAPrivateKey:
			der = block.Bytes
		case pemTypeEncryptedPrivateKey:
			if passphrase == "" {
				return nil, domain.ErrPassphraseRequired
			}
			key, err := pkcs8.ParsePKCS8PrivateKeyRSA(block.Bytes, []byte(passphrase))
			if err != nil {
				return nil, fmt.Errorf("%w: %v", domain.ErrKeyParse, err)
			}
			return key, nil
		default:
			return nil, fmt.Errorf("%w: unexpected PEM block %q", domain.ErrKeyParse, block.Type)
		}
	}

	if key, err := x509.ParsePKCS8PrivateKey(der); err == nil {
		rsaKey, ok := key.(*rsa.PrivateKey)
		if !ok {
			return nil, fmt.Errorf("%w: not an RSA private key", domain.ErrKeyParse)
		}
		return rsaKey, nil
	}
	if key, err := x509.ParsePKCS1PrivateKey(der); err == nil {
		return key, nil
	}
	if passphrase != "" {
		if key, err := pkcs8.ParsePKCS8PrivateKeyRSA(der, []byte(passphrase)); err == nil {
			return key, nil
		}
	}

	return nil, fmt.Errorf("%w: not a valid RSA private key", domain.ErrKeyParse)
}

// parsePublicKey accepts SPKI and PKCS#1 inputs, in PEM or raw DER form.
func parsePublicKey(data []byte) (*rsa.PublicKey, error) {
	der := data
	if block, _ := pem.Decode(data); block != nil {
		switch block.Type {
		case pemTypePublicKey, pemTypeRSAPublicKey:
			der = block.Bytes
		default:
			return nil, fmt.Errorf("%w: unexpected PEM block %q", domain.ErrKeyParse, block.Type)
		}
	}

	if key, err := x509.ParsePKIXPublicKey(der); err == nil {
		rsaKey, ok := key.(*rsa.PublicKey)
		if !ok {
			return nil, fmt.Errorf("%w: not an RSA public key", domain.ErrKeyParse)
		}
		return rsaKey, nil
	}
	if key, err := x509.ParsePKCS1PublicKey(der); err == nil {
		return key, nil
	}

	return nil, fmt.Errorf("%w: not a valid RSA public key", domain.ErrKeyParse)
}
