package http

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/allisson/cryptokit/internal/cipher/http/dto"
	"github.com/allisson/cryptokit/internal/cipher/service"
	"github.com/allisson/cryptokit/internal/cipher/usecase"
)

// setupTestHandler creates a handler backed by the real cipher engine; the
// engine is pure computation with no external dependencies.
func setupTestHandler(t *testing.T) *CipherHandler {
	t.Helper()

	gin.SetMode(gin.TestMode)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	useCase := usecase.NewCipherUseCase(service.NewCipherEngine())

	return NewCipherHandler(useCase, logger)
}

// createTestContext builds a gin context with an optional JSON body.
func createTestContext(method, path string, body interface{}) (*gin.Context, *httptest.ResponseRecorder) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	var reader io.Reader
	if body != nil {
		payload, _ := json.Marshal(body)
		reader = bytes.NewReader(payload)
	}

	c.Request = httptest.NewRequest(method, path, reader)
	c.Request.Header.Set("Content-Type", "application/json")
	return c, w
}

func TestCipherHandler_ListAlgorithmsHandler(t *testing.T) {
	handler := setupTestHandler(t)

	c, w := createTestContext(http.MethodGet, "/v1/algorithms", nil)
	handler.ListAlgorithmsHandler(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var response dto.ListAlgorithmsResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Len(t, response.Data, 13)

	ids := make([]string, 0, len(response.Data))
	for _, alg := range response.Data {
		ids = append(ids, alg.ID)
	}
	assert.Contains(t, ids, "aes-256-gcm")
	assert.Contains(t, ids, "aes-128-cbc")
	assert.Contains(t, ids, "chacha20-poly1305")
}

func TestCipherHandler_EncryptHandler(t *testing.T) {
	key := make([]byte, 32)
	encodedKey := base64.StdEncoding.EncodeToString(key)

	t.Run("encrypts a payload", func(t *testing.T) {
		handler := setupTestHandler(t)

		request := dto.EncryptRequest{
			Algorithm: "aes-256-gcm",
			Key:       encodedKey,
			Plaintext: base64.StdEncoding.EncodeToString([]byte("hello world")),
		}

		c, w := createTestContext(http.MethodPost, "/v1/encrypt", request)
		handler.EncryptHandler(c)

		assert.Equal(t, http.StatusOK, w.Code)

		var response dto.EncryptResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.Len(t, response.Nonce, 24)
		assert.Len(t, response.Encrypted, 2*(11+16))
	})

	t.Run("rejects invalid JSON", func(t *testing.T) {
		handler := setupTestHandler(t)

		c, w := createTestContext(http.MethodPost, "/v1/encrypt", nil)
		handler.EncryptHandler(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("rejects missing algorithm", func(t *testing.T) {
		handler := setupTestHandler(t)

		request := dto.EncryptRequest{Key: encodedKey}
		c, w := createTestContext(http.MethodPost, "/v1/encrypt", request)
		handler.EncryptHandler(c)

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	})

	t.Run("rejects unknown algorithm", func(t *testing.T) {
		handler := setupTestHandler(t)

		request := dto.EncryptRequest{
			Algorithm: "aes256gcm",
			Key:       encodedKey,
		}
		c, w := createTestContext(http.MethodPost, "/v1/encrypt", request)
		handler.EncryptHandler(c)

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
		assert.Contains(t, w.Body.String(), "invalid_input")
	})

	t.Run("rejects wrong key length", func(t *testing.T) {
		handler := setupTestHandler(t)

		request := dto.EncryptRequest{
			Algorithm: "aes-256-gcm",
			Key:       base64.StdEncoding.EncodeToString(make([]byte, 16)),
		}
		c, w := createTestContext(http.MethodPost, "/v1/encrypt", request)
		handler.EncryptHandler(c)

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	})
}

func TestCipherHandler_DecryptHandler(t *testing.T) {
	key := make([]byte, 32)
	encodedKey := base64.StdEncoding.EncodeToString(key)

	encrypt := func(t *testing.T, handler *CipherHandler, plaintext string) dto.EncryptResponse {
		t.Helper()

		request := dto.EncryptRequest{
			Algorithm: "aes-256-gcm",
			Key:       encodedKey,
			Plaintext: base64.StdEncoding.EncodeToString([]byte(plaintext)),
		}
		c, w := createTestContext(http.MethodPost, "/v1/encrypt", request)
		handler.EncryptHandler(c)
		require.Equal(t, http.StatusOK, w.Code)

		var response dto.EncryptResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		return response
	}

	t.Run("round-trips through the API", func(t *testing.T) {
		handler := setupTestHandler(t)
		encrypted := encrypt(t, handler, "round trip me")

		request := dto.DecryptRequest{
			Algorithm: "aes-256-gcm",
			Key:       encodedKey,
			Nonce:     encrypted.Nonce,
			Encrypted: encrypted.Encrypted,
		}
		c, w := createTestContext(http.MethodPost, "/v1/decrypt", request)
		handler.DecryptHandler(c)

		assert.Equal(t, http.StatusOK, w.Code)

		var response dto.DecryptResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))

		plaintext, err := base64.StdEncoding.DecodeString(response.Plaintext)
		require.NoError(t, err)
		assert.Equal(t, "round trip me", string(plaintext))
	})

	t.Run("rejects tampered ciphertext", func(t *testing.T) {
		handler := setupTestHandler(t)
		encrypted := encrypt(t, handler, "tamper target")

		tampered := []byte(encrypted.Encrypted)
		if tampered[0] == 'a' {
			tampered[0] = 'b'
		} else {
			tampered[0] = 'a'
		}

		request := dto.DecryptRequest{
			Algorithm: "aes-256-gcm",
			Key:       encodedKey,
			Nonce:     encrypted.Nonce,
			Encrypted: string(tampered),
		}
		c, w := createTestContext(http.MethodPost, "/v1/decrypt", request)
		handler.DecryptHandler(c)

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
		assert.NotContains(t, w.Body.String(), "plaintext")
	})

	t.Run("rejects non-hex nonce", func(t *testing.T) {
		handler := setupTestHandler(t)

		request := dto.DecryptRequest{
			Algorithm: "aes-256-gcm",
			Key:       encodedKey,
			Nonce:     "zzzz",
			Encrypted: "deadbeef",
		}
		c, w := createTestContext(http.MethodPost, "/v1/decrypt", request)
		handler.DecryptHandler(c)

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	})

	t.Run("rejects missing fields", func(t *testing.T) {
		handler := setupTestHandler(t)

		request := dto.DecryptRequest{Algorithm: "aes-256-gcm", Key: encodedKey}
		c, w := createTestContext(http.MethodPost, "/v1/decrypt", request)
		handler.DecryptHandler(c)

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	})
}
