// Package http provides HTTP handlers for symmetric encryption operations.
package http

import (
	"encoding/base64"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	cipherDomain "github.com/allisson/cryptokit/internal/cipher/domain"
	"github.com/allisson/cryptokit/internal/cipher/http/dto"
	cipherUseCase "github.com/allisson/cryptokit/internal/cipher/usecase"
	"github.com/allisson/cryptokit/internal/httputil"
)

// CipherHandler handles HTTP requests for symmetric encryption operations.
type CipherHandler struct {
	cipherUseCase cipherUseCase.CipherUseCase
	logger        *slog.Logger
}

// NewCipherHandler creates a new cipher handler with required dependencies.
func NewCipherHandler(useCase cipherUseCase.CipherUseCase, logger *slog.Logger) *CipherHandler {
	return &CipherHandler{
		cipherUseCase: useCase,
		logger:        logger,
	}
}

// ListAlgorithmsHandler lists the supported cipher suites.
// GET /v1/algorithms - Returns 200 OK.
func (h *CipherHandler) ListAlgorithmsHandler(c *gin.Context) {
	algs := h.cipherUseCase.Algorithms(c.Request.Context())
	c.JSON(http.StatusOK, dto.MapAlgorithmsToListResponse(algs))
}

// EncryptHandler encrypts a base64 plaintext under a base64 key.
// POST /v1/encrypt - Returns 200 OK with the hex wire format.
func (h *CipherHandler) EncryptHandler(c *gin.Context) {
	var req dto.EncryptRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}

	// Base64 validity is checked by Validate; decode errors cannot happen here.
	key, _ := base64.StdEncoding.DecodeString(req.Key)
	plaintext, _ := base64.StdEncoding.DecodeString(req.Plaintext)
	defer cipherDomain.Zero(key)
	defer cipherDomain.Zero(plaintext)

	result, err := h.cipherUseCase.Encrypt(c.Request.Context(), req.Algorithm, key, plaintext)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.EncryptResponse{
		Nonce:     result.Nonce,
		Encrypted: result.Encrypted,
	})
}

// DecryptHandler decrypts a hex wire format payload under a base64 key.
// POST /v1/decrypt - Returns 200 OK with the base64 plaintext.
func (h *CipherHandler) DecryptHandler(c *gin.Context) {
	var req dto.DecryptRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}

	key, _ := base64.StdEncoding.DecodeString(req.Key)
	defer cipherDomain.Zero(key)

	result := cipherDomain.EncryptionResult{
		Nonce:     req.Nonce,
		Encrypted: req.Encrypted,
	}

	plaintext, err := h.cipherUseCase.Decrypt(c.Request.Context(), req.Algorithm, key, result)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}
	defer cipherDomain.Zero(plaintext)

	c.JSON(http.StatusOK, dto.DecryptResponse{
		Plaintext: base64.StdEncoding.EncodeToString(plaintext),
	})
}
