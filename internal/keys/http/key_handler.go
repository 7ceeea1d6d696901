// Package http provides HTTP handlers for RSA key management operations.
package http

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/allisson/cryptokit/internal/httputil"
	keysDomain "github.com/allisson/cryptokit/internal/keys/domain"
	"github.com/allisson/cryptokit/internal/keys/http/dto"
	keysUseCase "github.com/allisson/cryptokit/internal/keys/usecase"
)

// Key type path parameter values.
const (
	keyTypePrivate = "private"
	keyTypePublic  = "public"
)

// KeyHandler handles HTTP requests for key management operations.
type KeyHandler struct {
	keyUseCase     keysUseCase.KeyUseCase
	defaultKeySize keysDomain.RSAKeySize
	logger         *slog.Logger
}

// NewKeyHandler creates a new key handler with required dependencies.
func NewKeyHandler(
	useCase keysUseCase.KeyUseCase,
	defaultKeySize keysDomain.RSAKeySize,
	logger *slog.Logger,
) *KeyHandler {
	return &KeyHandler{
		keyUseCase:     useCase,
		defaultKeySize: defaultKeySize,
		logger:         logger,
	}
}

// CreateKeyPairHandler generates a new RSA key pair.
// POST /v1/keypairs - Returns 201 Created with the PEM-encoded pair.
func (h *KeyHandler) CreateKeyPairHandler(c *gin.Context) {
	var req dto.CreateKeyPairRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}

	size := keysDomain.RSAKeySize(req.KeySize)
	if req.KeySize == 0 {
		size = h.defaultKeySize
	}

	keyPair, err := h.keyUseCase.GenerateKeyPair(
		c.Request.Context(),
		size,
		req.Passphrase,
		req.EncryptPrivateKey,
	)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusCreated, dto.MapKeyPairToResponse(keyPair))
}

// LoadKeyHandler canonicalizes a key to its PEM form.
// POST /v1/keys/:type/load - Returns 200 OK with PKCS#8 or SPKI PEM.
func (h *KeyHandler) LoadKeyHandler(c *gin.Context) {
	keyType, err := parseKeyType(c.Param("type"))
	if err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}

	var req dto.LoadKeyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}

	var pemText string
	switch {
	case keyType == keyTypePrivate && req.Encoding == dto.EncodingBase64:
		pemText, err = h.keyUseCase.LoadPrivateKeyFromBase64(c.Request.Context(), req.Data, req.Passphrase)
	case keyType == keyTypePrivate:
		pemText, err = h.keyUseCase.LoadPrivateKey(c.Request.Context(), []byte(req.Data), req.Passphrase)
	case req.Encoding == dto.EncodingBase64:
		pemText, err = h.keyUseCase.LoadPublicKeyFromBase64(c.Request.Context(), req.Data)
	default:
		pemText, err = h.keyUseCase.LoadPublicKey(c.Request.Context(), []byte(req.Data))
	}
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.LoadKeyResponse{PEM: pemText})
}

// EncodeKeyHandler canonicalizes a key and exports it as base64 of the PEM text.
// POST /v1/keys/:type/base64 - Returns 200 OK.
func (h *KeyHandler) EncodeKeyHandler(c *gin.Context) {
	keyType, err := parseKeyType(c.Param("type"))
	if err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}

	var req dto.EncodeKeyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}

	var encoded string
	if keyType == keyTypePrivate {
		encoded, err = h.keyUseCase.LoadPrivateKeyAsBase64(c.Request.Context(), []byte(req.Data), req.Passphrase)
	} else {
		encoded, err = h.keyUseCase.LoadPublicKeyAsBase64(c.Request.Context(), []byte(req.Data))
	}
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.EncodeKeyResponse{Base64: encoded})
}

func parseKeyType(value string) (string, error) {
	switch value {
	case keyTypePrivate, keyTypePublic:
		return value, nil
	default:
		return "", fmt.Errorf("invalid key type %q: must be private or public", value)
	}
}
