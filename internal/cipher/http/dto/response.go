// Package dto provides data transfer objects for the cipher HTTP layer.
package dto

import (
	cipherDomain "github.com/allisson/cryptokit/internal/cipher/domain"
)

// EncryptResponse carries the hex wire format of an encryption.
type EncryptResponse struct {
	Nonce     string `json:"nonce"`
	Encrypted string `json:"encrypted"`
}

// DecryptResponse carries the recovered plaintext, base64-encoded.
type DecryptResponse struct {
	Plaintext string `json:"plaintext"`
}

// AlgorithmResponse describes a supported cipher suite.
type AlgorithmResponse struct {
	ID            string `json:"id"`
	Mode          string `json:"mode"`
	KeyLength     int    `json:"key_length"`
	NonceLength   int    `json:"nonce_length"`
	TagLength     int    `json:"tag_length"`
	Authenticated bool   `json:"authenticated"`
}

// ListAlgorithmsResponse lists the supported cipher suites.
type ListAlgorithmsResponse struct {
	Data []AlgorithmResponse `json:"data"`
}

// MapAlgorithmToResponse converts a domain algorithm to an API response.
func MapAlgorithmToResponse(alg cipherDomain.Algorithm) AlgorithmResponse {
	return AlgorithmResponse{
		ID:            alg.ID,
		Mode:          string(alg.Mode),
		KeyLength:     alg.KeyLength,
		NonceLength:   alg.NonceLength,
		TagLength:     alg.TagLength,
		Authenticated: alg.Authenticated(),
	}
}

// MapAlgorithmsToListResponse converts domain algorithms to a list API response.
func MapAlgorithmsToListResponse(algs []cipherDomain.Algorithm) ListAlgorithmsResponse {
	responses := make([]AlgorithmResponse, 0, len(algs))
	for _, alg := range algs {
		responses = append(responses, MapAlgorithmToResponse(alg))
	}
	return ListAlgorithmsResponse{Data: responses}
}
