package commands

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunDecrypt(t *testing.T) {
	ctx := context.Background()
	key := base64.StdEncoding.EncodeToString(make([]byte, 32))
	useCase := newCipherUseCase()

	encrypt := func(t *testing.T, plaintext string) (nonce, encrypted string) {
		t.Helper()

		var buf bytes.Buffer
		require.NoError(t, RunEncrypt(ctx, useCase, &buf, "aes-256-gcm", key, plaintext))

		var result struct {
			Nonce     string `json:"nonce"`
			Encrypted string `json:"encrypted"`
		}
		require.NoError(t, json.Unmarshal(buf.Bytes(), &result))
		return result.Nonce, result.Encrypted
	}

	t.Run("round-trips through the CLI", func(t *testing.T) {
		nonce, encrypted := encrypt(t, "cli round trip")

		var buf bytes.Buffer
		err := RunDecrypt(ctx, useCase, &buf, "aes-256-gcm", key, nonce, encrypted)
		require.NoError(t, err)

		assert.Equal(t, "cli round trip", strings.TrimSuffix(buf.String(), "\n"))
	})

	t.Run("fails on wrong key", func(t *testing.T) {
		nonce, encrypted := encrypt(t, "secret")
		wrongKey := base64.StdEncoding.EncodeToString(bytes.Repeat([]byte{1}, 32))

		var buf bytes.Buffer
		err := RunDecrypt(ctx, useCase, &buf, "aes-256-gcm", wrongKey, nonce, encrypted)
		require.Error(t, err)
		assert.Empty(t, buf.String())
	})

	t.Run("rejects invalid base64 key", func(t *testing.T) {
		var buf bytes.Buffer

		err := RunDecrypt(ctx, useCase, &buf, "aes-256-gcm", "%%%", "00", "00")
		require.Error(t, err)
	})
}
