package usecase

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/allisson/cryptokit/internal/keys/domain"
	"github.com/allisson/cryptokit/internal/keys/service"
)

// recordingMetrics captures recorded operations for assertions.
type recordingMetrics struct {
	mu         sync.Mutex
	operations []string
	statuses   []string
}

func (r *recordingMetrics) RecordOperation(ctx context.Context, domain, operation, status string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.operations = append(r.operations, domain+"/"+operation)
	r.statuses = append(r.statuses, status)
}

func (r *recordingMetrics) RecordDuration(
	ctx context.Context,
	domain, operation string,
	duration time.Duration,
	status string,
) {
}

func TestKeyUseCaseWithMetrics(t *testing.T) {
	ctx := context.Background()

	t.Run("records success", func(t *testing.T) {
		recorder := &recordingMetrics{}
		useCase := NewKeyUseCaseWithMetrics(
			NewKeyUseCase(service.NewRSAKeyManager()),
			recorder,
		)

		keyPair, err := useCase.GenerateKeyPair(ctx, domain.RSA2048, "", false)
		require.NoError(t, err)

		_, err = useCase.LoadPublicKey(ctx, []byte(keyPair.PublicKey))
		require.NoError(t, err)

		assert.Equal(t, []string{"keys/generate_key_pair", "keys/load_public_key"}, recorder.operations)
		assert.Equal(t, []string{"success", "success"}, recorder.statuses)
	})

	t.Run("records error status", func(t *testing.T) {
		recorder := &recordingMetrics{}
		useCase := NewKeyUseCaseWithMetrics(
			NewKeyUseCase(service.NewRSAKeyManager()),
			recorder,
		)

		_, err := useCase.GenerateKeyPair(ctx, domain.RSAKeySize(1024), "", false)
		require.Error(t, err)

		assert.Equal(t, []string{"keys/generate_key_pair"}, recorder.operations)
		assert.Equal(t, []string{"error"}, recorder.statuses)
	})
}
