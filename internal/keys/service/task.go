package service

import (
	"context"

	"github.com/allisson/cryptokit/internal/keys/domain"
)

// GenerateTask is a handle to an in-flight key pair generation.
//
// The result is set exactly once; Done is closed afterwards. Wait can be
// called by multiple goroutines and respects context cancellation.
type GenerateTask struct {
	done    chan struct{}
	keyPair domain.KeyPair
	err     error
}

func newGenerateTask() *GenerateTask {
	return &GenerateTask{done: make(chan struct{})}
}

func (t *GenerateTask) complete(keyPair domain.KeyPair, err error) {
	t.keyPair = keyPair
	t.err = err
	close(t.done)
}

// Done returns a channel that is closed when generation finishes.
func (t *GenerateTask) Done() <-chan struct{} {
	return t.done
}

// Wait blocks until generation finishes or ctx is cancelled. Cancelling the
// wait does not stop the generation itself.
func (t *GenerateTask) Wait(ctx context.Context) (domain.KeyPair, error) {
	select {
	case <-t.done:
		return t.keyPair, t.err
	case <-ctx.Done():
		return domain.KeyPair{}, ctx.Err()
	}
}
