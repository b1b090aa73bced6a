package worker

import (
	"context"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPool_RunsSubmittedJobs(t *testing.T) {
	pool := NewPool(4)
	pool.Start(context.Background())

	var executed atomic.Int64
	for range 20 {
		err := pool.Submit(func(ctx context.Context) {
			executed.Add(1)
		})
		require.NoError(t, err)
	}
	pool.Close()

	assert.Equal(t, int64(20), executed.Load())
}

func TestPool_SubmitAfterClose(t *testing.T) {
	pool := NewPool(1)
	pool.Start(context.Background())
	pool.Close()

	err := pool.Submit(func(ctx context.Context) {})
	assert.ErrorIs(t, err, ErrPoolClosed)
}

func TestPool_CloseIsIdempotent(t *testing.T) {
	pool := NewPool(2)
	pool.Start(context.Background())
	pool.Close()
	pool.Close()
}
