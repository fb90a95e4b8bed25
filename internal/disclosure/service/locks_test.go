package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestKeyedMutex(t *testing.T) {
	t.Parallel()

	var km keyedMutex
	ctx := context.Background()

	unlockA, err := km.Lock(ctx, "a")
	require.NoError(t, err)

	t.Run("other keys are independent", func(t *testing.T) {
		unlockB, err := km.Lock(ctx, "b")
		require.NoError(t, err)
		unlockB()
	})

	t.Run("same key waits", func(t *testing.T) {
		waitCtx, cancel := context.WithTimeout(ctx, 20*time.Millisecond)
		defer cancel()
		_, err := km.Lock(waitCtx, "a")
		require.ErrorIs(t, err, context.DeadlineExceeded)
	})

	acquired := make(chan func())
	go func() {
		unlock, err := km.Lock(ctx, "a")
		if err == nil {
			acquired <- unlock
		}
	}()

	select {
	case <-acquired:
		t.Fatal("lock acquired while held")
	case <-time.After(20 * time.Millisecond):
	}

	unlockA()
	unlock := <-acquired
	unlock()

	require.Zero(t, km.len())
}
