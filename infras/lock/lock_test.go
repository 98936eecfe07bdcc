package lock_test

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"

	"oceanview/infras/lock"
)

func TestLocalLocker_SerializesSameKey(t *testing.T) {
	locker := lock.NewLocalLocker()

	const workers = 16

	counter := 0

	var wg sync.WaitGroup
	wg.Add(workers)

	for range workers {
		go func() {
			defer wg.Done()

			release, err := locker.Acquire(context.Background(), "room:RM-101")
			assert.NoError(t, err)
			defer release()

			counter++
		}()
	}

	wg.Wait()

	assert.Equal(t, workers, counter)
}

func TestLocalLocker_IndependentKeys(t *testing.T) {
	locker := lock.NewLocalLocker()

	releaseA, err := locker.Acquire(context.Background(), "room:RM-101")
	assert.NoError(t, err)

	// A held lock on one key must not block another key.
	releaseB, err := locker.Acquire(context.Background(), "room:RM-102")
	assert.NoError(t, err)

	releaseB()
	releaseA()

	releaseA, err = locker.Acquire(context.Background(), "room:RM-101")
	assert.NoError(t, err)
	releaseA()
}
