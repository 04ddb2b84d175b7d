package service

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestAttemptLocks_MutualExclusionPerAttempt(t *testing.T) {
	locks := newAttemptLocks()

	var inCritical int
	var maxInCritical int
	var mu sync.Mutex

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			unlock := locks.Lock(42)
			defer unlock()
			mu.Lock()
			inCritical++
			if inCritical > maxInCritical {
				maxInCritical = inCritical
			}
			mu.Unlock()
			time.Sleep(time.Millisecond)
			mu.Lock()
			inCritical--
			mu.Unlock()
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, maxInCritical)
	assert.Empty(t, locks.locks, "entries are released once unused")
}

func TestAttemptLocks_DistinctAttemptsDoNotBlock(t *testing.T) {
	locks := newAttemptLocks()

	unlockA := locks.Lock(1)
	defer unlockA()

	done := make(chan struct{})
	go func() {
		unlockB := locks.Lock(2)
		unlockB()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("locking a different attempt blocked behind attempt 1")
	}
}
