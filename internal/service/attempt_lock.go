package service

import "sync"

// attemptLocks serializes grading calls per attempt ID. Two concurrent
// grading calls on the same attempt must not interleave their
// mutate→aggregate→finalize sequences (lost-update hazard); calls on
// different attempts proceed in parallel. Entries are reference-counted
// so the map does not grow with every attempt ever graded.
type attemptLocks struct {
	mu    sync.Mutex
	locks map[uint]*attemptLock
}

type attemptLock struct {
	mu   sync.Mutex
	refs int
}

func newAttemptLocks() *attemptLocks {
	return &attemptLocks{locks: make(map[uint]*attemptLock)}
}

// Lock blocks until the per-attempt lock is held and returns the
// matching unlock function.
func (l *attemptLocks) Lock(attemptID uint) func() {
	l.mu.Lock()
	entry, ok := l.locks[attemptID]
	if !ok {
		entry = &attemptLock{}
		l.locks[attemptID] = entry
	}
	entry.refs++
	l.mu.Unlock()

	entry.mu.Lock()
	return func() {
		entry.mu.Unlock()
		l.mu.Lock()
		entry.refs--
		if entry.refs == 0 {
			delete(l.locks, attemptID)
		}
		l.mu.Unlock()
	}
}
