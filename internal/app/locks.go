package app

import (
	"context"
	"slices"
	"sync"
)

// listLocks is a set of per-list mutexes. Locks for several lists are always
// taken in ascending id order, so two callers can never wait on each other.
type listLocks struct {
	mu    sync.Mutex
	locks map[string]*keyLock
}

type keyLock struct {
	ch   chan struct{}
	refs int
}

func newListLocks() *listLocks {
	return &listLocks{locks: make(map[string]*keyLock)}
}

// lock acquires the locks for ids and returns a function that releases them.
// Waiting stops when ctx is done; in that case nothing remains held.
func (l *listLocks) lock(ctx context.Context, ids []string) (func(), error) {
	keys := lockKeys(ids)

	held := make([]string, 0, len(keys))
	release := func() {
		for i := len(held) - 1; i >= 0; i-- {
			l.release(held[i])
		}
	}

	for _, k := range keys {
		kl := l.acquireRef(k)
		select {
		case kl.ch <- struct{}{}:
			held = append(held, k)
		case <-ctx.Done():
			l.dropRef(k)
			release()
			return nil, ctx.Err()
		}
	}
	return release, nil
}

func (l *listLocks) acquireRef(key string) *keyLock {
	l.mu.Lock()
	defer l.mu.Unlock()

	kl, ok := l.locks[key]
	if !ok {
		kl = &keyLock{ch: make(chan struct{}, 1)}
		l.locks[key] = kl
	}
	kl.refs++
	return kl
}

func (l *listLocks) dropRef(key string) {
	l.mu.Lock()
	defer l.mu.Unlock()

	kl := l.locks[key]
	kl.refs--
	if kl.refs == 0 {
		delete(l.locks, key)
	}
}

func (l *listLocks) release(key string) {
	l.mu.Lock()
	kl := l.locks[key]
	l.mu.Unlock()

	<-kl.ch
	l.dropRef(key)
}

// size reports how many keys currently have holders or waiters.
func (l *listLocks) size() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.locks)
}

// lockKeys returns ids sorted ascending with blanks and duplicates removed.
func lockKeys(ids []string) []string {
	keys := make([]string, 0, len(ids))
	for _, id := range ids {
		if id != "" {
			keys = append(keys, id)
		}
	}
	slices.Sort(keys)
	return slices.Compact(keys)
}
