package session

import (
	"context"
	"sync"

	"github.com/dmitrijs2005/geoattend/internal/server/models"
)

// Key identifies one session.
type Key struct {
	EmployeeID  string
	SessionType models.SessionType
	Day         models.Day
}

// Locker is a keyed lock table. Holders of different keys never contend;
// entries are reference counted and removed once the last waiter leaves, so
// the table only holds keys with in-flight requests.
type Locker struct {
	mu    sync.Mutex
	locks map[Key]*keyLock
}

type keyLock struct {
	sem  chan struct{}
	refs int
}

// NewLocker returns an empty lock table.
func NewLocker() *Locker {
	return &Locker{locks: make(map[Key]*keyLock)}
}

// Lock blocks until k is held or ctx is done. On success the returned
// function releases the lock and must be called exactly once.
func (l *Locker) Lock(ctx context.Context, k Key) (func(), error) {
	l.mu.Lock()
	kl, ok := l.locks[k]
	if !ok {
		kl = &keyLock{sem: make(chan struct{}, 1)}
		l.locks[k] = kl
	}
	kl.refs++
	l.mu.Unlock()

	select {
	case kl.sem <- struct{}{}:
		var once sync.Once
		return func() {
			once.Do(func() {
				<-kl.sem
				l.release(k, kl)
			})
		}, nil
	case <-ctx.Done():
		l.release(k, kl)
		return nil, ctx.Err()
	}
}

func (l *Locker) release(k Key, kl *keyLock) {
	l.mu.Lock()
	defer l.mu.Unlock()

	kl.refs--
	if kl.refs == 0 {
		delete(l.locks, k)
	}
}

// Len returns the number of keys currently tracked.
func (l *Locker) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.locks)
}
