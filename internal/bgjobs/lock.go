package bgjobs

import (
	"sync"
)

// KeyLocker hands out one mutex per key. Used to serialize
// read-modify-write sequences on a single stored value.
// It only serializes callers within this process, not separate
// notepick processes sharing the same state backend.
type KeyLocker struct {
	mu sync.Mutex
	m  map[string]*sync.Mutex
}

func NewKeyLocker() *KeyLocker {
	return &KeyLocker{
		m: make(map[string]*sync.Mutex),
	}
}

func (l *KeyLocker) get(key string) *sync.Mutex {
	l.mu.Lock()
	defer l.mu.Unlock()

	lock, ok := l.m[key]
	if !ok {
		lock = &sync.Mutex{}
		l.m[key] = lock
	}
	return lock
}

// Lock takes the lock for key and returns the unlock func.
func (l *KeyLocker) Lock(key string) func() {
	lock := l.get(key)
	lock.Lock()
	return lock.Unlock
}
