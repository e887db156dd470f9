package lock

import "sync"

// KeyedMutex serializes critical sections per key. Booking creation locks
// the staff member's key across the conflict-check-then-insert sequence, so
// requests for different staff proceed fully in parallel while racing
// requests for the same staff observe each other's commits.
//
// Mutexes are never evicted; the key space (staff ids) is small and stable.
type KeyedMutex struct {
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func NewKeyedMutex() *KeyedMutex {
	return &KeyedMutex{locks: make(map[string]*sync.Mutex)}
}

func (k *KeyedMutex) get(key string) *sync.Mutex {
	k.mu.Lock()
	defer k.mu.Unlock()

	m, ok := k.locks[key]
	if !ok {
		m = &sync.Mutex{}
		k.locks[key] = m
	}
	return m
}

func (k *KeyedMutex) Lock(key string) {
	k.get(key).Lock()
}

func (k *KeyedMutex) Unlock(key string) {
	k.get(key).Unlock()
}
