package ledger

import (
	"sync"
)

// lockRegistry hands out one mutex per member. Members of different
// families, or different members of one family, never wait on each other.
// Entries are never evicted, which keeps one mutex per member written since
// startup.
type lockRegistry struct {
	mu    sync.Mutex
	locks map[Scope]*sync.Mutex
}

func newLockRegistry() *lockRegistry {
	return &lockRegistry{
		locks: make(map[Scope]*sync.Mutex),
	}
}

// lock acquires the member's mutex and returns the function releasing it.
func (r *lockRegistry) lock(scope Scope) func() {
	r.mu.Lock()
	l, ok := r.locks[scope]
	if !ok {
		l = &sync.Mutex{}
		r.locks[scope] = l
	}
	r.mu.Unlock()

	l.Lock()
	return l.Unlock
}
