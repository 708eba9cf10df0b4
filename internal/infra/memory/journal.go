package memory

import "sync"

// journal is an append-only list safe for concurrent use.
type journal[T any] struct {
	mu    sync.RWMutex
	items []T
}

func (j *journal[T]) append(items ...T) {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.items = append(j.items, items...)
}

// snapshot returns a copy so callers can scan without holding the lock.
func (j *journal[T]) snapshot() []T {
	j.mu.RLock()
	defer j.mu.RUnlock()

	out := make([]T, len(j.items))
	copy(out, j.items)
	return out
}

func (j *journal[T]) len() int {
	j.mu.RLock()
	defer j.mu.RUnlock()
	return len(j.items)
}
