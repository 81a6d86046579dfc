package budget

import (
	"context"
	"sync"
)

type Repository interface {
	Get(ctx context.Context, key Key) (Entry, bool, error)
	Put(ctx context.Context, key Key, entry Entry) error
	// PutAll commits every entry in one step. Readers never observe a
	// partially applied batch.
	PutAll(ctx context.Context, entries map[Key]Entry) error
	GetAll(ctx context.Context) (map[Key]Entry, error)
}

// MemoryRepository holds the budget table in memory, guarded so that bulk
// writes are atomic with respect to concurrent readers.
type MemoryRepository struct {
	mu      sync.RWMutex
	entries map[Key]Entry
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{entries: make(map[Key]Entry)}
}

func (r *MemoryRepository) Get(ctx context.Context, key Key) (Entry, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	entry, ok := r.entries[key]
	return entry, ok, nil
}

func (r *MemoryRepository) Put(ctx context.Context, key Key, entry Entry) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries[key] = entry
	return nil
}

func (r *MemoryRepository) PutAll(ctx context.Context, entries map[Key]Entry) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for key, entry := range entries {
		r.entries[key] = entry
	}
	return nil
}

func (r *MemoryRepository) GetAll(ctx context.Context) (map[Key]Entry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	snapshot := make(map[Key]Entry, len(r.entries))
	for key, entry := range r.entries {
		snapshot[key] = entry
	}
	return snapshot, nil
}
