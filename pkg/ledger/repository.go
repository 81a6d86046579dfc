package ledger

import (
	"context"
	"sync"
)

type Repository interface {
	// InsertHead puts the transaction at the logical head of the ledger,
	// so the newest addition is displayed first.
	InsertHead(ctx context.Context, transaction Transaction) error
	// Remove deletes by id and reports whether anything was removed.
	Remove(ctx context.Context, id string) (Transaction, bool, error)
	Get(ctx context.Context, id string) (Transaction, bool, error)
	// GetAll returns the ledger in display order, newest first.
	GetAll(ctx context.Context) ([]Transaction, error)
}

// MemoryRepository keeps the ledger as an ordered in-memory slice,
// head-first.
type MemoryRepository struct {
	mu           sync.RWMutex
	transactions []Transaction
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{}
}

func (r *MemoryRepository) InsertHead(ctx context.Context, transaction Transaction) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.transactions = append([]Transaction{transaction}, r.transactions...)
	return nil
}

func (r *MemoryRepository) Remove(ctx context.Context, id string) (Transaction, bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, t := range r.transactions {
		if t.ID == id {
			r.transactions = append(r.transactions[:i], r.transactions[i+1:]...)
			return t, true, nil
		}
	}
	return Transaction{}, false, nil
}

func (r *MemoryRepository) Get(ctx context.Context, id string) (Transaction, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, t := range r.transactions {
		if t.ID == id {
			return t, true, nil
		}
	}
	return Transaction{}, false, nil
}

func (r *MemoryRepository) GetAll(ctx context.Context) ([]Transaction, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]Transaction(nil), r.transactions...), nil
}
