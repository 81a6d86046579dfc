package category

import (
	"context"
	"sync"
)

type Repository interface {
	// GetAll returns all categories in their fixed display order.
	GetAll(ctx context.Context) ([]Category, error)
	Get(ctx context.Context, key string) (Category, bool, error)
	// Update replaces the stored category with the same key.
	Update(ctx context.Context, category Category) (bool, error)
}

// MemoryRepository keeps the taxonomy in memory. The wallet has no persistence
// layer; every run starts from the seeded categories.
type MemoryRepository struct {
	mu         sync.RWMutex
	order      []string
	categories map[string]Category
}

func NewMemoryRepository(seed []Category) *MemoryRepository {
	repo := &MemoryRepository{
		categories: make(map[string]Category, len(seed)),
	}
	for _, c := range seed {
		repo.order = append(repo.order, c.Key)
		repo.categories[c.Key] = c
	}
	return repo
}

func (r *MemoryRepository) GetAll(ctx context.Context) ([]Category, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	categories := make([]Category, 0, len(r.order))
	for _, key := range r.order {
		categories = append(categories, copyCategory(r.categories[key]))
	}
	return categories, nil
}

func (r *MemoryRepository) Get(ctx context.Context, key string) (Category, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	category, ok := r.categories[key]
	if !ok {
		return Category{}, false, nil
	}
	return copyCategory(category), true, nil
}

func (r *MemoryRepository) Update(ctx context.Context, category Category) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.categories[category.Key]; !ok {
		return false, nil
	}
	r.categories[category.Key] = copyCategory(category)
	return true, nil
}

func copyCategory(c Category) Category {
	c.Subcategories = append([]string(nil), c.Subcategories...)
	return c
}
