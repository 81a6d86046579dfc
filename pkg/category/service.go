package category

import (
	"context"
	"errors"
	"fmt"

	log "github.com/sirupsen/logrus"
)

var (
	ErrCategoryNotFound   = errors.New("category not found")
	ErrSubcategoryExists  = errors.New("subcategory already exists")
	ErrSubcategoryMissing = errors.New("subcategory not found")
)

type Service interface {
	GetAll(ctx context.Context) ([]Category, error)
	AddSubcategory(ctx context.Context, categoryKey, name string) error
	RemoveSubcategory(ctx context.Context, categoryKey, name string) error
	// Select returns the name/key pair for the category to use as the
	// composition context of a new transaction.
	Select(ctx context.Context, categoryKey string) (Selection, error)
	// Resolve maps a category key to its display identity. Unknown keys
	// resolve to the fallback category, never to an error.
	Resolve(ctx context.Context, categoryKey string) Category
}

type ServiceImpl struct {
	repo Repository
}

func NewService(repo Repository) *ServiceImpl {
	return &ServiceImpl{repo: repo}
}

func (s *ServiceImpl) GetAll(ctx context.Context) ([]Category, error) {
	return s.repo.GetAll(ctx)
}

func (s *ServiceImpl) AddSubcategory(ctx context.Context, categoryKey, name string) error {
	category, found, err := s.repo.Get(ctx, categoryKey)
	if err != nil {
		return fmt.Errorf("could not load category %q: %w", categoryKey, err)
	}
	if !found {
		return ErrCategoryNotFound
	}
	for _, existing := range category.Subcategories {
		if existing == name {
			return ErrSubcategoryExists
		}
	}
	category.Subcategories = append(category.Subcategories, name)
	updated, err := s.repo.Update(ctx, category)
	if err != nil {
		return fmt.Errorf("could not update category %q: %w", categoryKey, err)
	}
	if !updated {
		return ErrCategoryNotFound
	}
	return nil
}

// RemoveSubcategory removes all value-equal entries from the category's
// subcategory list. Budget entries keyed by the removed subcategory are left
// in place; they become unreachable through the taxonomy but keep their data.
func (s *ServiceImpl) RemoveSubcategory(ctx context.Context, categoryKey, name string) error {
	category, found, err := s.repo.Get(ctx, categoryKey)
	if err != nil {
		return fmt.Errorf("could not load category %q: %w", categoryKey, err)
	}
	if !found {
		return ErrCategoryNotFound
	}
	kept := category.Subcategories[:0]
	removed := false
	for _, existing := range category.Subcategories {
		if existing == name {
			removed = true
			continue
		}
		kept = append(kept, existing)
	}
	if !removed {
		return ErrSubcategoryMissing
	}
	category.Subcategories = kept
	if _, err := s.repo.Update(ctx, category); err != nil {
		return fmt.Errorf("could not update category %q: %w", categoryKey, err)
	}
	return nil
}

func (s *ServiceImpl) Select(ctx context.Context, categoryKey string) (Selection, error) {
	category := s.Resolve(ctx, categoryKey)
	return Selection{Name: category.Name, Key: category.Key}, nil
}

func (s *ServiceImpl) Resolve(ctx context.Context, categoryKey string) Category {
	category, found, err := s.repo.Get(ctx, categoryKey)
	if err != nil || !found {
		if err != nil {
			log.Warnf("failed to resolve category %q, using fallback: %v", categoryKey, err)
		}
		return Fallback(categoryKey)
	}
	return category
}
