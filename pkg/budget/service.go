package budget

import (
	"context"
	"fmt"

	log "github.com/sirupsen/logrus"
	"github.com/walletd/walletd/internal/money"
)

type Totals struct {
	Budgeted money.Money
	Spent    money.Money
}

// Remaining is total budgeted minus total spent across all entries.
func (t Totals) Remaining() money.Money {
	return t.Budgeted - t.Spent
}

// PercentSpent is defined as 0 when nothing is budgeted.
func (t Totals) PercentSpent() float64 {
	if t.Budgeted <= 0 {
		return 0
	}
	return float64(t.Spent) / float64(t.Budgeted) * 100
}

type Service interface {
	// GetEntry returns the entry for the key, defaulting to the zero entry.
	// It never fails on a missing key.
	GetEntry(ctx context.Context, key Key) (Entry, error)
	GetAll(ctx context.Context) (map[Key]Entry, error)
	// SetBudgeted stores the budgeted amount for a single entry. The raw
	// user input is coerced with money.ParseOrZero; invalid input silently
	// becomes 0. Spent is never touched by a budget edit.
	SetBudgeted(ctx context.Context, key Key, rawAmount string) (Entry, error)
	// BulkSetBudgeted replaces the budgeted amount for every provided key
	// in one atomic step, preserving each key's current spent value.
	BulkSetBudgeted(ctx context.Context, rawAmounts map[Key]string) error
	// RecordSpending adds amount to the entry's running spent value.
	RecordSpending(ctx context.Context, key Key, amount money.Money) error
	// ReleaseSpending subtracts amount from the entry's running spent
	// value, clamped at zero.
	ReleaseSpending(ctx context.Context, key Key, amount money.Money) error
	Totals(ctx context.Context) (Totals, error)
}

type ServiceImpl struct {
	repo Repository
}

func NewService(repo Repository) *ServiceImpl {
	return &ServiceImpl{repo: repo}
}

func (s *ServiceImpl) GetEntry(ctx context.Context, key Key) (Entry, error) {
	entry, _, err := s.repo.Get(ctx, key)
	if err != nil {
		return Entry{}, fmt.Errorf("could not read budget entry: %w", err)
	}
	return entry, nil
}

func (s *ServiceImpl) GetAll(ctx context.Context) (map[Key]Entry, error) {
	return s.repo.GetAll(ctx)
}

func (s *ServiceImpl) SetBudgeted(ctx context.Context, key Key, rawAmount string) (Entry, error) {
	amount := money.ParseOrZero(rawAmount)
	entry, _, err := s.repo.Get(ctx, key)
	if err != nil {
		return Entry{}, fmt.Errorf("could not read budget entry: %w", err)
	}
	entry.Budgeted = amount
	if err := s.repo.Put(ctx, key, entry); err != nil {
		return Entry{}, fmt.Errorf("could not store budget entry: %w", err)
	}
	log.Debugf("budget for %s/%s set to %s", key.CategoryKey, key.Subcategory, amount)
	return entry, nil
}

func (s *ServiceImpl) BulkSetBudgeted(ctx context.Context, rawAmounts map[Key]string) error {
	current, err := s.repo.GetAll(ctx)
	if err != nil {
		return fmt.Errorf("could not read budget table: %w", err)
	}
	batch := make(map[Key]Entry, len(rawAmounts))
	for key, raw := range rawAmounts {
		batch[key] = Entry{
			Budgeted: money.ParseOrZero(raw),
			Spent:    current[key].Spent,
		}
	}
	if err := s.repo.PutAll(ctx, batch); err != nil {
		return fmt.Errorf("could not store budget batch: %w", err)
	}
	log.Debugf("bulk budget save applied to %d entries", len(batch))
	return nil
}

func (s *ServiceImpl) RecordSpending(ctx context.Context, key Key, amount money.Money) error {
	entry, _, err := s.repo.Get(ctx, key)
	if err != nil {
		return fmt.Errorf("could not read budget entry: %w", err)
	}
	entry.Spent = entry.Spent.Add(amount)
	return s.repo.Put(ctx, key, entry)
}

func (s *ServiceImpl) ReleaseSpending(ctx context.Context, key Key, amount money.Money) error {
	entry, found, err := s.repo.Get(ctx, key)
	if err != nil {
		return fmt.Errorf("could not read budget entry: %w", err)
	}
	if !found {
		log.Warnf("releasing spending for unknown budget entry %s/%s", key.CategoryKey, key.Subcategory)
		return nil
	}
	entry.Spent = entry.Spent.Sub(amount)
	return s.repo.Put(ctx, key, entry)
}

func (s *ServiceImpl) Totals(ctx context.Context) (Totals, error) {
	entries, err := s.repo.GetAll(ctx)
	if err != nil {
		return Totals{}, fmt.Errorf("could not read budget table: %w", err)
	}
	var totals Totals
	for _, entry := range entries {
		totals.Budgeted += entry.Budgeted
		totals.Spent += entry.Spent
	}
	return totals, nil
}
