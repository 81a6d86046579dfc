package ledger

import (
	"context"
	"errors"
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/walletd/walletd/internal/event_bus"
	"github.com/walletd/walletd/internal/utils"
)

var (
	ErrZeroAmount  = errors.New("transaction amount must be positive")
	ErrInvalidKind = errors.New("invalid transaction kind")
	ErrMissingID   = errors.New("transaction id is required")
	ErrNotFound    = errors.New("transaction not found")
)

type Service interface {
	// Add inserts the transaction at the head of the ledger. Id uniqueness
	// is the caller's responsibility.
	Add(ctx context.Context, transaction Transaction) error
	// Remove deletes by id; removing an absent id is a no-op reported as
	// false.
	Remove(ctx context.Context, id string) (bool, error)
	// Replace is the edit operation: the record with oldID is removed and
	// the replacement is inserted at the head as a fresh record.
	Replace(ctx context.Context, oldID string, replacement Transaction) error
	GetAll(ctx context.Context) ([]Transaction, error)
	// FilterByMonth returns the transactions of one calendar month,
	// display order preserved.
	FilterByMonth(ctx context.Context, year int, month time.Month) ([]Transaction, error)
	// GroupedByDate clusters one month's transactions under display date
	// labels ("Today", "Yesterday", or the date itself).
	GroupedByDate(ctx context.Context, year int, month time.Month) ([]DateGroup, error)
}

type ServiceImpl struct {
	repo  Repository
	bus   *event_bus.EventBus
	clock utils.Clock
}

func NewService(repo Repository, bus *event_bus.EventBus, clock utils.Clock) *ServiceImpl {
	return &ServiceImpl{repo: repo, bus: bus, clock: clock}
}

func validate(transaction Transaction) error {
	if transaction.ID == "" {
		return ErrMissingID
	}
	if !transaction.Kind.IsValid() {
		return fmt.Errorf("%w: %q", ErrInvalidKind, transaction.Kind)
	}
	if transaction.Amount <= 0 {
		return ErrZeroAmount
	}
	return nil
}

func (s *ServiceImpl) Add(ctx context.Context, transaction Transaction) error {
	if err := validate(transaction); err != nil {
		return err
	}
	if err := s.repo.InsertHead(ctx, transaction); err != nil {
		return fmt.Errorf("could not store transaction: %w", err)
	}
	log.Debugf("transaction %s added: %s %s on %s", transaction.ID, transaction.Kind, transaction.Amount, transaction.CategoryName)
	s.publishAdded(ctx, transaction)
	return nil
}

func (s *ServiceImpl) Remove(ctx context.Context, id string) (bool, error) {
	removed, found, err := s.repo.Remove(ctx, id)
	if err != nil {
		return false, fmt.Errorf("could not remove transaction: %w", err)
	}
	if !found {
		log.Debugf("transaction %s not removed, it does not exist", id)
		return false, nil
	}
	s.publishRemoved(ctx, removed)
	return true, nil
}

func (s *ServiceImpl) Replace(ctx context.Context, oldID string, replacement Transaction) error {
	// Validate before removing anything. A rejected replacement must leave
	// the old record in place and publish no events.
	if err := validate(replacement); err != nil {
		return err
	}
	removed, found, err := s.repo.Remove(ctx, oldID)
	if err != nil {
		return fmt.Errorf("could not remove transaction %s: %w", oldID, err)
	}
	if !found {
		return ErrNotFound
	}
	s.publishRemoved(ctx, removed)
	return s.Add(ctx, replacement)
}

func (s *ServiceImpl) GetAll(ctx context.Context) ([]Transaction, error) {
	return s.repo.GetAll(ctx)
}

func (s *ServiceImpl) FilterByMonth(ctx context.Context, year int, month time.Month) ([]Transaction, error) {
	all, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	filtered := make([]Transaction, 0, len(all))
	for _, t := range all {
		if t.Date.Year() == year && t.Date.Month() == month {
			filtered = append(filtered, t)
		}
	}
	return filtered, nil
}

func (s *ServiceImpl) GroupedByDate(ctx context.Context, year int, month time.Month) ([]DateGroup, error) {
	transactions, err := s.FilterByMonth(ctx, year, month)
	if err != nil {
		return nil, err
	}
	return GroupByDateLabel(transactions, s.clock.Now()), nil
}

func (s *ServiceImpl) publishAdded(ctx context.Context, t Transaction) {
	err := s.bus.Publish(event_bus.NewEvent(ctx, event_bus.TransactionAddedEvent, event_bus.TransactionAdded{
		ID:                t.ID,
		Kind:              string(t.Kind),
		AmountCents:       int64(t.Amount),
		CategoryKey:       t.CategoryKey,
		CategoryName:      t.CategoryName,
		Date:              t.Date,
		ExcludeFromBudget: t.ExcludeFromBudget,
	}))
	if err != nil {
		log.Warnf("transaction added event not fully processed: %v", err)
	}
}

func (s *ServiceImpl) publishRemoved(ctx context.Context, t Transaction) {
	err := s.bus.Publish(event_bus.NewEvent(ctx, event_bus.TransactionRemovedEvent, event_bus.TransactionRemoved{
		ID:                t.ID,
		Kind:              string(t.Kind),
		AmountCents:       int64(t.Amount),
		CategoryKey:       t.CategoryKey,
		CategoryName:      t.CategoryName,
		Date:              t.Date,
		ExcludeFromBudget: t.ExcludeFromBudget,
	}))
	if err != nil {
		log.Warnf("transaction removed event not fully processed: %v", err)
	}
}
