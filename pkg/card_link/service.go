package card_link

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/walletd/walletd/internal/utils"
	"github.com/walletd/walletd/pkg/ledger"
)

var (
	ErrConnectionInProgress = errors.New("card connection already in progress")
	ErrAlreadyConnected     = errors.New("card already connected")
	ErrQueueEmpty           = errors.New("no pending transactions")
	ErrNotHead              = errors.New("transaction is not at the head of the queue")
)

type Service interface {
	// Connect simulates linking a card: after a fixed latency the pending
	// queue is filled with the synthetic import batch. It cannot be
	// cancelled once started and must not be invoked re-entrantly.
	Connect(ctx context.Context) (int, error)
	// Peek returns the current head of the queue without consuming it.
	Peek(ctx context.Context) (PendingTransaction, int, error)
	// Accept moves the head unchanged into the ledger. The decision is
	// irrevocable.
	Accept(ctx context.Context, id string) (int, error)
	// RequestEdit removes the head and hands it to the edit flow. If the
	// edit is abandoned the item is gone; completing the edit is a plain
	// ledger add.
	RequestEdit(ctx context.Context, id string) (PendingTransaction, int, error)
	Status(ctx context.Context) Status
}

type ServiceImpl struct {
	mu         sync.Mutex
	connected  bool
	connecting bool
	queue      []PendingTransaction

	delay  time.Duration
	clock  utils.Clock
	ledger ledger.Service
}

func NewService(ledgerService ledger.Service, clock utils.Clock, connectDelay time.Duration) *ServiceImpl {
	return &ServiceImpl{
		delay:  connectDelay,
		clock:  clock,
		ledger: ledgerService,
	}
}

func (s *ServiceImpl) Connect(ctx context.Context) (int, error) {
	s.mu.Lock()
	if s.connecting {
		s.mu.Unlock()
		return 0, ErrConnectionInProgress
	}
	if s.connected {
		s.mu.Unlock()
		return 0, ErrAlreadyConnected
	}
	s.connecting = true
	s.mu.Unlock()

	// Simulated network latency. The triggering control stays disabled on
	// the frontend while this request is in flight.
	time.Sleep(s.delay)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.queue = fixtureBatch(s.clock.Now())
	s.connected = true
	s.connecting = false
	log.Infof("card connected, %d transactions imported for review", len(s.queue))
	return len(s.queue), nil
}

func (s *ServiceImpl) Peek(ctx context.Context) (PendingTransaction, int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.queue) == 0 {
		return PendingTransaction{}, 0, ErrQueueEmpty
	}
	return s.queue[0], len(s.queue), nil
}

func (s *ServiceImpl) Accept(ctx context.Context, id string) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	head, err := s.head(id)
	if err != nil {
		return len(s.queue), err
	}
	if err := s.ledger.Add(ctx, head.Transaction); err != nil {
		return len(s.queue), fmt.Errorf("could not record accepted transaction: %w", err)
	}
	s.pop()
	log.Debugf("pending transaction %s accepted (%s), %d remaining", head.ID, head.Merchant, len(s.queue))
	return len(s.queue), nil
}

func (s *ServiceImpl) RequestEdit(ctx context.Context, id string) (PendingTransaction, int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	head, err := s.head(id)
	if err != nil {
		return PendingTransaction{}, len(s.queue), err
	}
	s.pop()
	log.Debugf("pending transaction %s handed to edit flow, %d remaining", head.ID, len(s.queue))
	return head, len(s.queue), nil
}

func (s *ServiceImpl) Status(ctx context.Context) Status {
	s.mu.Lock()
	defer s.mu.Unlock()
	return Status{
		Connected:  s.connected,
		Connecting: s.connecting,
		Remaining:  len(s.queue),
		Done:       s.connected && len(s.queue) == 0,
	}
}

// head validates that id addresses the current queue head. Items are
// dispositioned strictly one at a time.
func (s *ServiceImpl) head(id string) (PendingTransaction, error) {
	if len(s.queue) == 0 {
		return PendingTransaction{}, ErrQueueEmpty
	}
	if s.queue[0].ID != id {
		return PendingTransaction{}, ErrNotHead
	}
	return s.queue[0], nil
}

func (s *ServiceImpl) pop() {
	s.queue = s.queue[1:]
}
