package app

import (
	"context"
	"time"

	"github.com/walletd/walletd/internal/config"
	"github.com/walletd/walletd/internal/event_bus"
	"github.com/walletd/walletd/internal/money"
	"github.com/walletd/walletd/internal/utils"
	"github.com/walletd/walletd/pkg/budget"
	"github.com/walletd/walletd/pkg/card_link"
	"github.com/walletd/walletd/pkg/category"
	"github.com/walletd/walletd/pkg/insights"
	"github.com/walletd/walletd/pkg/ledger"
)

// Dependencies holds all services and handlers for the application.
type Dependencies struct {
	EventBus *event_bus.EventBus
	Clock    utils.Clock

	CategoryRepo    category.Repository
	CategoryService category.Service
	CategoryHandler *category.Handler

	BudgetRepo    budget.Repository
	BudgetService budget.Service
	BudgetHandler *budget.Handler

	LedgerRepo    ledger.Repository
	LedgerService ledger.Service
	LedgerHandler *ledger.Handler

	CardLinkService card_link.Service
	CardLinkHandler *card_link.Handler

	InsightsService insights.Service
	InsightsHandler *insights.Handler
}

// BuildDependencies initializes and wires all application services and handlers.
func BuildDependencies(cfg config.Application) *Dependencies {
	deps := &Dependencies{}

	deps.EventBus = event_bus.NewEventBus()
	deps.Clock = &utils.SystemClock{}

	deps.CategoryRepo = category.NewMemoryRepository(category.DefaultCategories())
	deps.CategoryService = category.NewService(deps.CategoryRepo)
	deps.CategoryHandler = category.NewHandler(deps.CategoryService)

	deps.BudgetRepo = budget.NewMemoryRepository()
	deps.BudgetService = budget.NewService(deps.BudgetRepo)
	deps.BudgetHandler = budget.NewHandler(deps.BudgetService)

	deps.LedgerRepo = ledger.NewMemoryRepository()
	deps.LedgerService = ledger.NewService(deps.LedgerRepo, deps.EventBus, deps.Clock)
	deps.LedgerHandler = ledger.NewHandler(deps.LedgerService)

	connectDelay := time.Duration(cfg.CardLink.ConnectDelayMs) * time.Millisecond
	deps.CardLinkService = card_link.NewService(deps.LedgerService, deps.Clock, connectDelay)
	deps.CardLinkHandler = card_link.NewHandler(deps.CardLinkService)

	deps.InsightsService = insights.NewService(
		deps.BudgetService,
		deps.LedgerService,
		deps.CategoryService,
		deps.Clock,
		money.FromFloat(cfg.Wallet.MonthlyBudget),
		cfg.Wallet.MonthWindow,
	)
	deps.InsightsHandler = insights.NewHandler(deps.InsightsService)

	subscribeBudgetTracking(deps.EventBus, deps.BudgetService)

	return deps
}

// subscribeBudgetTracking keeps the budget table's running spent figures in
// sync with the ledger. Income, transfers and budget-excluded expenses do not
// count against the budget.
func subscribeBudgetTracking(bus *event_bus.EventBus, budgetService budget.Service) {
	event_bus.SubscribeTyped(bus, event_bus.TransactionAddedEvent, func(ctx context.Context, data event_bus.TransactionAdded) error {
		if data.Kind != string(ledger.KindExpense) || data.ExcludeFromBudget {
			return nil
		}
		key := budget.Key{CategoryKey: data.CategoryKey, Subcategory: data.CategoryName}
		return budgetService.RecordSpending(ctx, key, money.Money(data.AmountCents))
	})
	event_bus.SubscribeTyped(bus, event_bus.TransactionRemovedEvent, func(ctx context.Context, data event_bus.TransactionRemoved) error {
		if data.Kind != string(ledger.KindExpense) || data.ExcludeFromBudget {
			return nil
		}
		key := budget.Key{CategoryKey: data.CategoryKey, Subcategory: data.CategoryName}
		return budgetService.ReleaseSpending(ctx, key, money.Money(data.AmountCents))
	})
}
