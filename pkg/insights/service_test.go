package insights

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/walletd/walletd/internal/event_bus"
	"github.com/walletd/walletd/internal/money"
	"github.com/walletd/walletd/internal/utils"
	"github.com/walletd/walletd/pkg/budget"
	"github.com/walletd/walletd/pkg/category"
	"github.com/walletd/walletd/pkg/ledger"
)

var ctx = context.Background()

type fixture struct {
	insights *ServiceImpl
	budget   budget.Service
	ledger   ledger.Service
	clock    *utils.MockClock
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	clock := &utils.MockClock{FixedNow: time.Date(2025, 11, 4, 12, 0, 0, 0, time.Local)}
	budgetService := budget.NewService(budget.NewMemoryRepository())
	ledgerService := ledger.NewService(ledger.NewMemoryRepository(), event_bus.NewEventBus(), clock)
	categoryService := category.NewService(category.NewMemoryRepository(category.DefaultCategories()))
	return &fixture{
		insights: NewService(budgetService, ledgerService, categoryService, clock, money.FromFloat(1000), 3),
		budget:   budgetService,
		ledger:   ledgerService,
		clock:    clock,
	}
}

func transaction(id string, kind ledger.Kind, amount float64, categoryKey string, date time.Time) ledger.Transaction {
	return ledger.Transaction{
		ID:           id,
		Kind:         kind,
		Amount:       money.FromFloat(amount),
		CategoryName: categoryKey,
		CategoryKey:  categoryKey,
		Date:         date,
	}
}

func TestServiceImpl_Overview(t *testing.T) {
	t.Run("should report income, spending and budget left", func(t *testing.T) {
		f := newFixture(t)
		require.NoError(t, f.ledger.Add(ctx, transaction("salary", ledger.KindIncome, 2500, "income", f.clock.Now())))
		require.NoError(t, f.budget.RecordSpending(ctx, budget.Key{CategoryKey: "food", Subcategory: "Groceries"}, money.FromFloat(250)))

		// when
		overview, err := f.insights.Overview(ctx, 2025, time.November)

		// then
		assert.NoError(t, err)
		assert.Equal(t, money.FromFloat(2500), overview.Income)
		assert.Equal(t, money.FromFloat(250), overview.Expenses)
		assert.Equal(t, money.FromFloat(1000), overview.Budget)
		assert.Equal(t, money.FromFloat(750), overview.BudgetLeft)
		assert.InDelta(t, 25.0, overview.PercentSpent, 0.001)
	})

	t.Run("should ignore income from other months", func(t *testing.T) {
		f := newFixture(t)
		require.NoError(t, f.ledger.Add(ctx, transaction("old", ledger.KindIncome, 2500, "income", time.Date(2025, 10, 28, 0, 0, 0, 0, time.Local))))

		// when
		overview, err := f.insights.Overview(ctx, 2025, time.November)

		// then
		assert.NoError(t, err)
		assert.Equal(t, money.Money(0), overview.Income)
	})
}

func TestServiceImpl_WeeklySummary(t *testing.T) {
	now := time.Date(2025, 11, 4, 12, 0, 0, 0, time.Local)

	t.Run("should build all four steps", func(t *testing.T) {
		f := newFixture(t)
		require.NoError(t, f.ledger.Add(ctx, transaction("t1", ledger.KindExpense, 45.99, "food", now)))
		require.NoError(t, f.ledger.Add(ctx, transaction("t2", ledger.KindExpense, 120, "housing", now.AddDate(0, 0, -2))))
		require.NoError(t, f.ledger.Add(ctx, transaction("t3", ledger.KindExpense, 30, "food", now.AddDate(0, 0, -3))))

		// when
		steps, err := f.insights.WeeklySummary(ctx)

		// then
		assert.NoError(t, err)
		require.Len(t, steps, 4)
		assert.Equal(t, "Your Top Category", steps[0].Title)
		assert.Equal(t, "Housing", steps[0].Value)
		assert.Equal(t, "🏠", steps[0].Emoji)
		assert.Equal(t, money.FromFloat(120), steps[0].Amount)
		assert.Equal(t, "Biggest Transaction", steps[1].Title)
		assert.Equal(t, money.FromFloat(120), steps[1].Amount)
		assert.Equal(t, "💰", steps[1].Emoji)
		assert.Equal(t, "Money Saved", steps[2].Title)
		assert.Equal(t, "🐷", steps[2].Emoji)
		assert.Equal(t, "Weekly Total", steps[3].Title)
		assert.Equal(t, "📊", steps[3].Emoji)
		assert.Equal(t, "3 transactions", steps[3].Value)
		assert.Equal(t, money.FromFloat(195.99), steps[3].Amount)
	})

	t.Run("should only count the last seven calendar days", func(t *testing.T) {
		f := newFixture(t)
		require.NoError(t, f.ledger.Add(ctx, transaction("in", ledger.KindExpense, 10, "food", now.AddDate(0, 0, -6))))
		require.NoError(t, f.ledger.Add(ctx, transaction("out", ledger.KindExpense, 10, "food", now.AddDate(0, 0, -7))))

		// when
		steps, err := f.insights.WeeklySummary(ctx)

		// then
		assert.NoError(t, err)
		assert.Equal(t, "1 transactions", steps[3].Value)
		assert.Equal(t, money.FromFloat(10), steps[3].Amount)
	})

	t.Run("should skip income and budget-excluded transactions", func(t *testing.T) {
		f := newFixture(t)
		require.NoError(t, f.ledger.Add(ctx, transaction("salary", ledger.KindIncome, 2500, "income", now)))
		excluded := transaction("rent", ledger.KindExpense, 800, "housing", now)
		excluded.ExcludeFromBudget = true
		require.NoError(t, f.ledger.Add(ctx, excluded))
		require.NoError(t, f.ledger.Add(ctx, transaction("coffee", ledger.KindExpense, 8.50, "food", now)))

		// when
		steps, err := f.insights.WeeklySummary(ctx)

		// then
		assert.NoError(t, err)
		assert.Equal(t, money.FromFloat(8.50), steps[3].Amount)
	})

	t.Run("should break a biggest transaction tie towards the earliest record", func(t *testing.T) {
		f := newFixture(t)
		require.NoError(t, f.ledger.Add(ctx, transaction("first", ledger.KindExpense, 50, "food", now)))
		require.NoError(t, f.ledger.Add(ctx, transaction("second", ledger.KindExpense, 50, "housing", now)))

		// when
		steps, err := f.insights.WeeklySummary(ctx)

		// then
		assert.NoError(t, err)
		assert.Equal(t, "food", steps[1].Value)
	})

	t.Run("should resolve an unknown category through the fallback", func(t *testing.T) {
		f := newFixture(t)
		require.NoError(t, f.ledger.Add(ctx, transaction("latte", ledger.KindExpense, 8.50, "food-drink", now)))

		// when
		steps, err := f.insights.WeeklySummary(ctx)

		// then
		assert.NoError(t, err)
		assert.Equal(t, "Uncategorized", steps[0].Value)
		assert.Equal(t, "📦", steps[0].Emoji)
	})

	t.Run("should degrade gracefully on an empty week", func(t *testing.T) {
		f := newFixture(t)

		// when
		steps, err := f.insights.WeeklySummary(ctx)

		// then
		assert.NoError(t, err)
		require.Len(t, steps, 4)
		assert.Equal(t, "No spending this week", steps[0].Value)
		assert.Equal(t, "No spending this week", steps[1].Value)
		assert.Equal(t, "0 transactions", steps[3].Value)
	})
}

func TestServiceImpl_MonthWindow(t *testing.T) {
	t.Run("should list the window oldest first ending with the current month", func(t *testing.T) {
		f := newFixture(t)

		// when
		months := f.insights.MonthWindow(ctx)

		// then
		require.Len(t, months, 3)
		assert.Equal(t, MonthRef{Year: 2025, Month: time.September, Label: "September 2025"}, months[0])
		assert.Equal(t, MonthRef{Year: 2025, Month: time.October, Label: "October 2025"}, months[1])
		assert.Equal(t, MonthRef{Year: 2025, Month: time.November, Label: "November 2025"}, months[2])
	})

	t.Run("should cross a year boundary", func(t *testing.T) {
		f := newFixture(t)
		f.clock.SetNow(time.Date(2026, 1, 15, 0, 0, 0, 0, time.Local))

		// when
		months := f.insights.MonthWindow(ctx)

		// then
		require.Len(t, months, 3)
		assert.Equal(t, MonthRef{Year: 2025, Month: time.November, Label: "November 2025"}, months[0])
		assert.Equal(t, MonthRef{Year: 2026, Month: time.January, Label: "January 2026"}, months[2])
	})
}
