package insights

import (
	"context"
	"fmt"
	"time"

	"github.com/walletd/walletd/internal/money"
	"github.com/walletd/walletd/internal/utils"
	"github.com/walletd/walletd/pkg/budget"
	"github.com/walletd/walletd/pkg/category"
	"github.com/walletd/walletd/pkg/ledger"
)

type Service interface {
	// Overview aggregates one month of the ledger against the fixed monthly
	// budget.
	Overview(ctx context.Context, year int, month time.Month) (Overview, error)
	// WeeklySummary builds the four-step story over the last seven calendar
	// days ending today.
	WeeklySummary(ctx context.Context) ([]SummaryStep, error)
	// MonthWindow lists the browsable months, oldest first, ending with the
	// current one.
	MonthWindow(ctx context.Context) []MonthRef
}

type ServiceImpl struct {
	budget        budget.Service
	ledger        ledger.Service
	categories    category.Service
	clock         utils.Clock
	monthlyBudget money.Money
	monthWindow   int
}

func NewService(
	budgetService budget.Service,
	ledgerService ledger.Service,
	categoryService category.Service,
	clock utils.Clock,
	monthlyBudget money.Money,
	monthWindow int,
) *ServiceImpl {
	return &ServiceImpl{
		budget:        budgetService,
		ledger:        ledgerService,
		categories:    categoryService,
		clock:         clock,
		monthlyBudget: monthlyBudget,
		monthWindow:   monthWindow,
	}
}

func (s *ServiceImpl) Overview(ctx context.Context, year int, month time.Month) (Overview, error) {
	transactions, err := s.ledger.FilterByMonth(ctx, year, month)
	if err != nil {
		return Overview{}, fmt.Errorf("could not read ledger for %d-%02d: %w", year, month, err)
	}
	totals, err := s.budget.Totals(ctx)
	if err != nil {
		return Overview{}, fmt.Errorf("could not read budget totals: %w", err)
	}

	var income money.Money
	for _, t := range transactions {
		if t.Kind == ledger.KindIncome {
			income += t.Amount
		}
	}

	overview := Overview{
		Year:       year,
		Month:      month,
		Income:     income,
		Expenses:   totals.Spent,
		Budget:     s.monthlyBudget,
		BudgetLeft: s.monthlyBudget - totals.Spent,
	}
	if s.monthlyBudget > 0 {
		overview.PercentSpent = float64(totals.Spent) / float64(s.monthlyBudget) * 100
	}
	return overview, nil
}

func (s *ServiceImpl) WeeklySummary(ctx context.Context) ([]SummaryStep, error) {
	all, err := s.ledger.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("could not read ledger: %w", err)
	}

	now := s.clock.Now()
	weekStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location()).AddDate(0, 0, -6)
	weekEnd := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location()).AddDate(0, 0, 1)

	var (
		expenses []ledger.Transaction
		total    money.Money
	)
	for _, t := range all {
		if t.Kind != ledger.KindExpense || !t.CountsAgainstBudget() {
			continue
		}
		if t.Date.Before(weekStart) || !t.Date.Before(weekEnd) {
			continue
		}
		expenses = append(expenses, t)
		total += t.Amount
	}

	totals, err := s.budget.Totals(ctx)
	if err != nil {
		return nil, fmt.Errorf("could not read budget totals: %w", err)
	}

	return []SummaryStep{
		s.topCategoryStep(ctx, expenses),
		biggestTransactionStep(expenses),
		{
			Title:    "Money Saved",
			Subtitle: "You saved this week",
			Value:    "You're doing great!",
			Amount:   s.monthlyBudget.Sub(totals.Spent),
			Emoji:    "🐷",
		},
		{
			Title:    "Weekly Total",
			Subtitle: "Total spending this week",
			Value:    fmt.Sprintf("%d transactions", len(expenses)),
			Amount:   total,
			Emoji:    "📊",
		},
	}, nil
}

func (s *ServiceImpl) topCategoryStep(ctx context.Context, expenses []ledger.Transaction) SummaryStep {
	perCategory := make(map[string]money.Money)
	for _, t := range expenses {
		perCategory[t.CategoryKey] += t.Amount
	}

	var (
		topKey    string
		topAmount money.Money
		found     bool
	)
	for key, amount := range perCategory {
		if !found || amount > topAmount || (amount == topAmount && key < topKey) {
			topKey, topAmount, found = key, amount, true
		}
	}

	step := SummaryStep{
		Title:    "Your Top Category",
		Subtitle: "You spent the most on",
		Emoji:    "📊",
	}
	if !found {
		step.Value = "No spending this week"
		return step
	}
	resolved := s.categories.Resolve(ctx, topKey)
	step.Value = resolved.Name
	step.Amount = topAmount
	step.Emoji = resolved.Icon
	return step
}

// biggestTransactionStep picks the largest single expense of the week. The
// ledger is newest first, so >= makes the earliest recorded expense win an
// exact tie.
func biggestTransactionStep(expenses []ledger.Transaction) SummaryStep {
	step := SummaryStep{
		Title:    "Biggest Transaction",
		Subtitle: "Your largest expense was",
		Emoji:    "💰",
	}
	if len(expenses) == 0 {
		step.Value = "No spending this week"
		return step
	}
	biggest := expenses[0]
	for _, t := range expenses[1:] {
		if t.Amount >= biggest.Amount {
			biggest = t
		}
	}
	step.Value = biggest.CategoryName
	step.Amount = biggest.Amount
	return step
}

func (s *ServiceImpl) MonthWindow(ctx context.Context) []MonthRef {
	now := s.clock.Now()
	window := s.monthWindow
	if window < 1 {
		window = 1
	}
	months := make([]MonthRef, 0, window)
	for i := window - 1; i >= 0; i-- {
		ref := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location()).AddDate(0, -i, 0)
		months = append(months, MonthRef{
			Year:  ref.Year(),
			Month: ref.Month(),
			Label: ref.Format("January 2006"),
		})
	}
	return months
}
