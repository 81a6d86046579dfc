package insights

import (
	"time"

	"github.com/walletd/walletd/internal/money"
)

// Overview summarizes one calendar month against the fixed monthly budget.
type Overview struct {
	Year         int
	Month        time.Month
	Income       money.Money
	Expenses     money.Money
	Budget       money.Money
	BudgetLeft   money.Money
	PercentSpent float64
}

// SummaryStep is one card of the weekly summary story. Amount carries the
// monetary figure where the step has one, Value the non-monetary figure
// (a name or a count).
type SummaryStep struct {
	Title    string
	Subtitle string
	Value    string
	Amount   money.Money
	Emoji    string
}

// MonthRef identifies one month of the browsable history window.
type MonthRef struct {
	Year  int
	Month time.Month
	Label string
}
