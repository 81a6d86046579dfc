package budget

import "github.com/walletd/walletd/internal/money"

// Key identifies one budget entry: a subcategory within a category.
type Key struct {
	CategoryKey string
	Subcategory string
}

// Entry is the budgeted/spent pair for one subcategory. A missing entry reads
// as the zero Entry; entries spring into existence on first edit.
type Entry struct {
	Budgeted money.Money
	Spent    money.Money
}

// Remaining is how much of the entry's budget is left.
func (e Entry) Remaining() money.Money {
	return e.Budgeted - e.Spent
}

// PercentSpent is the share of the entry's budget already spent, 0 when no
// budget is set.
func (e Entry) PercentSpent() float64 {
	if e.Budgeted <= 0 {
		return 0
	}
	return float64(e.Spent) / float64(e.Budgeted) * 100
}
