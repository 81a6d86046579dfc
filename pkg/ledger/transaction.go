package ledger

import (
	"time"

	"github.com/walletd/walletd/internal/money"
)

// Kind classifies a transaction.
type Kind string

const (
	KindExpense  Kind = "expense"
	KindIncome   Kind = "income"
	KindTransfer Kind = "transfer"
)

func (k Kind) IsValid() bool {
	switch k {
	case KindExpense, KindIncome, KindTransfer:
		return true
	}
	return false
}

// Transaction is one confirmed ledger entry. It is immutable once added;
// edits go through Replace, which removes the old record and inserts the new
// one. CategoryKey is a weak reference into the taxonomy and may be orphaned.
type Transaction struct {
	ID                string
	Kind              Kind
	Amount            money.Money
	CategoryName      string
	CategoryKey       string
	Note              string
	Date              time.Time
	ExcludeFromBudget bool
}

// CountsAgainstBudget reports whether the transaction should move a budget
// entry's spent value.
func (t Transaction) CountsAgainstBudget() bool {
	return t.Kind == KindExpense && !t.ExcludeFromBudget
}

// DateGroup is one display cluster of transactions sharing a date label.
type DateGroup struct {
	Label        string
	Transactions []Transaction
}

// DateLabel renders the grouping label for a transaction date. The date's own
// calendar day is compared against now: today and yesterday get relative
// labels, everything else is formatted from the date itself.
func DateLabel(date, now time.Time) string {
	if sameDay(date, now) {
		return "Today"
	}
	if sameDay(date, now.AddDate(0, 0, -1)) {
		return "Yesterday"
	}
	return date.Format("Monday, 02 Jan")
}

// GroupByDateLabel clusters transactions by their date label, keeping both the
// group order and the order within each group as given.
func GroupByDateLabel(transactions []Transaction, now time.Time) []DateGroup {
	var groups []DateGroup
	index := make(map[string]int)
	for _, t := range transactions {
		label := DateLabel(t.Date, now)
		i, ok := index[label]
		if !ok {
			i = len(groups)
			index[label] = i
			groups = append(groups, DateGroup{Label: label})
		}
		groups[i].Transactions = append(groups[i].Transactions, t)
	}
	return groups
}

func sameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}
