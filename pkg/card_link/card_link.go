package card_link

import (
	"fmt"
	"time"

	"github.com/walletd/walletd/internal/money"
	"github.com/walletd/walletd/pkg/ledger"
)

// PendingTransaction is an unreviewed import candidate: a transaction plus
// the merchant details the card feed reported. It only exists between import
// and disposition.
type PendingTransaction struct {
	ledger.Transaction
	Merchant    string
	Description string
}

// Status describes the card link as seen by the frontend. Done becomes true
// exactly when the last pending item has been dispositioned.
type Status struct {
	Connected  bool
	Connecting bool
	Remaining  int
	Done       bool
}

// fixtureBatch is the deterministic set of synthetic transactions the
// simulated card link produces on connect. Two items deliberately reference
// the unknown "food-drink" category key to exercise the fallback display.
func fixtureBatch(now time.Time) []PendingTransaction {
	batchID := now.UnixMilli()
	items := []struct {
		amount      float64
		category    string
		categoryKey string
		merchant    string
		description string
	}{
		{45.99, "Groceries", "food", "Whole Foods Market", "Weekly groceries"},
		{12.50, "Restaurant", "food", "Local Cafe", "Lunch"},
		{89.00, "Subscription", "housing", "Netflix", "Monthly subscription"},
		{25.00, "Gym", "housing", "FitLife Gym", "Monthly membership"},
		{15.99, "Internet", "housing", "ISP Provider", "Monthly internet bill"},
		{67.50, "Restaurant", "food-drink", "Olive Garden", "Dinner with friends"},
		{120.00, "Utilities", "housing", "Electric Company", "Monthly electricity bill"},
		{8.50, "Cafe", "food-drink", "Local Coffee Shop", "Afternoon latte"},
	}

	batch := make([]PendingTransaction, 0, len(items))
	for i, item := range items {
		batch = append(batch, PendingTransaction{
			Transaction: ledger.Transaction{
				ID:                fmt.Sprintf("%d%d", batchID, i+1),
				Kind:              ledger.KindExpense,
				Amount:            money.FromFloat(item.amount),
				CategoryName:      item.category,
				CategoryKey:       item.categoryKey,
				Date:              now,
				ExcludeFromBudget: false,
			},
			Merchant:    item.merchant,
			Description: item.description,
		})
	}
	return batch
}
