package budget

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/walletd/walletd/internal/money"
)

var ctx = context.Background()

func newTestService() *ServiceImpl {
	return NewService(NewMemoryRepository())
}

func TestServiceImpl_GetEntry(t *testing.T) {
	t.Run("should default to zero entry for a missing key", func(t *testing.T) {
		service := newTestService()

		// when
		entry, err := service.GetEntry(ctx, Key{"food", "Groceries"})

		// then
		assert.NoError(t, err)
		assert.Equal(t, Entry{}, entry)
	})
}

func TestServiceImpl_SetBudgeted(t *testing.T) {
	t.Run("should store the parsed amount", func(t *testing.T) {
		service := newTestService()

		// when
		entry, err := service.SetBudgeted(ctx, Key{"housing", "Rent"}, "200")

		// then
		assert.NoError(t, err)
		assert.Equal(t, money.Money(20000), entry.Budgeted)
	})

	t.Run("should coerce invalid input to zero instead of failing", func(t *testing.T) {
		service := newTestService()
		_, err := service.SetBudgeted(ctx, Key{"housing", "Rent"}, "150")
		require.NoError(t, err)

		// when
		entry, err := service.SetBudgeted(ctx, Key{"housing", "Rent"}, "not a number")

		// then
		assert.NoError(t, err)
		assert.Equal(t, money.Money(0), entry.Budgeted)
	})

	t.Run("should not touch spent", func(t *testing.T) {
		service := newTestService()
		key := Key{"food", "Groceries"}
		require.NoError(t, service.RecordSpending(ctx, key, money.FromFloat(30)))

		// when
		entry, err := service.SetBudgeted(ctx, key, "100")

		// then
		assert.NoError(t, err)
		assert.Equal(t, money.FromFloat(30), entry.Spent)
	})
}

func TestServiceImpl_BulkSetBudgeted(t *testing.T) {
	t.Run("should replace budgeted for every key and preserve spent", func(t *testing.T) {
		service := newTestService()
		rent := Key{"housing", "Rent"}
		groceries := Key{"food", "Groceries"}
		_, err := service.SetBudgeted(ctx, rent, "200")
		require.NoError(t, err)
		require.NoError(t, service.RecordSpending(ctx, rent, money.FromFloat(200)))
		require.NoError(t, service.RecordSpending(ctx, groceries, money.FromFloat(30)))

		// when
		err = service.BulkSetBudgeted(ctx, map[Key]string{
			rent:      "250",
			groceries: "50",
			{"savings", "Vacation fund"}: "garbage",
		})

		// then
		assert.NoError(t, err)
		rentEntry, _ := service.GetEntry(ctx, rent)
		assert.Equal(t, money.FromFloat(250), rentEntry.Budgeted)
		assert.Equal(t, money.FromFloat(200), rentEntry.Spent)
		groceriesEntry, _ := service.GetEntry(ctx, groceries)
		assert.Equal(t, money.FromFloat(50), groceriesEntry.Budgeted)
		assert.Equal(t, money.FromFloat(30), groceriesEntry.Spent)
		newEntry, _ := service.GetEntry(ctx, Key{"savings", "Vacation fund"})
		assert.Equal(t, money.Money(0), newEntry.Budgeted)
		assert.Equal(t, money.Money(0), newEntry.Spent)
	})

	t.Run("should leave untouched keys alone", func(t *testing.T) {
		service := newTestService()
		gym := Key{"housing", "Gym"}
		_, err := service.SetBudgeted(ctx, gym, "10")
		require.NoError(t, err)

		// when
		err = service.BulkSetBudgeted(ctx, map[Key]string{{"food", "Restaurant"}: "40"})

		// then
		assert.NoError(t, err)
		entry, _ := service.GetEntry(ctx, gym)
		assert.Equal(t, money.FromFloat(10), entry.Budgeted)
	})
}

func TestServiceImpl_Spending(t *testing.T) {
	t.Run("should accumulate recorded spending", func(t *testing.T) {
		service := newTestService()
		key := Key{"food", "Groceries"}

		// when
		require.NoError(t, service.RecordSpending(ctx, key, money.FromFloat(30)))
		require.NoError(t, service.RecordSpending(ctx, key, money.FromFloat(12.5)))

		// then
		entry, _ := service.GetEntry(ctx, key)
		assert.Equal(t, money.FromFloat(42.5), entry.Spent)
	})

	t.Run("should clamp released spending at zero", func(t *testing.T) {
		service := newTestService()
		key := Key{"food", "Groceries"}
		require.NoError(t, service.RecordSpending(ctx, key, money.FromFloat(10)))

		// when
		require.NoError(t, service.ReleaseSpending(ctx, key, money.FromFloat(25)))

		// then
		entry, _ := service.GetEntry(ctx, key)
		assert.Equal(t, money.Money(0), entry.Spent)
	})

	t.Run("should ignore release for an unknown entry", func(t *testing.T) {
		service := newTestService()

		// when
		err := service.ReleaseSpending(ctx, Key{"ghost", "Nothing"}, money.FromFloat(5))

		// then
		assert.NoError(t, err)
		entry, _ := service.GetEntry(ctx, Key{"ghost", "Nothing"})
		assert.Equal(t, Entry{}, entry)
	})
}

func TestServiceImpl_Totals(t *testing.T) {
	t.Run("should satisfy remaining = budgeted - spent", func(t *testing.T) {
		service := newTestService()
		_, err := service.SetBudgeted(ctx, Key{"housing", "Rent"}, "200")
		require.NoError(t, err)
		_, err = service.SetBudgeted(ctx, Key{"housing", "Gym"}, "10")
		require.NoError(t, err)
		_, err = service.SetBudgeted(ctx, Key{"food", "Groceries"}, "30")
		require.NoError(t, err)
		require.NoError(t, service.RecordSpending(ctx, Key{"housing", "Rent"}, money.FromFloat(200)))
		require.NoError(t, service.RecordSpending(ctx, Key{"housing", "Gym"}, money.FromFloat(10)))
		require.NoError(t, service.RecordSpending(ctx, Key{"food", "Groceries"}, money.FromFloat(30)))

		// when
		totals, err := service.Totals(ctx)

		// then
		assert.NoError(t, err)
		assert.Equal(t, money.FromFloat(240), totals.Budgeted)
		assert.Equal(t, money.FromFloat(240), totals.Spent)
		assert.Equal(t, money.Money(0), totals.Remaining())
		assert.InDelta(t, 100.0, totals.PercentSpent(), 0.001)
	})

	t.Run("should define percent spent as zero for an empty table", func(t *testing.T) {
		service := newTestService()

		// when
		totals, err := service.Totals(ctx)

		// then
		assert.NoError(t, err)
		assert.Equal(t, money.Money(0), totals.Remaining())
		assert.Equal(t, 0.0, totals.PercentSpent())
	})

	t.Run("should hold remaining invariant across mixed edits", func(t *testing.T) {
		service := newTestService()
		_, err := service.SetBudgeted(ctx, Key{"a", "x"}, "100")
		require.NoError(t, err)
		require.NoError(t, service.BulkSetBudgeted(ctx, map[Key]string{
			{"a", "x"}: "80",
			{"b", "y"}: "20",
		}))
		require.NoError(t, service.RecordSpending(ctx, Key{"b", "y"}, money.FromFloat(5)))

		// when
		totals, err := service.Totals(ctx)

		// then
		assert.NoError(t, err)
		assert.Equal(t, totals.Budgeted-totals.Spent, totals.Remaining())
		assert.Equal(t, money.FromFloat(95), totals.Remaining())
	})
}
