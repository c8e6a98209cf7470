package ledger

import (
	"testing"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/stretchr/testify/assert"

	"github.com/carson-networks/finance-tracker/internal/money"
	"github.com/carson-networks/finance-tracker/internal/storage/category"
	"github.com/carson-networks/finance-tracker/internal/storage/transaction"
)

func makeCategory(budget string, isActive bool) *category.Category {
	c := &category.Category{
		ID:       uuid.Must(uuid.NewV4()),
		UserID:   uuid.Must(uuid.NewV4()),
		Name:     "Groceries",
		IsActive: isActive,
	}
	if budget != "" {
		b, err := money.ParsePositive(budget)
		if err != nil {
			panic(err)
		}
		c.Budget = &b
	}
	return c
}

func makeTransaction(categoryID uuid.UUID, amount string, txType transaction.Type, date time.Time) *transaction.Transaction {
	m, err := money.ParsePositive(amount)
	if err != nil {
		panic(err)
	}
	return &transaction.Transaction{
		ID:         uuid.Must(uuid.NewV4()),
		CategoryID: categoryID,
		Amount:     m,
		Type:       txType,
		Date:       date,
	}
}

func TestSummarize_BudgetSpentIncome(t *testing.T) {
	// 500.00 budget, one 250.00 expense, one 50.00 income -> 300.00 remaining.
	c := makeCategory("500.00", true)
	now := time.Now()
	txs := []*transaction.Transaction{
		makeTransaction(c.ID, "250.00", transaction.TypeExpense, now),
		makeTransaction(c.ID, "50.00", transaction.TypeIncome, now),
	}

	s := Summarize(c, txs)

	assert.Equal(t, "250.00", s.Spent.String())
	assert.Equal(t, "50.00", s.Income.String())
	assert.Equal(t, "300.00", s.Remaining.String())
	assert.Equal(t, 2, s.Count)
}

func TestSummarize_NoBudget(t *testing.T) {
	// Without a budget, spending is not tracked as a deficit.
	c := makeCategory("", true)
	txs := []*transaction.Transaction{
		makeTransaction(c.ID, "80.00", transaction.TypeExpense, time.Now()),
	}

	s := Summarize(c, txs)

	assert.Equal(t, "80.00", s.Spent.String())
	assert.True(t, s.Remaining.IsZero())
}

func TestSummarize_NoTransactions(t *testing.T) {
	c := makeCategory("100.00", true)

	s := Summarize(c, nil)

	assert.True(t, s.Spent.IsZero())
	assert.True(t, s.Income.IsZero())
	assert.Equal(t, "100.00", s.Remaining.String())
	assert.Equal(t, 0, s.Count)
}

func TestRemaining_InvariantHoldsAfterMutations(t *testing.T) {
	// remaining == budget - spent + income after any sequence of changes.
	c := makeCategory("200.00", true)
	now := time.Now()

	txs := []*transaction.Transaction{
		makeTransaction(c.ID, "30.00", transaction.TypeExpense, now),
	}
	txs = append(txs, makeTransaction(c.ID, "45.50", transaction.TypeExpense, now))
	txs = append(txs, makeTransaction(c.ID, "10.25", transaction.TypeIncome, now))
	txs = txs[1:] // delete the first expense

	s := Summarize(c, txs)

	want := c.Budget.Sub(s.Spent).Add(s.Income)
	assert.True(t, s.Remaining.Equal(want))
	assert.Equal(t, "164.75", s.Remaining.String())
}

func TestRollupUser_ActiveOnlyPolicy(t *testing.T) {
	// Inactive categories are excluded from user totals by policy, not by
	// ledger invariant: their transactions still exist in storage.
	active := makeCategory("500.00", true)
	inactive := makeCategory("300.00", false)
	inactive.UserID = active.UserID
	now := time.Now()

	txs := []*transaction.Transaction{
		makeTransaction(active.ID, "100.00", transaction.TypeExpense, now),
		makeTransaction(inactive.ID, "999.00", transaction.TypeExpense, now),
		makeTransaction(inactive.ID, "50.00", transaction.TypeIncome, now),
	}

	u := RollupUser([]*category.Category{active, inactive}, txs)

	assert.Equal(t, "500.00", u.TotalBudget.String())
	assert.Equal(t, "100.00", u.TotalSpent.String())
	assert.Equal(t, "400.00", u.RemainingBudget.String())
}

func TestRollupUser_IncomeReplenishesBudget(t *testing.T) {
	c := makeCategory("100.00", true)
	now := time.Now()

	txs := []*transaction.Transaction{
		makeTransaction(c.ID, "40.00", transaction.TypeExpense, now),
		makeTransaction(c.ID, "15.00", transaction.TypeIncome, now),
	}

	u := RollupUser([]*category.Category{c}, txs)

	assert.Equal(t, "75.00", u.RemainingBudget.String())
}

func TestWindow_InclusiveBounds(t *testing.T) {
	c := makeCategory("", true)
	day := func(d int) time.Time {
		return time.Date(2025, 6, d, 0, 0, 0, 0, time.UTC)
	}

	txs := []*transaction.Transaction{
		makeTransaction(c.ID, "1.00", transaction.TypeExpense, day(1)),
		makeTransaction(c.ID, "2.00", transaction.TypeExpense, day(10)),
		makeTransaction(c.ID, "4.00", transaction.TypeExpense, day(20)),
		makeTransaction(c.ID, "8.00", transaction.TypeExpense, day(30)),
	}

	windowed := Window(txs, day(10), day(20))

	r := Rollup(windowed)
	assert.Equal(t, 2, r.Count)
	assert.Equal(t, "6.00", r.Spent.String())
}
