// Package ledger derives budget, spending, and balance summaries from raw
// transaction rows. Every function here is stateless and uses exact Money
// arithmetic; nothing is precomputed or stored, and nothing converts to a
// decimal string (that happens at the response boundary).
package ledger

import (
	"time"

	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/finance-tracker/internal/money"
	"github.com/carson-networks/finance-tracker/internal/storage/category"
	"github.com/carson-networks/finance-tracker/internal/storage/transaction"
)

// CategoryRollup is the aggregate over one category's transactions.
type CategoryRollup struct {
	Spent  money.Money
	Income money.Money
	Count  int
}

// Rollup sums a category's transactions: Spent over EXPENSE rows, Income
// over INCOME rows, Count over both.
func Rollup(txs []*transaction.Transaction) CategoryRollup {
	var r CategoryRollup
	for _, tx := range txs {
		switch tx.Type {
		case transaction.TypeExpense:
			r.Spent = r.Spent.Add(tx.Amount)
		case transaction.TypeIncome:
			r.Income = r.Income.Add(tx.Amount)
		default:
			continue
		}
		r.Count++
	}
	return r
}

// Remaining computes budget - spent + income: income posted against a
// category replenishes its budget. When no budget is set the remaining
// amount is zero — spending without a budget is deliberately not tracked
// as a deficit.
func Remaining(budget *money.Money, r CategoryRollup) money.Money {
	if budget == nil {
		return money.Money{}
	}
	return budget.Sub(r.Spent).Add(r.Income)
}

// CategorySummary is a rollup together with the derived remaining budget.
type CategorySummary struct {
	CategoryRollup
	Remaining money.Money
}

// Summarize rolls up the transactions of one category.
func Summarize(c *category.Category, txs []*transaction.Transaction) CategorySummary {
	r := Rollup(txs)
	return CategorySummary{
		CategoryRollup: r,
		Remaining:      Remaining(c.Budget, r),
	}
}

// UserRollup is the aggregate across a user's categories.
type UserRollup struct {
	TotalBudget     money.Money
	TotalSpent      money.Money
	TotalIncome     money.Money
	RemainingBudget money.Money
}

// RollupUser aggregates budgets and transactions across a user's ACTIVE
// categories only. Excluding inactive categories (including the deletion
// fallback) from the user balance is a product-policy choice rather than a
// ledger invariant; transactions of inactive categories stay in storage and
// still appear in per-category summaries.
func RollupUser(cats []*category.Category, txs []*transaction.Transaction) UserRollup {
	active := make(map[uuid.UUID]bool, len(cats))

	var u UserRollup
	for _, c := range cats {
		if !c.IsActive {
			continue
		}
		active[c.ID] = true
		if c.Budget != nil {
			u.TotalBudget = u.TotalBudget.Add(*c.Budget)
		}
	}

	for _, tx := range txs {
		if !active[tx.CategoryID] {
			continue
		}
		switch tx.Type {
		case transaction.TypeExpense:
			u.TotalSpent = u.TotalSpent.Add(tx.Amount)
		case transaction.TypeIncome:
			u.TotalIncome = u.TotalIncome.Add(tx.Amount)
		}
	}

	u.RemainingBudget = u.TotalBudget.Sub(u.TotalSpent).Add(u.TotalIncome)
	return u
}

// Window keeps transactions whose date lies within [from, to], bounds
// inclusive. Callers validate that from does not exceed to.
func Window(txs []*transaction.Transaction, from, to time.Time) []*transaction.Transaction {
	var out []*transaction.Transaction
	for _, tx := range txs {
		if tx.Date.Before(from) || tx.Date.After(to) {
			continue
		}
		out = append(out, tx)
	}
	return out
}
