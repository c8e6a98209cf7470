package service

import (
	"context"
	"time"

	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/finance-tracker/internal/apperror"
	"github.com/carson-networks/finance-tracker/internal/ledger"
	"github.com/carson-networks/finance-tracker/internal/money"
	"github.com/carson-networks/finance-tracker/internal/storage"
	"github.com/carson-networks/finance-tracker/internal/storage/transaction"
)

// CategorySummary is the derived rollup for one category.
type CategorySummary struct {
	CategoryID       uuid.UUID
	Spent            money.Money
	Income           money.Money
	Remaining        money.Money
	TransactionCount int
}

// UserSummary is the derived balance across a user's active categories.
type UserSummary struct {
	TotalBudget     money.Money
	TotalSpent      money.Money
	RemainingBudget money.Money
}

// WindowSummary is the spending rollup over an inclusive date range.
type WindowSummary struct {
	Spent            money.Money
	Income           money.Money
	TransactionCount int
}

// SummaryService answers balance queries from the transaction ledger. All
// intermediate sums are exact Money arithmetic; only handlers render
// decimal strings.
type SummaryService struct {
	storage *storage.Storage
}

// NewSummaryService creates a new SummaryService.
func NewSummaryService(store *storage.Storage) *SummaryService {
	return &SummaryService{storage: store}
}

// CategorySummary rolls up one owned category.
func (s *SummaryService) CategorySummary(ctx context.Context, categoryID, userID uuid.UUID) (CategorySummary, error) {
	found, err := s.storage.Categories.FindByID(ctx, categoryID)
	if err != nil {
		return CategorySummary{}, err
	}
	if found == nil {
		return CategorySummary{}, apperror.NewNotFound("category", categoryID)
	}
	if found.UserID != userID {
		return CategorySummary{}, apperror.NewForbidden("category")
	}

	txs, err := s.storage.Transactions.ListByCategory(ctx, categoryID)
	if err != nil {
		return CategorySummary{}, err
	}

	summary := ledger.Summarize(found, txs)
	return CategorySummary{
		CategoryID:       categoryID,
		Spent:            summary.Spent,
		Income:           summary.Income,
		Remaining:        summary.Remaining,
		TransactionCount: summary.Count,
	}, nil
}

// UserSummary aggregates budget and spending across the user's active
// categories. Inactive categories, the deletion fallback included, are
// excluded by policy; see ledger.RollupUser.
func (s *SummaryService) UserSummary(ctx context.Context, userID uuid.UUID) (UserSummary, error) {
	cats, err := s.storage.Categories.ListByUser(ctx, userID)
	if err != nil {
		return UserSummary{}, err
	}

	txs, err := s.storage.Transactions.ListByUser(ctx, userID)
	if err != nil {
		return UserSummary{}, err
	}

	rollup := ledger.RollupUser(cats, txs)
	return UserSummary{
		TotalBudget:     rollup.TotalBudget,
		TotalSpent:      rollup.TotalSpent,
		RemainingBudget: rollup.RemainingBudget,
	}, nil
}

// SpendingBetween rolls up transactions with dates in [from, to], bounds
// inclusive, across the whole user or one owned category.
func (s *SummaryService) SpendingBetween(ctx context.Context, userID uuid.UUID, categoryID *uuid.UUID, from, to time.Time) (WindowSummary, error) {
	if from.After(to) {
		return WindowSummary{}, apperror.NewValidation("start date cannot be greater than end date")
	}

	var txs []*transaction.Transaction
	if categoryID != nil {
		found, err := s.storage.Categories.FindByID(ctx, *categoryID)
		if err != nil {
			return WindowSummary{}, err
		}
		if found == nil {
			return WindowSummary{}, apperror.NewNotFound("category", *categoryID)
		}
		if found.UserID != userID {
			return WindowSummary{}, apperror.NewForbidden("category")
		}
		txs, err = s.storage.Transactions.ListByCategory(ctx, *categoryID)
		if err != nil {
			return WindowSummary{}, err
		}
	} else {
		var err error
		txs, err = s.storage.Transactions.ListByUser(ctx, userID)
		if err != nil {
			return WindowSummary{}, err
		}
	}

	rollup := ledger.Rollup(ledger.Window(txs, from, to))
	return WindowSummary{
		Spent:            rollup.Spent,
		Income:           rollup.Income,
		TransactionCount: rollup.Count,
	}, nil
}
