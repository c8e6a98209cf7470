package service

import (
	"context"
	"time"

	"github.com/aarondl/opt/omit"
	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/finance-tracker/internal/apperror"
	"github.com/carson-networks/finance-tracker/internal/money"
	"github.com/carson-networks/finance-tracker/internal/operator/actions"
	"github.com/carson-networks/finance-tracker/internal/storage"
	"github.com/carson-networks/finance-tracker/internal/storage/transaction"
)

const defaultPageSize = 20

// TransactionService handles transaction business logic.
type TransactionService struct {
	storage  *storage.Storage
	operator WriteProcessor
}

// NewTransactionService creates a new TransactionService.
func NewTransactionService(store *storage.Storage, op WriteProcessor) *TransactionService {
	return &TransactionService{storage: store, operator: op}
}

// Create records a transaction against a category the user owns. Category
// ownership is validated inside the write transaction; on NotFound or
// Forbidden nothing is persisted.
func (s *TransactionService) Create(ctx context.Context, userID uuid.UUID, create TransactionCreate) (Transaction, error) {
	amount, err := money.ParsePositive(create.Amount)
	if err != nil {
		return Transaction{}, apperror.NewValidation("amount must be a positive decimal amount")
	}

	txType := transaction.Type(create.Type)
	if !txType.Valid() {
		return Transaction{}, apperror.NewValidation("type must be INCOME or EXPENSE")
	}

	date := create.Date
	if date.IsZero() {
		date = time.Now().UTC()
	}

	action := &actions.CreateTransaction{
		UserID:      userID,
		CategoryID:  create.CategoryID,
		Amount:      amount,
		Type:        txType,
		Description: create.Description,
		Date:        date,
	}
	if err := s.operator.Process(ctx, action); err != nil {
		return Transaction{}, err
	}

	return storageTransactionToTransaction(action.Created), nil
}

// Update applies a patch to an owned transaction. A category change
// re-validates the new category's ownership before anything is applied.
func (s *TransactionService) Update(ctx context.Context, id, userID uuid.UUID, patch TransactionPatch) (Transaction, error) {
	setter := &transaction.TransactionSetter{
		CategoryID:  patch.CategoryID,
		Description: patch.Description,
		Date:        patch.Date,
	}
	if patch.Amount.IsValue() {
		amount, err := money.ParsePositive(patch.Amount.MustGet())
		if err != nil {
			return Transaction{}, apperror.NewValidation("amount must be a positive decimal amount")
		}
		setter.Amount = omit.From(amount)
	}
	if patch.Type.IsValue() {
		txType := transaction.Type(patch.Type.MustGet())
		if !txType.Valid() {
			return Transaction{}, apperror.NewValidation("type must be INCOME or EXPENSE")
		}
		setter.Type = omit.From(txType)
	}

	action := &actions.UpdateTransaction{
		ID:     id,
		UserID: userID,
		Setter: setter,
	}
	if err := s.operator.Process(ctx, action); err != nil {
		return Transaction{}, err
	}

	return storageTransactionToTransaction(action.Updated), nil
}

// Delete removes an owned transaction.
func (s *TransactionService) Delete(ctx context.Context, id, userID uuid.UUID) error {
	return s.operator.Process(ctx, &actions.DeleteTransaction{
		ID:     id,
		UserID: userID,
	})
}

// List returns a page of the user's transactions with intersected filters.
func (s *TransactionService) List(ctx context.Context, userID uuid.UUID, filter TransactionFilter, page, pageSize int, orderAsc bool) (TransactionPage, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = defaultPageSize
	}

	if filter.DateFrom != nil && filter.DateTo != nil && filter.DateFrom.After(*filter.DateTo) {
		return TransactionPage{}, apperror.NewValidation("start date cannot be greater than end date")
	}

	storageFilter := &transaction.Filter{
		UserID:     userID,
		CategoryID: filter.CategoryID,
		DateFrom:   filter.DateFrom,
		DateTo:     filter.DateTo,
		Search:     filter.Search,
		Limit:      pageSize,
		Offset:     (page - 1) * pageSize,
		OrderAsc:   orderAsc,
	}
	if filter.Type != nil {
		txType := transaction.Type(*filter.Type)
		if !txType.Valid() {
			return TransactionPage{}, apperror.NewValidation("type must be INCOME or EXPENSE")
		}
		storageFilter.Type = &txType
	}

	rows, err := s.storage.Transactions.List(ctx, storageFilter)
	if err != nil {
		return TransactionPage{}, err
	}

	total, err := s.storage.Transactions.Count(ctx, storageFilter)
	if err != nil {
		return TransactionPage{}, err
	}

	converted := make([]Transaction, len(rows))
	for i, row := range rows {
		converted[i] = storageTransactionToTransaction(row)
	}

	return TransactionPage{
		Transactions: converted,
		Total:        total,
		Page:         page,
		PageSize:     pageSize,
	}, nil
}
