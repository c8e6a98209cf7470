package service

import (
	"context"

	"github.com/aarondl/opt/omit"
	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/finance-tracker/internal/apperror"
	"github.com/carson-networks/finance-tracker/internal/ledger"
	"github.com/carson-networks/finance-tracker/internal/money"
	"github.com/carson-networks/finance-tracker/internal/operator/actions"
	"github.com/carson-networks/finance-tracker/internal/storage"
	"github.com/carson-networks/finance-tracker/internal/storage/category"
	"github.com/carson-networks/finance-tracker/internal/storage/transaction"
)

// CategoryService handles category lifecycle business logic.
type CategoryService struct {
	storage  *storage.Storage
	operator WriteProcessor
}

// NewCategoryService creates a new CategoryService.
func NewCategoryService(store *storage.Storage, op WriteProcessor) *CategoryService {
	return &CategoryService{storage: store, operator: op}
}

// Create creates a category for the user. A supplied budget must parse as a
// strictly positive decimal amount.
func (s *CategoryService) Create(ctx context.Context, userID uuid.UUID, create CategoryCreate) (Category, error) {
	var budget *money.Money
	if create.Budget != nil {
		parsed, err := money.ParsePositive(*create.Budget)
		if err != nil {
			return Category{}, apperror.NewValidation("budget must be a positive decimal amount")
		}
		budget = &parsed
	}

	action := &actions.CreateCategory{
		UserID:      userID,
		Name:        create.Name,
		Description: create.Description,
		Color:       create.Color,
		Icon:        create.Icon,
		Budget:      budget,
	}
	if err := s.operator.Process(ctx, action); err != nil {
		return Category{}, err
	}

	return storageCategoryToCategory(action.Created), nil
}

// FindOwned resolves a category and checks it belongs to the user.
func (s *CategoryService) FindOwned(ctx context.Context, id, userID uuid.UUID) (Category, error) {
	found, err := s.storage.Categories.FindByID(ctx, id)
	if err != nil {
		return Category{}, err
	}
	if found == nil {
		return Category{}, apperror.NewNotFound("category", id)
	}
	if found.UserID != userID {
		return Category{}, apperror.NewForbidden("category")
	}
	return storageCategoryToCategory(found), nil
}

// List returns all of the user's categories, each with its ledger rollup,
// ordered by name.
func (s *CategoryService) List(ctx context.Context, userID uuid.UUID) ([]CategoryWithSummary, error) {
	cats, err := s.storage.Categories.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	txs, err := s.storage.Transactions.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	byCategory := make(map[uuid.UUID][]*transaction.Transaction)
	for _, tx := range txs {
		byCategory[tx.CategoryID] = append(byCategory[tx.CategoryID], tx)
	}

	result := make([]CategoryWithSummary, len(cats))
	for i, c := range cats {
		summary := ledger.Summarize(c, byCategory[c.ID])
		result[i] = CategoryWithSummary{
			Category:         storageCategoryToCategory(c),
			Spent:            summary.Spent,
			Income:           summary.Income,
			Remaining:        summary.Remaining,
			TransactionCount: summary.Count,
		}
	}
	return result, nil
}

// Update applies a patch to an owned category. Ownership is re-validated
// inside the write transaction.
func (s *CategoryService) Update(ctx context.Context, id, userID uuid.UUID, patch CategoryPatch) (Category, error) {
	setter := &category.CategorySetter{
		Name:        patch.Name,
		Description: patch.Description,
		Color:       patch.Color,
		Icon:        patch.Icon,
		IsActive:    patch.IsActive,
		ClearBudget: patch.ClearBudget,
	}
	if !patch.ClearBudget && patch.Budget.IsValue() {
		parsed, err := money.ParsePositive(patch.Budget.MustGet())
		if err != nil {
			return Category{}, apperror.NewValidation("budget must be a positive decimal amount")
		}
		setter.Budget = omit.From(parsed)
	}

	action := &actions.UpdateCategory{
		ID:     id,
		UserID: userID,
		Setter: setter,
	}
	if err := s.operator.Process(ctx, action); err != nil {
		return Category{}, err
	}

	return storageCategoryToCategory(action.Updated), nil
}

// Delete removes an owned category. Dependent transactions are re-homed
// onto the user's fallback category and the row is deleted, atomically. A
// storage failure mid-protocol rolls everything back and surfaces as a
// ConsistencyError.
func (s *CategoryService) Delete(ctx context.Context, id, userID uuid.UUID) error {
	action := &actions.DeleteCategory{
		ID:     id,
		UserID: userID,
	}
	if err := s.operator.Process(ctx, action); err != nil {
		if isCallerFault(err) {
			return err
		}
		return apperror.NewConsistency("category deletion", err)
	}
	return nil
}
