package actions

import (
	"context"

	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/finance-tracker/internal/apperror"
	"github.com/carson-networks/finance-tracker/internal/storage"
	"github.com/carson-networks/finance-tracker/internal/storage/transaction"
)

type UpdateTransaction struct {
	ID     uuid.UUID
	UserID uuid.UUID
	Setter *transaction.TransactionSetter

	// Updated holds the transaction after a successful Perform.
	Updated *transaction.Transaction

	IAction
}

func (a *UpdateTransaction) Perform(ctx context.Context, writer *storage.Writer) error {
	existing, err := writer.Transactions.FindByIDForUpdate(ctx, a.ID)
	if err != nil {
		return err
	}
	if existing == nil {
		return apperror.NewNotFound("transaction", a.ID)
	}
	if existing.UserID != a.UserID {
		return apperror.NewForbidden("transaction")
	}

	// A category reassignment re-validates the new category's ownership
	// before anything is applied.
	if a.Setter.CategoryID.IsValue() && a.Setter.CategoryID.MustGet() != existing.CategoryID {
		newCategoryID := a.Setter.CategoryID.MustGet()
		linked, err := writer.Categories.FindByIDForUpdate(ctx, newCategoryID)
		if err != nil {
			return err
		}
		if linked == nil {
			return apperror.NewNotFound("category", newCategoryID)
		}
		if linked.UserID != a.UserID {
			return apperror.NewForbidden("category")
		}
	}

	updated, err := writer.Transactions.Update(ctx, a.ID, a.Setter)
	if err != nil {
		return err
	}

	a.Updated = updated
	return nil
}
