package actions

import (
	"context"

	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/finance-tracker/internal/apperror"
	"github.com/carson-networks/finance-tracker/internal/money"
	"github.com/carson-networks/finance-tracker/internal/storage"
	"github.com/carson-networks/finance-tracker/internal/storage/category"
)

const fallbackDescription = "Default category for transactions from deleted categories"
const fallbackColor = "#999999"

// DeleteCategory removes a category after re-homing every dependent
// transaction onto the user's fallback category. The whole protocol runs
// inside the single storage transaction the operator opened, so from the
// perspective of any concurrent operation the deletion is all-or-nothing:
// no transaction is ever left pointing at a missing category.
type DeleteCategory struct {
	ID     uuid.UUID
	UserID uuid.UUID

	// Reassigned holds the number of transactions moved to the fallback.
	Reassigned int64

	IAction
}

func (a *DeleteCategory) Perform(ctx context.Context, writer *storage.Writer) error {
	existing, err := writer.Categories.FindByIDForUpdate(ctx, a.ID)
	if err != nil {
		return err
	}
	if existing == nil {
		return apperror.NewNotFound("category", a.ID)
	}
	if existing.UserID != a.UserID {
		return apperror.NewForbidden("category")
	}

	count, err := writer.Transactions.CountByCategory(ctx, a.ID)
	if err != nil {
		return err
	}

	if count > 0 {
		fallback, err := a.findOrCreateFallback(ctx, writer)
		if err != nil {
			return err
		}

		moved, err := writer.Transactions.ReassignCategory(ctx, a.ID, fallback.ID)
		if err != nil {
			return err
		}
		a.Reassigned = moved
	}

	return writer.Categories.Delete(ctx, a.ID)
}

// findOrCreateFallback returns the user's fallback category, creating it if
// absent. Lookup-before-create inside the surrounding transaction keeps the
// fallback unique per user across repeated deletions.
func (a *DeleteCategory) findOrCreateFallback(ctx context.Context, writer *storage.Writer) (*category.Category, error) {
	fallback, err := writer.Categories.FindByUserAndName(ctx, a.UserID, category.FallbackName)
	if err != nil {
		return nil, err
	}
	// The lookup may find the category being deleted itself; a fresh
	// fallback is created in that case so the reassignment has a live home.
	if fallback != nil && fallback.ID != a.ID {
		return fallback, nil
	}

	description := fallbackDescription
	color := fallbackColor
	zeroBudget := money.FromCents(0)
	return writer.Categories.Insert(ctx, &category.CategoryCreate{
		UserID:      a.UserID,
		Name:        category.FallbackName,
		Description: &description,
		Color:       &color,
		Budget:      &zeroBudget,
		IsActive:    false,
	})
}
