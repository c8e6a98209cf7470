package actions

import (
	"context"

	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/finance-tracker/internal/apperror"
	"github.com/carson-networks/finance-tracker/internal/storage"
	"github.com/carson-networks/finance-tracker/internal/storage/category"
)

type UpdateCategory struct {
	ID     uuid.UUID
	UserID uuid.UUID
	Setter *category.CategorySetter

	// Updated holds the category after a successful Perform.
	Updated *category.Category

	IAction
}

func (a *UpdateCategory) Perform(ctx context.Context, writer *storage.Writer) error {
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

	updated, err := writer.Categories.Update(ctx, a.ID, a.Setter)
	if err != nil {
		return err
	}

	a.Updated = updated
	return nil
}
