package actions

import (
	"context"

	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/finance-tracker/internal/apperror"
	"github.com/carson-networks/finance-tracker/internal/storage"
)

// DeleteTransaction removes a single transaction. Category aggregates are
// derived, never stored, so there is no secondary cleanup.
type DeleteTransaction struct {
	ID     uuid.UUID
	UserID uuid.UUID

	IAction
}

func (a *DeleteTransaction) Perform(ctx context.Context, writer *storage.Writer) error {
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

	return writer.Transactions.Delete(ctx, a.ID)
}
