package actions

import (
	"context"
	"time"

	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/finance-tracker/internal/apperror"
	"github.com/carson-networks/finance-tracker/internal/money"
	"github.com/carson-networks/finance-tracker/internal/storage"
	"github.com/carson-networks/finance-tracker/internal/storage/transaction"
)

type CreateTransaction struct {
	UserID      uuid.UUID
	CategoryID  uuid.UUID
	Amount      money.Money
	Type        transaction.Type
	Description string
	Date        time.Time

	// Created holds the persisted transaction after a successful Perform.
	Created *transaction.Transaction

	IAction
}

func (a *CreateTransaction) Perform(ctx context.Context, writer *storage.Writer) error {
	// The category row is locked for the rest of the transaction so the
	// linkage cannot be invalidated by a concurrent category deletion.
	linked, err := writer.Categories.FindByIDForUpdate(ctx, a.CategoryID)
	if err != nil {
		return err
	}
	if linked == nil {
		return apperror.NewNotFound("category", a.CategoryID)
	}
	if linked.UserID != a.UserID {
		return apperror.NewForbidden("category")
	}

	created, err := writer.Transactions.Insert(ctx, &transaction.TransactionCreate{
		UserID:      a.UserID,
		CategoryID:  a.CategoryID,
		Amount:      a.Amount,
		Type:        a.Type,
		Description: a.Description,
		Date:        a.Date,
	})
	if err != nil {
		return err
	}

	a.Created = created
	return nil
}
