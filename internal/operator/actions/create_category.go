package actions

import (
	"context"

	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/finance-tracker/internal/money"
	"github.com/carson-networks/finance-tracker/internal/storage"
	"github.com/carson-networks/finance-tracker/internal/storage/category"
)

type CreateCategory struct {
	UserID      uuid.UUID
	Name        string
	Description *string
	Color       *string
	Icon        *string
	Budget      *money.Money

	// Created holds the persisted category after a successful Perform.
	Created *category.Category

	IAction
}

func (a *CreateCategory) Perform(ctx context.Context, writer *storage.Writer) error {
	created, err := writer.Categories.Insert(ctx, &category.CategoryCreate{
		UserID:      a.UserID,
		Name:        a.Name,
		Description: a.Description,
		Color:       a.Color,
		Icon:        a.Icon,
		Budget:      a.Budget,
		IsActive:    true,
	})
	if err != nil {
		return err
	}

	a.Created = created
	return nil
}
