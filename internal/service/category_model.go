package service

import (
	"time"

	"github.com/aarondl/opt/omit"
	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/finance-tracker/internal/money"
	"github.com/carson-networks/finance-tracker/internal/storage/category"
)

// Category represents a category in the service layer. Spending aggregates
// are never stored on it; see CategoryWithSummary.
type Category struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	Name        string
	Description *string
	Color       *string
	Icon        *string
	Budget      *money.Money
	IsActive    bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// CategoryCreate is the input for creating a category. Budget, when
// present, is a decimal string parsed into Money by the service.
type CategoryCreate struct {
	Name        string
	Description *string
	Color       *string
	Icon        *string
	Budget      *string
}

// CategoryPatch carries the fields to change on an update. Unset fields are
// left untouched; ClearBudget removes the budget entirely.
type CategoryPatch struct {
	Name        omit.Val[string]
	Description omit.Val[string]
	Color       omit.Val[string]
	Icon        omit.Val[string]
	Budget      omit.Val[string]
	ClearBudget bool
	IsActive    omit.Val[bool]
}

// CategoryWithSummary is a category together with its ledger rollup.
type CategoryWithSummary struct {
	Category
	Spent            money.Money
	Income           money.Money
	Remaining        money.Money
	TransactionCount int
}

func storageCategoryToCategory(c *category.Category) Category {
	return Category{
		ID:          c.ID,
		UserID:      c.UserID,
		Name:        c.Name,
		Description: c.Description,
		Color:       c.Color,
		Icon:        c.Icon,
		Budget:      c.Budget,
		IsActive:    c.IsActive,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}
