package category

import (
	"context"
	"time"

	"github.com/aarondl/opt/omit"
	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/finance-tracker/internal/money"
)

// FallbackName is the well-known name of the per-user fallback category that
// re-homes transactions when their original category is deleted. Exactly one
// such category exists per user; it is looked up before it is created.
const FallbackName = "Uncategorized"

// Category represents a category record.
type Category struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	Name        string
	Description *string
	Color       *string
	Icon        *string
	Budget      *money.Money // nil means no budget set
	IsActive    bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// CategoryCreate is the input for creating a new category.
type CategoryCreate struct {
	UserID      uuid.UUID
	Name        string
	Description *string
	Color       *string
	Icon        *string
	Budget      *money.Money
	IsActive    bool
}

// CategorySetter carries the columns to change on an update. Unset fields
// are left untouched; ClearBudget resets the budget column to NULL.
type CategorySetter struct {
	Name        omit.Val[string]
	Description omit.Val[string]
	Color       omit.Val[string]
	Icon        omit.Val[string]
	Budget      omit.Val[money.Money]
	ClearBudget bool
	IsActive    omit.Val[bool]
}

// ITable defines the read-side interface for category storage. Lookups
// return (nil, nil) when no row matches.
//
// This abstraction allows swapping the implementation (e.g. Bob) without
// changing callers.
type ITable interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Category, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*Category, error)
}

// IWriter defines the write-side interface, bound to a storage transaction.
type IWriter interface {
	ITable
	FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*Category, error)
	FindByUserAndName(ctx context.Context, userID uuid.UUID, name string) (*Category, error)
	Insert(ctx context.Context, create *CategoryCreate) (*Category, error)
	Update(ctx context.Context, id uuid.UUID, setter *CategorySetter) (*Category, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// categoryRow is the scan target matching the categories table.
type categoryRow struct {
	ID          uuid.UUID `db:"id"`
	UserID      uuid.UUID `db:"user_id"`
	Name        string    `db:"name"`
	Description *string   `db:"description"`
	Color       *string   `db:"color"`
	Icon        *string   `db:"icon"`
	BudgetCents *int64    `db:"budget_cents"`
	IsActive    bool      `db:"is_active"`
	CreatedAt   time.Time `db:"created_at"`
	UpdatedAt   time.Time `db:"updated_at"`
}

func rowToCategory(r *categoryRow) *Category {
	c := &Category{
		ID:          r.ID,
		UserID:      r.UserID,
		Name:        r.Name,
		Description: r.Description,
		Color:       r.Color,
		Icon:        r.Icon,
		IsActive:    r.IsActive,
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}
	if r.BudgetCents != nil {
		b := money.FromCents(*r.BudgetCents)
		c.Budget = &b
	}
	return c
}
