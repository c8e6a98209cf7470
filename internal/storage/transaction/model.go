package transaction

import (
	"context"
	"time"

	"github.com/aarondl/opt/omit"
	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/finance-tracker/internal/money"
)

// Type is the direction of a transaction. Amounts are stored positive;
// the sign comes from the type.
type Type string

const (
	TypeIncome  Type = "INCOME"
	TypeExpense Type = "EXPENSE"
)

// Valid reports whether t is one of the known transaction types.
func (t Type) Valid() bool {
	return t == TypeIncome || t == TypeExpense
}

// Transaction represents a transaction record.
type Transaction struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	CategoryID  uuid.UUID
	Amount      money.Money
	Type        Type
	Description string
	Date        time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TransactionCreate is the input for creating a new transaction.
type TransactionCreate struct {
	UserID      uuid.UUID
	CategoryID  uuid.UUID
	Amount      money.Money
	Type        Type
	Description string
	Date        time.Time
}

// TransactionSetter carries the columns to change on an update. Unset
// fields are left untouched.
type TransactionSetter struct {
	CategoryID  omit.Val[uuid.UUID]
	Amount      omit.Val[money.Money]
	Type        omit.Val[Type]
	Description omit.Val[string]
	Date        omit.Val[time.Time]
}

// Filter specifies filters for listing transactions. All present fields
// are intersected (AND).
type Filter struct {
	UserID     uuid.UUID
	CategoryID *uuid.UUID
	Type       *Type
	DateFrom   *time.Time // inclusive
	DateTo     *time.Time // inclusive
	Search     string     // case-insensitive description substring
	Limit      int
	Offset     int
	OrderAsc   bool // by date; default newest first
}

// ITable defines the read-side interface for transaction storage. Lookups
// return (nil, nil) when no row matches.
//
// This abstraction allows swapping the implementation (e.g. Bob) without
// changing callers.
type ITable interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Transaction, error)
	List(ctx context.Context, filter *Filter) ([]*Transaction, error)
	Count(ctx context.Context, filter *Filter) (int64, error)
	ListByCategory(ctx context.Context, categoryID uuid.UUID) ([]*Transaction, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*Transaction, error)
}

// IWriter defines the write-side interface, bound to a storage transaction.
type IWriter interface {
	ITable
	FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*Transaction, error)
	Insert(ctx context.Context, create *TransactionCreate) (*Transaction, error)
	Update(ctx context.Context, id uuid.UUID, setter *TransactionSetter) (*Transaction, error)
	Delete(ctx context.Context, id uuid.UUID) error
	CountByCategory(ctx context.Context, categoryID uuid.UUID) (int64, error)
	ReassignCategory(ctx context.Context, fromCategoryID, toCategoryID uuid.UUID) (int64, error)
}

// transactionRow is the scan target matching the transactions table.
type transactionRow struct {
	ID          uuid.UUID `db:"id"`
	UserID      uuid.UUID `db:"user_id"`
	CategoryID  uuid.UUID `db:"category_id"`
	AmountCents int64     `db:"amount_cents"`
	Type        string    `db:"type"`
	Description string    `db:"description"`
	Date        time.Time `db:"date"`
	CreatedAt   time.Time `db:"created_at"`
	UpdatedAt   time.Time `db:"updated_at"`
}

func rowToTransaction(r *transactionRow) *Transaction {
	return &Transaction{
		ID:          r.ID,
		UserID:      r.UserID,
		CategoryID:  r.CategoryID,
		Amount:      money.FromCents(r.AmountCents),
		Type:        Type(r.Type),
		Description: r.Description,
		Date:        r.Date,
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}
}
