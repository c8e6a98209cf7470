package service

import (
	"time"

	"github.com/aarondl/opt/omit"
	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/finance-tracker/internal/money"
	"github.com/carson-networks/finance-tracker/internal/storage/transaction"
)

// Transaction represents a transaction in the service layer. The amount is
// always positive; direction comes from Type.
type Transaction struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	CategoryID  uuid.UUID
	Amount      money.Money
	Type        transaction.Type
	Description string
	Date        time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TransactionCreate is the input for recording a transaction. Amount is a
// decimal string parsed into Money by the service.
type TransactionCreate struct {
	CategoryID  uuid.UUID
	Amount      string
	Type        string
	Description string
	Date        time.Time // defaults to now if zero
}

// TransactionPatch carries the fields to change on an update. Unset fields
// are left untouched.
type TransactionPatch struct {
	CategoryID  omit.Val[uuid.UUID]
	Amount      omit.Val[string]
	Type        omit.Val[string]
	Description omit.Val[string]
	Date        omit.Val[time.Time]
}

// TransactionFilter narrows a listing; all present fields are ANDed.
type TransactionFilter struct {
	CategoryID *uuid.UUID
	Type       *string
	DateFrom   *time.Time // inclusive
	DateTo     *time.Time // inclusive
	Search     string
}

// TransactionPage is one page of a listing plus the total match count.
type TransactionPage struct {
	Transactions []Transaction
	Total        int64
	Page         int
	PageSize     int
}

func storageTransactionToTransaction(t *transaction.Transaction) Transaction {
	return Transaction{
		ID:          t.ID,
		UserID:      t.UserID,
		CategoryID:  t.CategoryID,
		Amount:      t.Amount,
		Type:        t.Type,
		Description: t.Description,
		Date:        t.Date,
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}
}
