package storage

import (
	"context"

	"github.com/stephenafamo/bob"

	"github.com/carson-networks/finance-tracker/internal/storage/category"
	"github.com/carson-networks/finance-tracker/internal/storage/transaction"
)

// Tx is the subset of bob.Tx the Writer needs to finish a transaction.
type Tx interface {
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
}

// Writer groups the table writers bound to one database transaction.
// Every step performed through it commits or rolls back as a unit.
type Writer struct {
	Tx           Tx
	Categories   category.IWriter
	Transactions transaction.IWriter
}

func NewWriter(tx bob.Tx) *Writer {
	return &Writer{
		Tx:           tx,
		Categories:   category.NewWriter(tx),
		Transactions: transaction.NewWriter(tx),
	}
}

func (w *Writer) Commit(ctx context.Context) error {
	return w.Tx.Commit(ctx)
}

func (w *Writer) Rollback(ctx context.Context) error {
	return w.Tx.Rollback(ctx)
}
