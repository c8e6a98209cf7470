package actions

import (
	"context"

	"github.com/gofrs/uuid/v5"
	"github.com/stretchr/testify/mock"

	"github.com/carson-networks/finance-tracker/internal/storage"
	"github.com/carson-networks/finance-tracker/internal/storage/category"
	"github.com/carson-networks/finance-tracker/internal/storage/transaction"
)

// mockCategoryWriter is a mock for category.IWriter.
type mockCategoryWriter struct {
	mock.Mock
}

func (m *mockCategoryWriter) FindByID(ctx context.Context, id uuid.UUID) (*category.Category, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*category.Category), args.Error(1)
}

func (m *mockCategoryWriter) ListByUser(ctx context.Context, userID uuid.UUID) ([]*category.Category, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*category.Category), args.Error(1)
}

func (m *mockCategoryWriter) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*category.Category, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*category.Category), args.Error(1)
}

func (m *mockCategoryWriter) FindByUserAndName(ctx context.Context, userID uuid.UUID, name string) (*category.Category, error) {
	args := m.Called(ctx, userID, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*category.Category), args.Error(1)
}

func (m *mockCategoryWriter) Insert(ctx context.Context, create *category.CategoryCreate) (*category.Category, error) {
	args := m.Called(ctx, create)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*category.Category), args.Error(1)
}

func (m *mockCategoryWriter) Update(ctx context.Context, id uuid.UUID, setter *category.CategorySetter) (*category.Category, error) {
	args := m.Called(ctx, id, setter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*category.Category), args.Error(1)
}

func (m *mockCategoryWriter) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// mockTransactionWriter is a mock for transaction.IWriter.
type mockTransactionWriter struct {
	mock.Mock
}

func (m *mockTransactionWriter) FindByID(ctx context.Context, id uuid.UUID) (*transaction.Transaction, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*transaction.Transaction), args.Error(1)
}

func (m *mockTransactionWriter) List(ctx context.Context, filter *transaction.Filter) ([]*transaction.Transaction, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*transaction.Transaction), args.Error(1)
}

func (m *mockTransactionWriter) Count(ctx context.Context, filter *transaction.Filter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockTransactionWriter) ListByCategory(ctx context.Context, categoryID uuid.UUID) ([]*transaction.Transaction, error) {
	args := m.Called(ctx, categoryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*transaction.Transaction), args.Error(1)
}

func (m *mockTransactionWriter) ListByUser(ctx context.Context, userID uuid.UUID) ([]*transaction.Transaction, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*transaction.Transaction), args.Error(1)
}

func (m *mockTransactionWriter) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*transaction.Transaction, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*transaction.Transaction), args.Error(1)
}

func (m *mockTransactionWriter) Insert(ctx context.Context, create *transaction.TransactionCreate) (*transaction.Transaction, error) {
	args := m.Called(ctx, create)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*transaction.Transaction), args.Error(1)
}

func (m *mockTransactionWriter) Update(ctx context.Context, id uuid.UUID, setter *transaction.TransactionSetter) (*transaction.Transaction, error) {
	args := m.Called(ctx, id, setter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*transaction.Transaction), args.Error(1)
}

func (m *mockTransactionWriter) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *mockTransactionWriter) CountByCategory(ctx context.Context, categoryID uuid.UUID) (int64, error) {
	args := m.Called(ctx, categoryID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockTransactionWriter) ReassignCategory(ctx context.Context, fromCategoryID, toCategoryID uuid.UUID) (int64, error) {
	args := m.Called(ctx, fromCategoryID, toCategoryID)
	return args.Get(0).(int64), args.Error(1)
}

// newTestWriter builds a storage.Writer backed by the given mocks.
func newTestWriter(cats *mockCategoryWriter, txs *mockTransactionWriter) *storage.Writer {
	return &storage.Writer{
		Categories:   cats,
		Transactions: txs,
	}
}
