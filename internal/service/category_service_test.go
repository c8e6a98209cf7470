package service

import (
	"context"
	"errors"
	"testing"

	"github.com/aarondl/opt/omit"
	"github.com/gofrs/uuid/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/carson-networks/finance-tracker/internal/apperror"
	"github.com/carson-networks/finance-tracker/internal/money"
	"github.com/carson-networks/finance-tracker/internal/operator/actions"
	"github.com/carson-networks/finance-tracker/internal/storage/category"
	"github.com/carson-networks/finance-tracker/internal/storage/transaction"
)

func TestCategoryService_Create_InvalidBudget(t *testing.T) {
	processor := new(mockProcessor)
	svc := NewCategoryService(newTestStorage(new(mockCategoryTable), new(mockTransactionTable)), processor)

	badBudget := "not-a-number"
	_, err := svc.Create(context.Background(), uuid.Must(uuid.NewV4()), CategoryCreate{
		Name:   "Groceries",
		Budget: &badBudget,
	})

	var validation *apperror.ValidationError
	assert.ErrorAs(t, err, &validation)
	processor.AssertNotCalled(t, "Process")
}

func TestCategoryService_Create_NegativeBudget(t *testing.T) {
	processor := new(mockProcessor)
	svc := NewCategoryService(newTestStorage(new(mockCategoryTable), new(mockTransactionTable)), processor)

	negative := "-500.00"
	_, err := svc.Create(context.Background(), uuid.Must(uuid.NewV4()), CategoryCreate{
		Name:   "Groceries",
		Budget: &negative,
	})

	var validation *apperror.ValidationError
	assert.ErrorAs(t, err, &validation)
	processor.AssertNotCalled(t, "Process")
}

func TestCategoryService_Create_Success(t *testing.T) {
	userID := uuid.Must(uuid.NewV4())
	catID := uuid.Must(uuid.NewV4())
	budget := money.FromCents(50000)

	processor := new(mockProcessor)
	processor.On("Process", mock.Anything, mock.MatchedBy(func(a actions.IAction) bool {
		create, ok := a.(*actions.CreateCategory)
		return ok && create.UserID == userID && create.Name == "Groceries" &&
			create.Budget != nil && create.Budget.Cents() == 50000
	})).Run(func(args mock.Arguments) {
		create := args.Get(1).(*actions.CreateCategory)
		create.Created = &category.Category{
			ID:       catID,
			UserID:   userID,
			Name:     "Groceries",
			Budget:   &budget,
			IsActive: true,
		}
	}).Return(nil)

	svc := NewCategoryService(newTestStorage(new(mockCategoryTable), new(mockTransactionTable)), processor)

	budgetStr := "500.00"
	created, err := svc.Create(context.Background(), userID, CategoryCreate{
		Name:   "Groceries",
		Budget: &budgetStr,
	})

	assert.NoError(t, err)
	assert.Equal(t, catID, created.ID)
	assert.Equal(t, "500.00", created.Budget.String())
	assert.True(t, created.IsActive)
	processor.AssertExpectations(t)
}

func TestCategoryService_FindOwned_NotFound(t *testing.T) {
	catID := uuid.Must(uuid.NewV4())
	cats := new(mockCategoryTable)
	cats.On("FindByID", mock.Anything, catID).Return(nil, nil)

	svc := NewCategoryService(newTestStorage(cats, new(mockTransactionTable)), new(mockProcessor))
	_, err := svc.FindOwned(context.Background(), catID, uuid.Must(uuid.NewV4()))

	var notFound *apperror.NotFoundError
	assert.ErrorAs(t, err, &notFound)
}

func TestCategoryService_FindOwned_Forbidden(t *testing.T) {
	catID := uuid.Must(uuid.NewV4())
	owner := uuid.Must(uuid.NewV4())
	cats := new(mockCategoryTable)
	cats.On("FindByID", mock.Anything, catID).Return(&category.Category{ID: catID, UserID: owner}, nil)

	svc := NewCategoryService(newTestStorage(cats, new(mockTransactionTable)), new(mockProcessor))
	_, err := svc.FindOwned(context.Background(), catID, uuid.Must(uuid.NewV4()))

	var forbidden *apperror.ForbiddenError
	assert.ErrorAs(t, err, &forbidden)
}

func TestCategoryService_List_RollsUpPerCategory(t *testing.T) {
	userID := uuid.Must(uuid.NewV4())
	groceriesID := uuid.Must(uuid.NewV4())
	travelID := uuid.Must(uuid.NewV4())
	budget := money.FromCents(50000)

	cats := new(mockCategoryTable)
	cats.On("ListByUser", mock.Anything, userID).Return([]*category.Category{
		{ID: groceriesID, UserID: userID, Name: "Groceries", Budget: &budget, IsActive: true},
		{ID: travelID, UserID: userID, Name: "Travel", IsActive: true},
	}, nil)

	txs := new(mockTransactionTable)
	txs.On("ListByUser", mock.Anything, userID).Return([]*transaction.Transaction{
		{ID: uuid.Must(uuid.NewV4()), CategoryID: groceriesID, Amount: money.FromCents(25000), Type: transaction.TypeExpense},
		{ID: uuid.Must(uuid.NewV4()), CategoryID: groceriesID, Amount: money.FromCents(5000), Type: transaction.TypeIncome},
	}, nil)

	svc := NewCategoryService(newTestStorage(cats, txs), new(mockProcessor))
	result, err := svc.List(context.Background(), userID)

	assert.NoError(t, err)
	assert.Len(t, result, 2)

	groceries := result[0]
	assert.Equal(t, "250.00", groceries.Spent.String())
	assert.Equal(t, "50.00", groceries.Income.String())
	assert.Equal(t, "300.00", groceries.Remaining.String())
	assert.Equal(t, 2, groceries.TransactionCount)

	travel := result[1]
	assert.Equal(t, "0.00", travel.Spent.String())
	assert.Equal(t, "0.00", travel.Remaining.String())
	assert.Equal(t, 0, travel.TransactionCount)
}

func TestCategoryService_Update_InvalidBudget(t *testing.T) {
	processor := new(mockProcessor)
	svc := NewCategoryService(newTestStorage(new(mockCategoryTable), new(mockTransactionTable)), processor)

	_, err := svc.Update(context.Background(), uuid.Must(uuid.NewV4()), uuid.Must(uuid.NewV4()), CategoryPatch{
		Budget: omit.From("0"),
	})

	var validation *apperror.ValidationError
	assert.ErrorAs(t, err, &validation)
	processor.AssertNotCalled(t, "Process")
}

func TestCategoryService_Update_ClearBudget(t *testing.T) {
	catID := uuid.Must(uuid.NewV4())
	userID := uuid.Must(uuid.NewV4())

	processor := new(mockProcessor)
	processor.On("Process", mock.Anything, mock.MatchedBy(func(a actions.IAction) bool {
		update, ok := a.(*actions.UpdateCategory)
		return ok && update.Setter.ClearBudget && !update.Setter.Budget.IsValue()
	})).Run(func(args mock.Arguments) {
		update := args.Get(1).(*actions.UpdateCategory)
		update.Updated = &category.Category{ID: catID, UserID: userID, Name: "Groceries", IsActive: true}
	}).Return(nil)

	svc := NewCategoryService(newTestStorage(new(mockCategoryTable), new(mockTransactionTable)), processor)
	updated, err := svc.Update(context.Background(), catID, userID, CategoryPatch{ClearBudget: true})

	assert.NoError(t, err)
	assert.Nil(t, updated.Budget)
	processor.AssertExpectations(t)
}

func TestCategoryService_Delete_WrapsStorageError(t *testing.T) {
	processor := new(mockProcessor)
	processor.On("Process", mock.Anything, mock.Anything).Return(errors.New("deadlock detected"))

	svc := NewCategoryService(newTestStorage(new(mockCategoryTable), new(mockTransactionTable)), processor)
	err := svc.Delete(context.Background(), uuid.Must(uuid.NewV4()), uuid.Must(uuid.NewV4()))

	var consistency *apperror.ConsistencyError
	assert.ErrorAs(t, err, &consistency)
}

func TestCategoryService_Delete_PassesThroughNotFound(t *testing.T) {
	catID := uuid.Must(uuid.NewV4())
	processor := new(mockProcessor)
	processor.On("Process", mock.Anything, mock.Anything).Return(apperror.NewNotFound("category", catID))

	svc := NewCategoryService(newTestStorage(new(mockCategoryTable), new(mockTransactionTable)), processor)
	err := svc.Delete(context.Background(), catID, uuid.Must(uuid.NewV4()))

	var notFound *apperror.NotFoundError
	assert.ErrorAs(t, err, &notFound)
	var consistency *apperror.ConsistencyError
	assert.False(t, errors.As(err, &consistency))
}
