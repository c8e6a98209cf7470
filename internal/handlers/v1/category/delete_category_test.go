package category

import (
	"errors"
	"net/http"
	"testing"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/gofrs/uuid/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/carson-networks/finance-tracker/internal/apperror"
)

func newDeleteTestAPI(t *testing.T, svc categoryDeleter) humatest.TestAPI {
	t.Helper()
	_, api := humatest.New(t)
	NewDeleteCategoryHandler(svc).Register(api)
	return api
}

func TestHTTP_DeleteCategory_Success(t *testing.T) {
	userID := uuid.Must(uuid.NewV4())
	catID := uuid.Must(uuid.NewV4())

	mockSvc := new(mockCategoryService)
	mockSvc.On("Delete", mock.Anything, catID, userID).Return(nil)

	resp := newDeleteTestAPI(t, mockSvc).Delete("/v1/category/"+catID.String(), userHeader(userID))

	assert.Equal(t, http.StatusNoContent, resp.Code)
	mockSvc.AssertExpectations(t)
}

func TestHTTP_DeleteCategory_NotFound(t *testing.T) {
	userID := uuid.Must(uuid.NewV4())
	catID := uuid.Must(uuid.NewV4())

	mockSvc := new(mockCategoryService)
	mockSvc.On("Delete", mock.Anything, catID, userID).Return(apperror.NewNotFound("category", catID))

	resp := newDeleteTestAPI(t, mockSvc).Delete("/v1/category/"+catID.String(), userHeader(userID))

	assert.Equal(t, http.StatusNotFound, resp.Code)
}

func TestHTTP_DeleteCategory_Forbidden(t *testing.T) {
	userID := uuid.Must(uuid.NewV4())
	catID := uuid.Must(uuid.NewV4())

	mockSvc := new(mockCategoryService)
	mockSvc.On("Delete", mock.Anything, catID, userID).Return(apperror.NewForbidden("category"))

	resp := newDeleteTestAPI(t, mockSvc).Delete("/v1/category/"+catID.String(), userHeader(userID))

	assert.Equal(t, http.StatusForbidden, resp.Code)
}

func TestHTTP_DeleteCategory_ConsistencyFailure(t *testing.T) {
	userID := uuid.Must(uuid.NewV4())
	catID := uuid.Must(uuid.NewV4())

	mockSvc := new(mockCategoryService)
	mockSvc.On("Delete", mock.Anything, catID, userID).
		Return(apperror.NewConsistency("category deletion", errors.New("deadlock detected")))

	resp := newDeleteTestAPI(t, mockSvc).Delete("/v1/category/"+catID.String(), userHeader(userID))

	assert.Equal(t, http.StatusInternalServerError, resp.Code)
}
