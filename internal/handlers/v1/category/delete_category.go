package category

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/finance-tracker/internal/handlers/v1/apierror"
	"github.com/carson-networks/finance-tracker/internal/logging"
)

// DeleteCategoryInput is the Huma input for deleting a category.
type DeleteCategoryInput struct {
	UserID string `header:"X-User-ID" format:"uuid" required:"true" doc:"Authenticated user UUID"`
	ID     string `path:"id" format:"uuid" doc:"Category UUID"`
}

// DeleteCategoryOutput is the response for deleting a category.
type DeleteCategoryOutput struct {
	Status int
}

// categoryDeleter is the interface for deleting categories.
type categoryDeleter interface {
	Delete(ctx context.Context, id, userID uuid.UUID) error
}

// DeleteCategoryHandler handles DELETE /v1/category/{id}.
type DeleteCategoryHandler struct {
	CategoryService categoryDeleter
}

// NewDeleteCategoryHandler creates a new DeleteCategoryHandler.
func NewDeleteCategoryHandler(svc categoryDeleter) *DeleteCategoryHandler {
	return &DeleteCategoryHandler{CategoryService: svc}
}

// Register registers the delete category endpoint with the Huma API.
func (h *DeleteCategoryHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "delete-category",
		Method:      http.MethodDelete,
		Path:        "/v1/category/{id}",
		Summary:     "Delete a category",
		Description: "Deletes a category. Its transactions are reassigned to the user's fallback category first, all within one transaction.",
		Tags:        []string{"Categories"},
	}, h.handle)
}

func (h *DeleteCategoryHandler) handle(ctx context.Context, input *DeleteCategoryInput) (*DeleteCategoryOutput, error) {
	logData := logging.GetLogData(ctx)

	userID, err := parseUserID(input.UserID)
	if err != nil {
		return nil, err
	}

	id, err := uuid.FromString(input.ID)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid category ID", err)
	}

	var stopTimer func()
	if logData != nil {
		stopTimer = logData.AddTiming("deleteCategoryMs")
	}
	err = h.CategoryService.Delete(ctx, id, userID)
	if stopTimer != nil {
		stopTimer()
	}
	if err != nil {
		return nil, apierror.Map(err, "failed to delete category")
	}

	if logData != nil {
		logData.AddData("categoryID", id.String())
	}

	return &DeleteCategoryOutput{Status: http.StatusNoContent}, nil
}
