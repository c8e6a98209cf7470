package category

import (
	"context"
	"net/http"

	"github.com/aarondl/opt/omit"
	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/finance-tracker/internal/handlers/v1/apierror"
	"github.com/carson-networks/finance-tracker/internal/logging"
	"github.com/carson-networks/finance-tracker/internal/service"
)

// UpdateCategoryInput is the Huma input for updating a category.
type UpdateCategoryInput struct {
	UserID string `header:"X-User-ID" format:"uuid" required:"true" doc:"Authenticated user UUID"`
	ID     string `path:"id" format:"uuid" doc:"Category UUID"`
	Body   UpdateCategoryBody
}

// UpdateCategoryBody is the request body for updating a category. Absent
// fields are left unchanged. An empty budgetAmount string clears the budget.
type UpdateCategoryBody struct {
	Name         *string `json:"name,omitempty" minLength:"1" doc:"New category name"`
	Description  *string `json:"description,omitempty" doc:"New description"`
	Color        *string `json:"color,omitempty" doc:"New display color"`
	Icon         *string `json:"icon,omitempty" doc:"New display icon"`
	BudgetAmount *string `json:"budgetAmount,omitempty" doc:"New positive decimal budget, or empty string to remove the budget"`
	IsActive     *bool   `json:"isActive,omitempty" doc:"Whether the category counts toward the user balance"`
}

// UpdateCategoryOutput is the response for updating a category.
type UpdateCategoryOutput struct {
	Body Category
}

// categoryUpdater is the interface for updating categories.
type categoryUpdater interface {
	Update(ctx context.Context, id, userID uuid.UUID, patch service.CategoryPatch) (service.Category, error)
}

// UpdateCategoryHandler handles PATCH /v1/category/{id}.
type UpdateCategoryHandler struct {
	CategoryService categoryUpdater
}

// NewUpdateCategoryHandler creates a new UpdateCategoryHandler.
func NewUpdateCategoryHandler(svc categoryUpdater) *UpdateCategoryHandler {
	return &UpdateCategoryHandler{CategoryService: svc}
}

// Register registers the update category endpoint with the Huma API.
func (h *UpdateCategoryHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "update-category",
		Method:      http.MethodPatch,
		Path:        "/v1/category/{id}",
		Summary:     "Update a category",
		Description: "Applies a partial update to a category. Absent fields are left unchanged.",
		Tags:        []string{"Categories"},
	}, h.handle)
}

func parseUpdateCategoryInput(input *UpdateCategoryInput) (service.CategoryPatch, error) {
	patch := service.CategoryPatch{}

	if input.Body.Name != nil {
		patch.Name = omit.From(*input.Body.Name)
	}
	if input.Body.Description != nil {
		patch.Description = omit.From(*input.Body.Description)
	}
	if input.Body.Color != nil {
		patch.Color = omit.From(*input.Body.Color)
	}
	if input.Body.Icon != nil {
		patch.Icon = omit.From(*input.Body.Icon)
	}
	if input.Body.BudgetAmount != nil {
		if *input.Body.BudgetAmount == "" {
			patch.ClearBudget = true
		} else {
			patch.Budget = omit.From(*input.Body.BudgetAmount)
		}
	}
	if input.Body.IsActive != nil {
		patch.IsActive = omit.From(*input.Body.IsActive)
	}

	return patch, nil
}

func (h *UpdateCategoryHandler) handle(ctx context.Context, input *UpdateCategoryInput) (*UpdateCategoryOutput, error) {
	logData := logging.GetLogData(ctx)

	userID, err := parseUserID(input.UserID)
	if err != nil {
		return nil, err
	}

	id, err := uuid.FromString(input.ID)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid category ID", err)
	}

	patch, err := parseUpdateCategoryInput(input)
	if err != nil {
		return nil, err
	}

	var stopTimer func()
	if logData != nil {
		stopTimer = logData.AddTiming("updateCategoryMs")
	}
	updated, err := h.CategoryService.Update(ctx, id, userID, patch)
	if stopTimer != nil {
		stopTimer()
	}
	if err != nil {
		return nil, apierror.Map(err, "failed to update category")
	}

	return &UpdateCategoryOutput{Body: fromService(updated)}, nil
}
