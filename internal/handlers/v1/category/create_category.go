package category

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/finance-tracker/internal/handlers/v1/apierror"
	"github.com/carson-networks/finance-tracker/internal/logging"
	"github.com/carson-networks/finance-tracker/internal/service"
)

// CreateCategoryInput is the Huma input for creating a category.
type CreateCategoryInput struct {
	UserID string `header:"X-User-ID" format:"uuid" required:"true" doc:"Authenticated user UUID"`
	Body   CreateCategoryBody
}

// CreateCategoryBody is the request body fields for creating a category.
type CreateCategoryBody struct {
	Name         string  `json:"name" minLength:"1" doc:"Category name"`
	Description  *string `json:"description,omitempty" doc:"Category description"`
	Color        *string `json:"color,omitempty" doc:"Display color"`
	Icon         *string `json:"icon,omitempty" doc:"Display icon"`
	BudgetAmount *string `json:"budgetAmount,omitempty" doc:"Positive decimal budget (e.g. '500.00'), omit for no budget"`
}

// CreateCategoryOutput is the response for creating a category.
type CreateCategoryOutput struct {
	Status int
	Body   Category
}

// categoryCreator is the interface for creating categories.
type categoryCreator interface {
	Create(ctx context.Context, userID uuid.UUID, create service.CategoryCreate) (service.Category, error)
}

// CreateCategoryHandler handles POST /v1/category.
type CreateCategoryHandler struct {
	CategoryService categoryCreator
}

// NewCreateCategoryHandler creates a new CreateCategoryHandler.
func NewCreateCategoryHandler(svc categoryCreator) *CreateCategoryHandler {
	return &CreateCategoryHandler{CategoryService: svc}
}

// Register registers the create category endpoint with the Huma API.
func (h *CreateCategoryHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "create-category",
		Method:      http.MethodPost,
		Path:        "/v1/category",
		Summary:     "Create a category",
		Description: "Creates a new spending category, optionally with a monthly budget.",
		Tags:        []string{"Categories"},
	}, h.handle)
}

func (h *CreateCategoryHandler) handle(ctx context.Context, input *CreateCategoryInput) (*CreateCategoryOutput, error) {
	logData := logging.GetLogData(ctx)

	userID, err := parseUserID(input.UserID)
	if err != nil {
		return nil, err
	}

	var stopTimer func()
	if logData != nil {
		stopTimer = logData.AddTiming("createCategoryMs")
	}
	created, err := h.CategoryService.Create(ctx, userID, service.CategoryCreate{
		Name:        input.Body.Name,
		Description: input.Body.Description,
		Color:       input.Body.Color,
		Icon:        input.Body.Icon,
		Budget:      input.Body.BudgetAmount,
	})
	if stopTimer != nil {
		stopTimer()
	}
	if err != nil {
		return nil, apierror.Map(err, "failed to create category")
	}

	if logData != nil {
		logData.AddData("categoryID", created.ID.String())
	}

	return &CreateCategoryOutput{
		Status: http.StatusCreated,
		Body:   fromService(created),
	}, nil
}
