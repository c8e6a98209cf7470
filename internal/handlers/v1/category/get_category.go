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

// GetCategoryInput is the Huma input for fetching a single category.
type GetCategoryInput struct {
	UserID string `header:"X-User-ID" format:"uuid" required:"true" doc:"Authenticated user UUID"`
	ID     string `path:"id" format:"uuid" doc:"Category UUID"`
}

// GetCategoryOutput is the Huma output for fetching a single category.
type GetCategoryOutput struct {
	Body Category
}

// categoryFinder is the interface for fetching an owned category.
type categoryFinder interface {
	FindOwned(ctx context.Context, id, userID uuid.UUID) (service.Category, error)
}

// GetCategoryHandler handles GET /v1/category/{id}.
type GetCategoryHandler struct {
	CategoryService categoryFinder
}

// NewGetCategoryHandler creates a new GetCategoryHandler.
func NewGetCategoryHandler(svc categoryFinder) *GetCategoryHandler {
	return &GetCategoryHandler{CategoryService: svc}
}

// Register registers the get category endpoint with the Huma API.
func (h *GetCategoryHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "get-category",
		Method:      http.MethodGet,
		Path:        "/v1/category/{id}",
		Summary:     "Get a category",
		Description: "Returns one category owned by the user.",
		Tags:        []string{"Categories"},
	}, h.handle)
}

func (h *GetCategoryHandler) handle(ctx context.Context, input *GetCategoryInput) (*GetCategoryOutput, error) {
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
		stopTimer = logData.AddTiming("getCategoryMs")
	}
	found, err := h.CategoryService.FindOwned(ctx, id, userID)
	if stopTimer != nil {
		stopTimer()
	}
	if err != nil {
		return nil, apierror.Map(err, "failed to get category")
	}

	return &GetCategoryOutput{Body: fromService(found)}, nil
}
