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

// ListCategoriesInput is the Huma input for listing categories.
type ListCategoriesInput struct {
	UserID string `header:"X-User-ID" format:"uuid" required:"true" doc:"Authenticated user UUID"`
}

// ListCategoriesResponseBody is the response body for listing categories.
type ListCategoriesResponseBody struct {
	Categories []CategoryWithSummary `json:"categories" doc:"The user's categories with spending rollups, ordered by name"`
}

// ListCategoriesOutput is the Huma output for listing categories.
type ListCategoriesOutput struct {
	Body ListCategoriesResponseBody
}

// categoryLister is the interface for listing categories with summaries.
type categoryLister interface {
	List(ctx context.Context, userID uuid.UUID) ([]service.CategoryWithSummary, error)
}

// ListCategoriesHandler handles GET /v1/category.
type ListCategoriesHandler struct {
	CategoryService categoryLister
}

// NewListCategoriesHandler creates a new ListCategoriesHandler.
func NewListCategoriesHandler(svc categoryLister) *ListCategoriesHandler {
	return &ListCategoriesHandler{CategoryService: svc}
}

// Register registers the list categories endpoint with the Huma API.
func (h *ListCategoriesHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "list-categories",
		Method:      http.MethodGet,
		Path:        "/v1/category",
		Summary:     "List categories",
		Description: "Returns all of the user's categories, each with its spent, income, and remaining rollup.",
		Tags:        []string{"Categories"},
	}, h.handle)
}

func (h *ListCategoriesHandler) handle(ctx context.Context, input *ListCategoriesInput) (*ListCategoriesOutput, error) {
	logData := logging.GetLogData(ctx)

	userID, err := parseUserID(input.UserID)
	if err != nil {
		return nil, err
	}

	var stopTimer func()
	if logData != nil {
		stopTimer = logData.AddTiming("listCategoriesMs")
	}
	categories, err := h.CategoryService.List(ctx, userID)
	if stopTimer != nil {
		stopTimer()
	}
	if err != nil {
		return nil, apierror.Map(err, "failed to list categories")
	}

	if logData != nil {
		logData.AddData("categoryCount", len(categories))
	}

	resp := ListCategoriesResponseBody{
		Categories: make([]CategoryWithSummary, len(categories)),
	}
	for i, c := range categories {
		resp.Categories[i] = fromServiceWithSummary(c)
	}

	return &ListCategoriesOutput{Body: resp}, nil
}
