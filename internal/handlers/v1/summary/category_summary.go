package summary

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/finance-tracker/internal/handlers/v1/apierror"
	"github.com/carson-networks/finance-tracker/internal/logging"
	"github.com/carson-networks/finance-tracker/internal/service"
)

// CategorySummaryInput is the Huma input for a single category rollup.
type CategorySummaryInput struct {
	UserID string `header:"X-User-ID" format:"uuid" required:"true" doc:"Authenticated user UUID"`
	ID     string `path:"id" format:"uuid" doc:"Category UUID"`
}

// CategorySummaryResponseBody is the response body for a category rollup.
type CategorySummaryResponseBody struct {
	CategoryID       string `json:"categoryId" doc:"Category UUID"`
	SpentAmount      string `json:"spentAmount" doc:"Sum of EXPENSE amounts as decimal string"`
	IncomeAmount     string `json:"incomeAmount" doc:"Sum of INCOME amounts as decimal string"`
	RemainingAmount  string `json:"remainingAmount" doc:"budget - spent + income, '0.00' when no budget is set"`
	TransactionCount int    `json:"transactionCount" doc:"Number of transactions in the category"`
}

// CategorySummaryOutput is the Huma output for a category rollup.
type CategorySummaryOutput struct {
	Body CategorySummaryResponseBody
}

// categorySummarizer is the interface for computing one category's rollup.
type categorySummarizer interface {
	CategorySummary(ctx context.Context, categoryID, userID uuid.UUID) (service.CategorySummary, error)
}

// CategorySummaryHandler handles GET /v1/summary/category/{id}.
type CategorySummaryHandler struct {
	SummaryService categorySummarizer
}

// NewCategorySummaryHandler creates a new CategorySummaryHandler.
func NewCategorySummaryHandler(svc categorySummarizer) *CategorySummaryHandler {
	return &CategorySummaryHandler{SummaryService: svc}
}

// Register registers the category summary endpoint with the Huma API.
func (h *CategorySummaryHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "category-summary",
		Method:      http.MethodGet,
		Path:        "/v1/summary/category/{id}",
		Summary:     "Get a category rollup",
		Description: "Returns spent, income, remaining, and transaction count for one category.",
		Tags:        []string{"Summaries"},
	}, h.handle)
}

func (h *CategorySummaryHandler) handle(ctx context.Context, input *CategorySummaryInput) (*CategorySummaryOutput, error) {
	logData := logging.GetLogData(ctx)

	userID, err := uuid.FromString(input.UserID)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid user ID", err)
	}

	categoryID, err := uuid.FromString(input.ID)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid category ID", err)
	}

	var stopTimer func()
	if logData != nil {
		stopTimer = logData.AddTiming("categorySummaryMs")
	}
	result, err := h.SummaryService.CategorySummary(ctx, categoryID, userID)
	if stopTimer != nil {
		stopTimer()
	}
	if err != nil {
		return nil, apierror.Map(err, "failed to compute category summary")
	}

	return &CategorySummaryOutput{
		Body: CategorySummaryResponseBody{
			CategoryID:       result.CategoryID.String(),
			SpentAmount:      result.Spent.String(),
			IncomeAmount:     result.Income.String(),
			RemainingAmount:  result.Remaining.String(),
			TransactionCount: result.TransactionCount,
		},
	}, nil
}
