package summary

import (
	"context"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/finance-tracker/internal/handlers/v1/apierror"
	"github.com/carson-networks/finance-tracker/internal/logging"
	"github.com/carson-networks/finance-tracker/internal/service"
)

// SpendingInput is the Huma input for the spending window rollup.
type SpendingInput struct {
	UserID     string `header:"X-User-ID" format:"uuid" required:"true" doc:"Authenticated user UUID"`
	StartDate  string `query:"startDate" format:"date" required:"true" doc:"First day of the window, inclusive"`
	EndDate    string `query:"endDate" format:"date" required:"true" doc:"Last day of the window, inclusive"`
	CategoryID string `query:"categoryID" doc:"Optional category UUID to restrict the window to"`
}

// SpendingResponseBody is the response body for the spending window rollup.
type SpendingResponseBody struct {
	SpentAmount      string `json:"spentAmount" doc:"Sum of EXPENSE amounts in the window as decimal string"`
	IncomeAmount     string `json:"incomeAmount" doc:"Sum of INCOME amounts in the window as decimal string"`
	TransactionCount int    `json:"transactionCount" doc:"Number of transactions in the window"`
}

// SpendingOutput is the Huma output for the spending window rollup.
type SpendingOutput struct {
	Body SpendingResponseBody
}

// windowSummarizer is the interface for rolling up a date window.
type windowSummarizer interface {
	SpendingBetween(ctx context.Context, userID uuid.UUID, categoryID *uuid.UUID, from, to time.Time) (service.WindowSummary, error)
}

// SpendingHandler handles GET /v1/summary/spending.
type SpendingHandler struct {
	SummaryService windowSummarizer
}

// NewSpendingHandler creates a new SpendingHandler.
func NewSpendingHandler(svc windowSummarizer) *SpendingHandler {
	return &SpendingHandler{SummaryService: svc}
}

// Register registers the spending window endpoint with the Huma API.
func (h *SpendingHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "spending-between",
		Method:      http.MethodGet,
		Path:        "/v1/summary/spending",
		Summary:     "Get spending over a date range",
		Description: "Returns spent, income, and transaction count for transactions dated within the inclusive range, optionally limited to one category.",
		Tags:        []string{"Summaries"},
	}, h.handle)
}

// parseSpendingInput parses the window bounds. The end date covers the whole
// day, so the upper bound is the last instant of that date.
func parseSpendingInput(input *SpendingInput) (from, to time.Time, categoryID *uuid.UUID, err error) {
	from, parseErr := time.Parse("2006-01-02", input.StartDate)
	if parseErr != nil {
		return time.Time{}, time.Time{}, nil, huma.NewError(http.StatusBadRequest, "invalid startDate", parseErr)
	}

	to, parseErr = time.Parse("2006-01-02", input.EndDate)
	if parseErr != nil {
		return time.Time{}, time.Time{}, nil, huma.NewError(http.StatusBadRequest, "invalid endDate", parseErr)
	}
	to = to.Add(24*time.Hour - time.Nanosecond)

	if input.CategoryID != "" {
		parsed, parseErr := uuid.FromString(input.CategoryID)
		if parseErr != nil {
			return time.Time{}, time.Time{}, nil, huma.NewError(http.StatusBadRequest, "invalid categoryID", parseErr)
		}
		categoryID = &parsed
	}

	return from, to, categoryID, nil
}

func (h *SpendingHandler) handle(ctx context.Context, input *SpendingInput) (*SpendingOutput, error) {
	logData := logging.GetLogData(ctx)

	userID, err := uuid.FromString(input.UserID)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid user ID", err)
	}

	from, to, categoryID, err := parseSpendingInput(input)
	if err != nil {
		return nil, err
	}

	var stopTimer func()
	if logData != nil {
		stopTimer = logData.AddTiming("spendingBetweenMs")
	}
	result, err := h.SummaryService.SpendingBetween(ctx, userID, categoryID, from, to)
	if stopTimer != nil {
		stopTimer()
	}
	if err != nil {
		return nil, apierror.Map(err, "failed to compute spending summary")
	}

	if logData != nil {
		logData.AddData("transactionCount", result.TransactionCount)
	}

	return &SpendingOutput{
		Body: SpendingResponseBody{
			SpentAmount:      result.Spent.String(),
			IncomeAmount:     result.Income.String(),
			TransactionCount: result.TransactionCount,
		},
	}, nil
}
