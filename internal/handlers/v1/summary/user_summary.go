// Package summary exposes the derived balance endpoints. Every figure is
// recomputed from the transaction ledger on each request.
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

// UserSummaryInput is the Huma input for the user balance summary.
type UserSummaryInput struct {
	UserID string `header:"X-User-ID" format:"uuid" required:"true" doc:"Authenticated user UUID"`
}

// UserSummaryResponseBody is the response body for the user balance summary.
type UserSummaryResponseBody struct {
	TotalBudget     string `json:"totalBudget" doc:"Sum of active category budgets as decimal string"`
	TotalSpent      string `json:"totalSpent" doc:"Sum of expenses in active categories as decimal string"`
	RemainingBudget string `json:"remainingBudget" doc:"totalBudget - totalSpent + income as decimal string"`
}

// UserSummaryOutput is the Huma output for the user balance summary.
type UserSummaryOutput struct {
	Body UserSummaryResponseBody
}

// userSummarizer is the interface for computing the user balance.
type userSummarizer interface {
	UserSummary(ctx context.Context, userID uuid.UUID) (service.UserSummary, error)
}

// UserSummaryHandler handles GET /v1/summary.
type UserSummaryHandler struct {
	SummaryService userSummarizer
}

// NewUserSummaryHandler creates a new UserSummaryHandler.
func NewUserSummaryHandler(svc userSummarizer) *UserSummaryHandler {
	return &UserSummaryHandler{SummaryService: svc}
}

// Register registers the user summary endpoint with the Huma API.
func (h *UserSummaryHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "user-summary",
		Method:      http.MethodGet,
		Path:        "/v1/summary",
		Summary:     "Get the user balance summary",
		Description: "Returns total budget, total spent, and remaining budget across the user's active categories.",
		Tags:        []string{"Summaries"},
	}, h.handle)
}

func (h *UserSummaryHandler) handle(ctx context.Context, input *UserSummaryInput) (*UserSummaryOutput, error) {
	logData := logging.GetLogData(ctx)

	userID, err := uuid.FromString(input.UserID)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid user ID", err)
	}

	var stopTimer func()
	if logData != nil {
		stopTimer = logData.AddTiming("userSummaryMs")
	}
	result, err := h.SummaryService.UserSummary(ctx, userID)
	if stopTimer != nil {
		stopTimer()
	}
	if err != nil {
		return nil, apierror.Map(err, "failed to compute user summary")
	}

	return &UserSummaryOutput{
		Body: UserSummaryResponseBody{
			TotalBudget:     result.TotalBudget.String(),
			TotalSpent:      result.TotalSpent.String(),
			RemainingBudget: result.RemainingBudget.String(),
		},
	}, nil
}
