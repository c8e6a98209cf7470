package transaction

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

// ListTransactionsInput is the Huma input for listing transactions. All
// filters are optional and combined with AND.
type ListTransactionsInput struct {
	UserID     string `header:"X-User-ID" format:"uuid" required:"true" doc:"Authenticated user UUID"`
	CategoryID string `query:"categoryID" doc:"Restrict to one category UUID"`
	Type       string `query:"type" doc:"Restrict to one transaction direction, INCOME or EXPENSE"`
	StartDate  string `query:"startDate" doc:"First transaction date to include (YYYY-MM-DD, inclusive)"`
	EndDate    string `query:"endDate" doc:"Last transaction date to include (YYYY-MM-DD, inclusive)"`
	Search     string `query:"search" doc:"Case-insensitive substring match on description"`
	Page       int    `query:"page" minimum:"0" doc:"1-based page number, defaults to 1"`
	PageSize   int    `query:"pageSize" minimum:"0" maximum:"100" doc:"Page size, defaults to 20"`
	Order      string `query:"order" doc:"Sort by transaction date, 'asc' or 'desc', defaults to desc"`
}

// ListTransactionsResponseBody is the response body for listing transactions.
type ListTransactionsResponseBody struct {
	Transactions []Transaction `json:"transactions" doc:"Page of transactions"`
	Total        int64         `json:"total" doc:"Total number of transactions matching the filters"`
	Page         int           `json:"page" doc:"Page number returned"`
	PageSize     int           `json:"pageSize" doc:"Page size used"`
}

// ListTransactionsOutput is the Huma output for listing transactions.
type ListTransactionsOutput struct {
	Body ListTransactionsResponseBody
}

// transactionLister is the interface for listing transactions.
type transactionLister interface {
	List(ctx context.Context, userID uuid.UUID, filter service.TransactionFilter, page, pageSize int, orderAsc bool) (service.TransactionPage, error)
}

// ListTransactionsHandler handles GET /v1/transaction.
type ListTransactionsHandler struct {
	TransactionService transactionLister
}

// NewListTransactionsHandler creates a new ListTransactionsHandler.
func NewListTransactionsHandler(svc transactionLister) *ListTransactionsHandler {
	return &ListTransactionsHandler{TransactionService: svc}
}

// Register registers the list transactions endpoint with the Huma API.
func (h *ListTransactionsHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "list-transactions",
		Method:      http.MethodGet,
		Path:        "/v1/transaction",
		Summary:     "List transactions",
		Description: "Returns a filtered, paginated list of the user's transactions with the total match count.",
		Tags:        []string{"Transactions"},
	}, h.handle)
}

// parseListTransactionsInput builds the service filter from the query
// parameters. The end date covers the whole day.
func parseListTransactionsInput(input *ListTransactionsInput) (service.TransactionFilter, error) {
	filter := service.TransactionFilter{Search: input.Search}

	if input.CategoryID != "" {
		categoryID, err := uuid.FromString(input.CategoryID)
		if err != nil {
			return service.TransactionFilter{}, huma.NewError(http.StatusBadRequest, "invalid categoryID", err)
		}
		filter.CategoryID = &categoryID
	}

	if input.Type != "" {
		txType := input.Type
		filter.Type = &txType
	}

	if input.StartDate != "" {
		from, err := time.Parse("2006-01-02", input.StartDate)
		if err != nil {
			return service.TransactionFilter{}, huma.NewError(http.StatusBadRequest, "invalid startDate", err)
		}
		filter.DateFrom = &from
	}

	if input.EndDate != "" {
		to, err := time.Parse("2006-01-02", input.EndDate)
		if err != nil {
			return service.TransactionFilter{}, huma.NewError(http.StatusBadRequest, "invalid endDate", err)
		}
		to = to.Add(24*time.Hour - time.Nanosecond)
		filter.DateTo = &to
	}

	return filter, nil
}

func (h *ListTransactionsHandler) handle(ctx context.Context, input *ListTransactionsInput) (*ListTransactionsOutput, error) {
	logData := logging.GetLogData(ctx)

	userID, err := parseUserID(input.UserID)
	if err != nil {
		return nil, err
	}

	filter, err := parseListTransactionsInput(input)
	if err != nil {
		return nil, err
	}

	var stopTimer func()
	if logData != nil {
		stopTimer = logData.AddTiming("listTransactionsMs")
	}
	page, err := h.TransactionService.List(ctx, userID, filter, input.Page, input.PageSize, input.Order == "asc")
	if stopTimer != nil {
		stopTimer()
	}
	if err != nil {
		return nil, apierror.Map(err, "failed to list transactions")
	}

	if logData != nil {
		logData.AddData("transactionCount", len(page.Transactions))
	}

	resp := ListTransactionsResponseBody{
		Transactions: make([]Transaction, len(page.Transactions)),
		Total:        page.Total,
		Page:         page.Page,
		PageSize:     page.PageSize,
	}
	for i, tx := range page.Transactions {
		resp.Transactions[i] = fromService(tx)
	}

	return &ListTransactionsOutput{Body: resp}, nil
}
