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

// CreateTransactionInput is the Huma input for recording a transaction.
type CreateTransactionInput struct {
	UserID string `header:"X-User-ID" format:"uuid" required:"true" doc:"Authenticated user UUID"`
	Body   CreateTransactionBody
}

// CreateTransactionBody is the request body fields for recording a transaction.
type CreateTransactionBody struct {
	CategoryID  string `json:"categoryId" format:"uuid" doc:"Category UUID"`
	Amount      string `json:"amount" minLength:"1" doc:"Positive decimal amount (e.g. '12.50')"`
	Type        string `json:"type" enum:"INCOME,EXPENSE" doc:"Transaction direction"`
	Description string `json:"description,omitempty" doc:"Transaction description"`
	Date        string `json:"date,omitempty" format:"date-time" doc:"RFC3339 transaction date, defaults to now"`
}

// CreateTransactionOutput is the response for recording a transaction.
type CreateTransactionOutput struct {
	Status int
	Body   Transaction
}

// transactionCreator is the interface for recording transactions.
type transactionCreator interface {
	Create(ctx context.Context, userID uuid.UUID, create service.TransactionCreate) (service.Transaction, error)
}

// CreateTransactionHandler handles POST /v1/transaction.
type CreateTransactionHandler struct {
	TransactionService transactionCreator
}

// NewCreateTransactionHandler creates a new CreateTransactionHandler.
func NewCreateTransactionHandler(svc transactionCreator) *CreateTransactionHandler {
	return &CreateTransactionHandler{TransactionService: svc}
}

// Register registers the create transaction endpoint with the Huma API.
func (h *CreateTransactionHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "create-transaction",
		Method:      http.MethodPost,
		Path:        "/v1/transaction",
		Summary:     "Record a transaction",
		Description: "Records an income or expense transaction against one of the user's categories.",
		Tags:        []string{"Transactions"},
	}, h.handle)
}

func parseCreateTransactionInput(input *CreateTransactionInput) (service.TransactionCreate, error) {
	categoryID, err := uuid.FromString(input.Body.CategoryID)
	if err != nil {
		return service.TransactionCreate{}, huma.NewError(http.StatusBadRequest, "invalid categoryId", err)
	}

	var date time.Time
	if input.Body.Date != "" {
		date, err = time.Parse(time.RFC3339, input.Body.Date)
		if err != nil {
			return service.TransactionCreate{}, huma.NewError(http.StatusBadRequest, "invalid date", err)
		}
	}

	return service.TransactionCreate{
		CategoryID:  categoryID,
		Amount:      input.Body.Amount,
		Type:        input.Body.Type,
		Description: input.Body.Description,
		Date:        date,
	}, nil
}

func (h *CreateTransactionHandler) handle(ctx context.Context, input *CreateTransactionInput) (*CreateTransactionOutput, error) {
	logData := logging.GetLogData(ctx)

	userID, err := parseUserID(input.UserID)
	if err != nil {
		return nil, err
	}

	create, err := parseCreateTransactionInput(input)
	if err != nil {
		return nil, err
	}

	var stopTimer func()
	if logData != nil {
		stopTimer = logData.AddTiming("createTransactionMs")
	}
	created, err := h.TransactionService.Create(ctx, userID, create)
	if stopTimer != nil {
		stopTimer()
	}
	if err != nil {
		return nil, apierror.Map(err, "failed to create transaction")
	}

	if logData != nil {
		logData.AddData("transactionID", created.ID.String())
	}

	return &CreateTransactionOutput{
		Status: http.StatusCreated,
		Body:   fromService(created),
	}, nil
}
