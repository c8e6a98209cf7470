package transaction

import (
	"context"
	"net/http"
	"time"

	"github.com/aarondl/opt/omit"
	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/finance-tracker/internal/handlers/v1/apierror"
	"github.com/carson-networks/finance-tracker/internal/logging"
	"github.com/carson-networks/finance-tracker/internal/service"
)

// UpdateTransactionInput is the Huma input for updating a transaction.
type UpdateTransactionInput struct {
	UserID string `header:"X-User-ID" format:"uuid" required:"true" doc:"Authenticated user UUID"`
	ID     string `path:"id" format:"uuid" doc:"Transaction UUID"`
	Body   UpdateTransactionBody
}

// UpdateTransactionBody is the request body for updating a transaction.
// Absent fields are left unchanged.
type UpdateTransactionBody struct {
	CategoryID  *string `json:"categoryId,omitempty" format:"uuid" doc:"Move the transaction to this category"`
	Amount      *string `json:"amount,omitempty" doc:"New positive decimal amount"`
	Type        *string `json:"type,omitempty" enum:"INCOME,EXPENSE" doc:"New transaction direction"`
	Description *string `json:"description,omitempty" doc:"New description"`
	Date        *string `json:"date,omitempty" format:"date-time" doc:"New RFC3339 transaction date"`
}

// UpdateTransactionOutput is the response for updating a transaction.
type UpdateTransactionOutput struct {
	Body Transaction
}

// transactionUpdater is the interface for updating transactions.
type transactionUpdater interface {
	Update(ctx context.Context, id, userID uuid.UUID, patch service.TransactionPatch) (service.Transaction, error)
}

// UpdateTransactionHandler handles PATCH /v1/transaction/{id}.
type UpdateTransactionHandler struct {
	TransactionService transactionUpdater
}

// NewUpdateTransactionHandler creates a new UpdateTransactionHandler.
func NewUpdateTransactionHandler(svc transactionUpdater) *UpdateTransactionHandler {
	return &UpdateTransactionHandler{TransactionService: svc}
}

// Register registers the update transaction endpoint with the Huma API.
func (h *UpdateTransactionHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "update-transaction",
		Method:      http.MethodPatch,
		Path:        "/v1/transaction/{id}",
		Summary:     "Update a transaction",
		Description: "Applies a partial update to a transaction. Absent fields are left unchanged.",
		Tags:        []string{"Transactions"},
	}, h.handle)
}

func parseUpdateTransactionInput(input *UpdateTransactionInput) (service.TransactionPatch, error) {
	patch := service.TransactionPatch{}

	if input.Body.CategoryID != nil {
		categoryID, err := uuid.FromString(*input.Body.CategoryID)
		if err != nil {
			return service.TransactionPatch{}, huma.NewError(http.StatusBadRequest, "invalid categoryId", err)
		}
		patch.CategoryID = omit.From(categoryID)
	}
	if input.Body.Amount != nil {
		patch.Amount = omit.From(*input.Body.Amount)
	}
	if input.Body.Type != nil {
		patch.Type = omit.From(*input.Body.Type)
	}
	if input.Body.Description != nil {
		patch.Description = omit.From(*input.Body.Description)
	}
	if input.Body.Date != nil {
		date, err := time.Parse(time.RFC3339, *input.Body.Date)
		if err != nil {
			return service.TransactionPatch{}, huma.NewError(http.StatusBadRequest, "invalid date", err)
		}
		patch.Date = omit.From(date)
	}

	return patch, nil
}

func (h *UpdateTransactionHandler) handle(ctx context.Context, input *UpdateTransactionInput) (*UpdateTransactionOutput, error) {
	logData := logging.GetLogData(ctx)

	userID, err := parseUserID(input.UserID)
	if err != nil {
		return nil, err
	}

	id, err := uuid.FromString(input.ID)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid transaction ID", err)
	}

	patch, err := parseUpdateTransactionInput(input)
	if err != nil {
		return nil, err
	}

	var stopTimer func()
	if logData != nil {
		stopTimer = logData.AddTiming("updateTransactionMs")
	}
	updated, err := h.TransactionService.Update(ctx, id, userID, patch)
	if stopTimer != nil {
		stopTimer()
	}
	if err != nil {
		return nil, apierror.Map(err, "failed to update transaction")
	}

	return &UpdateTransactionOutput{Body: fromService(updated)}, nil
}
