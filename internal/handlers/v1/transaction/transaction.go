package transaction

import (
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/finance-tracker/internal/service"
)

// Transaction is the API response model for a transaction. Amount renders as
// a fixed two-decimal string; direction comes from Type.
type Transaction struct {
	ID          string `json:"id" doc:"Transaction UUID"`
	UserID      string `json:"userId" doc:"Owning user UUID"`
	CategoryID  string `json:"categoryId" doc:"Category UUID"`
	Amount      string `json:"amount" doc:"Positive decimal amount"`
	Type        string `json:"type" doc:"INCOME or EXPENSE"`
	Description string `json:"description" doc:"Transaction description"`
	Date        string `json:"date" doc:"RFC3339 transaction date"`
	CreatedAt   string `json:"createdAt" doc:"RFC3339 creation time"`
	UpdatedAt   string `json:"updatedAt" doc:"RFC3339 last update time"`
}

func fromService(t service.Transaction) Transaction {
	return Transaction{
		ID:          t.ID.String(),
		UserID:      t.UserID.String(),
		CategoryID:  t.CategoryID.String(),
		Amount:      t.Amount.String(),
		Type:        string(t.Type),
		Description: t.Description,
		Date:        t.Date.Format(time.RFC3339),
		CreatedAt:   t.CreatedAt.Format(time.RFC3339),
		UpdatedAt:   t.UpdatedAt.Format(time.RFC3339),
	}
}

func parseUserID(raw string) (uuid.UUID, error) {
	userID, err := uuid.FromString(raw)
	if err != nil {
		return uuid.Nil, huma.NewError(http.StatusBadRequest, "invalid user ID", err)
	}
	return userID, nil
}
