package category

import (
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/finance-tracker/internal/service"
)

// Category is the API response model for a category. Money fields render as
// fixed two-decimal strings, never as raw floats or bare integers.
type Category struct {
	ID           string  `json:"id" doc:"Category UUID"`
	UserID       string  `json:"userId" doc:"Owning user UUID"`
	Name         string  `json:"name" doc:"Category name"`
	Description  *string `json:"description,omitempty" doc:"Category description"`
	Color        *string `json:"color,omitempty" doc:"Display color"`
	Icon         *string `json:"icon,omitempty" doc:"Display icon"`
	BudgetAmount *string `json:"budgetAmount,omitempty" doc:"Budget as decimal string, absent when no budget is set"`
	IsActive     bool    `json:"isActive" doc:"Whether the category counts toward the user balance"`
	CreatedAt    string  `json:"createdAt" doc:"RFC3339 creation time"`
	UpdatedAt    string  `json:"updatedAt" doc:"RFC3339 last update time"`
}

// CategoryWithSummary is a category plus its derived ledger rollup.
type CategoryWithSummary struct {
	Category
	SpentAmount      string `json:"spentAmount" doc:"Sum of EXPENSE amounts as decimal string"`
	IncomeAmount     string `json:"incomeAmount" doc:"Sum of INCOME amounts as decimal string"`
	RemainingAmount  string `json:"remainingAmount" doc:"budget - spent + income, '0.00' when no budget is set"`
	TransactionCount int    `json:"transactionCount" doc:"Number of transactions in the category"`
}

func fromService(c service.Category) Category {
	out := Category{
		ID:          c.ID.String(),
		UserID:      c.UserID.String(),
		Name:        c.Name,
		Description: c.Description,
		Color:       c.Color,
		Icon:        c.Icon,
		IsActive:    c.IsActive,
		CreatedAt:   c.CreatedAt.Format(time.RFC3339),
		UpdatedAt:   c.UpdatedAt.Format(time.RFC3339),
	}
	if c.Budget != nil {
		budget := c.Budget.String()
		out.BudgetAmount = &budget
	}
	return out
}

func fromServiceWithSummary(c service.CategoryWithSummary) CategoryWithSummary {
	return CategoryWithSummary{
		Category:         fromService(c.Category),
		SpentAmount:      c.Spent.String(),
		IncomeAmount:     c.Income.String(),
		RemainingAmount:  c.Remaining.String(),
		TransactionCount: c.TransactionCount,
	}
}

func parseUserID(raw string) (uuid.UUID, error) {
	userID, err := uuid.FromString(raw)
	if err != nil {
		return uuid.Nil, huma.NewError(http.StatusBadRequest, "invalid user ID", err)
	}
	return userID, nil
}
