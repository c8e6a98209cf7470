package service

import (
	"context"
	"errors"

	"github.com/carson-networks/finance-tracker/internal/apperror"
	"github.com/carson-networks/finance-tracker/internal/operator/actions"
	"github.com/carson-networks/finance-tracker/internal/storage"
)

// WriteProcessor runs an action inside its own storage transaction. It is
// satisfied by operator.OperatorDelegator.
type WriteProcessor interface {
	Process(ctx context.Context, action actions.IAction) error
}

// Service holds all business logic services.
type Service struct {
	Category    *CategoryService
	Transaction *TransactionService
	Summary     *SummaryService
}

// NewService creates a new Service with the given storage and write pipeline.
func NewService(store *storage.Storage, op WriteProcessor) *Service {
	return &Service{
		Category:    NewCategoryService(store, op),
		Transaction: NewTransactionService(store, op),
		Summary:     NewSummaryService(store),
	}
}

// isCallerFault reports whether err already carries one of the caller-facing
// failure classes, as opposed to a storage-layer fault.
func isCallerFault(err error) bool {
	var (
		validation *apperror.ValidationError
		notFound   *apperror.NotFoundError
		forbidden  *apperror.ForbiddenError
	)
	return errors.As(err, &validation) || errors.As(err, &notFound) || errors.As(err, &forbidden)
}
