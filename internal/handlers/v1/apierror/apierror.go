// Package apierror translates service failure classes into HTTP statuses.
package apierror

import (
	"errors"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/finance-tracker/internal/apperror"
)

// Map converts a service error into a huma error. ValidationError maps to
// 400, NotFoundError to 404, ForbiddenError to 403, ConsistencyError and
// anything unclassified to 500 with the fallback message.
func Map(err error, fallback string) error {
	var validation *apperror.ValidationError
	if errors.As(err, &validation) {
		return huma.NewError(http.StatusBadRequest, validation.Reason)
	}

	var notFound *apperror.NotFoundError
	if errors.As(err, &notFound) {
		return huma.NewError(http.StatusNotFound, notFound.Error())
	}

	var forbidden *apperror.ForbiddenError
	if errors.As(err, &forbidden) {
		return huma.NewError(http.StatusForbidden, forbidden.Error())
	}

	var consistency *apperror.ConsistencyError
	if errors.As(err, &consistency) {
		return huma.NewError(http.StatusInternalServerError, "operation could not complete consistently", err)
	}

	return huma.NewError(http.StatusInternalServerError, fallback, err)
}
