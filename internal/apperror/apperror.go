// Package apperror defines the failure classes shared by services, write
// actions, and handlers. All operations fail fast and synchronously; there
// is no retry or default-value substitution in this layer.
package apperror

import (
	"fmt"

	"github.com/gofrs/uuid/v5"
)

// ValidationError reports a business-invariant violation in caller input:
// a malformed amount, a non-positive budget, an inverted date range.
type ValidationError struct {
	Reason string
}

func NewValidation(format string, args ...any) *ValidationError {
	return &ValidationError{Reason: fmt.Sprintf(format, args...)}
}

func (e *ValidationError) Error() string {
	return e.Reason
}

// NotFoundError reports that a referenced entity does not exist.
type NotFoundError struct {
	Entity string
	ID     uuid.UUID
}

func NewNotFound(entity string, id uuid.UUID) *NotFoundError {
	return &NotFoundError{Entity: entity, ID: id}
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s with ID %s not found", e.Entity, e.ID)
}

// ForbiddenError reports that an entity exists but belongs to another user.
type ForbiddenError struct {
	Entity string
}

func NewForbidden(entity string) *ForbiddenError {
	return &ForbiddenError{Entity: entity}
}

func (e *ForbiddenError) Error() string {
	return fmt.Sprintf("you do not have permission to access this %s", e.Entity)
}

// ConsistencyError reports that a multi-step write could not complete
// atomically. The storage transaction has been rolled back; no partial
// state is visible.
type ConsistencyError struct {
	Op  string
	Err error
}

func NewConsistency(op string, err error) *ConsistencyError {
	return &ConsistencyError{Op: op, Err: err}
}

func (e *ConsistencyError) Error() string {
	return fmt.Sprintf("%s could not complete atomically: %v", e.Op, e.Err)
}

func (e *ConsistencyError) Unwrap() error {
	return e.Err
}
