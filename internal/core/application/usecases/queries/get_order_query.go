// Package queries contains read operations of the CQRS architecture.
// Query handlers read the store directly and return query-specific response
// structs; every read path excludes soft-deleted orders.
package queries

import (
	"errors"

	"ordering/internal/pkg/errs"
	"ordering/internal/pkg/guard"
)

var (
	ErrGetOrderQueryIsNotConstructed = errors.New(
		"GetOrderQuery must be created via NewGetOrderQuery constructor",
	)
)

// GetOrderQuery retrieves a single order by identifier.
type GetOrderQuery struct {
	id int

	guard guard.ConstructorGuard
}

// NewGetOrderQuery creates a query for the given order identifier.
func NewGetOrderQuery(id int) (GetOrderQuery, error) {
	if id < 1 {
		return GetOrderQuery{}, errs.NewValidationError("Id", "Id is required.")
	}

	return GetOrderQuery{
		id:    id,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}

// ID returns the requested order identifier.
func (q GetOrderQuery) ID() int {
	return q.id
}
