package commands

import (
	"errors"

	"ordering/internal/pkg/errs"
	"ordering/internal/pkg/guard"
)

var (
	ErrDeleteOrderCommandIsNotConstructed = errors.New(
		"DeleteOrderCommand must be created via NewDeleteOrderCommand constructor",
	)
)

// DeleteOrderCommand represents a request to physically remove an order.
// Unlike the soft-delete status transition, this path removes the row.
type DeleteOrderCommand struct { //nolint:recvcheck //using for validation
	id int

	guard guard.ConstructorGuard
}

// NewDeleteOrderCommand creates a command to delete an order by identifier.
func NewDeleteOrderCommand(id int) (DeleteOrderCommand, error) {
	cmd := DeleteOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if id < 1 {
		return DeleteOrderCommand{}, errs.NewValidationError("Id", "Id is required.")
	}
	cmd.id = id

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c DeleteOrderCommand) Validate() error {
	return c.guard.Validate(ErrDeleteOrderCommandIsNotConstructed)
}

// ID returns the identifier of the order to delete.
func (c DeleteOrderCommand) ID() int {
	return c.id
}
