package commands

import (
	"errors"

	"ordering/internal/core/domain/model/order"
	"ordering/internal/pkg/errs"
	"ordering/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var (
	ErrUpdateOrderCommandIsNotConstructed = errors.New(
		"UpdateOrderCommand must be created via NewUpdateOrderCommand constructor",
	)
)

// UpdateOrderCommand represents a request to change an existing order.
// Updates accept the full lifecycle state set; transitioning to Deleted is
// the soft-delete path.
type UpdateOrderCommand struct { //nolint:recvcheck //using for validation
	id       int
	name     string
	quantity int
	price    decimal.Decimal
	status   order.Status

	guard guard.ConstructorGuard
}

// NewUpdateOrderCommand creates a command to update an order.
// Validates the identifier and the same field rules as creation, with the
// full status set allowed.
func NewUpdateOrderCommand(id int, name string, quantity int, price decimal.Decimal, status order.Status) (UpdateOrderCommand, error) {
	cmd := UpdateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setID(id),
		cmd.setName(name),
		cmd.setQuantity(quantity),
		cmd.setPrice(price),
		cmd.setStatus(status),
	); err != nil {
		return UpdateOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateOrderCommand) Validate() error {
	return c.guard.Validate(ErrUpdateOrderCommandIsNotConstructed)
}

// ID returns the identifier of the order to update.
func (c UpdateOrderCommand) ID() int {
	return c.id
}

// Name returns the new order name.
func (c UpdateOrderCommand) Name() string {
	return c.name
}

// Quantity returns the new quantity.
func (c UpdateOrderCommand) Quantity() int {
	return c.quantity
}

// Price returns the new unit price.
func (c UpdateOrderCommand) Price() decimal.Decimal {
	return c.price
}

// Status returns the new lifecycle state.
func (c UpdateOrderCommand) Status() order.Status {
	return c.status
}

func (c *UpdateOrderCommand) setID(id int) error {
	if id < 1 {
		return errs.NewValidationError("Id", "Id is required.")
	}
	c.id = id
	return nil
}

func (c *UpdateOrderCommand) setName(name string) error {
	if name == "" {
		return errs.NewValidationError("Name", "Name is required.")
	}
	c.name = name
	return nil
}

func (c *UpdateOrderCommand) setQuantity(quantity int) error {
	if quantity < 1 {
		return errs.NewValidationError("Quantity", "Quantity must be greater than zero.")
	}
	c.quantity = quantity
	return nil
}

func (c *UpdateOrderCommand) setPrice(price decimal.Decimal) error {
	if price.LessThan(decimal.NewFromInt(1)) {
		return errs.NewValidationError("Price", "Price must be greater than zero.")
	}
	c.price = price
	return nil
}

func (c *UpdateOrderCommand) setStatus(status order.Status) error {
	if err := status.Validate(); err != nil {
		return errs.NewValidationError("Status", "Status must be either 'active', 'inactive', 'draft' or 'delete'")
	}
	c.status = status
	return nil
}
