package commands

import (
	"errors"

	"ordering/internal/core/domain/model/order"
	"ordering/internal/pkg/errs"
	"ordering/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
)

// CreateOrderCommand represents a request to register a new order.
// Creation only accepts the Draft and Active lifecycle states; the wider
// state set is reachable through updates.
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	name     string
	quantity int
	price    decimal.Decimal
	status   order.Status

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to register a new order.
// Validates that the name is present, quantity and price are at least 1,
// and the status is Draft or Active.
func NewCreateOrderCommand(name string, quantity int, price decimal.Decimal, status order.Status) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setName(name),
		cmd.setQuantity(quantity),
		cmd.setPrice(price),
		cmd.setStatus(status),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// Name returns the order name.
func (c CreateOrderCommand) Name() string {
	return c.name
}

// Quantity returns the ordered quantity.
func (c CreateOrderCommand) Quantity() int {
	return c.quantity
}

// Price returns the unit price.
func (c CreateOrderCommand) Price() decimal.Decimal {
	return c.price
}

// Status returns the initial lifecycle state.
func (c CreateOrderCommand) Status() order.Status {
	return c.status
}

func (c *CreateOrderCommand) setName(name string) error {
	if name == "" {
		return errs.NewValidationError("Name", "Name is required.")
	}
	c.name = name
	return nil
}

func (c *CreateOrderCommand) setQuantity(quantity int) error {
	if quantity < 1 {
		return errs.NewValidationError("Quantity", "Quantity must be greater than zero.")
	}
	c.quantity = quantity
	return nil
}

func (c *CreateOrderCommand) setPrice(price decimal.Decimal) error {
	if price.LessThan(decimal.NewFromInt(1)) {
		return errs.NewValidationError("Price", "Price must be greater than zero.")
	}
	c.price = price
	return nil
}

func (c *CreateOrderCommand) setStatus(status order.Status) error {
	if status != order.Draft && status != order.Active {
		return errs.NewValidationError("Status", "Status must be either 'active' or 'draft'")
	}
	c.status = status
	return nil
}
