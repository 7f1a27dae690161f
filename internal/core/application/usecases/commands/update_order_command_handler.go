package commands

import (
	"context"
)

// UpdateOrderCommandHandler handles the business logic for order updates.
// Resolves the existing record first, so updates against missing or
// soft-deleted orders fail with a not-found error before any write happens.
type UpdateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewUpdateOrderCommandHandler creates a handler for order update operations.
func NewUpdateOrderCommandHandler(uowFactory OrderUoWFactory) UpdateOrderCommandHandler {
	return UpdateOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the order update command.
// Applies name, quantity, price, and status to the stored aggregate and
// refreshes its modification stamp, all within one transaction.
func (h *UpdateOrderCommandHandler) Handle(ctx context.Context, cmd UpdateOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.OrderRepository()

	existing, err := repo.Get(ctx, cmd.ID())
	if err != nil {
		return err
	}

	if err = existing.Update(cmd.Name(), cmd.Quantity(), cmd.Price(), cmd.Status()); err != nil {
		return err
	}

	if err = repo.Update(ctx, existing); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
