package commands

import (
	"context"
)

// DeleteOrderCommandHandler handles physical order deletion.
// The order is resolved through the soft-delete-aware read first, so a
// missing or already soft-deleted order fails with a not-found error.
type DeleteOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewDeleteOrderCommandHandler creates a handler for order deletion.
func NewDeleteOrderCommandHandler(uowFactory OrderUoWFactory) DeleteOrderCommandHandler {
	return DeleteOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the order deletion command within a transaction.
func (h *DeleteOrderCommandHandler) Handle(ctx context.Context, cmd DeleteOrderCommand) error {
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

	aggregate, err := repo.Get(ctx, cmd.ID())
	if err != nil {
		return err
	}

	if err = repo.Remove(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
