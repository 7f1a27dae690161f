package commands

import (
	"context"
)

// PurgeDeletedOrdersCommandHandler physically removes soft-deleted orders
// past their retention window. Driven by the scheduled purge job.
type PurgeDeletedOrdersCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewPurgeDeletedOrdersCommandHandler creates a handler for purge operations.
func NewPurgeDeletedOrdersCommandHandler(uowFactory OrderUoWFactory) PurgeDeletedOrdersCommandHandler {
	return PurgeDeletedOrdersCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle purges eligible rows within a transaction and returns the count.
func (h *PurgeDeletedOrdersCommandHandler) Handle(ctx context.Context, cmd PurgeDeletedOrdersCommand) (int64, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	purged, err := uow.OrderRepository().RemoveDeletedBefore(ctx, cmd.Cutoff())
	if err != nil {
		return 0, err
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return purged, nil
}
