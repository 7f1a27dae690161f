package ports

import (
	"context"
	"time"

	"ordering/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// Every read honors the soft-delete rule: rows whose status is "delete"
// are invisible to Get even though they remain in storage.
type OrderRepository interface {
	// Add persists a new order aggregate and assigns its store identifier.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order by identifier, excluding soft-deleted rows.
	// Returns *errs.ObjectNotFoundError when no visible order matches.
	Get(ctx context.Context, id int) (*order.Order, error)

	// Remove physically deletes the order row from storage.
	Remove(ctx context.Context, aggregate *order.Order) error

	// RemoveDeletedBefore physically purges soft-deleted rows whose last
	// modification is older than the cutoff. Returns the purge count.
	RemoveDeletedBefore(ctx context.Context, cutoff time.Time) (int64, error)
}
