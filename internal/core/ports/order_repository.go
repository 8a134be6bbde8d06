package ports

import (
	"context"

	"bakery/internal/core/domain/model/kernel"
	"bakery/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// Items and history are owned by the order and are stored and loaded with it.
type OrderRepository interface {
	// Add persists a new order aggregate with its items and history.
	// The order must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate.
	// Items and history are replaced as a whole.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier, together with
	// its pickup location, products and history authors.
	// Returns errs.ObjectNotFoundError when no such order exists.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)
}
