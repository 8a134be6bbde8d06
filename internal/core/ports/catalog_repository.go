package ports

import (
	"context"

	"bakery/internal/core/domain/model/catalog"
	"bakery/internal/core/domain/model/kernel"
)

// ProductRepository defines the persistence contract for catalog products.
type ProductRepository interface {
	Add(ctx context.Context, product *catalog.Product) error
	Get(ctx context.Context, id kernel.UUID) (*catalog.Product, error)
}

// PickupLocationRepository defines the persistence contract for the places
// customers collect their orders from.
type PickupLocationRepository interface {
	Add(ctx context.Context, location *catalog.PickupLocation) error
	Get(ctx context.Context, id kernel.UUID) (*catalog.PickupLocation, error)
}
