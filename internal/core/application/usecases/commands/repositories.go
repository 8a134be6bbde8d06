// Package commands contains business operations that modify system state.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"bakery/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// Each handler asks only for the repositories it touches.
type (
	// TxManager handles database transaction lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	UserRepoFactory interface {
		UserRepository() ports.UserRepository
	}

	// CatalogRepoFactory provides access to products and pickup locations within a transaction.
	CatalogRepoFactory interface {
		ProductRepository() ports.ProductRepository
		PickupLocationRepository() ports.PickupLocationRepository
	}

	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// OrderUoW manages transactions for commands acting on a single order on
	// behalf of a user.
	OrderUoW interface {
		TxManager
		UserRepoFactory
		OrderRepoFactory
	}

	// OrderUoWFactory creates new order unit of work instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// SeedUoW spans every repository, so a whole demo dataset can be written in
	// one transaction.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   users := uow.UserRepository()
	//   orders := uow.OrderRepository()
	//   // ... perform operations
	//
	//   err = uow.Commit(ctx)
	SeedUoW interface {
		TxManager
		UserRepoFactory
		CatalogRepoFactory
		OrderRepoFactory
	}

	// SeedUoWFactory creates new seeding unit of work instances.
	SeedUoWFactory interface {
		Create() SeedUoW
	}
)
