package ports

import (
	"context"
)

// UnitOfWorkFactory creates new UnitOfWork instances for each command.
// This ensures proper isolation between concurrent operations.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork represents a business transaction boundary.
// Client code must explicitly manage transaction lifecycle.
type UnitOfWork interface {
	// Begin starts a new database transaction.
	Begin(ctx context.Context) error

	// Commit commits the current transaction.
	// Returns error if no active transaction or commit fails.
	Commit(ctx context.Context) error

	// Rollback rolls back the current transaction. Called after Commit it
	// returns an error and changes nothing.
	Rollback(ctx context.Context) error

	// The repositories below use the transaction started by Begin.
	UserRepository() UserRepository
	ProductRepository() ProductRepository
	PickupLocationRepository() PickupLocationRepository
	OrderRepository() OrderRepository
}
