// Package postgres provides a GORM-based implementation of the Unit of Work pattern.
// The Unit of Work keeps the aggregates touched by one business transaction
// and writes them through a single database transaction.
//
// Usage:
//
//	factory := NewGormUnitOfWorkFactory(db)
//	uow := factory.Create()
//
//	if err := uow.Begin(ctx); err != nil {
//	    return err
//	}
//	defer func() { _ = uow.Rollback(ctx) }()
//
//	if err := uow.UserRepository().Add(ctx, baker); err != nil {
//	    return err
//	}
//	if err := uow.OrderRepository().Add(ctx, order); err != nil {
//	    return err
//	}
//
//	return uow.Commit(ctx)
//
// Each UnitOfWork instance owns its transaction, so concurrent goroutines
// must create their own instance from the factory.
package postgres

import (
	"context"

	"bakery/internal/adapters/out/postgres/catalogrepo"
	"bakery/internal/adapters/out/postgres/orderrepo"
	"bakery/internal/adapters/out/postgres/userrepo"
	"bakery/internal/core/domain/model/kernel"
	"bakery/internal/core/ports"

	"gorm.io/gorm"
)

// trackedAggregate represents an aggregate modified during the unit of work.
type trackedAggregate struct {
	ID        kernel.UUID
	Aggregate any
}

// GormUnitOfWorkFactory creates UnitOfWork instances sharing one GORM connection.
type GormUnitOfWorkFactory struct {
	db *gorm.DB
}

// NewGormUnitOfWorkFactory creates a factory for GORM-based unit of work instances.
//
// Example:
//
//	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
//	if err != nil {
//	    log.Fatal("failed to connect database")
//	}
//	factory := NewGormUnitOfWorkFactory(db)
func NewGormUnitOfWorkFactory(db *gorm.DB) *GormUnitOfWorkFactory {
	return &GormUnitOfWorkFactory{db: db}
}

// Create produces a new UnitOfWork with its own transaction state and
// aggregate tracking.
func (f *GormUnitOfWorkFactory) Create() ports.UnitOfWork {
	return &GormUnitOfWork{
		db:                f.db,
		trackedAggregates: make([]trackedAggregate, 0),
	}
}

// GormUnitOfWork coordinates a database transaction and tracks the aggregates
// written through its repositories.
type GormUnitOfWork struct {
	db                *gorm.DB
	tx                *gorm.DB
	trackedAggregates []trackedAggregate
}

// Begin starts a transaction. Calling Begin again while a transaction is open
// does nothing.
func (uow *GormUnitOfWork) Begin(ctx context.Context) error {
	if uow.tx != nil {
		return nil
	}

	tx := uow.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return tx.Error
	}

	uow.tx = tx
	return nil
}

// Commit finalizes the open transaction.
// Returns gorm.ErrInvalidTransaction if no transaction is open.
func (uow *GormUnitOfWork) Commit(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Commit().Error
	uow.tx = nil
	return err
}

// Rollback discards the open transaction.
// Returns gorm.ErrInvalidTransaction if no transaction is open, which is the
// case after Commit.
func (uow *GormUnitOfWork) Rollback(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Rollback().Error
	uow.tx = nil
	uow.trackedAggregates = uow.trackedAggregates[:0]
	return err
}

// UserRepository provides access to staff accounts within the unit of work.
// Without an open transaction the repository uses the main connection.
func (uow *GormUnitOfWork) UserRepository() ports.UserRepository {
	return userrepo.NewGormUserRepository(uow.conn(), uow)
}

// ProductRepository provides access to the product catalog within the unit of work.
func (uow *GormUnitOfWork) ProductRepository() ports.ProductRepository {
	return catalogrepo.NewGormProductRepository(uow.conn(), uow)
}

// PickupLocationRepository provides access to pickup locations within the unit of work.
func (uow *GormUnitOfWork) PickupLocationRepository() ports.PickupLocationRepository {
	return catalogrepo.NewGormPickupLocationRepository(uow.conn(), uow)
}

// OrderRepository provides access to orders within the unit of work. Orders
// read through it resolve their users, products and locations in the same
// transaction.
func (uow *GormUnitOfWork) OrderRepository() ports.OrderRepository {
	db := uow.conn()
	return orderrepo.NewGormOrderRepository(
		db,
		uow,
		userrepo.NewGormUserRepository(db, uow),
		catalogrepo.NewGormProductRepository(db, uow),
		catalogrepo.NewGormPickupLocationRepository(db, uow),
	)
}

// TrackAggregate registers an aggregate as modified within this unit of work.
// Repository implementations call it after every successful write.
func (uow *GormUnitOfWork) TrackAggregate(id kernel.UUID, aggregate any) {
	uow.trackedAggregates = append(uow.trackedAggregates, trackedAggregate{
		ID:        id,
		Aggregate: aggregate,
	})
}

// TrackedAggregates returns the number of aggregates written so far.
func (uow *GormUnitOfWork) TrackedAggregates() int {
	return len(uow.trackedAggregates)
}

func (uow *GormUnitOfWork) conn() *gorm.DB {
	if uow.tx != nil {
		return uow.tx
	}
	return uow.db
}
