package commands

import (
	"context"
	"errors"
	"fmt"

	"bakery/internal/core/domain/model/catalog"
	"bakery/internal/core/domain/model/identity"
	"bakery/internal/core/domain/model/order"
	"bakery/internal/core/domain/services/datagen"
	"bakery/internal/core/ports"
)

// ErrDemoDataAlreadyPresent is returned when the store already holds users.
// Callers are expected to treat it as "nothing to do".
var ErrDemoDataAlreadyPresent = errors.New("demo data already present")

// SeedDemoDataCommandHandler writes the demo dataset in a single transaction.
// Either every entity is stored or none is, so a failed run never leaves a
// half-seeded store behind that the emptiness check would then skip.
type SeedDemoDataCommandHandler struct {
	uowFactory SeedUoWFactory
	hasher     ports.PasswordHasher
}

// NewSeedDemoDataCommandHandler creates a seeding handler. hasher turns the
// demo passwords into stored hashes.
func NewSeedDemoDataCommandHandler(uowFactory SeedUoWFactory, hasher ports.PasswordHasher) SeedDemoDataCommandHandler {
	return SeedDemoDataCommandHandler{
		uowFactory: uowFactory,
		hasher:     hasher,
	}
}

// Handle seeds the store unless it already holds users, in which case it
// returns ErrDemoDataAlreadyPresent without writing anything.
func (h *SeedDemoDataCommandHandler) Handle(ctx context.Context, cmd SeedDemoDataCommand) (datagen.Stats, error) {
	if err := cmd.Validate(); err != nil {
		return datagen.Stats{}, err
	}

	generator, err := datagen.NewGenerator(h.hasher, datagen.NewSource(cmd.Seed()))
	if err != nil {
		return datagen.Stats{}, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return datagen.Stats{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	users, err := uow.UserRepository().Count(ctx)
	if err != nil {
		return datagen.Stats{}, fmt.Errorf("count users: %w", err)
	}
	if users > 0 {
		return datagen.Stats{}, ErrDemoDataAlreadyPresent
	}

	stats, err := generator.Generate(ctx, cmd.Today(), uowSink{uow: uow})
	if err != nil {
		return datagen.Stats{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return datagen.Stats{}, err
	}

	return stats, nil
}

// uowSink stores generated entities through the repositories of one unit of work.
type uowSink struct {
	uow SeedUoW
}

func (s uowSink) AddUser(ctx context.Context, user *identity.User) error {
	return s.uow.UserRepository().Add(ctx, user)
}

func (s uowSink) AddProduct(ctx context.Context, product *catalog.Product) error {
	return s.uow.ProductRepository().Add(ctx, product)
}

func (s uowSink) AddPickupLocation(ctx context.Context, location *catalog.PickupLocation) error {
	return s.uow.PickupLocationRepository().Add(ctx, location)
}

func (s uowSink) AddOrder(ctx context.Context, o *order.Order) error {
	return s.uow.OrderRepository().Add(ctx, o)
}
