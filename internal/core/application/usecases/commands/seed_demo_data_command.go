package commands

import (
	"errors"

	"bakery/internal/core/domain/model/kernel"
	"bakery/internal/pkg/guard"
)

var ErrSeedDemoDataCommandIsNotConstructed = errors.New(
	"SeedDemoDataCommand must be created via NewSeedDemoDataCommand constructor",
)

// SeedDemoDataCommand represents a request to populate an empty store with the
// demo dataset as it would look on a given day.
//
// Example:
//
//	cmd, err := NewSeedDemoDataCommand(clock.Today(), datagen.DefaultSeed)
//	if err != nil {
//	    return fmt.Errorf("invalid command: %w", err)
//	}
//
//	handler := NewSeedDemoDataCommandHandler(uowFactory, hasher)
//	stats, err := handler.Handle(ctx, cmd)
//	if errors.Is(err, ErrDemoDataAlreadyPresent) {
//	    // nothing to do
//	}
type SeedDemoDataCommand struct { //nolint:recvcheck //using for validation
	today kernel.Date
	seed  uint64

	guard guard.ConstructorGuard
}

// NewSeedDemoDataCommand creates a seeding command. Any seed is valid; equal
// seeds and days produce equal datasets.
func NewSeedDemoDataCommand(today kernel.Date, seed uint64) (SeedDemoDataCommand, error) {
	command := SeedDemoDataCommand{
		seed:  seed,
		guard: guard.NewConstructorGuard(),
	}

	if err := command.setToday(today); err != nil {
		return SeedDemoDataCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c SeedDemoDataCommand) Validate() error {
	return c.guard.Validate(ErrSeedDemoDataCommandIsNotConstructed)
}

// Today returns the reference day of the dataset.
func (c SeedDemoDataCommand) Today() kernel.Date {
	return c.today
}

func (c SeedDemoDataCommand) Seed() uint64 {
	return c.seed
}

func (c *SeedDemoDataCommand) setToday(today kernel.Date) error {
	if err := today.Validate(); err != nil {
		return err
	}

	c.today = today
	return nil
}
