package catalog

import (
	"errors"
	"strings"

	"bakery/internal/core/domain/model/kernel"
	"bakery/internal/pkg/errs"
	"bakery/internal/pkg/guard"
)

var (
	ErrPickupLocationIsNotConstructed = errors.New(
		"PickupLocation must be created via NewPickupLocation or RestorePickupLocation",
	)
	ErrPickupLocationNameIsRequired = errs.NewValueIsRequiredError("pickup location name")
)

// PickupLocation is where a customer collects an order.
type PickupLocation struct {
	id   kernel.UUID
	name string

	guard guard.ConstructorGuard
}

func NewPickupLocation(name string) (*PickupLocation, error) {
	return RestorePickupLocation(kernel.NewUUID(), name)
}

func RestorePickupLocation(id kernel.UUID, name string) (*PickupLocation, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if strings.TrimSpace(name) == "" {
		return nil, ErrPickupLocationNameIsRequired
	}
	return &PickupLocation{id: id, name: name, guard: guard.NewConstructorGuard()}, nil
}

func (l *PickupLocation) Validate() error {
	if l == nil {
		return ErrPickupLocationIsNotConstructed
	}
	return l.guard.Validate(ErrPickupLocationIsNotConstructed)
}

func (l *PickupLocation) IsEqual(other *PickupLocation) bool {
	return l != nil && other != nil && l.id.IsEqual(other.id)
}

func (l *PickupLocation) ID() kernel.UUID { return l.id }
func (l *PickupLocation) Name() string    { return l.name }
