package order

import (
	"bakery/internal/core/domain/model/catalog"
	"bakery/internal/core/domain/model/kernel"
)

// Summary is the read-only view of an order used by listings and projections.
// *Order satisfies it.
type Summary interface {
	ID() kernel.UUID
	DueDate() kernel.Date
	DueTime() kernel.TimeOfDay
	PickupLocation() *catalog.PickupLocation
	Customer() Customer
	Items() []Item
	State() State
	TotalPrice() int
}

var _ Summary = (*Order)(nil)
