package order

import (
	"errors"
	"fmt"
	"time"

	"bakery/internal/core/domain/model/catalog"
	"bakery/internal/core/domain/model/identity"
	"bakery/internal/core/domain/model/kernel"
	"bakery/internal/pkg/errs"
	"bakery/internal/pkg/guard"
)

// PlacedMessage is the text of the first history entry of every order.
const PlacedMessage = "Order placed"

var (
	ErrOrderIsNotConstructed   = errors.New("Order must be created via NewOrder or RestoreOrder")
	ErrPickupLocationIsMissing = errs.NewValueIsRequiredError("pickup location")
	ErrItemsAreRequired        = errs.NewValueIsRequiredError("items")
	ErrHistoryIsRequired       = errs.NewValueIsRequiredError("history")
	ErrActorIsRequired         = errs.NewValueIsRequiredError("acting user")
)

// Order is the aggregate root of a customer purchase.
//
// Order exclusively owns its Customer, Items and History. Product, pickup
// location and history authors are references to entities owned elsewhere.
//
// Invariants kept by the methods below:
//   - State() equals the state of the last history entry
//   - history timestamps never decrease
//   - items, once set, are non-empty and reference distinct products
type Order struct {
	id             kernel.UUID
	dueDate        kernel.Date
	dueTime        kernel.TimeOfDay
	pickupLocation *catalog.PickupLocation
	customer       Customer
	items          []Item
	state          State
	history        []HistoryItem

	guard guard.ConstructorGuard
}

// NewOrder starts an order in NEW with an empty customer, no items and one
// "Order placed" entry authored by createdBy at placedAt.
func NewOrder(createdBy *identity.User, placedAt time.Time) (*Order, error) {
	o := &Order{
		id:    kernel.NewUUID(),
		state: New,
		guard: guard.NewConstructorGuard(),
	}
	if err := o.AppendHistory(createdBy, PlacedMessage, placedAt); err != nil {
		return nil, err
	}
	return o, nil
}

// RestoreOrder rebuilds a persisted order. The state is taken from the last
// history entry.
func RestoreOrder(
	id kernel.UUID,
	dueDate kernel.Date,
	dueTime kernel.TimeOfDay,
	pickupLocation *catalog.PickupLocation,
	customer Customer,
	items []Item,
	history []HistoryItem,
) (*Order, error) {
	o := &Order{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		o.setID(id),
		o.SetDueDate(dueDate),
		o.SetPickupLocation(pickupLocation),
		o.SetCustomer(customer),
		o.SetItems(items),
		o.SetHistory(history),
	); err != nil {
		return nil, err
	}
	o.dueTime = dueTime

	return o, nil
}

// Validate reports whether the order is constructed and fully populated, that
// is ready to be persisted.
func (o *Order) Validate() error {
	if o == nil {
		return ErrOrderIsNotConstructed
	}
	if err := o.guard.Validate(ErrOrderIsNotConstructed); err != nil {
		return err
	}

	var err error
	if dateErr := o.dueDate.Validate(); dateErr != nil {
		err = errors.Join(err, errs.NewValueIsRequiredErrorWithCause("due date", dateErr))
	}
	if o.pickupLocation == nil {
		err = errors.Join(err, ErrPickupLocationIsMissing)
	}
	if customerErr := o.customer.Validate(); customerErr != nil {
		err = errors.Join(err, customerErr)
	}
	if len(o.items) == 0 {
		err = errors.Join(err, ErrItemsAreRequired)
	}
	return err
}

func (o *Order) ID() kernel.UUID                         { return o.id }
func (o *Order) DueDate() kernel.Date                    { return o.dueDate }
func (o *Order) DueTime() kernel.TimeOfDay               { return o.dueTime }
func (o *Order) PickupLocation() *catalog.PickupLocation { return o.pickupLocation }
func (o *Order) Customer() Customer                      { return o.customer }
func (o *Order) State() State                            { return o.state }

// DueAt is the due date at the due time.
func (o *Order) DueAt() time.Time {
	return o.dueDate.At(o.dueTime)
}

// Items returns a copy of the order lines.
func (o *Order) Items() []Item {
	return append([]Item(nil), o.items...)
}

// History returns a copy of the ledger in insertion order.
func (o *Order) History() []HistoryItem {
	return append([]HistoryItem(nil), o.history...)
}

// TotalPrice sums the item subtotals, in minor units.
func (o *Order) TotalPrice() int {
	total := 0
	for _, item := range o.items {
		total += item.Subtotal()
	}
	return total
}

// Transition moves the order to newState without checking the lifecycle graph.
// A history entry "Order <STATE>" authored by actor is appended only when the
// state changes; requesting the current state is a silent no-op.
func (o *Order) Transition(actor *identity.User, newState State, at time.Time) error {
	if err := newState.Validate(); err != nil {
		return err
	}
	if newState == o.state {
		return nil
	}

	entry, err := o.newEntry(actor, newState.Message(), newState, at)
	if err != nil {
		return err
	}

	o.state = newState
	o.history = append(o.history, entry)
	return nil
}

// TransitionStrict is Transition guarded by State.ValidateTransitionTo, for
// callers acting on live orders rather than fabricating demo data.
func (o *Order) TransitionStrict(actor *identity.User, newState State, at time.Time) error {
	if err := o.state.ValidateTransitionTo(newState); err != nil {
		return err
	}
	return o.Transition(actor, newState, at)
}

// AppendHistory records a free-form comment stamped with the current state.
func (o *Order) AppendHistory(author *identity.User, comment string, at time.Time) error {
	entry, err := o.newEntry(author, comment, o.state, at)
	if err != nil {
		return err
	}
	o.history = append(o.history, entry)
	return nil
}

func (o *Order) SetDueDate(dueDate kernel.Date) error {
	if err := dueDate.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("due date", err)
	}
	o.dueDate = dueDate
	return nil
}

func (o *Order) SetDueTime(dueTime kernel.TimeOfDay) {
	o.dueTime = dueTime
}

func (o *Order) SetPickupLocation(location *catalog.PickupLocation) error {
	if location == nil || location.Validate() != nil {
		return ErrPickupLocationIsMissing
	}
	o.pickupLocation = location
	return nil
}

func (o *Order) SetCustomer(customer Customer) error {
	if err := customer.Validate(); err != nil {
		return err
	}
	o.customer = customer
	return nil
}

// SetItems replaces all order lines. items must be non-empty and must not
// reference the same product twice.
func (o *Order) SetItems(items []Item) error {
	if len(items) == 0 {
		return ErrItemsAreRequired
	}
	seen := make(map[kernel.UUID]struct{}, len(items))
	for _, item := range items {
		if item.product == nil {
			return ErrItemProductIsRequired
		}
		if _, dup := seen[item.product.ID()]; dup {
			return errs.NewValueIsInvalidErrorWithCause(
				"items",
				fmt.Errorf("product %s is ordered twice", item.product.ID()),
			)
		}
		seen[item.product.ID()] = struct{}{}
	}
	o.items = append([]Item(nil), items...)
	return nil
}

// SetHistory replaces the whole ledger and adopts the state of its last entry.
// Timestamps must not decrease.
func (o *Order) SetHistory(history []HistoryItem) error {
	if len(history) == 0 {
		return ErrHistoryIsRequired
	}
	for i := 1; i < len(history); i++ {
		if history[i].timestamp.Before(history[i-1].timestamp) {
			return errs.NewValueIsInvalidErrorWithCause("history", fmt.Errorf(
				"entry %d at %s precedes entry %d at %s",
				i, history[i].timestamp.Format(time.DateTime), i-1, history[i-1].timestamp.Format(time.DateTime),
			))
		}
	}
	o.history = append([]HistoryItem(nil), history...)
	o.state = history[len(history)-1].state
	return nil
}

func (o *Order) newEntry(author *identity.User, message string, state State, at time.Time) (HistoryItem, error) {
	if author == nil {
		return HistoryItem{}, ErrActorIsRequired
	}
	// entries never precede the previous one
	if n := len(o.history); n > 0 && at.Before(o.history[n-1].timestamp) {
		at = o.history[n-1].timestamp
	}
	return NewHistoryItem(author, message, state, at)
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}
