package datagen

import (
	"errors"
	"fmt"

	"bakery/internal/core/domain/model/catalog"
	"bakery/internal/core/domain/model/identity"
	"bakery/internal/core/domain/model/kernel"
	"bakery/internal/core/domain/model/order"
	"bakery/internal/pkg/errs"
)

// MaxItemsPerOrder bounds the number of distinct products on a synthesized
// order. The product pool must hold at least this many entries.
const MaxItemsPerOrder = 3

// maxPickAttempts bounds duplicate rejection when choosing products.
const maxPickAttempts = 1000

var (
	ErrProductPoolIsTooSmall = errors.New("product pool is too small")
	ErrStaffIsRequired       = errs.NewValueIsRequiredError("barista and baker")
)

// Synthesizer builds populated orders from reference pools.
//
// Key responsibilities:
//   - Filling in a random customer, pickup location and due time
//   - Choosing the order state with PolicyState
//   - Adding one to three distinct products
//   - Replacing the placeholder history with ReconstructHistory's ledger
//
// Every draw goes through the Random the synthesizer was built with, in a fixed
// order, so equal seeds produce equal orders.
type Synthesizer struct {
	products  Picker[*catalog.Product]
	locations Picker[*catalog.PickupLocation]
	barista   *identity.User
	baker     *identity.User
	rng       Random
}

// NewSynthesizer fails fast on pools the synthesizer could never draw from
// successfully.
//
// Returns:
//   - ErrValueIsRequired: when the location pool is empty or a staff member is missing
//   - ErrProductPoolIsTooSmall wrapping ErrValueIsOutOfRange: when the product pool holds fewer
//     than MaxItemsPerOrder products
func NewSynthesizer(
	products Picker[*catalog.Product],
	locations Picker[*catalog.PickupLocation],
	barista, baker *identity.User,
	rng Random,
) (*Synthesizer, error) {
	var err error
	if products == nil || products.Len() < MaxItemsPerOrder {
		size := 0
		if products != nil {
			size = products.Len()
		}
		err = errors.Join(err, fmt.Errorf("%w: %w",
			ErrProductPoolIsTooSmall,
			errs.NewValueIsOutOfRangeError("product pool size", size, MaxItemsPerOrder, "unbounded"),
		))
	}
	if locations == nil || locations.Len() == 0 {
		err = errors.Join(err, errs.NewValueIsRequiredError("pickup locations"))
	}
	if barista == nil || baker == nil {
		err = errors.Join(err, ErrStaffIsRequired)
	}
	if rng == nil {
		err = errors.Join(err, errs.NewValueIsRequiredError("random source"))
	}
	if err != nil {
		return nil, err
	}

	return &Synthesizer{
		products:  products,
		locations: locations,
		barista:   barista,
		baker:     baker,
		rng:       rng,
	}, nil
}

// Synthesize builds one order due on dueDate, in the state it would plausibly
// be in on today.
func (s *Synthesizer) Synthesize(dueDate, today kernel.Date) (*order.Order, error) {
	o, err := order.NewOrder(s.barista, today.Time())
	if err != nil {
		return nil, err
	}

	customer, err := s.customer()
	if err != nil {
		return nil, err
	}
	if err := errors.Join(
		o.SetCustomer(customer),
		o.SetPickupLocation(s.locations.Pick()),
		o.SetDueDate(dueDate),
	); err != nil {
		return nil, err
	}
	o.SetDueTime(kernel.MustTimeOfDay(8+4*s.rng.IntN(3), 0))

	if err := o.Transition(s.barista, PolicyState(o.DueDate(), today, s.rng), today.Time()); err != nil {
		return nil, err
	}

	items, err := s.items()
	if err != nil {
		return nil, err
	}
	if err := o.SetItems(items); err != nil {
		return nil, err
	}

	history, err := ReconstructHistory(o, s.barista, s.baker, s.rng)
	if err != nil {
		return nil, fmt.Errorf("reconstruct history of order %s: %w", o.ID(), err)
	}
	if err := o.SetHistory(history); err != nil {
		return nil, err
	}

	return o, nil
}

func (s *Synthesizer) customer() (order.Customer, error) {
	first := pick(s.rng, firstNames)
	last := pick(s.rng, lastNames)
	phone := fmt.Sprintf("+1-555-%04d", s.rng.IntN(10000))

	details := ""
	if s.rng.IntN(10) == 0 {
		details = "Very important customer"
	}
	return order.NewCustomer(first+" "+last, phone, details)
}

func (s *Synthesizer) items() ([]order.Item, error) {
	count := 1 + s.rng.IntN(MaxItemsPerOrder)
	items := make([]order.Item, 0, count)
	used := make(map[kernel.UUID]struct{}, count)

	for range count {
		product, err := s.distinctProduct(used)
		if err != nil {
			return nil, err
		}
		used[product.ID()] = struct{}{}

		quantity := s.rng.IntN(10) + 1
		comment := ""
		if s.rng.IntN(5) == 0 {
			comment = "Gluten free"
			if s.rng.Bool() {
				comment = "Lactose free"
			}
		}

		item, err := order.NewItem(product, quantity, comment)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, nil
}

func (s *Synthesizer) distinctProduct(used map[kernel.UUID]struct{}) (*catalog.Product, error) {
	for range maxPickAttempts {
		p := s.products.Pick()
		if _, dup := used[p.ID()]; !dup {
			return p, nil
		}
	}
	return nil, fmt.Errorf("no distinct product after %d draws: %w", maxPickAttempts, ErrProductPoolIsTooSmall)
}
