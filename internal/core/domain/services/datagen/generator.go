package datagen

import (
	"context"
	"errors"
	"fmt"
	"time"

	"bakery/internal/core/domain/model/catalog"
	"bakery/internal/core/domain/model/identity"
	"bakery/internal/core/domain/model/kernel"
	"bakery/internal/core/domain/model/order"
	"bakery/internal/core/ports"
	"bakery/internal/pkg/errs"
)

const (
	// LinkedProducts are referenced by generated orders.
	LinkedProducts = 8
	// UnlinkedProducts are never ordered and can be deleted freely.
	UnlinkedProducts = 4

	yearsToInclude = 2
)

// PinnedDueTime is the due time of the minimal order generated for today.
var PinnedDueTime = kernel.MustTimeOfDay(8, 0)

// Sink receives generated entities in creation order: users, products, pickup
// locations and finally orders. Orders only reference entities the sink has
// already received.
type Sink interface {
	AddUser(ctx context.Context, user *identity.User) error
	AddProduct(ctx context.Context, product *catalog.Product) error
	AddPickupLocation(ctx context.Context, location *catalog.PickupLocation) error
	AddOrder(ctx context.Context, o *order.Order) error
}

// Stats summarises one run.
type Stats struct {
	Users           int
	Products        int
	PickupLocations int
	Orders          map[order.State]int
}

// TotalOrders sums Orders over all states.
func (s Stats) TotalOrders() int {
	total := 0
	for _, n := range s.Orders {
		total += n
	}
	return total
}

// Generator produces the complete demo dataset.
type Generator struct {
	hasher ports.PasswordHasher
	rng    Random
}

func NewGenerator(hasher ports.PasswordHasher, rng Random) (*Generator, error) {
	if hasher == nil {
		return nil, errs.NewValueIsRequiredError("password hasher")
	}
	if rng == nil {
		return nil, errs.NewValueIsRequiredError("random source")
	}
	return &Generator{hasher: hasher, rng: rng}, nil
}

// Generate seeds staff, catalog and orders relative to today and hands every
// entity to sink. The first order is a pinned order for today at 08:00 with a
// single item and a single history entry. It is followed by orders for each day
// from January 1st two years back up to, but excluding, one month after today.
// Daily volume trends slightly upwards over the range.
//
// Generation stops at the first sink error or when ctx is done.
func (g *Generator) Generate(ctx context.Context, today kernel.Date, sink Sink) (Stats, error) {
	if err := today.Validate(); err != nil {
		return Stats{}, err
	}
	stats := Stats{Orders: make(map[order.State]int)}

	staff, err := NewStaff(ctx, g.hasher)
	if err != nil {
		return stats, err
	}
	for _, u := range staff.All() {
		if err := sink.AddUser(ctx, u); err != nil {
			return stats, fmt.Errorf("add user %s: %w", u.Email(), err)
		}
		stats.Users++
	}

	linked, err := g.addProducts(ctx, sink, LinkedProducts, &stats)
	if err != nil {
		return stats, err
	}
	if _, err := g.addProducts(ctx, sink, UnlinkedProducts, &stats); err != nil {
		return stats, err
	}

	locations, err := NewPickupLocations()
	if err != nil {
		return stats, err
	}
	for _, l := range locations {
		if err := sink.AddPickupLocation(ctx, l); err != nil {
			return stats, fmt.Errorf("add pickup location %s: %w", l.Name(), err)
		}
		stats.PickupLocations++
	}

	synth, err := g.synthesizer(linked, locations, staff)
	if err != nil {
		return stats, err
	}

	pinned, err := g.pinnedOrder(synth, today)
	if err != nil {
		return stats, err
	}
	if err := addOrder(ctx, sink, pinned, &stats); err != nil {
		return stats, err
	}

	end := today.AddMonths(1)
	for due := kernel.NewDate(today.Year()-yearsToInclude, time.January, 1); due.Before(end); due = due.AddDays(1) {
		if err := ctx.Err(); err != nil {
			return stats, err
		}
		for range g.ordersOn(due, today) {
			o, err := synth.Synthesize(due, today)
			if err != nil {
				return stats, fmt.Errorf("synthesize order due %s: %w", due, err)
			}
			if err := addOrder(ctx, sink, o, &stats); err != nil {
				return stats, err
			}
		}
	}

	return stats, nil
}

// ordersOn is the volume trend: a uniform base of 0..9 orders plus a term
// that grows by 3% of an order per month over the range.
func (g *Generator) ordersOn(due, today kernel.Date) int {
	relativeMonth := (due.Year()-today.Year()+yearsToInclude)*12 + int(due.Month())
	multiplier := 1.0 + 0.03*float64(relativeMonth)
	return int(float64(g.rng.IntN(10)) + 1*multiplier)
}

func (g *Generator) pinnedOrder(synth *Synthesizer, today kernel.Date) (*order.Order, error) {
	o, err := synth.Synthesize(today, today)
	if err != nil {
		return nil, err
	}
	o.SetDueTime(PinnedDueTime)
	if err := errors.Join(
		o.SetHistory(o.History()[:1]),
		o.SetItems(o.Items()[:1]),
	); err != nil {
		return nil, err
	}
	return o, nil
}

func (g *Generator) addProducts(ctx context.Context, sink Sink, n int, stats *Stats) ([]*catalog.Product, error) {
	products, err := NewProducts(n, g.rng)
	if err != nil {
		return nil, err
	}
	for _, p := range products {
		if err := sink.AddProduct(ctx, p); err != nil {
			return nil, fmt.Errorf("add product %s: %w", p.Name(), err)
		}
		stats.Products++
	}
	return products, nil
}

func (g *Generator) synthesizer(
	products []*catalog.Product,
	locations []*catalog.PickupLocation,
	staff Staff,
) (*Synthesizer, error) {
	productPicker, err := NewPopularityPicker(products, g.rng)
	if err != nil {
		return nil, err
	}
	locationPicker, err := NewUniformPicker(locations, g.rng)
	if err != nil {
		return nil, err
	}
	return NewSynthesizer(productPicker, locationPicker, staff.Barista, staff.Baker, g.rng)
}

func addOrder(ctx context.Context, sink Sink, o *order.Order, stats *Stats) error {
	if err := sink.AddOrder(ctx, o); err != nil {
		return fmt.Errorf("add order %s: %w", o.ID(), err)
	}
	stats.Orders[o.State()]++
	return nil
}
