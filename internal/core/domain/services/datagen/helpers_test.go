package datagen_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"bakery/internal/core/domain/model/catalog"
	"bakery/internal/core/domain/model/identity"
	"bakery/internal/core/domain/model/kernel"
	"bakery/internal/core/domain/model/order"

	"github.com/stretchr/testify/require"
)

// stubRandom returns fixed uniform values and replays normal samples in order.
type stubRandom struct {
	float   float64
	intN    int
	boolean bool
	normals []float64
	next    int
}

func (r *stubRandom) Float64() float64 { return r.float }
func (r *stubRandom) Bool() bool       { return r.boolean }

func (r *stubRandom) IntN(n int) int {
	return min(r.intN, n-1)
}

func (r *stubRandom) NormFloat64() float64 {
	v := r.normals[r.next%len(r.normals)]
	r.next++
	return v
}

type plainHasher struct{}

func (plainHasher) Hash(plaintext string) (string, error) { return "hashed:" + plaintext, nil }

type failingHasher struct{}

func (failingHasher) Hash(string) (string, error) { return "", errors.New("hasher is down") }

// memorySink keeps everything it receives, in order.
type memorySink struct {
	users     []*identity.User
	products  []*catalog.Product
	locations []*catalog.PickupLocation
	orders    []*order.Order

	failOrdersAfter int
}

func (s *memorySink) AddUser(_ context.Context, u *identity.User) error {
	s.users = append(s.users, u)
	return nil
}

func (s *memorySink) AddProduct(_ context.Context, p *catalog.Product) error {
	s.products = append(s.products, p)
	return nil
}

func (s *memorySink) AddPickupLocation(_ context.Context, l *catalog.PickupLocation) error {
	s.locations = append(s.locations, l)
	return nil
}

func (s *memorySink) AddOrder(_ context.Context, o *order.Order) error {
	if s.failOrdersAfter > 0 && len(s.orders) >= s.failOrdersAfter {
		return errors.New("disk full")
	}
	s.orders = append(s.orders, o)
	return nil
}

func newStaffMember(t *testing.T, email string, role identity.Role) *identity.User {
	t.Helper()
	u, err := identity.NewUser(email, "Test", "User", "hash", role, false)
	require.NoError(t, err)
	return u
}

func newProducts(t *testing.T, n int) []*catalog.Product {
	t.Helper()
	products := make([]*catalog.Product, 0, n)
	for i := range n {
		p, err := catalog.NewProduct(string(rune('A'+i))+" Bun", 100*(i+1))
		require.NoError(t, err)
		products = append(products, p)
	}
	return products
}

func newLocations(t *testing.T) []*catalog.PickupLocation {
	t.Helper()
	store, err := catalog.NewPickupLocation("Store")
	require.NoError(t, err)
	bakery, err := catalog.NewPickupLocation("Bakery")
	require.NoError(t, err)
	return []*catalog.PickupLocation{store, bakery}
}

// orderIn builds a complete order in state s without any reconstructed history.
func orderIn(t *testing.T, s order.State, due kernel.Date, dueTime kernel.TimeOfDay) *order.Order {
	t.Helper()
	barista := newStaffMember(t, "barista@vaadin.com", identity.Barista)
	o, err := order.NewOrder(barista, due.AddDays(-7).Time())
	require.NoError(t, err)
	customer, err := order.NewCustomer("Ori Carter", "+1-555-0001", "")
	require.NoError(t, err)
	item, err := order.NewItem(newProducts(t, 1)[0], 1, "")
	require.NoError(t, err)

	require.NoError(t, o.SetDueDate(due))
	o.SetDueTime(dueTime)
	require.NoError(t, o.SetPickupLocation(newLocations(t)[0]))
	require.NoError(t, o.SetCustomer(customer))
	require.NoError(t, o.SetItems([]order.Item{item}))
	require.NoError(t, o.Transition(barista, s, due.AddDays(-7).Time()))
	return o
}

func requireNonDecreasing(t *testing.T, history []order.HistoryItem) {
	t.Helper()
	for i := 1; i < len(history); i++ {
		require.Falsef(t, history[i].Timestamp().Before(history[i-1].Timestamp()),
			"entry %d (%s) precedes entry %d (%s)", i, history[i], i-1, history[i-1])
	}
}

func requireDistinctItems(t *testing.T, items []order.Item) {
	t.Helper()
	require.NotEmpty(t, items)
	seen := make(map[kernel.UUID]bool, len(items))
	for _, item := range items {
		require.False(t, seen[item.Product().ID()], "product %s ordered twice", item.Product().Name())
		seen[item.Product().ID()] = true
	}
}

func requireStateMatchesLedger(t *testing.T, o *order.Order) {
	t.Helper()
	history := o.History()
	require.NotEmpty(t, history)
	require.Equal(t, o.State(), history[len(history)-1].State())
}

var referenceDay = kernel.NewDate(2024, time.June, 15)
