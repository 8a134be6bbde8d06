package datagen

import (
	"context"
	"fmt"

	"bakery/internal/core/domain/model/catalog"
	"bakery/internal/core/domain/model/identity"
	"bakery/internal/core/ports"
)

// PickupLocationNames are the locations every demo store starts with.
var PickupLocationNames = []string{"Store", "Bakery"}

// ProductName combines one or two distinct fillings with a product type, for
// example "Vanilla Bun" or "Chocolate Raspberry Tart".
func ProductName(rng Random) string {
	first := pick(rng, fillings)
	name := first
	if rng.Bool() {
		second := pick(rng, fillings)
		for second == first {
			second = pick(rng, fillings)
		}
		name += " " + second
	}
	return name + " " + pick(rng, productTypes)
}

// NewProducts creates n products with random names and a price between 2.00
// and 102.00, in minor units.
func NewProducts(n int, rng Random) ([]*catalog.Product, error) {
	products := make([]*catalog.Product, 0, n)
	for range n {
		name := ProductName(rng)
		price := int((2.0 + rng.Float64()*100.0) * 100.0)
		p, err := catalog.NewProduct(name, price)
		if err != nil {
			return nil, err
		}
		products = append(products, p)
	}
	return products, nil
}

func NewPickupLocations() ([]*catalog.PickupLocation, error) {
	locations := make([]*catalog.PickupLocation, 0, len(PickupLocationNames))
	for _, name := range PickupLocationNames {
		l, err := catalog.NewPickupLocation(name)
		if err != nil {
			return nil, err
		}
		locations = append(locations, l)
	}
	return locations, nil
}

// Staff is the fixed set of demo accounts. Extra holds accounts nothing else
// references, so they can be deleted freely.
type Staff struct {
	Baker   *identity.User
	Barista *identity.User
	Admin   *identity.User
	Extra   []*identity.User
}

// All lists the accounts in creation order.
func (s Staff) All() []*identity.User {
	return append([]*identity.User{s.Baker, s.Barista, s.Admin}, s.Extra...)
}

type account struct {
	email     string
	password  string
	firstName string
	lastName  string
	role      identity.Role
	locked    bool
}

var (
	bakerAccount   = account{"baker@vaadin.com", "baker", "Heidi", "Carter", identity.Baker, false}
	baristaAccount = account{"barista@vaadin.com", "barista", "Malin", "Castro", identity.Barista, true}
	adminAccount   = account{"admin@vaadin.com", "admin", "Göran", "Rich", identity.Admin, true}
	extraAccounts  = []account{
		{"peter@vaadin.com", "peter", "Peter", "Bush", identity.Barista, false},
		{"mary@vaadin.com", "mary", "Mary", "Ocon", identity.Baker, true},
	}
)

// NewStaff creates the demo accounts, hashing each password with hasher.
func NewStaff(ctx context.Context, hasher ports.PasswordHasher) (Staff, error) {
	var (
		staff Staff
		err   error
	)
	if staff.Baker, err = newAccount(ctx, hasher, bakerAccount); err != nil {
		return Staff{}, err
	}
	if staff.Barista, err = newAccount(ctx, hasher, baristaAccount); err != nil {
		return Staff{}, err
	}
	if staff.Admin, err = newAccount(ctx, hasher, adminAccount); err != nil {
		return Staff{}, err
	}
	for _, a := range extraAccounts {
		u, err := newAccount(ctx, hasher, a)
		if err != nil {
			return Staff{}, err
		}
		staff.Extra = append(staff.Extra, u)
	}
	return staff, nil
}

func newAccount(ctx context.Context, hasher ports.PasswordHasher, a account) (*identity.User, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	hash, err := hasher.Hash(a.password)
	if err != nil {
		return nil, fmt.Errorf("hash password of %s: %w", a.email, err)
	}
	return identity.NewUser(a.email, a.firstName, a.lastName, hash, a.role, a.locked)
}
