package catalog

import (
	"errors"
	"strings"

	"bakery/internal/core/domain/model/kernel"
	"bakery/internal/pkg/errs"
	"bakery/internal/pkg/guard"
)

var (
	ErrProductIsNotConstructed = errors.New("Product must be created via NewProduct or RestoreProduct")
	ErrProductNameIsRequired   = errs.NewValueIsRequiredError("product name")
)

// Product is a catalog entry. Price is expressed in minor currency units
// (cents), never as a float.
type Product struct {
	id    kernel.UUID
	name  string
	price int

	guard guard.ConstructorGuard
}

func NewProduct(name string, price int) (*Product, error) {
	return RestoreProduct(kernel.NewUUID(), name, price)
}

func RestoreProduct(id kernel.UUID, name string, price int) (*Product, error) {
	p := &Product{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		p.setID(id),
		p.setName(name),
		p.setPrice(price),
	); err != nil {
		return nil, err
	}

	return p, nil
}

func (p *Product) Validate() error {
	if p == nil {
		return ErrProductIsNotConstructed
	}
	return p.guard.Validate(ErrProductIsNotConstructed)
}

// IsEqual compares products by identifier.
func (p *Product) IsEqual(other *Product) bool {
	return p != nil && other != nil && p.id.IsEqual(other.id)
}

func (p *Product) ID() kernel.UUID { return p.id }
func (p *Product) Name() string    { return p.name }
func (p *Product) Price() int      { return p.price }

func (p *Product) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.id = id
	return nil
}

func (p *Product) setName(name string) error {
	if strings.TrimSpace(name) == "" {
		return ErrProductNameIsRequired
	}
	p.name = name
	return nil
}

func (p *Product) setPrice(price int) error {
	if price < 0 {
		return errs.NewValueIsOutOfRangeError("price", price, 0, "unbounded")
	}
	p.price = price
	return nil
}
