package order

import (
	"bakery/internal/core/domain/model/catalog"
	"bakery/internal/pkg/errs"
)

var ErrItemProductIsRequired = errs.NewValueIsRequiredError("item product")

// Item is one ordered product line.
type Item struct {
	product  *catalog.Product
	quantity int
	comment  string
}

// NewItem creates an order line. quantity must be positive; comment may be empty.
func NewItem(product *catalog.Product, quantity int, comment string) (Item, error) {
	if product == nil || product.Validate() != nil {
		return Item{}, ErrItemProductIsRequired
	}
	if quantity <= 0 {
		return Item{}, errs.NewValueIsOutOfRangeError("quantity", quantity, 1, "unbounded")
	}
	return Item{product: product, quantity: quantity, comment: comment}, nil
}

func (i Item) Product() *catalog.Product { return i.product }
func (i Item) Quantity() int             { return i.quantity }
func (i Item) Comment() string           { return i.comment }

// Subtotal is quantity times the product's unit price, in minor units.
func (i Item) Subtotal() int {
	return i.quantity * i.product.Price()
}
