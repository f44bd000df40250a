package inventory

import (
	"fmt"
	"strings"
)

// Key is the canonical identity of a catalog entity, derived from the
// normalized name and category. Two entries sharing a Key represent the same
// entity and are consolidated into a single product; the category is a
// required disambiguator, so the same name under two categories yields two
// distinct entities.
type Key string

// NewKey derives the identity key for a (name, category) pair. It is
// insensitive to letter case and to surrounding whitespace on both fields.
func NewKey(name, category string) Key {
	return Key(normalize(name) + "_" + normalize(category))
}

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// Product is a single catalog entry. Its name and category are fixed at
// creation; only the quantity (through merges) and the price (through an
// explicit update) change afterwards, so its Key is stable for its lifetime.
type Product struct {
	name     string
	price    Money
	category string
	quantity int
}

// NewProduct creates a product, trimming name and category. It returns
// ErrInvalidValue when the name or category is empty, the price is negative
// or the quantity is negative. Quantity is 0 when the caller has no stock
// to record yet.
func NewProduct(name string, price Money, category string, quantity int) (*Product, error) {
	name = strings.TrimSpace(name)
	category = strings.TrimSpace(category)
	if name == "" {
		return nil, fmt.Errorf("%w: product name is empty", ErrInvalidValue)
	}
	if category == "" {
		return nil, fmt.Errorf("%w: product category is empty", ErrInvalidValue)
	}
	if price.IsNegative() {
		return nil, fmt.Errorf("%w: price %s is negative", ErrInvalidValue, price.Fixed())
	}
	if quantity < 0 {
		return nil, fmt.Errorf("%w: quantity %d is negative", ErrInvalidValue, quantity)
	}
	return &Product{name: name, price: price, category: category, quantity: quantity}, nil
}

func (p *Product) Name() string     { return p.name }
func (p *Product) Price() Money     { return p.price }
func (p *Product) Category() string { return p.category }
func (p *Product) Quantity() int    { return p.quantity }

// Key returns the identity key of this product.
func (p *Product) Key() Key { return NewKey(p.name, p.category) }

// Total returns price times quantity, exact, without rounding.
func (p *Product) Total() Money { return p.price.MulInt(p.quantity) }

// AddQuantity applies a quantity delta. The merge policy only ever passes
// non-negative deltas, but the operation itself accepts negative ones to
// leave room for decrement support.
func (p *Product) AddQuantity(delta int) { p.quantity += delta }

// UpdatePrice replaces the price. A non-positive proposed price is silently
// rejected, leaving the existing price unchanged.
func (p *Product) UpdatePrice(price Money) {
	if price.IsPositive() {
		p.price = price
	}
}
