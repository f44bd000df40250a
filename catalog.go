package inventory

import (
	"fmt"
	"slices"
	"strings"
)

// Catalog holds products indexed by their identity key.
//
// The catalog enforces the consolidation invariant: at most one product per
// key at all times. Products keep their insertion order, which is the order
// snapshots are returned in; any other ordering is produced on demand by
// SortProducts.
//
// A Catalog owns its products exclusively and is not safe for concurrent
// mutation.
type Catalog struct {
	products []*Product
	index    map[Key]*Product
}

// NewCatalog returns a new empty catalog.
func NewCatalog() *Catalog {
	return &Catalog{
		products: make([]*Product, 0),
		index:    make(map[Key]*Product),
	}
}

// Len returns the number of distinct products in the catalog.
func (c *Catalog) Len() int { return len(c.products) }

// Has reports whether a product with this key is in the catalog.
func (c *Catalog) Has(key Key) bool {
	_, ok := c.index[key]
	return ok
}

// Get returns a copy of the product with this key.
func (c *Catalog) Get(key Key) (Product, bool) {
	p, ok := c.index[key]
	if !ok {
		return Product{}, false
	}
	return *p, true
}

// Add inserts a product into the catalog, taking ownership of it. If a
// product with the same key is already stored, the incoming quantity is
// merged into it instead and the incoming price is discarded: restocking
// accumulates quantity, while the stored price changes only through
// UpdatePrice. Add reports whether a new entry was created rather than
// merged.
func (c *Catalog) Add(p *Product) (created bool) {
	key := p.Key()
	if stored, ok := c.index[key]; ok {
		stored.AddQuantity(p.Quantity())
		return false
	}
	c.products = append(c.products, p)
	c.index[key] = p
	return true
}

// Remove deletes products from the catalog and returns how many were
// removed. With a category, it removes exactly the entry identified by
// (name, category). With an empty category, it removes every product whose
// name matches, case-insensitively, across all categories. When nothing
// matches the catalog is left untouched and 0 is returned.
func (c *Catalog) Remove(name, category string) int {
	if strings.TrimSpace(category) != "" {
		key := NewKey(name, category)
		if !c.Has(key) {
			return 0
		}
		delete(c.index, key)
		c.products = slices.DeleteFunc(c.products, func(p *Product) bool { return p.Key() == key })
		return 1
	}

	target := normalize(name)
	removed := 0
	c.products = slices.DeleteFunc(c.products, func(p *Product) bool {
		if normalize(p.name) != target {
			return false
		}
		delete(c.index, p.Key())
		removed++
		return true
	})
	return removed
}

// UpdatePrice replaces the price of the product identified by (name,
// category). It returns ErrNotFound when the entry is absent. A non-positive
// price is silently rejected, per Product.UpdatePrice.
func (c *Catalog) UpdatePrice(name, category string, price Money) error {
	p, ok := c.index[NewKey(name, category)]
	if !ok {
		return fmt.Errorf("%w: no product %q in category %q", ErrNotFound, name, category)
	}
	p.UpdatePrice(price)
	return nil
}

// Search returns copies of all products whose name or category contains the
// query, case-insensitively. Result order follows insertion order but is not
// part of the contract; callers wanting a stable order apply SortProducts.
func (c *Catalog) Search(query string) []Product {
	q := normalize(query)
	var results []Product
	for _, p := range c.products {
		if strings.Contains(normalize(p.name), q) || strings.Contains(normalize(p.category), q) {
			results = append(results, *p)
		}
	}
	return results
}

// Products returns a snapshot of all products in insertion order. The
// snapshot holds copies: mutating it never affects the stored products.
func (c *Catalog) Products() []Product {
	snapshot := make([]Product, 0, len(c.products))
	for _, p := range c.products {
		snapshot = append(snapshot, *p)
	}
	return snapshot
}

// Stats are the aggregate figures of a catalog.
type Stats struct {
	// Products counts distinct identity keys, not summed quantities.
	Products int
	// Categories counts distinct normalized category labels, consistent
	// with the identity and search policy.
	Categories int
	// TotalValue is the sum of all product totals.
	TotalValue Money
}

// Statistics computes the aggregate figures over the whole catalog.
func (c *Catalog) Statistics() Stats {
	categories := make(map[string]struct{})
	var total Money
	for _, p := range c.products {
		categories[normalize(p.category)] = struct{}{}
		total = total.Add(p.Total())
	}
	return Stats{
		Products:   len(c.products),
		Categories: len(categories),
		TotalValue: total,
	}
}
