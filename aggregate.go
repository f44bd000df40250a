package inventory

import (
	"cmp"
	"fmt"
	"slices"
	"strings"
)

// SortKey selects the field a product view is ordered by.
type SortKey int

const (
	// SortNone preserves the input order.
	SortNone SortKey = iota
	SortByName
	SortByPrice
	SortByQuantity
	SortByCategory
	SortByTotal
)

func (k SortKey) String() string {
	switch k {
	case SortNone:
		return "none"
	case SortByName:
		return "name"
	case SortByPrice:
		return "price"
	case SortByQuantity:
		return "quantity"
	case SortByCategory:
		return "category"
	case SortByTotal:
		return "total"
	default:
		return "unknown"
	}
}

// ParseSortKey parses a string into a SortKey. The empty string means
// SortNone, so an omitted sort flag leaves the view unsorted.
func ParseSortKey(s string) (SortKey, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "none":
		return SortNone, nil
	case "name":
		return SortByName, nil
	case "price":
		return SortByPrice, nil
	case "quantity":
		return SortByQuantity, nil
	case "category":
		return SortByCategory, nil
	case "total":
		return SortByTotal, nil
	default:
		return 0, fmt.Errorf("%w: unknown sort key %q", ErrInvalidValue, s)
	}
}

// SortProducts returns a sorted copy of the snapshot. The sort is stable:
// products comparing equal under the key keep their relative input order.
// Name and category compare case-insensitively, the numeric keys compare
// numerically, and SortNone returns the input order unchanged.
func SortProducts(products []Product, key SortKey) []Product {
	sorted := slices.Clone(products)
	if key == SortNone {
		return sorted
	}
	slices.SortStableFunc(sorted, func(a, b Product) int {
		switch key {
		case SortByName:
			return strings.Compare(strings.ToLower(a.name), strings.ToLower(b.name))
		case SortByPrice:
			return a.price.Cmp(b.price)
		case SortByQuantity:
			return cmp.Compare(a.quantity, b.quantity)
		case SortByCategory:
			return strings.Compare(strings.ToLower(a.category), strings.ToLower(b.category))
		case SortByTotal:
			return a.Total().Cmp(b.Total())
		default:
			return 0
		}
	})
	return sorted
}

// CategoryTotals groups products by their exact category label, as stored,
// and sums the product totals per group. Grouping is deliberately
// case-sensitive here: the labels shown on reports are the ones the user
// typed, while identity and search normalize case.
func CategoryTotals(products []Product) map[string]Money {
	totals := make(map[string]Money)
	for _, p := range products {
		totals[p.category] = totals[p.category].Add(p.Total())
	}
	return totals
}

// OverallTotal sums the totals of all products. Because all arithmetic is
// exact decimal, it always equals the sum of CategoryTotals over the same
// snapshot.
func OverallTotal(products []Product) Money {
	var total Money
	for _, p := range products {
		total = total.Add(p.Total())
	}
	return total
}
