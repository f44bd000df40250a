// Package renderer turns catalog snapshots into markdown reports for the
// `inv` command-line tool.
package renderer

import (
	"fmt"
	"strconv"
	"strings"

	inventory "github.com/servaisg/dev2-script-perso"
)

// Column identifies a displayable field of the catalog table. The set is
// closed: column selection is validated at the boundary with ParseColumns
// instead of resolving arbitrary field names at render time.
type Column int

const (
	ColName Column = iota
	ColQuantity
	ColPrice
	ColCategory
	ColTotal
)

// Header returns the table header label of the column.
func (c Column) Header() string {
	switch c {
	case ColName:
		return "Name"
	case ColQuantity:
		return "Quantity"
	case ColPrice:
		return "Price (EUR)"
	case ColCategory:
		return "Category"
	case ColTotal:
		return "Total (EUR)"
	default:
		return "unknown"
	}
}

// cell renders the column value of a product.
func (c Column) cell(p inventory.Product) string {
	switch c {
	case ColName:
		return p.Name()
	case ColQuantity:
		return strconv.Itoa(p.Quantity())
	case ColPrice:
		return p.Price().String()
	case ColCategory:
		return p.Category()
	case ColTotal:
		return p.Total().String()
	default:
		return ""
	}
}

// DefaultColumns is the full table layout, in file-format order.
func DefaultColumns() []Column {
	return []Column{ColName, ColQuantity, ColPrice, ColCategory, ColTotal}
}

// ParseColumns parses a comma-separated column list, e.g. "name,total".
// An empty list selects DefaultColumns. Unknown names are rejected.
func ParseColumns(s string) ([]Column, error) {
	if strings.TrimSpace(s) == "" {
		return DefaultColumns(), nil
	}
	var columns []Column
	for _, field := range strings.Split(s, ",") {
		switch strings.ToLower(strings.TrimSpace(field)) {
		case "name":
			columns = append(columns, ColName)
		case "quantity":
			columns = append(columns, ColQuantity)
		case "price":
			columns = append(columns, ColPrice)
		case "category":
			columns = append(columns, ColCategory)
		case "total":
			columns = append(columns, ColTotal)
		default:
			return nil, fmt.Errorf("%w: unknown column %q", inventory.ErrInvalidValue, field)
		}
	}
	return columns, nil
}

// table builds the rows of the product table for the selected columns.
func table(products []inventory.Product, columns []Column) (header []string, rows [][]string) {
	header = make([]string, len(columns))
	for i, c := range columns {
		header[i] = c.Header()
	}
	rows = make([][]string, 0, len(products))
	for _, p := range products {
		row := make([]string, len(columns))
		for i, c := range columns {
			row[i] = c.cell(p)
		}
		rows = append(rows, row)
	}
	return header, rows
}
