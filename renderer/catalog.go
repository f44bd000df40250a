package renderer

import (
	"bytes"
	"fmt"
	"maps"
	"slices"

	md "github.com/nao1215/markdown"
	inventory "github.com/servaisg/dev2-script-perso"
)

// CatalogMarkdown renders the full inventory view: the product table in the
// selected columns, the per-category totals and the overall value.
func CatalogMarkdown(products []inventory.Product, columns []Column) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Inventory")
	if len(products) == 0 {
		doc.PlainText("The inventory is empty.")
		return doc.String()
	}

	header, rows := table(products, columns)
	doc.Table(md.TableSet{Header: header, Rows: rows})

	doc.H2("Category Totals")
	totals := inventory.CategoryTotals(products)
	totalRows := make([][]string, 0, len(totals))
	for _, category := range slices.Sorted(maps.Keys(totals)) {
		totalRows = append(totalRows, []string{category, totals[category].String()})
	}
	doc.Table(md.TableSet{Header: []string{"Category", "Total"}, Rows: totalRows})

	doc.PlainText(fmt.Sprintf("Overall Inventory Value: %s", inventory.OverallTotal(products)))
	return doc.String()
}

// SearchMarkdown renders the result of a search query.
func SearchMarkdown(query string, products []inventory.Product) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("Search Results for %q", query))
	if len(products) == 0 {
		doc.PlainText("No product matches.")
		return doc.String()
	}
	header, rows := table(products, DefaultColumns())
	doc.Table(md.TableSet{Header: header, Rows: rows})
	doc.PlainText(fmt.Sprintf("%d product(s) found.", len(products)))
	return doc.String()
}

// StatsMarkdown renders the aggregate statistics of the catalog.
func StatsMarkdown(s inventory.Stats) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Inventory Statistics")
	doc.Table(md.TableSet{
		Header: []string{"Metric", "Value"},
		Rows: [][]string{
			{"Products", fmt.Sprintf("%d", s.Products)},
			{"Categories", fmt.Sprintf("%d", s.Categories)},
			{"Total Value", s.TotalValue.String()},
		},
	})
	return doc.String()
}
