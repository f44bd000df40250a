package renderer

import (
	"errors"
	"strings"
	"testing"

	inventory "github.com/servaisg/dev2-script-perso"
)

func fixture(t *testing.T) []inventory.Product {
	t.Helper()
	c := inventory.NewCatalog()
	for _, row := range []struct {
		name     string
		price    float64
		category string
		quantity int
	}{
		{"Widget", 2.50, "Tools", 3},
		{"Bolt", 1.20, "Hardware", 10},
	} {
		p, err := inventory.NewProduct(row.name, inventory.M(row.price), row.category, row.quantity)
		if err != nil {
			t.Fatalf("NewProduct(%q) failed: %v", row.name, err)
		}
		c.Add(p)
	}
	return c.Products()
}

func TestParseColumns(t *testing.T) {
	testCases := []struct {
		name    string
		input   string
		want    int
		wantErr bool
	}{
		{name: "empty selects defaults", input: "", want: len(DefaultColumns())},
		{name: "subset", input: "name,total", want: 2},
		{name: "case and spaces", input: " Name , PRICE ", want: 2},
		{name: "unknown column", input: "name,color", wantErr: true},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			columns, err := ParseColumns(tc.input)
			if tc.wantErr {
				if err == nil {
					t.Fatalf("ParseColumns(%q) should fail", tc.input)
				}
				if !errors.Is(err, inventory.ErrInvalidValue) {
					t.Errorf("error = %v, want ErrInvalidValue", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseColumns(%q) returned error: %v", tc.input, err)
			}
			if len(columns) != tc.want {
				t.Errorf("ParseColumns(%q) = %v, want %d columns", tc.input, columns, tc.want)
			}
		})
	}
}

func TestCatalogMarkdown(t *testing.T) {
	out := CatalogMarkdown(fixture(t), DefaultColumns())

	for _, want := range []string{
		"# Inventory",
		"Widget", "Bolt",
		"Category Totals",
		"Hardware", "Tools",
		"Overall Inventory Value:",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output is missing %q:\n%s", want, out)
		}
	}
}

func TestCatalogMarkdownEmpty(t *testing.T) {
	out := CatalogMarkdown(nil, DefaultColumns())
	if !strings.Contains(out, "The inventory is empty.") {
		t.Errorf("empty catalog output = %q", out)
	}
}

func TestCatalogMarkdownColumnSubset(t *testing.T) {
	out := CatalogMarkdown(fixture(t), []Column{ColName, ColQuantity})
	if !strings.Contains(out, "Widget") || !strings.Contains(out, "Quantity") {
		t.Errorf("subset output is missing selected columns:\n%s", out)
	}
	if strings.Contains(out, "Price (EUR)") {
		t.Errorf("subset output should not contain the price column:\n%s", out)
	}
}

func TestSearchMarkdown(t *testing.T) {
	out := SearchMarkdown("widget", fixture(t)[:1])
	if !strings.Contains(out, `Search Results for "widget"`) || !strings.Contains(out, "Widget") {
		t.Errorf("unexpected search output:\n%s", out)
	}

	empty := SearchMarkdown("nothing", nil)
	if !strings.Contains(empty, "No product matches.") {
		t.Errorf("unexpected empty search output:\n%s", empty)
	}
}

func TestStatsMarkdown(t *testing.T) {
	c := inventory.NewCatalog()
	p, err := inventory.NewProduct("Widget", inventory.M(2.50), "Tools", 3)
	if err != nil {
		t.Fatal(err)
	}
	c.Add(p)

	out := StatsMarkdown(c.Statistics())
	for _, want := range []string{"Inventory Statistics", "Products", "Categories", "Total Value"} {
		if !strings.Contains(out, want) {
			t.Errorf("output is missing %q:\n%s", want, out)
		}
	}
}
