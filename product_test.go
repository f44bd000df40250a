package inventory

import (
	"errors"
	"testing"
)

func TestNewKeyNormalization(t *testing.T) {
	reference := NewKey("Widget", "Tools")
	variants := []struct{ name, category string }{
		{"widget", "tools"},
		{"WIDGET", "TOOLS"},
		{"  Widget  ", "Tools"},
		{"widget", "  TOOLS "},
		{"\tWiDgEt\t", " tOOls "},
	}
	for _, v := range variants {
		if got := NewKey(v.name, v.category); got != reference {
			t.Errorf("NewKey(%q, %q) = %q, want %q", v.name, v.category, got, reference)
		}
	}

	// The category is a required disambiguator.
	if NewKey("Widget", "Tools") == NewKey("Widget", "Garden") {
		t.Error("keys for the same name in different categories must differ")
	}
}

func TestNewProduct(t *testing.T) {
	testCases := []struct {
		name     string
		pname    string
		price    Money
		category string
		quantity int
		wantErr  bool
	}{
		{name: "valid", pname: "Widget", price: M(2.50), category: "Tools", quantity: 3},
		{name: "zero quantity", pname: "Widget", price: M(2.50), category: "Tools", quantity: 0},
		{name: "free item", pname: "Flyer", price: M(0), category: "Promo", quantity: 10},
		{name: "empty name", pname: "", price: M(1), category: "Tools", quantity: 1, wantErr: true},
		{name: "blank name", pname: "   ", price: M(1), category: "Tools", quantity: 1, wantErr: true},
		{name: "empty category", pname: "Widget", price: M(1), category: "", quantity: 1, wantErr: true},
		{name: "negative price", pname: "Widget", price: M(-1), category: "Tools", quantity: 1, wantErr: true},
		{name: "negative quantity", pname: "Widget", price: M(1), category: "Tools", quantity: -1, wantErr: true},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			p, err := NewProduct(tc.pname, tc.price, tc.category, tc.quantity)
			if tc.wantErr {
				if err == nil {
					t.Fatalf("NewProduct(%q, ...) should fail", tc.pname)
				}
				if !errors.Is(err, ErrInvalidValue) {
					t.Errorf("error = %v, want ErrInvalidValue", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("NewProduct(%q, ...) returned error: %v", tc.pname, err)
			}
			if p.Name() != tc.pname {
				t.Errorf("Name() = %q, want %q", p.Name(), tc.pname)
			}
		})
	}
}

func TestNewProductTrims(t *testing.T) {
	p, err := NewProduct("  Widget ", M(1), "\tTools ", 1)
	if err != nil {
		t.Fatal(err)
	}
	if p.Name() != "Widget" || p.Category() != "Tools" {
		t.Errorf("got name %q category %q, want trimmed values", p.Name(), p.Category())
	}
}

func TestProductTotal(t *testing.T) {
	p, err := NewProduct("Widget", M(2.50), "Tools", 3)
	if err != nil {
		t.Fatal(err)
	}
	if got := p.Total(); !got.Equal(M(7.50)) {
		t.Errorf("Total() = %s, want 7.50", got.Fixed())
	}
	p.AddQuantity(2)
	if got := p.Total(); !got.Equal(M(12.50)) {
		t.Errorf("Total() after AddQuantity(2) = %s, want 12.50", got.Fixed())
	}
}

func TestProductUpdatePrice(t *testing.T) {
	p, err := NewProduct("Widget", M(2.50), "Tools", 1)
	if err != nil {
		t.Fatal(err)
	}
	p.UpdatePrice(M(3))
	if !p.Price().Equal(M(3)) {
		t.Errorf("Price() = %s, want 3.00", p.Price().Fixed())
	}

	// Non-positive proposals are silently rejected.
	p.UpdatePrice(M(0))
	p.UpdatePrice(M(-1))
	if !p.Price().Equal(M(3)) {
		t.Errorf("Price() after rejected updates = %s, want 3.00", p.Price().Fixed())
	}
}

func TestProductKeyStability(t *testing.T) {
	p, err := NewProduct("Widget", M(2.50), "Tools", 1)
	if err != nil {
		t.Fatal(err)
	}
	key := p.Key()
	p.AddQuantity(4)
	p.UpdatePrice(M(9.99))
	if p.Key() != key {
		t.Errorf("Key changed from %q to %q after quantity/price mutation", key, p.Key())
	}
}
