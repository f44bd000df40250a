package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	inventory "github.com/servaisg/dev2-script-perso"
)

type addCmd struct {
	name     string
	price    string
	category string
	quantity int
}

func (*addCmd) Name() string     { return "add" }
func (*addCmd) Synopsis() string { return "add stock for a product to the catalog" }
func (*addCmd) Usage() string {
	return `inv add -name <name> -price <price> -category <category> [-quantity <n>]

  Adds stock to the catalog. If a product with the same name and category
  already exists (ignoring case and whitespace), the quantity is merged into
  the existing entry and its stored price is kept; otherwise a new entry is
  created with the given price.
`
}

func (c *addCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.name, "name", "", "Product name (required)")
	f.StringVar(&c.price, "price", "", "Unit price, '.' or ',' decimal separator (required)")
	f.StringVar(&c.category, "category", "", "Product category (required)")
	f.IntVar(&c.quantity, "quantity", 1, "Quantity to add")
}

func (c *addCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.name == "" || c.price == "" || c.category == "" {
		fmt.Fprintln(os.Stderr, "Error: -name, -price and -category flags are required.")
		return subcommands.ExitUsageError
	}

	price, err := inventory.ParseMoney(c.price)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitUsageError
	}
	// Direct entry requires a real price; merges into existing entries keep
	// the stored one anyway.
	if !price.IsPositive() {
		fmt.Fprintf(os.Stderr, "Error: price must be positive, got %s\n", price.Fixed())
		return subcommands.ExitUsageError
	}

	product, err := inventory.NewProduct(c.name, price, c.category, c.quantity)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitUsageError
	}

	catalog, err := decodeCatalog()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	created := catalog.Add(product)
	if err := encodeCatalog(catalog); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	stored, _ := catalog.Get(product.Key())
	if created {
		fmt.Printf("Added %s (%s) to %s, quantity %d.\n", stored.Name(), stored.Price(), stored.Category(), stored.Quantity())
	} else {
		fmt.Printf("Restocked %s in %s, quantity now %d.\n", stored.Name(), stored.Category(), stored.Quantity())
	}
	return subcommands.ExitSuccess
}
