package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type removeCmd struct {
	name     string
	category string
}

func (*removeCmd) Name() string     { return "remove" }
func (*removeCmd) Synopsis() string { return "remove products from the catalog" }
func (*removeCmd) Usage() string {
	return `inv remove -name <name> [-category <category>]

  Removes products from the catalog. With -category, removes exactly the
  product with that name and category. Without it, removes every product
  with that name across all categories.
`
}

func (c *removeCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.name, "name", "", "Product name (required)")
	f.StringVar(&c.category, "category", "", "Product category; empty removes the name from all categories")
}

func (c *removeCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.name == "" {
		fmt.Fprintln(os.Stderr, "Error: -name flag is required.")
		return subcommands.ExitUsageError
	}

	catalog, err := decodeCatalog()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	removed := catalog.Remove(c.name, c.category)
	if removed == 0 {
		fmt.Fprintf(os.Stderr, "Product %q not found.\n", c.name)
		return subcommands.ExitFailure
	}

	if err := encodeCatalog(catalog); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Removed %d product(s).\n", removed)
	return subcommands.ExitSuccess
}
