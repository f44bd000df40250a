package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	inventory "github.com/servaisg/dev2-script-perso"
	"github.com/servaisg/dev2-script-perso/renderer"
)

type viewCmd struct {
	sort    string
	columns string
}

func (*viewCmd) Name() string     { return "view" }
func (*viewCmd) Synopsis() string { return "display the catalog with category totals" }
func (*viewCmd) Usage() string {
	return `inv view [-sort <key>] [-columns <list>]

  Displays the catalog as a table, followed by per-category totals and the
  overall inventory value. The sort is stable: products comparing equal keep
  their catalog order.
`
}

func (c *viewCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.sort, "sort", "", "Sort key: name, price, quantity, category, total or none")
	f.StringVar(&c.columns, "columns", "", "Comma-separated subset of name,quantity,price,category,total")
}

func (c *viewCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	key, err := inventory.ParseSortKey(c.sort)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitUsageError
	}
	columns, err := renderer.ParseColumns(c.columns)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitUsageError
	}

	catalog, err := decodeCatalog()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	products := inventory.SortProducts(catalog.Products(), key)
	printMarkdown(renderer.CatalogMarkdown(products, columns))
	return subcommands.ExitSuccess
}
