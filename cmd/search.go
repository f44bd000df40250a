package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/google/subcommands"
	inventory "github.com/servaisg/dev2-script-perso"
	"github.com/servaisg/dev2-script-perso/renderer"
)

type searchCmd struct{}

func (*searchCmd) Name() string     { return "search" }
func (*searchCmd) Synopsis() string { return "search products by name or category" }
func (*searchCmd) Usage() string {
	return `inv search <term>

  Lists every product whose name or category contains the term, ignoring
  case. Results are shown sorted by name.
`
}

func (*searchCmd) SetFlags(f *flag.FlagSet) {}

func (c *searchCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "Error: a search term is required.")
		return subcommands.ExitUsageError
	}
	term := strings.Join(f.Args(), " ")

	catalog, err := decodeCatalog()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	// The engine leaves result order unspecified; sort by name for a stable
	// display.
	results := inventory.SortProducts(catalog.Search(term), inventory.SortByName)
	printMarkdown(renderer.SearchMarkdown(term, results))
	return subcommands.ExitSuccess
}
