package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	inventory "github.com/servaisg/dev2-script-perso"
)

type importCmd struct{}

func (*importCmd) Name() string     { return "import" }
func (*importCmd) Synopsis() string { return "merge CSV files into the catalog" }
func (*importCmd) Usage() string {
	return `inv import <file>...

  Merges the records of one or more CSV files into the catalog. Records go
  through the same consolidation path as 'inv add', so importing a file
  twice doubles the quantities it carries. Malformed rows are skipped with
  a warning; a missing file is reported and the remaining files still load.
`
}

func (*importCmd) SetFlags(f *flag.FlagSet) {}

func (c *importCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "Error: at least one file to import is required.")
		return subcommands.ExitUsageError
	}

	catalog, err := decodeCatalog()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	status := subcommands.ExitSuccess
	for _, filename := range f.Args() {
		if err := importFile(filename, catalog); err != nil {
			fmt.Fprintf(os.Stderr, "Error importing %q: %v\n", filename, err)
			status = subcommands.ExitFailure
		}
	}

	if err := encodeCatalog(catalog); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Catalog now holds %d product(s).\n", catalog.Len())
	return status
}

func importFile(filename string, catalog *inventory.Catalog) error {
	f, err := os.Open(filename)
	if err != nil {
		return err
	}
	defer f.Close()
	return inventory.DecodeCatalogInto(f, catalog)
}
