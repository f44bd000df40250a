package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	inventory "github.com/servaisg/dev2-script-perso"
)

type exportCmd struct{}

func (*exportCmd) Name() string     { return "export" }
func (*exportCmd) Synopsis() string { return "write the catalog to a CSV file" }
func (*exportCmd) Usage() string {
	return `inv export [file]

  Writes the catalog in CSV format to the given file, or to the inventory
  file when omitted.
`
}

func (*exportCmd) SetFlags(f *flag.FlagSet) {}

func (c *exportCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	filename := *inventoryFile
	if f.NArg() > 0 {
		filename = f.Arg(0)
	}

	catalog, err := decodeCatalog()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	out, err := os.Create(filename)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating %q: %v\n", filename, err)
		return subcommands.ExitFailure
	}
	if err := inventory.EncodeCatalog(out, catalog); err != nil {
		out.Close()
		fmt.Fprintf(os.Stderr, "Error writing %q: %v\n", filename, err)
		return subcommands.ExitFailure
	}
	if err := out.Close(); err != nil {
		fmt.Fprintf(os.Stderr, "Error closing %q: %v\n", filename, err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Exported %d product(s) to %s.\n", catalog.Len(), filename)
	return subcommands.ExitSuccess
}
