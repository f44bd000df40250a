package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/servaisg/dev2-script-perso/renderer"
)

type statsCmd struct{}

func (*statsCmd) Name() string     { return "stats" }
func (*statsCmd) Synopsis() string { return "display aggregate catalog statistics" }
func (*statsCmd) Usage() string {
	return `inv stats

  Displays the number of distinct products, the number of categories and the
  total inventory value.
`
}

func (*statsCmd) SetFlags(f *flag.FlagSet) {}

func (c *statsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	catalog, err := decodeCatalog()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.StatsMarkdown(catalog.Statistics()))
	return subcommands.ExitSuccess
}
