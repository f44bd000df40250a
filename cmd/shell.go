package cmd

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/google/subcommands"
	inventory "github.com/servaisg/dev2-script-perso"
	"github.com/servaisg/dev2-script-perso/renderer"
)

type shellCmd struct{}

func (*shellCmd) Name() string     { return "shell" }
func (*shellCmd) Synopsis() string { return "run an interactive catalog session" }
func (*shellCmd) Usage() string {
	return `inv shell [file...]

  Starts an interactive session over the catalog. The given CSV files are
  merged into the catalog at startup; quitting saves the catalog to the
  inventory file.
`
}

func (*shellCmd) SetFlags(f *flag.FlagSet) {}

func (c *shellCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	catalog, err := decodeCatalog()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	for _, filename := range f.Args() {
		if err := importFile(filename, catalog); err != nil {
			fmt.Fprintf(os.Stderr, "Error importing %q: %v\n", filename, err)
		}
	}

	c.run(os.Stdin, os.Stdout, catalog)

	fmt.Println("Saving inventory and exiting...")
	if err := encodeCatalog(catalog); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

// run drives the menu loop until the user quits or input ends. It only
// mutates the catalog; persistence stays with the caller.
func (c *shellCmd) run(in io.Reader, out io.Writer, catalog *inventory.Catalog) {
	scanner := bufio.NewScanner(in)
	prompt := func(label string) (string, bool) {
		fmt.Fprint(out, label)
		if !scanner.Scan() {
			return "", false
		}
		return strings.TrimSpace(scanner.Text()), true
	}

	for {
		action, ok := prompt("Options: [a]dd, [r]emove, [s]earch, [v]iew, [q]uit\nChoose action: ")
		if !ok {
			return
		}
		switch strings.ToLower(action) {
		case "a":
			c.add(prompt, out, catalog)
		case "r":
			c.remove(prompt, out, catalog)
		case "s":
			c.search(prompt, out, catalog)
		case "v":
			c.view(prompt, out, catalog)
		case "q":
			return
		default:
			fmt.Fprintln(out, "Invalid option.")
		}
	}
}

type promptFunc func(label string) (string, bool)

func (c *shellCmd) add(prompt promptFunc, out io.Writer, catalog *inventory.Catalog) {
	name, ok := prompt("Product name: ")
	if !ok {
		return
	}
	rawQuantity, ok := prompt("Quantity: ")
	if !ok {
		return
	}
	quantity, err := strconv.Atoi(rawQuantity)
	if err != nil || quantity < 0 {
		fmt.Fprintf(out, "Invalid quantity %q.\n", rawQuantity)
		return
	}
	rawPrice, ok := prompt("Price: ")
	if !ok {
		return
	}
	price, err := inventory.ParseMoney(rawPrice)
	if err != nil || !price.IsPositive() {
		fmt.Fprintf(out, "Invalid price %q.\n", rawPrice)
		return
	}
	category, ok := prompt("Category: ")
	if !ok {
		return
	}

	product, err := inventory.NewProduct(name, price, category, quantity)
	if err != nil {
		fmt.Fprintln(out, "Error:", err)
		return
	}
	if catalog.Add(product) {
		fmt.Fprintf(out, "Added %s.\n", product.Name())
	} else {
		stored, _ := catalog.Get(product.Key())
		fmt.Fprintf(out, "Restocked %s, quantity now %d.\n", stored.Name(), stored.Quantity())
	}
}

func (c *shellCmd) remove(prompt promptFunc, out io.Writer, catalog *inventory.Catalog) {
	name, ok := prompt("Product name to remove: ")
	if !ok {
		return
	}
	if catalog.Remove(name, "") == 0 {
		fmt.Fprintln(out, "Product not found.")
	}
}

func (c *shellCmd) search(prompt promptFunc, out io.Writer, catalog *inventory.Catalog) {
	term, ok := prompt("Search term (name or category): ")
	if !ok {
		return
	}
	results := inventory.SortProducts(catalog.Search(term), inventory.SortByName)
	fmt.Fprintln(out, renderer.SearchMarkdown(term, results))
}

func (c *shellCmd) view(prompt promptFunc, out io.Writer, catalog *inventory.Catalog) {
	rawKey, ok := prompt("Sort by (name/price/quantity/category/total) or leave blank: ")
	if !ok {
		return
	}
	key, err := inventory.ParseSortKey(rawKey)
	if err != nil {
		fmt.Fprintln(out, "Error:", err)
		return
	}
	products := inventory.SortProducts(catalog.Products(), key)
	fmt.Fprintln(out, renderer.CatalogMarkdown(products, renderer.DefaultColumns()))
}
