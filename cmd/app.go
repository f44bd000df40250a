// Package cmd implements the CLI application to manage an inventory catalog.
package cmd

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"log"
	"os"

	"github.com/google/subcommands"
	inventory "github.com/servaisg/dev2-script-perso"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on
// the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&addCmd{}, "catalog")
	c.Register(&removeCmd{}, "catalog")
	c.Register(&searchCmd{}, "catalog")

	c.Register(&viewCmd{}, "reports")
	c.Register(&statsCmd{}, "reports")

	c.Register(&exportCmd{}, "files")
	c.Register(&importCmd{}, "files")

	c.Register(&shellCmd{}, "")
	c.Register(&topicCmd{}, "")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to
// use global variables.

var inventoryFile = flag.String("inventory-file", "inventory.csv", "Path to the inventory catalog file (CSV format)")

// decodeCatalog loads the catalog from the app inventory file. A missing
// file is recovered: the command starts from an empty catalog instead.
func decodeCatalog() (*inventory.Catalog, error) {
	f, err := os.Open(*inventoryFile)
	if errors.Is(err, fs.ErrNotExist) {
		log.Println("warning, inventory file does not exist, starting with an empty catalog")
		return inventory.NewCatalog(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("opening inventory file %q: %w", *inventoryFile, err)
	}
	defer f.Close()
	return inventory.DecodeCatalog(f)
}

// encodeCatalog writes the catalog back to the app inventory file.
func encodeCatalog(c *inventory.Catalog) error {
	f, err := os.Create(*inventoryFile)
	if err != nil {
		return fmt.Errorf("creating inventory file %q: %w", *inventoryFile, err)
	}
	if err := inventory.EncodeCatalog(f, c); err != nil {
		f.Close()
		return fmt.Errorf("writing inventory file %q: %w", *inventoryFile, err)
	}
	return f.Close()
}
