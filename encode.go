package inventory

import (
	"bufio"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log"
	"strconv"
	"strings"
)

// this file handles the CSV persistence format.
// It should remain human readable, single file and be easy to merge back
// into a catalog.

// csvHeader is the first row of every exported file. On import it is
// recognized and skipped, so an exported file always loads back cleanly.
var csvHeader = []string{"Name", "Quantity", "Price (EUR)", "Category", "Total (EUR)"}

// utf8BOM prefixes exported files so that spreadsheet tools pick up the
// encoding; it is stripped on import when present.
const utf8BOM = "\ufeff"

// EncodeCatalog writes the catalog to 'w' in the CSV persistence format:
// a header row followed by one record per product, in snapshot order, with
// columns [name, quantity, price, category, total]. Prices and totals use a
// '.' decimal separator and exactly two fractional digits. The total column
// is derived and recomputed on import.
func EncodeCatalog(w io.Writer, c *Catalog) error {
	if _, err := io.WriteString(w, utf8BOM); err != nil {
		return fmt.Errorf("writing catalog: %w", err)
	}
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return fmt.Errorf("writing catalog header: %w", err)
	}
	for _, p := range c.Products() {
		row := []string{p.Name(), strconv.Itoa(p.Quantity()), p.Price().Fixed(), p.Category(), p.Total().Fixed()}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("writing catalog row for %q: %w", p.Name(), err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// DecodeCatalogInto reads CSV records from 'r' and feeds each one through
// the catalog's Add path, so rows colliding with stored products merge their
// quantities. Importing the same data twice therefore doubles quantities;
// idempotence is the caller's responsibility.
//
// Records need at least the four columns [name, quantity, price, category];
// extra columns are ignored. The price accepts both '.' and ',' as decimal
// separator. Malformed records (too few columns, unparseable quantity or
// price, empty name or category) are skipped with a logged warning and never
// abort the batch.
func DecodeCatalogInto(r io.Reader, c *Catalog) error {
	br := bufio.NewReader(r)
	skipBOM(br)

	cr := csv.NewReader(br)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	for line := 0; ; line++ {
		record, err := cr.Read()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			// a csv-level error is confined to one record: warn and keep reading.
			log.Printf("warning: skipping unreadable row: %v", err)
			continue
		}
		if line == 0 && isHeader(record) {
			continue
		}
		p, err := parseRecord(record)
		if err != nil {
			log.Printf("warning: skipping row %d: %v", line+1, err)
			continue
		}
		c.Add(p)
	}
}

// DecodeCatalog decodes a whole catalog from 'r'.
func DecodeCatalog(r io.Reader) (*Catalog, error) {
	c := NewCatalog()
	if err := DecodeCatalogInto(r, c); err != nil {
		return nil, err
	}
	return c, nil
}

// parseRecord converts one CSV record into a product, classifying every
// failure as ErrMalformedRow.
func parseRecord(record []string) (*Product, error) {
	if len(record) < 4 {
		return nil, fmt.Errorf("%w: got %d columns, want at least 4", ErrMalformedRow, len(record))
	}
	name, rawQuantity, rawPrice, category := record[0], record[1], record[2], record[3]

	quantity, err := strconv.Atoi(strings.TrimSpace(rawQuantity))
	if err != nil {
		return nil, fmt.Errorf("%w: quantity %q is not an integer", ErrMalformedRow, rawQuantity)
	}
	price, err := ParseMoney(rawPrice)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedRow, err)
	}
	p, err := NewProduct(name, price, category, quantity)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedRow, err)
	}
	return p, nil
}

// isHeader reports whether a record is the canonical header row.
func isHeader(record []string) bool {
	return len(record) >= 2 &&
		strings.EqualFold(strings.TrimSpace(record[0]), "name") &&
		strings.EqualFold(strings.TrimSpace(record[1]), "quantity")
}

// skipBOM consumes a leading UTF-8 byte order mark when present.
func skipBOM(br *bufio.Reader) {
	lead, err := br.Peek(len(utf8BOM))
	if err == nil && string(lead) == utf8BOM {
		br.Discard(len(utf8BOM))
	}
}
