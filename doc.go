// Package inventory provides the core engine for maintaining a catalog of
// named, categorized, quantified products. It is designed to be local-first
// and auditable: the whole catalog lives in memory and persists to a plain
// CSV file that can be inspected, diffed and merged by hand.
//
// The core functionalities include:
//   - Consolidation: every product is identified by a canonical key derived
//     from its normalized name and category. Adding a product whose key is
//     already present merges quantities ("restocking") instead of creating
//     a duplicate entry; the stored price is never overwritten by a merge.
//   - Catalog Management: adding, removing (precise or bulk by name),
//     searching and listing products, with read-only snapshots so callers
//     can never mutate stored entries behind the catalog's back.
//   - Aggregation: per-category totals, the overall catalog value and
//     aggregate statistics, computed with exact decimal arithmetic so that
//     grouped and ungrouped sums always agree.
//   - Sorted Views: stable sorting of snapshots by name, price, quantity,
//     category or total.
//   - Data Persistence: encoding and decoding the catalog to and from a
//     delimited, human-readable CSV format with row-level error recovery.
//
// This package serves as the foundational logic for the `inv` command-line
// tool, ensuring that all operations are consistent and based on a single
// source of truth.
package inventory
