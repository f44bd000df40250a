package inventory

import "errors"

// Sentinel errors returned by the engine. Callers classify failures with
// errors.Is; the engine never terminates the process on any of them.
var (
	// ErrInvalidValue reports an uncoercible or out-of-range input, such as
	// an empty name, a negative quantity or an unparseable price.
	ErrInvalidValue = errors.New("invalid value")

	// ErrNotFound reports that the target of a lookup or update is absent
	// from the catalog.
	ErrNotFound = errors.New("not found")

	// ErrMalformedRow reports an import row with too few columns or
	// unparseable fields. It is recoverable: the row is skipped and the
	// rest of the batch keeps loading.
	ErrMalformedRow = errors.New("malformed row")
)
