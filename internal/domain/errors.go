package domain

import "github.com/pkg/errors"

// Error kinds surfaced by the core (§7). Callers match with errors.Is;
// the wrapped message carries the offending key/attribute/bound.
var (
	// ErrEmpty is returned by first-key/last-key style operations on an
	// empty structure.
	ErrEmpty = errors.New("empty")

	// ErrInconsistentRange is returned when a sub-map style constructor
	// is given from > to.
	ErrInconsistentRange = errors.New("inconsistent range")

	// ErrKeyOutOfRange is returned when a SubMap refinement would
	// broaden the parent view.
	ErrKeyOutOfRange = errors.New("key out of range")

	// ErrIllFormedPredicate is returned by the expression evaluator for
	// malformed infix conditions: insufficient operands, a comparison
	// with no attribute operand, an unknown attribute, or a final stack
	// that isn't a single boolean.
	ErrIllFormedPredicate = errors.New("ill-formed predicate")

	// ErrDomainMismatch is returned when a tuple's positional domains
	// don't match its schema.
	ErrDomainMismatch = errors.New("domain mismatch")
)

// Wrap annotates err (expected to be one of the sentinels above) with
// additional context while preserving errors.Is matchability.
func Wrap(err error, format string, args ...any) error {
	return errors.Wrapf(err, format, args...)
}
