package eval

import "github.com/dreamware/reldb/internal/domain"

// Predicate is a condition compiled once and evaluated against many
// tuples of the same schema.
type Predicate func(tuple domain.Tuple) (bool, error)

// Compile tokenizes and converts condition to postfix once, returning
// a Predicate that re-runs only the evaluation step per tuple. Used by
// table.Select, which applies one condition across an entire tuple
// sequence.
func Compile(condition string, schema *domain.Schema) (Predicate, error) {
	postfix := toPostfix(tokenize(condition))
	return func(tuple domain.Tuple) (bool, error) {
		if len(postfix) == 0 {
			return true, nil
		}
		return evalPostfix(postfix, schema, tuple)
	}, nil
}
