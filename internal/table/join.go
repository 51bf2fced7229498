package table

import (
	"github.com/dreamware/reldb/internal/codec"
	"github.com/dreamware/reldb/internal/domain"
)

// JoinedTuple pairs a matched tuple from each side of an equality
// join.
type JoinedTuple struct {
	Left  *domain.Tuple
	Right *domain.Tuple
}

// Join performs an equality join on t.onLeft == other.onRight (§4.F:
// "when the operator is equality-based... atop index get"). When
// onRight is other's (single-column) primary key, the join probes
// other's index directly; otherwise it falls back to a nested scan
// using the domain's natural equality.
func (t *Table) Join(other *Table, onLeft, onRight string) ([]JoinedTuple, error) {
	leftIdx, ok := t.schema.IndexOf(onLeft)
	if !ok {
		return nil, domain.Wrap(domain.ErrDomainMismatch, "join: unknown left attribute %q", onLeft)
	}
	rightIdx, ok := other.schema.IndexOf(onRight)
	if !ok {
		return nil, domain.Wrap(domain.ErrDomainMismatch, "join: unknown right attribute %q", onRight)
	}

	indexed := len(other.schema.PrimaryKey) == 1 && other.schema.PrimaryKey[0] == onRight

	var out []JoinedTuple
	for _, lt := range t.tuples {
		lv := (*lt)[leftIdx]

		if indexed {
			keyBytes, err := codec.Pack(lv)
			if err != nil {
				return nil, err
			}
			if rt, found := other.index.Get(Key(keyBytes)); found {
				out = append(out, JoinedTuple{Left: lt, Right: rt})
			}
			continue
		}

		for _, rt := range other.tuples {
			rv := (*rt)[rightIdx]
			eq, err := domain.Equal(lv, rv)
			if err != nil {
				return nil, err
			}
			if eq {
				out = append(out, JoinedTuple{Left: lt, Right: rt})
			}
		}
	}
	return out, nil
}
