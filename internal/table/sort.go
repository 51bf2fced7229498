package table

import (
	"sort"

	"github.com/dreamware/reldb/internal/domain"
	"golang.org/x/exp/slices"
)

// SortByKey returns a copy of tuples ordered by their primary-key
// values under schema. Result-set operators (Select, Project, Union,
// Minus, Join) make no ordering promise of their own; callers that
// need a deterministic order, tests included, sort explicitly rather
// than relying on tuple-sequence or bucket-pool iteration order.
func SortByKey(tuples []*domain.Tuple, schema *domain.Schema) ([]*domain.Tuple, error) {
	out := slices.Clone(tuples)

	keys := make([][]domain.Value, len(out))
	for i, tup := range out {
		kv, err := schema.KeyValues(*tup)
		if err != nil {
			return nil, err
		}
		keys[i] = kv
	}

	idx := make([]int, len(out))
	for i := range idx {
		idx[i] = i
	}
	sort.Slice(idx, func(a, b int) bool {
		return compareKeyValues(keys[idx[a]], keys[idx[b]]) < 0
	})

	sorted := make([]*domain.Tuple, len(out))
	for i, j := range idx {
		sorted[i] = out[j]
	}
	return sorted, nil
}

func compareKeyValues(a, b []domain.Value) int {
	for i := range a {
		if c, err := domain.Compare(a[i], b[i]); err == nil && c != 0 {
			return c
		}
	}
	return 0
}
