package btree

import "golang.org/x/exp/constraints"

// Ordered is the key-type constraint for Map: a totally ordered type
// (§4.A). Re-exported from golang.org/x/exp/constraints so the rest of
// this package doesn't need to repeat the import path.
type Ordered = constraints.Ordered

// DefaultOrder is the reference fanout from §3.2.
const DefaultOrder = 5

// MinOrder is the minimum fanout §3.2 allows.
const MinOrder = 4
