// Package btree implements a generic B+Tree map keyed by a totally
// ordered key type (§3.2, §4.D): point lookup, ordered insertion with
// node splits propagating to the root, first/last key, and range-
// restricted SubMap views (head/tail/sub map) with correct
// interval-interval composition.
//
// # Shape
//
// A Map[K, V] is a tree of nodes of fixed fanout (ORDER, reference value
// 5, minimum 4). Leaves hold up to ORDER-1 (key, value) pairs in
// ascending order; internal nodes hold up to ORDER-1 separator keys and
// up to ORDER children, left-biased (a key equal to a separator
// descends into the RIGHT child). All leaves sit at the same depth; the
// tree has exactly one root, replaced only when it splits.
//
// # Arena vs pointers
//
// An arena design, nodes addressed by integer index in a flat slice,
// avoids parent-pointer aliasing hazards in a systems language without a
// garbage collector. Go has neither the aliasing hazard nor the
// manual-free problem arena allocation is solving for there: nodes are
// plain heap values reached only by their parent (or by SubMap,
// transiently, for reads), and the collector reclaims anything a split
// stops referencing. This implementation therefore uses ordinary
// pointer-linked nodes and recursion for descent/split propagation
// (Go's call stack plays the role an explicit ancestor stack would),
// the same idiom as other generic data structures in the Go ecosystem
// (e.g. the pointer-chained nodes in rogpeppe/generic's ctrie).
//
// # Duplicate keys
//
// Put overwrites an existing key's value in place and emits a
// DuplicateKeyOverwrite warning to the package-level diagnostic sink
// (domain.Diag); it never returns an error for this case (§7, §9).
//
// # lastKeyInInterval off-by-one
//
// A naive interior scan of a node's keys might start at `i = n.nKeys`
// and read `n.key[i]` before decrementing, one slot past the last
// valid key. This implementation starts at `i = n.nKeys - 1`, the
// corrected form that scenario 2 (sub_map(6, 20).last_key() == 19)
// requires.
package btree
