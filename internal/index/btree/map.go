package btree

import (
	"fmt"

	"github.com/dreamware/reldb/internal/domain"
)

// Map is a generic B+Tree keyed by an Ordered key type (§3.2, §4.D).
// The zero value is not usable; construct with New or NewWithOrder.
type Map[K Ordered, V any] struct {
	root    *node[K, V]
	order   int
	lookups int // visited-node counter, exposed for testing (§4.D)
}

// New builds an empty B+Tree at the reference fanout (§3.2, ORDER=5).
func New[K Ordered, V any]() *Map[K, V] {
	return NewWithOrder[K, V](DefaultOrder)
}

// NewWithOrder builds an empty B+Tree at the given fanout. Panics if
// order < MinOrder, matching the schema-construction stance elsewhere in
// this module: a malformed fanout is a programming error, not a runtime
// condition to recover from.
func NewWithOrder[K Ordered, V any](order int) *Map[K, V] {
	if order < MinOrder {
		panic("btree: order must be >= 4")
	}
	return &Map[K, V]{root: newLeaf[K, V](), order: order}
}

// Lookups returns the number of node visits performed by Get calls so
// far, for tests asserting O(log n) behavior (§4.D).
func (m *Map[K, V]) Lookups() int { return m.lookups }

// Get performs a point lookup (§4.D).
func (m *Map[K, V]) Get(k K) (V, bool) {
	n := m.root
	for !n.leaf {
		m.lookups++
		n = n.children[n.childIndex(k)]
	}
	m.lookups++
	pos, found := n.leafSearch(k)
	if !found {
		var zero V
		return zero, false
	}
	return n.vals[pos], true
}

// Put inserts or, for an existing key, overwrites in place and emits a
// DuplicateKeyOverwrite warning (§4.D, §7, §9). It never fails on a
// well-formed key.
func (m *Map[K, V]) Put(k K, v V) {
	sibling, sepKey, split := m.insert(m.root, k, v)
	if !split {
		return
	}
	newRoot := &node[K, V]{
		keys:     []K{sepKey},
		children: []*node[K, V]{m.root, sibling},
	}
	m.root = newRoot
}

// insert descends into n, inserting (k, v), and reports whether n split:
// if so, sibling is the new right-hand node and sepKey is the key to
// wedge into n's parent (§4.D "Insertion"/"Split").
func (m *Map[K, V]) insert(n *node[K, V], k K, v V) (sibling *node[K, V], sepKey K, split bool) {
	if n.leaf {
		return m.insertLeaf(n, k, v)
	}

	idx := n.childIndex(k)
	childSibling, childSep, childSplit := m.insert(n.children[idx], k, v)
	if !childSplit {
		var zero K
		return nil, zero, false
	}
	return m.wedgeInternal(n, idx, childSep, childSibling)
}

func (m *Map[K, V]) insertLeaf(n *node[K, V], k K, v V) (sibling *node[K, V], sepKey K, split bool) {
	pos, found := n.leafSearch(k)
	if found {
		n.vals[pos] = v
		domain.WarnDuplicateKey(fmt.Sprintf("%v", k))
		var zero K
		return nil, zero, false
	}

	if len(n.keys) < m.order-1 {
		n.keys = insertAt(n.keys, pos, k)
		n.vals = insertAt(n.vals, pos, v)
		var zero K
		return nil, zero, false
	}

	// Overflow: build the conceptual ORDER-length sorted run, then
	// split it into a left half (kept in n) and right half (new
	// sibling); both halves keep every key (leaf split duplicates the
	// separator upward rather than consuming it), per §4.D.
	tmpKeys := insertAt(append([]K(nil), n.keys...), pos, k)
	tmpVals := insertAt(append([]V(nil), n.vals...), pos, v)

	left := ceilHalf(m.order)
	right := newLeaf[K, V]()
	n.keys = append([]K(nil), tmpKeys[:left]...)
	n.vals = append([]V(nil), tmpVals[:left]...)
	right.keys = append([]K(nil), tmpKeys[left:]...)
	right.vals = append([]V(nil), tmpVals[left:]...)

	return right, right.keys[0], true
}

// wedgeInternal inserts separator sepKey and child newChild (the result
// of splitting n.children[idx]) at position idx+1, splitting n itself if
// it's already full. Unlike a leaf split, an internal split CONSUMES its
// middle key: it is promoted to n's parent and does not remain in either
// half (§4.D: "its first key is consumed as the parent separator").
func (m *Map[K, V]) wedgeInternal(n *node[K, V], idx int, sepKey K, newChild *node[K, V]) (sibling *node[K, V], promoted K, split bool) {
	if len(n.keys) < m.order-1 {
		n.keys = insertAt(n.keys, idx, sepKey)
		n.children = insertChild(n.children, idx+1, newChild)
		var zero K
		return nil, zero, false
	}

	tmpKeys := insertAt(append([]K(nil), n.keys...), idx, sepKey)
	tmpChildren := insertChild(append([]*node[K, V](nil), n.children...), idx+1, newChild)

	mid := m.order / 2
	right := &node[K, V]{
		keys:     append([]K(nil), tmpKeys[mid+1:]...),
		children: append([]*node[K, V](nil), tmpChildren[mid+1:]...),
	}
	promotedKey := tmpKeys[mid]
	n.keys = append([]K(nil), tmpKeys[:mid]...)
	n.children = append([]*node[K, V](nil), tmpChildren[:mid+1]...)

	return right, promotedKey, true
}

func insertChild[K Ordered, V any](children []*node[K, V], pos int, child *node[K, V]) []*node[K, V] {
	return insertAt(children, pos, child)
}

func ceilHalf(order int) int {
	return (order + 1) / 2
}

// FirstKey returns the leftmost (smallest) key. Fails with ErrEmpty on
// an empty tree (§4.D).
func (m *Map[K, V]) FirstKey() (K, error) {
	if m.Size() == 0 {
		var zero K
		return zero, domain.ErrEmpty
	}
	return m.root.firstKey(), nil
}

// LastKey returns the rightmost (largest) key. Fails with ErrEmpty on an
// empty tree (§4.D).
func (m *Map[K, V]) LastKey() (K, error) {
	if m.Size() == 0 {
		var zero K
		return zero, domain.ErrEmpty
	}
	return m.root.lastKey(), nil
}

// Size returns the total number of keys (§4.D).
func (m *Map[K, V]) Size() int {
	return countKeys(m.root)
}

func countKeys[K Ordered, V any](n *node[K, V]) int {
	if n.leaf {
		return len(n.keys)
	}
	total := 0
	for _, c := range n.children {
		total += countKeys(c)
	}
	return total
}

// Entry is a single (key, value) pair, as returned by Entries.
type Entry[K Ordered, V any] struct {
	Key   K
	Value V
}

// Entries returns all (key, value) pairs via a breadth-first sweep of
// the leaves, in arbitrary order (§4.D).
func (m *Map[K, V]) Entries() []Entry[K, V] {
	var out []Entry[K, V]
	queue := []*node[K, V]{m.root}
	for len(queue) > 0 {
		n := queue[0]
		queue = queue[1:]
		if n.leaf {
			for i, k := range n.keys {
				out = append(out, Entry[K, V]{Key: k, Value: n.vals[i]})
			}
			continue
		}
		queue = append(queue, n.children...)
	}
	return out
}

