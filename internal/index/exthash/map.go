package exthash

import "math/bits"

// Map is a generic extendible hash map (§3.3, §4.C). The zero value is
// not usable; construct with New.
type Map[K comparable, V any] struct {
	dir         []*bucket[K, V]
	globalDepth int
	pool        map[*bucket[K, V]]struct{}
}

// New builds an empty extendible hash map with the given initial
// directory size, which must be a power of two >= MinDirSize (§6.1).
// Panics otherwise: a malformed initial size is a programming error.
func New[K comparable, V any](initialDirSize int) *Map[K, V] {
	if initialDirSize < MinDirSize || !isPowerOfTwo(initialDirSize) {
		panic("exthash: initial directory size must be a power of two >= 1")
	}
	depth := bits.Len(uint(initialDirSize)) - 1
	b := newBucket[K, V](depth)

	dir := make([]*bucket[K, V], initialDirSize)
	for i := range dir {
		dir[i] = b
	}
	return &Map[K, V]{
		dir:         dir,
		globalDepth: depth,
		pool:        map[*bucket[K, V]]struct{}{b: {}},
	}
}

func isPowerOfTwo(n int) bool {
	return n > 0 && n&(n-1) == 0
}

// Get consults the directory slot for k and scans its bucket linearly
// (§4.C).
func (m *Map[K, V]) Get(k K) (V, bool) {
	b := m.bucketFor(k)
	if pos, ok := b.find(k); ok {
		return b.entries[pos].val, true
	}
	var zero V
	return zero, false
}

func (m *Map[K, V]) bucketFor(k K) *bucket[K, V] {
	idx := dirIndex(hashKey(k), len(m.dir))
	return m.dir[idx]
}

// Put overwrites k's value in place if present, appends if the target
// bucket has room, and otherwise splits (§4.C). Never fails on a
// well-formed key.
func (m *Map[K, V]) Put(k K, v V) {
	b := m.bucketFor(k)
	if pos, ok := b.find(k); ok {
		b.entries[pos].val = v
		return
	}
	if !b.full() {
		b.entries = append(b.entries, entry[K, V]{key: k, val: v})
		return
	}
	m.split(b, k, v)
}

// Size returns SLOTS * nBuckets, an upper bound on capacity rather than
// population, per the source contract this package preserves (§4.C,
// §9).
func (m *Map[K, V]) Size() int {
	return Slots * len(m.pool)
}

// Population returns the true number of stored (key, value) pairs,
// offered alongside Size for callers that need the actual count (§9
// "Surface a separate population() if callers need it").
func (m *Map[K, V]) Population() int {
	n := 0
	for b := range m.pool {
		n += len(b.entries)
	}
	return n
}

// NBuckets returns the number of distinct buckets in the pool, for
// tests asserting the §8 bullet-4 directory invariant.
func (m *Map[K, V]) NBuckets() int {
	return len(m.pool)
}

// GlobalDepth returns the directory's global depth D.
func (m *Map[K, V]) GlobalDepth() int {
	return m.globalDepth
}

// Entry is a single (key, value) pair, as returned by Entries.
type Entry[K comparable, V any] struct {
	Key   K
	Value V
}

// Entries yields every (key, value) pair by iterating the bucket pool,
// not the directory, to avoid duplicate emission (§4.C).
func (m *Map[K, V]) Entries() []Entry[K, V] {
	var out []Entry[K, V]
	for b := range m.pool {
		for _, e := range b.entries {
			out = append(out, Entry[K, V]{Key: e.key, Value: e.val})
		}
	}
	return out
}
