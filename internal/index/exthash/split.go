package exthash

// split handles an overfull bucket b hit by a new (k, v) pair, per
// §4.C's two-case split algorithm.
func (m *Map[K, V]) split(b *bucket[K, V], k K, v V) {
	if b.depth == m.globalDepth {
		m.splitAtCapacity(b, k, v)
		return
	}
	m.splitBelowCapacity(b, k, v)
}

// splitAtCapacity handles the d == D case: the directory doubles in
// place (every old slot i's content is copied to slot i+oldMod), then
// the single slot that referenced b (at indices idxOld and
// idxOld+oldMod after doubling) is replaced with two fresh buckets at
// depth D+1.
func (m *Map[K, V]) splitAtCapacity(b *bucket[K, V], k K, v V) {
	oldMod := len(m.dir)
	idxOld := dirIndex(hashKey(k), oldMod)

	newDir := make([]*bucket[K, V], oldMod*2)
	copy(newDir, m.dir)
	copy(newDir[oldMod:], m.dir)
	m.dir = newDir
	m.globalDepth++

	buck1 := newBucket[K, V](b.depth + 1)
	buck2 := newBucket[K, V](b.depth + 1)
	delete(m.pool, b)
	m.pool[buck1] = struct{}{}
	m.pool[buck2] = struct{}{}

	m.dir[idxOld] = buck1
	m.dir[idxOld+oldMod] = buck2

	m.redistribute(b, k, v)
}

// splitBelowCapacity handles the d < D case: the directory itself
// doesn't grow. Every slot that currently points to b is one of
// 2^(D-d) slots spaced 2^d apart starting at the first such index;
// those slots are split evenly between two new buckets at depth d+1.
//
// §4.C's prose describes the new depth as "2d" and the slot stride as
// "stepping by d"; taken literally that both breaks the invariant that
// local depth never exceeds global depth and doesn't match the
// worked example in §8 scenario 3. The self-consistent reading used
// here (new depth d+1, stride 2^d) is the standard extendible hashing
// split and is what this package implements.
func (m *Map[K, V]) splitBelowCapacity(b *bucket[K, V], k K, v V) {
	step := 1 << uint(b.depth)

	first := -1
	for i, slot := range m.dir {
		if slot == b {
			first = i
			break
		}
	}

	buck1 := newBucket[K, V](b.depth + 1)
	buck2 := newBucket[K, V](b.depth + 1)
	delete(m.pool, b)
	m.pool[buck1] = struct{}{}
	m.pool[buck2] = struct{}{}

	occurrence := 0
	for i := first; i < len(m.dir); i += step {
		if m.dir[i] != b {
			continue
		}
		if occurrence%2 == 0 {
			m.dir[i] = buck1
		} else {
			m.dir[i] = buck2
		}
		occurrence++
	}

	m.redistribute(b, k, v)
}

// redistribute re-inserts the evicted bucket's pairs plus the new pair
// via ordinary Put, which may recurse into further splits.
func (m *Map[K, V]) redistribute(b *bucket[K, V], k K, v V) {
	for _, e := range b.entries {
		m.Put(e.key, e.val)
	}
	m.Put(k, v)
}
