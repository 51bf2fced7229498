package btree

// bound is one side of a half-open interval: either unbounded (has ==
// false, representing -infinity or +infinity depending on which side it
// is), or a concrete key with an inclusive/exclusive flag.
type bound[K Ordered] struct {
	val K
	has bool
	inc bool
}

func unbounded[K Ordered]() bound[K] {
	return bound[K]{}
}

func inclusiveBound[K Ordered](v K) bound[K] {
	return bound[K]{val: v, has: true, inc: true}
}

func exclusiveBound[K Ordered](v K) bound[K] {
	return bound[K]{val: v, has: true, inc: false}
}

// interval is a (lo, hi) pair of bounds defining the set of keys a
// SubMap (or an interval primitive) considers "in range" (§4.D).
type interval[K Ordered] struct {
	lo bound[K]
	hi bound[K]
}

// contains implements §4.D's formal "in interval" definition: (lo == -inf
// or k ▷ lo) and (hi == +inf or k ◁ hi), where ▷/◁ are > or >= (resp. <
// or <=) depending on inclusivity.
func (iv interval[K]) contains(k K) bool {
	if iv.lo.has {
		if iv.lo.inc {
			if k < iv.lo.val {
				return false
			}
		} else if k <= iv.lo.val {
			return false
		}
	}
	if iv.hi.has {
		if iv.hi.inc {
			if k > iv.hi.val {
				return false
			}
		} else if k >= iv.hi.val {
			return false
		}
	}
	return true
}

// startChild returns the first child index of an internal node that
// could hold a key satisfying iv.lo; keys in earlier children are all
// known to be below the lower bound.
func (n *node[K, V]) startChild(lo bound[K]) int {
	if !lo.has {
		return 0
	}
	return n.childIndex(lo.val)
}

// endChild returns the last child index of an internal node that could
// hold a key satisfying iv.hi.
func (n *node[K, V]) endChild(hi bound[K]) int {
	if !hi.has {
		return len(n.children) - 1
	}
	idx := n.childIndex(hi.val)
	if idx >= len(n.children) {
		idx = len(n.children) - 1
	}
	return idx
}

// nKeysInInterval counts keys in iv via a descend-selectively sweep:
// internal nodes only recurse into children whose key range could
// intersect iv; leaves are scanned directly (§4.D).
func nKeysInInterval[K Ordered, V any](n *node[K, V], iv interval[K]) int {
	if n.leaf {
		count := 0
		for _, k := range n.keys {
			if iv.contains(k) {
				count++
			}
		}
		return count
	}
	total := 0
	for i := n.startChild(iv.lo); i <= n.endChild(iv.hi); i++ {
		total += nKeysInInterval(n.children[i], iv)
	}
	return total
}

// firstKeyInInterval returns the smallest key in iv, scanning leaves
// left-to-right within the selectively-descended child range.
func firstKeyInInterval[K Ordered, V any](n *node[K, V], iv interval[K]) (K, bool) {
	if n.leaf {
		for _, k := range n.keys {
			if iv.contains(k) {
				return k, true
			}
		}
		var zero K
		return zero, false
	}
	for i := n.startChild(iv.lo); i <= n.endChild(iv.hi); i++ {
		if k, ok := firstKeyInInterval(n.children[i], iv); ok {
			return k, true
		}
	}
	var zero K
	return zero, false
}

// lastKeyInInterval returns the largest key in iv. The source this
// module is derived from initializes its leaf scan index at n.nKeys and
// reads n.key[i] before decrementing, one slot past the last valid
// key. This implementation starts at len(n.keys)-1, the corrected form
// (§9 Design Notes, open question).
func lastKeyInInterval[K Ordered, V any](n *node[K, V], iv interval[K]) (K, bool) {
	if n.leaf {
		for i := len(n.keys) - 1; i >= 0; i-- {
			if iv.contains(n.keys[i]) {
				return n.keys[i], true
			}
		}
		var zero K
		return zero, false
	}
	for i := n.endChild(iv.hi); i >= n.startChild(iv.lo); i-- {
		if k, ok := lastKeyInInterval(n.children[i], iv); ok {
			return k, true
		}
	}
	var zero K
	return zero, false
}
