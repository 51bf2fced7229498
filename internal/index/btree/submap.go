package btree

import "github.com/dreamware/reldb/internal/domain"

// SubMap is a lightweight view over a half-open interval of an
// underlying Map (§4.D "SubMap view"). It delegates size/first/last/
// containment/get to the interval primitives on the underlying tree; it
// holds no data of its own.
type SubMap[K Ordered, V any] struct {
	tree *Map[K, V]
	iv   interval[K]
}

// HeadMap returns a view of keys in (-infinity, to) (§4.D).
func (m *Map[K, V]) HeadMap(to K) *SubMap[K, V] {
	return &SubMap[K, V]{tree: m, iv: interval[K]{lo: unbounded[K](), hi: exclusiveBound(to)}}
}

// TailMap returns a view of keys in [from, +infinity) (§4.D).
func (m *Map[K, V]) TailMap(from K) *SubMap[K, V] {
	return &SubMap[K, V]{tree: m, iv: interval[K]{lo: inclusiveBound(from), hi: unbounded[K]()}}
}

// SubMap returns a view of keys in [from, to). from > to fails with
// ErrInconsistentRange (§4.D).
func (m *Map[K, V]) SubMap(from, to K) (*SubMap[K, V], error) {
	if from > to {
		return nil, domain.Wrap(domain.ErrInconsistentRange, "sub_map(%v, %v)", from, to)
	}
	return &SubMap[K, V]{tree: m, iv: interval[K]{lo: inclusiveBound(from), hi: exclusiveBound(to)}}, nil
}

// Size returns the number of keys within the view's interval.
func (v *SubMap[K, V]) Size() int {
	return nKeysInInterval(v.tree.root, v.iv)
}

// FirstKey returns the smallest key within the view. Fails with
// ErrEmpty if the view contains no keys.
func (v *SubMap[K, V]) FirstKey() (K, error) {
	k, ok := firstKeyInInterval(v.tree.root, v.iv)
	if !ok {
		var zero K
		return zero, domain.ErrEmpty
	}
	return k, nil
}

// LastKey returns the largest key within the view. Fails with ErrEmpty
// if the view contains no keys.
func (v *SubMap[K, V]) LastKey() (K, error) {
	k, ok := lastKeyInInterval(v.tree.root, v.iv)
	if !ok {
		var zero K
		return zero, domain.ErrEmpty
	}
	return k, nil
}

// ContainsKey reports whether k is both present in the underlying tree
// and within this view's interval.
func (v *SubMap[K, V]) ContainsKey(k K) bool {
	if !v.iv.contains(k) {
		return false
	}
	_, ok := v.tree.Get(k)
	return ok
}

// Get returns the value for k if k is within the view's interval and
// present in the underlying tree.
func (v *SubMap[K, V]) Get(k K) (V, bool) {
	if !v.iv.contains(k) {
		var zero V
		return zero, false
	}
	return v.tree.Get(k)
}

// Put writes through to the underlying tree WITHOUT bounds enforcement:
// a key outside the view's interval is still inserted into the tree
// (§4.D: "matches source behavior; flagged in §9").
func (v *SubMap[K, V]) Put(k K, val V) {
	v.tree.Put(k, val)
}

// HeadMap refines this view to (-infinity, to) intersected with the
// current interval. Broadening the view fails with ErrKeyOutOfRange
// (§4.D).
func (v *SubMap[K, V]) HeadMap(to K) (*SubMap[K, V], error) {
	return v.refine(interval[K]{lo: v.iv.lo, hi: exclusiveBound(to)})
}

// TailMap refines this view to [from, +infinity) intersected with the
// current interval.
func (v *SubMap[K, V]) TailMap(from K) (*SubMap[K, V], error) {
	return v.refine(interval[K]{lo: inclusiveBound(from), hi: v.iv.hi})
}

// SubMap refines this view to [from, to) intersected with the current
// interval. from > to fails with ErrInconsistentRange before the
// broadening check runs.
func (v *SubMap[K, V]) SubMap(from, to K) (*SubMap[K, V], error) {
	if from > to {
		return nil, domain.Wrap(domain.ErrInconsistentRange, "sub_map(%v, %v)", from, to)
	}
	return v.refine(interval[K]{lo: inclusiveBound(from), hi: exclusiveBound(to)})
}

// refine validates that req is at least as strict as v's own interval
// on both sides (composes inclusively: the stricter bound wins) and
// fails with ErrKeyOutOfRange if either side would broaden the view
// (§4.D).
func (v *SubMap[K, V]) refine(req interval[K]) (*SubMap[K, V], error) {
	if !loAtLeastAsStrict(v.iv.lo, req.lo) {
		return nil, domain.Wrap(domain.ErrKeyOutOfRange, "refinement would broaden lower bound")
	}
	if !hiAtLeastAsStrict(v.iv.hi, req.hi) {
		return nil, domain.Wrap(domain.ErrKeyOutOfRange, "refinement would broaden upper bound")
	}
	return &SubMap[K, V]{tree: v.tree, iv: req}, nil
}

// loAtLeastAsStrict reports whether child is at least as strict a lower
// bound as parent (excludes everything parent excludes, and possibly
// more).
func loAtLeastAsStrict[K Ordered](parent, child bound[K]) bool {
	if !parent.has {
		return true
	}
	if !child.has {
		return false
	}
	if child.val != parent.val {
		return child.val > parent.val
	}
	if parent.inc == child.inc {
		return true
	}
	return !child.inc // child exclusive, parent inclusive: stricter
}

// hiAtLeastAsStrict is the upper-bound analogue of loAtLeastAsStrict.
func hiAtLeastAsStrict[K Ordered](parent, child bound[K]) bool {
	if !parent.has {
		return true
	}
	if !child.has {
		return false
	}
	if child.val != parent.val {
		return child.val < parent.val
	}
	if parent.inc == child.inc {
		return true
	}
	return !child.inc
}
