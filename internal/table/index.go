package table

import (
	"github.com/dreamware/reldb/internal/domain"
	"github.com/dreamware/reldb/internal/index/btree"
	"github.com/dreamware/reldb/internal/index/exthash"
)

// Key is the packed primary-key byte string (internal/codec.PackTuple
// output, re-cast to a Go string so it is both comparable and hashable).
type Key = string

// Entry is a single (key, tuple) pair as returned by Index.Entries.
type Entry struct {
	Key   Key
	Tuple *domain.Tuple
}

// Index is the narrow interface a Table's primary-key index must
// satisfy (§4.F): either backing data structure is interchangeable
// behind it.
type Index interface {
	Get(k Key) (*domain.Tuple, bool)
	Put(k Key, t *domain.Tuple)
	Entries() []Entry
}

// BTreeIndex adapts btree.Map to Index, giving a Table ordered
// primary-key access (range queries via the Map's own SubMap views,
// reachable through Underlying).
type BTreeIndex struct {
	m *btree.Map[Key, *domain.Tuple]
}

// NewBTreeIndex builds a B+Tree-backed index at the given fanout order,
// or the reference default when order is 0.
func NewBTreeIndex(order int) *BTreeIndex {
	if order == 0 {
		return &BTreeIndex{m: btree.New[Key, *domain.Tuple]()}
	}
	return &BTreeIndex{m: btree.NewWithOrder[Key, *domain.Tuple](order)}
}

func (i *BTreeIndex) Get(k Key) (*domain.Tuple, bool) { return i.m.Get(k) }
func (i *BTreeIndex) Put(k Key, t *domain.Tuple)      { i.m.Put(k, t) }

func (i *BTreeIndex) Entries() []Entry {
	es := i.m.Entries()
	out := make([]Entry, len(es))
	for j, e := range es {
		out[j] = Entry{Key: e.Key, Tuple: e.Value}
	}
	return out
}

// Underlying exposes the backing B+Tree for range-view operations
// (head_map/tail_map/sub_map) the narrow Index interface doesn't carry.
func (i *BTreeIndex) Underlying() *btree.Map[Key, *domain.Tuple] { return i.m }

// HashIndex adapts exthash.Map to Index, giving a Table O(1) expected
// primary-key point access at the cost of ordering.
type HashIndex struct {
	m *exthash.Map[Key, *domain.Tuple]
}

// NewHashIndex builds an extendible-hash-backed index with the given
// initial directory size (a power of two >= 1).
func NewHashIndex(initialDirSize int) *HashIndex {
	return &HashIndex{m: exthash.New[Key, *domain.Tuple](initialDirSize)}
}

func (i *HashIndex) Get(k Key) (*domain.Tuple, bool) { return i.m.Get(k) }
func (i *HashIndex) Put(k Key, t *domain.Tuple)      { i.m.Put(k, t) }

func (i *HashIndex) Entries() []Entry {
	es := i.m.Entries()
	out := make([]Entry, len(es))
	for j, e := range es {
		out[j] = Entry{Key: e.Key, Tuple: e.Value}
	}
	return out
}

// Underlying exposes the backing hash map for capacity/population
// introspection the narrow Index interface doesn't carry.
func (i *HashIndex) Underlying() *exthash.Map[Key, *domain.Tuple] { return i.m }
