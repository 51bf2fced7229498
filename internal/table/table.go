package table

import (
	"github.com/dreamware/reldb/internal/codec"
	"github.com/dreamware/reldb/internal/domain"
	"github.com/dreamware/reldb/internal/eval"
)

// Table owns a schema, an ordered tuple sequence, and a pluggable
// primary-key Index (§4.F).
type Table struct {
	schema *domain.Schema
	index  Index
	tuples []*domain.Tuple
}

// New constructs an empty Table over the given schema and index.
func New(schema *domain.Schema, index Index) *Table {
	return &Table{schema: schema, index: index}
}

// Schema returns the table's schema.
func (t *Table) Schema() *domain.Schema { return t.schema }

// Len returns the number of tuples currently stored.
func (t *Table) Len() int { return len(t.tuples) }

// Insert validates tup against the schema, encodes its primary key via
// internal/codec, and registers it in both the index and the tuple
// sequence (§3.1, §4.F). Re-inserting an existing primary key overwrites
// that key's tuple in place rather than appending a second row, keeping
// the at-most-one mapping per key §3.1 requires in sync with t.tuples.
func (t *Table) Insert(tup domain.Tuple) error {
	if err := t.schema.Validate(tup); err != nil {
		return err
	}
	keyBytes, err := t.keyBytes(tup)
	if err != nil {
		return err
	}
	stored := tup.Clone()
	key := Key(keyBytes)
	if existing, found := t.index.Get(key); found {
		for i, tp := range t.tuples {
			if tp == existing {
				t.tuples[i] = &stored
				break
			}
		}
		t.index.Put(key, &stored)
		return nil
	}
	t.index.Put(key, &stored)
	t.tuples = append(t.tuples, &stored)
	return nil
}

func (t *Table) keyBytes(tup domain.Tuple) ([]byte, error) {
	keyVals, err := t.schema.KeyValues(tup)
	if err != nil {
		return nil, err
	}
	return codec.PackTuple(keyVals)
}

// Select compiles predicate once (§3.4/§4.E) and scans the tuple
// sequence, returning the tuples for which it evaluates true.
func (t *Table) Select(predicate string) ([]*domain.Tuple, error) {
	pred, err := eval.Compile(predicate, t.schema)
	if err != nil {
		return nil, err
	}
	out := make([]*domain.Tuple, 0, len(t.tuples))
	for _, tup := range t.tuples {
		ok, err := pred(*tup)
		if err != nil {
			return nil, err
		}
		if ok {
			out = append(out, tup)
		}
	}
	return out, nil
}

// Project returns one derived tuple per stored tuple, each holding
// only the named attributes in the given order. Unknown attribute
// names fail with DomainMismatch.
func (t *Table) Project(attrs ...string) ([]*domain.Tuple, error) {
	idxs := make([]int, len(attrs))
	for i, a := range attrs {
		idx, ok := t.schema.IndexOf(a)
		if !ok {
			return nil, domain.Wrap(domain.ErrDomainMismatch, "project: unknown attribute %q", a)
		}
		idxs[i] = idx
	}

	out := make([]*domain.Tuple, 0, len(t.tuples))
	for _, tup := range t.tuples {
		proj := make(domain.Tuple, len(idxs))
		for i, idx := range idxs {
			proj[i] = (*tup)[idx]
		}
		out = append(out, &proj)
	}
	return out, nil
}

// Union returns the set union of the receiver's and other's tuples,
// de-duplicating by primary key via the receiver's index (§4.F).
// other must be schema-compatible with the receiver.
func (t *Table) Union(other *Table) ([]*domain.Tuple, error) {
	if err := t.checkSchemaCompatible(other); err != nil {
		return nil, err
	}
	out := append([]*domain.Tuple(nil), t.tuples...)
	for _, tup := range other.tuples {
		keyBytes, err := t.keyBytes(*tup)
		if err != nil {
			return nil, err
		}
		if _, found := t.index.Get(Key(keyBytes)); !found {
			out = append(out, tup)
		}
	}
	return out, nil
}

// Minus returns the receiver's tuples whose primary key is absent
// from other's index (§4.F). other must be schema-compatible with the
// receiver.
func (t *Table) Minus(other *Table) ([]*domain.Tuple, error) {
	if err := t.checkSchemaCompatible(other); err != nil {
		return nil, err
	}
	var out []*domain.Tuple
	for _, tup := range t.tuples {
		keyBytes, err := t.keyBytes(*tup)
		if err != nil {
			return nil, err
		}
		if _, found := other.index.Get(Key(keyBytes)); !found {
			out = append(out, tup)
		}
	}
	return out, nil
}

func (t *Table) checkSchemaCompatible(other *Table) error {
	if len(t.schema.Attrs) != len(other.schema.Attrs) {
		return domain.Wrap(domain.ErrDomainMismatch, "schema arity mismatch: %d vs %d", len(t.schema.Attrs), len(other.schema.Attrs))
	}
	for i, a := range t.schema.Attrs {
		b := other.schema.Attrs[i]
		if a.Tag != b.Tag {
			return domain.Wrap(domain.ErrDomainMismatch, "attribute %d domain mismatch: %s vs %s", i, a.Tag, b.Tag)
		}
	}
	return nil
}
