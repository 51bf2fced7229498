package domain

import (
	"github.com/pkg/errors"
)

// Attribute is a single (name, domain) column of a Schema.
type Attribute struct {
	Name string
	Tag  DomainTag
}

// Schema is an ordered sequence of attributes plus a non-empty primary-key
// subset of attribute names (§3.1). Attribute names are unique within a
// schema.
type Schema struct {
	Attrs      []Attribute
	PrimaryKey []string

	index map[string]int
}

// NewSchema builds a Schema from its attributes and primary-key column
// names. It panics on a malformed schema (duplicate attribute names,
// empty/unknown primary key) since a schema is program-defined
// configuration, not user input, and constructors for this kind of
// fixed-at-startup value are expected to panic rather than return an
// error.
func NewSchema(attrs []Attribute, primaryKey ...string) *Schema {
	idx := make(map[string]int, len(attrs))
	for i, a := range attrs {
		if _, dup := idx[a.Name]; dup {
			panic("domain: duplicate attribute name " + a.Name)
		}
		idx[a.Name] = i
	}
	if len(primaryKey) == 0 {
		panic("domain: schema requires a non-empty primary key")
	}
	for _, pk := range primaryKey {
		if _, ok := idx[pk]; !ok {
			panic("domain: primary key references unknown attribute " + pk)
		}
	}
	return &Schema{Attrs: attrs, PrimaryKey: primaryKey, index: idx}
}

// IndexOf returns the positional index of the named attribute.
func (s *Schema) IndexOf(name string) (int, bool) {
	i, ok := s.index[name]
	return i, ok
}

// Attribute returns the named attribute's declaration.
func (s *Schema) Attribute(name string) (Attribute, bool) {
	i, ok := s.index[name]
	if !ok {
		return Attribute{}, false
	}
	return s.Attrs[i], true
}

// Validate checks a tuple's arity and positional domains against the
// schema (§3.1 invariants). Mismatches are ErrDomainMismatch.
func (s *Schema) Validate(t Tuple) error {
	if len(t) != len(s.Attrs) {
		return errors.Wrapf(ErrDomainMismatch, "tuple has %d values, schema has %d attributes", len(t), len(s.Attrs))
	}
	for i, v := range t {
		if v.Tag() != s.Attrs[i].Tag {
			return errors.Wrapf(ErrDomainMismatch, "attribute %q: value domain %s != schema domain %s",
				s.Attrs[i].Name, v.Tag(), s.Attrs[i].Tag)
		}
	}
	return nil
}

// KeyValues projects a tuple onto the primary-key columns, in primary-key
// column order.
func (s *Schema) KeyValues(t Tuple) ([]Value, error) {
	if err := s.Validate(t); err != nil {
		return nil, err
	}
	out := make([]Value, len(s.PrimaryKey))
	for i, name := range s.PrimaryKey {
		pos := s.index[name]
		out[i] = t[pos]
	}
	return out, nil
}
