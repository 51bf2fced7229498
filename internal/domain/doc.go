// Package domain defines the typed data model shared by the rest of the
// core: domain tags, schemas, tuples, values, and the error kinds that the
// index and evaluator packages surface to callers.
//
// A Schema is an ordered list of (name, DomainTag) attributes plus a
// non-empty primary-key subset (§3.1). A Tuple is a positionally aligned
// slice of Values whose tags match the schema. Values are a small tagged
// union (one of signed integer widths, one of the two IEEE-754 widths, a
// single character, or a fixed 64-byte string) rather than an `any`, so
// that comparisons and the byte codec never need a type switch over
// arbitrary Go types.
package domain
