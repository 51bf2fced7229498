// Package table is the relational façade the core's index and
// evaluator packages exist to serve (§4.F): a Table owns a schema, an
// ordered tuple sequence, and a pluggable primary-key Index (either
// internal/index/btree or internal/index/exthash, behind the same
// narrow Get/Put/Entries interface).
//
// Insert routes a tuple through internal/codec to derive its
// primary-key bytes and registers it in the index; Select compiles
// and runs an internal/eval predicate over the tuple sequence; the
// set operators (Project, Union, Minus, Join) are implemented atop
// the tuple sequence and, where the operator is equality-based, atop
// index Get, per §4.F.
package table
