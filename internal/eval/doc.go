// Package eval implements the selection expression pipeline (§3.4,
// §4.E): a whitespace tokenizer, a Shunting-yard infix-to-postfix
// conversion honoring the comparison/boolean precedence table, and a
// stack-based postfix evaluator that resolves attribute references
// against a domain.Schema and domain.Tuple.
//
// The empty or whitespace-only condition is the always-true predicate
// (§6.3).
package eval
