package eval

import "strings"

// operators lists the tokens recognized as operators, in the
// precedence order of §3.4 (highest first). Used both to recognize an
// operator token and to rank it during infix-to-postfix conversion.
var operators = []string{"==", "!=", "<", "<=", ">", ">=", "&", "|"}

// precedence maps an operator token to its binding strength; higher
// binds tighter.
var precedence = func() map[string]int {
	m := make(map[string]int, len(operators))
	for i, op := range operators {
		m[op] = len(operators) - i
	}
	return m
}()

func isOperator(token string) bool {
	_, ok := precedence[token]
	return ok
}

// tokenize splits a condition on whitespace and strips surrounding
// single quotes from string literals (§4.E "Tokenizer", §6.3).
func tokenize(condition string) []string {
	fields := strings.Fields(condition)
	tokens := make([]string, len(fields))
	for i, f := range fields {
		tokens[i] = stripQuotes(f)
	}
	return tokens
}

func stripQuotes(token string) string {
	if len(token) >= 2 && strings.HasPrefix(token, "'") && strings.HasSuffix(token, "'") {
		return token[1 : len(token)-1]
	}
	return token
}
