package eval

import (
	"github.com/dreamware/reldb/internal/domain"
)

// Evaluate parses condition into postfix and evaluates it against
// tuple under schema (§3.4, §4.E). An empty or whitespace-only
// condition is always true (§6.3).
func Evaluate(condition string, schema *domain.Schema, tuple domain.Tuple) (bool, error) {
	tokens := tokenize(condition)
	if len(tokens) == 0 {
		return true, nil
	}
	return evalPostfix(toPostfix(tokens), schema, tuple)
}

func evalPostfix(postfix []string, schema *domain.Schema, tuple domain.Tuple) (bool, error) {
	var st stack

	for _, tok := range postfix {
		switch tok {
		case "&", "|":
			rhs, ok := st.popBool()
			if !ok {
				return false, domain.Wrap(domain.ErrIllFormedPredicate, "operator %q needs two boolean operands", tok)
			}
			lhs, ok := st.popBool()
			if !ok {
				return false, domain.Wrap(domain.ErrIllFormedPredicate, "operator %q needs two boolean operands", tok)
			}
			if tok == "&" {
				st.push(boolOperand(lhs && rhs))
			} else {
				st.push(boolOperand(lhs || rhs))
			}

		case "==", "!=", "<", "<=", ">", ">=":
			rhsTok, ok := st.popToken()
			if !ok {
				return false, domain.Wrap(domain.ErrIllFormedPredicate, "operator %q needs two operands", tok)
			}
			lhsTok, ok := st.popToken()
			if !ok {
				return false, domain.Wrap(domain.ErrIllFormedPredicate, "operator %q needs two operands", tok)
			}
			result, err := compareTokens(schema, tuple, lhsTok, rhsTok, tok)
			if err != nil {
				return false, err
			}
			st.push(boolOperand(result))

		default:
			st.push(tokenOperand(tok))
		}
	}

	if len(st) != 1 {
		return false, domain.Wrap(domain.ErrIllFormedPredicate, "postfix evaluation left %d values on the stack, want 1", len(st))
	}
	result, ok := st.popBool()
	if !ok {
		return false, domain.Wrap(domain.ErrIllFormedPredicate, "postfix evaluation did not reduce to a boolean")
	}
	return result, nil
}

// compareTokens resolves which side of a comparison is the schema
// attribute, parses the other side's literal against the attribute's
// domain, and compares (§4.E "Evaluation").
func compareTokens(schema *domain.Schema, tuple domain.Tuple, lhsTok, rhsTok, op string) (bool, error) {
	if idx, ok := schema.IndexOf(lhsTok); ok {
		attr := schema.Attrs[idx]
		rhsVal, err := domain.ParseLiteral(attr.Tag, rhsTok)
		if err != nil {
			return false, err
		}
		return compareOp(tuple[idx], rhsVal, op)
	}
	if idx, ok := schema.IndexOf(rhsTok); ok {
		attr := schema.Attrs[idx]
		lhsVal, err := domain.ParseLiteral(attr.Tag, lhsTok)
		if err != nil {
			return false, err
		}
		return compareOp(lhsVal, tuple[idx], op)
	}
	return false, domain.Wrap(domain.ErrIllFormedPredicate, "comparison %q %s %q: neither side is an attribute", lhsTok, op, rhsTok)
}

func compareOp(lhs, rhs domain.Value, op string) (bool, error) {
	c, err := domain.Compare(lhs, rhs)
	if err != nil {
		return false, err
	}
	switch op {
	case "==":
		return c == 0, nil
	case "!=":
		return c != 0, nil
	case "<":
		return c < 0, nil
	case "<=":
		return c <= 0, nil
	case ">":
		return c > 0, nil
	case ">=":
		return c >= 0, nil
	default:
		return false, domain.Wrap(domain.ErrIllFormedPredicate, "unknown comparison operator %q", op)
	}
}
