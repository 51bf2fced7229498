package domain

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Value is a tagged scalar belonging to one of the domains in §3.1. It is
// a small closed union rather than an `any` so comparisons (§4.E) and the
// byte codec (§6.2) never need to reflect over arbitrary Go types.
type Value struct {
	tag DomainTag
	i   int64
	f   float64
	s   string // String domain payload, or the single rune for Char
}

func NewInt(tag DomainTag, v int64) Value {
	return Value{tag: tag, i: v}
}

func NewFloat(tag DomainTag, v float64) Value {
	return Value{tag: tag, f: v}
}

func NewChar(r rune) Value {
	return Value{tag: Char, s: string(r)}
}

func NewString(s string) Value {
	return Value{tag: String, s: s}
}

func (v Value) Tag() DomainTag { return v.tag }

func (v Value) Int() int64 { return v.i }

func (v Value) Float() float64 { return v.f }

func (v Value) Str() string { return v.s }

func (v Value) Rune() rune {
	for _, r := range v.s {
		return r
	}
	return 0
}

func (v Value) String() string {
	switch {
	case v.tag.IsInteger():
		return strconv.FormatInt(v.i, 10)
	case v.tag.IsReal():
		return strconv.FormatFloat(v.f, 'g', -1, 64)
	case v.tag.IsChar():
		return v.s
	case v.tag.IsString():
		return v.s
	default:
		return fmt.Sprintf("<invalid value %v>", v.tag)
	}
}

// Compare orders two values of the SAME domain, per §4.E ("totally
// ordered within a domain; cross-domain comparison is undefined"). It
// returns -1, 0, or 1. Comparing values of different domains is an
// ErrIllFormedPredicate.
func Compare(a, b Value) (int, error) {
	if a.tag != b.tag {
		return 0, errors.Wrapf(ErrIllFormedPredicate, "cross-domain comparison %s vs %s", a.tag, b.tag)
	}
	switch {
	case a.tag.IsInteger():
		return cmp(a.i, b.i), nil
	case a.tag.IsReal():
		return cmp(a.f, b.f), nil
	case a.tag.IsChar(), a.tag.IsString():
		return strings.Compare(a.s, b.s), nil
	default:
		return 0, errors.Wrapf(ErrIllFormedPredicate, "uncomparable domain %s", a.tag)
	}
}

// Equal reports natural equality within a domain (§6.2: "== and != use
// natural equality for the domain, not byte equality").
func Equal(a, b Value) (bool, error) {
	c, err := Compare(a, b)
	if err != nil {
		return false, err
	}
	return c == 0, nil
}

func cmp[T int64 | float64](a, b T) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// ParseLiteral parses a raw predicate token (already quote-stripped for
// strings) into a Value of the given domain, as required when evaluating
// a comparison against an attribute (§4.E).
func ParseLiteral(tag DomainTag, token string) (Value, error) {
	switch {
	case tag.IsInteger():
		n, err := strconv.ParseInt(token, 10, 64)
		if err != nil {
			return Value{}, errors.Wrapf(ErrIllFormedPredicate, "parse %q as %s", token, tag)
		}
		return NewInt(tag, n), nil
	case tag.IsReal():
		f, err := strconv.ParseFloat(token, 64)
		if err != nil {
			return Value{}, errors.Wrapf(ErrIllFormedPredicate, "parse %q as %s", token, tag)
		}
		return NewFloat(tag, f), nil
	case tag.IsChar():
		runes := []rune(token)
		if len(runes) != 1 {
			return Value{}, errors.Wrapf(ErrIllFormedPredicate, "parse %q as char", token)
		}
		return NewChar(runes[0]), nil
	case tag.IsString():
		return NewString(token), nil
	default:
		return Value{}, errors.Wrapf(ErrIllFormedPredicate, "unknown domain for %q", token)
	}
}
