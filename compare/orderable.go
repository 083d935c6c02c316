package compare

import "fmt"

// Orderable is the capability a type implements to take part in keyed
// comparison. CmpKey nominates the key the value wants compared on its
// behalf against the given partner under the given operator.
//
// Returning an error means the value cannot be keyed against this partner;
// the pair is then treated as Incomparable rather than the error being
// surfaced.
type Orderable interface {
	CmpKey(other any, op Op) (Key, error)
}

// KeyOf returns the comparison key v nominates against partner. Values that
// do not implement [Orderable] are keyed by their textual form, so their
// default ordering is lexicographic.
func KeyOf(v, partner any, op Op) (Key, error) {
	if o, ok := v.(Orderable); ok {
		return o.CmpKey(partner, op)
	}

	return String(fmt.Sprint(v)), nil
}

// Compare orders a against b by keying both sides and comparing the keys.
// Either side failing to produce a key, or the two keys being of unrelated
// kinds, yields Incomparable. The operator hint passed to CmpKey is OpEq.
func Compare(a, b any) Result {
	return compareWith(a, b, OpEq)
}

// Eval evaluates the relational operator op for the pair (a, b). Pairs that
// cannot be ordered make OpEq false and OpNe true; the four ordering
// operators return ErrIncomparable for such pairs.
func Eval(a, b any, op Op) (bool, error) {
	return compareWith(a, b, op).Satisfies(op)
}

// Equals reports whether a == b under keyed comparison. Values that cannot
// be compared are reported as not equal.
func Equals(a, b any) bool {
	ok, _ := Eval(a, b, OpEq)

	return ok
}

// NotEquals reports whether a != b under keyed comparison. Values that
// cannot be compared are reported as not equal, hence NotEquals is true.
func NotEquals(a, b any) bool {
	ok, _ := Eval(a, b, OpNe)

	return ok
}

// LessThan reports whether a < b. It returns ErrIncomparable if the pair
// cannot be ordered.
func LessThan(a, b any) (bool, error) {
	return Eval(a, b, OpLt)
}

// LessOrEqual reports whether a <= b. It returns ErrIncomparable if the pair
// cannot be ordered.
func LessOrEqual(a, b any) (bool, error) {
	return Eval(a, b, OpLe)
}

// GreaterThan reports whether a > b. It returns ErrIncomparable if the pair
// cannot be ordered.
func GreaterThan(a, b any) (bool, error) {
	return Eval(a, b, OpGt)
}

// GreaterOrEqual reports whether a >= b. It returns ErrIncomparable if the
// pair cannot be ordered.
func GreaterOrEqual(a, b any) (bool, error) {
	return Eval(a, b, OpGe)
}

func compareWith(a, b any, op Op) Result {
	ka, err := KeyOf(a, b, op)
	if err != nil {
		return Incomparable
	}

	kb, err := KeyOf(b, a, op)
	if err != nil {
		return Incomparable
	}

	return ka.Compare(kb)
}
