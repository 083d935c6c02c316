package compare

import "errors"

// ErrIncomparable is returned when an ordering operator is evaluated for a
// pair of values that cannot be ordered relative to each other.
var ErrIncomparable = errors.New("compare: values are not comparable")

// Result is the outcome of a comparison: one of the three ordering outcomes,
// or Incomparable when the two sides cannot be ordered at all.
type Result int

const (
	// Less means the left side orders strictly before the right side.
	Less Result = -1
	// Equal means the two sides order the same.
	Equal Result = 0
	// Greater means the left side orders strictly after the right side.
	Greater Result = 1
	// Incomparable means no ordering is defined for the pair.
	Incomparable Result = 2
)

// String returns a short name for the result.
func (r Result) String() string {
	switch r {
	case Less:
		return "less"
	case Equal:
		return "equal"
	case Greater:
		return "greater"
	case Incomparable:
		return "incomparable"
	default:
		return "result(?)"
	}
}

// Comparable reports whether the result carries an ordering.
func (r Result) Comparable() bool {
	return r == Less || r == Equal || r == Greater
}

// Satisfies evaluates the relational operator op against the result.
//
// An Incomparable result makes OpEq false and OpNe true (unrelated values are
// not equal, without that being an error), while the four ordering operators
// return ErrIncomparable.
func (r Result) Satisfies(op Op) (bool, error) {
	if !r.Comparable() {
		switch op {
		case OpEq:
			return false, nil
		case OpNe:
			return true, nil
		default:
			return false, ErrIncomparable
		}
	}

	switch op {
	case OpEq:
		return r == Equal, nil
	case OpNe:
		return r != Equal, nil
	case OpGt:
		return r == Greater, nil
	case OpGe:
		return r != Less, nil
	case OpLt:
		return r == Less, nil
	case OpLe:
		return r != Greater, nil
	default:
		return false, ErrIncomparable
	}
}
