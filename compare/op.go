package compare

// Op identifies one of the six relational operators. It is passed through to
// [Orderable.CmpKey] so a type may nominate different keys for different
// operators, though most implementations ignore it.
type Op int

const (
	// OpEq is the equality operator (==).
	OpEq Op = iota
	// OpNe is the inequality operator (!=).
	OpNe
	// OpGt is the strict greater-than operator (>).
	OpGt
	// OpGe is the greater-than-or-equal operator (>=).
	OpGe
	// OpLt is the strict less-than operator (<).
	OpLt
	// OpLe is the less-than-or-equal operator (<=).
	OpLe
)

// String returns the conventional spelling of the operator.
func (op Op) String() string {
	switch op {
	case OpEq:
		return "=="
	case OpNe:
		return "!="
	case OpGt:
		return ">"
	case OpGe:
		return ">="
	case OpLt:
		return "<"
	case OpLe:
		return "<="
	default:
		return "op(?)"
	}
}
