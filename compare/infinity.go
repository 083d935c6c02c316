package compare

// Infinity is an unbounded sentinel: a value comparable against anything and
// greater than everything, or less than everything when negative. It is the
// natural upper bound for open-ended repetition counts.
//
// Infinity is an immutable value type; the zero value is positive infinity.
// [Infinity.Negate] returns a fresh sentinel and never mutates its receiver,
// so sentinels can be shared freely.
type Infinity struct {
	negative bool
}

var _ Orderable = Infinity{}

// Inf returns positive infinity.
func Inf() Infinity {
	return Infinity{}
}

// NegInf returns negative infinity.
func NegInf() Infinity {
	return Infinity{negative: true}
}

// Negate returns a new sentinel with the opposite sign. The receiver is
// unchanged.
func (inf Infinity) Negate() Infinity {
	return Infinity{negative: !inf.negative}
}

// Negative reports whether the sentinel is negative infinity.
func (inf Infinity) Negative() bool {
	return inf.negative
}

// String renders the sentinel for diagnostics. The label plays no part in
// comparisons.
func (inf Infinity) String() string {
	if inf.negative {
		return "negative infinity"
	}

	return "positive infinity"
}

// CmpKey implements [Orderable]. Against another Infinity the key carries
// only the sign, so two sentinels order by sign alone: same sign is Equal,
// and positive orders after negative. Against anything else the sentinel
// keys as the [Max] or [Min] extreme, which order after and before every key
// the partner could nominate.
func (inf Infinity) CmpKey(other any, op Op) (Key, error) {
	if _, ok := other.(Infinity); ok {
		if inf.negative {
			return signKey(-1), nil
		}

		return signKey(1), nil
	}

	if inf.negative {
		return Min, nil
	}

	return Max, nil
}
