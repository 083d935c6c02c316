package compare

import (
	"cmp"

	"facette.io/natsort"
)

// Key is a value nominated by one side of a comparison to stand in for it.
// Keys of the same kind order among themselves; keys of unrelated kinds are
// Incomparable, except for the [Min] and [Max] extremes, which order against
// every key.
type Key interface {
	// Compare orders the receiver against another key.
	Compare(other Key) Result
}

// String is a lexicographically ordered key. It is the default key kind:
// values without an [Orderable] implementation are keyed by their textual
// form as a String.
type String string

var _ Key = String("")

// Compare implements [Key].
func (k String) Compare(other Key) Result {
	switch o := other.(type) {
	case String:
		return Result(cmp.Compare(string(k), string(o)))
	case minKey, maxKey:
		return flip(other.Compare(k))
	default:
		return Incomparable
	}
}

// Natural is a string key under natural sort order: runs of digits compare
// numerically, so "vol. 9" orders before "vol. 10". Useful for shelving
// order, where plain lexicographic ordering misfiles numbered volumes.
type Natural string

var _ Key = Natural("")

// Compare implements [Key].
func (k Natural) Compare(other Key) Result {
	switch o := other.(type) {
	case Natural:
		if string(k) == string(o) {
			return Equal
		}

		if natsort.Compare(string(k), string(o)) {
			return Less
		}

		return Greater
	case minKey, maxKey:
		return flip(other.Compare(k))
	default:
		return Incomparable
	}
}

// Int is a numeric key. Int and [Float] keys are mutually comparable.
type Int int64

var _ Key = Int(0)

// Compare implements [Key].
func (k Int) Compare(other Key) Result {
	switch o := other.(type) {
	case Int:
		return Result(cmp.Compare(int64(k), int64(o)))
	case Float:
		return Result(cmp.Compare(float64(k), float64(o)))
	case minKey, maxKey:
		return flip(other.Compare(k))
	default:
		return Incomparable
	}
}

// Float is a floating-point numeric key. Float and [Int] keys are mutually
// comparable.
type Float float64

var _ Key = Float(0)

// Compare implements [Key].
func (k Float) Compare(other Key) Result {
	switch o := other.(type) {
	case Float:
		return Result(cmp.Compare(float64(k), float64(o)))
	case Int:
		return Result(cmp.Compare(float64(k), float64(o)))
	case minKey, maxKey:
		return flip(other.Compare(k))
	default:
		return Incomparable
	}
}

// Tuple is a hierarchical key compared element-wise: the first unequal pair
// of elements decides the ordering, and a tuple that is a strict prefix of
// another orders before it. Any element pair that is itself Incomparable
// makes the whole comparison Incomparable.
type Tuple []Key

var _ Key = Tuple(nil)

// Compare implements [Key].
func (k Tuple) Compare(other Key) Result {
	switch o := other.(type) {
	case Tuple:
		for i := range k {
			if i >= len(o) {
				return Greater
			}

			switch r := k[i].Compare(o[i]); r {
			case Equal:
				continue
			default:
				return r
			}
		}

		if len(k) < len(o) {
			return Less
		}

		return Equal
	case minKey, maxKey:
		return flip(other.Compare(k))
	default:
		return Incomparable
	}
}

type minKey struct{}

// Min is a key that orders before every other key except Min itself.
var Min Key = minKey{}

// Compare implements [Key].
func (minKey) Compare(other Key) Result {
	if _, ok := other.(minKey); ok {
		return Equal
	}

	return Less
}

type maxKey struct{}

// Max is a key that orders after every other key except Max itself.
var Max Key = maxKey{}

// Compare implements [Key].
func (maxKey) Compare(other Key) Result {
	if _, ok := other.(maxKey); ok {
		return Equal
	}

	return Greater
}

// signKey orders Infinity sentinels against each other by sign alone, so the
// outcome never depends on how the signs happen to be spelled as labels.
type signKey int8

var _ Key = signKey(0)

// Compare implements [Key].
func (k signKey) Compare(other Key) Result {
	o, ok := other.(signKey)
	if !ok {
		return Incomparable
	}

	return Result(cmp.Compare(int8(k), int8(o)))
}

// flip inverts an ordering result; Equal and Incomparable are unchanged.
func flip(r Result) Result {
	switch r {
	case Less:
		return Greater
	case Greater:
		return Less
	default:
		return r
	}
}
