// Package compare implements keyed comparison between values of unrelated
// types, plus an unbounded "infinity" sentinel.
//
// # Overview
//
// Call-number parsing has to order values that do not share a concrete type:
// parsed units, plain strings, numeric ranges, and open-ended repetition
// bounds. Rather than requiring every pair of types to know about each other,
// each value nominates a comparison [Key] for a given partner and operator,
// and the two keys are compared instead. A type opts in by implementing
// [Orderable]; values that do not implement it fall back to their textual
// form, so default ordering is lexicographic string ordering.
//
// Comparison results are the four-valued [Result]: [Less], [Equal],
// [Greater], or [Incomparable]. Incomparable is not an error for equality
// checks (unrelated values are simply not equal), but ordering two
// incomparable values yields [ErrIncomparable].
//
// # Keys
//
// Keys come in a handful of kinds: [String] (lexicographic), [Natural]
// (digit runs compare numerically, for shelving order), [Int] and [Float]
// (numeric, mutually comparable), [Tuple] (hierarchical, element-wise), and
// the extremes [Min] and [Max], which compare below and above every other
// key. Comparing keys of unrelated kinds yields [Incomparable].
//
// # Infinity
//
// [Infinity] is a value comparable against anything and greater (or, after
// [Infinity.Negate], less) than everything. It is used as the upper bound of
// open-ended repetition specifications:
//
//	max := compare.Inf()
//	ok, _ := compare.GreaterThan(max, 1024) // true for any count
//
// # Custom types
//
// To participate with a semantically meaningful key, implement [Orderable]:
//
//	type Edition struct{ Year, Printing int }
//
//	func (e Edition) CmpKey(other any, op compare.Op) (compare.Key, error) {
//	    return compare.Tuple{compare.Int(e.Year), compare.Int(e.Printing)}, nil
//	}
//
// Two Editions then order by year, then printing; an Edition compared
// against an unrelated value is Incomparable rather than a panic.
package compare
