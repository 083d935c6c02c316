// Package optional provides a type-safe optional value with an ordering that
// treats absence as less than every present value. It models quantities that
// may be unspecified, such as the upper bound of a repetition range, without
// resorting to nil pointers or magic numbers.
package optional

import "fmt"

// Value represents a value of type T that may be absent.
// Use Some(value) for a present value, or None() for an absent one.
type Value[T any] struct {
	value T
	isSet bool
}

// Some creates a Value containing the given value.
func Some[T any](value T) Value[T] {
	return Value[T]{value: value, isSet: true}
}

// None creates an absent Value.
func None[T any]() Value[T] {
	return Value[T]{}
}

// Present reports whether the Value contains a value.
func (o Value[T]) Present() bool {
	return o.isSet
}

// Absent reports whether the Value is empty.
func (o Value[T]) Absent() bool {
	return !o.isSet
}

// Get returns the value and a boolean indicating whether it is present.
// This is the safe way to extract a value.
func (o Value[T]) Get() (T, bool) {
	return o.value, o.isSet
}

// GetOrElse returns the value if present, or the provided default if absent.
func (o Value[T]) GetOrElse(defaultValue T) T {
	if o.isSet {
		return o.value
	}

	return defaultValue
}

// String returns "Some(value)" for a present value, or "None" when absent.
func (o Value[T]) String() string {
	if o.isSet {
		return fmt.Sprintf("Some(%v)", o.value)
	}

	return "None"
}

// Map transforms the contained value using f.
// Returns Some(f(value)) if present, or None if absent.
func Map[T any, U any](o Value[T], f func(T) U) Value[U] {
	if o.isSet {
		return Some(f(o.value))
	}

	return None[U]()
}

// Compare orders two optional values with absence as the unique minimum:
// None orders before every Some, two Nones are equal, and two present values
// order by cmp, which follows the usual negative/zero/positive convention.
func Compare[T any](a, b Value[T], cmp func(T, T) int) int {
	switch {
	case !a.isSet && !b.isSet:
		return 0
	case !a.isSet:
		return -1
	case !b.isSet:
		return 1
	default:
		return cmp(a.value, b.value)
	}
}

// Equals compares two optional values: both absent, or both present with
// values equal according to eq.
func Equals[T any](a, b Value[T], eq func(T, T) bool) bool {
	if a.isSet != b.isSet {
		return false
	}

	if !a.isSet {
		return true
	}

	return eq(a.value, b.value)
}
