package optional

import (
	"cmp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValue_Basics(t *testing.T) {
	t.Parallel()

	some := Some(5)
	none := None[int]()

	assert.True(t, some.Present())
	assert.False(t, some.Absent())
	assert.False(t, none.Present())
	assert.True(t, none.Absent())

	v, ok := some.Get()
	require.True(t, ok)
	assert.Equal(t, 5, v)

	_, ok = none.Get()
	assert.False(t, ok)

	assert.Equal(t, 5, some.GetOrElse(9))
	assert.Equal(t, 9, none.GetOrElse(9))
}

func TestValue_ZeroValueIsNone(t *testing.T) {
	t.Parallel()

	var v Value[string]

	assert.True(t, v.Absent())
	assert.Equal(t, "fallback", v.GetOrElse("fallback"))
}

func TestValue_String(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Some(3)", Some(3).String())
	assert.Equal(t, "None", None[int]().String())
}

func TestMap(t *testing.T) {
	t.Parallel()

	doubled := Map(Some(21), func(n int) int { return n * 2 })
	v, ok := doubled.Get()
	require.True(t, ok)
	assert.Equal(t, 42, v)

	mapped := Map(None[int](), func(n int) int { return n * 2 })
	assert.True(t, mapped.Absent())
}

func TestCompare_AbsenceIsLeast(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		a        Value[int]
		b        Value[int]
		expected int
	}{
		{name: "both absent", a: None[int](), b: None[int](), expected: 0},
		{name: "none before some", a: None[int](), b: Some(-1 << 60), expected: -1},
		{name: "some after none", a: Some(-1 << 60), b: None[int](), expected: 1},
		{name: "present values order normally", a: Some(1), b: Some(2), expected: -1},
		{name: "equal present values", a: Some(7), b: Some(7), expected: 0},
		{name: "greater present value", a: Some(9), b: Some(2), expected: 1},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.expected, Compare(tt.a, tt.b, cmp.Compare[int]))
		})
	}
}

func TestEquals(t *testing.T) {
	t.Parallel()

	eq := func(a, b int) bool { return a == b }

	assert.True(t, Equals(None[int](), None[int](), eq))
	assert.True(t, Equals(Some(3), Some(3), eq))
	assert.False(t, Equals(Some(3), Some(4), eq))
	assert.False(t, Equals(Some(3), None[int](), eq))
	assert.False(t, Equals(None[int](), Some(3), eq))
}
