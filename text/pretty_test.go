package text

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPretty_NoWrapNeeded(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "hello world", Pretty("hello world", WithWidth(80)))

	// Short input never wraps at the default terminal width either.
	assert.Equal(t, "hello", Pretty("hello"))

	assert.Equal(t, "", Pretty(""))
}

func TestPretty_WrapsAtWordBoundaries(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		in       string
		width    int
		expected string
	}{
		{
			name:     "break lands after a word",
			in:       "the quick brown fox jumps",
			width:    10,
			expected: "the quick\nbrown fox\njumps",
		},
		{
			name:     "partial word moves whole to next line",
			in:       "aaa bbbbb",
			width:    6,
			expected: "aaa\nbbbbb",
		},
		{
			name:     "break lands just before a space",
			in:       "abcd efgh",
			width:    4,
			expected: "abcd\nefgh",
		},
		{
			name:     "unbroken run breaks at width",
			in:       "abcdefghij",
			width:    4,
			expected: "abcd\nefgh\nij",
		},
		{
			name:     "paragraphs wrap independently",
			in:       "para one\n\npara two",
			width:    80,
			expected: "para one\n\npara two",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.expected, Pretty(tt.in, WithWidth(tt.width)))
		})
	}
}

func TestPretty_Indentation(t *testing.T) {
	t.Parallel()

	got := Pretty("hello world this wraps", WithWidth(20), WithIndentLevel(1))
	assert.Equal(t, "    hello world this\n    wraps", got)

	got = Pretty("ab", WithWidth(20), WithIndentLevel(2), WithTabWidth(2))
	assert.Equal(t, "    ab", got)
}

func TestPretty_NarrowWidthFloor(t *testing.T) {
	t.Parallel()

	// Indentation deeper than the width still leaves a usable wrap width.
	got := Pretty("one two three four five six", WithWidth(8), WithIndentLevel(3))
	assert.Equal(t, "            one two three four\n            five six", got)
}

func TestPretty_NonStringValues(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "42", Pretty(42, WithWidth(80)))
	assert.Equal(t, "positive infinity", Pretty(stubStringer{}, WithWidth(80)))
}

type stubStringer struct{}

func (stubStringer) String() string {
	return "positive infinity"
}

func TestPrettyYAML(t *testing.T) {
	t.Parallel()

	v := struct {
		Min int `yaml:"min"`
		Max int `yaml:"max"`
	}{Min: 1, Max: 5}

	got, err := PrettyYAML(v, WithWidth(80))
	require.NoError(t, err)
	assert.Equal(t, "min: 1\nmax: 5", got)

	_, err = PrettyYAML(func() {}, WithWidth(80))
	assert.Error(t, err)
}
