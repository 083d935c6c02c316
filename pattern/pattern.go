// Package pattern builds and rewrites regular-expression source text for the
// grammar layer of call-number parsing: repetition quantifiers from count
// ranges, named group wrapping, and conversion of capturing groups to
// noncapturing ones.
package pattern

import (
	"fmt"
	"strings"

	"github.com/callnum-labs/cn-common/optional"
)

// Quantifier renders a repetition count range as a regex quantifier. An
// absent max means unbounded. The mapping prefers the shorthand forms:
// (0, unbounded) is "*", (0, 1) is "?", (1, unbounded) is "+", and (1, 1) is
// the empty string; everything else uses the brace forms "{m}", "{m,}", and
// "{m,n}".
func Quantifier(min int, max optional.Value[int]) string {
	n, bounded := max.Get()

	switch {
	case min == 0 && !bounded:
		return "*"
	case min == 0 && bounded && n == 1:
		return "?"
	case min == 1 && !bounded:
		return "+"
	case min == 1 && bounded && n == 1:
		return ""
	case !bounded:
		return fmt.Sprintf("{%d,}", min)
	case min == n:
		return fmt.Sprintf("{%d}", min)
	default:
		return fmt.Sprintf("{%d,%d}", min, n)
	}
}

// NonCapturing rewrites every capturing group in expr to a noncapturing
// group by inserting "?:" after its opening parenthesis. Parens that are
// escaped, or that already start a "(?..." construct, are left alone. The
// rewrite is a character scan because RE2 has no lookaround to express
// "unescaped open paren" as a pattern.
func NonCapturing(expr string) string {
	var sb strings.Builder

	sb.Grow(len(expr))

	escaped := false

	for i := 0; i < len(expr); i++ {
		ch := expr[i]

		switch {
		case escaped:
			escaped = false
		case ch == '\\':
			escaped = true
		case ch == '(':
			if i+1 >= len(expr) || expr[i+1] != '?' {
				sb.WriteString("(?:")

				continue
			}
		}

		sb.WriteByte(ch)
	}

	return sb.String()
}

// Group wraps expr in a named capturing group: (?P<label>expr).
func Group(label, expr string) string {
	return fmt.Sprintf("(?P<%s>%s)", label, expr)
}
