// Package text renders count ranges and lists as English prose, and wraps
// arbitrary values into indented paragraphs for terminal display. It backs
// the human-readable descriptions call-number grammars produce for their
// parse errors and documentation.
package text

import (
	"fmt"
	"strings"

	"github.com/callnum-labs/cn-common/optional"
)

// MinMaxText renders a count range as prose: "any number", "2 or more",
// "5 or fewer", "3", or "2 to 5". Absent bounds are unbounded on that side.
// lowerWord replaces "fewer" in the upper-bound-only form (for example
// "less" for uncountable quantities); the empty string means "fewer".
func MinMaxText(min, max optional.Value[int], lowerWord string) string {
	if lowerWord == "" {
		lowerWord = "fewer"
	}

	lo, hasLo := min.Get()
	hi, hasHi := max.Get()

	switch {
	case !hasLo && !hasHi:
		return "any number"
	case !hasHi:
		return fmt.Sprintf("%d or more", lo)
	case !hasLo:
		return fmt.Sprintf("%d or %s", hi, lowerWord)
	case lo == hi:
		return fmt.Sprintf("%d", lo)
	default:
		return fmt.Sprintf("%d to %d", lo, hi)
	}
}

// ListText renders items as an English list with the given conjunction:
// "a", "a or b", "a, b, or c". An empty list renders as the empty string.
func ListText(items []string, conjunction string) string {
	switch len(items) {
	case 0:
		return ""
	case 1:
		return items[0]
	case 2:
		return fmt.Sprintf("%s %s %s", items[0], conjunction, items[1])
	default:
		head := strings.Join(items[:len(items)-1], ", ")

		return fmt.Sprintf("%s, %s %s", head, conjunction, items[len(items)-1])
	}
}
