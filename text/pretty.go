package text

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/callnum-labs/cn-common/console"
)

const (
	defaultTabWidth = 4

	// minWrapWidth is the floor for the usable line width after indentation
	// is subtracted; deeply indented output still wraps instead of
	// degenerating to one character per line.
	minWrapWidth = 20
)

type prettyConfig struct {
	width       int
	indentLevel int
	tabWidth    int
}

// PrettyOption adjusts how Pretty lays out its output.
type PrettyOption func(*prettyConfig)

// WithWidth sets the maximum line width. The default is the current
// terminal width (or the console package's default when there is no
// terminal).
func WithWidth(width int) PrettyOption {
	return func(c *prettyConfig) {
		c.width = width
	}
}

// WithIndentLevel indents every output line by the given number of tab
// stops.
func WithIndentLevel(level int) PrettyOption {
	return func(c *prettyConfig) {
		c.indentLevel = level
	}
}

// WithTabWidth sets the number of spaces per tab stop. The default is 4.
func WithTabWidth(width int) PrettyOption {
	return func(c *prettyConfig) {
		c.tabWidth = width
	}
}

// Pretty renders v's textual form wrapped to the line width and indented.
// Each input line wraps independently at word boundaries; a run longer than
// the usable width breaks mid-run.
func Pretty(v any, opts ...PrettyOption) string {
	cfg := prettyConfig{
		width:    console.Width(),
		tabWidth: defaultTabWidth,
	}

	for _, opt := range opts {
		opt(&cfg)
	}

	indentLen := cfg.tabWidth * cfg.indentLevel
	indent := strings.Repeat(" ", max(indentLen, 0))

	width := cfg.width - indentLen
	if width <= 0 {
		width = minWrapWidth
	}

	in := fmt.Sprint(v)
	if in == "" {
		return ""
	}

	lines := strings.Split(strings.TrimSuffix(in, "\n"), "\n")
	out := make([]string, len(lines))

	for i, line := range lines {
		out[i] = wrapParagraph(line, width, indent)
	}

	return strings.Join(out, "\n")
}

// PrettyYAML marshals v to YAML and renders the document through Pretty,
// for structured values whose plain textual form is unreadable.
func PrettyYAML(v any, opts ...PrettyOption) (string, error) {
	data, err := yaml.Marshal(v)
	if err != nil {
		return "", fmt.Errorf("could not marshal YAML: %w", err)
	}

	return Pretty(string(data), opts...), nil
}

// wrapParagraph greedily wraps a single paragraph to the given width. A
// chunk ending mid-word backs off to the last space so the word moves whole
// to the next line, unless the chunk is a single unbroken run, which breaks
// exactly at the width.
func wrapParagraph(s string, width int, indent string) string {
	var sb strings.Builder

	for i := 0; i < len(s); {
		next := i + width

		if next >= len(s) || s[next] == ' ' {
			// The break lands on a boundary; the following space, if
			// any, is consumed by the break.
			next++
		} else {
			chunk := s[i:next]
			if idx := strings.LastIndexByte(chunk, ' '); idx >= 0 && idx < len(chunk)-1 {
				next = i + idx + 1
			}
		}

		end := min(next, len(s))
		line := strings.TrimRight(s[i:end], " ")

		if i > 0 {
			sb.WriteByte('\n')
		}

		sb.WriteString(indent)
		sb.WriteString(line)

		i = next
	}

	return sb.String()
}
