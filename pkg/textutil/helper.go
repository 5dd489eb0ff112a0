package textutil

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// StringHelper provides string utility functions built on the trimming
// primitives and on terminal display width.
type StringHelper struct {
	// Ellipsis is appended by TruncateString when a value is cut.
	Ellipsis string
}

// NewStringHelper creates a new string helper.
func NewStringHelper() *StringHelper {
	return &StringHelper{Ellipsis: "..."}
}

// TrimWhitespace removes leading and trailing whitespace.
func (s *StringHelper) TrimWhitespace(str string) string {
	return Trim(str)
}

// NormalizeWhitespace trims str and replaces every interior whitespace run
// with a single space.
func (s *StringHelper) NormalizeWhitespace(str string) string {
	str = Trim(str)

	var sb strings.Builder

	sb.Grow(len(str))

	inRun := false

	for i := 0; i < len(str); i++ {
		c := str[i]
		if IsSpace(c) {
			inRun = true

			continue
		}

		if inRun {
			sb.WriteByte(' ')

			inRun = false
		}

		sb.WriteByte(c)
	}

	return sb.String()
}

// DisplayWidth returns the number of terminal cells str occupies.
func (s *StringHelper) DisplayWidth(str string) int {
	return runewidth.StringWidth(str)
}

// PadRight pads str with spaces up to width display cells.
func (s *StringHelper) PadRight(str string, width int) string {
	return runewidth.FillRight(str, width)
}

// TruncateString cuts str to at most maxWidth display cells, ellipsis included.
func (s *StringHelper) TruncateString(str string, maxWidth int) string {
	if maxWidth <= 0 {
		return ""
	}

	if runewidth.StringWidth(str) <= maxWidth {
		return str
	}

	return runewidth.Truncate(str, maxWidth, s.Ellipsis)
}
