// Package report renders harness results as aligned markdown tables.
package report

import (
	"fmt"
	"strings"

	"strmath/internal/errtrace"
	"strmath/internal/harness"
	"strmath/pkg/textutil"
)

var header = []string{"Name", "Op", "Input", "Expected", "Actual", "Status"}

// Status labels.
const (
	StatusPass = "PASS"
	StatusFail = "FAIL"
)

var controlEscapes = strings.NewReplacer(
	"\t", `\t`,
	"\n", `\n`,
	"\r", `\r`,
	"\v", `\v`,
	"\f", `\f`,
	"|", `\|`,
)

// Escape makes value safe for a single table cell.
func Escape(value string) string {
	return controlEscapes.Replace(value)
}

// Table renders one row per result, columns padded to the widest cell by
// display width. With quote set, text cells are wrapped in single quotes so
// leading and trailing spaces stay visible.
func Table(results []harness.Result, quote bool) string {
	rows := [][]string{header}

	for _, res := range results {
		status := StatusPass
		if !res.Passed {
			status = StatusFail
		}

		rows = append(rows, []string{
			Escape(res.Name),
			res.Op,
			cell(res.Input, quote),
			cell(res.Expected, quote),
			cell(res.Actual, quote),
			status,
		})
	}

	return render(rows)
}

func cell(value string, quote bool) string {
	value = Escape(value)
	if quote {
		return "'" + value + "'"
	}

	return value
}

func render(rows [][]string) string {
	h := textutil.NewStringHelper()

	colWidths := make([]int, len(header))

	for _, row := range rows {
		for i, c := range row {
			if width := h.DisplayWidth(c); width > colWidths[i] {
				colWidths[i] = width
			}
		}
	}

	// Separator needs at least "---".
	for i := range colWidths {
		if colWidths[i] < 3 {
			colWidths[i] = 3
		}
	}

	var sb strings.Builder

	writeRow := func(cells []string) {
		sb.WriteString("|")

		for i, c := range cells {
			sb.WriteString(" ")
			sb.WriteString(h.PadRight(c, colWidths[i]))
			sb.WriteString(" |")
		}

		sb.WriteString("\n")
	}

	writeRow(rows[0])

	sep := make([]string, len(colWidths))
	for i, w := range colWidths {
		sep[i] = strings.Repeat("-", w)
	}

	writeRow(sep)

	for _, row := range rows[1:] {
		writeRow(row)
	}

	return sb.String()
}

// Summary returns a one-line "suite: passed/total passed" status.
func Summary(s *harness.Summary) string {
	return fmt.Sprintf("%s: %d/%d passed", s.Suite, s.Passed, s.Total())
}

// Failures renders the error trace of every failed result, innermost cause
// first, separated by blank lines.
func Failures(results []harness.Result) string {
	var blocks []string

	for _, res := range results {
		if res.Passed || res.Err == nil {
			continue
		}

		blocks = append(blocks, fmt.Sprintf("--- %s\n%s", res.Name, errtrace.String(res.Err)))
	}

	return strings.Join(blocks, "\n\n")
}
