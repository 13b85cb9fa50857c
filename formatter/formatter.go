// Package formatter renders parse failures as annotated source snippets,
// pointing a caret at the exact offending character.
package formatter

import (
	"errors"
	"fmt"
	"strings"

	"github.com/fatih/color"

	"github.com/layerkit/keymap/parser"
)

const tabWidth = 8

var (
	errorStyle  = color.New(color.FgRed, color.Bold)
	fileStyle   = color.New(color.FgCyan, color.Bold)
	lineStyle   = color.New(color.FgHiBlue, color.Bold)
	detailStyle = color.New(color.FgYellow)
)

// Format renders err against the source text it was produced from. For a
// *parser.Error the output carries the offending line and a caret at the
// failing column; any other error is rendered as a plain one-liner.
func Format(filename, source string, err error) string {
	var perr *parser.Error
	if !errors.As(err, &perr) {
		return fmt.Sprintf("%s %v\n", errorStyle.Sprint("error:"), err)
	}

	line, column := Position(source, perr.Offset)

	var b strings.Builder
	b.WriteString(fmt.Sprintf("%s %s\n", errorStyle.Sprint("error:"), perr.Kind))
	b.WriteString(fmt.Sprintf(" --> %s\n", fileStyle.Sprintf("%s:%d:%d", filename, line, column)))

	lines := strings.Split(source, "\n")
	if line-1 >= len(lines) {
		return b.String()
	}

	src := expandTabs(lines[line-1])
	b.WriteString("  |\n")
	b.WriteString(fmt.Sprintf("%s | %s\n", lineStyle.Sprintf("%d", line), src))

	b.WriteString("  | ")
	b.WriteString(strings.Repeat(" ", visualColumn(lines[line-1], column)))
	b.WriteString(errorStyle.Sprint("^"))
	if perr.Detail != "" {
		b.WriteString(" ")
		b.WriteString(detailStyle.Sprint(perr.Detail))
	}
	b.WriteString("\n")

	return b.String()
}

// Position converts an absolute byte offset into a 1-based line and
// column pair. Offsets past the end of source clamp to the last position.
func Position(source string, offset int) (line, column int) {
	if offset > len(source) {
		offset = len(source)
	}
	line = 1 + strings.Count(source[:offset], "\n")
	lineStart := strings.LastIndexByte(source[:offset], '\n') + 1
	return line, offset - lineStart + 1
}

// expandTabs replaces tab characters with spaces so caret alignment
// matches the printed line.
func expandTabs(line string) string {
	var expanded strings.Builder
	column := 0
	for _, ch := range line {
		if ch == '\t' {
			spaces := tabWidth - (column % tabWidth)
			for i := 0; i < spaces; i++ {
				expanded.WriteByte(' ')
				column++
			}
		} else {
			expanded.WriteRune(ch)
			column++
		}
	}
	return expanded.String()
}

// visualColumn maps a 1-based byte column in the raw line to the visual
// column after tab expansion.
func visualColumn(line string, column int) int {
	visual := 0
	for i, ch := range line {
		if i+1 >= column {
			break
		}
		if ch == '\t' {
			visual += tabWidth - (visual % tabWidth)
		} else {
			visual++
		}
	}
	return visual
}
