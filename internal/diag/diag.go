// Package diag renders lexer, parser, and type-checker errors with source
// context, following the teacher's internal/errors package but adapted from
// line/column positions to Wye's byte-offset span.Span model.
package diag

import (
	"fmt"
	"strings"

	"github.com/wye-lang/wye/internal/span"
)

// Diagnostic is one reportable problem, positioned by byte-offset span
// rather than line/column so lexer, parser, and checker errors all render
// through the same mechanism.
type Diagnostic struct {
	Message string
	Span    span.Option
	Source  string
	File    string
}

// New builds a Diagnostic. Source and File are optional context used only
// for rendering; an empty File drops the "FILE:" prefix from the
// "line:col:" header, and an empty File with no span drops the header.
func New(message string, sp span.Option, source, file string) Diagnostic {
	return Diagnostic{Message: message, Span: sp, Source: source, File: file}
}

// lineCol converts a byte offset into a 1-indexed (line, column) pair
// against source, the way the teacher's lexer.Position tracks line/column
// while scanning, but computed after the fact from a plain offset.
func lineCol(source string, offset int) (line, col int) {
	line, col = 1, 1
	for i := 0; i < offset && i < len(source); i++ {
		if source[i] == '\n' {
			line++
			col = 1
		} else {
			col++
		}
	}
	return line, col
}

func sourceLine(source string, line int) string {
	lines := strings.Split(source, "\n")
	if line < 1 || line > len(lines) {
		return ""
	}
	return lines[line-1]
}

// Format renders one diagnostic: a "file:line:col" header, the offending
// source line, and a caret pointing at the span's start. If color is true,
// ANSI codes highlight the caret and message.
func (d Diagnostic) Format(color bool) string {
	var b strings.Builder

	sp, hasSpan := d.Span.Get()
	line, col := 1, 1
	if hasSpan {
		line, col = lineCol(d.Source, sp.Start)
	}

	if d.File != "" {
		fmt.Fprintf(&b, "%s:%d:%d: ", d.File, line, col)
	} else if hasSpan {
		fmt.Fprintf(&b, "%d:%d: ", line, col)
	}
	if color {
		b.WriteString("\033[1;31m") // red bold
	}
	b.WriteString(d.Message)
	if color {
		b.WriteString("\033[0m")
	}
	b.WriteString("\n")

	if hasSpan {
		if src := sourceLine(d.Source, line); src != "" {
			lineNumStr := fmt.Sprintf("%4d | ", line)
			b.WriteString(lineNumStr)
			b.WriteString(src)
			b.WriteString("\n")
			b.WriteString(strings.Repeat(" ", len(lineNumStr)+col-1))
			if color {
				b.WriteString("\033[1;31m")
			}
			b.WriteString("^")
			if color {
				b.WriteString("\033[0m")
			}
			b.WriteString("\n")
		}
	}

	return b.String()
}

// Render formats every diagnostic in order, separated by a blank line, with
// a summary count when there is more than one — mirroring the teacher's
// FormatErrors.
func Render(diags []Diagnostic, color bool) string {
	if len(diags) == 0 {
		return ""
	}
	if len(diags) == 1 {
		return diags[0].Format(color)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%d error(s):\n\n", len(diags))
	for i, d := range diags {
		fmt.Fprintf(&b, "[%d/%d] ", i+1, len(diags))
		b.WriteString(d.Format(color))
		if i < len(diags)-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}
