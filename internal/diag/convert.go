package diag

import (
	"sort"

	"github.com/wye-lang/wye/internal/lexer"
	"github.com/wye-lang/wye/internal/parser"
	"github.com/wye-lang/wye/internal/span"
)

// FromLexerErrors converts the lexer's accumulated errors into Diagnostics.
func FromLexerErrors(errs []lexer.LexerError, source, file string) []Diagnostic {
	out := make([]Diagnostic, 0, len(errs))
	for _, e := range errs {
		sp := span.Some(span.New(e.Pos.Offset, e.Pos.Offset+1))
		out = append(out, New(e.Message, sp, source, file))
	}
	return out
}

// FromParserErrors converts the parser's recovered errors into Diagnostics.
func FromParserErrors(errs []*parser.ParserError, source, file string) []Diagnostic {
	out := make([]Diagnostic, 0, len(errs))
	for _, e := range errs {
		end := e.Pos.Offset + e.Length
		if e.Length == 0 {
			end = e.Pos.Offset + 1
		}
		sp := span.Some(span.New(e.Pos.Offset, end))
		out = append(out, New(e.Message, sp, source, file))
	}
	return out
}

// FromTypeErrors converts the checker's span -> message map into
// Diagnostics, ordered by span start so output is deterministic despite the
// map's unordered iteration.
func FromTypeErrors(errs map[span.Span]string, source, file string) []Diagnostic {
	spans := make([]span.Span, 0, len(errs))
	for sp := range errs {
		spans = append(spans, sp)
	}
	sort.Slice(spans, func(i, j int) bool {
		if spans[i].Start != spans[j].Start {
			return spans[i].Start < spans[j].Start
		}
		return spans[i].End < spans[j].End
	})
	out := make([]Diagnostic, 0, len(spans))
	for _, sp := range spans {
		out = append(out, New(errs[sp], span.Some(sp), source, file))
	}
	return out
}
