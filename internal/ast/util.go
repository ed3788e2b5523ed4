package ast

import "github.com/wye-lang/wye/internal/span"

// CollectFuncApplication folds a function expression and its argument
// expressions into a left-leaning chain of FuncApplication nodes:
// collect(f, [a, b, c]) = ((f a) b) c. It requires at least one argument.
func CollectFuncApplication(fn Expression, args []Expression) Expression {
	result := fn
	for _, arg := range args {
		sp := span.None
		if fnSpan, ok := result.Span().Get(); ok {
			if argSpan, ok2 := arg.Span().Get(); ok2 {
				sp = span.Some(fnSpan.Cover(argSpan))
			}
		}
		result = FuncApplication{Func: result, Arg: arg, Sp: sp}
	}
	return result
}

// SpansOverlap reports whether any two adjacent spans among nodes touch or
// overlap (spans[i+1].Start <= spans[i].End). The parser uses this to
// reject application chains written without separating whitespace, e.g.
// `f(x)` parsing as two tokens glued together rather than `f` applied to
// `(x)`.
func SpansOverlap(nodes []Node) bool {
	var spans []span.Span
	for _, n := range nodes {
		if s, ok := n.Span().Get(); ok {
			spans = append(spans, s)
		}
	}
	return span.Overlapping(spans)
}

// UnSpanOption returns span.None whatever span it is given: the
// unspanned sentinel used for span-independent equality. Stripping the
// spans of a whole Node is not provided; each span field is cleared
// separately.
func UnSpanOption(_ span.Option) span.Option { return span.None }
