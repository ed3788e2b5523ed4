// Package span defines byte-offset source ranges shared by the lexer,
// parser, AST, and type checker.
package span

// Span is a half-open byte-offset range [Start, End) over the original
// source text.
type Span struct {
	Start int
	End   int
}

// New builds a Span covering [start, end).
func New(start, end int) Span {
	return Span{Start: start, End: end}
}

// Cover returns the smallest span enclosing both a and b.
func (a Span) Cover(b Span) Span {
	s := a
	if b.Start < s.Start {
		s.Start = b.Start
	}
	if b.End > s.End {
		s.End = b.End
	}
	return s
}

// Option is a Span that may be absent ("unspanned"). Production parsing
// always fills Option in; test-constructed AST nodes may leave it at its
// zero value, which reports Valid() == false.
type Option struct {
	span  Span
	valid bool
}

// None is the sentinel "unspanned" value.
var None = Option{}

// Some wraps a concrete Span.
func Some(s Span) Option {
	return Option{span: s, valid: true}
}

// Valid reports whether the option carries a real span.
func (o Option) Valid() bool {
	return o.valid
}

// Get returns the underlying span and whether it is valid.
func (o Option) Get() (Span, bool) {
	return o.span, o.valid
}

// MustGet returns the underlying span, panicking if the option is
// unspanned.
func (o Option) MustGet() Span {
	if !o.valid {
		panic("span: MustGet called on an unspanned Option")
	}
	return o.span
}

// Widest returns the minimum-start/maximum-end span enclosing every element
// of spans. The second return is false for an empty slice.
func Widest(spans []Span) (Span, bool) {
	if len(spans) == 0 {
		return Span{}, false
	}
	result := spans[0]
	for _, s := range spans[1:] {
		result = result.Cover(s)
	}
	return result, true
}

// WidestOption is Widest over a slice of Options, skipping unspanned
// entries. Returns span.None if no entry is valid.
func WidestOption(opts []Option) Option {
	var spans []Span
	for _, o := range opts {
		if s, ok := o.Get(); ok {
			spans = append(spans, s)
		}
	}
	w, ok := Widest(spans)
	if !ok {
		return None
	}
	return Some(w)
}

// Overlapping reports whether any two spans in order overlap or touch —
// i.e. whether spans[i+1].Start <= spans[i].End for some adjacent pair.
// This is the engine behind the parser's token-adjacency rule (spec.md
// §4.1): two tokens separated by no whitespace produce spans that are not
// strictly increasing.
func Overlapping(spans []Span) bool {
	for i := 0; i+1 < len(spans); i++ {
		if spans[i+1].Start <= spans[i].End {
			return true
		}
	}
	return false
}
