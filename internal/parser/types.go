package parser

import (
	"github.com/wye-lang/wye/internal/lexer"
	"github.com/wye-lang/wye/internal/types"
)

// parseType parses a type annotation. PRE: cur is the first token of the
// type. POST: cur is the last token of the type.
//
// Grammar, loosest to tightest: function arrow (right-associative) over
// a juxtaposed type application over a type atom (int/float/string, a
// hole `_`, a polytype var `'a`, a declared type name with optional type
// arguments, a list `[T]`, a tuple `(T, T, ...)`, or a record
// `{ name: T, ... }` / `{| name: T, ... |}`).
func (p *Parser) parseType() types.Type {
	left := p.parseTypeApp()
	if p.peekTokenIs(lexer.ARROW) {
		p.nextToken() // consume '->'
		p.nextToken()
		right := p.parseType()
		return types.Function{Arg: left, Ret: right}
	}
	return left
}

// parseTypeApp parses a type atom followed by juxtaposed type arguments,
// e.g. `List 'a` or `Pair int string`.
func (p *Parser) parseTypeApp() types.Type {
	head := p.parseTypeAtom()
	name, ok := head.(types.TypeID)
	if !ok {
		return head
	}
	for typeArgFollows(p.peek.Type) {
		p.nextToken()
		name.Args = append(name.Args, p.parseTypeAtom())
	}
	return name
}

func typeArgFollows(t lexer.TokenType) bool {
	switch t {
	case lexer.IDENT, lexer.QUOTE, lexer.KwInt, lexer.KwFloat, lexer.KwString,
		lexer.LBRACKET, lexer.LPAREN, lexer.LBRACE:
		return true
	default:
		return false
	}
}

func (p *Parser) parseTypeAtom() types.Type {
	switch p.cur.Type {
	case lexer.KwInt:
		return types.Int{}
	case lexer.KwFloat:
		return types.Float{}
	case lexer.KwString:
		return types.String{}
	case lexer.IDENT:
		if p.cur.Literal == "_" {
			return types.Hole{}
		}
		return types.TypeID{Name: p.cur.Literal}
	case lexer.QUOTE:
		return p.parsePolytypeRef()
	case lexer.LBRACKET:
		return p.parseListType()
	case lexer.LPAREN:
		return p.parseTupleOrGroupedType()
	case lexer.LBRACE:
		return p.parseRecordType()
	default:
		p.addError(ErrExpectedType, "expected a type, got "+p.cur.Type.String())
		return types.Hole{}
	}
}

// parsePolytypeRef parses `'a` or `'a: Bound` in type-annotation position.
// PRE: cur is QUOTE.
func (p *Parser) parsePolytypeRef() types.Type {
	if !p.expectPeek(lexer.IDENT) {
		return types.Hole{}
	}
	name := p.cur.Literal
	bound := ""
	if p.peekTokenIs(lexer.COLON) {
		p.nextToken()
		p.expectPeek(lexer.IDENT)
		bound = p.cur.Literal
	}
	return types.Poly{Name: name, Bound: bound}
}

// parseListType parses `[T]`. PRE: cur is '['.
func (p *Parser) parseListType() types.Type {
	p.nextToken() // move to element type
	elem := p.parseType()
	p.expectPeek(lexer.RBRACKET)
	return types.List{Elem: elem}
}

// parseTupleOrGroupedType parses `(T)` (grouping) or `(T, T, ...)` (a
// tuple type). PRE: cur is '('.
func (p *Parser) parseTupleOrGroupedType() types.Type {
	p.nextToken() // move past '('
	if p.curTokenIs(lexer.RPAREN) {
		return types.Tuple{}
	}
	first := p.parseType()
	if !p.peekTokenIs(lexer.COMMA) {
		p.expectPeek(lexer.RPAREN)
		return first
	}
	elems := []types.Type{first}
	for p.peekTokenIs(lexer.COMMA) {
		p.nextToken()
		if p.peekTokenIs(lexer.RPAREN) {
			break
		}
		p.nextToken()
		elems = append(elems, p.parseType())
	}
	p.expectPeek(lexer.RPAREN)
	return types.Tuple{Elems: elems}
}

// parseRecordType parses `{ name: T, ... }` (Permissive) or
// `{| name: T, ... |}` (Exact). PRE: cur is '{'.
func (p *Parser) parseRecordType() types.Type {
	nominal := p.peekTokenIs(lexer.PIPE)
	p.nextToken()
	if nominal {
		p.nextToken()
	}

	values := map[string]types.Type{}
	empty := (nominal && p.curTokenIs(lexer.PIPE)) || (!nominal && p.curTokenIs(lexer.RBRACE))
	if !empty {
		p.parseRecordTypeField(values)
		for p.peekTokenIs(lexer.COMMA) {
			p.nextToken()
			p.nextToken()
			p.parseRecordTypeField(values)
		}
		p.nextToken()
	}

	flex := types.Permissive
	if nominal {
		flex = types.Exact
		if p.curTokenIs(lexer.PIPE) {
			p.expectPeek(lexer.RBRACE)
		}
	}
	return types.Record{Structure: types.StructureFromValues(values, flex)}
}

func (p *Parser) parseRecordTypeField(values map[string]types.Type) {
	if !p.curTokenIs(lexer.IDENT) {
		p.addError(ErrExpectedType, "expected a field name in record type")
		return
	}
	name := p.cur.Literal
	p.expectPeek(lexer.COLON)
	p.nextToken()
	values[name] = p.parseType()
}
