package parser

import (
	"strconv"

	"github.com/wye-lang/wye/internal/ast"
	"github.com/wye-lang/wye/internal/lexer"
)

// parsePattern parses one match-arm pattern, including a trailing `| pat`
// union and/or `if guard` clause. PRE: cur is the pattern's first token.
// POST: cur is the pattern's last token (guard expression, if present).
func (p *Parser) parsePattern() ast.Pattern {
	first := p.parsePatternAlternative()

	var pat ast.Pattern = first
	if p.peekTokenIs(lexer.PIPE) {
		alts := []ast.Pattern{first}
		for p.peekTokenIs(lexer.PIPE) {
			p.nextToken() // consume '|'
			p.nextToken()
			alts = append(alts, p.parsePatternAlternative())
		}
		pat = ast.UnionPattern{Alternatives: alts}
	}

	if p.peekTokenIs(lexer.IF) {
		p.nextToken() // consume 'if'
		p.nextToken()
		guard := p.parseExpression(LOWEST)
		pat = ast.GuardedPattern{Inner: pat, Guard: guard}
	}
	return pat
}

// parsePatternAlternative parses a single pattern term, the unit a `|`
// union or `if` guard attaches around.
func (p *Parser) parsePatternAlternative() ast.Pattern {
	switch p.cur.Type {
	case lexer.MINUS:
		return p.parseNegativeLiteralPattern()
	case lexer.INT:
		v, _ := strconv.ParseInt(p.cur.Literal, 10, 64)
		return ast.IntPattern{Value: v, Sp: spanFrom(p.cur, p.cur)}
	case lexer.FLOAT:
		v, _ := strconv.ParseFloat(p.cur.Literal, 64)
		return ast.FloatPattern{Value: v, Sp: spanFrom(p.cur, p.cur)}
	case lexer.STRING:
		return ast.StringPattern{Value: p.cur.Literal, Sp: spanFrom(p.cur, p.cur)}
	case lexer.IDENT:
		if p.cur.Literal == "_" {
			return ast.WildcardPattern{Sp: spanFrom(p.cur, p.cur)}
		}
		return p.parseIdentOrVariantOrConsPattern()
	case lexer.LBRACKET:
		return p.parseListOrConsOrEmptyPattern()
	case lexer.LPAREN:
		return p.parseTuplePattern()
	case lexer.CASE:
		return p.parseCasePattern()
	case lexer.BANG:
		start := p.cur
		p.nextToken()
		inner := p.parsePatternAlternative()
		return ast.ComplementPattern{Inner: inner, Sp: spanFrom(start, p.cur)}
	case lexer.NOTHING:
		return ast.WildcardPattern{Sp: spanFrom(p.cur, p.cur)}
	default:
		p.addError(ErrExpectedPattern, "unexpected token "+p.cur.Type.String()+" in pattern position")
		return ast.ErrorPattern{Message: "unexpected token in pattern position", Sp: spanFrom(p.cur, p.cur)}
	}
}

func (p *Parser) parseNegativeLiteralPattern() ast.Pattern {
	start := p.cur
	switch p.peek.Type {
	case lexer.INT:
		p.nextToken()
		v, _ := strconv.ParseInt(p.cur.Literal, 10, 64)
		return ast.IntPattern{Value: -v, Sp: spanFrom(start, p.cur)}
	case lexer.FLOAT:
		p.nextToken()
		v, _ := strconv.ParseFloat(p.cur.Literal, 64)
		return ast.FloatPattern{Value: -v, Sp: spanFrom(start, p.cur)}
	default:
		p.addError(ErrExpectedPattern, "expected a numeric literal after - in a pattern")
		return ast.ErrorPattern{Message: "expected a numeric literal after -", Sp: spanFrom(start, start)}
	}
}

// parseIdentOrVariantOrConsPattern disambiguates a bare binding name
// (`x`), a cons pattern (`head :: tail`), and an enum variant pattern
// (`TypeName.Variant` or `TypeName.Variant bind`).
func (p *Parser) parseIdentOrVariantOrConsPattern() ast.Pattern {
	start := p.cur
	name := p.cur.Literal

	if p.peekTokenIs(lexer.CONS) {
		p.nextToken() // consume '::'
		p.expectPeek(lexer.IDENT)
		return ast.ListConsPattern{Head: name, Tail: p.cur.Literal, Sp: spanFrom(start, p.cur)}
	}

	if p.peekTokenIs(lexer.DOT) {
		p.nextToken() // consume '.'
		p.expectPeek(lexer.IDENT)
		variant := p.cur.Literal
		bind := ""
		if p.peekTokenIs(lexer.IDENT) {
			p.nextToken()
			bind = p.cur.Literal
		}
		return ast.TypeVariantPattern{TypeName: name, Variant: variant, Bind: bind, Sp: spanFrom(start, p.cur)}
	}

	return ast.IdentifierPattern{Name: name, Sp: spanFrom(start, start)}
}

// parseListOrConsOrEmptyPattern parses `[]` or `[p1, p2, ...]`. PRE: cur
// is '['.
func (p *Parser) parseListOrConsOrEmptyPattern() ast.Pattern {
	start := p.cur
	p.nextToken() // move past '['
	if p.curTokenIs(lexer.RBRACKET) {
		return ast.EmptyListPattern{Sp: spanFrom(start, p.cur)}
	}
	var elems []ast.Pattern
	elems = append(elems, p.parsePattern())
	for p.peekTokenIs(lexer.COMMA) {
		p.nextToken()
		p.nextToken()
		elems = append(elems, p.parsePattern())
	}
	p.expectPeek(lexer.RBRACKET)
	return ast.ListPattern{Elems: elems, Sp: spanFrom(start, p.cur)}
}

// parseTuplePattern parses `(p1, p2, ...)`. PRE: cur is '('.
func (p *Parser) parseTuplePattern() ast.Pattern {
	start := p.cur
	p.nextToken() // move past '('
	if p.curTokenIs(lexer.RPAREN) {
		return ast.TuplePattern{Sp: spanFrom(start, p.cur)}
	}
	first := p.parsePattern()
	if !p.peekTokenIs(lexer.COMMA) {
		p.expectPeek(lexer.RPAREN)
		return first
	}
	elems := []ast.Pattern{first}
	for p.peekTokenIs(lexer.COMMA) {
		p.nextToken()
		if p.peekTokenIs(lexer.RPAREN) {
			break
		}
		p.nextToken()
		elems = append(elems, p.parsePattern())
	}
	p.expectPeek(lexer.RPAREN)
	return ast.TuplePattern{Elems: elems, Sp: spanFrom(start, p.cur)}
}

// parseCasePattern parses `case boolExpr`, used to emulate a cond/switch
// inside `match nothing { ... }`. PRE: cur is CASE.
func (p *Parser) parseCasePattern() ast.Pattern {
	start := p.cur
	p.nextToken()
	cond := p.parseExpression(LOWEST)
	return ast.CasePattern{Condition: cond, Sp: spanFrom(start, p.cur)}
}
