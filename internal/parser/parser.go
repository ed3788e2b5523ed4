// Package parser turns a token stream into an *ast.Program using a
// Pratt parser, following the prefix/infix registration table style of
// the lexer's own tokenHandlers dispatch.
package parser

import (
	"fmt"

	"github.com/wye-lang/wye/internal/ast"
	"github.com/wye-lang/wye/internal/lexer"
	"github.com/wye-lang/wye/internal/span"
)

// Precedence levels, loosest to tightest, for binary operators. Function
// application and projection/method access are not driven by this table:
// application is folded into parseApplication (tighter than every
// operator, looser than postfix access), and postfix access is parsed by
// parseIdentifierOrVariant after an identifier head (tighter than
// application).
const (
	_ int = iota
	LOWEST
	COMPARISON // < > <= >= == !=
	CONS       // :: (right-associative)
	ADDITIVE   // + -
	MULTIPLICATIVE
)

var precedences = map[lexer.TokenType]int{
	lexer.LT:         COMPARISON,
	lexer.GT:         COMPARISON,
	lexer.LEQ:        COMPARISON,
	lexer.GEQ:        COMPARISON,
	lexer.EQ:         COMPARISON,
	lexer.NEQ:        COMPARISON,
	lexer.CONS:       CONS,
	lexer.PLUS:       ADDITIVE,
	lexer.MINUS:      ADDITIVE,
	lexer.STAR:       MULTIPLICATIVE,
	lexer.SLASH:      MULTIPLICATIVE,
	lexer.SLASHSLASH: MULTIPLICATIVE,
}

// primaryStart is the set of token types that can open a juxtaposed
// application argument or a fresh primary expression.
var primaryStart = map[lexer.TokenType]bool{
	lexer.IDENT:     true,
	lexer.INT:       true,
	lexer.FLOAT:     true,
	lexer.STRING:    true,
	lexer.LPAREN:    true,
	lexer.LBRACKET:  true,
	lexer.LBRACE:    true,
	lexer.NOTHING:   true,
	lexer.NONE:      true,
	lexer.PRINT:     true,
	lexer.FAIL:      true,
}

type prefixParseFn func() ast.Expression
type infixParseFn func(ast.Expression) ast.Expression

// Parser is a two-token-lookahead recursive-descent/Pratt parser over a
// Lexer. Deeper lookahead, when needed to disambiguate a construct, goes
// through the lexer's own Peek rather than a separate cursor type.
type Parser struct {
	l    *lexer.Lexer
	cur  lexer.Token
	peek lexer.Token

	errors []*ParserError

	prefixParseFns map[lexer.TokenType]prefixParseFn
	infixParseFns  map[lexer.TokenType]infixParseFn

	// noRecordLiteral suppresses treating '{' as the start of a record
	// literal while parsing a match scrutinee or an if condition, so
	// `match x { ... }` parses the braces as the match body rather than
	// `x` applied to a record argument.
	noRecordLiteral bool
}

// New creates a Parser over l, primed with its first two tokens.
func New(l *lexer.Lexer) *Parser {
	p := &Parser{l: l}
	p.prefixParseFns = map[lexer.TokenType]prefixParseFn{}
	p.infixParseFns = map[lexer.TokenType]infixParseFn{}

	p.registerPrefix(lexer.IDENT, p.parseIdentifierOrVariant)
	p.registerPrefix(lexer.INT, p.parseInt)
	p.registerPrefix(lexer.FLOAT, p.parseFloat)
	p.registerPrefix(lexer.STRING, p.parseString)
	p.registerPrefix(lexer.MINUS, p.parseUnaryMinus)
	p.registerPrefix(lexer.LPAREN, p.parseGroupedOrTuple)
	p.registerPrefix(lexer.LBRACKET, p.parseList)
	p.registerPrefix(lexer.LBRACE, p.parseRecord)
	p.registerPrefix(lexer.NOTHING, p.parseNothing)
	p.registerPrefix(lexer.NONE, p.parseNone)
	p.registerPrefix(lexer.PRINT, p.parsePrintOrFail)
	p.registerPrefix(lexer.FAIL, p.parsePrintOrFail)

	for _, tt := range []lexer.TokenType{
		lexer.LT, lexer.GT, lexer.LEQ, lexer.GEQ, lexer.EQ, lexer.NEQ,
		lexer.PLUS, lexer.MINUS, lexer.STAR, lexer.SLASH, lexer.SLASHSLASH,
	} {
		p.registerInfix(tt, p.parseBinaryOp)
	}
	p.registerInfix(lexer.CONS, p.parseConsRightAssoc)

	p.nextToken()
	p.nextToken()
	return p
}

func (p *Parser) registerPrefix(t lexer.TokenType, fn prefixParseFn) { p.prefixParseFns[t] = fn }
func (p *Parser) registerInfix(t lexer.TokenType, fn infixParseFn)   { p.infixParseFns[t] = fn }

// Errors returns every recovered syntax error, in the order encountered.
func (p *Parser) Errors() []*ParserError { return p.errors }

func (p *Parser) nextToken() {
	p.cur = p.peek
	p.peek = p.l.NextToken()
}

func (p *Parser) curTokenIs(t lexer.TokenType) bool  { return p.cur.Type == t }
func (p *Parser) peekTokenIs(t lexer.TokenType) bool { return p.peek.Type == t }

// expectPeek advances and returns true if the peek token matches t,
// otherwise records an error and leaves the cursor unchanged.
func (p *Parser) expectPeek(t lexer.TokenType) bool {
	if p.peekTokenIs(t) {
		p.nextToken()
		return true
	}
	p.peekError(t)
	return false
}

func (p *Parser) peekError(t lexer.TokenType) {
	msg := fmt.Sprintf("expected next token to be %s, got %s instead", t, p.peek.Type)
	p.errors = append(p.errors, newParserError(ErrUnexpectedToken, p.peek.Pos, len(p.peek.Literal), msg))
}

func (p *Parser) addError(code ErrorCode, msg string) {
	p.errors = append(p.errors, newParserError(code, p.cur.Pos, len(p.cur.Literal), msg))
}

func getPrecedence(t lexer.TokenType) int {
	if prec, ok := precedences[t]; ok {
		return prec
	}
	return LOWEST
}

// spanFrom covers the half-open byte range from start's first byte to
// end's EndOffset.
func spanFrom(start, end lexer.Token) span.Option {
	return span.Some(span.New(start.Pos.Offset, end.EndOffset))
}

// ParseProgram consumes the entire token stream and returns the resulting
// AST root. Check Errors() afterward for recovered syntax errors.
func (p *Parser) ParseProgram() *ast.Program {
	prog := &ast.Program{}
	for !p.curTokenIs(lexer.EOF) {
		stmt := p.parseStatement()
		if stmt != nil {
			prog.Statements = append(prog.Statements, stmt)
		}
		p.nextToken()
	}
	return prog
}

func (p *Parser) parseStatement() ast.Statement {
	switch p.cur.Type {
	case lexer.ENUM:
		return p.parseEnumDecl()
	case lexer.STRUCT:
		return p.parseStructDecl()
	case lexer.INTERFACE:
		return p.parseInterfaceDecl()
	case lexer.IMPL:
		return p.parseInterfaceImpl()
	default:
		start := p.cur
		expr := p.parseExpression(LOWEST)
		if expr == nil {
			p.addError(ErrExpectedExpression, "expected an expression or declaration")
			return &ast.ErrorStatement{Message: "expected an expression or declaration", Sp: spanFrom(start, p.cur)}
		}
		return &ast.ExpressionStatement{Expr: expr, Sp: spanFrom(start, p.cur)}
	}
}

// parseExpression is the Pratt core: one "prefix" step (a let/set/match/if
// construct, or an application chain), then a precedence-climbing loop
// over registered binary operators.
func (p *Parser) parseExpression(precedence int) ast.Expression {
	left := p.parseExpressionHead()
	if left == nil {
		return nil
	}

	for !p.peekTokenIs(lexer.EOF) && precedence < getPrecedence(p.peek.Type) {
		infix, ok := p.infixParseFns[p.peek.Type]
		if !ok {
			break
		}
		p.nextToken()
		left = infix(left)
	}
	return left
}

// parseExpressionHead dispatches the constructs that are not part of the
// application/operator grammar (they consume through to their own natural
// end) before falling back to application parsing.
func (p *Parser) parseExpressionHead() ast.Expression {
	switch p.cur.Type {
	case lexer.LET:
		return p.parseLet()
	case lexer.SET:
		return p.parseSet()
	case lexer.MATCH:
		return p.parseMatch()
	case lexer.IF:
		return p.parseIf()
	case lexer.BACKSLASH:
		return p.parseLambda()
	default:
		return p.parseApplication()
	}
}

// parseApplication parses one primary expression, then extends it with
// zero or more juxtaposed argument expressions, rejecting a chain whose
// tokens touch without whitespace. Left-associative: `f a b` = `(f a) b`.
func (p *Parser) parseApplication() ast.Expression {
	fn := p.parsePrimary()
	if fn == nil {
		return nil
	}

	var args []ast.Expression
	for p.argumentFollows() {
		prevEnd := p.cur
		p.nextToken()
		if span.Overlapping([]span.Span{
			span.New(prevEnd.Pos.Offset, prevEnd.EndOffset),
			span.New(p.cur.Pos.Offset, p.cur.EndOffset),
		}) {
			p.addError(ErrUnexpectedToken, "function application requires separating whitespace between tokens")
			break
		}
		arg := p.parsePrimary()
		if arg == nil {
			break
		}
		args = append(args, arg)
	}
	if len(args) == 0 {
		return fn
	}
	return ast.CollectFuncApplication(fn, args)
}

func (p *Parser) argumentFollows() bool {
	if !primaryStart[p.peek.Type] {
		return false
	}
	if p.peek.Type == lexer.LBRACE && p.noRecordLiteral {
		return false
	}
	return true
}

// parsePrimary parses one atomic expression (literal, identifier,
// grouping, list/record literal, print/fail/nothing/none) through its
// registered prefix function. Only an identifier head is followed by a
// postfix projection (`.field`) / method-access (`#method`) chain, the
// tightest-binding constructs in the grammar; parseIdentifierOrVariant
// parses it.
func (p *Parser) parsePrimary() ast.Expression {
	prefix, ok := p.prefixParseFns[p.cur.Type]
	if !ok {
		p.addError(ErrExpectedExpression, fmt.Sprintf("unexpected token %s in expression position", p.cur.Type))
		return nil
	}
	return prefix()
}
