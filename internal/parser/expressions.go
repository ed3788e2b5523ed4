package parser

import (
	"strconv"

	"github.com/wye-lang/wye/internal/ast"
	"github.com/wye-lang/wye/internal/lexer"
	"github.com/wye-lang/wye/internal/types"
)

// parseIdentifierOrVariant parses a bare identifier, then folds in any
// trailing `.field` / `#method` postfix chain. A single `.field` step
// immediately followed by `with expr` is an enum variant constructor
// rather than a projection.
func (p *Parser) parseIdentifierOrVariant() ast.Expression {
	start := p.cur
	var expr ast.Expression = ast.Identifier{Name: p.cur.Literal, Sp: spanFrom(start, p.cur)}

	for {
		switch p.peek.Type {
		case lexer.DOT:
			p.nextToken() // consume '.'
			if !p.expectPeek(lexer.IDENT) {
				return expr
			}
			field := p.cur.Literal
			if ident, ok := expr.(ast.Identifier); ok && p.peekTokenIs(lexer.WITH) {
				p.nextToken() // consume 'with'
				p.nextToken() // move to payload expression
				payload := p.parsePrimary()
				expr = ast.EnumVariant{EnumName: ident.Name, Variant: field, Field: payload, Sp: spanFrom(start, p.cur)}
				continue
			}
			expr = ast.Projection{Entity: expr, Field: field, Sp: spanFrom(start, p.cur)}
		case lexer.HASH:
			p.nextToken() // consume '#'
			if !p.expectPeek(lexer.IDENT) {
				return expr
			}
			expr = ast.MethodAccess{Entity: expr, Method: p.cur.Literal, Sp: spanFrom(start, p.cur)}
		default:
			return expr
		}
	}
}

func (p *Parser) parseInt() ast.Expression {
	start := p.cur
	v, err := strconv.ParseInt(p.cur.Literal, 10, 64)
	if err != nil {
		p.addError(ErrExpectedExpression, "invalid integer literal "+p.cur.Literal)
		return ast.ErrorExpr{Message: "invalid integer literal", Sp: spanFrom(start, start)}
	}
	return ast.IntLiteral{Value: v, Sp: spanFrom(start, start)}
}

func (p *Parser) parseFloat() ast.Expression {
	start := p.cur
	v, err := strconv.ParseFloat(p.cur.Literal, 64)
	if err != nil {
		p.addError(ErrExpectedExpression, "invalid float literal "+p.cur.Literal)
		return ast.ErrorExpr{Message: "invalid float literal", Sp: spanFrom(start, start)}
	}
	return ast.FloatLiteral{Value: v, Sp: spanFrom(start, start)}
}

func (p *Parser) parseString() ast.Expression {
	start := p.cur
	return ast.StringLiteral{Value: p.cur.Literal, Sp: spanFrom(start, start)}
}

// parseUnaryMinus only applies directly to a following numeric literal, per
// the grammar's restriction that unary minus is not a general prefix
// operator (there is no unary minus on arbitrary expressions).
func (p *Parser) parseUnaryMinus() ast.Expression {
	start := p.cur
	switch p.peek.Type {
	case lexer.INT:
		p.nextToken()
		v, _ := strconv.ParseInt(p.cur.Literal, 10, 64)
		return ast.IntLiteral{Value: -v, Sp: spanFrom(start, p.cur)}
	case lexer.FLOAT:
		p.nextToken()
		v, _ := strconv.ParseFloat(p.cur.Literal, 64)
		return ast.FloatLiteral{Value: -v, Sp: spanFrom(start, p.cur)}
	default:
		p.addError(ErrExpectedExpression, "unary minus must be followed directly by a numeric literal")
		return ast.ErrorExpr{Message: "unary minus must be followed by a numeric literal", Sp: spanFrom(start, start)}
	}
}

// parseGroupedOrTuple parses `(expr)` (a parenthesized expression, or a
// bare operator used as a value such as `(+)`) and `(e1, e2, ...)` (a
// tuple, which requires at least one comma to distinguish it from
// grouping).
func (p *Parser) parseGroupedOrTuple() ast.Expression {
	start := p.cur

	if bareOp, ok := p.tryParseBareOperator(); ok {
		return bareOp
	}

	p.nextToken() // move past '('
	if p.curTokenIs(lexer.RPAREN) {
		return ast.TupleExpr{Sp: spanFrom(start, p.cur)}
	}

	first := p.parseExpression(LOWEST)
	if !p.peekTokenIs(lexer.COMMA) {
		p.expectPeek(lexer.RPAREN)
		return first
	}

	elems := []ast.Expression{first}
	for p.peekTokenIs(lexer.COMMA) {
		p.nextToken() // consume ','
		if p.peekTokenIs(lexer.RPAREN) {
			break // trailing comma
		}
		p.nextToken()
		elems = append(elems, p.parseExpression(LOWEST))
	}
	p.expectPeek(lexer.RPAREN)
	return ast.TupleExpr{Elems: elems, Sp: spanFrom(start, p.cur)}
}

// tryParseBareOperator recognizes `(op)`, a binary operator used
// unapplied as a first-class function value.
func (p *Parser) tryParseBareOperator() (ast.Expression, bool) {
	op, ok := binaryOpFor(p.peek.Type)
	if !ok {
		return nil, false
	}
	opTok := p.peek
	if p.l.Peek(0).Type != lexer.RPAREN {
		return nil, false
	}
	start := p.cur
	p.nextToken() // move to operator
	p.nextToken() // move to ')'
	return ast.BinaryOpExpr{Op: op, Sp: spanFrom(start, opTok)}, true
}

func (p *Parser) parseList() ast.Expression {
	start := p.cur
	p.nextToken() // move past '['
	if p.curTokenIs(lexer.RBRACKET) {
		return ast.ListExpr{Sp: spanFrom(start, p.cur)}
	}

	var elems []ast.Expression
	elems = append(elems, p.parseExpression(LOWEST))
	for p.peekTokenIs(lexer.COMMA) {
		p.nextToken() // consume ','
		if p.peekTokenIs(lexer.RBRACKET) {
			p.addError(ErrUnexpectedToken, "list literals do not allow a trailing comma")
			break
		}
		p.nextToken()
		elems = append(elems, p.parseExpression(LOWEST))
	}
	p.expectPeek(lexer.RBRACKET)
	return ast.ListExpr{Elems: elems, Sp: spanFrom(start, p.cur)}
}

// parseRecord parses `{ name: expr, ... }` (struct/Permissive) or
// `{| name: expr, ... |}` (nominal/Exact).
func (p *Parser) parseRecord() ast.Expression {
	start := p.cur
	nominal := p.peekTokenIs(lexer.PIPE)
	p.nextToken() // move past '{'
	if nominal {
		p.nextToken() // move past '|'
	}

	var fields []ast.RecordField
	seen := map[string]bool{}
	empty := (nominal && p.curTokenIs(lexer.PIPE)) || (!nominal && p.curTokenIs(lexer.RBRACE))
	if !empty {
		fields = append(fields, p.parseRecordField(seen))
		for p.peekTokenIs(lexer.COMMA) {
			p.nextToken()
			p.nextToken()
			fields = append(fields, p.parseRecordField(seen))
		}
		p.nextToken() // move onto the closing token
	}

	if nominal {
		if !p.curTokenIs(lexer.PIPE) {
			p.addError(ErrUnexpectedToken, "expected | to close a nominal record literal")
		} else {
			p.expectPeek(lexer.RBRACE)
		}
		return ast.NominalRecordExpr{Fields: fields, Sp: spanFrom(start, p.cur)}
	}
	if !p.curTokenIs(lexer.RBRACE) {
		p.addError(ErrUnexpectedToken, "expected } to close a record literal")
	}
	return ast.StructRecordExpr{Fields: fields, Sp: spanFrom(start, p.cur)}
}

func (p *Parser) parseRecordField(seen map[string]bool) ast.RecordField {
	if !p.curTokenIs(lexer.IDENT) {
		p.addError(ErrUnexpectedToken, "expected a field name in record literal")
		return ast.RecordField{}
	}
	name := p.cur.Literal
	if seen[name] {
		p.addError(ErrUnexpectedToken, "duplicate field name "+name+" in record literal")
	}
	seen[name] = true
	p.expectPeek(lexer.COLON)
	p.nextToken()
	expr := p.parseExpression(LOWEST)
	return ast.RecordField{Name: name, Expr: expr}
}

func (p *Parser) parseNothing() ast.Expression {
	return ast.Nothing{Sp: spanFrom(p.cur, p.cur)}
}

func (p *Parser) parseNone() ast.Expression {
	start := p.cur
	return ast.EnumVariant{EnumName: "Option", Variant: "None", Sp: spanFrom(start, start)}
}

func (p *Parser) parsePrintOrFail() ast.Expression {
	start := p.cur
	if p.curTokenIs(lexer.PRINT) {
		return ast.Print{Sp: spanFrom(start, start)}
	}
	return ast.Fail{Sp: spanFrom(start, start)}
}

func binaryOpFor(t lexer.TokenType) (types.BinaryOp, bool) {
	switch t {
	case lexer.PLUS:
		return types.Add, true
	case lexer.MINUS:
		return types.Subtract, true
	case lexer.STAR:
		return types.Multiply, true
	case lexer.SLASH:
		return types.Divide, true
	case lexer.SLASHSLASH:
		return types.FloorDivide, true
	case lexer.LT:
		return types.Lt, true
	case lexer.GT:
		return types.Gt, true
	case lexer.LEQ:
		return types.Leq, true
	case lexer.GEQ:
		return types.Geq, true
	case lexer.EQ:
		return types.Eq, true
	case lexer.NEQ:
		return types.Neq, true
	case lexer.CONS:
		return types.Cons, true
	default:
		return 0, false
	}
}

func (p *Parser) parseBinaryOp(left ast.Expression) ast.Expression {
	opTok := p.cur
	op, _ := binaryOpFor(opTok.Type)
	precedence := getPrecedence(opTok.Type)
	p.nextToken()
	right := p.parseExpression(precedence)
	return ast.BinaryOpExpr{Op: op, Left: left, Right: right, Sp: spanFrom(opTok, p.cur)}
}

// parseConsRightAssoc handles `::`, the one right-associative operator:
// it recurses at one precedence looser than its own so a chain
// `a :: b :: c` nests as `a :: (b :: c)`.
func (p *Parser) parseConsRightAssoc(left ast.Expression) ast.Expression {
	opTok := p.cur
	p.nextToken()
	right := p.parseExpression(CONS - 1)
	return ast.BinaryOpExpr{Op: types.Cons, Left: left, Right: right, Sp: spanFrom(opTok, p.cur)}
}

func (p *Parser) parseLambda() ast.Expression {
	start := p.cur
	var args []string
	for p.peekTokenIs(lexer.IDENT) {
		p.nextToken()
		args = append(args, p.cur.Literal)
	}
	if len(args) == 0 {
		p.addError(ErrUnexpectedToken, "expected at least one parameter after \\")
	}
	if !p.expectPeek(lexer.ARROW) {
		return ast.ErrorExpr{Message: "expected -> after lambda parameters", Sp: spanFrom(start, p.cur)}
	}
	p.nextToken()
	body := p.parseExpression(LOWEST)
	return ast.Lambda{Args: args, Expr: body, Sp: spanFrom(start, p.cur)}
}

func (p *Parser) parseLet() ast.Expression {
	start := p.cur
	if p.peekTokenIs(lexer.REC) {
		p.nextToken() // `rec` is accepted but carries no separate AST marker: every let binding may refer to itself.
	}
	binding := p.parseVarWithValue()
	if p.peekTokenIs(lexer.IN) {
		p.nextToken() // consume 'in'
		p.nextToken()
		body := p.parseExpression(LOWEST)
		return ast.LetIn{Binding: binding, Body: body, Sp: spanFrom(start, p.cur)}
	}
	return ast.Let{Binding: binding, Sp: spanFrom(start, p.cur)}
}

// parseVarWithValue parses `name arg1 arg2 (arg3: Type) : OutType = expr`,
// the common shape shared by let bindings, struct method implementations,
// and interface default methods. PRE: cur is the LET/name-starting token
// (caller has already advanced past any leading keyword).
func (p *Parser) parseVarWithValue() ast.VarWithValue {
	if !p.expectPeek(lexer.IDENT) {
		return ast.VarWithValue{}
	}
	return p.parseVarWithValueFrom(p.cur)
}

// parseParam parses one argument of a VarWithValue: a bare name (its type
// left as a Hole for the checker to infer) or a `(name: Type)` annotation.
func (p *Parser) parseParam() ast.Param {
	if p.peekTokenIs(lexer.LPAREN) {
		p.nextToken() // move to '('
		p.expectPeek(lexer.IDENT)
		name := p.cur.Literal
		p.expectPeek(lexer.COLON)
		p.nextToken()
		t := p.parseType()
		p.expectPeek(lexer.RPAREN)
		return ast.Param{Name: name, Type: t}
	}
	p.nextToken()
	return ast.Param{Name: p.cur.Literal, Type: types.Hole{}}
}

func (p *Parser) parseSet() ast.Expression {
	start := p.cur
	attr := p.parseAttrSet()
	if p.peekTokenIs(lexer.IN) {
		p.nextToken()
		p.nextToken()
		body := p.parseExpression(LOWEST)
		return ast.SetIn{Attr: attr, Body: body, Sp: spanFrom(start, p.cur)}
	}
	return ast.SetExpr{Attr: attr, Sp: spanFrom(start, p.cur)}
}

// parseAttrSet parses `entity.attribute = expr`. PRE: cur is SET.
func (p *Parser) parseAttrSet() ast.AttrSet {
	start := p.cur
	p.expectPeek(lexer.IDENT)
	entityTok := p.cur
	p.expectPeek(lexer.DOT)
	p.expectPeek(lexer.IDENT)
	attrTok := p.cur
	p.expectPeek(lexer.ASSIGN)
	p.nextToken()
	expr := p.parseExpression(LOWEST)
	return ast.AttrSet{
		Entity:      entityTok.Literal,
		EntitySp:    spanFrom(entityTok, entityTok),
		Attribute:   attrTok.Literal,
		AttributeSp: spanFrom(attrTok, attrTok),
		NewExpr:     expr,
		Sp:          spanFrom(start, p.cur),
	}
}

func (p *Parser) parseMatch() ast.Expression {
	start := p.cur
	p.nextToken() // move to matchand

	p.noRecordLiteral = true
	matchand := p.parseExpression(LOWEST)
	p.noRecordLiteral = false

	if !p.expectPeek(lexer.LBRACE) {
		return ast.ErrorExpr{Message: "expected { to start match arms", Sp: spanFrom(start, p.cur)}
	}
	p.nextToken() // move to first pattern

	var arms []ast.MatchArm
	for !p.curTokenIs(lexer.RBRACE) && !p.curTokenIs(lexer.EOF) {
		arms = append(arms, p.parseMatchArm())
		if p.peekTokenIs(lexer.COMMA) {
			p.nextToken()
			p.nextToken()
		} else {
			p.nextToken()
			break
		}
	}
	if !p.curTokenIs(lexer.RBRACE) {
		p.addError(ErrUnexpectedToken, "expected } to close match arms")
	}
	return ast.MatchConstruct{Matchand: matchand, Arms: arms, Sp: spanFrom(start, p.cur)}
}

func (p *Parser) parseMatchArm() ast.MatchArm {
	pattern := p.parsePattern()
	p.expectPeek(lexer.FATARROW)
	p.nextToken()
	expr := p.parseExpression(LOWEST)
	return ast.MatchArm{Pattern: pattern, Expr: expr}
}

func (p *Parser) parseIf() ast.Expression {
	start := p.cur
	p.nextToken() // move to condition

	p.noRecordLiteral = true
	cond := p.parseExpression(LOWEST)
	p.noRecordLiteral = false

	if !p.expectPeek(lexer.THEN) {
		return ast.ErrorExpr{Message: "expected then after if condition", Sp: spanFrom(start, p.cur)}
	}
	p.nextToken()
	thenBranch := p.parseExpression(LOWEST)
	if !p.expectPeek(lexer.ELSE) {
		return ast.ErrorExpr{Message: "expected else after if branch", Sp: spanFrom(start, p.cur)}
	}
	p.nextToken()
	elseBranch := p.parseExpression(LOWEST)
	return ast.Conditional{Cond: cond, Then: thenBranch, Else: elseBranch, Sp: spanFrom(start, p.cur)}
}
