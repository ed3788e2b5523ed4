package parser

import (
	"github.com/wye-lang/wye/internal/ast"
	"github.com/wye-lang/wye/internal/lexer"
	"github.com/wye-lang/wye/internal/span"
	"github.com/wye-lang/wye/internal/types"
)

// parsePolytypeDecls parses zero or more comma-separated `'a` or
// `'a: Bound` type-variable introductions, as seen after a declared
// type's name.
func (p *Parser) parsePolytypeDecls() []ast.PolytypeDecl {
	var vars []ast.PolytypeDecl
	for p.peekTokenIs(lexer.QUOTE) {
		p.nextToken() // move to QUOTE
		start := p.cur
		p.expectPeek(lexer.IDENT)
		name := p.cur.Literal
		bound := ""
		if p.peekTokenIs(lexer.COLON) {
			p.nextToken()
			p.expectPeek(lexer.IDENT)
			bound = p.cur.Literal
		}
		vars = append(vars, ast.PolytypeDecl{Name: name, Bound: bound, Sp: spanFrom(start, p.cur)})
		if p.peekTokenIs(lexer.COMMA) && p.l.Peek(0).Type == lexer.QUOTE {
			p.nextToken() // consume the comma; loop condition picks up the next QUOTE
		}
	}
	return vars
}

// parseEnumDecl parses `enum Name 'a, ... = Variant (with Type)? (| Variant ...)?`.
// PRE: cur is ENUM.
func (p *Parser) parseEnumDecl() *ast.EnumDecl {
	start := p.cur
	if !p.expectPeek(lexer.IDENT) {
		return &ast.EnumDecl{Sp: spanFrom(start, p.cur)}
	}
	nameTok := p.cur
	polytypeVars := p.parsePolytypeDecls()

	if !p.expectPeek(lexer.ASSIGN) {
		return &ast.EnumDecl{Name: nameTok.Literal, NameSp: spanFrom(nameTok, nameTok), PolytypeVars: polytypeVars, Sp: spanFrom(start, p.cur)}
	}

	var variants []ast.EnumVariantDecl
	for {
		if !p.expectPeek(lexer.IDENT) {
			break
		}
		variant := ast.EnumVariantDecl{Name: p.cur.Literal}
		if p.peekTokenIs(lexer.WITH) {
			p.nextToken()
			p.nextToken()
			variant.Field = p.parseType()
		}
		variants = append(variants, variant)
		if !p.peekTokenIs(lexer.PIPE) {
			break
		}
		p.nextToken() // consume '|'
	}

	return &ast.EnumDecl{
		Name:         nameTok.Literal,
		NameSp:       spanFrom(nameTok, nameTok),
		PolytypeVars: polytypeVars,
		Variants:     variants,
		Sp:           spanFrom(start, p.cur),
	}
}

// parseStructDecl parses `struct Name 'a, ... { name: Type, ... }`. PRE:
// cur is STRUCT.
func (p *Parser) parseStructDecl() *ast.StructDecl {
	start := p.cur
	if !p.expectPeek(lexer.IDENT) {
		return &ast.StructDecl{Sp: spanFrom(start, p.cur)}
	}
	nameTok := p.cur
	polytypeVars := p.parsePolytypeDecls()

	if !p.expectPeek(lexer.LBRACE) {
		return &ast.StructDecl{Name: nameTok.Literal, NameSp: spanFrom(nameTok, nameTok), PolytypeVars: polytypeVars, Sp: spanFrom(start, p.cur)}
	}

	var members []ast.StructMember
	if !p.peekTokenIs(lexer.RBRACE) {
		p.nextToken()
		members = append(members, p.parseStructMember())
		for p.peekTokenIs(lexer.COMMA) {
			p.nextToken()
			p.nextToken()
			members = append(members, p.parseStructMember())
		}
	}
	p.expectPeek(lexer.RBRACE)

	return &ast.StructDecl{
		Name:         nameTok.Literal,
		NameSp:       spanFrom(nameTok, nameTok),
		PolytypeVars: polytypeVars,
		Members:      members,
		Sp:           spanFrom(start, p.cur),
	}
}

func (p *Parser) parseStructMember() ast.StructMember {
	if !p.curTokenIs(lexer.IDENT) {
		p.addError(ErrUnexpectedToken, "expected a member name in struct declaration")
		return ast.StructMember{}
	}
	name := p.cur.Literal
	p.expectPeek(lexer.COLON)
	p.nextToken()
	return ast.StructMember{Name: name, Type: p.parseType()}
}

// parseInterfaceDecl parses `interface Name 'a requires R1, R2 { ... }`.
// Body entries are either a plain signature `name: Type` (classified as a
// method requirement when Type is a function, a value requirement
// otherwise) or a default implementation `name args = expr`. PRE: cur is
// INTERFACE.
func (p *Parser) parseInterfaceDecl() *ast.InterfaceDecl {
	start := p.cur
	if !p.expectPeek(lexer.IDENT) {
		return &ast.InterfaceDecl{Sp: spanFrom(start, p.cur)}
	}
	nameTok := p.cur
	polytypeVars := p.parsePolytypeDecls()

	var requires []ast.InterfaceRequires
	if p.peekTokenIs(lexer.REQUIRES) {
		p.nextToken()
		for {
			if !p.expectPeek(lexer.IDENT) {
				break
			}
			req := ast.InterfaceRequires{Name: p.cur.Literal, PolytypeVars: p.parsePolytypeDecls()}
			requires = append(requires, req)
			if !p.peekTokenIs(lexer.COMMA) {
				break
			}
			p.nextToken()
		}
	}

	decl := &ast.InterfaceDecl{
		Name:         nameTok.Literal,
		NameSp:       spanFrom(nameTok, nameTok),
		PolytypeVars: polytypeVars,
		Requires:     requires,
	}
	if !p.expectPeek(lexer.LBRACE) {
		decl.Sp = spanFrom(start, p.cur)
		return decl
	}

	for !p.peekTokenIs(lexer.RBRACE) && !p.peekTokenIs(lexer.EOF) {
		p.nextToken()
		if !p.curTokenIs(lexer.IDENT) {
			p.addError(ErrUnexpectedToken, "expected a member name in interface declaration")
			continue
		}
		nameTok := p.cur
		if p.peekTokenIs(lexer.COLON) {
			p.nextToken()
			p.nextToken()
			t := p.parseType()
			if _, isFn := t.(types.Function); isFn {
				decl.SpecMethods = append(decl.SpecMethods, ast.InterfaceSpecMethod{Name: nameTok.Literal, Type: t})
			} else {
				decl.Values = append(decl.Values, ast.InterfaceValue{Name: nameTok.Literal, Type: t})
			}
			continue
		}
		decl.ImplMethods = append(decl.ImplMethods, p.parseVarWithValueFrom(nameTok))
	}
	p.expectPeek(lexer.RBRACE)
	decl.Sp = spanFrom(start, p.cur)
	return decl
}

// parseInterfaceImpl parses `impl Struct 'a (: Interface 'a)? { ... }`,
// where body entries are `set entity.attr = expr` or `name args = expr`
// method implementations. PRE: cur is IMPL.
func (p *Parser) parseInterfaceImpl() *ast.InterfaceImpl {
	start := p.cur
	if !p.expectPeek(lexer.IDENT) {
		return &ast.InterfaceImpl{Sp: spanFrom(start, p.cur)}
	}
	forStruct := p.cur.Literal
	forStructVars := p.parsePolytypeDecls()

	impl := &ast.InterfaceImpl{ForStruct: forStruct, ForStructVars: forStructVars}
	if p.peekTokenIs(lexer.COLON) {
		p.nextToken()
		if p.expectPeek(lexer.IDENT) {
			impl.ImplementedInterface = p.cur.Literal
			impl.InterfaceVars = p.parsePolytypeDecls()
		}
	}

	if !p.expectPeek(lexer.LBRACE) {
		impl.Sp = spanFrom(start, p.cur)
		return impl
	}

	for !p.peekTokenIs(lexer.RBRACE) && !p.peekTokenIs(lexer.EOF) {
		p.nextToken()
		switch p.cur.Type {
		case lexer.SET:
			impl.AttrSets = append(impl.AttrSets, p.parseAttrSet())
		case lexer.IDENT:
			impl.MethodImpls = append(impl.MethodImpls, p.parseVarWithValueFrom(p.cur))
		default:
			p.addError(ErrUnexpectedToken, "expected set ... or a method implementation in impl block")
		}
	}
	p.expectPeek(lexer.RBRACE)
	impl.Sp = spanFrom(start, p.cur)
	return impl
}

// parseVarWithValueFrom parses the remainder of a VarWithValue whose name
// token has already been consumed as p.cur.
func (p *Parser) parseVarWithValueFrom(nameTok lexer.Token) ast.VarWithValue {
	name := nameTok.Literal

	var args []ast.Param
	argsStart := p.peek
	for p.peekTokenIs(lexer.IDENT) || p.peekTokenIs(lexer.LPAREN) {
		args = append(args, p.parseParam())
	}
	argsSp := span.None
	if len(args) > 0 {
		argsSp = spanFrom(argsStart, p.cur)
	}

	var outType types.Type
	if p.peekTokenIs(lexer.COLON) {
		p.nextToken()
		p.nextToken()
		outType = p.parseType()
	}

	if !p.expectPeek(lexer.ASSIGN) {
		return ast.VarWithValue{Name: name, NameSp: spanFrom(nameTok, nameTok), Args: args, ArgsSp: argsSp, OutType: outType}
	}
	p.nextToken()
	expr := p.parseExpression(LOWEST)
	return ast.VarWithValue{
		Name:    name,
		NameSp:  spanFrom(nameTok, nameTok),
		Args:    args,
		ArgsSp:  argsSp,
		OutType: outType,
		Expr:    expr,
		Sp:      spanFrom(nameTok, p.cur),
	}
}
