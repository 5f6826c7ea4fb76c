package parser

import (
	"strconv"

	"github.com/raymyers/minicc/pkg/ast"
	"github.com/raymyers/minicc/pkg/ctypes"
	"github.com/raymyers/minicc/pkg/lexer"
)

// baseTypes maps the type keywords to their types
var baseTypes = map[string]ctypes.Type{
	"int":    ctypes.Int(),
	"char":   ctypes.Char(),
	"string": ctypes.String(),
}

func isDeclStart(tok lexer.Token) bool {
	if tok.Type != lexer.TokenIdent {
		return false
	}
	_, ok := baseTypes[tok.Literal]
	return ok || tok.Literal == "static"
}

// parseDecl parses
//
//	[static] type '*'* ident ';'
//	[static] type '*'* ident '=' expr ';'
//	[static] type '*'* ident '[' int ']' ( ';' | '=' '{' expr, ... '}' ';' )
func (p *Parser) parseDecl() (*ast.Decl, error) {
	tok := p.src.Next()
	fileLocal := false
	if tok.IsIdent("static") {
		fileLocal = true
		tok = p.src.Next()
	}

	typ, ok := baseTypes[tok.Literal]
	if !ok || tok.Type != lexer.TokenIdent {
		p.src.Unread(tok)
		return nil, p.errorAt(tok, ErrMalformedDeclaration, "type expected, got %s", tok)
	}
	for p.src.Peek().IsPunct('*') {
		p.src.Next()
		typ = ctypes.Pointer(typ)
	}

	name := p.src.Next()
	if name.Type != lexer.TokenIdent || lexer.IsKeyword(name.Literal) {
		p.src.Unread(name)
		return nil, p.errorAt(name, ErrIdentifierExpected, "expected identifier, got %s", name)
	}

	tok = p.src.Next()
	switch {
	case tok.IsPunct('='):
		init, err := p.ParseExpr()
		if err != nil {
			return nil, err
		}
		if !ctypes.Assignable(typ, init.Type()) {
			return nil, p.errorAt(tok, ErrIncompatibleOperands, "cannot initialize %s %s with %s", typ, name.Literal, init.Type())
		}
		v := p.declare(typ, name.Literal, fileLocal)
		if err := p.expect(';', ErrUnexpectedToken); err != nil {
			return nil, err
		}
		return &ast.Decl{Var: v, Init: init}, nil
	case tok.IsPunct(';'):
		return &ast.Decl{Var: p.declare(typ, name.Literal, fileLocal)}, nil
	case tok.IsPunct('['):
		return p.parseArrayDecl(typ, name, fileLocal)
	}

	p.src.Unread(tok)
	if tok.Type == lexer.TokenEOF {
		return nil, p.errorAt(tok, ErrEndOfInput, "unterminated declaration of %s", name.Literal)
	}
	return nil, p.errorAt(tok, ErrMalformedDeclaration, "unexpected %s after %s", tok, name.Literal)
}

// parseArrayDecl parses the rest of an array declaration after '['. The
// variable is registered before its initializer is read. Missing trailing
// elements are filled with zero.
func (p *Parser) parseArrayDecl(elem ctypes.Type, name lexer.Token, fileLocal bool) (*ast.Decl, error) {
	lenTok := p.src.Next()
	if lenTok.Type != lexer.TokenInt {
		p.src.Unread(lenTok)
		return nil, p.errorAt(lenTok, ErrMalformedDeclaration, "array length expected, got %s", lenTok)
	}
	n, err := strconv.ParseInt(lenTok.Literal, 10, 32)
	if err != nil {
		return nil, p.errorAt(lenTok, ErrMalformedDeclaration, "array length %s out of range", lenTok.Literal)
	}

	typ := ctypes.Array(elem, n)
	v := p.declare(typ, name.Literal, fileLocal)

	if err := p.expect(']', ErrMalformedDeclaration); err != nil {
		return nil, err
	}
	tok := p.src.Next()
	if tok.IsPunct(';') {
		return &ast.Decl{Var: v}, nil
	}
	if !tok.IsPunct('=') {
		p.src.Unread(tok)
		return nil, p.errorAt(tok, ErrMalformedDeclaration, "expected '=' or ';' after %s[%d], got %s", name.Literal, n, tok)
	}
	if err := p.expect('{', ErrMalformedDeclaration); err != nil {
		return nil, err
	}
	p.inInit = true

	elems := []ast.Expr{}
	for !p.src.Peek().IsPunct('}') {
		at := p.src.Peek()
		if int64(len(elems)) == n {
			return nil, p.errorAt(at, ErrMalformedDeclaration, "too many initializers for %s", typ)
		}
		e, err := p.ParseExpr()
		if err != nil {
			return nil, err
		}
		if !ctypes.Assignable(elem, e.Type()) {
			return nil, p.errorAt(at, ErrIncompatibleOperands, "cannot initialize %s element with %s", elem, e.Type())
		}
		elems = append(elems, e)

		sep := p.src.Next()
		if sep.IsPunct('}') {
			p.src.Unread(sep)
			break
		}
		if !sep.IsPunct(',') {
			p.src.Unread(sep)
			if sep.Type == lexer.TokenEOF {
				return nil, p.errorAt(sep, ErrEndOfInput, "expected '}'")
			}
			return nil, p.errorAt(sep, ErrUnexpectedToken, "expected ',' or '}', got %s", sep)
		}
	}
	p.src.Next() // consume '}'
	p.inInit = false

	for int64(len(elems)) < n {
		elems = append(elems, ast.Zero(elem))
	}
	if err := p.expect(';', ErrUnexpectedToken); err != nil {
		return nil, err
	}
	return &ast.Decl{Var: v, Init: ast.NewArrayInit(typ, elems)}, nil
}

// declare registers a variable. Declarations at top level and static
// declarations are globals; everything else is a local.
func (p *Parser) declare(typ ctypes.Type, name string, fileLocal bool) ast.Var {
	if fileLocal || p.depth == 0 {
		return p.syms.DeclareGlobal(typ, name, fileLocal)
	}
	return p.syms.DeclareLocal(typ, name)
}
