package parser

import (
	"strconv"

	"github.com/raymyers/minicc/pkg/ast"
	"github.com/raymyers/minicc/pkg/ctypes"
	"github.com/raymyers/minicc/pkg/lexer"
	"github.com/raymyers/minicc/pkg/symtab"
)

// Binding strength of the binary operators; higher binds tighter.
const (
	precAssign = 1
	precAdd    = 2
	precMul    = 3
)

var binaryOps = map[byte]ast.BinaryOp{
	'=': ast.OpAssign,
	'+': ast.OpAdd,
	'-': ast.OpSub,
	'*': ast.OpMul,
	'/': ast.OpDiv,
}

func binaryOp(tok lexer.Token) (ast.BinaryOp, bool) {
	if tok.Type != lexer.TokenPunct {
		return 0, false
	}
	op, ok := binaryOps[tok.Punct()]
	return op, ok
}

func priority(op ast.BinaryOp) int {
	switch op {
	case ast.OpAssign:
		return precAssign
	case ast.OpAdd, ast.OpSub:
		return precAdd
	}
	return precMul
}

// ParseExpr parses a full expression. The token that ends it is left in
// the stream.
func (p *Parser) ParseExpr() (ast.Expr, error) {
	left, err := p.parsePrimary()
	if err != nil {
		return nil, err
	}
	return p.parseBinary(left, precAssign)
}

// parseBinary folds trailing binary operators of priority minPrec or more
// into left. Equal priorities associate to the left, except assignment,
// which associates to the right. An operator that binds tighter than the
// one before it is climbed first.
func (p *Parser) parseBinary(left ast.Expr, minPrec int) (ast.Expr, error) {
	for {
		tok := p.src.Next()
		op, ok := binaryOp(tok)
		if !ok || priority(op) < minPrec {
			p.src.Unread(tok)
			return left, nil
		}

		right, err := p.parsePrimary()
		if err != nil {
			return nil, err
		}
		for {
			next, ok := binaryOp(p.src.Peek())
			if !ok {
				break
			}
			if priority(next) > priority(op) {
				right, err = p.parseBinary(right, priority(op)+1)
			} else if next == ast.OpAssign && op == ast.OpAssign {
				right, err = p.parseBinary(right, precAssign)
			} else {
				break
			}
			if err != nil {
				return nil, err
			}
		}

		left, err = p.makeBinOp(tok, op, left, right)
		if err != nil {
			return nil, err
		}
	}
}

// makeBinOp type-checks and builds a binary node
func (p *Parser) makeBinOp(tok lexer.Token, op ast.BinaryOp, left, right ast.Expr) (ast.Expr, error) {
	if op == ast.OpAssign {
		if !isAssignable(left) {
			return nil, p.errorAt(tok, ErrNotAnLvalue, "cannot assign to %s", ast.Format(left))
		}
		if !ctypes.Assignable(left.Type(), right.Type()) {
			return nil, p.errorAt(tok, ErrIncompatibleOperands, "cannot assign %s to %s", right.Type(), left.Type())
		}
		return ast.NewBinOp(op, left.Type(), left, right), nil
	}

	t, err := combine(left.Type(), right.Type())
	if err != nil {
		return nil, p.errorAt(tok, ErrIncompatibleOperands, "%s %s %s", left.Type(), op, right.Type())
	}
	return ast.NewBinOp(op, t, left, right), nil
}

// parsePrimary reads one operand: a literal, a variable, a call, a
// subscript, a parenthesized expression, or & or * applied to an operand.
func (p *Parser) parsePrimary() (ast.Expr, error) {
	tok := p.src.Next()

	switch tok.Type {
	case lexer.TokenEOF:
		return nil, p.errorAt(tok, ErrEndOfInput, "expected expression")
	case lexer.TokenInt:
		v, err := strconv.ParseInt(tok.Literal, 10, 32)
		if err != nil {
			return nil, p.errorAt(tok, ErrUnexpectedToken, "integer literal %s out of range", tok.Literal)
		}
		return ast.NewIntLiteral(v), nil
	case lexer.TokenChar:
		return ast.NewCharLiteral(tok.Literal[0]), nil
	case lexer.TokenString:
		return p.syms.AddString(tok.Literal), nil
	case lexer.TokenIdent:
		return p.parseIdent(tok)
	case lexer.TokenPunct:
		switch tok.Punct() {
		case '(':
			expr, err := p.ParseExpr()
			if err != nil {
				return nil, err
			}
			if err := p.expect(')', ErrUnexpectedToken); err != nil {
				return nil, err
			}
			return expr, nil
		case '&':
			return p.parseAddress(tok)
		case '*':
			return p.parseDeref(tok)
		}
		p.src.Unread(tok)
		return nil, p.errorAt(tok, ErrUnexpectedToken, "expected expression, got %s", tok)
	}
	return nil, p.errorAt(tok, ErrUnexpectedToken, "illegal token %s", tok)
}

func (p *Parser) parseIdent(tok lexer.Token) (ast.Expr, error) {
	if lexer.IsKeyword(tok.Literal) {
		p.src.Unread(tok)
		return nil, p.errorAt(tok, ErrUnexpectedToken, "unexpected keyword %s", tok.Literal)
	}

	next := p.src.Peek()
	if next.IsPunct('(') {
		p.src.Next()
		return p.parseFuncCall(tok)
	}

	v, ok := p.syms.Lookup(tok.Literal)
	if !ok {
		return nil, p.errorAt(tok, ErrUndefinedVariable, "%s", tok.Literal)
	}
	if next.IsPunct('[') {
		p.src.Next()
		return p.parseSubscript(tok, v)
	}
	return v, nil
}

// parseFuncCall reads the arguments of name( up to the closing ')'
func (p *Parser) parseFuncCall(name lexer.Token) (ast.Expr, error) {
	args := []ast.Expr{}
	if p.src.Peek().IsPunct(')') {
		p.src.Next()
		return ast.NewFuncCall(ctypes.Int(), name.Literal, args), nil
	}

	for {
		if len(args) == p.cfg.MaxArgs {
			return nil, p.errorAt(name, ErrTooManyArguments, "%s: more than %d arguments", name.Literal, p.cfg.MaxArgs)
		}
		arg, err := p.ParseExpr()
		if err != nil {
			return nil, err
		}
		args = append(args, arg)

		tok := p.src.Next()
		if tok.IsPunct(')') {
			return ast.NewFuncCall(ctypes.Int(), name.Literal, args), nil
		}
		if !tok.IsPunct(',') {
			p.src.Unread(tok)
			if tok.Type == lexer.TokenEOF {
				return nil, p.errorAt(tok, ErrEndOfInput, "expected ')'")
			}
			return nil, p.errorAt(tok, ErrUnexpectedArgumentSeparator, "expected ',' or ')', got %s", tok)
		}
	}
}

// parseSubscript reads k] after name[ for an array or pointer variable and
// returns a reference to element k. Array subscripts are bounds checked.
func (p *Parser) parseSubscript(name lexer.Token, v ast.Var) (ast.Expr, error) {
	elem := ctypes.Elem(v.Type())
	if elem == nil {
		return nil, p.errorAt(name, ErrTypeError, "array or pointer expected, %s is %s", name.Literal, v.Type())
	}

	idx := p.src.Next()
	if idx.Type != lexer.TokenInt {
		p.src.Unread(idx)
		return nil, p.errorAt(idx, ErrUnexpectedToken, "index must be an integer literal, got %s", idx)
	}
	k, err := strconv.ParseInt(idx.Literal, 10, 32)
	if arr, ok := v.Type().(ctypes.Tarray); err != nil || (ok && k >= arr.Size) {
		return nil, p.errorAt(idx, ErrTypeError, "index %s out of range for %s", idx.Literal, v.Type())
	}
	if err := p.expect(']', ErrUnexpectedToken); err != nil {
		return nil, err
	}

	off := k * symtab.SlotSize(elem)
	switch target := v.(type) {
	case *ast.LocalVar:
		return ast.NewLocalRef(elem, target, off), nil
	case *ast.GlobalVar:
		return ast.NewGlobalRef(elem, target, off), nil
	}
	return nil, p.errorAt(name, ErrTypeError, "cannot subscript %s", name.Literal)
}

func (p *Parser) parseAddress(amp lexer.Token) (ast.Expr, error) {
	operand, err := p.parsePrimary()
	if err != nil {
		return nil, err
	}
	switch operand.(type) {
	case *ast.LocalVar, *ast.GlobalVar:
		return ast.NewUnaryOp(ast.Address, ctypes.Pointer(operand.Type()), operand), nil
	}
	return nil, p.errorAt(amp, ErrNotAnLvalue, "cannot take the address of %s", ast.Format(operand))
}

func (p *Parser) parseDeref(star lexer.Token) (ast.Expr, error) {
	operand, err := p.parsePrimary()
	if err != nil {
		return nil, err
	}
	ptr, ok := operand.Type().(ctypes.Tpointer)
	if !ok {
		return nil, p.errorAt(star, ErrTypeError, "pointer expected, got %s", operand.Type())
	}
	return ast.NewUnaryOp(ast.Deref, ptr.Elem, operand), nil
}

// isAssignable reports whether e denotes a storage location that can be
// the target of '='.
func isAssignable(e ast.Expr) bool {
	if _, ok := e.Type().(ctypes.Tarray); ok {
		return false
	}
	switch e := e.(type) {
	case *ast.LocalVar, *ast.GlobalVar, *ast.LocalRef, *ast.GlobalRef:
		return true
	case *ast.UnaryOp:
		return e.Kind == ast.Deref
	}
	return false
}
