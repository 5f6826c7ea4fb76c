// Package parser implements a recursive descent parser that turns a token
// stream into a typed AST, resolving names against the session's symbol
// tables as it goes.
package parser

import (
	"github.com/raymyers/minicc/pkg/ast"
	"github.com/raymyers/minicc/pkg/config"
	"github.com/raymyers/minicc/pkg/lexer"
	"github.com/raymyers/minicc/pkg/symtab"
)

// TokenSource is the stream the parser reads from. Unread returns one
// token to the front of the stream; the parser never holds back more than
// one token at a time.
type TokenSource interface {
	Next() lexer.Token
	Peek() lexer.Token
	Unread(tok lexer.Token)
}

// Parser parses a token stream into typed AST units. A Parser owns its
// symbol tables and label counter and must not be shared.
type Parser struct {
	src      TokenSource
	cfg      *config.Config
	syms     *symtab.Table
	errors   []error
	depth    int  // open blocks; zero at top level
	inInit   bool // inside the braces of an array initializer
	errDepth int  // depth when the last error was raised
	errInit  bool // inInit when the last error was raised
}

// New creates a new Parser reading from src. A nil cfg selects the
// defaults.
func New(src TokenSource, cfg *config.Config) *Parser {
	if cfg == nil {
		cfg = config.Default()
	}
	return &Parser{
		src:  src,
		cfg:  cfg,
		syms: symtab.New(),
	}
}

// Errors returns the errors collected by ParseProgram
func (p *Parser) Errors() []error {
	return p.errors
}

// Symbols returns the session's symbol tables
func (p *Parser) Symbols() *symtab.Table {
	return p.syms
}

// ParseProgram parses units until the input is exhausted. A failed unit
// is recorded in Errors and skipped, unless the configuration asks to stop
// at the first error.
func (p *Parser) ParseProgram() *ast.Program {
	prog := &ast.Program{Units: []ast.Node{}}

	for p.src.Peek().Type != lexer.TokenEOF {
		n, err := p.ParseStatement()
		if err != nil {
			p.errors = append(p.errors, err)
			if p.cfg.StopOnError {
				break
			}
			p.synchronize()
			continue
		}
		prog.Units = append(prog.Units, n)
	}

	prog.Globals = p.syms.Globals()
	prog.Locals = p.syms.Locals()
	prog.Strings = p.syms.Strings()
	return prog
}

// synchronize skips to the end of the statement that failed: the next ';'
// outside any block, or the brace closing the outermost block that was
// open when the error occurred, together with any else arm after it.
// The closing brace of an array initializer does not end a statement; a
// ';' at the initializer's own level abandons an unclosed initializer.
func (p *Parser) synchronize() {
	base := p.errDepth
	depth := base
	inits := 0
	if p.errInit {
		inits = 1
	}
	p.depth, p.inInit = 0, false
	for {
		tok := p.src.Next()
		switch {
		case tok.Type == lexer.TokenEOF:
			return
		case tok.IsPunct('{'):
			depth++
		case tok.IsPunct('}') && inits > 0 && depth == base:
			inits--
		case tok.IsPunct('}'):
			depth--
			if depth > 0 {
				continue
			}
			if depth == 0 && p.src.Peek().IsIdent("else") {
				p.src.Next()
				continue
			}
			return
		case tok.IsPunct(';') && inits > 0 && depth == base:
			inits = 0
			if depth == 0 {
				return
			}
		case tok.IsPunct(';') && depth == 0 && inits == 0:
			return
		}
	}
}

// ParseStatement parses one unit: an if statement, a declaration or an
// expression statement terminated by ';'.
func (p *Parser) ParseStatement() (ast.Node, error) {
	tok := p.src.Peek()
	switch {
	case tok.Type == lexer.TokenEOF:
		p.src.Next()
		return nil, p.errorAt(tok, ErrEndOfInput, "expected statement")
	case tok.IsIdent("if"):
		stmt, err := p.parseIf()
		if err != nil {
			return nil, err
		}
		return stmt, nil
	case isDeclStart(tok):
		decl, err := p.parseDecl()
		if err != nil {
			return nil, err
		}
		return decl, nil
	}

	expr, err := p.ParseExpr()
	if err != nil {
		return nil, err
	}
	if err := p.expect(';', ErrUnexpectedToken); err != nil {
		return nil, err
	}
	return expr, nil
}

func (p *Parser) parseIf() (*ast.If, error) {
	p.src.Next() // consume 'if'

	if err := p.expect('(', ErrUnexpectedToken); err != nil {
		return nil, err
	}
	cond, err := p.ParseExpr()
	if err != nil {
		return nil, err
	}
	if err := p.expect(')', ErrUnexpectedToken); err != nil {
		return nil, err
	}

	then, err := p.parseBlock()
	if err != nil {
		return nil, err
	}
	stmt := &ast.If{Cond: cond, Then: then}

	if !p.src.Peek().IsIdent("else") {
		return stmt, nil
	}
	p.src.Next() // consume 'else'

	if p.src.Peek().IsIdent("if") {
		nested, err := p.parseIf()
		if err != nil {
			return nil, err
		}
		stmt.Else = []ast.Node{nested}
		return stmt, nil
	}
	stmt.Else, err = p.parseBlock()
	if err != nil {
		return nil, err
	}
	return stmt, nil
}

// parseBlock parses '{' statement* '}'. Declarations inside a block are
// locals.
func (p *Parser) parseBlock() ([]ast.Node, error) {
	if err := p.expect('{', ErrUnexpectedToken); err != nil {
		return nil, err
	}
	p.depth++
	defer func() { p.depth-- }()

	stmts := []ast.Node{}
	for {
		tok := p.src.Peek()
		switch {
		case tok.IsPunct('}'):
			p.src.Next()
			return stmts, nil
		case tok.Type == lexer.TokenEOF:
			p.src.Next()
			return nil, p.errorAt(tok, ErrEndOfInput, "expected '}'")
		}
		stmt, err := p.ParseStatement()
		if err != nil {
			return nil, err
		}
		stmts = append(stmts, stmt)
	}
}

// expect consumes the punctuation c. On mismatch the token is left in the
// stream and an error of the given kind is returned.
func (p *Parser) expect(c byte, kind error) error {
	tok := p.src.Next()
	if tok.IsPunct(c) {
		return nil
	}
	p.src.Unread(tok)
	if tok.Type == lexer.TokenEOF {
		kind = ErrEndOfInput
	}
	return p.errorAt(tok, kind, "expected '%c', got %s", c, tok)
}
