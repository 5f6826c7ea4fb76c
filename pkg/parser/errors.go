package parser

import (
	"errors"
	"fmt"

	"github.com/raymyers/minicc/pkg/lexer"
)

// Error kinds. Every error returned by the parser wraps exactly one of
// these and can be tested with errors.Is.
var (
	ErrUnexpectedToken             = errors.New("unexpected token")
	ErrEndOfInput                  = errors.New("unexpected end of input")
	ErrUndefinedVariable           = errors.New("undefined variable")
	ErrNotAnLvalue                 = errors.New("not an lvalue")
	ErrTypeError                   = errors.New("type error")
	ErrIncompatibleOperands        = errors.New("incompatible operands")
	ErrIdentifierExpected          = errors.New("identifier expected")
	ErrMalformedDeclaration        = errors.New("malformed declaration")
	ErrUnexpectedArgumentSeparator = errors.New("unexpected argument separator")
	ErrTooManyArguments            = errors.New("too many arguments")
)

// Error is a parse error at a source position
type Error struct {
	Kind   error
	Line   int
	Column int
	Msg    string
}

func (e *Error) Error() string {
	return fmt.Sprintf("line %d, col %d: %s: %s", e.Line, e.Column, e.Kind, e.Msg)
}

func (e *Error) Unwrap() error {
	return e.Kind
}

// errorAt builds an error of the given kind positioned at tok and notes
// where it occurred for recovery.
func (p *Parser) errorAt(tok lexer.Token, kind error, format string, args ...any) error {
	p.errDepth, p.errInit = p.depth, p.inInit
	return &Error{
		Kind:   kind,
		Line:   tok.Line,
		Column: tok.Column,
		Msg:    fmt.Sprintf(format, args...),
	}
}
