package lexer

import "fmt"

// TokenType represents the kind of a token
type TokenType int

const (
	// Special tokens
	TokenEOF TokenType = iota
	TokenIllegal

	TokenIdent  // main, foo, x, int, if
	TokenInt    // 42
	TokenChar   // 'a'
	TokenString // "hello"
	TokenPunct  // + - * / = & ( ) { } [ ] ; ,
)

var tokenNames = map[TokenType]string{
	TokenEOF:     "EOF",
	TokenIllegal: "ILLEGAL",
	TokenIdent:   "IDENT",
	TokenInt:     "INT",
	TokenChar:    "CHAR",
	TokenString:  "STRING",
	TokenPunct:   "PUNCT",
}

func (t TokenType) String() string {
	if name, ok := tokenNames[t]; ok {
		return name
	}
	return "UNKNOWN"
}

// Token represents a lexical token. Literal holds the identifier text, the
// digits of an integer, the decoded body of a string or char literal, or
// the single punctuation character.
type Token struct {
	Type    TokenType
	Literal string
	Line    int
	Column  int
}

// IsPunct reports whether the token is the punctuation character c
func (t Token) IsPunct(c byte) bool {
	return t.Type == TokenPunct && len(t.Literal) == 1 && t.Literal[0] == c
}

// IsIdent reports whether the token is the identifier name
func (t Token) IsIdent(name string) bool {
	return t.Type == TokenIdent && t.Literal == name
}

// Punct returns the punctuation character, or 0 for other tokens
func (t Token) Punct() byte {
	if t.Type != TokenPunct || len(t.Literal) != 1 {
		return 0
	}
	return t.Literal[0]
}

func (t Token) String() string {
	switch t.Type {
	case TokenEOF:
		return "end of input"
	case TokenString:
		return fmt.Sprintf("%q", t.Literal)
	case TokenChar:
		return fmt.Sprintf("'%s'", t.Literal)
	case TokenIdent, TokenInt:
		return t.Literal
	}
	return fmt.Sprintf("'%s'", t.Literal)
}

// keywords are reserved identifiers; they reach the parser as TokenIdent.
var keywords = map[string]bool{
	"int":    true,
	"char":   true,
	"string": true,
	"void":   true,
	"static": true,
	"if":     true,
	"else":   true,
}

// IsKeyword reports whether ident is reserved
func IsKeyword(ident string) bool {
	return keywords[ident]
}
