// Package lexer turns source text into the token stream consumed by the
// parser.
package lexer

import (
	"strings"
	"unicode"
)

// Lexer tokenizes source code
type Lexer struct {
	input   string
	pos     int  // current position in input
	readPos int  // next reading position
	ch      byte // current character
	line    int
	column  int
}

// New creates a new Lexer for the given input
func New(input string) *Lexer {
	l := &Lexer{input: input, line: 1, column: 0}
	l.readChar()
	return l
}

func (l *Lexer) readChar() {
	if l.ch == '\n' {
		l.line++
		l.column = 0
	}
	if l.readPos >= len(l.input) {
		l.ch = 0 // EOF
	} else {
		l.ch = l.input[l.readPos]
	}
	l.pos = l.readPos
	l.readPos++
	l.column++
}

func (l *Lexer) peekChar() byte {
	if l.readPos >= len(l.input) {
		return 0
	}
	return l.input[l.readPos]
}

// NextToken returns the next token from the input
func (l *Lexer) NextToken() Token {
	l.skipWhitespace()
	l.skipComments()
	l.skipWhitespace()

	tok := Token{Line: l.line, Column: l.column}

	switch {
	case l.ch == 0 && l.pos >= len(l.input):
		tok.Type = TokenEOF
		return tok
	case l.ch == '"':
		lit, ok := l.readQuoted('"')
		tok.Type, tok.Literal = TokenString, lit
		if !ok {
			tok.Type = TokenIllegal
		}
		return tok
	case l.ch == '\'':
		lit, ok := l.readQuoted('\'')
		tok.Type, tok.Literal = TokenChar, lit
		if !ok || len(lit) != 1 {
			tok.Type = TokenIllegal
		}
		return tok
	case isLetter(l.ch):
		tok.Type = TokenIdent
		tok.Literal = l.readIdentifier()
		return tok
	case isDigit(l.ch):
		tok.Type = TokenInt
		tok.Literal = l.readNumber()
		return tok
	case strings.IndexByte("+-*/=&(){}[];,", l.ch) >= 0:
		tok.Type = TokenPunct
	default:
		tok.Type = TokenIllegal
	}
	tok.Literal = string(l.ch)
	l.readChar()
	return tok
}

func (l *Lexer) skipWhitespace() {
	for l.ch == ' ' || l.ch == '\t' || l.ch == '\n' || l.ch == '\r' {
		l.readChar()
	}
}

func (l *Lexer) skipComments() {
	for l.ch == '/' {
		if l.peekChar() == '/' {
			for l.ch != '\n' && l.ch != 0 {
				l.readChar()
			}
			l.skipWhitespace()
		} else if l.peekChar() == '*' {
			l.readChar() // consume /
			l.readChar() // consume *
			for l.ch != 0 {
				if l.ch == '*' && l.peekChar() == '/' {
					l.readChar()
					l.readChar()
					break
				}
				l.readChar()
			}
			l.skipWhitespace()
		} else {
			break
		}
	}
}

func (l *Lexer) readIdentifier() string {
	pos := l.pos
	for isLetter(l.ch) || isDigit(l.ch) {
		l.readChar()
	}
	return l.input[pos:l.pos]
}

func (l *Lexer) readNumber() string {
	pos := l.pos
	for isDigit(l.ch) {
		l.readChar()
	}
	return l.input[pos:l.pos]
}

// readQuoted reads a quote-delimited literal and decodes its escapes.
// It reports false when the input ends before the closing quote.
func (l *Lexer) readQuoted(quote byte) (string, bool) {
	l.readChar() // consume opening quote
	var sb strings.Builder
	for l.ch != quote {
		if l.ch == 0 && l.pos >= len(l.input) {
			return sb.String(), false
		}
		if l.ch == '\\' {
			l.readChar()
			sb.WriteByte(unescape(l.ch))
		} else {
			sb.WriteByte(l.ch)
		}
		l.readChar()
	}
	l.readChar() // consume closing quote
	return sb.String(), true
}

func unescape(c byte) byte {
	switch c {
	case 'n':
		return '\n'
	case 't':
		return '\t'
	case 'r':
		return '\r'
	case '0':
		return 0
	}
	return c
}

func isLetter(ch byte) bool {
	return unicode.IsLetter(rune(ch)) || ch == '_'
}

func isDigit(ch byte) bool {
	return '0' <= ch && ch <= '9'
}
