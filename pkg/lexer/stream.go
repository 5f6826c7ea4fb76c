package lexer

// Stream wraps a Lexer with a single token of pushback. Once the input is
// exhausted every further read returns an EOF token.
type Stream struct {
	l       *Lexer
	back    Token
	hasBack bool
	count   int
}

// NewStream creates a token stream over input
func NewStream(input string) *Stream {
	return &Stream{l: New(input)}
}

// Next consumes and returns the next token
func (s *Stream) Next() Token {
	if s.hasBack {
		s.hasBack = false
		return s.back
	}
	tok := s.l.NextToken()
	if tok.Type != TokenEOF {
		s.count++
	}
	return tok
}

// Peek returns the next token without consuming it
func (s *Stream) Peek() Token {
	tok := s.Next()
	s.Unread(tok)
	return tok
}

// Unread returns tok to the front of the stream. Only one token may be
// held back at a time.
func (s *Stream) Unread(tok Token) {
	if s.hasBack {
		panic("lexer: more than one token pushed back")
	}
	s.back = tok
	s.hasBack = true
}

// Count returns the number of tokens read from the lexer, not counting EOF
func (s *Stream) Count() int {
	return s.count
}
