package lexer

import "testing"

func TestNextToken(t *testing.T) {
	input := `int x = 42; if (x) { f(x, 'c'); }`

	tests := []struct {
		expectedType    TokenType
		expectedLiteral string
	}{
		{TokenIdent, "int"},
		{TokenIdent, "x"},
		{TokenPunct, "="},
		{TokenInt, "42"},
		{TokenPunct, ";"},
		{TokenIdent, "if"},
		{TokenPunct, "("},
		{TokenIdent, "x"},
		{TokenPunct, ")"},
		{TokenPunct, "{"},
		{TokenIdent, "f"},
		{TokenPunct, "("},
		{TokenIdent, "x"},
		{TokenPunct, ","},
		{TokenChar, "c"},
		{TokenPunct, ")"},
		{TokenPunct, ";"},
		{TokenPunct, "}"},
		{TokenEOF, ""},
	}

	l := New(input)

	for i, tt := range tests {
		tok := l.NextToken()

		if tok.Type != tt.expectedType {
			t.Fatalf("tests[%d] - tokentype wrong. expected=%q, got=%q",
				i, tt.expectedType, tok.Type)
		}

		if tok.Literal != tt.expectedLiteral {
			t.Fatalf("tests[%d] - literal wrong. expected=%q, got=%q",
				i, tt.expectedLiteral, tok.Literal)
		}
	}
}

func TestPunctuation(t *testing.T) {
	input := `+ - * / = & ( ) { } [ ] ; ,`
	want := "+-*/=&(){}[];,"

	l := New(input)
	for i := 0; i < len(want); i++ {
		tok := l.NextToken()
		if !tok.IsPunct(want[i]) {
			t.Fatalf("tests[%d] - expected punct %q, got %s %q", i, want[i], tok.Type, tok.Literal)
		}
		if tok.Punct() != want[i] {
			t.Fatalf("tests[%d] - Punct() = %q, want %q", i, tok.Punct(), want[i])
		}
	}
	if tok := l.NextToken(); tok.Type != TokenEOF {
		t.Fatalf("expected EOF, got %s", tok.Type)
	}
}

func TestStringEscapes(t *testing.T) {
	l := New(`"a\"b\n" '\n'`)

	tok := l.NextToken()
	if tok.Type != TokenString || tok.Literal != "a\"b\n" {
		t.Fatalf("got %s %q", tok.Type, tok.Literal)
	}
	tok = l.NextToken()
	if tok.Type != TokenChar || tok.Literal != "\n" {
		t.Fatalf("got %s %q", tok.Type, tok.Literal)
	}
}

func TestIllegalTokens(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"unterminated string", `"abc`},
		{"empty char", `''`},
		{"multi char", `'ab'`},
		{"unknown punct", `@`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tok := New(tt.input).NextToken()
			if tok.Type != TokenIllegal {
				t.Errorf("expected ILLEGAL, got %s %q", tok.Type, tok.Literal)
			}
		})
	}
}

func TestComments(t *testing.T) {
	input := `int // comment
x /* block
comment */ ;`

	tests := []struct {
		expectedType    TokenType
		expectedLiteral string
	}{
		{TokenIdent, "int"},
		{TokenIdent, "x"},
		{TokenPunct, ";"},
		{TokenEOF, ""},
	}

	l := New(input)

	for i, tt := range tests {
		tok := l.NextToken()

		if tok.Type != tt.expectedType {
			t.Fatalf("tests[%d] - tokentype wrong. expected=%q, got=%q",
				i, tt.expectedType, tok.Type)
		}

		if tok.Literal != tt.expectedLiteral {
			t.Fatalf("tests[%d] - literal wrong. expected=%q, got=%q",
				i, tt.expectedLiteral, tok.Literal)
		}
	}
}

func TestPositions(t *testing.T) {
	l := New("a\n  b")

	a := l.NextToken()
	if a.Line != 1 || a.Column != 1 {
		t.Errorf("a at %d:%d, want 1:1", a.Line, a.Column)
	}
	b := l.NextToken()
	if b.Line != 2 || b.Column != 3 {
		t.Errorf("b at %d:%d, want 2:3", b.Line, b.Column)
	}
}

func TestStreamPushback(t *testing.T) {
	s := NewStream("a b")

	if tok := s.Peek(); tok.Literal != "a" {
		t.Fatalf("Peek() = %q, want a", tok.Literal)
	}
	a := s.Next()
	if a.Literal != "a" {
		t.Fatalf("Next() = %q, want a", a.Literal)
	}
	s.Unread(a)
	if tok := s.Next(); tok.Literal != "a" {
		t.Fatalf("Next() after Unread = %q, want a", tok.Literal)
	}
	if tok := s.Next(); tok.Literal != "b" {
		t.Fatalf("Next() = %q, want b", tok.Literal)
	}
	for i := 0; i < 3; i++ {
		if tok := s.Next(); tok.Type != TokenEOF {
			t.Fatalf("read %d past end: got %s", i, tok.Type)
		}
	}
}

func TestStreamCount(t *testing.T) {
	s := NewStream("x = 1;")
	s.Peek()
	s.Peek()
	for s.Next().Type != TokenEOF {
	}
	s.Next()
	if got := s.Count(); got != 4 {
		t.Errorf("Count() = %d, want 4", got)
	}
}

func TestStreamDoubleUnreadPanics(t *testing.T) {
	s := NewStream("a b")
	a, b := s.Next(), s.Next()
	s.Unread(b)

	defer func() {
		if recover() == nil {
			t.Error("expected panic on second Unread")
		}
	}()
	s.Unread(a)
}

func TestIsKeyword(t *testing.T) {
	for _, kw := range []string{"int", "char", "string", "if", "else", "static", "void"} {
		if !IsKeyword(kw) {
			t.Errorf("IsKeyword(%q) = false", kw)
		}
	}
	if IsKeyword("main") {
		t.Error("IsKeyword(main) = true")
	}
}
