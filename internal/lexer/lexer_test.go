package lexer

import "testing"

func TestNextToken(t *testing.T) {
	input := "x := 10; {c} y<>z (* m *) // end\n."

	tests := []struct {
		typ    TokenType
		lit    string
		line   int
		column int
	}{
		{TOKEN_IDENT, "x", 1, 1},
		{TOKEN_ASSIGN, ":=", 1, 3},
		{TOKEN_INT, "10", 1, 6},
		{TOKEN_SEMICOLON, ";", 1, 8},
		{TOKEN_COMMENT, "{c}", 1, 10},
		{TOKEN_IDENT, "y", 1, 14},
		{TOKEN_NOT_EQ, "<>", 1, 15},
		{TOKEN_IDENT, "z", 1, 17},
		{TOKEN_COMMENT, "(* m *)", 1, 19},
		{TOKEN_COMMENT, "// end", 1, 27},
		{TOKEN_DOT, ".", 2, 1},
		{TOKEN_EOF, "", 2, 2},
	}

	l := New(input)
	for i, tt := range tests {
		tok := l.NextToken()
		if tok.Type != tt.typ || tok.Literal != tt.lit {
			t.Fatalf("token %d: got %s %q, want %s %q", i, tok.Type, tok.Literal, tt.typ, tt.lit)
		}
		if tok.Line != tt.line || tok.Column != tt.column {
			t.Errorf("token %d (%q): position %d:%d, want %d:%d", i, tok.Literal, tok.Line, tok.Column, tt.line, tt.column)
		}
	}
}

func TestOperatorsAndDelimiters(t *testing.T) {
	want := []TokenType{
		TOKEN_PLUS, TOKEN_MINUS, TOKEN_ASTERISK, TOKEN_EQ,
		TOKEN_LT, TOKEN_LT_EQ, TOKEN_GT, TOKEN_GT_EQ, TOKEN_NOT_EQ,
		TOKEN_COLON, TOKEN_ASSIGN, TOKEN_COMMA, TOKEN_LPAREN, TOKEN_RPAREN,
		TOKEN_ILLEGAL, TOKEN_ILLEGAL, TOKEN_EOF,
	}
	toks := Tokenize("+ - * = < <= > >= <> : := , ( ) / #")
	if len(toks) != len(want) {
		t.Fatalf("got %d tokens, want %d", len(toks), len(want))
	}
	for i, tok := range toks {
		if tok.Type != want[i] {
			t.Errorf("token %d = %s, want %s", i, tok.Type, want[i])
		}
	}
}

func TestKeywords(t *testing.T) {
	for word, typ := range keywords {
		if got := LookupIdent(word); got != typ {
			t.Errorf("LookupIdent(%q) = %s, want %s", word, got, typ)
		}
		if got := TokenTypeName(typ); got != word {
			t.Errorf("TokenTypeName(%d) = %q, want %q", typ, got, word)
		}
	}
	for _, ident := range []string{"x", "programa", "Begin", "_tmp1"} {
		if got := LookupIdent(ident); got != TOKEN_IDENT {
			t.Errorf("LookupIdent(%q) = %s, want IDENT", ident, got)
		}
	}
}

func TestUnterminatedComment(t *testing.T) {
	toks := Tokenize("{ open\nstill open")
	if len(toks) != 2 || toks[0].Type != TOKEN_COMMENT || toks[1].Type != TOKEN_EOF {
		t.Fatalf("tokens = %+v", toks)
	}
	if toks[0].Literal != "{ open\nstill open" {
		t.Errorf("comment literal = %q", toks[0].Literal)
	}
}

func TestNonASCIIIsIllegal(t *testing.T) {
	tests := []struct {
		input string
		want  []Token
	}{
		{"ê", []Token{
			{Type: TOKEN_ILLEGAL, Literal: "ê", Line: 1, Column: 1},
			{Type: TOKEN_EOF, Line: 1, Column: 3},
		}},
		{"ação", []Token{
			{Type: TOKEN_IDENT, Literal: "a", Line: 1, Column: 1},
			{Type: TOKEN_ILLEGAL, Literal: "ç", Line: 1, Column: 2},
			{Type: TOKEN_ILLEGAL, Literal: "ã", Line: 1, Column: 4},
			{Type: TOKEN_IDENT, Literal: "o", Line: 1, Column: 6},
			{Type: TOKEN_EOF, Line: 1, Column: 7},
		}},
		{"x\xff", []Token{
			{Type: TOKEN_IDENT, Literal: "x", Line: 1, Column: 1},
			{Type: TOKEN_ILLEGAL, Literal: "\xff", Line: 1, Column: 2},
			{Type: TOKEN_EOF, Line: 1, Column: 3},
		}},
	}
	for _, tt := range tests {
		got := Tokenize(tt.input)
		if len(got) != len(tt.want) {
			t.Errorf("Tokenize(%q) = %+v", tt.input, got)
			continue
		}
		for i := range got {
			if got[i] != tt.want[i] {
				t.Errorf("Tokenize(%q)[%d] = %+v, want %+v", tt.input, i, got[i], tt.want[i])
			}
		}
	}
}
