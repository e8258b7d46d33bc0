package lexer

import (
	"testing"
)

func TestSpan_OneLine(t *testing.T) {
	one := Span{StartLine: 1, StartCol: 0, EndLine: 1, EndCol: 3, Start: 0, End: 3}
	if !one.OneLine() {
		t.Fatalf("expected %s to be single-line", one)
	}

	multi := Span{StartLine: 1, StartCol: 4, EndLine: 3, EndCol: 1, Start: 4, End: 12}
	if multi.OneLine() {
		t.Fatalf("expected %s to be multi-line", multi)
	}
}

func TestSpan_String(t *testing.T) {
	s := Span{StartLine: 2, StartCol: 5, EndLine: 2, EndCol: 8, Start: 15, End: 18}
	if got, want := s.String(), "2:5-2:8"; got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
}

func TestLookupIdent_ReservedWords(t *testing.T) {
	tests := []struct {
		word string
		typ  TokenType
	}{
		{"and", AND},
		{"class", CLASS},
		{"else", ELSE},
		{"false", FALSE},
		{"fun", FUN},
		{"for", FOR},
		{"if", IF},
		{"nil", NIL},
		{"or", OR},
		{"print", PRINT},
		{"return", RETURN},
		{"super", SUPER},
		{"this", THIS},
		{"true", TRUE},
		{"var", VAR},
		{"while", WHILE},
	}

	for i, tt := range tests {
		if got := LookupIdent(tt.word); got != tt.typ {
			t.Fatalf("tests[%d] - expected %q for %q, got %q", i, tt.typ, tt.word, got)
		}

		// Appending any identifier character demotes it to IDENT.
		if got := LookupIdent(tt.word + "s"); got != IDENT {
			t.Fatalf("tests[%d] - expected IDENT for %q, got %q", i, tt.word+"s", got)
		}
		if got := LookupIdent(tt.word + "_"); got != IDENT {
			t.Fatalf("tests[%d] - expected IDENT for %q, got %q", i, tt.word+"_", got)
		}
	}
}

func TestLookupIdent_CaseSensitive(t *testing.T) {
	for _, word := range []string{"Var", "VAR", "While", "TRUE"} {
		if got := LookupIdent(word); got != IDENT {
			t.Fatalf("expected IDENT for %q, got %q", word, got)
		}
	}
}

func TestScanKeywordExactness(t *testing.T) {
	// A reserved word scanned in isolation is a keyword token; with a
	// trailing identifier character it is one IDENT token instead.
	stream := New("var").Tokens()
	tok, _ := stream.Next()
	if tok.Type != VAR {
		t.Fatalf("expected VAR, got %q", tok.Type)
	}

	stream = New("varx").Tokens()
	tok, _ = stream.Next()
	if tok.Type != IDENT || tok.Text != "varx" {
		t.Fatalf("expected IDENT %q, got %q (%q)", "varx", tok.Type, tok.Text)
	}
}

func TestScanLongestMatch(t *testing.T) {
	tests := []struct {
		input string
		typ   TokenType
	}{
		{"!=", BANG_EQ},
		{"==", EQ},
		{"<=", LE},
		{">=", GE},
	}

	for i, tt := range tests {
		stream := New(tt.input).Tokens()

		tok, _ := stream.Next()
		if tok.Type != tt.typ {
			t.Fatalf("tests[%d] - expected one %q token, got %q", i, tt.typ, tok.Type)
		}
		if got, want := tok.Span.String(), "1:0-1:2"; got != want {
			t.Fatalf("tests[%d] - expected span %s, got %s", i, want, got)
		}

		eof, _ := stream.Next()
		if eof.Type != EOF {
			t.Fatalf("tests[%d] - expected EOF after operator, got %q", i, eof.Type)
		}
	}
}
