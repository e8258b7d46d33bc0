package lexer

import "fmt"

// TokenType represents the kind of a token
type TokenType string

// Span represents the half-open source range a token was scanned from.
// Lines are 1-based, columns 0-based. Start/End are rune offsets into the
// original source so the token sequence can reconstruct the input exactly.
type Span struct {
	StartLine int
	StartCol  int
	EndLine   int
	EndCol    int
	Start     int // index in []rune
	End       int // exclusive end index
}

// OneLine reports whether the span begins and ends on the same line.
func (s Span) OneLine() bool {
	return s.StartLine == s.EndLine
}

// String returns the span in start-end form, e.g. "1:0-1:2".
func (s Span) String() string {
	return fmt.Sprintf("%d:%d-%d:%d", s.StartLine, s.StartCol, s.EndLine, s.EndCol)
}

// Token pairs a lexeme kind with the span it was scanned from.
// Text carries the payload for IDENT, STRING (quotes excluded), COMMENT,
// WHITESPACE and ILLEGAL tokens; Value carries the parsed NUMBER payload.
type Token struct {
	Type  TokenType
	Text  string
	Value float64
	Span  Span
}

// Token type constants
const (
	// Special tokens
	ILLEGAL TokenType = "ILLEGAL"
	EOF     TokenType = "EOF"

	// Literals
	IDENT  TokenType = "IDENT"  // x, foo_bar, ...
	STRING TokenType = "STRING" // "hello"
	NUMBER TokenType = "NUMBER" // 42, 12.5

	// Single-character punctuation
	LPAREN    TokenType = "("
	RPAREN    TokenType = ")"
	LBRACE    TokenType = "{"
	RBRACE    TokenType = "}"
	COMMA     TokenType = ","
	DOT       TokenType = "."
	MINUS     TokenType = "-"
	PLUS      TokenType = "+"
	SEMICOLON TokenType = ";"
	SLASH     TokenType = "/"
	STAR      TokenType = "*"

	// One- or two-character operators
	BANG    TokenType = "!"
	BANG_EQ TokenType = "!="
	ASSIGN  TokenType = "="
	EQ      TokenType = "=="
	GT      TokenType = ">"
	GE      TokenType = ">="
	LT      TokenType = "<"
	LE      TokenType = "<="

	// Keywords
	AND    TokenType = "AND"
	CLASS  TokenType = "CLASS"
	ELSE   TokenType = "ELSE"
	FALSE  TokenType = "FALSE"
	FUN    TokenType = "FUN"
	FOR    TokenType = "FOR"
	IF     TokenType = "IF"
	NIL    TokenType = "NIL"
	OR     TokenType = "OR"
	PRINT  TokenType = "PRINT"
	RETURN TokenType = "RETURN"
	SUPER  TokenType = "SUPER"
	THIS   TokenType = "THIS"
	TRUE   TokenType = "TRUE"
	VAR    TokenType = "VAR"
	WHILE  TokenType = "WHILE"

	// Trivia tokens (comments, whitespace, newlines)
	COMMENT    TokenType = "COMMENT"    // // through end of line
	WHITESPACE TokenType = "WHITESPACE" // spaces, tabs, carriage returns
	NEWLINE    TokenType = "NEWLINE"    // \n
)

var keywords = map[string]TokenType{
	"and":    AND,
	"class":  CLASS,
	"else":   ELSE,
	"false":  FALSE,
	"fun":    FUN,
	"for":    FOR,
	"if":     IF,
	"nil":    NIL,
	"or":     OR,
	"print":  PRINT,
	"return": RETURN,
	"super":  SUPER,
	"this":   THIS,
	"true":   TRUE,
	"var":    VAR,
	"while":  WHILE,
}

// LookupIdent checks if the identifier is a reserved word.
// Matches are exact and case-sensitive; anything else is IDENT.
func LookupIdent(ident string) TokenType {
	if tok, ok := keywords[ident]; ok {
		return tok
	}
	return IDENT
}
