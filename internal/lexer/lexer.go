package lexer

import (
	"strconv"

	"github.com/loxlang/golox/internal/diag"
)

type ScanErrorKind int

const (
	ErrUnterminatedString ScanErrorKind = iota
	ErrUnexpectedChar
)

type ScanError struct {
	Kind    ScanErrorKind
	Message string
	Span    Span
}

func (k ScanErrorKind) diagnosticCode() diag.Code {
	switch k {
	case ErrUnterminatedString:
		return diag.CodeLexUnterminatedString
	case ErrUnexpectedChar:
		return diag.CodeLexUnexpectedChar
	default:
		return diag.Code("LEX_UNKNOWN_ERROR")
	}
}

// ToDiagnostic converts a scan error into a shared diagnostic structure.
func (e ScanError) ToDiagnostic() diag.Diagnostic {
	return diag.Diagnostic{
		Stage:    diag.StageLexer,
		Severity: diag.SeverityError,
		Code:     e.Kind.diagnosticCode(),
		Message:  e.Message,
		Span: diag.Span{
			Line:   e.Span.StartLine,
			Column: e.Span.StartCol,
			Start:  e.Span.Start,
			End:    e.Span.End,
		},
	}
}

// scanContext is the mutable cursor state of one scanning session.
// The cursor only moves forward; line/col always describe the position of
// the next unread rune.
type scanContext struct {
	src  []rune
	pos  int // index of the next unread rune
	line int // 1-based
	col  int // 0-based

	startPos  int // start of the token under construction
	startLine int
	startCol  int

	eofEmitted bool
}

// Lexer wraps a source text and hands out scanning sessions.
// It keeps no state beyond the source itself.
type Lexer struct {
	source string
}

// New creates a new lexer for the given source text.
func New(source string) *Lexer {
	return &Lexer{source: source}
}

// Tokens starts a fresh scanning session over the source.
func (l *Lexer) Tokens() *TokenStream {
	return &TokenStream{
		ctx: scanContext{
			src:  []rune(l.source),
			line: 1,
		},
	}
}

// TokenStream is a finite, forward-only token producer. Each Next call runs
// the scanning algorithm for exactly one token; after the EOF token has been
// yielded the stream is exhausted for good.
type TokenStream struct {
	ctx scanContext

	Errors []ScanError
}

func (s *TokenStream) addError(kind ScanErrorKind, msg string, span Span) {
	s.Errors = append(s.Errors, ScanError{
		Kind:    kind,
		Message: msg,
		Span:    span,
	})
}

// mark records the current cursor as the start of the next token.
func (c *scanContext) mark() {
	c.startPos = c.pos
	c.startLine = c.line
	c.startCol = c.col
}

// span builds the token span from the recorded start to the current cursor.
func (c *scanContext) span() Span {
	return Span{
		StartLine: c.startLine,
		StartCol:  c.startCol,
		EndLine:   c.line,
		EndCol:    c.col,
		Start:     c.startPos,
		End:       c.pos,
	}
}

func (c *scanContext) atEOF() bool {
	return c.pos >= len(c.src)
}

// read consumes one rune and advances the cursor. A newline moves the cursor
// to the start of the next line; anything else advances the column.
func (c *scanContext) read() rune {
	ch := c.src[c.pos]
	c.pos++
	if ch == '\n' {
		c.line++
		c.col = 0
	} else {
		c.col++
	}
	return ch
}

// peek returns the next rune without advancing (0 = end of input).
func (c *scanContext) peek() rune {
	if c.pos >= len(c.src) {
		return 0
	}
	return c.src[c.pos]
}

// peekNext returns the rune one past the next one (0 = end of input).
func (c *scanContext) peekNext() rune {
	if c.pos+1 >= len(c.src) {
		return 0
	}
	return c.src[c.pos+1]
}

// match consumes the next rune only if it equals want.
func (c *scanContext) match(want rune) bool {
	if c.atEOF() || c.src[c.pos] != want {
		return false
	}
	c.read()
	return true
}

// text returns the raw source consumed for the token under construction.
func (c *scanContext) text() string {
	return string(c.src[c.startPos:c.pos])
}

// Next runs the scanning algorithm for one token. It returns false once the
// EOF token has already been yielded.
func (s *TokenStream) Next() (Token, bool) {
	c := &s.ctx
	if c.eofEmitted {
		return Token{}, false
	}

	c.mark()

	if c.atEOF() {
		c.eofEmitted = true
		return Token{Type: EOF, Span: c.span()}, true
	}

	ch := c.read()
	switch {
	case ch == '\n':
		return Token{Type: NEWLINE, Span: c.span()}, true

	case isWhitespace(ch):
		for isWhitespace(c.peek()) {
			c.read()
		}
		return Token{Type: WHITESPACE, Text: c.text(), Span: c.span()}, true

	case ch == '(':
		return Token{Type: LPAREN, Span: c.span()}, true
	case ch == ')':
		return Token{Type: RPAREN, Span: c.span()}, true
	case ch == '{':
		return Token{Type: LBRACE, Span: c.span()}, true
	case ch == '}':
		return Token{Type: RBRACE, Span: c.span()}, true
	case ch == ',':
		return Token{Type: COMMA, Span: c.span()}, true
	case ch == '.':
		return Token{Type: DOT, Span: c.span()}, true
	case ch == '-':
		return Token{Type: MINUS, Span: c.span()}, true
	case ch == '+':
		return Token{Type: PLUS, Span: c.span()}, true
	case ch == ';':
		return Token{Type: SEMICOLON, Span: c.span()}, true
	case ch == '*':
		return Token{Type: STAR, Span: c.span()}, true

	case ch == '/':
		if c.match('/') {
			return s.scanLineComment(), true
		}
		return Token{Type: SLASH, Span: c.span()}, true

	case ch == '!':
		if c.match('=') {
			return Token{Type: BANG_EQ, Span: c.span()}, true
		}
		return Token{Type: BANG, Span: c.span()}, true
	case ch == '=':
		if c.match('=') {
			return Token{Type: EQ, Span: c.span()}, true
		}
		return Token{Type: ASSIGN, Span: c.span()}, true
	case ch == '>':
		if c.match('=') {
			return Token{Type: GE, Span: c.span()}, true
		}
		return Token{Type: GT, Span: c.span()}, true
	case ch == '<':
		if c.match('=') {
			return Token{Type: LE, Span: c.span()}, true
		}
		return Token{Type: LT, Span: c.span()}, true

	case ch == '"':
		return s.scanString(), true

	case isDigit(ch):
		return s.scanNumber(), true

	case isAlpha(ch):
		return s.scanIdentifier(), true

	default:
		tok := Token{Type: ILLEGAL, Text: string(ch), Span: c.span()}
		s.addError(
			ErrUnexpectedChar,
			"unexpected character "+strconv.Quote(string(ch)),
			tok.Span,
		)
		return tok, true
	}
}

// scanLineComment consumes a // comment up to, but excluding, the
// terminating newline. The "//" has already been consumed.
func (s *TokenStream) scanLineComment() Token {
	c := &s.ctx
	for !c.atEOF() && c.peek() != '\n' {
		c.read()
	}
	return Token{Type: COMMENT, Text: c.text(), Span: c.span()}
}

// scanString consumes a string literal up to the closing quote. The payload
// excludes the quotes and gets no escape processing; newlines are allowed
// inside the literal. Hitting end of input first yields an ILLEGAL token and
// records an unterminated-string error.
func (s *TokenStream) scanString() Token {
	c := &s.ctx
	for {
		if c.atEOF() {
			span := c.span()
			s.addError(ErrUnterminatedString, "unterminated string literal", span)
			return Token{Type: ILLEGAL, Text: c.text(), Span: span}
		}
		if c.read() == '"' {
			interior := string(c.src[c.startPos+1 : c.pos-1])
			return Token{Type: STRING, Text: interior, Span: c.span()}
		}
	}
}

// scanNumber consumes a run of digits with an optional fractional part. The
// dot is consumed only when a digit follows it, so "42." lexes as a number
// and a dot. The first digit has already been consumed.
func (s *TokenStream) scanNumber() Token {
	c := &s.ctx
	for isDigit(c.peek()) {
		c.read()
	}
	if c.peek() == '.' && isDigit(c.peekNext()) {
		c.read()
		for isDigit(c.peek()) {
			c.read()
		}
	}
	value, _ := strconv.ParseFloat(c.text(), 64)
	return Token{Type: NUMBER, Value: value, Span: c.span()}
}

// scanIdentifier consumes an identifier run and resolves it against the
// keyword table. The first rune has already been consumed.
func (s *TokenStream) scanIdentifier() Token {
	c := &s.ctx
	for isAlphaNum(c.peek()) {
		c.read()
	}
	name := c.text()
	typ := LookupIdent(name)
	if typ == IDENT {
		return Token{Type: IDENT, Text: name, Span: c.span()}
	}
	return Token{Type: typ, Span: c.span()}
}

func isWhitespace(ch rune) bool {
	return ch == ' ' || ch == '\t' || ch == '\r'
}

func isDigit(ch rune) bool {
	return ch >= '0' && ch <= '9'
}

func isAlpha(ch rune) bool {
	return ch >= 'a' && ch <= 'z' || ch >= 'A' && ch <= 'Z' || ch == '_'
}

func isAlphaNum(ch rune) bool {
	return isAlpha(ch) || isDigit(ch)
}
