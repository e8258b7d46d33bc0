package diag

import "fmt"

// Stage identifies which language-processing phase produced the diagnostic.
type Stage string

const (
	StageLexer  Stage = "lexer"
	StageParser Stage = "parser" // reserved for the downstream consumer
)

// Severity captures how impactful the diagnostic is.
type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
	SeverityNote    Severity = "note"
)

// Code is a stable identifier for a diagnostic.
type Code string

const (
	CodeLexUnterminatedString Code = "LEX_UNTERMINATED_STRING"
	CodeLexUnexpectedChar     Code = "LEX_UNEXPECTED_CHAR"
)

// Span represents a location in source code. Line is 1-based and Column
// 0-based; Start/End are rune offsets.
type Span struct {
	Line   int
	Column int
	Start  int
	End    int
}

// String returns a human-readable representation of the span.
func (s Span) String() string {
	return fmt.Sprintf("%d:%d", s.Line, s.Column)
}

// IsValid returns true if the span has valid location information.
func (s Span) IsValid() bool {
	return s.Line > 0 && s.Column >= 0 && s.End >= s.Start
}

// Diagnostic is a scanning or parsing problem surfaced to end-users.
type Diagnostic struct {
	Stage    Stage
	Severity Severity
	Code     Code
	Message  string
	Span     Span
	Notes    []string // additional notes to display
	Help     string   // optional help text
}

// WithNote adds a note to the diagnostic.
func (d Diagnostic) WithNote(note string) Diagnostic {
	d.Notes = append(d.Notes, note)
	return d
}

// WithHelp adds help text to the diagnostic.
func (d Diagnostic) WithHelp(help string) Diagnostic {
	d.Help = help
	return d
}
