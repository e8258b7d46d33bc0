package diag

import (
	"fmt"
	"strings"
)

// Formatter renders diagnostics in a Rust-style format with a source snippet
// and caret underline. It works against the in-memory source text the lexer
// scanned; nothing is read from disk.
type Formatter struct {
	source string
}

// NewFormatter creates a formatter for the given source text.
func NewFormatter(source string) *Formatter {
	return &Formatter{source: source}
}

// Format renders a diagnostic as a multi-line string.
func (f *Formatter) Format(d Diagnostic) string {
	var b strings.Builder

	severity := string(d.Severity)
	if severity == "" {
		severity = string(SeverityError)
	}

	if d.Code != "" {
		fmt.Fprintf(&b, "%s[%s]: %s\n", severity, d.Code, d.Message)
	} else {
		fmt.Fprintf(&b, "%s: %s\n", severity, d.Message)
	}

	if d.Span.IsValid() {
		f.writeSnippet(&b, d.Span)
	}

	for _, note := range d.Notes {
		fmt.Fprintf(&b, "note: %s\n", note)
	}
	if d.Help != "" {
		fmt.Fprintf(&b, "help: %s\n", d.Help)
	}

	return b.String()
}

// writeSnippet prints the offending source line with a caret underline.
func (f *Formatter) writeSnippet(b *strings.Builder, span Span) {
	lines := strings.Split(f.source, "\n")
	if span.Line > len(lines) {
		return
	}
	line := strings.TrimSuffix(lines[span.Line-1], "\r")

	lineNum := fmt.Sprintf("%d", span.Line)
	gutter := strings.Repeat(" ", len(lineNum))

	fmt.Fprintf(b, "%s--> %s\n", gutter, span)
	fmt.Fprintf(b, "%s |\n", gutter)
	fmt.Fprintf(b, "%s | %s\n", lineNum, line)

	// Clamp the underline to what is visible on this line.
	width := span.End - span.Start
	if avail := len([]rune(line)) - span.Column; width > avail {
		width = avail
	}
	if width < 1 {
		width = 1
	}
	fmt.Fprintf(b, "%s | %s%s\n", gutter, strings.Repeat(" ", span.Column), strings.Repeat("^", width))
}
