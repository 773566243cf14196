package lint

import (
	"fmt"
	"io"
)

// TextFormatter formats findings as human-readable text.
//
// Adapted from the teacher's internal/formatter.TextFormatter: same
// "source:paragraph: [severity] rule_id: message" shape and quiet-mode
// filtering, with the Dockerfile's line/column location replaced by the
// paragraph index markup paragraphs are addressed by.
type TextFormatter struct {
	Source string
	Quiet  bool
}

// NewTextFormatter creates a new TextFormatter with the given source
// label (typically a file path, or "stdin").
func NewTextFormatter(source string, quiet bool) *TextFormatter {
	return &TextFormatter{Source: source, Quiet: quiet}
}

// Format writes findings to w in human-readable text, one per line,
// followed by an indented suggestion line when the finding has one.
func (f *TextFormatter) Format(findings []Finding, w io.Writer) error {
	for _, finding := range findings {
		if f.Quiet && finding.Severity == SeverityInfo {
			continue
		}

		line := fmt.Sprintf("%s:paragraph %d: [%s] %s: %s",
			f.Source, finding.Paragraph+1, finding.Severity, finding.RuleID, finding.Message)
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}

		if finding.Suggestion != "" {
			if _, err := fmt.Fprintf(w, "  Suggestion: %s\n", finding.Suggestion); err != nil {
				return err
			}
		}
	}
	return nil
}
