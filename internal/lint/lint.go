// Package lint analyzes already-parsed markup paragraphs for constructs
// that parse successfully but are still worth flagging: inline parse
// errors, empty inline styles, and option-like references that never
// resolved to a plugin.
package lint

import "github.com/ansible-community/antsibull-markup-go/internal/markup"

// Severity is the severity level of a lint Finding.
type Severity int

const (
	SeverityInfo Severity = iota
	SeverityWarning
	SeverityError
)

func (s Severity) String() string {
	switch s {
	case SeverityInfo:
		return "info"
	case SeverityWarning:
		return "warning"
	case SeverityError:
		return "error"
	default:
		return "unknown"
	}
}

// Finding is a single lint result.
type Finding struct {
	RuleID     string
	Severity   Severity
	Paragraph  int
	Index      int
	Message    string
	Suggestion string
}

// Rule is one lint check. Check receives every paragraph of one parsed
// document (as produced by markup.ParseParagraphs) and returns the
// findings it detects.
type Rule interface {
	ID() string
	Name() string
	Description() string
	Severity() Severity
	Check(paragraphs [][]markup.PartWithSource) []Finding
}
