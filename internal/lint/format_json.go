package lint

import (
	"encoding/json"
	"io"
)

// JSONFinding is one Finding in JSON output form.
type JSONFinding struct {
	RuleID     string `json:"rule_id"`
	Severity   string `json:"severity"`
	Paragraph  int    `json:"paragraph"`
	Message    string `json:"message"`
	Suggestion string `json:"suggestion,omitempty"`
}

// JSONSummary is the summary section of JSON output.
type JSONSummary struct {
	Total    int `json:"total"`
	Errors   int `json:"errors"`
	Warnings int `json:"warnings"`
	Info     int `json:"info"`
}

// JSONOutput is the complete JSON output structure.
type JSONOutput struct {
	Source   string        `json:"source"`
	Findings []JSONFinding `json:"findings"`
	Summary  JSONSummary   `json:"summary"`
}

// JSONFormatter formats findings as JSON for machine consumption.
//
// Adapted from the teacher's internal/formatter.JSONFormatter: same
// output shape and summary counting, with "file" renamed to "source" and
// line/column replaced by paragraph.
type JSONFormatter struct {
	Source string
	Quiet  bool
}

// NewJSONFormatter creates a new JSONFormatter with the given source label.
func NewJSONFormatter(source string, quiet bool) *JSONFormatter {
	return &JSONFormatter{Source: source, Quiet: quiet}
}

// Format writes findings to w as indented JSON.
func (f *JSONFormatter) Format(findings []Finding, w io.Writer) error {
	output := JSONOutput{
		Source:   f.Source,
		Findings: make([]JSONFinding, 0),
	}

	for _, finding := range findings {
		if f.Quiet && finding.Severity == SeverityInfo {
			continue
		}

		output.Findings = append(output.Findings, JSONFinding{
			RuleID:     finding.RuleID,
			Severity:   finding.Severity.String(),
			Paragraph:  finding.Paragraph,
			Message:    finding.Message,
			Suggestion: finding.Suggestion,
		})

		switch finding.Severity {
		case SeverityError:
			output.Summary.Errors++
		case SeverityWarning:
			output.Summary.Warnings++
		case SeverityInfo:
			output.Summary.Info++
		}
		output.Summary.Total++
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(output)
}
