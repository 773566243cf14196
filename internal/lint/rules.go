package lint

import (
	"fmt"

	"github.com/ansible-community/antsibull-markup-go/internal/markup"
)

// ParseErrorRule flags every inline Error part, surfacing content-level
// parse failures (which markup.Parse never raises as a Go error) as lint
// findings instead.
type ParseErrorRule struct{}

func (ParseErrorRule) ID() string          { return "AM0001" }
func (ParseErrorRule) Name() string        { return "parse-error" }
func (ParseErrorRule) Description() string { return "markup contains a malformed command" }
func (ParseErrorRule) Severity() Severity  { return SeverityError }

func (ParseErrorRule) Check(paragraphs [][]markup.PartWithSource) []Finding {
	var findings []Finding
	for pi, paragraph := range paragraphs {
		for _, p := range paragraph {
			if p.Part.Kind == markup.KindError {
				findings = append(findings, Finding{
					RuleID:    "AM0001",
					Severity:  SeverityError,
					Paragraph: pi,
					Message:   p.Part.Message,
				})
			}
		}
	}
	return findings
}

// EmptyInlineStyleRule flags B(), I(), and C() calls whose argument is the
// empty string, which render as visually empty markup in every backend.
type EmptyInlineStyleRule struct{}

func (EmptyInlineStyleRule) ID() string          { return "AM1001" }
func (EmptyInlineStyleRule) Name() string        { return "empty-inline-style" }
func (EmptyInlineStyleRule) Description() string { return "an inline style command has an empty argument" }
func (EmptyInlineStyleRule) Severity() Severity  { return SeverityWarning }

func (EmptyInlineStyleRule) Check(paragraphs [][]markup.PartWithSource) []Finding {
	var findings []Finding
	for pi, paragraph := range paragraphs {
		for _, p := range paragraph {
			switch p.Part.Kind {
			case markup.KindBold, markup.KindItalic, markup.KindCode:
				if p.Part.Text == "" {
					findings = append(findings, Finding{
						RuleID:    "AM1001",
						Severity:  SeverityWarning,
						Paragraph: pi,
						Message:   fmt.Sprintf("%s(...) has an empty argument", p.Part.Kind),
					})
				}
			}
		}
	}
	return findings
}

// UnresolvedOptionLikeRule flags O(...)/RV(...) references that carry no
// plugin context at all (no explicit "fqcn#type:" prefix, and no current
// plugin in scope), since such references cannot be linked by any backend.
type UnresolvedOptionLikeRule struct{}

func (UnresolvedOptionLikeRule) ID() string   { return "AM2001" }
func (UnresolvedOptionLikeRule) Name() string { return "unresolved-option-reference" }
func (UnresolvedOptionLikeRule) Description() string {
	return "an option or return value reference has no plugin context to link against"
}
func (UnresolvedOptionLikeRule) Severity() Severity { return SeverityWarning }

func (UnresolvedOptionLikeRule) Check(paragraphs [][]markup.PartWithSource) []Finding {
	var findings []Finding
	for pi, paragraph := range paragraphs {
		for _, p := range paragraph {
			if (p.Part.Kind == markup.KindOptionName || p.Part.Kind == markup.KindReturnValue) && p.Part.OptionPlugin == nil {
				findings = append(findings, Finding{
					RuleID:    "AM2001",
					Severity:  SeverityWarning,
					Paragraph: pi,
					Message:   fmt.Sprintf("reference to %q has no plugin context", p.Part.Name),
				})
			}
		}
	}
	return findings
}

// ClassicMarkupUsageRule flags use of the pre-escaping command set (I, B,
// M, U, L, R, C, HORIZONTALLINE) so a caller migrating a collection's
// documentation to the modern, escaped commands can find what is left to
// convert.
type ClassicMarkupUsageRule struct{}

func (ClassicMarkupUsageRule) ID() string   { return "AM1002" }
func (ClassicMarkupUsageRule) Name() string { return "classic-markup-usage" }
func (ClassicMarkupUsageRule) Description() string {
	return "markup uses a classic, pre-escaping command"
}
func (ClassicMarkupUsageRule) Severity() Severity { return SeverityInfo }

func (ClassicMarkupUsageRule) Check(paragraphs [][]markup.PartWithSource) []Finding {
	var findings []Finding
	for pi, paragraph := range paragraphs {
		for _, p := range paragraph {
			switch p.Part.Kind {
			case markup.KindItalic, markup.KindBold, markup.KindCode,
				markup.KindModule, markup.KindURL, markup.KindLink,
				markup.KindRSTRef, markup.KindHorizontalLine:
				findings = append(findings, Finding{
					RuleID:    "AM1002",
					Severity:  SeverityInfo,
					Paragraph: pi,
					Message:   fmt.Sprintf("%q uses a classic markup command", p.Source),
				})
			}
		}
	}
	return findings
}
