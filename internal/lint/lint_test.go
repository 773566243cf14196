package lint

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ansible-community/antsibull-markup-go/internal/markup"
)

func TestParseErrorRuleFindsErrors(t *testing.T) {
	paragraphs := markup.ParseParagraphs("text B(unterminated", markup.Context{}, nil)
	findings := ParseErrorRule{}.Check(paragraphs)
	require.Len(t, findings, 1)
	assert.Equal(t, "AM0001", findings[0].RuleID)
}

func TestEmptyInlineStyleRule(t *testing.T) {
	paragraphs := markup.ParseParagraphs("B()", markup.Context{}, nil)
	findings := EmptyInlineStyleRule{}.Check(paragraphs)
	require.Len(t, findings, 1)
}

func TestDefaultRegistryHasBuiltinRules(t *testing.T) {
	require.NotZero(t, DefaultRegistry.Count())
	assert.NotNil(t, DefaultRegistry.Get("AM0001"))
}

func TestAnalyzerRespectsIgnoreList(t *testing.T) {
	paragraphs := markup.ParseParagraphs("B()", markup.Context{}, nil)
	analyzer := NewWithDefaults(Config{IgnoreRules: []string{"AM1001"}})
	findings := analyzer.Analyze(paragraphs)
	for _, f := range findings {
		if f.RuleID == "AM1001" {
			t.Error("AM1001 should have been ignored")
		}
	}
}

func TestTextFormatter(t *testing.T) {
	findings := []Finding{{RuleID: "AM0001", Severity: SeverityError, Paragraph: 0, Message: "boom"}}
	var buf bytes.Buffer
	if err := NewTextFormatter("doc.rst", false).Format(findings, &buf); err != nil {
		t.Fatalf("Format() error = %v", err)
	}
	want := "doc.rst:paragraph 1: [error] AM0001: boom\n"
	if buf.String() != want {
		t.Errorf("Format() = %q, want %q", buf.String(), want)
	}
}

func TestJSONFormatterSummary(t *testing.T) {
	findings := []Finding{
		{RuleID: "AM0001", Severity: SeverityError, Paragraph: 0, Message: "boom"},
		{RuleID: "AM1002", Severity: SeverityInfo, Paragraph: 0, Message: "fyi"},
	}
	var buf bytes.Buffer
	if err := NewJSONFormatter("doc.rst", false).Format(findings, &buf); err != nil {
		t.Fatalf("Format() error = %v", err)
	}
	if !bytes.Contains(buf.Bytes(), []byte(`"total": 2`)) {
		t.Errorf("expected total of 2 findings in output, got %s", buf.String())
	}
}
