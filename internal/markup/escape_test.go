package markup

import "testing"

func TestEscapeURL(t *testing.T) {
	cases := []struct{ in, want string }{
		{"", ""},
		{"https://ansible.com/", "https://ansible.com/"},
		{"https://ansible.com/test.html?f=<a>&g=h", "https://ansible.com/test.html?f=%3Ca%3E&g=h"},
		{"a b", "a%20b"},
	}
	for _, c := range cases {
		if got := EscapeURL(c.in); got != c.want {
			t.Errorf("EscapeURL(%q) = %q, want %q", c.in, got, c.want)
		}
	}
	// no-escape case must return the identical string value (COW).
	same := "https://ansible.com/nothing-to-escape"
	if got := EscapeURL(same); got != same {
		t.Errorf("EscapeURL(%q) should be unchanged, got %q", same, got)
	}
}

func TestEscapeURLWithHTMLEscape(t *testing.T) {
	cases := []struct{ in, want string }{
		{"https://ansible.com/test.html?f=<a>&g=h", "https://ansible.com/test.html?f=%3Ca%3E&amp;g=h"},
	}
	for _, c := range cases {
		if got := EscapeURLWithHTMLEscape(c.in); got != c.want {
			t.Errorf("EscapeURLWithHTMLEscape(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestEscapeHTML(t *testing.T) {
	cases := []struct{ in, want string }{
		{"", ""},
		{"plain text", "plain text"},
		{"<a> & <b>", "&lt;a&gt; &amp; &lt;b&gt;"},
	}
	for _, c := range cases {
		if got := EscapeHTML(c.in); got != c.want {
			t.Errorf("EscapeHTML(%q) = %q, want %q", c.in, got, c.want)
		}
	}
	same := "nothing to escape here"
	if got := EscapeHTML(same); got != same {
		t.Errorf("EscapeHTML(%q) should be unchanged, got %q", same, got)
	}
}

func TestEscapeMarkdown(t *testing.T) {
	cases := []struct{ in, want string }{
		{"", ""},
		{"plain", "plain"},
		{"a*b_c", `a\*b\_c`},
		{"1.0", `1\.0`},
	}
	for _, c := range cases {
		if got := EscapeMarkdown(c.in); got != c.want {
			t.Errorf("EscapeMarkdown(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestEscapeRST(t *testing.T) {
	cases := []struct {
		in                     string
		escapeEndingWhitespace bool
		mustNotBeEmpty         bool
		want                   string
	}{
		{"", false, false, ""},
		{"", false, true, "\\ "},
		{"plain", false, false, "plain"},
		{"a*b`c", false, false, `a\*b\` + "`" + `c`},
		{" ", true, false, "\\  \\ "},
		{"  ", true, false, "\\   \\ "},
	}
	for _, c := range cases {
		got := EscapeRST(c.in, c.escapeEndingWhitespace, c.mustNotBeEmpty)
		if got != c.want {
			t.Errorf("EscapeRST(%q, %v, %v) = %q, want %q", c.in, c.escapeEndingWhitespace, c.mustNotBeEmpty, got, c.want)
		}
	}
}
