package markup

// MarkdownFormatter renders paragraphs as Markdown, falling back to
// inline HTML for every inline construct Markdown has no native syntax
// for (bold, italic, code, and option-like references). Plugin
// references without a resolved link render as plain escaped text.
type MarkdownFormatter struct{}

func (MarkdownFormatter) ParagraphStart() string         { return "" }
func (MarkdownFormatter) ParagraphEnd() string           { return "" }
func (MarkdownFormatter) ParagraphSep(multi bool) string { return "\n\n" }

// ParagraphEmpty is "" for a lone empty paragraph but " " between
// paragraphs in a multi-paragraph sequence, since two adjacent blank
// Markdown paragraphs collapse together without a space to keep the
// blank-line separator from merging them.
func (MarkdownFormatter) ParagraphEmpty(multi bool) string {
	if multi {
		return " "
	}
	return ""
}

func mdAppendTag(dst Appender, start, text, end string) {
	dst.PushString(start)
	dst.PushOwnedString(EscapeMarkdown(text))
	dst.PushString(end)
}

func mdAppendLink(dst Appender, text, url string) {
	dst.PushOwnedString("[" + EscapeMarkdown(text) + "](" + EscapeMarkdown(EscapeURL(url)) + ")")
}

func mdAppendFQCN(dst Appender, fqcn, pluginType string, links LinkProvider) {
	link := links.PluginLink(fqcn, pluginType)
	if link != "" {
		dst.PushOwnedString("[" + EscapeMarkdown(fqcn) + "](" + EscapeMarkdown(EscapeURL(link)) + ")")
		return
	}
	dst.PushOwnedString(EscapeMarkdown(fqcn))
}

// mdAppendOptionLike renders an option/return-value reference as
// `<code>name[=value]</code>`, wrapped in `<strong>` when it is a bare
// (no-value) option name, and in `<a href="...">` when the link
// provider resolves a link for it.
func mdAppendOptionLike(dst Appender, part Part, what OptionLike, links LinkProvider, currentPlugin *PluginIdentifier) {
	isCurrent := part.OptionPlugin.Equal(currentPlugin)
	link := links.PluginOptionLikeLink(what, part.OptionPlugin, part.Entrypoint, part.HasEntrypoint, part.Link, isCurrent)
	strong := what == OptionLikeOption && !part.HasValue

	dst.PushString("<code>")
	if strong {
		dst.PushString("<strong>")
	}
	if link != "" {
		dst.PushOwnedString("<a href=\"" + EscapeURLWithHTMLEscape(link) + "\">")
	}
	dst.PushOwnedString(EscapeMarkdown(part.Name))
	if part.HasValue {
		dst.PushString("\\=")
		dst.PushOwnedString(EscapeMarkdown(part.Value))
	}
	if link != "" {
		dst.PushString("</a>")
	}
	if strong {
		dst.PushString("</strong>")
	}
	dst.PushString("</code>")
}

func (f MarkdownFormatter) Append(dst Appender, part Part, links LinkProvider, currentPlugin *PluginIdentifier) {
	switch part.Kind {
	case KindText:
		dst.PushOwnedString(EscapeMarkdown(part.Text))
	case KindItalic:
		mdAppendTag(dst, "<em>", part.Text, "</em>")
	case KindBold:
		mdAppendTag(dst, "<b>", part.Text, "</b>")
	case KindCode:
		mdAppendTag(dst, "<code>", part.Text, "</code>")
	case KindModule:
		mdAppendFQCN(dst, part.FQCN, "module", links)
	case KindPlugin:
		mdAppendFQCN(dst, part.Plugin.FQCN, part.Plugin.Type, links)
	case KindURL:
		mdAppendLink(dst, part.URL, part.URL)
	case KindLink:
		mdAppendLink(dst, part.Text, part.URL)
	case KindRSTRef:
		dst.PushOwnedString(EscapeMarkdown(part.Text))
	case KindEnvVariable:
		mdAppendTag(dst, "<code>", part.EnvName, "</code>")
	case KindOptionValue:
		mdAppendTag(dst, "<code>", part.OptionValueText, "</code>")
	case KindOptionName:
		mdAppendOptionLike(dst, part, OptionLikeOption, links, currentPlugin)
	case KindReturnValue:
		mdAppendOptionLike(dst, part, OptionLikeReturnValue, links, currentPlugin)
	case KindHorizontalLine:
		dst.PushString("<hr>")
	case KindError:
		dst.PushOwnedString("<b>ERROR while parsing</b>: " + EscapeMarkdown(part.Message))
	}
}
