package markup

// PlainHTMLFormatter renders paragraphs as minimal HTML, with no CSS
// classes, for contexts that embed the rendered markup in documents they
// style independently.
type PlainHTMLFormatter struct{}

func (PlainHTMLFormatter) ParagraphStart() string           { return "<p>" }
func (PlainHTMLFormatter) ParagraphEnd() string             { return "</p>" }
func (PlainHTMLFormatter) ParagraphSep(multi bool) string   { return "" }
func (PlainHTMLFormatter) ParagraphEmpty(multi bool) string { return "" }

func plainAppendLink(dst Appender, text, url string) {
	dst.PushOwnedString("<a href='" + EscapeURLWithHTMLEscape(url) + "'>")
	dst.PushOwnedString(EscapeHTML(text))
	dst.PushString("</a>")
}

func plainAppendFQCN(dst Appender, fqcn, pluginType string, links LinkProvider) {
	link := links.PluginLink(fqcn, pluginType)
	if link != "" {
		plainAppendLink(dst, fqcn, link)
		return
	}
	dst.PushOwnedString("<span>" + EscapeHTML(fqcn) + "</span>")
}

func plainAppendOptionLike(dst Appender, part Part, what OptionLike, links LinkProvider, currentPlugin *PluginIdentifier) {
	body := EscapeHTML(part.Name)
	if part.HasValue {
		body += "=" + EscapeHTML(part.Value)
	}
	body = "<code>" + body + "</code>"
	if !part.HasValue {
		body = "<strong>" + body + "</strong>"
	}
	isCurrent := part.OptionPlugin.Equal(currentPlugin)
	link := links.PluginOptionLikeLink(what, part.OptionPlugin, part.Entrypoint, part.HasEntrypoint, part.Link, isCurrent)
	if link == "" {
		dst.PushOwnedString(body)
		return
	}
	dst.PushOwnedString("<a href='" + EscapeURLWithHTMLEscape(link) + "'>" + body + "</a>")
}

func (f PlainHTMLFormatter) Append(dst Appender, part Part, links LinkProvider, currentPlugin *PluginIdentifier) {
	switch part.Kind {
	case KindText:
		dst.PushOwnedString(EscapeHTML(part.Text))
	case KindItalic:
		dst.PushOwnedString("<i>" + EscapeHTML(part.Text) + "</i>")
	case KindBold:
		dst.PushOwnedString("<b>" + EscapeHTML(part.Text) + "</b>")
	case KindCode:
		dst.PushOwnedString("<code>" + EscapeHTML(part.Text) + "</code>")
	case KindModule:
		plainAppendFQCN(dst, part.FQCN, "module", links)
	case KindPlugin:
		plainAppendFQCN(dst, part.Plugin.FQCN, part.Plugin.Type, links)
	case KindURL:
		plainAppendLink(dst, part.URL, part.URL)
	case KindLink:
		plainAppendLink(dst, part.Text, part.URL)
	case KindRSTRef:
		dst.PushOwnedString("<span>" + EscapeHTML(part.Text) + "</span>")
	case KindEnvVariable:
		dst.PushOwnedString("<code>" + EscapeHTML(part.EnvName) + "</code>")
	case KindOptionValue:
		dst.PushOwnedString("<code>" + EscapeHTML(part.OptionValueText) + "</code>")
	case KindOptionName:
		plainAppendOptionLike(dst, part, OptionLikeOption, links, currentPlugin)
	case KindReturnValue:
		plainAppendOptionLike(dst, part, OptionLikeReturnValue, links, currentPlugin)
	case KindHorizontalLine:
		dst.PushString("<hr>")
	case KindError:
		dst.PushOwnedString("<span class=\"error\">ERROR while parsing: " + EscapeHTML(part.Message) + "</span>")
	}
}
