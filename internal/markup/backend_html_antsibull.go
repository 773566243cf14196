package markup

import "fmt"

// AntsibullHTMLFormatter renders paragraphs as the CSS-classed HTML
// antsibull-docs embeds in its generated collection documentation pages.
type AntsibullHTMLFormatter struct{}

func (AntsibullHTMLFormatter) ParagraphStart() string            { return "<p>" }
func (AntsibullHTMLFormatter) ParagraphEnd() string              { return "</p>" }
func (AntsibullHTMLFormatter) ParagraphSep(multi bool) string    { return "" }
func (AntsibullHTMLFormatter) ParagraphEmpty(multi bool) string  { return "" }

func antsibullAppendLink(dst Appender, text, url string) {
	dst.PushOwnedString("<a href='" + EscapeURLWithHTMLEscape(url) + "'>")
	dst.PushOwnedString(EscapeHTML(text))
	dst.PushString("</a>")
}

func antsibullAppendFQCN(dst Appender, fqcn, pluginType string, links LinkProvider) {
	link := links.PluginLink(fqcn, pluginType)
	if link != "" {
		dst.PushOwnedString("<a class='module' href='" + EscapeURLWithHTMLEscape(link) + "'>")
		dst.PushOwnedString(EscapeHTML(fqcn))
		dst.PushString("</a>")
		return
	}
	dst.PushOwnedString("<span class='module'>" + EscapeHTML(fqcn) + "</span>")
}

func antsibullAppendOptionLike(dst Appender, part Part, what OptionLike, links LinkProvider, currentPlugin *PluginIdentifier) {
	class := "ansible-option"
	if what == OptionLikeReturnValue {
		class = "ansible-return-value"
	}
	isCurrent := part.OptionPlugin.Equal(currentPlugin)
	link := links.PluginOptionLikeLink(what, part.OptionPlugin, part.Entrypoint, part.HasEntrypoint, part.Link, isCurrent)

	renderedName := EscapeHTML(part.Name)
	body := fmt.Sprintf("<span class='%s'>%s</span>", class, renderedName)
	if !part.HasValue {
		body = "<strong>" + body + "</strong>"
	} else {
		body += "=<span class='ansible-option-value'>" + EscapeHTML(part.Value) + "</span>"
	}

	if link == "" {
		dst.PushOwnedString(body)
		return
	}
	dst.PushOwnedString("<span class=\"std std-ref\"><span class=\"pre\"><a href='" + EscapeURLWithHTMLEscape(link) + "'>")
	dst.PushOwnedString(body)
	dst.PushString("</a></span></span>")
}

func (f AntsibullHTMLFormatter) Append(dst Appender, part Part, links LinkProvider, currentPlugin *PluginIdentifier) {
	switch part.Kind {
	case KindText:
		dst.PushOwnedString(EscapeHTML(part.Text))
	case KindItalic:
		dst.PushOwnedString("<em>" + EscapeHTML(part.Text) + "</em>")
	case KindBold:
		dst.PushOwnedString("<b>" + EscapeHTML(part.Text) + "</b>")
	case KindCode:
		dst.PushOwnedString("<code class='docutils literal notranslate'>" + EscapeHTML(part.Text) + "</code>")
	case KindModule:
		antsibullAppendFQCN(dst, part.FQCN, "module", links)
	case KindPlugin:
		antsibullAppendFQCN(dst, part.Plugin.FQCN, part.Plugin.Type, links)
	case KindURL:
		antsibullAppendLink(dst, part.URL, part.URL)
	case KindLink:
		antsibullAppendLink(dst, part.Text, part.URL)
	case KindRSTRef:
		dst.PushOwnedString("<span class='module'>" + EscapeHTML(part.Text) + "</span>")
	case KindEnvVariable:
		dst.PushOwnedString("<code class=\"xref std std-envvar literal notranslate\">" + EscapeHTML(part.EnvName) + "</code>")
	case KindOptionValue:
		dst.PushOwnedString("<code class=\"ansible-value literal notranslate\">" + EscapeHTML(part.OptionValueText) + "</code>")
	case KindOptionName:
		antsibullAppendOptionLike(dst, part, OptionLikeOption, links, currentPlugin)
	case KindReturnValue:
		antsibullAppendOptionLike(dst, part, OptionLikeReturnValue, links, currentPlugin)
	case KindHorizontalLine:
		dst.PushString("<hr/>")
	case KindError:
		dst.PushOwnedString("<span class=\"error\">ERROR while parsing: " + EscapeHTML(part.Message) + "</span>")
	}
}
