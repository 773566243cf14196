package markup

// AntsibullRSTFormatter renders paragraphs as the role-based
// reStructuredText antsibull-docs feeds to Sphinx, using the custom
// ansible-specific roles antsibull's Sphinx extension defines
// (:ansopt:, :ansretval:, :ansval:) alongside the standard ones.
type AntsibullRSTFormatter struct{}

func (AntsibullRSTFormatter) ParagraphStart() string         { return "" }
func (AntsibullRSTFormatter) ParagraphEnd() string           { return "" }
func (AntsibullRSTFormatter) ParagraphSep(multi bool) string { return "\n\n" }
func (AntsibullRSTFormatter) ParagraphEmpty(multi bool) string {
	return "\\ "
}

// rstRole wraps content in a Sphinx interpreted-text role, bracketed with
// "\ " on both sides so the role never fuses with adjacent plain text.
func rstRole(role, content string) string {
	return "\\ :" + role + ":`" + content + "`\\ "
}

// rstOptionLikeScratch builds the plugin#type:entrypoint:name=value content
// an :ansopt:/:ansretval: role body encodes, assembling it in a scratch
// Appender before draining it via AppendTo into the string EscapeRST then
// escapes as a whole.
func rstOptionLikeScratch(part Part) string {
	scratch := NewCollectorAppender()
	if part.OptionPlugin != nil {
		scratch.PushString(part.OptionPlugin.FQCN)
		scratch.PushString("#")
		scratch.PushString(part.OptionPlugin.Type)
		scratch.PushString(":")
		if part.HasEntrypoint {
			scratch.PushString(part.Entrypoint)
			scratch.PushString(":")
		}
	}
	scratch.PushString(part.Name)
	if part.HasValue {
		scratch.PushString("=")
		scratch.PushString(part.Value)
	}
	result := NewStringAppender()
	scratch.AppendTo(result)
	return result.IntoString()
}

func (f AntsibullRSTFormatter) Append(dst Appender, part Part, links LinkProvider, currentPlugin *PluginIdentifier) {
	switch part.Kind {
	case KindText:
		dst.PushOwnedString(EscapeRST(part.Text, false, false))
	case KindItalic:
		dst.PushOwnedString(rstRole("emphasis", EscapeRST(part.Text, true, false)))
	case KindBold:
		dst.PushOwnedString(rstRole("strong", EscapeRST(part.Text, true, false)))
	case KindCode:
		dst.PushOwnedString(rstRole("literal", EscapeRST(part.Text, true, false)))
	case KindModule:
		dst.PushOwnedString(rstAntsibullFQCN(part.FQCN, "module", links))
	case KindPlugin:
		dst.PushOwnedString(rstAntsibullFQCN(part.Plugin.FQCN, part.Plugin.Type, links))
	case KindURL:
		dst.PushOwnedString("`" + EscapeRST(part.URL, true, true) + " <" + part.URL + ">`__")
	case KindLink:
		dst.PushOwnedString("`" + EscapeRST(part.Text, true, true) + " <" + part.URL + ">`__")
	case KindRSTRef:
		dst.PushOwnedString(":ref:`" + EscapeRST(part.Text, true, true) + " <" + part.Ref + ">`")
	case KindEnvVariable:
		dst.PushOwnedString(rstRole("envvar", EscapeRST(part.EnvName, true, true)))
	case KindOptionValue:
		dst.PushOwnedString(rstRole("ansval", EscapeRST(part.OptionValueText, true, true)))
	case KindOptionName, KindReturnValue:
		// The antsibull Sphinx extension's :ansopt:/:ansretval: roles encode
		// the full plugin#type:entrypoint:name=value content and resolve
		// their own link at build time, so isCurrentPlugin (unlike the
		// HTML/Markdown backends) plays no part in what gets emitted here.
		role := "ansopt"
		if part.Kind == KindReturnValue {
			role = "ansretval"
		}
		dst.PushOwnedString(rstRole(role, EscapeRST(rstOptionLikeScratch(part), true, true)))
	case KindHorizontalLine:
		dst.PushString("\n\n.. raw:: html\n\n  <hr>\n\n")
	case KindError:
		dst.PushOwnedString("\\ :strong:`ERROR while parsing`\\ : " + EscapeRST(part.Message, true, true) + "\\ ")
	}
}

func rstAntsibullFQCN(fqcn, pluginType string, links LinkProvider) string {
	link := links.PluginLink(fqcn, pluginType)
	if link == "" {
		return rstRole("ref", EscapeRST(fqcn, true, true))
	}
	return rstRole("ref", EscapeRST(fqcn, true, true)+" <"+link+">")
}
