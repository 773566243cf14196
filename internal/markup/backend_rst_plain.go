package markup

// PlainRSTFormatter renders paragraphs as reStructuredText using only
// roles and directives every Sphinx installation supports, for contexts
// that cannot rely on antsibull-docs' custom Sphinx extension being
// loaded. Option-like references fall back to :literal: plus a
// parenthesized English description of the plugin context, rather than
// the dedicated :ansopt:/:ansretval: roles.
type PlainRSTFormatter struct{}

func (PlainRSTFormatter) ParagraphStart() string         { return "" }
func (PlainRSTFormatter) ParagraphEnd() string           { return "" }
func (PlainRSTFormatter) ParagraphSep(multi bool) string { return "\n\n" }
func (PlainRSTFormatter) ParagraphEmpty(multi bool) string {
	return "\\ "
}

// plainOptionLikeSuffix builds the parenthesized English description that
// plain RST appends after an option-like reference's :literal: role,
// naming the plugin type, the FQCN as a :ref: role, and the entrypoint
// when present.
func plainOptionLikeSuffix(part Part, what OptionLike, links LinkProvider) string {
	if part.OptionPlugin == nil {
		return ""
	}
	word := "parameter"
	if what == OptionLikeReturnValue {
		word = "return value"
	}
	typeWord := part.OptionPlugin.Type
	switch typeWord {
	case "module", "role", "playbook":
	default:
		typeWord += " plugin"
	}
	link := links.PluginLink(part.OptionPlugin.FQCN, part.OptionPlugin.Type)
	ref := EscapeRST(part.OptionPlugin.FQCN, true, true)
	if link != "" {
		ref += " <" + link + ">"
	}
	suffix := " (" + word + " of " + typeWord + " " + rstRole("ref", ref)
	if part.HasEntrypoint {
		suffix += ", entrypoint " + part.Entrypoint
	}
	suffix += ")"
	return suffix
}

func (f PlainRSTFormatter) Append(dst Appender, part Part, links LinkProvider, currentPlugin *PluginIdentifier) {
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
		dst.PushOwnedString(plainRSTFQCN(part.FQCN, "module", links))
	case KindPlugin:
		dst.PushOwnedString(plainRSTFQCN(part.Plugin.FQCN, part.Plugin.Type, links))
	case KindURL:
		dst.PushOwnedString("`" + EscapeRST(part.URL, true, true) + " <" + part.URL + ">`__")
	case KindLink:
		dst.PushOwnedString("`" + EscapeRST(part.Text, true, true) + " <" + part.URL + ">`__")
	case KindRSTRef:
		dst.PushOwnedString(":ref:`" + EscapeRST(part.Text, true, true) + " <" + part.Ref + ">`")
	case KindEnvVariable:
		dst.PushOwnedString(rstRole("envvar", EscapeRST(part.EnvName, true, true)))
	case KindOptionValue:
		dst.PushOwnedString(rstRole("literal", EscapeRST(part.OptionValueText, true, true)))
	case KindOptionName:
		dst.PushOwnedString(rstRole("literal", EscapeRST(plainOptionLikeBody(part), true, true)) + plainOptionLikeSuffix(part, OptionLikeOption, links))
	case KindReturnValue:
		dst.PushOwnedString(rstRole("literal", EscapeRST(plainOptionLikeBody(part), true, true)) + plainOptionLikeSuffix(part, OptionLikeReturnValue, links))
	case KindHorizontalLine:
		dst.PushString("\n\n------------\n\n")
	case KindError:
		dst.PushOwnedString("\\ :strong:`ERROR while parsing`\\ : " + EscapeRST(part.Message, true, true) + "\\ ")
	}
}

func plainOptionLikeBody(part Part) string {
	if !part.HasValue {
		return part.Name
	}
	return part.Name + "=" + part.Value
}

func plainRSTFQCN(fqcn, pluginType string, links LinkProvider) string {
	link := links.PluginLink(fqcn, pluginType)
	if link == "" {
		return rstRole("literal", EscapeRST(fqcn, true, true))
	}
	return "`" + EscapeRST(fqcn, true, true) + " <" + link + ">`__"
}
