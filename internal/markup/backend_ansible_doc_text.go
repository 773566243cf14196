package markup

import "fmt"

// AnsibleDocTextFormatter renders paragraphs as the plain terminal text
// `ansible-doc` prints: no markup survives except the light conventions
// ansible-doc's own console formatter recognizes (*bold*, `code', and a
// bracketed [fqcn] for plugin references).
type AnsibleDocTextFormatter struct{}

func (AnsibleDocTextFormatter) ParagraphStart() string { return "" }
func (AnsibleDocTextFormatter) ParagraphEnd() string   { return "" }
func (AnsibleDocTextFormatter) ParagraphSep(multi bool) string {
	return "\n\n"
}
func (AnsibleDocTextFormatter) ParagraphEmpty(multi bool) string { return "" }

func (f AnsibleDocTextFormatter) Append(dst Appender, part Part, links LinkProvider, currentPlugin *PluginIdentifier) {
	switch part.Kind {
	case KindText:
		dst.PushString(part.Text)
	case KindItalic:
		dst.PushOwnedString("`" + part.Text + "'")
	case KindBold:
		dst.PushOwnedString("*" + part.Text + "*")
	case KindCode:
		dst.PushOwnedString("`" + part.Text + "'")
	case KindModule:
		dst.PushOwnedString("[" + part.FQCN + "]")
	case KindPlugin:
		dst.PushOwnedString("[" + part.Plugin.FQCN + "]")
	case KindURL:
		dst.PushString(part.URL)
	case KindLink:
		dst.PushOwnedString(part.Text + " <" + part.URL + ">")
	case KindRSTRef:
		dst.PushString(part.Text)
	case KindEnvVariable:
		dst.PushOwnedString("`" + part.EnvName + "'")
	case KindOptionValue:
		dst.PushOwnedString("`" + part.OptionValueText + "'")
	case KindOptionName:
		appendAnsibleDocOptionLike(dst, part, OptionLikeOption)
	case KindReturnValue:
		appendAnsibleDocOptionLike(dst, part, OptionLikeReturnValue)
	case KindHorizontalLine:
		dst.PushString("\n-------------\n")
	case KindError:
		dst.PushOwnedString("[[ERROR while parsing: " + part.Message + "]]")
	}
}

// appendAnsibleDocOptionLike renders an option/return-value reference as
// `name[=value]' followed, when the part carries plugin context, by a
// parenthesized "of TYPE [plugin] FQCN[, ENTRYPOINT entrypoint]" suffix.
// "plugin" is dropped for module, role, and playbook types, whose types
// already read naturally without it.
func appendAnsibleDocOptionLike(dst Appender, part Part, what OptionLike) {
	out := "`" + part.Name
	if part.HasValue {
		out += "=" + part.Value
	}
	out += "'"
	if part.OptionPlugin != nil {
		typeWord := part.OptionPlugin.Type
		switch typeWord {
		case "module", "role", "playbook":
			// no extra "plugin" noun
		default:
			typeWord = typeWord + " plugin"
		}
		out += fmt.Sprintf(" (of %s %s", typeWord, part.OptionPlugin.FQCN)
		if part.HasEntrypoint {
			out += fmt.Sprintf(", %s entrypoint", part.Entrypoint)
		}
		out += ")"
	}
	dst.PushOwnedString(out)
}
