// Package markup parses the ansible-doc inline markup mini-language and
// renders parsed paragraphs into several documentation formats.
package markup

import "fmt"

// PluginIdentifier identifies a plugin by its fully qualified collection
// name and plugin type.
//
// The list of valid plugin types depends on the ansible-core version.
// Possible values include become, cache, callback, cliconf, connection,
// httpapi, inventory, lookup, netconf, shell, vars, module, strategy, test,
// filter, and role.
type PluginIdentifier struct {
	FQCN string
	Type string
}

// Equal reports whether two plugin identifiers refer to the same plugin.
// Equality is by value, not by identity, so a PluginIdentifier copied out
// of a Context compares equal to a freshly parsed one with the same fields.
func (p *PluginIdentifier) Equal(other *PluginIdentifier) bool {
	if p == nil || other == nil {
		return p == other
	}
	return p.FQCN == other.FQCN && p.Type == other.Type
}

func (p *PluginIdentifier) String() string {
	if p == nil {
		return "<nil>"
	}
	return fmt.Sprintf("%s:%s", p.FQCN, p.Type)
}

// Kind discriminates the variant held by a Part.
type Kind int

const (
	KindText Kind = iota
	KindItalic
	KindBold
	KindCode
	KindModule
	KindPlugin
	KindURL
	KindLink
	KindRSTRef
	KindOptionName
	KindReturnValue
	KindOptionValue
	KindEnvVariable
	KindHorizontalLine
	KindError
)

func (k Kind) String() string {
	switch k {
	case KindText:
		return "text"
	case KindItalic:
		return "italic"
	case KindBold:
		return "bold"
	case KindCode:
		return "code"
	case KindModule:
		return "module"
	case KindPlugin:
		return "plugin"
	case KindURL:
		return "url"
	case KindLink:
		return "link"
	case KindRSTRef:
		return "rst-ref"
	case KindOptionName:
		return "option-name"
	case KindReturnValue:
		return "return-value"
	case KindOptionValue:
		return "option-value"
	case KindEnvVariable:
		return "env-variable"
	case KindHorizontalLine:
		return "horizontal-line"
	case KindError:
		return "error"
	default:
		return "unknown"
	}
}

// Part is a single element of a parsed paragraph. Exactly the fields
// relevant to Kind are populated; the rest are left at their zero value.
// Part is a closed tagged variant: every backend must switch over Kind
// exhaustively, and adding a Kind forces every backend to be revisited.
type Part struct {
	Kind Kind

	// Text, Italic, Bold, Code, RSTRef.Text, Link.Text
	Text string

	// Module
	FQCN string

	// Plugin
	Plugin *PluginIdentifier

	// URL, Link.URL
	URL string

	// RSTRef
	Ref string

	// OptionName, ReturnValue
	OptionPlugin  *PluginIdentifier
	Entrypoint    string
	HasEntrypoint bool
	Link          []string
	Name          string
	Value         string
	HasValue      bool

	// OptionValue
	OptionValueText string

	// EnvVariable
	EnvName string

	// Error
	Message string
}

// NewText builds a literal text part. Text is always a direct slice of the
// input (zero-copy); other string-typed fields may be borrowed or owned.
func NewText(text string) Part { return Part{Kind: KindText, Text: text} }

// NewItalic builds an italic inline-style part.
func NewItalic(text string) Part { return Part{Kind: KindItalic, Text: text} }

// NewBold builds a bold inline-style part.
func NewBold(text string) Part { return Part{Kind: KindBold, Text: text} }

// NewCode builds a code (teletype) inline-style part.
func NewCode(text string) Part { return Part{Kind: KindCode, Text: text} }

// NewModule builds a link-to-module-by-FQCN part.
func NewModule(fqcn string) Part { return Part{Kind: KindModule, FQCN: fqcn} }

// NewPlugin builds a link-to-plugin part.
func NewPlugin(plugin *PluginIdentifier) Part { return Part{Kind: KindPlugin, Plugin: plugin} }

// NewURL builds a bare URL part.
func NewURL(url string) Part { return Part{Kind: KindURL, URL: url} }

// NewLink builds a labeled hyperlink part.
func NewLink(text, url string) Part { return Part{Kind: KindLink, Text: text, URL: url} }

// NewRSTRef builds a cross-reference-by-anchor part.
func NewRSTRef(text, ref string) Part { return Part{Kind: KindRSTRef, Text: text, Ref: ref} }

// NewHorizontalLine builds the singleton horizontal-line part.
func NewHorizontalLine() Part { return Part{Kind: KindHorizontalLine} }

// NewEnvVariable builds an environment-variable reference part.
func NewEnvVariable(name string) Part { return Part{Kind: KindEnvVariable, EnvName: name} }

// NewOptionValue builds a standalone option-value-literal part.
func NewOptionValue(value string) Part { return Part{Kind: KindOptionValue, OptionValueText: value} }

// NewError builds an inline error part carrying a formatted diagnostic.
func NewError(message string) Part { return Part{Kind: KindError, Message: message} }

// optionLike holds the fields shared by OptionName and ReturnValue parts,
// per spec: link is name with every array stub removed, then split on ".".
type optionLike struct {
	Plugin        *PluginIdentifier
	Entrypoint    string
	HasEntrypoint bool
	Link          []string
	Name          string
	Value         string
	HasValue      bool
}

// NewOptionName builds an option-reference part.
func NewOptionName(o optionLike) Part {
	return Part{
		Kind:          KindOptionName,
		OptionPlugin:  o.Plugin,
		Entrypoint:    o.Entrypoint,
		HasEntrypoint: o.HasEntrypoint,
		Link:          o.Link,
		Name:          o.Name,
		Value:         o.Value,
		HasValue:      o.HasValue,
	}
}

// NewReturnValue builds a return-value-reference part.
func NewReturnValue(o optionLike) Part {
	return Part{
		Kind:          KindReturnValue,
		OptionPlugin:  o.Plugin,
		Entrypoint:    o.Entrypoint,
		HasEntrypoint: o.HasEntrypoint,
		Link:          o.Link,
		Name:          o.Name,
		Value:         o.Value,
		HasValue:      o.HasValue,
	}
}

// PartWithSource pairs a DOM part with the exact input substring that
// produced it, so a caller can replay or highlight the original markup.
type PartWithSource struct {
	Part   Part
	Source string
}
