package markup

// OptionLike distinguishes which of the two option-like Part kinds a
// LinkProvider is being asked to resolve a link for.
type OptionLike int

const (
	OptionLikeOption OptionLike = iota
	OptionLikeReturnValue
)

// LinkProvider resolves the target URL (or cross-reference anchor) a
// backend should emit for a Module/Plugin/OptionName/ReturnValue part. An
// empty return means "no link available"; the backend then renders the
// bare name.
type LinkProvider interface {
	// PluginLink returns the link for a plugin reference (Module or
	// Plugin part). fqcn is always set; pluginType is "module" for a
	// Module part made from the quick M(...) syntax.
	PluginLink(fqcn, pluginType string) string

	// PluginOptionLikeLink returns the link for an option name or return
	// value reference. plugin may be nil if the part did not resolve to
	// any plugin context. isCurrentPlugin is true iff plugin equals (by
	// value) the plugin the page being rendered is about — the single
	// currentPlugin value the caller passed to AppendParagraph(s) for
	// this whole render — letting a provider shorten the link it would
	// otherwise need to fully qualify.
	PluginOptionLikeLink(what OptionLike, plugin *PluginIdentifier, entrypoint string, hasEntrypoint bool, link []string, isCurrentPlugin bool) string
}

// NoLinkProvider never produces a link; every Module/Plugin/OptionName/
// ReturnValue part renders as plain, unlinked text.
type NoLinkProvider struct{}

func (NoLinkProvider) PluginLink(fqcn, pluginType string) string { return "" }
func (NoLinkProvider) PluginOptionLikeLink(what OptionLike, plugin *PluginIdentifier, entrypoint string, hasEntrypoint bool, link []string, isCurrentPlugin bool) string {
	return ""
}

// Formatter is one rendering backend: given a Part, a place to resolve
// links, the plugin currently in scope (nil if none), and an Appender to
// write into, it appends this part's rendering. Implementations must
// handle every Kind.
type Formatter interface {
	Append(dst Appender, part Part, links LinkProvider, currentPlugin *PluginIdentifier)

	// ParagraphStart/End/Sep/Empty are the strings this backend wraps
	// around a paragraph's rendered content, emitted between consecutive
	// paragraphs and in place of an empty one, respectively.
	ParagraphStart() string
	ParagraphEnd() string
	ParagraphSep(multiParagraph bool) string
	ParagraphEmpty(multiParagraph bool) string
}

// AppendPart renders one part into dst, resolving its link (if any)
// through links. currentPlugin is passed on to the backend, which uses it
// only to tell links whether an OptionName/ReturnValue part's plugin is
// the one already in scope.
func AppendPart(dst Appender, f Formatter, part Part, links LinkProvider, currentPlugin *PluginIdentifier) {
	f.Append(dst, part, links, currentPlugin)
}

// AppendParagraph renders every part of one paragraph in order into dst.
// currentPlugin is the plugin the page being rendered is about (nil if
// none) — a single value supplied by the caller for the whole call, not
// something this function tracks or reassigns from the parts it
// encounters. Every part is compared against this same value to decide
// whether it is a self-reference to the page's own plugin.
func AppendParagraph(dst Appender, f Formatter, parts []Part, links LinkProvider, currentPlugin *PluginIdentifier) {
	for _, part := range parts {
		f.Append(dst, part, links, currentPlugin)
	}
}

// AppendParagraphs renders a sequence of paragraphs into dst, bracketing
// every paragraph (including an empty one) with the backend's paragraph
// start/end markers, per §4.7 and §8 ("rendering yields par_empty
// bracketed by par_start/par_end"), and separating consecutive paragraph
// invocations with its paragraph separator. currentPlugin is forwarded
// unchanged to every paragraph.
func AppendParagraphs(dst Appender, f Formatter, paragraphs [][]Part, links LinkProvider, currentPlugin *PluginIdentifier) {
	multi := len(paragraphs) > 1
	if len(paragraphs) == 0 {
		paragraphs = [][]Part{nil}
	}
	for i, paragraph := range paragraphs {
		if i > 0 {
			dst.PushString(f.ParagraphSep(multi))
		}
		dst.PushString(f.ParagraphStart())
		if len(paragraph) == 0 {
			dst.PushString(f.ParagraphEmpty(multi))
		} else {
			AppendParagraph(dst, f, paragraph, links, currentPlugin)
		}
		dst.PushString(f.ParagraphEnd())
	}
}
