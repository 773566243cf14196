package markup

import (
	"fmt"
	"regexp"
	"strings"
)

// Context carries the plugin an O(...)/RV(...) reference should resolve
// against when the markup text itself does not name one, and the role
// entrypoint in scope when that plugin is a role.
type Context struct {
	CurrentPlugin  *PluginIdentifier
	RoleEntrypoint string
}

// ParseOptions configures one parse call. The zero value parses with the
// full (modern) command set, non-strict, with helpful (source-quoting)
// error messages and no "where" annotation. Use NewParseOptions and its
// builder methods to customize.
type ParseOptions struct {
	onlyClassicMarkup bool
	strict            bool
	unhelpfulErrors   bool
	where             string
	hasWhere          bool
	addParagraphIndex bool
}

// NewParseOptions returns the default options.
func NewParseOptions() *ParseOptions { return &ParseOptions{} }

// OnlyClassicMarkup restricts recognized commands to the eight markup
// tags that predate escaped arguments (I, B, M, U, L, R, C, and
// HORIZONTALLINE), matching content written before the escaped-argument
// commands existed.
func (o *ParseOptions) OnlyClassicMarkup() *ParseOptions { o.onlyClassicMarkup = true; return o }

// Strict rejects unnecessarily escaped characters in modern commands'
// arguments (escaping anything other than a backslash or a closing paren)
// instead of silently accepting them.
func (o *ParseOptions) Strict() *ParseOptions { o.strict = true; return o }

// UnhelpfulErrors omits the quoted source text from diagnostics, useful
// when the source is large and repeating it in every error would be noisy.
func (o *ParseOptions) UnhelpfulErrors() *ParseOptions { o.unhelpfulErrors = true; return o }

// Where attaches a human-readable location (for example a file path) to
// every diagnostic produced by this parse.
func (o *ParseOptions) Where(where string) *ParseOptions {
	o.where = where
	o.hasWhere = true
	return o
}

// AddParagraphToWhere additionally appends the 1-based paragraph index to
// the "where" annotation when used with ParseParagraphs.
func (o *ParseOptions) AddParagraphToWhere() *ParseOptions { o.addParagraphIndex = true; return o }

func (o *ParseOptions) selectParser() *compiledParser {
	var p *compiledParser
	var err error
	if o.onlyClassicMarkup {
		p, err = getClassicParser()
	} else {
		p, err = getFullParser()
	}
	if err != nil {
		panic(fmt.Sprintf("antsibull-markup-go: command table failed to compile: %v", err))
	}
	return p
}

func formatDiagnostic(source string, start int, opts *ParseOptions, paragraphIndex int, detail string) string {
	where := ""
	if opts.hasWhere {
		where = " in " + opts.where
		if opts.addParagraphIndex {
			where += fmt.Sprintf(", paragraph %d", paragraphIndex+1)
		}
	}
	if opts.unhelpfulErrors {
		return fmt.Sprintf("While parsing at index %d%s: %s", start+1, where, detail)
	}
	return fmt.Sprintf("While parsing %q at index %d%s: %s", source, start+1, where, detail)
}

var blankLineRE = regexp.MustCompile(`\r?\n[ \t]*\r?\n`)

// splitParagraphs breaks source into paragraphs on blank lines, the same
// boundary ansible-doc and antsibull use to separate description list
// entries.
func splitParagraphs(source string) []string {
	return blankLineRE.Split(source, -1)
}

// Parse parses source as a single paragraph under ctx and opts, returning
// each produced Part alongside the exact source substring it came from.
// Content errors never surface as a Go error value: a malformed command
// becomes an inline Error Part carrying a formatted diagnostic.
func Parse(source string, ctx Context, opts *ParseOptions) []PartWithSource {
	if opts == nil {
		opts = NewParseOptions()
	}
	return parseOne(source, ctx, opts, 0)
}

// ParseWithoutSources is Parse without the source-substring bookkeeping,
// for callers that only need the resulting Parts.
func ParseWithoutSources(source string, ctx Context, opts *ParseOptions) []Part {
	return dropSources(Parse(source, ctx, opts))
}

// ParseParagraphs splits source into paragraphs on blank lines and parses
// each independently, so an unbalanced construct in one paragraph cannot
// corrupt the parse of another.
func ParseParagraphs(source string, ctx Context, opts *ParseOptions) [][]PartWithSource {
	if opts == nil {
		opts = NewParseOptions()
	}
	paragraphs := splitParagraphs(source)
	out := make([][]PartWithSource, len(paragraphs))
	for i, para := range paragraphs {
		out[i] = parseOne(para, ctx, opts, i)
	}
	return out
}

// ParseParagraphsWithoutSources is ParseParagraphs without the
// source-substring bookkeeping.
func ParseParagraphsWithoutSources(source string, ctx Context, opts *ParseOptions) [][]Part {
	paragraphs := ParseParagraphs(source, ctx, opts)
	out := make([][]Part, len(paragraphs))
	for i, para := range paragraphs {
		out[i] = dropSources(para)
	}
	return out
}

func dropSources(parts []PartWithSource) []Part {
	out := make([]Part, len(parts))
	for i, p := range parts {
		out[i] = p.Part
	}
	return out
}

func parseOne(source string, ctx Context, opts *ParseOptions, paragraphIndex int) []PartWithSource {
	p := opts.selectParser()
	var parts []PartWithSource
	pos := 0
	for {
		tok := nextToken(source, pos, p, opts.strict)
		switch tok.Kind {
		case TokenEnd:
			return parts
		case TokenText:
			parts = append(parts, PartWithSource{Part: NewText(tok.Text), Source: tok.Text})
			pos = tok.End
		case TokenError:
			msg := formatDiagnostic(source, tok.Start, opts, paragraphIndex, tok.ErrDetail)
			end := tok.End
			if end <= tok.Start {
				end = len(source)
			}
			parts = append(parts, PartWithSource{Part: NewError(msg), Source: source[tok.Start:end]})
			pos = end
		case TokenCommand:
			part, err := commandToPart(tok.Cmd, tok.Args, ctx, p)
			src := source[tok.Start:tok.End]
			if err != nil {
				msg := formatDiagnostic(source, tok.Start, opts, paragraphIndex, err.Error())
				parts = append(parts, PartWithSource{Part: NewError(msg), Source: src})
			} else {
				parts = append(parts, PartWithSource{Part: part, Source: src})
			}
			pos = tok.End
		}
	}
}

// commandToPart converts one recognized, argument-extracted command call
// into its DOM Part.
func commandToPart(cmd *command, args []string, ctx Context, p *compiledParser) (Part, error) {
	switch cmd.name {
	case "I":
		return NewItalic(args[0]), nil
	case "B":
		return NewBold(args[0]), nil
	case "C":
		return NewCode(args[0]), nil
	case "M":
		return NewModule(args[0]), nil
	case "U":
		return NewURL(args[0]), nil
	case "L":
		return NewLink(args[0], args[1]), nil
	case "R":
		return NewRSTRef(args[0], args[1]), nil
	case "HORIZONTALLINE":
		return NewHorizontalLine(), nil
	case "E":
		return NewEnvVariable(args[0]), nil
	case "V":
		return NewOptionValue(args[0]), nil
	case "P":
		pi, err := parsePluginRef(args[0], p)
		if err != nil {
			return Part{}, err
		}
		return NewPlugin(pi), nil
	case "O":
		ol, err := parseOptionLike(args[0], ctx, p)
		if err != nil {
			return Part{}, err
		}
		return NewOptionName(ol), nil
	case "RV":
		ol, err := parseOptionLike(args[0], ctx, p)
		if err != nil {
			return Part{}, err
		}
		return NewReturnValue(ol), nil
	default:
		return Part{}, fmt.Errorf("unknown command %q", cmd.name)
	}
}

// parsePluginRef parses a P(...) argument of the form "fqcn#type".
func parsePluginRef(raw string, p *compiledParser) (*PluginIdentifier, error) {
	fqcn, typ, found := strings.Cut(raw, "#")
	if !found {
		return nil, fmt.Errorf("plugin reference %q is missing '#type'", raw)
	}
	if !p.isFQCN(fqcn) {
		return nil, fmt.Errorf("%q is not a valid fully qualified collection name", fqcn)
	}
	if !p.isPluginType(typ) {
		return nil, fmt.Errorf("%q is not a valid plugin type", typ)
	}
	return &PluginIdentifier{FQCN: fqcn, Type: typ}, nil
}

// parseOptionLike parses an O(...)/RV(...) argument: an optional
// "fqcn#type:" qualified plugin prefix, or an "ignore:" escape hatch, or
// inheritance from ctx; then (for a role plugin) an optional entrypoint
// override, the option/return-value name with possible array stubs
// ("foo[bar]"), and an optional "=value" suffix.
func parseOptionLike(raw string, ctx Context, p *compiledParser) (optionLike, error) {
	namePart, value, hasValue := strings.Cut(raw, "=")

	var result optionLike
	result.Value = value
	result.HasValue = hasValue

	nameSource := namePart
	switch {
	case p.optionRefRE.MatchString(namePart):
		m := p.optionRefRE.FindStringSubmatch(namePart)
		fqcn, typ, rest := m[1], m[2], m[3]
		if !p.isFQCN(fqcn) {
			return optionLike{}, fmt.Errorf("%q is not a valid fully qualified collection name", fqcn)
		}
		if !p.isPluginType(typ) {
			return optionLike{}, fmt.Errorf("%q is not a valid plugin type", typ)
		}
		result.Plugin = &PluginIdentifier{FQCN: fqcn, Type: typ}
		nameSource = rest
	case strings.HasPrefix(namePart, "ignore:"):
		nameSource = strings.TrimPrefix(namePart, "ignore:")
	default:
		result.Plugin = ctx.CurrentPlugin
		result.Entrypoint = ctx.RoleEntrypoint
		result.HasEntrypoint = ctx.RoleEntrypoint != ""
		nameSource = namePart
	}

	if result.Plugin != nil && result.Plugin.Type == "role" {
		entrypoint, name, hasEP := strings.Cut(nameSource, ":")
		if hasEP {
			result.Entrypoint = entrypoint
			result.HasEntrypoint = true
			nameSource = name
		} else if !result.HasEntrypoint {
			return optionLike{}, fmt.Errorf("role reference %q is missing an entrypoint", namePart)
		}
	}

	if strings.ContainsAny(nameSource, "#:") {
		return optionLike{}, fmt.Errorf("option name %q must not contain '#' or ':'", nameSource)
	}

	result.Name = nameSource
	linkBase := p.arrayStubRE.ReplaceAllString(nameSource, "")
	result.Link = strings.Split(linkBase, ".")
	return result, nil
}
