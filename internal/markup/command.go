package markup

import (
	"fmt"
	"regexp"
	"sync"

	"github.com/pkg/errors"
)

// quoting distinguishes the two argument-quoting disciplines: classic
// commands do not honor backslash escapes, modern commands do.
type quoting int

const (
	quotingUnescaped quoting = iota
	quotingEscaped
)

// command is one entry of the thirteen-command table (spec §4.1).
type command struct {
	name       string
	matchText  string
	arity      int
	quoting    quoting
	classicEra bool
}

var (
	italics        = command{"I", "I(", 1, quotingUnescaped, true}
	bold           = command{"B", "B(", 1, quotingUnescaped, true}
	module         = command{"M", "M(", 1, quotingUnescaped, true}
	urlCmd         = command{"U", "U(", 1, quotingUnescaped, true}
	link           = command{"L", "L(", 2, quotingUnescaped, true}
	rstRef         = command{"R", "R(", 2, quotingUnescaped, true}
	code           = command{"C", "C(", 1, quotingUnescaped, true}
	horizontalLine = command{"HORIZONTALLINE", "HORIZONTALLINE", 0, quotingUnescaped, true}
	plugin         = command{"P", "P(", 1, quotingEscaped, false}
	envVar         = command{"E", "E(", 1, quotingEscaped, false}
	optionValue    = command{"V", "V(", 1, quotingEscaped, false}
	optionName     = command{"O", "O(", 1, quotingEscaped, false}
	returnValue    = command{"RV", "RV(", 1, quotingEscaped, false}
)

// allCommands is the full, fixed command table. No two commands may share
// the same match prefix.
var allCommands = []command{
	italics, bold, module, urlCmd, link, rstRef, code,
	horizontalLine, plugin, envVar, optionValue, optionName, returnValue,
}

// compiledParser is the compiled, process-wide read-only recognizer for
// one command set (classic-only, or full). It is built once and shared by
// every call to Parse.
type compiledParser struct {
	commandByMatch map[string]*command
	recognizer     *regexp.Regexp
	escapeOrComma  *regexp.Regexp
	escapeOrClose  *regexp.Regexp
	fqcnRE         *regexp.Regexp
	pluginTypeRE   *regexp.Regexp
	arrayStubRE    *regexp.Regexp
	optionRefRE    *regexp.Regexp
}

// compileParser builds the compiled recognizer for the given command set.
// It returns an error only for programmer mistakes: a duplicate match
// prefix, or one of the fixed built-in patterns failing to compile (which
// would indicate a bug in this package, not in caller input).
func compileParser(commands []command) (*compiledParser, error) {
	byMatch := make(map[string]*command, len(commands))
	var buf []byte
	if len(commands) == 0 {
		buf = append(buf, "x^"...) // never matches
	} else {
		buf = append(buf, '(')
		for i := range commands {
			c := &commands[i]
			if _, dup := byMatch[c.matchText]; dup {
				return nil, errors.Errorf("duplicate command %q", c.matchText)
			}
			byMatch[c.matchText] = c
			if i > 0 {
				buf = append(buf, '|')
			}
			buf = append(buf, `\b`...)
			buf = append(buf, regexp.QuoteMeta(c.matchText)...)
			if c.arity == 0 {
				buf = append(buf, `\b`...)
			}
		}
		buf = append(buf, ')')
	}

	recognizer, err := regexp.Compile(string(buf))
	if err != nil {
		return nil, errors.Wrap(err, "compiling command recognizer")
	}

	p := &compiledParser{commandByMatch: byMatch, recognizer: recognizer}

	for _, spec := range []struct {
		dst     **regexp.Regexp
		pattern string
	}{
		{&p.escapeOrComma, `\\.| *, *`},
		{&p.escapeOrClose, `\\.|\)`},
		{&p.fqcnRE, `^[a-z0-9_]+\.[a-z0-9_]+(\.[a-z0-9_]+)+$`},
		{&p.pluginTypeRE, `^[a-z_]+$`},
		{&p.arrayStubRE, `\[[^\]]*\]`},
		{&p.optionRefRE, `^([^.]+\.[^.]+\.[^#]+)#([^:]+):(.*)$`},
	} {
		re, err := regexp.Compile(spec.pattern)
		if err != nil {
			return nil, errors.Wrapf(err, "compiling regular expression %q", spec.pattern)
		}
		*spec.dst = re
	}

	return p, nil
}

func (p *compiledParser) isFQCN(s string) bool      { return p.fqcnRE.MatchString(s) }
func (p *compiledParser) isPluginType(s string) bool { return p.pluginTypeRE.MatchString(s) }

var (
	classicOnce   sync.Once
	classicParser *compiledParser
	classicErr    error

	fullOnce   sync.Once
	fullParser *compiledParser
	fullErr    error
)

func classicCommands() []command {
	out := make([]command, 0, len(allCommands))
	for _, c := range allCommands {
		if c.classicEra {
			out = append(out, c)
		}
	}
	return out
}

// getClassicParser returns the process-wide classic-markup-only compiled
// parser, compiling it on first use. Safe for concurrent first-touch.
func getClassicParser() (*compiledParser, error) {
	classicOnce.Do(func() {
		classicParser, classicErr = compileParser(classicCommands())
	})
	return classicParser, classicErr
}

// getFullParser returns the process-wide full compiled parser (all
// thirteen commands), compiling it on first use. Safe for concurrent
// first-touch.
func getFullParser() (*compiledParser, error) {
	fullOnce.Do(func() {
		fullParser, fullErr = compileParser(allCommands)
	})
	return fullParser, fullErr
}

// MustCompile forces compilation of both the classic and full command-table
// recognizers and panics if either fails. Callers do not need to call this
// explicitly — Parse and friends compile lazily on first use — but a
// program that wants to fail fast at startup (rather than on first call)
// can call it from an init path.
func MustCompile() {
	if _, err := getClassicParser(); err != nil {
		panic(fmt.Sprintf("antsibull-markup-go: %v", err))
	}
	if _, err := getFullParser(); err != nil {
		panic(fmt.Sprintf("antsibull-markup-go: %v", err))
	}
}
