package markup

import (
	"reflect"
	"strings"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

// TestParseSourceReproduction validates the source-reproduction law: the
// Source field of every emitted PartWithSource, concatenated in order,
// reproduces the exact input string byte for byte, for any input that
// contains no stray opening command markers.
func TestParseSourceReproduction(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100
	properties := gopter.NewProperties(parameters)

	properties.Property("concatenated part sources reproduce the input", prop.ForAll(
		func(s string) bool {
			parts := Parse(s, Context{}, nil)
			var rebuilt strings.Builder
			for _, p := range parts {
				rebuilt.WriteString(p.Source)
			}
			return rebuilt.String() == s
		},
		gen.AlphaString(),
	))

	properties.TestingRun(t)
}

// TestParsePlainTextRoundTrip validates that text built only from bytes no
// command recognizes parses to exactly one Text part equal to the input.
func TestParsePlainTextRoundTrip(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100
	properties := gopter.NewProperties(parameters)

	properties.Property("alphanumeric text parses to a single unchanged Text part", prop.ForAll(
		func(s string) bool {
			if s == "" {
				return true
			}
			parts := ParseWithoutSources(s, Context{}, nil)
			return len(parts) == 1 && parts[0].Kind == KindText && parts[0].Text == s
		},
		gen.AlphaString(),
	))

	properties.TestingRun(t)
}

// TestParseBackslashEscapeIdempotence validates that an already-resolved
// escaped-command argument (one with no backslashes left in it) parses to
// the same Text content whether or not Strict is set, since there is
// nothing left to flag.
func TestParseBackslashEscapeIdempotence(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 50
	properties := gopter.NewProperties(parameters)

	properties.Property("a plain alphanumeric E(...) argument is unaffected by Strict", prop.ForAll(
		func(name string) bool {
			src := "E(" + name + ")"
			relaxed := ParseWithoutSources(src, Context{}, nil)
			strict := ParseWithoutSources(src, Context{}, NewParseOptions().Strict())
			if len(relaxed) != 1 || len(strict) != 1 {
				return false
			}
			return reflect.DeepEqual(relaxed[0], strict[0])
		},
		gen.AlphaString(),
	))

	properties.TestingRun(t)
}
