package lint

import (
	"sort"

	"github.com/ansible-community/antsibull-markup-go/internal/markup"
)

// Config holds configuration options for an Analyzer.
type Config struct {
	// IgnoreRules lists rule IDs to skip during analysis.
	IgnoreRules []string
}

// Analyzer orchestrates running lint rules against parsed paragraphs.
//
// Adapted from the teacher's internal/analyzer.Analyzer: same
// ignore-list handling and deterministic sort, retargeted from Dockerfile
// ASTs to parsed markup paragraphs (there is no per-line inline-ignore
// comment convention in this domain, so that half of the teacher's
// Analyze is dropped rather than ported).
type Analyzer struct {
	registry *Registry
	config   Config
}

// New creates an Analyzer using the given registry and configuration.
func New(registry *Registry, config Config) *Analyzer {
	return &Analyzer{registry: registry, config: config}
}

// NewWithDefaults creates an Analyzer using the default rule registry.
func NewWithDefaults(config Config) *Analyzer {
	return New(DefaultRegistry, config)
}

// Analyze runs every registered, non-ignored rule against paragraphs and
// returns the combined findings sorted by paragraph index, then rule ID.
func (a *Analyzer) Analyze(paragraphs [][]markup.PartWithSource) []Finding {
	ignored := make(map[string]bool, len(a.config.IgnoreRules))
	for _, id := range a.config.IgnoreRules {
		ignored[id] = true
	}

	var all []Finding
	for _, rule := range a.registry.All() {
		if ignored[rule.ID()] {
			continue
		}
		all = append(all, rule.Check(paragraphs)...)
	}

	sort.Slice(all, func(i, j int) bool {
		if all[i].Paragraph != all[j].Paragraph {
			return all[i].Paragraph < all[j].Paragraph
		}
		return all[i].RuleID < all[j].RuleID
	})
	return all
}

// Registry returns the rule registry used by this analyzer.
func (a *Analyzer) Registry() *Registry { return a.registry }
