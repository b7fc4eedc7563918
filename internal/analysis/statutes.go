package analysis

import (
	"sort"
	"strings"
)

// DetectStatuteReferences finds references to named Acts and
// section/clause citations. Matches across all patterns are deduplicated
// into one set; the result is sorted for deterministic output, order
// carries no meaning.
func (a *Analyzer) DetectStatuteReferences(text string) []string {
	seen := make(map[string]struct{})

	for _, p := range a.actPatterns {
		for _, m := range p.FindAllString(text, -1) {
			seen[strings.TrimSpace(m)] = struct{}{}
		}
	}
	for _, m := range a.sectionPattern.FindAllString(text, -1) {
		seen[strings.TrimSpace(m)] = struct{}{}
	}

	refs := make([]string, 0, len(seen))
	for ref := range seen {
		refs = append(refs, ref)
	}
	sort.Strings(refs)
	return refs
}
