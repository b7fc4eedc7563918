// Package analysis locates the structural legal signals inside cleaned
// document text: named entities, clause patterns, statute references,
// dates and aggregate statistics. Every operation is a stateless
// transform; pattern tables are compiled once at construction.
package analysis

import "regexp"

// Analyzer bundles the compiled pattern tables and the optional entity
// tagger. Safe for concurrent use: no call mutates shared state.
type Analyzer struct {
	tagger EntityTagger

	clausePatterns []clausePattern
	actPatterns    []*regexp.Regexp
	sectionPattern *regexp.Regexp
	datePatterns   []*regexp.Regexp

	sectionHeading *regexp.Regexp
	listNumbering  *regexp.Regexp
	legalKeywords  *regexp.Regexp
}

// New compiles the default pattern tables. The tagger is a soft
// dependency and may be nil; entity extraction then reports
// ErrTaggerUnavailable instead of failing the analysis.
func New(tagger EntityTagger) *Analyzer {
	a := &Analyzer{
		tagger:         tagger,
		sectionPattern: regexp.MustCompile(sectionCitationPattern),
		sectionHeading: regexp.MustCompile(`(?:SECTION|Section|Article|ARTICLE)\s+\d+`),
		listNumbering:  regexp.MustCompile(`(?m)^\s*\d+[.)]\s+`),
		legalKeywords:  regexp.MustCompile(`(?i)WHEREAS|PROVIDED|NOTWITHSTANDING`),
	}

	for _, p := range defaultClausePatterns {
		a.clausePatterns = append(a.clausePatterns, clausePattern{
			clauseType: p.clauseType,
			re:         regexp.MustCompile(`(?i)` + p.pattern),
		})
	}
	// Act patterns carry their own flags: the named Acts match
	// case-insensitively, the generic fallback stays case-sensitive so it
	// only catches capitalized phrases ending in "Act".
	for _, p := range defaultActPatterns {
		a.actPatterns = append(a.actPatterns, regexp.MustCompile(p))
	}
	for _, p := range defaultDatePatterns {
		a.datePatterns = append(a.datePatterns, regexp.MustCompile(`(?i)`+p))
	}

	return a
}
