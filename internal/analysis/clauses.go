package analysis

import (
	"sort"
	"strings"
)

// ClauseMatch is one located clause span. Position is the byte offset of
// the match in the analyzed text.
type ClauseMatch struct {
	Type     string `json:"type"`
	Content  string `json:"content"`
	Position int    `json:"position"`
}

// DetectClauses finds every clause-pattern match in the text and returns
// them sorted ascending by position, regardless of which pattern
// produced them.
func (a *Analyzer) DetectClauses(text string) []ClauseMatch {
	var matches []ClauseMatch

	for _, p := range a.clausePatterns {
		for _, loc := range p.re.FindAllStringIndex(text, -1) {
			matches = append(matches, ClauseMatch{
				Type:     p.clauseType,
				Content:  strings.TrimSpace(text[loc[0]:loc[1]]),
				Position: loc[0],
			})
		}
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Position < matches[j].Position
	})

	return matches
}
