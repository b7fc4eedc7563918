package analysis

import "sort"

// ExtractDates finds date expressions in the four supported formats,
// deduplicated and sorted for deterministic output.
func (a *Analyzer) ExtractDates(text string) []string {
	seen := make(map[string]struct{})

	for _, p := range a.datePatterns {
		for _, m := range p.FindAllString(text, -1) {
			seen[m] = struct{}{}
		}
	}

	dates := make([]string, 0, len(seen))
	for d := range seen {
		dates = append(dates, d)
	}
	sort.Strings(dates)
	return dates
}
