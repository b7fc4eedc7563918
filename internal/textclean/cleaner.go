package textclean

import (
	"regexp"
	"strings"
)

// Options controls the heuristic thresholds of the cleaning pipeline.
// The header/footer detector is frequency-based: any line whose trimmed
// length falls in (MinHeaderLen, MaxHeaderLen) and that recurs more than
// HeaderFooterRepeat times is treated as repeated boilerplate and dropped.
type Options struct {
	HeaderFooterRepeat int
	MinHeaderLen       int
	MaxHeaderLen       int
}

func DefaultOptions() Options {
	return Options{
		HeaderFooterRepeat: 3,
		MinHeaderLen:       5,
		MaxHeaderLen:       100,
	}
}

// Cleaner normalizes raw extracted legal text. All patterns are compiled
// once at construction; Clean and every sub-step are pure and idempotent.
type Cleaner struct {
	opts Options

	ocrFixes      *strings.Replacer
	spaceRuns     *regexp.Regexp
	newlineRuns   *regexp.Regexp
	trailingSpace *regexp.Regexp

	pageLabel *regexp.Regexp
	pageLine  *regexp.Regexp

	tabs             *regexp.Regexp
	multiSpace       *regexp.Regexp
	spaceBeforePunct *regexp.Regexp
	noSpaceAfter     *regexp.Regexp

	abbreviations []abbreviation
}

type abbreviation struct {
	pattern     *regexp.Regexp
	replacement string
}

// legalAbbreviations expands common Indian legal drafting shorthand.
// Replacements are chosen so that no expansion re-triggers any pattern,
// which keeps the full pipeline idempotent.
var legalAbbreviations = []struct {
	pattern     string
	replacement string
}{
	{`(?i)\bvs\b\.?`, "versus"},
	{`(?i)\bv/s\b`, "versus"},
	{`(?i)\bsec\b\.?`, "section"},
	{`(?i)\bart\b\.?`, "article"},
	{`(?i)\bpara\b\.?`, "paragraph"},
	{`(?i)\bcl\b\.?`, "clause"},
	{`(?i)\bhon'?ble\b`, "Honorable"},
	{`(?i)\bipc\b`, "Indian Penal Code"},
	{`(?i)\bcrpc\b`, "Code of Criminal Procedure"},
	{`(?i)\bcpc\b`, "Code of Civil Procedure"},
}

func New(opts Options) *Cleaner {
	if opts.HeaderFooterRepeat <= 0 {
		opts.HeaderFooterRepeat = 3
	}
	if opts.MaxHeaderLen <= 0 {
		opts.MaxHeaderLen = 100
	}

	c := &Cleaner{
		opts: opts,
		ocrFixes: strings.NewReplacer(
			"|", "I",
			"０", "0", "１", "1", "２", "2", "３", "3", "４", "4",
			"５", "5", "６", "6", "７", "7", "８", "8", "９", "9",
			"‘", "'", "’", "'", "`", "'",
			"“", `"`, "”", `"`, "„", `"`,
			"—", "-", "–", "-",
		),
		spaceRuns:        regexp.MustCompile(`[ \t\r\f]+`),
		newlineRuns:      regexp.MustCompile(`\n{3,}`),
		trailingSpace:    regexp.MustCompile(`(?m)[ \t]+$`),
		pageLabel:        regexp.MustCompile(`(?i)\bpage\s+\d+\b`),
		pageLine:         regexp.MustCompile(`^\s*\d+\s*$`),
		tabs:             regexp.MustCompile(`\t`),
		multiSpace:       regexp.MustCompile(` {2,}`),
		spaceBeforePunct: regexp.MustCompile(`[ \t]+([,.;:!?])`),
		noSpaceAfter:     regexp.MustCompile(`([,.;:!?])([A-Za-z])`),
	}

	for _, a := range legalAbbreviations {
		c.abbreviations = append(c.abbreviations, abbreviation{
			pattern:     regexp.MustCompile(a.pattern),
			replacement: a.replacement,
		})
	}

	return c
}

// Clean runs the full five-step pipeline. Order matters: later steps
// assume the normalization performed by earlier ones. Running Clean on
// its own output is a no-op.
func (c *Cleaner) Clean(text string) string {
	text = c.CleanOCRArtifacts(text)
	text = c.RemovePageNumbers(text)
	text = c.RemoveHeadersFooters(text)
	text = c.NormalizeWhitespace(text)
	text = c.StandardizeLegalTerms(text)
	return text
}

// CleanOCRArtifacts repairs common OCR misreads and collapses whitespace
// runs. Newlines are preserved (capped at two) so the line-based steps
// that follow still see the document's line structure.
func (c *Cleaner) CleanOCRArtifacts(text string) string {
	text = c.ocrFixes.Replace(text)
	text = c.spaceRuns.ReplaceAllString(text, " ")
	text = c.trailingSpace.ReplaceAllString(text, "")
	text = c.newlineRuns.ReplaceAllString(text, "\n\n")
	return strings.TrimSpace(text)
}

// RemovePageNumbers drops lines that are purely numeric and inline
// "Page N" labels.
func (c *Cleaner) RemovePageNumbers(text string) string {
	lines := strings.Split(text, "\n")
	kept := lines[:0]
	for _, line := range lines {
		if c.pageLine.MatchString(line) {
			continue
		}
		line = c.pageLabel.ReplaceAllString(line, "")
		kept = append(kept, strings.TrimRight(line, " \t"))
	}
	// Dropped lines may leave runs of blanks behind; re-cap them so the
	// step stays idempotent.
	return c.newlineRuns.ReplaceAllString(strings.Join(kept, "\n"), "\n\n")
}

// RemoveHeadersFooters drops every occurrence of a non-trivial line that
// recurs more often than the configured threshold. Repeated boilerplate
// is caught regardless of where it sits on the page.
func (c *Cleaner) RemoveHeadersFooters(text string) string {
	lines := strings.Split(text, "\n")

	counts := make(map[string]int)
	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		if len(trimmed) > c.opts.MinHeaderLen && len(trimmed) < c.opts.MaxHeaderLen {
			counts[trimmed]++
		}
	}

	repeated := make(map[string]bool)
	for line, n := range counts {
		if n > c.opts.HeaderFooterRepeat {
			repeated[line] = true
		}
	}

	kept := lines[:0]
	for _, line := range lines {
		if repeated[strings.TrimSpace(line)] {
			continue
		}
		kept = append(kept, line)
	}
	return c.newlineRuns.ReplaceAllString(strings.Join(kept, "\n"), "\n\n")
}

// NormalizeWhitespace converts tabs to spaces, collapses space runs and
// fixes spacing around punctuation.
func (c *Cleaner) NormalizeWhitespace(text string) string {
	text = c.tabs.ReplaceAllString(text, " ")
	text = c.multiSpace.ReplaceAllString(text, " ")
	text = c.spaceBeforePunct.ReplaceAllString(text, "$1")
	text = c.noSpaceAfter.ReplaceAllString(text, "$1 $2")
	return text
}

// StandardizeLegalTerms expands the fixed abbreviation table,
// case-insensitively. "sec. 420" becomes "section 420", "IPC" becomes
// "Indian Penal Code".
func (c *Cleaner) StandardizeLegalTerms(text string) string {
	for _, a := range c.abbreviations {
		text = a.pattern.ReplaceAllString(text, a.replacement)
	}
	return text
}
