package textclean

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCleanOCRArtifacts(t *testing.T) {
	c := New(DefaultOptions())

	assert.Equal(t, "I was here", c.CleanOCRArtifacts("| was   here"))
	assert.Equal(t, "filed in 1992", c.CleanOCRArtifacts("filed in １９９２"))
	assert.Equal(t, `the "party" said 'yes'`, c.CleanOCRArtifacts("the “party” said ‘yes’"))
	assert.Equal(t, "a - b - c", c.CleanOCRArtifacts("a — b – c"))
}

func TestCleanOCRArtifactsPreservesLineStructure(t *testing.T) {
	c := New(DefaultOptions())

	got := c.CleanOCRArtifacts("line one\nline two\n\n\n\nline three")
	assert.Equal(t, "line one\nline two\n\nline three", got)
}

func TestRemovePageNumbers(t *testing.T) {
	c := New(DefaultOptions())

	assert.Equal(t, "Intro\nEnd", c.RemovePageNumbers("Intro\n12\nEnd"))
	assert.NotContains(t, c.RemovePageNumbers("body text\nPage 3 of 10"), "Page 3")
}

func TestRemoveHeadersFooters(t *testing.T) {
	c := New(DefaultOptions())

	header := "SHARMA AND ASSOCIATES LLP"
	lines := []string{header, "First paragraph of the deed.", header, "Second paragraph.", header, "Third paragraph.", header, "Fourth paragraph."}
	got := c.RemoveHeadersFooters(strings.Join(lines, "\n"))

	assert.NotContains(t, got, header)
	assert.Contains(t, got, "First paragraph of the deed.")
	assert.Contains(t, got, "Fourth paragraph.")
}

func TestRemoveHeadersFootersKeepsInfrequentLines(t *testing.T) {
	c := New(DefaultOptions())

	// Three occurrences is at the threshold, not over it.
	header := "SHARMA AND ASSOCIATES LLP"
	text := header + "\nbody\n" + header + "\nbody\n" + header
	assert.Contains(t, c.RemoveHeadersFooters(text), header)
}

func TestNormalizeWhitespace(t *testing.T) {
	c := New(DefaultOptions())

	assert.Equal(t, "Hello, world", c.NormalizeWhitespace("Hello ,world"))
	assert.Equal(t, "a b c", c.NormalizeWhitespace("a\tb   c"))
}

func TestStandardizeLegalTerms(t *testing.T) {
	c := New(DefaultOptions())

	got := c.StandardizeLegalTerms("Hon'ble Court referred to sec. 420 IPC")
	assert.Equal(t, "Honorable Court referred to section 420 Indian Penal Code", got)

	assert.Equal(t, "Ram versus Shyam", c.StandardizeLegalTerms("Ram vs. Shyam"))
	assert.Equal(t, "Ram versus Shyam", c.StandardizeLegalTerms("Ram v/s Shyam"))
	assert.Equal(t, "under the Code of Criminal Procedure", c.StandardizeLegalTerms("under the CrPC"))
	assert.Equal(t, "see article 14 and clause 3", c.StandardizeLegalTerms("see art. 14 and cl. 3"))
}

func TestStandardizeLegalTermsLeavesExpansionsAlone(t *testing.T) {
	c := New(DefaultOptions())

	text := "section 420 of the Indian Penal Code versus the Code of Civil Procedure"
	assert.Equal(t, text, c.StandardizeLegalTerms(text))
}

func TestCleanIsIdempotent(t *testing.T) {
	c := New(DefaultOptions())

	header := "KAPOOR LEGAL CHAMBERS NEW DELHI"
	raw := strings.Join([]string{
		header,
		"WHEREAS the | parties entered into   this deed;",
		"3",
		header,
		"sec. 299 of the IPC applies vs. the general rule.",
		"",
		"",
		"",
		header,
		"Page 7",
		"Executed on １５/08/2020 before the Hon'ble Court.",
		header,
	}, "\n")

	once := c.Clean(raw)
	twice := c.Clean(once)
	assert.Equal(t, once, twice)

	assert.NotContains(t, once, header)
	assert.Contains(t, once, "section 299 of the Indian Penal Code")
	assert.Contains(t, once, "15/08/2020")
	assert.Contains(t, once, "Honorable Court")
}
