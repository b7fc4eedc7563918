package analysis

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetectClausesSortedByPosition(t *testing.T) {
	a := New(nil)

	text := "WHEREAS the Buyer agrees to purchase the property; " +
		"TERMINATION of this deed requires thirty days notice."

	clauses := a.DetectClauses(text)
	require.Len(t, clauses, 2)

	assert.Equal(t, "WHEREAS", clauses[0].Type)
	assert.Equal(t, 0, clauses[0].Position)
	assert.Contains(t, clauses[0].Content, "purchase the property")

	assert.Equal(t, "TERMINATION", clauses[1].Type)
	assert.Greater(t, clauses[1].Position, clauses[0].Position)
}

func TestDetectClausesCaseInsensitive(t *testing.T) {
	a := New(nil)

	clauses := a.DetectClauses("whereas the tenant shall vacate;")
	require.Len(t, clauses, 1)
	assert.Equal(t, "WHEREAS", clauses[0].Type)
}

func TestDetectStatuteReferencesDeduplicates(t *testing.T) {
	a := New(nil)

	text := "The Indian Penal Code, 1860 applies here. " +
		"As noted above, the Indian Penal Code, 1860 also governs the second count."

	refs := a.DetectStatuteReferences(text)
	assert.Equal(t, []string{"Indian Penal Code, 1860"}, refs)
}

func TestDetectStatuteReferencesGenericActFallback(t *testing.T) {
	a := New(nil)

	refs := a.DetectStatuteReferences("registered under the Motor Vehicles Act, 1988")
	assert.Contains(t, refs, "Motor Vehicles Act, 1988")

	// The fallback only catches capitalized phrases.
	refs = a.DetectStatuteReferences("registered under the motor vehicles act")
	assert.Empty(t, refs)
}

func TestDetectStatuteReferencesSectionCitations(t *testing.T) {
	a := New(nil)

	refs := a.DetectStatuteReferences("Section 10 defines valid contracts. See also § 11(a).")
	assert.Contains(t, refs, "Section 10")
	assert.Contains(t, refs, "§ 11(a)")
}

func TestExtractDates(t *testing.T) {
	a := New(nil)

	text := "Executed on 15/08/1947 and registered on 26 January 1950. " +
		"Renewed January 26, 1950 and again on 2020-01-15. Duplicate: 15/08/1947."

	dates := a.ExtractDates(text)
	assert.Contains(t, dates, "15/08/1947")
	assert.Contains(t, dates, "26 January 1950")
	assert.Contains(t, dates, "January 26, 1950")
	assert.Contains(t, dates, "2020-01-15")

	// Duplicates collapse.
	count := 0
	for _, d := range dates {
		if d == "15/08/1947" {
			count++
		}
	}
	assert.Equal(t, 1, count)
}

func TestSplitSentences(t *testing.T) {
	got := SplitSentences("First. Second! Third? चौथा वाक्य।")
	require.Len(t, got, 4)
	assert.Equal(t, "First.", got[0])
	assert.Equal(t, "चौथा वाक्य।", got[3])
}

func TestSplitSentencesIgnoresDecimalPoints(t *testing.T) {
	got := SplitSentences("Pi is 3.14 exactly.")
	assert.Len(t, got, 1)
}

func TestAnalyzeStructure(t *testing.T) {
	a := New(nil)

	text := "Section 12 of the deed applies.\n" +
		"1. The seller agrees to transfer title.\n" +
		"2. The buyer pays the consideration.\n" +
		"WHEREAS the parties consent to these terms."

	stats := a.AnalyzeStructure(text)
	assert.True(t, stats.HasSections)
	assert.True(t, stats.HasNumbering)
	assert.True(t, stats.HasLegalFormatting)
	assert.Greater(t, stats.TotalSentences, 0)
	assert.Greater(t, stats.TotalWords, 0)
	assert.Greater(t, stats.AvgSentenceLength, 0.0)
}

type fakeTagger struct {
	spans     []TaggedSpan
	err       error
	available bool
}

func (f *fakeTagger) Tag(ctx context.Context, text string) ([]TaggedSpan, error) {
	return f.spans, f.err
}

func (f *fakeTagger) Available() bool { return f.available }

func TestExtractEntitiesBucketsAndDeduplicates(t *testing.T) {
	a := New(&fakeTagger{
		available: true,
		spans: []TaggedSpan{
			{Text: "Ram Kumar", Label: "PERSON"},
			{Text: "Ram Kumar", Label: "PERSON"},
			{Text: "Supreme Court", Label: "ORG"},
			{Text: "Delhi", Label: "GPE"},
			{Text: "Mumbai", Label: "LOC"},
			{Text: "42", Label: "CARDINAL"},
			{Text: "Rs 5000", Label: "MONEY"},
			{Text: "widget", Label: "WIDGET"},
		},
	})

	entities, err := a.ExtractEntities(context.Background(), "ignored")
	require.NoError(t, err)

	assert.Equal(t, []string{"Ram Kumar"}, entities[CategoryPerson])
	assert.Equal(t, []string{"Supreme Court"}, entities[CategoryOrganization])
	assert.ElementsMatch(t, []string{"Delhi", "Mumbai"}, entities[CategoryLocation])
	assert.Equal(t, []string{"42"}, entities[CategoryNumber])
	assert.Equal(t, []string{"Rs 5000"}, entities[CategoryMoney])
	assert.Equal(t, []string{"widget (WIDGET)"}, entities[CategoryOther])
}

func TestExtractEntitiesTaggerUnavailable(t *testing.T) {
	a := New(nil)
	_, err := a.ExtractEntities(context.Background(), "text")
	assert.ErrorIs(t, err, ErrTaggerUnavailable)

	a = New(&fakeTagger{available: false})
	_, err = a.ExtractEntities(context.Background(), "text")
	assert.ErrorIs(t, err, ErrTaggerUnavailable)

	a = New(&fakeTagger{available: true, err: errors.New("connection refused")})
	_, err = a.ExtractEntities(context.Background(), "text")
	assert.ErrorIs(t, err, ErrTaggerUnavailable)
}
