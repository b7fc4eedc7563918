package analysis

import (
	"strings"
	"unicode/utf8"
)

// Statistics is the aggregate structural profile of a document, computed
// fresh on each call.
type Statistics struct {
	TotalCharacters    int     `json:"total_characters"`
	TotalWords         int     `json:"total_words"`
	TotalSentences     int     `json:"total_sentences"`
	AvgSentenceLength  float64 `json:"avg_sentence_length"`
	HasSections        bool    `json:"has_sections"`
	HasNumbering       bool    `json:"has_numbering"`
	HasLegalFormatting bool    `json:"has_legal_formatting"`
}

// AnalyzeStructure computes document-level counts and the three
// structural flags.
func (a *Analyzer) AnalyzeStructure(text string) Statistics {
	sentences := SplitSentences(text)
	words := strings.Fields(text)

	stats := Statistics{
		TotalCharacters:    utf8.RuneCountInString(text),
		TotalWords:         len(words),
		TotalSentences:     len(sentences),
		HasSections:        a.sectionHeading.MatchString(text),
		HasNumbering:       a.listNumbering.MatchString(text),
		HasLegalFormatting: a.legalKeywords.MatchString(text),
	}
	if len(sentences) > 0 {
		stats.AvgSentenceLength = float64(len(words)) / float64(len(sentences))
	}
	return stats
}

// SplitSentences tokenizes text into sentences. A sentence ends at
// '.', '!' or '?' followed by whitespace, or at the Devanagari danda,
// which OCR emits for Hindi passages.
func SplitSentences(text string) []string {
	var sentences []string
	var current strings.Builder

	runes := []rune(text)
	for i, r := range runes {
		current.WriteRune(r)

		switch r {
		case '.', '!', '?':
			if i+1 == len(runes) || runes[i+1] == ' ' || runes[i+1] == '\n' {
				flushSentence(&sentences, &current)
			}
		case '।': // danda
			flushSentence(&sentences, &current)
		}
	}
	flushSentence(&sentences, &current)

	return sentences
}

func flushSentence(sentences *[]string, current *strings.Builder) {
	s := strings.TrimSpace(current.String())
	if s != "" {
		*sentences = append(*sentences, s)
	}
	current.Reset()
}
