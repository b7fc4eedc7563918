// Package pipeline composes extraction, cleaning and structural analysis
// into a single ingestion call: raw bytes in, structured legal signals
// out. Each invocation is synchronous and self-contained; callers that
// serve multiple users run each ingestion on its own worker.
package pipeline

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/abadojack/whatlanggo"

	"github.com/juribot/juribot-go/internal/analysis"
	"github.com/juribot/juribot-go/internal/extract"
	"github.com/juribot/juribot-go/internal/textclean"
)

// languageSampleLen bounds how much of the cleaned text is fed to the
// language detector.
const languageSampleLen = 1000

// entitySampleLen bounds how much text goes to the external entity
// tagger per analysis.
const entitySampleLen = 5000

// Translator is the optional Hindi-to-English collaborator. When absent
// the pipeline only flags that translation is needed.
type Translator interface {
	Translate(ctx context.Context, text, targetLanguage string) (string, error)
}

// Pipeline wires the extractor, cleaner and analyzer together with the
// optional translator.
type Pipeline struct {
	extractor  *extract.Extractor
	cleaner    *textclean.Cleaner
	analyzer   *analysis.Analyzer
	translator Translator
}

func New(extractor *extract.Extractor, cleaner *textclean.Cleaner, analyzer *analysis.Analyzer, translator Translator) *Pipeline {
	return &Pipeline{
		extractor:  extractor,
		cleaner:    cleaner,
		analyzer:   analyzer,
		translator: translator,
	}
}

// Result is the aggregated output of one ingestion. Soft-dependency
// failures degrade single fields (EntitiesAvailable) instead of aborting
// the call.
type Result struct {
	ContentHash   string  `json:"content_hash"`
	Filename      string  `json:"filename"`
	Format        string  `json:"format"`
	Method        string  `json:"extraction_method"`
	OCRConfidence float64 `json:"ocr_confidence,omitempty"`
	OCRSkipped    bool    `json:"ocr_skipped,omitempty"`

	CleanedText string `json:"cleaned_text"`
	Language    string `json:"language"`
	Translated  bool   `json:"translated"`

	Statistics        analysis.Statistics            `json:"statistics"`
	Entities          map[analysis.Category][]string `json:"entities,omitempty"`
	EntitiesAvailable bool                           `json:"entities_available"`
	Clauses           []analysis.ClauseMatch         `json:"clauses"`
	Statutes          []string                       `json:"statutes"`
	Dates             []string                       `json:"dates"`
}

// Ingest runs the full pipeline: extract (with OCR fallback for scanned
// PDFs), clean, detect language, optionally translate, then analyze.
// Extraction-stage failures abort with a tagged error; analyzer-stage
// soft failures degrade the affected field.
func (p *Pipeline) Ingest(ctx context.Context, doc extract.RawDocument) (*Result, error) {
	extracted, err := p.extractor.Extract(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("ingest %s: %w", doc.Filename, err)
	}

	cleaned := p.cleaner.Clean(extracted.Text())
	language := DetectLanguage(cleaned)

	result := &Result{
		ContentHash:   doc.Hash(),
		Filename:      doc.Filename,
		Format:        string(doc.Format),
		Method:        string(extracted.Method),
		OCRConfidence: extracted.Confidence(),
		OCRSkipped:    extracted.OCRSkipped,
		CleanedText:   cleaned,
		Language:      language,
	}

	analysisText := cleaned
	if language != "English" && p.translator != nil {
		translated, err := p.translator.Translate(ctx, cleaned, "English")
		if err != nil {
			slog.Warn("translation failed, analyzing original text",
				"filename", doc.Filename, "error", err)
		} else {
			analysisText = translated
			result.Translated = true
		}
	}

	result.Statistics = p.analyzer.AnalyzeStructure(analysisText)
	result.Clauses = p.analyzer.DetectClauses(analysisText)
	result.Statutes = p.analyzer.DetectStatuteReferences(analysisText)
	result.Dates = p.analyzer.ExtractDates(analysisText)

	entityText := textclean.Truncate(analysisText, entitySampleLen, false)
	entities, err := p.analyzer.ExtractEntities(ctx, entityText)
	if err != nil {
		slog.Warn("entity extraction unavailable", "filename", doc.Filename, "error", err)
	} else {
		result.Entities = entities
		result.EntitiesAvailable = true
	}

	return result, nil
}

// DetectLanguage samples the start of the text and maps the detected
// language to the two the system distinguishes.
func DetectLanguage(text string) string {
	runes := []rune(text)
	if len(runes) > languageSampleLen {
		runes = runes[:languageSampleLen]
	}

	info := whatlanggo.Detect(string(runes))
	if info.Lang == whatlanggo.Hin {
		return "Hindi"
	}
	return "English"
}
