// Package advisory turns pipeline output into LLM-backed guidance:
// structured document reviews, translations, simulated case law lookups
// and cost estimates for Indian legal matters.
package advisory

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/juribot/juribot-go/internal/llm"
	"github.com/juribot/juribot-go/internal/textclean"
)

const (
	defaultMaxDocumentChars = 15000

	systemPrompt = "You are JuriBot, an AI legal advisor for Indian law. " +
		"Provide clear, helpful responses to legal queries. " +
		"Always remind users that this is informational only."
)

type Service struct {
	gateway llm.Gateway
	logger  *slog.Logger

	// documents longer than this are truncated before the advisory call
	maxDocumentChars int
}

func NewService(gateway llm.Gateway, maxDocumentChars int, logger *slog.Logger) *Service {
	if maxDocumentChars <= 0 {
		maxDocumentChars = defaultMaxDocumentChars
	}
	return &Service{
		gateway:          gateway,
		logger:           logger,
		maxDocumentChars: maxDocumentChars,
	}
}

// AnalyzeDocument asks the model for a structured review of a cleaned
// document: key clauses, compliance concerns, a plain English summary,
// relevant Indian statutes and an advisory note.
func (s *Service) AnalyzeDocument(ctx context.Context, documentText, language string) (string, error) {
	if language == "" {
		language = "English"
	}
	text := textclean.Truncate(documentText, s.maxDocumentChars, true)

	prompt := fmt.Sprintf(`Analyze this legal document and provide structured output in the following format:

## KEY CLAUSES
List and describe the main legal clauses with their purpose.

## COMPLIANCE ANALYSIS
Identify any compliance issues, missing terms, or legal concerns.

## SUMMARY
Provide a clear, plain English summary of the document (3-5 sentences).

## RELEVANT LEGAL REFERENCES
List applicable Indian Acts, sections, or notable case law that may be relevant.

## ADVISORY NOTE
Provide practical advisory points (informational only, not formal legal advice).

Document Language: %s
Document Text:
%s

Provide detailed, actionable insights specific to Indian legal context.`, language, text)

	resp, err := s.gateway.Complete(ctx, llm.CompletionRequest{
		System: systemPrompt,
		Prompt: prompt,
	})
	if err != nil {
		return "", fmt.Errorf("analyze document: %w", err)
	}

	s.logger.Info("document advisory generated",
		"provider", resp.Provider,
		"input_tokens", resp.InputTokens,
		"output_tokens", resp.OutputTokens,
		"latency_ms", resp.LatencyMs)

	return resp.Content, nil
}

// Translate renders text into the target language while keeping legal
// terminology intact. It satisfies the pipeline's Translator interface.
func (s *Service) Translate(ctx context.Context, text, targetLanguage string) (string, error) {
	if targetLanguage == "" {
		targetLanguage = "English"
	}

	prompt := fmt.Sprintf(`Translate the following text to %s.
Maintain legal terminology accuracy. Return only the translated text.

Text:
%s`, targetLanguage, text)

	resp, err := s.gateway.Complete(ctx, llm.CompletionRequest{
		System: systemPrompt,
		Prompt: prompt,
	})
	if err != nil {
		return "", fmt.Errorf("translate to %s: %w", targetLanguage, err)
	}
	return strings.TrimSpace(resp.Content), nil
}

// SimulateCaseSearch produces representative Indian case law for a query.
// Used as a fallback when the vector index has no indexed cases.
func (s *Service) SimulateCaseSearch(ctx context.Context, query string) (string, error) {
	prompt := fmt.Sprintf(`You are JuriBot's case law simulation engine.
Based on the following query, simulate 3-5 relevant Indian legal cases.

For each case, provide:
- Case Title (Party A vs Party B)
- Year
- Court
- Relevant Act/Section
- Key Finding (2-3 sentences)
- Why it's relevant to the query

Format the output as a structured list that's easy to parse.

Query: %s

Note: Indicate that these are simulated/representative results for demonstration purposes.`, query)

	resp, err := s.gateway.Complete(ctx, llm.CompletionRequest{Prompt: prompt})
	if err != nil {
		return "", fmt.Errorf("simulate case search: %w", err)
	}
	return resp.Content, nil
}

// CostRequest describes a matter for fee estimation.
type CostRequest struct {
	CaseType   string `json:"case_type"`
	Location   string `json:"location"`
	Complexity string `json:"complexity"`
	Details    string `json:"details,omitempty"`
}

// EstimateCosts produces a cost range and breakdown for a legal matter
// based on typical Indian market rates.
func (s *Service) EstimateCosts(ctx context.Context, req CostRequest) (string, error) {
	prompt := fmt.Sprintf(`You are JuriBot's legal cost estimation advisor.
Provide a realistic cost estimation for legal services in India.

Case Details:
- Type: %s
- Location: %s
- Complexity: %s
- Additional Details: %s

Provide:
1. Estimated Cost Range (in INR)
2. Cost Breakdown (lawyer fees, court fees, documentation, etc.)
3. Factors Affecting Cost
4. Tips to Optimize Costs
5. Typical Timeline

Format as structured sections. Base estimates on typical Indian legal market rates.`,
		req.CaseType, req.Location, req.Complexity, req.Details)

	resp, err := s.gateway.Complete(ctx, llm.CompletionRequest{Prompt: prompt})
	if err != nil {
		return "", fmt.Errorf("estimate costs: %w", err)
	}
	return resp.Content, nil
}
