// Package caselaw answers precedent queries against a pgvector index of
// Indian judgments, falling back to LLM-generated representative cases
// when the index is empty or embeddings are unavailable.
package caselaw

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/juribot/juribot-go/internal/llm"
)

// Simulator produces representative case law when the index cannot
// answer a query.
type Simulator interface {
	SimulateCaseSearch(ctx context.Context, query string) (string, error)
}

type Service struct {
	store     Store
	gateway   llm.Gateway
	simulator Simulator
	logger    *slog.Logger
}

func NewService(store Store, gateway llm.Gateway, simulator Simulator, logger *slog.Logger) *Service {
	return &Service{
		store:     store,
		gateway:   gateway,
		simulator: simulator,
		logger:    logger,
	}
}

// Response carries either indexed matches or a simulated answer.
type Response struct {
	Query     string         `json:"query"`
	Results   []SearchResult `json:"results,omitempty"`
	Simulated string         `json:"simulated,omitempty"`
	Source    string         `json:"source"` // "index" or "simulation"
}

// Search embeds the query and runs a similarity search over the indexed
// judgments. When nothing is indexed, or embeddings fail, it falls back
// to the simulator.
func (s *Service) Search(ctx context.Context, query string, topK int) (*Response, error) {
	resp := &Response{Query: query}

	results, err := s.searchIndex(ctx, query, topK)
	if err != nil {
		s.logger.Warn("index search failed, falling back to simulation",
			"query", query, "error", err)
	}
	if len(results) > 0 {
		resp.Results = results
		resp.Source = "index"
		return resp, nil
	}

	if s.simulator == nil {
		return nil, fmt.Errorf("case law search: no indexed cases and no simulator configured")
	}

	simulated, err := s.simulator.SimulateCaseSearch(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("simulate case search: %w", err)
	}
	resp.Simulated = simulated
	resp.Source = "simulation"
	return resp, nil
}

func (s *Service) searchIndex(ctx context.Context, query string, topK int) ([]SearchResult, error) {
	if !s.gateway.HasEmbeddings() {
		return nil, nil
	}

	n, err := s.store.Count(ctx)
	if err != nil {
		return nil, err
	}
	if n == 0 {
		return nil, nil
	}

	vecs, err := s.gateway.Embed(ctx, []string{query})
	if err != nil {
		return nil, fmt.Errorf("embed query: %w", err)
	}
	if len(vecs) == 0 {
		return nil, fmt.Errorf("embed query: empty response")
	}
	if len(vecs[0]) != EmbeddingDim {
		return nil, fmt.Errorf("embed query: provider returned %d-dimensional vector, index stores %d", len(vecs[0]), EmbeddingDim)
	}

	return s.store.SimilaritySearch(ctx, vecs[0], SearchOptions{TopK: topK})
}

// Index embeds case summaries and upserts them into the store.
func (s *Service) Index(ctx context.Context, cases []Case) error {
	if len(cases) == 0 {
		return nil
	}
	if !s.gateway.HasEmbeddings() {
		return fmt.Errorf("index cases: no embedding provider configured")
	}

	texts := make([]string, len(cases))
	for i, c := range cases {
		texts[i] = c.Title + "\n" + c.Summary
	}

	vecs, err := s.gateway.Embed(ctx, texts)
	if err != nil {
		return fmt.Errorf("embed cases: %w", err)
	}
	if len(vecs) != len(cases) {
		return fmt.Errorf("embed cases: got %d embeddings for %d cases", len(vecs), len(cases))
	}

	for i := range cases {
		if len(vecs[i]) != EmbeddingDim {
			return fmt.Errorf("embed cases: provider returned %d-dimensional vectors, index stores %d", len(vecs[i]), EmbeddingDim)
		}
		cases[i].Embedding = vecs[i]
	}

	if err := s.store.Upsert(ctx, cases); err != nil {
		return fmt.Errorf("upsert cases: %w", err)
	}

	s.logger.Info("cases indexed", "count", len(cases))
	return nil
}
