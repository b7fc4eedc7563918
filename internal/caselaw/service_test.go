package caselaw

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/juribot/juribot-go/internal/llm"
)

type fakeStore struct {
	count    int
	results  []SearchResult
	upserted []Case
}

func (f *fakeStore) Upsert(ctx context.Context, cases []Case) error {
	f.upserted = append(f.upserted, cases...)
	return nil
}

func (f *fakeStore) SimilaritySearch(ctx context.Context, query []float32, opts SearchOptions) ([]SearchResult, error) {
	return f.results, nil
}

func (f *fakeStore) Count(ctx context.Context) (int, error) { return f.count, nil }

type fakeGateway struct {
	embeddings bool
	dim        int
}

func (f *fakeGateway) Complete(ctx context.Context, req llm.CompletionRequest) (*llm.CompletionResponse, error) {
	return &llm.CompletionResponse{Content: "ok"}, nil
}

func (f *fakeGateway) Embed(ctx context.Context, input []string) ([][]float32, error) {
	dim := f.dim
	if dim == 0 {
		dim = EmbeddingDim
	}
	out := make([][]float32, len(input))
	for i := range out {
		vec := make([]float32, dim)
		for j := range vec {
			vec[j] = 0.1
		}
		out[i] = vec
	}
	return out, nil
}

func (f *fakeGateway) Provider(name string) (llm.Provider, error) { return nil, nil }

func (f *fakeGateway) HasEmbeddings() bool { return f.embeddings }

type fakeSimulator struct {
	out    string
	called bool
}

func (f *fakeSimulator) SimulateCaseSearch(ctx context.Context, query string) (string, error) {
	f.called = true
	return f.out, nil
}

func TestSearchUsesIndexWhenPopulated(t *testing.T) {
	st := &fakeStore{
		count: 2,
		results: []SearchResult{
			{Title: "Mohori Bibee vs Dharmodas Ghose", Year: 1903, Score: 0.91},
		},
	}
	sim := &fakeSimulator{out: "simulated"}
	svc := NewService(st, &fakeGateway{embeddings: true}, sim, slog.Default())

	resp, err := svc.Search(context.Background(), "minor's contract validity", 5)
	require.NoError(t, err)

	assert.Equal(t, "index", resp.Source)
	require.Len(t, resp.Results, 1)
	assert.Equal(t, "Mohori Bibee vs Dharmodas Ghose", resp.Results[0].Title)
	assert.Empty(t, resp.Simulated)
	assert.False(t, sim.called)
}

func TestSearchFallsBackToSimulationWhenIndexEmpty(t *testing.T) {
	sim := &fakeSimulator{out: "representative cases"}
	svc := NewService(&fakeStore{count: 0}, &fakeGateway{embeddings: true}, sim, slog.Default())

	resp, err := svc.Search(context.Background(), "anticipatory bail", 5)
	require.NoError(t, err)

	assert.Equal(t, "simulation", resp.Source)
	assert.Equal(t, "representative cases", resp.Simulated)
	assert.True(t, sim.called)
}

func TestSearchFallsBackWithoutEmbeddingProvider(t *testing.T) {
	sim := &fakeSimulator{out: "representative cases"}
	svc := NewService(&fakeStore{count: 10}, &fakeGateway{embeddings: false}, sim, slog.Default())

	resp, err := svc.Search(context.Background(), "cheque bounce", 5)
	require.NoError(t, err)
	assert.Equal(t, "simulation", resp.Source)
}

func TestIndexEmbedsAndUpserts(t *testing.T) {
	st := &fakeStore{}
	svc := NewService(st, &fakeGateway{embeddings: true}, nil, slog.Default())

	err := svc.Index(context.Background(), []Case{
		{Title: "A vs B", Citation: "AIR 2001 SC 1", Summary: "key finding"},
	})
	require.NoError(t, err)

	require.Len(t, st.upserted, 1)
	assert.Len(t, st.upserted[0].Embedding, EmbeddingDim)
}

func TestIndexRejectsMismatchedDimensions(t *testing.T) {
	st := &fakeStore{}
	// 1536-dim vectors (OpenAI text-embedding-3-small) cannot land in
	// the 768-wide pgvector column.
	svc := NewService(st, &fakeGateway{embeddings: true, dim: 1536}, nil, slog.Default())

	err := svc.Index(context.Background(), []Case{
		{Title: "A vs B", Citation: "AIR 2001 SC 1", Summary: "key finding"},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "1536")
	assert.Empty(t, st.upserted)
}

func TestSearchFallsBackOnMismatchedQueryDimensions(t *testing.T) {
	sim := &fakeSimulator{out: "representative cases"}
	svc := NewService(&fakeStore{count: 10}, &fakeGateway{embeddings: true, dim: 1536}, sim, slog.Default())

	resp, err := svc.Search(context.Background(), "cheque bounce", 5)
	require.NoError(t, err)
	assert.Equal(t, "simulation", resp.Source)
	assert.True(t, sim.called)
}

func TestIndexRequiresEmbeddings(t *testing.T) {
	svc := NewService(&fakeStore{}, &fakeGateway{embeddings: false}, nil, slog.Default())

	err := svc.Index(context.Background(), []Case{{Title: "A vs B", Citation: "c"}})
	assert.Error(t, err)
}
