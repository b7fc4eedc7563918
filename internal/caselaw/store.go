package caselaw

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/pgvector/pgvector-go"
)

// EmbeddingDim is the dimensionality of the vector column in the
// case_law table. Embedding providers that produce a different width
// (e.g. OpenAI text-embedding-3-small at 1536) cannot serve this index.
const EmbeddingDim = 768

// Case is an indexed judgment summary with its embedding.
type Case struct {
	ID        uuid.UUID
	Title     string
	Court     string
	Year      int
	Citation  string
	Summary   string
	Embedding []float32
}

type SearchOptions struct {
	TopK     int
	MinScore float64
}

type SearchResult struct {
	CaseID   uuid.UUID `json:"case_id"`
	Title    string    `json:"title"`
	Court    string    `json:"court"`
	Year     int       `json:"year"`
	Citation string    `json:"citation"`
	Summary  string    `json:"summary"`
	Score    float64   `json:"score"`
}

type Store interface {
	Upsert(ctx context.Context, cases []Case) error
	SimilaritySearch(ctx context.Context, query []float32, opts SearchOptions) ([]SearchResult, error)
	Count(ctx context.Context) (int, error)
}

type PgStore struct {
	db *pgxpool.Pool
}

func NewPgStore(db *pgxpool.Pool) *PgStore {
	return &PgStore{db: db}
}

func (s *PgStore) Upsert(ctx context.Context, cases []Case) error {
	tx, err := s.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback(ctx)

	for _, c := range cases {
		id := c.ID
		if id == uuid.Nil {
			id = uuid.New()
		}

		embedding := pgvector.NewVector(c.Embedding)

		_, err := tx.Exec(ctx,
			`INSERT INTO case_law (id, title, court, year, citation, summary, embedding)
			 VALUES ($1, $2, $3, $4, $5, $6, $7)
			 ON CONFLICT (citation) DO UPDATE
			 SET title = $2, court = $3, year = $4, summary = $6, embedding = $7`,
			id, c.Title, c.Court, c.Year, c.Citation, c.Summary, embedding,
		)
		if err != nil {
			return fmt.Errorf("upsert case %q: %w", c.Citation, err)
		}
	}

	return tx.Commit(ctx)
}

func (s *PgStore) SimilaritySearch(ctx context.Context, query []float32, opts SearchOptions) ([]SearchResult, error) {
	if opts.TopK <= 0 {
		opts.TopK = 5
	}

	embedding := pgvector.NewVector(query)

	rows, err := s.db.Query(ctx,
		`SELECT id, title, court, year, citation, summary,
		        1 - (embedding <=> $1) AS score
		 FROM case_law
		 ORDER BY embedding <=> $1
		 LIMIT $2`,
		embedding, opts.TopK,
	)
	if err != nil {
		return nil, fmt.Errorf("similarity search: %w", err)
	}
	defer rows.Close()

	var results []SearchResult
	for rows.Next() {
		var r SearchResult
		if err := rows.Scan(&r.CaseID, &r.Title, &r.Court, &r.Year, &r.Citation, &r.Summary, &r.Score); err != nil {
			return nil, fmt.Errorf("scan result: %w", err)
		}
		if opts.MinScore > 0 && r.Score < opts.MinScore {
			continue
		}
		results = append(results, r)
	}
	return results, rows.Err()
}

func (s *PgStore) Count(ctx context.Context) (int, error) {
	var n int
	if err := s.db.QueryRow(ctx, "SELECT COUNT(*) FROM case_law").Scan(&n); err != nil {
		return 0, fmt.Errorf("count cases: %w", err)
	}
	return n, nil
}
