// Package store persists documents, analysis results, cost estimates
// and query logs in Postgres.
package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/juribot/juribot-go/internal/models"
	"github.com/juribot/juribot-go/internal/pipeline"
)

var ErrNotFound = errors.New("not found")

type Store struct {
	db *pgxpool.Pool
}

func New(db *pgxpool.Pool) *Store {
	return &Store{db: db}
}

// SaveResult upserts a pipeline result keyed by content hash, so
// re-uploading the same file refreshes the record instead of
// duplicating it.
func (s *Store) SaveResult(ctx context.Context, res *pipeline.Result) (*models.Document, error) {
	analysis, err := json.Marshal(res)
	if err != nil {
		return nil, fmt.Errorf("marshal analysis: %w", err)
	}

	var confidence *float64
	if res.Method == "ocr" {
		c := res.OCRConfidence
		confidence = &c
	}

	var doc models.Document
	err = s.db.QueryRow(ctx,
		`INSERT INTO documents
		 (id, content_hash, filename, file_type, extraction_method, ocr_confidence, text_length, language, cleaned_text, analysis)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		 ON CONFLICT (content_hash) DO UPDATE
		 SET filename = $3, extraction_method = $5, ocr_confidence = $6,
		     text_length = $7, language = $8, cleaned_text = $9, analysis = $10
		 RETURNING id, content_hash, filename, file_type, extraction_method, ocr_confidence, text_length, language, cleaned_text, analysis, created_at`,
		uuid.New(), res.ContentHash, res.Filename, res.Format, res.Method,
		confidence, len(res.CleanedText), res.Language, res.CleanedText, analysis,
	).Scan(&doc.ID, &doc.ContentHash, &doc.Filename, &doc.FileType, &doc.ExtractionMethod,
		&doc.OCRConfidence, &doc.TextLength, &doc.Language, &doc.CleanedText, &doc.Analysis, &doc.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("save document: %w", err)
	}
	return &doc, nil
}

func (s *Store) GetDocument(ctx context.Context, id uuid.UUID) (*models.Document, error) {
	var doc models.Document
	err := s.db.QueryRow(ctx,
		`SELECT id, content_hash, filename, file_type, extraction_method, ocr_confidence, text_length, language, cleaned_text, analysis, created_at
		 FROM documents WHERE id = $1`,
		id,
	).Scan(&doc.ID, &doc.ContentHash, &doc.Filename, &doc.FileType, &doc.ExtractionMethod,
		&doc.OCRConfidence, &doc.TextLength, &doc.Language, &doc.CleanedText, &doc.Analysis, &doc.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get document: %w", err)
	}
	return &doc, nil
}

func (s *Store) GetDocumentByHash(ctx context.Context, hash string) (*models.Document, error) {
	var doc models.Document
	err := s.db.QueryRow(ctx,
		`SELECT id, content_hash, filename, file_type, extraction_method, ocr_confidence, text_length, language, cleaned_text, analysis, created_at
		 FROM documents WHERE content_hash = $1`,
		hash,
	).Scan(&doc.ID, &doc.ContentHash, &doc.Filename, &doc.FileType, &doc.ExtractionMethod,
		&doc.OCRConfidence, &doc.TextLength, &doc.Language, &doc.CleanedText, &doc.Analysis, &doc.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get document by hash: %w", err)
	}
	return &doc, nil
}

func (s *Store) RecentDocuments(ctx context.Context, limit int) ([]models.DocumentSummary, error) {
	if limit <= 0 {
		limit = 10
	}
	rows, err := s.db.Query(ctx,
		`SELECT id, filename, file_type, language, created_at
		 FROM documents ORDER BY created_at DESC LIMIT $1`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("list documents: %w", err)
	}
	defer rows.Close()

	var docs []models.DocumentSummary
	for rows.Next() {
		var d models.DocumentSummary
		if err := rows.Scan(&d.ID, &d.Filename, &d.FileType, &d.Language, &d.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan document: %w", err)
		}
		docs = append(docs, d)
	}
	return docs, rows.Err()
}

func (s *Store) AddAnalysis(ctx context.Context, documentID uuid.UUID, analysisType, resultText string, metadata map[string]interface{}) (*models.AnalysisResult, error) {
	meta, _ := json.Marshal(metadata)

	var r models.AnalysisResult
	err := s.db.QueryRow(ctx,
		`INSERT INTO analysis_results (id, document_id, analysis_type, result_text, metadata)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING id, document_id, analysis_type, result_text, metadata, created_at`,
		uuid.New(), documentID, analysisType, resultText, meta,
	).Scan(&r.ID, &r.DocumentID, &r.AnalysisType, &r.ResultText, &r.Metadata, &r.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("add analysis result: %w", err)
	}
	return &r, nil
}

func (s *Store) ListAnalyses(ctx context.Context, documentID uuid.UUID) ([]models.AnalysisResult, error) {
	rows, err := s.db.Query(ctx,
		`SELECT id, document_id, analysis_type, result_text, metadata, created_at
		 FROM analysis_results WHERE document_id = $1 ORDER BY created_at DESC`,
		documentID,
	)
	if err != nil {
		return nil, fmt.Errorf("list analyses: %w", err)
	}
	defer rows.Close()

	var results []models.AnalysisResult
	for rows.Next() {
		var r models.AnalysisResult
		if err := rows.Scan(&r.ID, &r.DocumentID, &r.AnalysisType, &r.ResultText, &r.Metadata, &r.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan analysis: %w", err)
		}
		results = append(results, r)
	}
	return results, rows.Err()
}

func (s *Store) AddCostEstimate(ctx context.Context, est *models.CostEstimate) error {
	err := s.db.QueryRow(ctx,
		`INSERT INTO cost_estimates (id, case_type, location, complexity, estimated_cost, details)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING id, created_at`,
		uuid.New(), est.CaseType, est.Location, est.Complexity, est.EstimatedCost, est.Details,
	).Scan(&est.ID, &est.CreatedAt)
	if err != nil {
		return fmt.Errorf("add cost estimate: %w", err)
	}
	return nil
}

func (s *Store) AddQueryLog(ctx context.Context, queryText, queryType, source string) error {
	_, err := s.db.Exec(ctx,
		`INSERT INTO query_log (id, query_text, query_type, source) VALUES ($1, $2, $3, $4)`,
		uuid.New(), queryText, queryType, source,
	)
	if err != nil {
		return fmt.Errorf("add query log: %w", err)
	}
	return nil
}

func (s *Store) Statistics(ctx context.Context) (*models.Statistics, error) {
	var stats models.Statistics
	err := s.db.QueryRow(ctx,
		`SELECT
		   (SELECT COUNT(*) FROM documents),
		   (SELECT COUNT(*) FROM analysis_results),
		   (SELECT COUNT(*) FROM query_log),
		   (SELECT COUNT(*) FROM cost_estimates)`,
	).Scan(&stats.TotalDocuments, &stats.TotalAnalyses, &stats.TotalQueries, &stats.TotalEstimates)
	if err != nil {
		return nil, fmt.Errorf("get statistics: %w", err)
	}
	return &stats, nil
}
