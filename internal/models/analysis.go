package models

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

const (
	AnalysisTypeAdvisory    = "advisory"
	AnalysisTypeTranslation = "translation"
)

// AnalysisResult is one LLM-produced output tied to a document, such as
// an advisory review or a translation.
type AnalysisResult struct {
	ID           uuid.UUID       `json:"id" db:"id"`
	DocumentID   uuid.UUID       `json:"document_id" db:"document_id"`
	AnalysisType string          `json:"analysis_type" db:"analysis_type"`
	ResultText   string          `json:"result_text" db:"result_text"`
	Metadata     json.RawMessage `json:"metadata,omitempty" db:"metadata"`
	CreatedAt    time.Time       `json:"created_at" db:"created_at"`
}

// CostEstimate records one fee-estimation request and its answer.
type CostEstimate struct {
	ID            uuid.UUID `json:"id" db:"id"`
	CaseType      string    `json:"case_type" db:"case_type"`
	Location      string    `json:"location" db:"location"`
	Complexity    string    `json:"complexity" db:"complexity"`
	EstimatedCost string    `json:"estimated_cost" db:"estimated_cost"`
	Details       string    `json:"details,omitempty" db:"details"`
	CreatedAt     time.Time `json:"created_at" db:"created_at"`
}

// QueryLog records one case law search and what answered it.
type QueryLog struct {
	ID        uuid.UUID `json:"id" db:"id"`
	QueryText string    `json:"query_text" db:"query_text"`
	QueryType string    `json:"query_type" db:"query_type"`
	Source    string    `json:"source" db:"source"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// Statistics is the usage rollup for the stats endpoint.
type Statistics struct {
	TotalDocuments int `json:"total_documents"`
	TotalAnalyses  int `json:"total_analyses"`
	TotalQueries   int `json:"total_queries"`
	TotalEstimates int `json:"total_estimates"`
}
