package models

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// Document is one ingested file. ContentHash is the SHA-256 of the raw
// upload and deduplicates re-uploads of the same file.
type Document struct {
	ID               uuid.UUID       `json:"id" db:"id"`
	ContentHash      string          `json:"content_hash" db:"content_hash"`
	Filename         string          `json:"filename" db:"filename"`
	FileType         string          `json:"file_type" db:"file_type"`
	ExtractionMethod string          `json:"extraction_method" db:"extraction_method"`
	OCRConfidence    *float64        `json:"ocr_confidence,omitempty" db:"ocr_confidence"`
	TextLength       int             `json:"text_length" db:"text_length"`
	Language         string          `json:"language" db:"language"`
	CleanedText      string          `json:"-" db:"cleaned_text"`
	Analysis         json.RawMessage `json:"analysis,omitempty" db:"analysis"`
	CreatedAt        time.Time       `json:"created_at" db:"created_at"`
}

// DocumentSummary is the listing view, without text or analysis payloads.
type DocumentSummary struct {
	ID        uuid.UUID `json:"id" db:"id"`
	Filename  string    `json:"filename" db:"filename"`
	FileType  string    `json:"file_type" db:"file_type"`
	Language  string    `json:"language" db:"language"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}
