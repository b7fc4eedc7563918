package workers

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"
	"github.com/juribot/juribot-go/internal/advisory"
	"github.com/juribot/juribot-go/internal/models"
	"github.com/juribot/juribot-go/internal/queue"
	"github.com/juribot/juribot-go/internal/store"
)

// AdvisoryWorker generates the LLM advisory for a stored document and
// persists the result.
type AdvisoryWorker struct {
	store    *store.Store
	advisory *advisory.Service
}

func NewAdvisoryWorker(st *store.Store, adv *advisory.Service) *AdvisoryWorker {
	return &AdvisoryWorker{store: st, advisory: adv}
}

func (w *AdvisoryWorker) ProcessTask(ctx context.Context, t *asynq.Task) error {
	var payload queue.AdvisoryGeneratePayload
	if err := json.Unmarshal(t.Payload(), &payload); err != nil {
		return fmt.Errorf("unmarshal payload: %w", err)
	}

	docID, err := uuid.Parse(payload.DocumentID)
	if err != nil {
		return fmt.Errorf("parse document ID: %w", err)
	}

	slog.Info("generating advisory", "document_id", docID)

	doc, err := w.store.GetDocument(ctx, docID)
	if err != nil {
		return fmt.Errorf("get document: %w", err)
	}

	result, err := w.advisory.AnalyzeDocument(ctx, doc.CleanedText, doc.Language)
	if err != nil {
		return fmt.Errorf("analyze document: %w", err)
	}

	if _, err := w.store.AddAnalysis(ctx, docID, models.AnalysisTypeAdvisory, result, nil); err != nil {
		return fmt.Errorf("save advisory: %w", err)
	}

	slog.Info("advisory generated", "document_id", docID)
	return nil
}
