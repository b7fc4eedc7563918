package workers

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/hibiken/asynq"
	"github.com/juribot/juribot-go/internal/caselaw"
	"github.com/juribot/juribot-go/internal/queue"
)

// CaseLawWorker embeds submitted judgment summaries and upserts them
// into the vector index.
type CaseLawWorker struct {
	caselaw *caselaw.Service
}

func NewCaseLawWorker(svc *caselaw.Service) *CaseLawWorker {
	return &CaseLawWorker{caselaw: svc}
}

func (w *CaseLawWorker) ProcessTask(ctx context.Context, t *asynq.Task) error {
	var payload queue.CaseLawIndexPayload
	if err := json.Unmarshal(t.Payload(), &payload); err != nil {
		return fmt.Errorf("unmarshal payload: %w", err)
	}

	cases := make([]caselaw.Case, len(payload.Cases))
	for i, c := range payload.Cases {
		cases[i] = caselaw.Case{
			Title:    c.Title,
			Court:    c.Court,
			Year:     c.Year,
			Citation: c.Citation,
			Summary:  c.Summary,
		}
	}

	if err := w.caselaw.Index(ctx, cases); err != nil {
		return fmt.Errorf("index cases: %w", err)
	}

	slog.Info("case law batch indexed", "count", len(cases))
	return nil
}
