package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/juribot/juribot-go/internal/caselaw"
	"github.com/juribot/juribot-go/internal/queue"
	"github.com/juribot/juribot-go/internal/store"
)

type CaseLawHandler struct {
	caselaw *caselaw.Service
	store   *store.Store
	queue   *queue.Client
}

func NewCaseLawHandler(svc *caselaw.Service, st *store.Store, qc *queue.Client) *CaseLawHandler {
	return &CaseLawHandler{caselaw: svc, store: st, queue: qc}
}

type caseSearchRequest struct {
	Query string `json:"query"`
	TopK  int    `json:"top_k,omitempty"`
}

func (h *CaseLawHandler) Search(w http.ResponseWriter, r *http.Request) {
	var req caseSearchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if req.Query == "" {
		writeError(w, http.StatusBadRequest, "query required")
		return
	}

	resp, err := h.caselaw.Search(r.Context(), req.Query, req.TopK)
	if err != nil {
		writeError(w, http.StatusBadGateway, err.Error())
		return
	}

	// Query log is best effort.
	_ = h.store.AddQueryLog(r.Context(), req.Query, "case_search", resp.Source)

	writeJSON(w, http.StatusOK, resp)
}

// Index enqueues a batch of judgment summaries for embedding.
func (h *CaseLawHandler) Index(w http.ResponseWriter, r *http.Request) {
	var payload queue.CaseLawIndexPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if len(payload.Cases) == 0 {
		writeError(w, http.StatusBadRequest, "cases required")
		return
	}
	for _, c := range payload.Cases {
		if c.Citation == "" || c.Title == "" {
			writeError(w, http.StatusBadRequest, "every case needs a title and citation")
			return
		}
	}

	if err := h.queue.EnqueueCaseLawIndex(payload); err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusAccepted, map[string]interface{}{
		"status": "queued",
		"count":  len(payload.Cases),
	})
}
