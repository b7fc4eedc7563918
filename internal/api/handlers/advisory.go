package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/juribot/juribot-go/internal/advisory"
	"github.com/juribot/juribot-go/internal/models"
	"github.com/juribot/juribot-go/internal/queue"
	"github.com/juribot/juribot-go/internal/store"
)

type AdvisoryHandler struct {
	advisory *advisory.Service
	store    *store.Store
	queue    *queue.Client
}

func NewAdvisoryHandler(adv *advisory.Service, st *store.Store, qc *queue.Client) *AdvisoryHandler {
	return &AdvisoryHandler{advisory: adv, store: st, queue: qc}
}

// Generate enqueues advisory generation for a stored document. The LLM
// call runs on the worker; clients poll the analyses listing.
func (h *AdvisoryHandler) Generate(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid document ID")
		return
	}

	if _, err := h.store.GetDocument(r.Context(), id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusNotFound, "document not found")
			return
		}
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	if err := h.queue.EnqueueAdvisoryGenerate(queue.AdvisoryGeneratePayload{
		DocumentID: id.String(),
	}); err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusAccepted, map[string]string{
		"document_id": id.String(),
		"status":      "queued",
	})
}

type translateRequest struct {
	Text           string `json:"text"`
	TargetLanguage string `json:"target_language"`
}

func (h *AdvisoryHandler) Translate(w http.ResponseWriter, r *http.Request) {
	var req translateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if req.Text == "" {
		writeError(w, http.StatusBadRequest, "text required")
		return
	}

	translated, err := h.advisory.Translate(r.Context(), req.Text, req.TargetLanguage)
	if err != nil {
		writeError(w, http.StatusBadGateway, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"translated": translated})
}

func (h *AdvisoryHandler) EstimateCosts(w http.ResponseWriter, r *http.Request) {
	var req advisory.CostRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if req.CaseType == "" || req.Location == "" || req.Complexity == "" {
		writeError(w, http.StatusBadRequest, "case_type, location and complexity required")
		return
	}

	estimate, err := h.advisory.EstimateCosts(r.Context(), req)
	if err != nil {
		writeError(w, http.StatusBadGateway, err.Error())
		return
	}

	est := &models.CostEstimate{
		CaseType:      req.CaseType,
		Location:      req.Location,
		Complexity:    req.Complexity,
		EstimatedCost: estimate,
		Details:       req.Details,
	}
	if err := h.store.AddCostEstimate(r.Context(), est); err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, est)
}
