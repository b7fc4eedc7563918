package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/juribot/juribot-go/internal/cache"
	"github.com/juribot/juribot-go/internal/extract"
	"github.com/juribot/juribot-go/internal/pipeline"
	"github.com/juribot/juribot-go/internal/store"
)

const maxUploadBytes = 32 << 20 // 32MB

type DocumentHandler struct {
	pipeline *pipeline.Pipeline
	store    *store.Store
	cache    *cache.Cache
}

func NewDocumentHandler(p *pipeline.Pipeline, st *store.Store, c *cache.Cache) *DocumentHandler {
	return &DocumentHandler{pipeline: p, store: st, cache: c}
}

// Analyze ingests a document through the full pipeline and persists the
// result. Input is either a multipart file upload, a multipart "text"
// field, or a JSON body with pasted text. Identical documents (by
// content hash) are served from cache.
func (h *DocumentHandler) Analyze(w http.ResponseWriter, r *http.Request) {
	doc, err := parseAnalyzeRequest(r)
	if err != nil {
		status := http.StatusBadRequest
		if errors.Is(err, extract.ErrUnsupportedFormat) {
			status = http.StatusUnsupportedMediaType
		}
		writeError(w, status, err.Error())
		return
	}

	// Serve identical uploads from cache when possible.
	if h.cache != nil {
		var cached pipeline.Result
		if err := h.cache.Get(r.Context(), cache.AnalysisKey(doc.Hash()), &cached); err == nil {
			saved, err := h.store.SaveResult(r.Context(), &cached)
			if err != nil {
				writeError(w, http.StatusInternalServerError, err.Error())
				return
			}
			writeJSON(w, http.StatusOK, map[string]interface{}{
				"document_id": saved.ID,
				"cached":      true,
				"result":      &cached,
			})
			return
		}
	}

	result, err := h.pipeline.Ingest(r.Context(), doc)
	if err != nil {
		status := http.StatusUnprocessableEntity
		if errors.Is(err, extract.ErrUnsupportedFormat) {
			status = http.StatusUnsupportedMediaType
		}
		writeError(w, status, err.Error())
		return
	}

	saved, err := h.store.SaveResult(r.Context(), result)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	if h.cache != nil {
		_ = h.cache.Set(r.Context(), cache.AnalysisKey(result.ContentHash), result, cache.AnalysisTTL)
	}

	writeJSON(w, http.StatusCreated, map[string]interface{}{
		"document_id": saved.ID,
		"cached":      false,
		"result":      result,
	})
}

// parseAnalyzeRequest accepts a file upload or pasted text and builds
// the document for ingestion.
func parseAnalyzeRequest(r *http.Request) (extract.RawDocument, error) {
	if strings.HasPrefix(r.Header.Get("Content-Type"), "application/json") {
		var body struct {
			Text     string `json:"text"`
			Filename string `json:"filename"`
		}
		if err := json.NewDecoder(io.LimitReader(r.Body, maxUploadBytes)).Decode(&body); err != nil {
			return extract.RawDocument{}, fmt.Errorf("invalid JSON body: %w", err)
		}
		return rawTextDocument(body.Text, body.Filename)
	}

	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		return extract.RawDocument{}, fmt.Errorf("invalid multipart form: %w", err)
	}

	file, header, err := r.FormFile("file")
	if errors.Is(err, http.ErrMissingFile) {
		return rawTextDocument(r.FormValue("text"), r.FormValue("filename"))
	}
	if err != nil {
		return extract.RawDocument{}, fmt.Errorf("file or text required")
	}
	defer file.Close()

	content, err := io.ReadAll(io.LimitReader(file, maxUploadBytes))
	if err != nil {
		return extract.RawDocument{}, fmt.Errorf("read upload: %w", err)
	}

	format, err := extract.ParseFormat(header.Filename)
	if err != nil {
		return extract.RawDocument{}, err
	}

	return extract.RawDocument{
		Filename: header.Filename,
		Format:   format,
		Content:  content,
	}, nil
}

func rawTextDocument(text, filename string) (extract.RawDocument, error) {
	if strings.TrimSpace(text) == "" {
		return extract.RawDocument{}, fmt.Errorf("file or text required")
	}
	if filename == "" {
		filename = "pasted.txt"
	}
	return extract.RawDocument{
		Filename: filename,
		Format:   extract.FormatText,
		Content:  []byte(text),
	}, nil
}

func (h *DocumentHandler) List(w http.ResponseWriter, r *http.Request) {
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	if limit <= 0 {
		limit = 10
	}

	docs, err := h.store.RecentDocuments(r.Context(), limit)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"documents": docs, "count": len(docs)})
}

func (h *DocumentHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid document ID")
		return
	}

	doc, err := h.store.GetDocument(r.Context(), id)
	if errors.Is(err, store.ErrNotFound) {
		writeError(w, http.StatusNotFound, "document not found")
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, doc)
}

func (h *DocumentHandler) ListAnalyses(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid document ID")
		return
	}

	results, err := h.store.ListAnalyses(r.Context(), id)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"analyses": results, "count": len(results)})
}

func (h *DocumentHandler) Stats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.store.Statistics(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, stats)
}
