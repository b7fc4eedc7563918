package analysis

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// HTTPTagger talks to a named-entity tagging sidecar (a spaCy-style
// service exposing POST /entities). It satisfies EntityTagger.
type HTTPTagger struct {
	baseURL    string
	httpClient *http.Client
}

func NewHTTPTagger(baseURL string) *HTTPTagger {
	return &HTTPTagger{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

func (t *HTTPTagger) Available() bool {
	return t.baseURL != ""
}

type tagRequest struct {
	Text string `json:"text"`
}

type tagResponse struct {
	Entities []TaggedSpan `json:"entities"`
}

func (t *HTTPTagger) Tag(ctx context.Context, text string) ([]TaggedSpan, error) {
	body, err := json.Marshal(tagRequest{Text: text})
	if err != nil {
		return nil, fmt.Errorf("marshal tag request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, "POST", t.baseURL+"/entities", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("tagger request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := t.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("tagger call: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("tagger returned status %d", resp.StatusCode)
	}

	var tagResp tagResponse
	if err := json.NewDecoder(resp.Body).Decode(&tagResp); err != nil {
		return nil, fmt.Errorf("tagger decode: %w", err)
	}

	return tagResp.Entities, nil
}
