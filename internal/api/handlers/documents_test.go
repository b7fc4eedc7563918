package handlers

import (
	"bytes"
	"mime/multipart"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/juribot/juribot-go/internal/extract"
)

func newMultipartRequest(t *testing.T, fields map[string]string, filename string, fileContent []byte) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	for k, v := range fields {
		require.NoError(t, mw.WriteField(k, v))
	}
	if filename != "" {
		fw, err := mw.CreateFormFile("file", filename)
		require.NoError(t, err)
		_, err = fw.Write(fileContent)
		require.NoError(t, err)
	}
	require.NoError(t, mw.Close())
	return &buf, mw.FormDataContentType()
}

func TestParseAnalyzeRequestFileUpload(t *testing.T) {
	body, contentType := newMultipartRequest(t, nil, "agreement.txt", []byte("WHEREAS the Parties agree."))
	req := httptest.NewRequest("POST", "/api/v1/documents/analyze", body)
	req.Header.Set("Content-Type", contentType)

	doc, err := parseAnalyzeRequest(req)
	require.NoError(t, err)
	assert.Equal(t, "agreement.txt", doc.Filename)
	assert.Equal(t, extract.FormatText, doc.Format)
	assert.Equal(t, []byte("WHEREAS the Parties agree."), doc.Content)
}

func TestParseAnalyzeRequestTextField(t *testing.T) {
	body, contentType := newMultipartRequest(t, map[string]string{"text": "Section 10 of the Indian Contract Act, 1872."}, "", nil)
	req := httptest.NewRequest("POST", "/api/v1/documents/analyze", body)
	req.Header.Set("Content-Type", contentType)

	doc, err := parseAnalyzeRequest(req)
	require.NoError(t, err)
	assert.Equal(t, "pasted.txt", doc.Filename)
	assert.Equal(t, extract.FormatText, doc.Format)
	assert.Equal(t, "Section 10 of the Indian Contract Act, 1872.", string(doc.Content))
}

func TestParseAnalyzeRequestJSONBody(t *testing.T) {
	req := httptest.NewRequest("POST", "/api/v1/documents/analyze",
		strings.NewReader(`{"text":"The lessee shall pay rent.","filename":"lease-notes.txt"}`))
	req.Header.Set("Content-Type", "application/json")

	doc, err := parseAnalyzeRequest(req)
	require.NoError(t, err)
	assert.Equal(t, "lease-notes.txt", doc.Filename)
	assert.Equal(t, extract.FormatText, doc.Format)
	assert.Equal(t, "The lessee shall pay rent.", string(doc.Content))
}

func TestParseAnalyzeRequestEmpty(t *testing.T) {
	body, contentType := newMultipartRequest(t, map[string]string{"text": "   "}, "", nil)
	req := httptest.NewRequest("POST", "/api/v1/documents/analyze", body)
	req.Header.Set("Content-Type", contentType)

	_, err := parseAnalyzeRequest(req)
	assert.Error(t, err)

	req = httptest.NewRequest("POST", "/api/v1/documents/analyze", strings.NewReader(`{"text":""}`))
	req.Header.Set("Content-Type", "application/json")
	_, err = parseAnalyzeRequest(req)
	assert.Error(t, err)
}

func TestParseAnalyzeRequestUnsupportedUpload(t *testing.T) {
	body, contentType := newMultipartRequest(t, nil, "scan.tar.gz", []byte("binary"))
	req := httptest.NewRequest("POST", "/api/v1/documents/analyze", body)
	req.Header.Set("Content-Type", contentType)

	_, err := parseAnalyzeRequest(req)
	assert.ErrorIs(t, err, extract.ErrUnsupportedFormat)
}
