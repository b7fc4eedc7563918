package extract

import (
	"archive/zip"
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFormat(t *testing.T) {
	tests := []struct {
		filename string
		want     Format
		wantErr  bool
	}{
		{"brief.pdf", FormatPDF, false},
		{"Brief.PDF", FormatPDF, false},
		{"contract.docx", FormatDOCX, false},
		{"scan.jpeg", FormatImage, false},
		{"scan.png", FormatImage, false},
		{"scan.tiff", FormatImage, false},
		{"notes.txt", FormatText, false},
		{"README", FormatText, false},
		{"archive.zip", "", true},
		{"deed.doc", "", true},
	}

	for _, tt := range tests {
		got, err := ParseFormat(tt.filename)
		if tt.wantErr {
			assert.ErrorIs(t, err, ErrUnsupportedFormat, tt.filename)
			continue
		}
		require.NoError(t, err, tt.filename)
		assert.Equal(t, tt.want, got, tt.filename)
	}
}

func TestIsScannedThresholdBoundary(t *testing.T) {
	assert.True(t, IsScanned(strings.Repeat("a", 49), 50))
	assert.False(t, IsScanned(strings.Repeat("a", 50), 50))

	// Whitespace does not count toward the threshold.
	assert.True(t, IsScanned("   \n\t  "+strings.Repeat("a", 10)+"   ", 50))

	// The threshold counts characters, not bytes. 20 Devanagari
	// characters are 60 bytes but still a scanned-level text layer.
	assert.True(t, IsScanned(strings.Repeat("क", 20), 50))
	assert.False(t, IsScanned(strings.Repeat("क", 50), 50))
}

func TestResolvePDFMarksSkippedOCR(t *testing.T) {
	ocr := NewOCRService("/nonexistent/tesseract", "/nonexistent/pdftoppm", "", 0)
	ex := NewExtractor(ocr, 50)

	doc := RawDocument{Filename: "scan.pdf", Format: FormatPDF}

	// Scanned-level text layer with no OCR engine on the host: the
	// native text is kept but the skip is surfaced.
	native := &ExtractedText{Segments: []string{"pg 1"}, Method: MethodNative}
	got, err := ex.resolvePDF(context.Background(), doc, native)
	require.NoError(t, err)
	assert.Equal(t, MethodNative, got.Method)
	assert.True(t, got.OCRSkipped)

	// A real text layer never consults OCR.
	textNative := &ExtractedText{Segments: []string{strings.Repeat("a", 200)}, Method: MethodNative}
	got, err = ex.resolvePDF(context.Background(), doc, textNative)
	require.NoError(t, err)
	assert.False(t, got.OCRSkipped)
}

func TestRawDocumentHash(t *testing.T) {
	content := []byte("sale deed body")
	sum := sha256.Sum256(content)

	doc := RawDocument{Filename: "deed.txt", Format: FormatText, Content: content}
	assert.Equal(t, hex.EncodeToString(sum[:]), doc.Hash())
}

func TestExtractedTextConfidence(t *testing.T) {
	native := &ExtractedText{Segments: []string{"a"}, Method: MethodNative}
	assert.Equal(t, 0.0, native.Confidence())

	ocr := &ExtractedText{
		Segments:       []string{"a", "b"},
		Method:         MethodOCR,
		PageConfidence: []float64{90, 70},
	}
	assert.Equal(t, 80.0, ocr.Confidence())
}

func TestExtractText(t *testing.T) {
	ex := NewExtractor(NewOCRService("", "", "", 0), 0)

	doc := RawDocument{
		Filename: "notes.txt",
		Format:   FormatText,
		Content:  []byte("  plain text body\n"),
	}

	got, err := ex.Extract(context.Background(), doc)
	require.NoError(t, err)
	assert.Equal(t, MethodNative, got.Method)
	assert.Equal(t, "plain text body", got.Text())
}

func TestExtractDOCXReadingOrder(t *testing.T) {
	content := buildDOCX(t, `<w:p><w:r><w:t>First paragraph.</w:t></w:r></w:p>`+
		`<w:p><w:r><w:t>Second</w:t></w:r><w:r><w:t> paragraph.</w:t></w:r></w:p>`+
		`<w:p></w:p>`)

	ex := NewExtractor(NewOCRService("", "", "", 0), 0)
	got, err := ex.Extract(context.Background(), RawDocument{
		Filename: "deed.docx",
		Format:   FormatDOCX,
		Content:  content,
	})
	require.NoError(t, err)

	assert.Equal(t, MethodNative, got.Method)
	assert.Equal(t, []string{"First paragraph.", "Second paragraph."}, got.Segments)
	assert.Equal(t, "First paragraph.\n\nSecond paragraph.", got.Text())
}

func TestExtractDOCXCorruptArchive(t *testing.T) {
	ex := NewExtractor(NewOCRService("", "", "", 0), 0)

	_, err := ex.Extract(context.Background(), RawDocument{
		Filename: "broken.docx",
		Format:   FormatDOCX,
		Content:  []byte("not a zip archive"),
	})
	require.Error(t, err)

	var extErr *ExtractionError
	require.ErrorAs(t, err, &extErr)
	assert.Equal(t, FormatDOCX, extErr.Format)
}

func TestExtractUnknownFormat(t *testing.T) {
	ex := NewExtractor(NewOCRService("", "", "", 0), 0)

	_, err := ex.Extract(context.Background(), RawDocument{Format: Format("epub")})
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
}

func buildDOCX(t *testing.T, body string) []byte {
	t.Helper()

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	f, err := zw.Create("word/document.xml")
	require.NoError(t, err)

	_, err = f.Write([]byte(`<?xml version="1.0"?>` +
		`<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">` +
		`<w:body>` + body + `</w:body></w:document>`))
	require.NoError(t, err)
	require.NoError(t, zw.Close())

	return buf.Bytes()
}
