package extract

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"
	"unicode/utf8"
)

// Format is the declared format of an uploaded document.
type Format string

const (
	FormatPDF   Format = "pdf"
	FormatDOCX  Format = "docx"
	FormatImage Format = "image"
	FormatText  Format = "text"
)

// ErrUnsupportedFormat is returned when the declared format is not one of
// pdf, docx, image or text.
var ErrUnsupportedFormat = errors.New("unsupported document format")

// ExtractionError reports a whole-document extraction failure with the
// underlying cause attached.
type ExtractionError struct {
	Format Format
	Err    error
}

func (e *ExtractionError) Error() string {
	return fmt.Sprintf("extract %s: %v", e.Format, e.Err)
}

func (e *ExtractionError) Unwrap() error { return e.Err }

// ParseFormat maps a filename extension to a Format.
func ParseFormat(filename string) (Format, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".pdf":
		return FormatPDF, nil
	case ".docx":
		return FormatDOCX, nil
	case ".jpg", ".jpeg", ".png", ".tiff", ".bmp":
		return FormatImage, nil
	case ".txt", "":
		return FormatText, nil
	default:
		return "", fmt.Errorf("%w: %s", ErrUnsupportedFormat, filepath.Ext(filename))
	}
}

// RawDocument is an uploaded document before extraction. The content is
// owned by a single pipeline invocation and discarded afterwards; only
// the hash survives for deduplication.
type RawDocument struct {
	Filename string
	Format   Format
	Content  []byte
}

// Hash returns the SHA-256 hex digest of the raw content.
func (d RawDocument) Hash() string {
	sum := sha256.Sum256(d.Content)
	return hex.EncodeToString(sum[:])
}

// Method records how text was obtained from a document.
type Method string

const (
	MethodNative Method = "native"
	MethodOCR    Method = "ocr"
)

// ExtractedText is the raw text of a document, one segment per page (or
// per paragraph for DOCX). Concatenating segments in order reproduces
// the document's reading order. PageConfidence is populated only on the
// OCR path, one 0-100 score per page.
type ExtractedText struct {
	Segments       []string
	Method         Method
	PageConfidence []float64

	// OCRSkipped is set when the document looked scanned but no OCR
	// engine was available, so the near-empty native text was kept.
	OCRSkipped bool
}

// Text joins the segments in reading order.
func (e *ExtractedText) Text() string {
	return strings.Join(e.Segments, "\n\n")
}

// Confidence averages the per-page OCR confidence. Zero when the native
// path was used.
func (e *ExtractedText) Confidence() float64 {
	if len(e.PageConfidence) == 0 {
		return 0
	}
	var sum float64
	for _, c := range e.PageConfidence {
		sum += c
	}
	return sum / float64(len(e.PageConfidence))
}

// DefaultScannedThreshold is the minimum number of non-whitespace
// characters a native PDF extraction must yield before the document is
// considered text-native. Below it, the PDF is treated as scanned.
const DefaultScannedThreshold = 50

// IsScanned reports whether a PDF's native text layer is essentially
// empty, meaning the pages are images and OCR is required. The threshold
// counts characters, not bytes, so Devanagari text is not over-weighted.
func IsScanned(text string, threshold int) bool {
	return utf8.RuneCountInString(strings.TrimSpace(text)) < threshold
}

// Extractor performs format-aware raw text extraction with OCR fallback
// for scanned PDFs and images.
type Extractor struct {
	ocr              *OCRService
	scannedThreshold int
}

func NewExtractor(ocr *OCRService, scannedThreshold int) *Extractor {
	if scannedThreshold <= 0 {
		scannedThreshold = DefaultScannedThreshold
	}
	return &Extractor{ocr: ocr, scannedThreshold: scannedThreshold}
}

// Extract produces the raw text of a document. For PDFs the cheap native
// text layer is tried first; when it comes back essentially empty the
// document is re-extracted through the OCR path instead. Image formats
// go straight to OCR.
func (e *Extractor) Extract(ctx context.Context, doc RawDocument) (*ExtractedText, error) {
	switch doc.Format {
	case FormatPDF:
		native, err := extractPDF(doc.Content)
		if err != nil {
			return nil, &ExtractionError{Format: FormatPDF, Err: err}
		}
		return e.resolvePDF(ctx, doc, native)

	case FormatDOCX:
		result, err := extractDOCX(doc.Content)
		if err != nil {
			return nil, &ExtractionError{Format: FormatDOCX, Err: err}
		}
		return result, nil

	case FormatImage:
		text, confidence, err := e.ocr.ImageToText(ctx, doc.Content)
		if err != nil {
			return nil, &ExtractionError{Format: FormatImage, Err: err}
		}
		return &ExtractedText{
			Segments:       []string{strings.TrimSpace(text)},
			Method:         MethodOCR,
			PageConfidence: []float64{confidence},
		}, nil

	case FormatText:
		return &ExtractedText{
			Segments: []string{strings.TrimSpace(string(doc.Content))},
			Method:   MethodNative,
		}, nil

	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, doc.Format)
	}
}

// resolvePDF decides between the native text layer and the OCR fallback.
// A scanned PDF on a host without an OCR engine keeps its near-empty
// native text, marked OCRSkipped so callers can report the degradation.
func (e *Extractor) resolvePDF(ctx context.Context, doc RawDocument, native *ExtractedText) (*ExtractedText, error) {
	if !IsScanned(native.Text(), e.scannedThreshold) {
		return native, nil
	}

	if !e.ocr.IsAvailable() {
		slog.Warn("scanned PDF but OCR engine unavailable, keeping native text layer",
			"filename", doc.Filename)
		native.OCRSkipped = true
		return native, nil
	}

	ocrText, err := e.ocr.PDFToText(ctx, doc.Content)
	if err != nil {
		return nil, &ExtractionError{Format: FormatPDF, Err: err}
	}
	return ocrText, nil
}
