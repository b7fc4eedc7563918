package extract

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
)

// DefaultOCRLanguages is the tesseract language hint: combined
// English+Hindi, matching the bilingual documents this pipeline serves.
const DefaultOCRLanguages = "eng+hin"

// DefaultRenderDPI is the resolution used when rasterizing PDF pages for
// OCR.
const DefaultRenderDPI = 300

// OCRService wraps the tesseract binary for image OCR and pdftoppm
// (Poppler) for PDF rasterization. Both are probed on PATH; when either
// is missing the service reports itself unavailable and callers skip the
// OCR fallback.
type OCRService struct {
	tesseractPath string
	pdftoppmPath  string
	languages     string
	renderDPI     int
}

func NewOCRService(tesseractPath, pdftoppmPath, languages string, renderDPI int) *OCRService {
	if tesseractPath == "" {
		if p, err := exec.LookPath("tesseract"); err == nil {
			tesseractPath = p
		} else {
			tesseractPath = "tesseract"
		}
	}
	if pdftoppmPath == "" {
		if p, err := exec.LookPath("pdftoppm"); err == nil {
			pdftoppmPath = p
		} else {
			pdftoppmPath = "pdftoppm"
		}
	}
	if languages == "" {
		languages = DefaultOCRLanguages
	}
	if renderDPI <= 0 {
		renderDPI = DefaultRenderDPI
	}
	return &OCRService{
		tesseractPath: tesseractPath,
		pdftoppmPath:  pdftoppmPath,
		languages:     languages,
		renderDPI:     renderDPI,
	}
}

func (o *OCRService) IsAvailable() bool {
	return exec.Command(o.tesseractPath, "--version").Run() == nil
}

// ImageToText runs tesseract over image bytes and returns the recognized
// text together with the mean word confidence (0-100) from tesseract's
// TSV output.
func (o *OCRService) ImageToText(ctx context.Context, image []byte) (string, float64, error) {
	text, err := o.run(ctx, bytes.NewReader(image), "stdin", "txt")
	if err != nil {
		return "", 0, fmt.Errorf("tesseract OCR: %w", err)
	}

	confidence := 0.0
	if tsv, err := o.run(ctx, bytes.NewReader(image), "stdin", "tsv"); err == nil {
		confidence = parseMeanConfidence(tsv)
	}

	return strings.TrimSpace(text), confidence, nil
}

// PDFToText OCRs a scanned PDF: the bytes are written to a scoped
// temporary file, rasterized to one PNG per page, and each page is fed
// through tesseract. One page failing does not abort the remaining
// pages; its segment degrades to the bare page marker. All temporary
// files are removed on every exit path.
func (o *OCRService) PDFToText(ctx context.Context, pdfContent []byte) (*ExtractedText, error) {
	tmpDir, err := os.MkdirTemp("", "juribot-ocr-*")
	if err != nil {
		return nil, fmt.Errorf("create temp dir: %w", err)
	}
	defer os.RemoveAll(tmpDir)

	pdfPath := filepath.Join(tmpDir, "input.pdf")
	if err := os.WriteFile(pdfPath, pdfContent, 0o600); err != nil {
		return nil, fmt.Errorf("write temp PDF: %w", err)
	}

	prefix := filepath.Join(tmpDir, "page")
	cmd := exec.CommandContext(ctx, o.pdftoppmPath, "-png", "-r", strconv.Itoa(o.renderDPI), pdfPath, prefix)
	if out, err := cmd.CombinedOutput(); err != nil {
		return nil, fmt.Errorf("rasterize PDF: %w: %s", err, strings.TrimSpace(string(out)))
	}

	pages, err := filepath.Glob(prefix + "*.png")
	if err != nil || len(pages) == 0 {
		return nil, fmt.Errorf("rasterize PDF: no pages produced")
	}
	sort.Strings(pages)

	result := &ExtractedText{Method: MethodOCR}
	for i, page := range pages {
		text, confidence, err := o.fileToText(ctx, page)
		if err != nil {
			text, confidence = "", 0
		}
		result.Segments = append(result.Segments,
			fmt.Sprintf("--- Page %d ---\n%s", i+1, strings.TrimSpace(text)))
		result.PageConfidence = append(result.PageConfidence, confidence)
	}

	return result, nil
}

func (o *OCRService) fileToText(ctx context.Context, path string) (string, float64, error) {
	text, err := o.run(ctx, nil, path, "txt")
	if err != nil {
		return "", 0, fmt.Errorf("tesseract OCR %s: %w", filepath.Base(path), err)
	}

	confidence := 0.0
	if tsv, err := o.run(ctx, nil, path, "tsv"); err == nil {
		confidence = parseMeanConfidence(tsv)
	}

	return text, confidence, nil
}

func (o *OCRService) run(ctx context.Context, stdin *bytes.Reader, input, format string) (string, error) {
	args := []string{input, "stdout", "-l", o.languages}
	if format != "txt" {
		args = append(args, format)
	}
	cmd := exec.CommandContext(ctx, o.tesseractPath, args...)
	if stdin != nil {
		cmd.Stdin = stdin
	}
	output, err := cmd.Output()
	if err != nil {
		return "", err
	}
	return string(output), nil
}

// parseMeanConfidence averages the conf column of tesseract's TSV
// output, skipping the -1 placeholder rows for non-word boxes.
func parseMeanConfidence(tsv string) float64 {
	var sum float64
	var n int
	for _, line := range strings.Split(tsv, "\n")[1:] {
		fields := strings.Split(line, "\t")
		if len(fields) < 12 {
			continue
		}
		conf, err := strconv.ParseFloat(fields[10], 64)
		if err != nil || conf < 0 {
			continue
		}
		sum += conf
		n++
	}
	if n == 0 {
		return 0
	}
	return sum / float64(n)
}
