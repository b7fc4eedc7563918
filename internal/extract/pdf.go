package extract

import (
	"bytes"
	"fmt"

	"github.com/ledongthuc/pdf"
)

// extractPDF reads the native text layer page by page. A single page
// failing to decode degrades to an empty segment rather than aborting
// the document.
func extractPDF(content []byte) (*ExtractedText, error) {
	reader, err := pdf.NewReader(bytes.NewReader(content), int64(len(content)))
	if err != nil {
		return nil, fmt.Errorf("open PDF: %w", err)
	}

	numPages := reader.NumPage()
	segments := make([]string, 0, numPages)

	for i := 1; i <= numPages; i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			segments = append(segments, "")
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			segments = append(segments, "")
			continue
		}
		segments = append(segments, text)
	}

	return &ExtractedText{Segments: segments, Method: MethodNative}, nil
}
