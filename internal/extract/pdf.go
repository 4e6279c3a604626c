package extract

import (
	"context"
	"log"
	"strings"

	"github.com/gen2brain/go-fitz"
)

// extractPDF pulls text from each page directly, falling back to OCR
// when the whole document comes back empty or whitespace-only (a
// scanned PDF).
func (e *Extractor) extractPDF(ctx context.Context, path string) (string, Diagnosis) {
	doc, err := fitz.New(path)
	if err != nil {
		log.Printf("extract: failed to open PDF %s: %v", path, err)
		return "", DiagParseError
	}
	defer doc.Close()

	var sb strings.Builder
	for n := 0; n < doc.NumPage(); n++ {
		pageText, err := doc.Text(n)
		if err != nil {
			log.Printf("extract: page %d: text extraction failed: %v", n+1, err)
			continue
		}
		log.Printf("extract: page %d: %d characters", n+1, len(pageText))
		if pageText != "" {
			sb.WriteString(pageText)
			sb.WriteString("\n")
		}
	}

	text := sb.String()
	if strings.TrimSpace(text) != "" {
		return text, DiagDirect
	}

	log.Printf("extract: %s has no embedded text, trying OCR fallback", path)
	ocrText, err := e.ocrPDF(ctx, doc)
	if err != nil {
		log.Printf("extract: OCR fallback failed: %v", err)
		return "", DiagEmpty
	}
	return ocrText, DiagOCR
}
