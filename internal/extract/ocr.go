package extract

import (
	"context"
	"fmt"
	"image/png"
	"log"
	"os"
	"os/exec"
	"strings"

	"github.com/gen2brain/go-fitz"
)

// ocrDPI is the render resolution for scanned pages.
const ocrDPI = 300

// ocrPDF renders each page to an image and runs tesseract over it,
// concatenating the per-page output. Individual page failures are
// skipped; an error is returned only when no page produced text.
func (e *Extractor) ocrPDF(ctx context.Context, doc *fitz.Document) (string, error) {
	var sb strings.Builder
	var lastErr error

	for n := 0; n < doc.NumPage(); n++ {
		pageText, err := e.ocrPage(ctx, doc, n)
		if err != nil {
			lastErr = fmt.Errorf("page %d: %w", n+1, err)
			log.Printf("extract: %v", lastErr)
			continue
		}
		log.Printf("extract: page %d OCR output: %d characters", n+1, len(pageText))
		if pageText != "" {
			sb.WriteString(pageText)
			sb.WriteString("\n")
		}
	}

	text := sb.String()
	if strings.TrimSpace(text) == "" {
		if lastErr != nil {
			return "", lastErr
		}
		return "", fmt.Errorf("no text recognized in any page")
	}
	return text, nil
}

// ocrPage renders one page at ocrDPI, writes it to a temp PNG and runs
// tesseract on it.
func (e *Extractor) ocrPage(ctx context.Context, doc *fitz.Document, n int) (string, error) {
	img, err := doc.ImageDPI(n, ocrDPI)
	if err != nil {
		return "", fmt.Errorf("render failed: %w", err)
	}

	tmp, err := os.CreateTemp("", "resume-page-*.png")
	if err != nil {
		return "", fmt.Errorf("temp file: %w", err)
	}
	tmpPath := tmp.Name()
	defer os.Remove(tmpPath)

	if err := png.Encode(tmp, img); err != nil {
		tmp.Close()
		return "", fmt.Errorf("png encode: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return "", fmt.Errorf("temp file close: %w", err)
	}

	cmd := exec.CommandContext(ctx, e.tesseractCmd, tmpPath, "stdout", "-l", "eng")
	out, err := cmd.CombinedOutput()
	if err != nil {
		return "", fmt.Errorf("tesseract: %w (output: %s)", err, strings.TrimSpace(string(out)))
	}
	return strings.TrimSpace(string(out)), nil
}
