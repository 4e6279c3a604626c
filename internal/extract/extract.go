// Package extract converts uploaded resume files (PDF, DOCX, DOC) into
// plain text. PDFs are read page by page, with an OCR fallback for
// scanned documents; Word files are read paragraph by paragraph and
// table by table. Library failures degrade to empty output rather than
// propagating; only validation failures return an error.
package extract

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
)

// DefaultMaxFileSize is the upload size cap, 100 MB.
const DefaultMaxFileSize = 100 * 1024 * 1024

// Diagnosis tells callers how the (possibly empty) text was produced,
// so an unreadable scan can be distinguished from a corrupt file.
type Diagnosis string

const (
	// DiagDirect means text came from direct extraction.
	DiagDirect Diagnosis = "direct"
	// DiagOCR means direct extraction was empty and OCR produced the text.
	DiagOCR Diagnosis = "ocr"
	// DiagEmpty means extraction ran but yielded no usable text.
	DiagEmpty Diagnosis = "empty"
	// DiagParseError means the file could not be parsed at all.
	DiagParseError Diagnosis = "parse_error"
	// DiagInvalid means the file was rejected before extraction started.
	DiagInvalid Diagnosis = "invalid"
)

var allowedExtensions = map[string]bool{
	"pdf":  true,
	"docx": true,
	"doc":  true,
}

// Extractor produces plain text from resume files. It never deletes or
// moves the source file.
type Extractor struct {
	maxFileSize  int64
	tesseractCmd string
}

// NewExtractor creates an extractor. Zero maxFileSize uses
// DefaultMaxFileSize; empty tesseractCmd uses "tesseract" from PATH.
func NewExtractor(maxFileSize int64, tesseractCmd string) *Extractor {
	if maxFileSize <= 0 {
		maxFileSize = DefaultMaxFileSize
	}
	if tesseractCmd == "" {
		tesseractCmd = "tesseract"
	}
	return &Extractor{maxFileSize: maxFileSize, tesseractCmd: tesseractCmd}
}

// AllowedFile reports whether the filename carries a supported extension.
func AllowedFile(filename string) bool {
	return allowedExtensions[normalizeExt(filepath.Ext(filename))]
}

func normalizeExt(ext string) string {
	return strings.ToLower(strings.TrimPrefix(ext, "."))
}

// Validate checks existence, size bounds and extension. Violations
// return a *ValidationError; no extraction is attempted on failure.
func (e *Extractor) Validate(path, declaredExt string) error {
	info, err := os.Stat(path)
	if err != nil {
		return &ValidationError{Path: path, Reason: "file not found"}
	}
	if info.Size() > e.maxFileSize {
		return &ValidationError{Path: path, Reason: fmt.Sprintf("file too large (%d bytes)", info.Size())}
	}
	if info.Size() == 0 {
		return &ValidationError{Path: path, Reason: "file is empty"}
	}
	if !allowedExtensions[normalizeExt(declaredExt)] {
		return &ValidationError{Path: path, Reason: fmt.Sprintf("unsupported file type %q, allowed: pdf, docx, doc", declaredExt)}
	}
	return nil
}

// Extract converts the file at path into normalized plain text. The
// declared extension drives format dispatch. Parse failures are logged
// and return empty text with a diagnosis; callers must treat empty
// output as "no usable text".
func (e *Extractor) Extract(ctx context.Context, path, declaredExt string) (string, Diagnosis, error) {
	log.Printf("extract: starting text extraction for %s", path)
	if err := e.Validate(path, declaredExt); err != nil {
		log.Printf("extract: validation failed: %v", err)
		return "", DiagInvalid, err
	}

	var (
		text string
		diag Diagnosis
	)
	switch normalizeExt(declaredExt) {
	case "pdf":
		text, diag = e.extractPDF(ctx, path)
	case "docx", "doc":
		text, diag = extractDocx(path)
	}

	text = CleanText(text)
	if text == "" && diag != DiagParseError {
		diag = DiagEmpty
	}
	log.Printf("extract: finished %s (%d chars, %s)", path, len(text), diag)
	return text, diag, nil
}
