// Package extract produces bounded text samples from opinion files.
//
// Extraction is intentionally shallow: the classifier only needs the first
// few pages of a document, and a document that cannot be read is simply
// classified from its filename. Extract therefore never returns an error;
// any failure yields an empty string.
package extract

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/ledongthuc/pdf"
)

const (
	// MaxTextBytes bounds the sample taken from plain-text files.
	MaxTextBytes = 5000

	// MaxPDFPages bounds how many pages of a PDF are read.
	MaxPDFPages = 3
)

// Extract returns a bounded text sample for the file at path.
// PDF files yield up to the first three pages joined with page markers;
// plain-text files yield up to the first 5000 bytes. Any other extension,
// or any read failure, yields an empty string.
func Extract(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".pdf":
		return extractPDF(path)
	case ".txt":
		return extractText(path)
	default:
		return ""
	}
}

func extractText(path string) string {
	data, err := os.ReadFile(path)
	if err != nil {
		slog.Warn("Failed to read text file", "path", path, "error", err)
		return ""
	}
	if len(data) > MaxTextBytes {
		data = data[:MaxTextBytes]
	}
	return string(data)
}

func extractPDF(path string) (text string) {
	// The pdf package panics on some malformed files; a corrupt document
	// must classify as unknown rather than abort the pipeline.
	defer func() {
		if r := recover(); r != nil {
			slog.Warn("PDF extraction panicked", "path", path, "panic", r)
			text = ""
		}
	}()

	f, reader, err := pdf.Open(path)
	if err != nil {
		slog.Warn("Failed to open PDF", "path", path, "error", err)
		return ""
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil {
			slog.Debug("Failed to close PDF", "path", path, "error", closeErr)
		}
	}()

	pages := reader.NumPage()
	if pages > MaxPDFPages {
		pages = MaxPDFPages
	}

	var sb strings.Builder
	for i := 1; i <= pages; i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}

		pageText, err := page.GetPlainText(nil)
		if err != nil {
			slog.Warn("Failed to extract PDF page", "path", path, "page", i, "error", err)
			continue
		}
		if pageText == "" {
			continue
		}

		fmt.Fprintf(&sb, "\n--- Page %d ---\n", i)
		sb.WriteString(pageText)
	}

	return sb.String()
}
