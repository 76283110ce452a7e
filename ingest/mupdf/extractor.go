// Package mupdf provides a MuPDF-backed PDF text extractor.
//
// It uses gen2brain/go-fitz (CGO binding to MuPDF), which copes with
// documents the pure-Go extractor cannot read. Pair it with ingest/pdf in
// an ingest.Fallback chain.
package mupdf

import (
	"fmt"
	"strings"

	"github.com/gen2brain/go-fitz"

	"github.com/mwiersma/poliscope/ingest"
)

// Extractor implements ingest.Extractor for PDF documents via MuPDF.
type Extractor struct{}

// NewExtractor creates a MuPDF extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract extracts plain text from a PDF document, page by page.
func (e *Extractor) Extract(content []byte) (string, error) {
	if len(content) == 0 {
		return "", fmt.Errorf("empty PDF content")
	}

	doc, err := fitz.NewFromMemory(content)
	if err != nil {
		return "", fmt.Errorf("open pdf: %w", err)
	}
	defer doc.Close()

	var text strings.Builder
	for i := 0; i < doc.NumPage(); i++ {
		pageText, err := doc.Text(i)
		if err != nil {
			continue // skip unreadable pages
		}
		pageText = strings.TrimSpace(pageText)
		if pageText == "" {
			continue
		}
		if text.Len() > 0 {
			text.WriteString("\n\n")
		}
		text.WriteString(pageText)
	}

	return ingest.Normalize(text.String()), nil
}
