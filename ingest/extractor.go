// Package ingest provides plain-text extraction from uploaded documents.
//
// Concrete extractors live in subpackages so their dependencies are only
// pulled in by users who need them: ingest/pdf (pure Go) and ingest/mupdf
// (MuPDF via CGO).
package ingest

import (
	"errors"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// Extractor produces plain text from a document's raw bytes.
type Extractor interface {
	Extract(content []byte) (string, error)
}

// Fallback chains extractors: the first one that returns non-empty text
// wins. An extractor's failure is not fatal while a later one can still
// deliver text; when all fail, the joined errors are returned.
type Fallback []Extractor

func (f Fallback) Extract(content []byte) (string, error) {
	var errs []error
	for _, e := range f {
		text, err := e.Extract(content)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		if strings.TrimSpace(text) != "" {
			return text, nil
		}
	}
	if len(errs) == len(f) && len(errs) > 0 {
		return "", errors.Join(errs...)
	}
	return "", nil
}

// Normalize trims surrounding whitespace and normalizes the text to NFC.
// PDF extractors tend to emit decomposed accents and ligatures.
func Normalize(s string) string {
	return norm.NFC.String(strings.TrimSpace(s))
}
