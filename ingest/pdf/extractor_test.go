package pdf

import (
	"testing"

	"github.com/mwiersma/poliscope/ingest"
)

func TestExtractorImplementsInterface(t *testing.T) {
	var _ ingest.Extractor = (*Extractor)(nil)
}

func TestExtractEmptyContent(t *testing.T) {
	e := NewExtractor()
	if _, err := e.Extract(nil); err == nil {
		t.Error("expected error for empty content")
	}
}

func TestExtractGarbageContent(t *testing.T) {
	e := NewExtractor()
	if _, err := e.Extract([]byte("not a pdf at all")); err == nil {
		t.Error("expected error for non-PDF content")
	}
}
