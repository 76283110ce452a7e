package poliscope

import (
	"log/slog"
	"strings"
)

// Extractor scans raw model output for a fenced code block tagged csv and
// validates it into a Table. It is pure text transformation: no network or
// file I/O, fully deterministic.
type Extractor struct {
	logger *slog.Logger
}

// ExtractorOption configures an Extractor.
type ExtractorOption func(*Extractor)

// WithLogger sets the logger used for per-row parse diagnostics.
func WithLogger(l *slog.Logger) ExtractorOption {
	return func(e *Extractor) { e.logger = l }
}

// NewExtractor creates an Extractor. Without options it logs to slog.Default.
func NewExtractor(opts ...ExtractorOption) *Extractor {
	e := &Extractor{}
	for _, opt := range opts {
		opt(e)
	}
	if e.logger == nil {
		e.logger = slog.Default()
	}
	return e
}

// Extract returns the display text and, when a usable CSV block was found,
// the parsed table.
//
// The display text is always the unmodified input: the full model narrative
// is shown regardless of whether a table was recovered. The table is nil
// when no fenced csv block exists, when its header is empty, or when every
// data row is malformed. Rows whose field count differs from the header's
// are dropped individually and logged; the surviving rows are kept in their
// original order. Only the first csv-tagged block is considered.
func (e *Extractor) Extract(raw string) (string, *Table) {
	block, ok := findCSVBlock(raw)
	if !ok {
		e.logger.Info("no csv block in model output")
		return raw, nil
	}

	table := parseCSV(block, func(row, got, want int) {
		e.logger.Warn("csv row dropped",
			"row", row, "fields", got, "want", want)
	})
	if table == nil {
		e.logger.Warn("csv block present but no valid rows, table discarded")
		return raw, nil
	}
	return raw, table
}

// findCSVBlock locates the first fenced block whose opening fence declares
// the csv language tag (case-insensitive) and returns its inner content with
// blank lines adjacent to the fences trimmed. An unterminated fence counts
// as no block.
func findCSVBlock(raw string) (string, bool) {
	lines := strings.Split(raw, "\n")
	for i, line := range lines {
		tag, ok := fenceTag(line)
		if !ok || !strings.EqualFold(tag, "csv") {
			continue
		}
		for j := i + 1; j < len(lines); j++ {
			if isClosingFence(lines[j]) {
				return trimBlankLines(lines[i+1 : j]), true
			}
		}
		return "", false
	}
	return "", false
}

// fenceTag returns the language tag of an opening fence line. Fences may be
// indented up to three spaces, per the usual markdown rules.
func fenceTag(line string) (string, bool) {
	s := strings.TrimLeft(line, " ")
	if len(line)-len(s) > 3 || !strings.HasPrefix(s, "```") {
		return "", false
	}
	return strings.TrimSpace(s[3:]), true
}

// isClosingFence reports whether the line closes a fenced block: a fence
// with no tag.
func isClosingFence(line string) bool {
	tag, ok := fenceTag(line)
	return ok && tag == ""
}

// trimBlankLines drops whitespace-only lines at both ends, keeping the block
// content itself verbatim.
func trimBlankLines(lines []string) string {
	start, end := 0, len(lines)
	for start < end && strings.TrimSpace(lines[start]) == "" {
		start++
	}
	for end > start && strings.TrimSpace(lines[end-1]) == "" {
		end--
	}
	return strings.Join(lines[start:end], "\n")
}
