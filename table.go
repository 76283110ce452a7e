package poliscope

import (
	"bytes"
	"encoding/csv"
	"errors"
	"io"
	"strings"
)

// Table is a parsed comparison table. Every row has exactly len(Header)
// cells; Header has at least one non-empty name.
type Table struct {
	Header []string
	Rows   [][]string
}

// CSV serializes the table back to comma-separated text. Fields containing a
// comma, quote, or newline are re-quoted, so CSV output re-parses to an
// equal table.
func (t *Table) CSV() []byte {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	w.Write(t.Header)
	for _, row := range t.Rows {
		w.Write(row)
	}
	w.Flush()
	return buf.Bytes()
}

// Equal reports whether both tables have the same header and rows,
// field for field.
func (t *Table) Equal(o *Table) bool {
	if t == nil || o == nil {
		return t == o
	}
	if !equalFields(t.Header, o.Header) || len(t.Rows) != len(o.Rows) {
		return false
	}
	for i := range t.Rows {
		if !equalFields(t.Rows[i], o.Rows[i]) {
			return false
		}
	}
	return true
}

func equalFields(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// ParseTable parses comma-separated text into a Table using the same rules
// as the response extractor: first non-blank line is the header, quoted
// fields may embed commas, newlines, and doubled quotes, and rows whose
// field count differs from the header are dropped. It returns an error when
// no valid table remains.
func ParseTable(csvText string) (*Table, error) {
	t := parseCSV(csvText, nil)
	if t == nil {
		return nil, errors.New("no valid table in csv text")
	}
	return t, nil
}

// parseCSV is the shared parsing core. onDrop, when non-nil, is invoked for
// every data row whose field count differs from the header's.
func parseCSV(block string, onDrop func(row, got, want int)) *Table {
	// Strip BOM if present.
	block = strings.TrimPrefix(block, "\ufeff")

	r := csv.NewReader(strings.NewReader(block))
	r.LazyQuotes = true
	r.TrimLeadingSpace = true
	r.FieldsPerRecord = -1

	header := readHeader(r)
	if header == nil {
		return nil
	}

	var rows [][]string
	row := 0 // ordinal of the current data row; blank records don't count
	for {
		rec, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			// Unreadable record; keep going, the remaining rows may be fine.
			row++
			if onDrop != nil {
				onDrop(row, 0, len(header))
			}
			continue
		}
		if blankRecord(rec) {
			continue
		}
		row++
		if len(rec) != len(header) {
			if onDrop != nil {
				onDrop(row, len(rec), len(header))
			}
			continue
		}
		rows = append(rows, rec)
	}

	if len(rows) == 0 {
		return nil
	}
	return &Table{Header: header, Rows: rows}
}

// readHeader returns the first non-blank record with cells trimmed. A
// header row that is present but has only empty cells (e.g. ",,") makes the
// whole table unusable, so nil is returned rather than trying the next line.
func readHeader(r *csv.Reader) []string {
	for {
		rec, err := r.Read()
		if err != nil {
			return nil
		}
		if len(rec) == 1 && strings.TrimSpace(rec[0]) == "" {
			continue // blank line before the header
		}
		header := make([]string, len(rec))
		any := false
		for i, cell := range rec {
			header[i] = strings.TrimSpace(cell)
			if header[i] != "" {
				any = true
			}
		}
		if !any {
			return nil
		}
		return header
	}
}

func blankRecord(rec []string) bool {
	for _, cell := range rec {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}
