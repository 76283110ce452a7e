package export

import (
	"bytes"
	"testing"

	"github.com/xuri/excelize/v2"

	poliscope "github.com/mwiersma/poliscope"
)

func sampleTable() *poliscope.Table {
	return &poliscope.Table{
		Header: []string{"Subject", "ASR", "Other", "Diff"},
		Rows: [][]string{
			{"Deductible", "€500, standard", "€250", "Lower at Other"},
			{"Coverage", "Full", "Partial", "ASR broader"},
		},
	}
}

func TestCSVMatchesTableSerialization(t *testing.T) {
	tbl := sampleTable()
	if !bytes.Equal(CSV(tbl), tbl.CSV()) {
		t.Error("export.CSV diverges from Table.CSV")
	}
}

func TestXLSXReadBack(t *testing.T) {
	data, err := XLSX(sampleTable())
	if err != nil {
		t.Fatal(err)
	}

	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	rows, err := f.GetRows(sheetName)
	if err != nil {
		t.Fatal(err)
	}
	if len(rows) != 3 {
		t.Fatalf("rows = %d, want 3 (header + 2)", len(rows))
	}
	if rows[0][0] != "Subject" {
		t.Errorf("header cell = %q", rows[0][0])
	}
	if rows[1][1] != "€500, standard" {
		t.Errorf("data cell = %q", rows[1][1])
	}
}
