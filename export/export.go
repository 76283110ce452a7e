// Package export serializes a recovered comparison table into downloadable
// artifacts: comma-separated text and an XLSX workbook.
package export

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	poliscope "github.com/mwiersma/poliscope"
)

const sheetName = "Comparison"

// BaseFilename is the download name without extension.
const BaseFilename = "policy-comparison"

// CSV returns the table as comma-separated text, re-quoting any field
// containing a comma, quote, or newline.
func CSV(t *poliscope.Table) []byte {
	return t.CSV()
}

// XLSX returns the table as an XLSX workbook: a bold header row followed by
// the data rows.
func XLSX(t *poliscope.Table) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	index, err := f.NewSheet(sheetName)
	if err != nil {
		return nil, err
	}
	f.SetActiveSheet(index)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, err
	}

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return nil, err
	}
	for i, h := range t.Header {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetCellStr(sheetName, cell, h); err != nil {
			return nil, err
		}
		if err := f.SetCellStyle(sheetName, cell, cell, bold); err != nil {
			return nil, err
		}
	}

	for r, row := range t.Rows {
		for c, val := range row {
			cell, err := excelize.CoordinatesToCellName(c+1, r+2)
			if err != nil {
				return nil, err
			}
			if err := f.SetCellStr(sheetName, cell, val); err != nil {
				return nil, err
			}
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}
	return buf.Bytes(), nil
}
