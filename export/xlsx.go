package export

import (
	"fmt"
	"io"
	"math"

	"github.com/xuri/excelize/v2"
)

// DefaultSheet is the sheet name the XLSX writers write into.
const DefaultSheet = "Data"

// WriteXLSX writes the table as a single-sheet workbook.
func (t *Table) WriteXLSX(w io.Writer) error {
	f, err := t.workbook()
	if err != nil {
		return err
	}
	defer f.Close()
	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("export: write workbook: %w", err)
	}
	return nil
}

// SaveXLSX writes the workbook to path.
func (t *Table) SaveXLSX(path string) error {
	f, err := t.workbook()
	if err != nil {
		return err
	}
	defer f.Close()
	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("export: save %s: %w", path, err)
	}
	return nil
}

func (t *Table) workbook() (*excelize.File, error) {
	f := excelize.NewFile()
	if err := f.SetSheetName("Sheet1", DefaultSheet); err != nil {
		f.Close()
		return nil, fmt.Errorf("export: rename sheet: %w", err)
	}

	header := make([]interface{}, len(t.Columns))
	for i, c := range t.Columns {
		header[i] = c
	}
	if err := f.SetSheetRow(DefaultSheet, "A1", &header); err != nil {
		f.Close()
		return nil, fmt.Errorf("export: write header: %w", err)
	}

	cells := make([]interface{}, len(t.Columns))
	for r, row := range t.Rows {
		for i := range cells {
			cells[i] = nil
			if i < len(row) && !math.IsNaN(row[i]) {
				cells[i] = row[i]
			}
		}
		cell, err := excelize.CoordinatesToCellName(1, r+2)
		if err != nil {
			f.Close()
			return nil, fmt.Errorf("export: row %d: %w", r, err)
		}
		if err := f.SetSheetRow(DefaultSheet, cell, &cells); err != nil {
			f.Close()
			return nil, fmt.Errorf("export: write row %d: %w", r, err)
		}
	}
	return f, nil
}
