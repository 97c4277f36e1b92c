package export

import (
	"encoding/csv"
	"io"
	"math"
	"strconv"
)

// WriteCSV writes the table with a header row. Blank cells are emitted as
// empty fields.
func (t *Table) WriteCSV(w io.Writer) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(t.Columns); err != nil {
		return err
	}
	record := make([]string, len(t.Columns))
	for _, row := range t.Rows {
		for i := range record {
			record[i] = ""
			if i < len(row) && !math.IsNaN(row[i]) {
				record[i] = strconv.FormatFloat(row[i], 'f', -1, 64)
			}
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
