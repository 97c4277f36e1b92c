package export

import (
	"fmt"
	"math"

	"github.com/chartgeom/chart/indicator"
)

// Table is a column-oriented view of a source series and any number of
// derived series, one row per source point. Cells with no value (the
// warm-up rows of a derived column, or an undefined oscillator value)
// hold NaN and are written as blanks.
type Table struct {
	Columns []string
	Rows    [][]float64
}

// ohlcColumns are the header names used when the source carries four
// components per point.
var ohlcColumns = []string{"open", "high", "low", "close"}

// FromSource builds a table over the full source range: an x column
// followed by one column per source component.
func FromSource(src indicator.Source) *Table {
	names := []string{"value"}
	if src.HasOHLC() {
		names = ohlcColumns
	}

	t := &Table{
		Columns: append([]string{"x"}, names...),
		Rows:    make([][]float64, src.Len()),
	}
	for i, x := range src.XData {
		row := make([]float64, 1, 1+len(names))
		row[0] = x
		for c := range names {
			if c < len(src.YData[i]) {
				row = append(row, src.YData[i][c])
			} else {
				row = append(row, math.NaN())
			}
		}
		t.Rows[i] = row
	}
	return t
}

// AddResult appends the result's components as columns named after name.
// Multi-component results get numbered suffixes ("stochastic", then
// "stochastic_2"). The result must not be longer than the table; its rows
// fill the tail and the warm-up rows stay blank.
func (t *Table) AddResult(name string, res indicator.Result) error {
	if res.Len() > len(t.Rows) {
		return fmt.Errorf("export: result %q has %d rows, table only %d", name, res.Len(), len(t.Rows))
	}
	offset := len(t.Rows) - res.Len()

	components := 0
	if res.Len() > 0 {
		components = len(res.YData[0])
	}
	for c := 0; c < components; c++ {
		colName := name
		if c > 0 {
			colName = fmt.Sprintf("%s_%d", name, c+1)
		}
		t.Columns = append(t.Columns, colName)
	}

	for i := range t.Rows {
		if i < offset {
			for c := 0; c < components; c++ {
				t.Rows[i] = append(t.Rows[i], math.NaN())
			}
			continue
		}
		t.Rows[i] = append(t.Rows[i], res.YData[i-offset]...)
	}
	return nil
}
