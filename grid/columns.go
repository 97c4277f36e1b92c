package grid

import "github.com/chartgeom/chart"

// SetupColumns creates the child sub-axes declared by Grid.Columns. With N
// column entries the primary axis represents the first and N-1 additional
// nested axes are created for the rest, each a category axis owned by this
// one. Children never join the chart's general axis list; the host runs
// every layout stage on the owner and the owner fans it out in column
// order.
//
// Calling SetupColumns again rebuilds the children from the current
// options.
func (a *Axis) SetupColumns() {
	a.Columns = nil
	if len(a.Grid.Columns) < 2 {
		return
	}
	for i, col := range a.Grid.Columns[1:] {
		child := &Axis{
			Side:           a.Side,
			Index:          a.Index,
			Reversed:       a.Reversed,
			Categories:     true,
			TickmarkOffset: 0.5,
			Labels:         col.Labels,
			Face:           a.Face,
			Grid:           Options{Enabled: true},
			ColumnIndex:    i + 1,
			owner:          a,
			Translator:     a.Translator,
		}
		child.Min = 0
		child.Max = float64(len(col.Categories))
		positions := make([]float64, len(col.Categories))
		ticks := make([]*Tick, len(col.Categories))
		for j, cat := range col.Categories {
			positions[j] = float64(j)
			ticks[j] = &Tick{Pos: float64(j), Label: cat}
		}
		child.TickPositions = positions
		child.Ticks = ticks
		a.Columns = append(a.Columns, child)
	}
	chart.Logger().Debug("grid columns created",
		"axis", a.Index, "columns", len(a.Columns)+1)
}

// EachColumn invokes fn on every child column in column-index order.
func (a *Axis) EachColumn(fn func(*Axis)) {
	for _, col := range a.Columns {
		fn(col)
	}
}

// Owner returns the column owner, or nil for a primary axis.
func (a *Axis) Owner() *Axis { return a.owner }

// Destroy releases the axis and all of its columns. Columns are owned by
// the primary axis and never outlive it.
func (a *Axis) Destroy() {
	for _, col := range a.Columns {
		col.Destroy()
	}
	a.Columns = nil
	a.Ticks = nil
	a.TickPositions = nil
	a.Translator = nil
}
