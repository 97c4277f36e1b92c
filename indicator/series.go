package indicator

// OHLC component indices into a 4-value data row.
const (
	IndexOpen = iota
	IndexHigh
	IndexLow
	IndexClose
)

// Source is the input series an indicator reads: parallel X (time or
// ordinal, strictly ordered) and Y sequences. Y rows hold either a single
// scalar or the four OHLC components.
type Source struct {
	XData []float64
	YData [][]float64
}

// Len returns the number of data points.
func (s Source) Len() int { return len(s.XData) }

// HasOHLC reports whether every Y row carries the four OHLC components.
func (s Source) HasOHLC() bool {
	if len(s.YData) == 0 {
		return false
	}
	for _, row := range s.YData {
		if len(row) < 4 {
			return false
		}
	}
	return true
}

// Column extracts one value per point: scalar rows yield their single
// value, OHLC rows the component at index. Out-of-range indices fall back
// to the first component rather than failing mid-series.
func (s Source) Column(index int) []float64 {
	out := make([]float64, len(s.YData))
	for i, row := range s.YData {
		switch {
		case len(row) == 0:
			out[i] = 0
		case index < len(row):
			out[i] = row[index]
		default:
			out[i] = row[0]
		}
	}
	return out
}

// FromScalars builds a Source from a plain value series.
func FromScalars(x, y []float64) Source {
	rows := make([][]float64, len(y))
	for i, v := range y {
		rows[i] = []float64{v}
	}
	return Source{XData: x, YData: rows}
}

// Result is a derived series aligned to a suffix of the input range. YData
// rows carry one component for single-line indicators and several for
// multi-line ones (Stochastic emits %K and %D).
type Result struct {
	XData []float64
	YData [][]float64
}

// Len returns the number of output points.
func (r Result) Len() int { return len(r.XData) }

// Values returns the combined [x, y...] rows, the layout chart tooltips
// and data export consume.
func (r Result) Values() [][]float64 {
	out := make([][]float64, len(r.XData))
	for i, x := range r.XData {
		row := make([]float64, 0, 1+len(r.YData[i]))
		row = append(row, x)
		row = append(row, r.YData[i]...)
		out[i] = row
	}
	return out
}

// Line returns a single output component as a flat series.
func (r Result) Line(component int) []float64 {
	out := make([]float64, len(r.YData))
	for i, row := range r.YData {
		if component < len(row) {
			out[i] = row[component]
		}
	}
	return out
}
