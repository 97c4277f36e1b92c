package grid

// Options is the grid configuration block of one axis.
type Options struct {
	Enabled bool

	// BorderWidth and BorderColor style the cell walls and the outer
	// boundary line.
	BorderWidth float64
	BorderColor string

	// CellHeight overrides the tick length computed from font metrics.
	CellHeight float64

	// Columns declares sub-columns. Each entry beyond the first creates an
	// additional nested category axis owned by the primary one.
	Columns []ColumnOptions
}

// ColumnOptions configures one grid sub-column.
type ColumnOptions struct {
	// Categories are the column's row labels, outermost first.
	Categories []string

	Labels LabelOptions
}
