package grid

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// LabelFormatter renders numeric tick positions as locale-aware label text
// (digit grouping, decimal separators). Category axes keep their category
// strings and never go through the formatter.
type LabelFormatter struct {
	printer *message.Printer
}

// NewLabelFormatter creates a formatter for the given locale.
func NewLabelFormatter(tag language.Tag) *LabelFormatter {
	return &LabelFormatter{printer: message.NewPrinter(tag)}
}

// Format renders a single tick value.
func (f *LabelFormatter) Format(v float64) string {
	return f.printer.Sprint(number.Decimal(v))
}

// FormatTicks fills the labels of every tick on a non-category axis from
// its position.
func (a *Axis) FormatTicks(f *LabelFormatter) {
	if a.Categories {
		return
	}
	for _, tick := range a.Ticks {
		tick.Label = f.Format(tick.Pos)
	}
}
