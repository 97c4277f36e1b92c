package grid

import (
	"math"

	"github.com/chartgeom/chart"
	"github.com/chartgeom/chart/text"
)

// Rect is a pixel-space cell rectangle.
type Rect struct {
	Left, Right, Top, Bottom float64
}

// Width returns the horizontal extent of the cell.
func (r Rect) Width() float64 { return r.Right - r.Left }

// Height returns the vertical extent of the cell.
func (r Rect) Height() float64 { return r.Bottom - r.Top }

// Center returns the geometric center of the cell.
func (r Rect) Center() chart.Point {
	return chart.Pt((r.Left+r.Right)/2, (r.Top+r.Bottom)/2)
}

// Size is a measured label extent.
type Size struct {
	Width, Height float64
}

// CellBounds computes the pixel rectangle the i-th tick's label occupies.
// Along the axis the cell runs from the tick's translated position to the
// next tick's; the last tick substitutes the axis max plus the tickmark
// offset for the missing neighbor. Across the axis the cell spans from the
// axis line to the end of the (extended) tick marks.
//
// On a reversed axis the roles of current and next swap so the cell keeps
// its visual orientation. With no tick positions the result is the zero
// rectangle: layout degrades to zero-sized cells rather than failing.
func (a *Axis) CellBounds(i int) Rect {
	if i < 0 || i >= len(a.TickPositions) {
		return Rect{}
	}
	cur := a.TickPositions[i]
	var far float64
	if i+1 < len(a.TickPositions) {
		far = a.TickPositions[i+1]
	} else {
		far = a.Max + a.TickmarkOffset
	}

	p1 := a.Translate(cur)
	p2 := a.Translate(far)
	if a.Reversed {
		p1, p2 = p2, p1
	}

	var r Rect
	if a.Side.Horizontal() {
		r.Left, r.Right = p1, p2
		if a.Side == SideBottom {
			r.Top = a.LinePosition
			r.Bottom = a.LinePosition + a.TickLength
		} else {
			r.Top = a.LinePosition - a.TickLength
			r.Bottom = a.LinePosition
		}
	} else {
		r.Top, r.Bottom = p1, p2
		if a.Side == SideLeft {
			r.Left = a.LinePosition - a.TickLength
			r.Right = a.LinePosition
		} else {
			r.Left = a.LinePosition
			r.Right = a.LinePosition + a.TickLength
		}
	}
	return r
}

// LabelAnchor computes the anchor point for label inside cell, honoring the
// axis's alignment options. The returned Y is the baseline of the label's
// first line: the vertical alignment positions the label's full line block
// (line count times line height) and then offsets to the first baseline, so
// text centers optically rather than by bounding box.
func (a *Axis) LabelAnchor(cell Rect, label string) chart.Point {
	m := a.face().Metrics()
	lines := text.Lines(label)
	if lines == 0 {
		lines = 1
	}
	blockHeight := float64(lines) * m.LineHeight()

	var x float64
	switch a.Labels.Align {
	case AlignLeft:
		x = cell.Left
	case AlignRight:
		x = cell.Right
	default:
		x = (cell.Left + cell.Right) / 2
	}

	var blockTop float64
	switch a.Labels.VAlign {
	case VAlignTop:
		blockTop = cell.Top
	case VAlignBottom:
		blockTop = cell.Bottom - blockHeight
	default:
		blockTop = (cell.Top+cell.Bottom)/2 - blockHeight/2
	}

	return chart.Pt(x, blockTop+m.Ascent)
}

// MaxLabelExtent measures every tick label, records the extents on the
// ticks, and returns the maxima. The result sizes the cell walls before the
// next layout pass.
func (a *Axis) MaxLabelExtent() Size {
	face := a.face()
	var max Size
	for _, tick := range a.Ticks {
		w, h := face.Measure(tick.Label)
		tick.LabelWidth, tick.LabelHeight = w, h
		if w > max.Width {
			max.Width = w
		}
		if h > max.Height {
			max.Height = h
		}
	}
	return max
}

// ExtendedTickLength returns the tick length that turns tick marks into
// cell walls: the labels' max height (horizontal axis) or width (vertical
// axis) plus twice the absolute horizontal label offset.
func (a *Axis) ExtendedTickLength(maxLabel Size) float64 {
	pad := 2 * math.Abs(a.Labels.PaddingX)
	if a.Side.Horizontal() {
		return maxLabel.Height + pad
	}
	return maxLabel.Width + pad
}

// UpdateSlotWidths recomputes every tick's slot width from the current cell
// bounds.
func (a *Axis) UpdateSlotWidths() {
	for i, tick := range a.Ticks {
		cell := a.CellBounds(i)
		if a.Side.Horizontal() {
			tick.SlotWidth = math.Abs(cell.Width())
		} else {
			tick.SlotWidth = math.Abs(cell.Height())
		}
	}
}

// ApplyGridDefaults rewrites the axis options the way grid cells need:
// labels centered both ways, rotation off (rotated text cannot sit in a
// cell), the auto last label suppressed on non-category axes (it would
// duplicate the closing boundary), and the tick length forced from the
// explicit cell height or from font metrics.
func (a *Axis) ApplyGridDefaults() {
	if !a.Grid.Enabled {
		return
	}
	a.Labels.Align = AlignCenter
	a.Labels.VAlign = VAlignMiddle
	a.Labels.Rotation = 0

	if !a.Categories {
		a.AddLastLabel = false
	}

	if a.Grid.CellHeight > 0 {
		a.TickLength = a.Grid.CellHeight
	} else {
		a.TickLength = a.face().Metrics().LineHeight() + 2*math.Abs(a.Labels.PaddingX)
	}
}

// BorderPath returns the extra boundary line this axis draws when it is the
// outermost one on its side, or nil otherwise. The line runs along the
// outer cell edge from the first cell to the last.
func (a *Axis) BorderPath(all []*Axis) *chart.Path {
	if !a.IsOutermost(all) || len(a.TickPositions) == 0 {
		return nil
	}
	first := a.CellBounds(0)
	last := a.CellBounds(len(a.TickPositions) - 1)

	p := chart.NewPath()
	switch a.Side {
	case SideBottom:
		p.MoveTo(first.Left, first.Bottom)
		p.LineTo(last.Right, last.Bottom)
	case SideTop:
		p.MoveTo(first.Left, first.Top)
		p.LineTo(last.Right, last.Top)
	case SideLeft:
		p.MoveTo(first.Left, first.Top)
		p.LineTo(last.Left, last.Bottom)
	case SideRight:
		p.MoveTo(first.Right, first.Top)
		p.LineTo(last.Right, last.Bottom)
	}
	return p
}
