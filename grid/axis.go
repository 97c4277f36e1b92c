package grid

import (
	"github.com/chartgeom/chart"
	"github.com/chartgeom/chart/text"
)

// Side identifies which chart edge an axis sits on.
type Side int

const (
	SideTop Side = iota
	SideRight
	SideBottom
	SideLeft
)

// Horizontal reports whether axes on this side run horizontally.
func (s Side) Horizontal() bool {
	return s == SideTop || s == SideBottom
}

// Align is the horizontal label alignment inside a cell.
type Align int

const (
	AlignCenter Align = iota
	AlignLeft
	AlignRight
)

// VAlign is the vertical label alignment inside a cell.
type VAlign int

const (
	VAlignMiddle VAlign = iota
	VAlignTop
	VAlignBottom
)

// LabelOptions carries the label styling the grid layout reads and, through
// ApplyGridDefaults, rewrites.
type LabelOptions struct {
	Align    Align
	VAlign   VAlign
	Rotation float64

	// PaddingX is the horizontal offset applied to labels; its absolute
	// value widens the extended tick length on both sides.
	PaddingX float64

	// FontSize in pixels, used for heuristic metrics when no Face is set.
	FontSize float64
}

// Tick is one axis tick with its label and the measured label extents.
// SlotWidth is derived during layout and mutated between passes.
type Tick struct {
	Pos   float64
	Label string

	LabelWidth  float64
	LabelHeight float64

	SlotWidth float64
}

// Axis is the slice of the host axis model the grid layout operates on.
// The host engine owns tick generation and scaling; it hands this struct
// the results plus a translate function mapping axis values to pixels.
type Axis struct {
	Side     Side
	Index    int
	Internal bool
	Reversed bool

	// Categories marks a category axis; tick positions then sit on integer
	// category indices and TickmarkOffset is usually 0.5.
	Categories bool

	Min, Max       float64
	TickInterval   float64
	TickmarkOffset float64
	TickPositions  []float64
	Ticks          []*Tick

	// LinePosition is the pixel position of the axis line along the
	// direction perpendicular to the axis.
	LinePosition float64

	// TickLength is the length of tick marks; the grid layout extends it
	// so ticks form cell walls.
	TickLength float64

	Labels LabelOptions

	// AddLastLabel mirrors the host's auto last-label-at-axis-end
	// behavior; grid defaults suppress it for non-category axes.
	AddLastLabel bool

	// Face measures labels. The zero Face falls back to size heuristics.
	Face text.Face

	Grid Options

	// LinkedParent points to the primary axis when this axis mirrors
	// another one's range (a secondary linked axis).
	LinkedParent *Axis

	// Columns are the child sub-axes created from Grid.Columns; owner is
	// set on each child. A child's ColumnIndex is its position.
	Columns     []*Axis
	ColumnIndex int
	owner       *Axis

	// Translator maps an axis value to a pixel position along the axis.
	Translator func(value float64) float64

	// Border is the extra boundary line computed at the AfterRender stage
	// when this axis is the outermost on its side, nil otherwise.
	Border *chart.Path
}

// Translate maps an axis value to a pixel position. Without a translator
// every value maps to zero, which degrades layout to zero-sized cells
// instead of failing.
func (a *Axis) Translate(value float64) float64 {
	if a.Translator == nil {
		return 0
	}
	return a.Translator(value)
}

// face returns the measuring face, substituting size heuristics when none
// was provided.
func (a *Axis) face() text.Face {
	if a.Face != (text.Face{}) {
		return a.Face
	}
	size := a.Labels.FontSize
	if size <= 0 {
		size = 11
	}
	return text.HeuristicFace(size)
}

// IsOutermost reports whether this axis draws the extra boundary line on
// its side. Among all non-internal axes on the same side, the axis (or,
// for a column, its owner) must carry the highest index; a column
// additionally has to be the last column of its owner.
func (a *Axis) IsOutermost(all []*Axis) bool {
	self := a
	if a.owner != nil {
		if a.ColumnIndex != len(a.owner.Columns)-1 {
			return false
		}
		self = a.owner
	}

	highest := -1
	for _, other := range all {
		if other.Internal || other.Side != self.Side {
			continue
		}
		if other.Index > highest {
			highest = other.Index
		}
	}
	return self.Index == highest && highest >= 0
}

// ClampLinkedTicks keeps tick positions that fall within one tick interval
// beyond the linked parent's range, clamping them onto the boundary, and
// drops positions farther out. Without this a linked axis shows an apparent
// gap at its edge where the parent's range cut a tick. Axes without a
// linked parent are left untouched.
func (a *Axis) ClampLinkedTicks() {
	if a.LinkedParent == nil || len(a.TickPositions) == 0 {
		return
	}
	interval := a.TickInterval
	if interval <= 0 {
		interval = 1
	}
	min, max := a.LinkedParent.Min, a.LinkedParent.Max

	kept := a.TickPositions[:0]
	for _, pos := range a.TickPositions {
		switch {
		case pos < min:
			if min-pos < interval {
				kept = append(kept, min)
			}
		case pos > max:
			if pos-max < interval {
				kept = append(kept, max)
			}
		default:
			kept = append(kept, pos)
		}
	}
	a.TickPositions = kept
}
