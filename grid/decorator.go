package grid

// Stage is an explicit axis lifecycle point. The host axis engine calls
// Decorator.Apply with the stage it just finished, replacing the original
// design's implicit event-hook dispatch with plain composition.
type Stage int

const (
	// AfterInit runs once the axis options exist: grid defaults are
	// applied and sub-columns created.
	AfterInit Stage = iota

	// AfterSetScale runs when the axis range and tick positions are set:
	// linked-axis stragglers are clamped onto the boundary.
	AfterSetScale

	// AfterGetOffset runs during offset/size negotiation: labels are
	// measured and the tick length extended into cell walls.
	AfterGetOffset

	// AfterRender runs after the host painted the axis: slot widths are
	// refreshed for hit testing and the outer border line is derived.
	AfterRender

	// BeforeDestroy runs before the host tears the axis down.
	BeforeDestroy
)

// Decorator layers grid-cell behavior onto a plain Axis at defined
// lifecycle points. Every stage that runs on the primary axis also runs on
// each of its columns, in column-index order.
type Decorator struct {
	Axis *Axis

	// AllAxes is the chart's current axis list, needed for the
	// outermost-axis decision at render time.
	AllAxes []*Axis
}

// Apply runs the grid behavior for one lifecycle stage.
func (d *Decorator) Apply(stage Stage) {
	d.applyTo(d.Axis, stage)
	d.Axis.EachColumn(func(col *Axis) {
		d.applyTo(col, stage)
	})
}

func (d *Decorator) applyTo(a *Axis, stage Stage) {
	if !a.Grid.Enabled {
		return
	}
	switch stage {
	case AfterInit:
		a.ApplyGridDefaults()
		if a.Owner() == nil {
			a.SetupColumns()
		}
	case AfterSetScale:
		a.ClampLinkedTicks()
	case AfterGetOffset:
		if a.Grid.CellHeight <= 0 {
			a.TickLength = a.ExtendedTickLength(a.MaxLabelExtent())
		}
	case AfterRender:
		a.UpdateSlotWidths()
		a.Border = a.BorderPath(d.AllAxes)
	case BeforeDestroy:
		if a.Owner() == nil {
			a.Destroy()
		}
	}
}
