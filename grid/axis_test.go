package grid

import (
	"testing"
)

func TestIsOutermostPicksHighestSameSideIndex(t *testing.T) {
	a0 := &Axis{Side: SideLeft, Index: 0}
	a1 := &Axis{Side: SideLeft, Index: 1}
	a2 := &Axis{Side: SideLeft, Index: 2}
	all := []*Axis{a0, a1, a2}

	if a0.IsOutermost(all) {
		t.Error("index 0 reported outermost")
	}
	if a1.IsOutermost(all) {
		t.Error("index 1 reported outermost")
	}
	if !a2.IsOutermost(all) {
		t.Error("index 2 (highest on side) must be outermost")
	}
}

func TestIsOutermostIgnoresOtherSidesAndInternal(t *testing.T) {
	left := &Axis{Side: SideLeft, Index: 0}
	internal := &Axis{Side: SideLeft, Index: 5, Internal: true}
	bottom := &Axis{Side: SideBottom, Index: 9}
	all := []*Axis{left, internal, bottom}

	if !left.IsOutermost(all) {
		t.Error("internal axes must not count for the outermost decision")
	}
	if !bottom.IsOutermost(all) {
		t.Error("axes on other sides must not count")
	}
}

func TestIsOutermostColumns(t *testing.T) {
	owner := &Axis{
		Side:  SideLeft,
		Index: 1,
		Grid: Options{Enabled: true, Columns: []ColumnOptions{
			{Categories: []string{"a", "b"}},
			{Categories: []string{"c", "d"}},
			{Categories: []string{"e", "f"}},
		}},
	}
	owner.SetupColumns()
	lower := &Axis{Side: SideLeft, Index: 0}
	all := []*Axis{lower, owner}

	// Only the last column of the highest-index owner is outermost.
	if owner.Columns[0].IsOutermost(all) {
		t.Error("inner column reported outermost")
	}
	if !owner.Columns[1].IsOutermost(all) {
		t.Error("last column of the outermost owner must be outermost")
	}
}

func TestClampLinkedTicks(t *testing.T) {
	parent := &Axis{Min: 0, Max: 10}
	a := &Axis{
		LinkedParent:  parent,
		TickInterval:  2,
		TickPositions: []float64{-3, -1, 0, 4, 8, 11, 14},
	}
	a.ClampLinkedTicks()

	want := []float64{0, 0, 4, 8, 10}
	if len(a.TickPositions) != len(want) {
		t.Fatalf("positions = %v, want %v", a.TickPositions, want)
	}
	for i := range want {
		if a.TickPositions[i] != want[i] {
			t.Errorf("position %d = %v, want %v", i, a.TickPositions[i], want[i])
		}
	}
}

func TestClampLinkedTicksNoParentNoChange(t *testing.T) {
	a := &Axis{TickInterval: 1, TickPositions: []float64{-5, 0, 5}}
	a.ClampLinkedTicks()
	if len(a.TickPositions) != 3 {
		t.Errorf("unlinked axis positions changed: %v", a.TickPositions)
	}
}

func TestSetupColumns(t *testing.T) {
	a := &Axis{
		Side:     SideLeft,
		Index:    2,
		Reversed: true,
		Grid: Options{Enabled: true, Columns: []ColumnOptions{
			{Categories: []string{"p", "q", "r"}},
			{Categories: []string{"x", "y"}},
		}},
	}
	a.SetupColumns()

	// Two declared columns: the primary covers the first, one child covers
	// the second.
	if len(a.Columns) != 1 {
		t.Fatalf("created %d child columns, want 1", len(a.Columns))
	}
	col := a.Columns[0]
	if !col.Categories {
		t.Error("column must be a category axis")
	}
	if col.TickmarkOffset != 0.5 {
		t.Errorf("column tickmark offset = %v, want 0.5", col.TickmarkOffset)
	}
	if col.Side != SideLeft || !col.Reversed {
		t.Error("column must inherit side and reversal from its owner")
	}
	if col.Owner() != a || col.ColumnIndex != 1 {
		t.Errorf("column ownership wrong: owner=%p index=%d", col.Owner(), col.ColumnIndex)
	}
	if len(col.Ticks) != 2 || col.Ticks[1].Label != "y" {
		t.Errorf("column ticks = %+v, want categories x,y", col.Ticks)
	}
}

func TestSetupColumnsSingleColumnCreatesNoChildren(t *testing.T) {
	a := &Axis{Grid: Options{Enabled: true, Columns: []ColumnOptions{
		{Categories: []string{"only"}},
	}}}
	a.SetupColumns()
	if len(a.Columns) != 0 {
		t.Errorf("single column created %d children, want 0", len(a.Columns))
	}
}

func TestDestroyReleasesColumns(t *testing.T) {
	a := &Axis{Grid: Options{Enabled: true, Columns: []ColumnOptions{
		{Categories: []string{"a"}},
		{Categories: []string{"b"}},
	}}}
	a.SetupColumns()
	a.Destroy()
	if a.Columns != nil || a.Ticks != nil || a.TickPositions != nil {
		t.Error("Destroy must release columns and tick state")
	}
}
