package chromeless

import "testing"

func snapshotAt(w, h int, scale float32) *Snapshot {
	return &Snapshot{
		Layout: DefaultMetrics.ComputeLayout(w, h, scale),
		Scale:  scale,
	}
}

func TestClassifyScale1(t *testing.T) {
	// 800x600 at scale 1: background (16,16,768,568), so the border lines
	// sit at x=16/784 and y=16/584; edgeTol=2, cornerTol=8.
	snap := snapshotAt(800, 600, 1)

	tests := []struct {
		name string
		pos  Point
		want Region
	}{
		{"top-left corner on border intersection", Point{16, 16}, RegionResizeTopLeft},
		{"top-left corner claims edge band", Point{15, 18}, RegionResizeTopLeft},
		{"left edge below corner zone", Point{16, 300}, RegionResizeLeft},
		{"bottom-left corner", Point{16, 578}, RegionResizeBottomLeft},
		{"top-right corner", Point{784, 20}, RegionResizeTopRight},
		{"right edge", Point{784, 300}, RegionResizeRight},
		{"bottom-right corner", Point{784, 580}, RegionResizeBottomRight},
		{"top edge away from corners", Point{400, 16}, RegionResizeTop},
		{"top edge outer tolerance", Point{400, 14}, RegionResizeTop},
		{"bottom edge", Point{400, 584}, RegionResizeBottom},
		{"title bar is draggable", Point{400, 30}, RegionDraggable},
		{"client content is normal", Point{400, 300}, RegionNormal},
		{"shadow margin is normal", Point{5, 300}, RegionNormal},
		{"just outside edge tolerance", Point{400, 19}, RegionDraggable},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := Classify(tc.pos, snap); got != tc.want {
				t.Errorf("Classify(%+v) = %v, want %v", tc.pos, got, tc.want)
			}
		})
	}
}

func TestClassifyScale2(t *testing.T) {
	// Logical coordinates are multiplied by the scale before any border
	// math, and the tolerances scale with the display: edgeTol=4,
	// cornerTol=16 physical pixels.
	snap := snapshotAt(800, 600, 2)

	tests := []struct {
		name string
		pos  Point
		want Region
	}{
		{"logical border position maps onto border", Point{8, 150}, RegionResizeLeft},
		{"corner zone grows with scale", Point{8, 14}, RegionResizeTopLeft},
		{"fractional logical position truncates", Point{7.9, 150}, RegionResizeLeft},
		{"title bar in logical coordinates", Point{200, 20}, RegionDraggable},
		{"client content", Point{200, 150}, RegionNormal},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := Classify(tc.pos, snap); got != tc.want {
				t.Errorf("Classify(%+v) = %v, want %v", tc.pos, got, tc.want)
			}
		})
	}
}

func TestClassifyCornerPriority(t *testing.T) {
	// A point inside both an edge band and a corner zone must resolve to
	// the corner, never the plain edge.
	snap := snapshotAt(800, 600, 1)
	corners := []struct {
		pos  Point
		want Region
	}{
		{Point{16, 17}, RegionResizeTopLeft},
		{Point{784, 17}, RegionResizeTopRight},
		{Point{16, 583}, RegionResizeBottomLeft},
		{Point{784, 583}, RegionResizeBottomRight},
	}
	for _, tc := range corners {
		got := Classify(tc.pos, snap)
		if got != tc.want {
			t.Errorf("Classify(%+v) = %v, want %v", tc.pos, got, tc.want)
		}
		switch got {
		case RegionResizeLeft, RegionResizeRight, RegionResizeTop, RegionResizeBottom:
			t.Errorf("Classify(%+v) resolved to plain edge %v inside a corner zone", tc.pos, got)
		}
	}
}

func TestRegionString(t *testing.T) {
	if got := RegionResizeBottomLeft.String(); got != "resize-bottom-left" {
		t.Errorf("String() = %q", got)
	}
	if got := Region(99).String(); got != "unknown" {
		t.Errorf("String() = %q", got)
	}
}
