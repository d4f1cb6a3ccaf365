package chromeless

// Region is the semantic meaning of a cursor position within the window
// chrome. The resize regions tell the window manager which edge or corner a
// drag should resize; Draggable marks the title bar as a move handle.
type Region int32

const (
	RegionNormal Region = iota
	RegionDraggable
	RegionResizeTopLeft
	RegionResizeTop
	RegionResizeTopRight
	RegionResizeRight
	RegionResizeBottomRight
	RegionResizeBottom
	RegionResizeBottomLeft
	RegionResizeLeft
)

func (r Region) String() string {
	switch r {
	case RegionNormal:
		return "normal"
	case RegionDraggable:
		return "draggable"
	case RegionResizeTopLeft:
		return "resize-top-left"
	case RegionResizeTop:
		return "resize-top"
	case RegionResizeTopRight:
		return "resize-top-right"
	case RegionResizeRight:
		return "resize-right"
	case RegionResizeBottomRight:
		return "resize-bottom-right"
	case RegionResizeBottom:
		return "resize-bottom"
	case RegionResizeBottomLeft:
		return "resize-bottom-left"
	case RegionResizeLeft:
		return "resize-left"
	}
	return "unknown"
}

// Classify maps a cursor position in logical (pre-scale) coordinates to a
// Region. Pure and allocation-free: it runs on the OS hit-test callback,
// which can fire outside the ordinary update cycle.
//
// Corner zones take priority over the edge bands they overlap, so the checks
// on the vertical borders resolve corners before falling back to a plain
// edge. The border band is edgeTol wide on either side of the background
// boundary; a corner claims cornerTol pixels along the border.
func Classify(pos Point, snap *Snapshot) Region {
	scale := snap.Scale
	bg := snap.Layout.Background

	// Logical to physical, truncating the way the border checks expect.
	phys := Point{X: pos.X * scale, Y: pos.Y * scale}
	x := float32(int(phys.X))
	y := float32(int(phys.Y))

	edgeTol := ceil32(2 * scale)
	cornerTol := ceil32(8 * scale)

	switch {
	case x >= bg.X-edgeTol && x <= bg.X+edgeTol:
		if y < bg.Y+cornerTol {
			return RegionResizeTopLeft
		}
		if y >= bg.Bottom()-cornerTol {
			return RegionResizeBottomLeft
		}
		return RegionResizeLeft

	case x >= bg.Right()-edgeTol && x <= bg.Right()+edgeTol:
		if y < bg.Y+cornerTol {
			return RegionResizeTopRight
		}
		if y >= bg.Bottom()-cornerTol {
			return RegionResizeBottomRight
		}
		return RegionResizeRight

	case y >= bg.Y-edgeTol && y <= bg.Y+edgeTol:
		return RegionResizeTop

	case y >= bg.Bottom()-edgeTol && y <= bg.Bottom()+edgeTol:
		return RegionResizeBottom

	case snap.Layout.TitleBar.Contains(phys):
		return RegionDraggable
	}

	return RegionNormal
}
