package chromeless

// Metrics holds the chrome dimensions that do not depend on the window size.
// Insets are the shadow texture thicknesses in physical pixels; TitleBarHeight
// is in logical units and gets scaled per display.
type Metrics struct {
	InsetX         float32 // left/right shadow thickness (left edge texture width)
	InsetY         float32 // top/bottom shadow thickness (bottom edge texture height)
	TitleBarHeight float32
}

// DefaultMetrics matches the stock shadow textures in the assets package.
var DefaultMetrics = Metrics{
	InsetX:         16,
	InsetY:         16,
	TitleBarHeight: 30,
}

// Layout is the full set of chrome rectangles for one window size and scale.
// It is a plain value: recomputed as a whole, never patched in place.
type Layout struct {
	Window     Rect // (0,0,W,H), the entire drawable surface
	Background Rect // Window minus the shadow margin on every side
	TitleBar   Rect // top strip inside Background, draggable
	ClientArea Rect // everything below the title bar separator
}

// ComputeLayout derives the chrome rectangles for a window of pxW x pxH
// physical pixels at the given display scale. Pure function of its inputs.
//
// Insets round down and the title bar height rounds up so the title bar never
// bleeds into the one-scaled-pixel separator lines around it. The result is
// not clamped: callers must keep the window at or above the configured
// minimum size, otherwise ClientArea can come out with negative height.
func (m Metrics) ComputeLayout(pxW, pxH int, scale float32) Layout {
	w, h := float32(pxW), float32(pxH)
	sep := floor32(scale)

	var l Layout
	l.Window = Rect{X: 0, Y: 0, W: w, H: h}
	l.Background = Rect{
		X: m.InsetX,
		Y: m.InsetY,
		W: w - 2*m.InsetX,
		H: h - 2*m.InsetY,
	}
	l.TitleBar = Rect{
		X: l.Background.X + sep,
		Y: l.Background.Y + sep,
		W: l.Background.W - 2*sep,
		H: ceil32(m.TitleBarHeight * scale),
	}
	l.ClientArea = Rect{
		X: l.TitleBar.X,
		Y: l.TitleBar.Y + l.TitleBar.H + sep,
		W: l.TitleBar.W,
		H: l.Background.H - 2*sep - l.TitleBar.H - sep,
	}
	return l
}
