package chromeless

// The drop shadow is assembled from three textures: a corner, a bottom edge
// and a left edge. Their unflipped orientation is bottom-right / bottom /
// left; the other five slots mirror them so the gradient always points away
// from the window.
const (
	// ShadowCornerSize is the corner texture extent in pixels.
	ShadowCornerSize = 55
	// ShadowEdgeThickness is the edge texture thickness in pixels.
	ShadowEdgeThickness = 16
)

// ShadowKind identifies one of the three shadow textures.
type ShadowKind uint8

const (
	ShadowCorner ShadowKind = iota
	ShadowBottom
	ShadowLeft
)

// ShadowTextures holds the three uploaded shadow textures.
type ShadowTextures struct {
	Corner Texture
	Bottom Texture
	Left   Texture
}

func (s *ShadowTextures) byKind(k ShadowKind) Texture {
	switch k {
	case ShadowBottom:
		return s.Bottom
	case ShadowLeft:
		return s.Left
	}
	return s.Corner
}

// ShadowPlacement is one draw of a shadow texture into a destination slot.
type ShadowPlacement struct {
	Kind ShadowKind
	Dest Rect
	Flip Flip
}

// ShadowPlacements derives the eight destination slots for a window of w x h
// pixels: four corners plus four edges stretched to the remaining span. The
// slots tile the perimeter without gaps or overlaps for any w, h >= 110
// (2*ShadowCornerSize); the minimum window size must stay above that bound.
func ShadowPlacements(w, h float32) [8]ShadowPlacement {
	const (
		c = float32(ShadowCornerSize)
		t = float32(ShadowEdgeThickness)
	)
	return [8]ShadowPlacement{
		// Corners: unflipped is bottom-right.
		{ShadowCorner, Rect{X: 0, Y: 0, W: c, H: c}, FlipHorizontal | FlipVertical},
		{ShadowCorner, Rect{X: w - c, Y: 0, W: c, H: c}, FlipVertical},
		{ShadowCorner, Rect{X: w - c, Y: h - c, W: c, H: c}, FlipNone},
		{ShadowCorner, Rect{X: 0, Y: h - c, W: c, H: c}, FlipHorizontal},
		// Horizontal edges, stretched between the corners.
		{ShadowBottom, Rect{X: c, Y: 0, W: w - 2*c, H: t}, FlipVertical},
		{ShadowBottom, Rect{X: c, Y: h - t, W: w - 2*c, H: t}, FlipNone},
		// Vertical edges.
		{ShadowLeft, Rect{X: 0, Y: c, W: t, H: h - 2*c}, FlipNone},
		{ShadowLeft, Rect{X: w - t, Y: c, W: t, H: h - 2*c}, FlipHorizontal},
	}
}

// DrawShadow issues the eight shadow draws for a window of w x h pixels.
// The slots do not overlap, so draw order does not matter.
func DrawShadow(r Renderer, w, h float32, tex *ShadowTextures) {
	for _, p := range ShadowPlacements(w, h) {
		r.DrawTexture(tex.byKind(p.Kind), p.Dest, p.Flip)
	}
}
