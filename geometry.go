package chromeless

import "math"

// Rect is an axis-aligned rectangle in physical pixels. The field layout
// matches SDL_FRect so a Rect can be handed to the render backend without
// conversion.
type Rect struct {
	X float32
	Y float32
	W float32
	H float32
}

// Point is a position in window coordinates (logical or physical depending
// on context; see Classify for the conversion boundary).
type Point struct {
	X float32
	Y float32
}

// Right returns the x coordinate one past the right edge.
func (r Rect) Right() float32 { return r.X + r.W }

// Bottom returns the y coordinate one past the bottom edge.
func (r Rect) Bottom() float32 { return r.Y + r.H }

// Contains reports whether p lies inside r (right/bottom edges exclusive).
func (r Rect) Contains(p Point) bool {
	return p.X >= r.X && p.X < r.Right() && p.Y >= r.Y && p.Y < r.Bottom()
}

// ContainsRect reports whether o lies entirely within r.
func (r Rect) ContainsRect(o Rect) bool {
	return o.X >= r.X && o.Y >= r.Y && o.Right() <= r.Right() && o.Bottom() <= r.Bottom()
}

// Overlaps reports whether r and o share any area.
func (r Rect) Overlaps(o Rect) bool {
	return r.X < o.Right() && o.X < r.Right() && r.Y < o.Bottom() && o.Y < r.Bottom()
}

func floor32(v float32) float32 { return float32(math.Floor(float64(v))) }

func ceil32(v float32) float32 { return float32(math.Ceil(float64(v))) }
