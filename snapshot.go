package chromeless

// Snapshot pairs a Layout with the display scale it was computed at.
//
// The OS may invoke the hit-test callback at any time, including while the
// main cycle is rebuilding the layout, so the pair is published as one
// immutable value through an atomic pointer (see App) instead of being
// mutated in place.
type Snapshot struct {
	Layout Layout
	Scale  float32
}
