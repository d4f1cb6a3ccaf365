// Package chromeless renders custom window chrome (title bar, background,
// drop shadow) for a borderless resizable window and classifies cursor
// positions so the OS window manager can still move and resize the window.
// The windowing backend is consumed through small interfaces; the SDL3
// implementation lives in internal/sdl.
package chromeless

import "sync/atomic"

// Host is the slice of the windowing backend the driver queries: current
// pixel size and display scale of the window, and the OS theme.
type Host interface {
	PixelSize() (w, h int)
	DisplayScale() float32
	DarkTheme() bool
}

// EventKind is a windowing event the driver reacts to, already mapped from
// the backend's event stream.
type EventKind uint8

const (
	// EventNone is a wait timeout; the cycle runs once without state changes.
	EventNone EventKind = iota
	EventQuit
	EventExposed
	EventPixelSizeChanged
	EventDisplayScaleChanged
	EventSystemThemeChanged
)

// App owns the per-window chrome state: the layout snapshot, the theme and
// the dirty flag. Everything except HitTest runs on the single main cycle.
type App struct {
	host    Host
	metrics Metrics
	theme   *Theme

	snap  atomic.Pointer[Snapshot]
	dirty bool
	quit  bool
}

// NewApp creates the driver and computes the initial layout from the host's
// current size and scale.
func NewApp(host Host, theme *Theme) *App {
	a := &App{host: host, metrics: DefaultMetrics, theme: theme}
	a.UpdateLayout()
	return a
}

// UpdateLayout rebuilds the layout snapshot from the host's current pixel
// size and display scale and marks the window dirty. The previous snapshot
// is replaced wholesale; a concurrent hit test keeps reading the old one.
func (a *App) UpdateLayout() {
	w, h := a.host.PixelSize()
	scale := a.host.DisplayScale()
	a.snap.Store(&Snapshot{
		Layout: a.metrics.ComputeLayout(w, h, scale),
		Scale:  scale,
	})
	a.dirty = true
}

// Snapshot returns the current layout snapshot. The returned value is
// immutable.
func (a *App) Snapshot() *Snapshot { return a.snap.Load() }

// Theme returns the theme the renderer reads.
func (a *App) Theme() *Theme { return a.theme }

// HitTest classifies a cursor position in logical window coordinates. Safe
// to call from the OS hit-test callback at any time: it loads one snapshot
// and runs the pure classifier, no locks, no allocation.
func (a *App) HitTest(pos Point) Region {
	return Classify(pos, a.snap.Load())
}

// HandleEvent applies one windowing event to the chrome state.
func (a *App) HandleEvent(kind EventKind) {
	switch kind {
	case EventQuit:
		a.quit = true
	case EventExposed:
		a.dirty = true
	case EventPixelSizeChanged, EventDisplayScaleChanged:
		a.UpdateLayout()
	case EventSystemThemeChanged:
		a.theme.SetDark(a.host.DarkTheme())
		a.dirty = true
	}
}

// ShouldExit reports whether a quit event has been handled.
func (a *App) ShouldExit() bool { return a.quit }

// RedrawIfNeeded renders one frame if the window is dirty and clears the
// flag. Returns whether a frame was drawn, so one wake cycle never draws
// twice.
func (a *App) RedrawIfNeeded(r Renderer, shadow *ShadowTextures) bool {
	if !a.dirty {
		return false
	}
	RenderFrame(r, a.Snapshot(), shadow, a.theme)
	a.dirty = false
	return true
}

// Run drives the redraw/event cycle until a quit event arrives. wait must
// block for the next event with a bounded timeout (so OS theme changes are
// picked up without input) and return EventNone when it times out.
func (a *App) Run(r Renderer, shadow *ShadowTextures, wait func() EventKind) {
	for !a.quit {
		a.RedrawIfNeeded(r, shadow)
		a.HandleEvent(wait())
	}
}
