package sdl

import (
	"fmt"
	"sync/atomic"
	"unsafe"

	"github.com/ebitengine/purego"

	"github.com/agiangrant/chromeless"
)

// SDL_HitTestResult values.
const (
	hitTestNormal            int32 = 0
	hitTestDraggable         int32 = 1
	hitTestResizeTopLeft     int32 = 2
	hitTestResizeTop         int32 = 3
	hitTestResizeTopRight    int32 = 4
	hitTestResizeRight       int32 = 5
	hitTestResizeBottomRight int32 = 6
	hitTestResizeBottom      int32 = 7
	hitTestResizeBottomLeft  int32 = 8
	hitTestResizeLeft        int32 = 9
)

// HitTestFunc classifies a cursor position in logical window coordinates.
// SDL may invoke it from inside a drag gesture, outside the main cycle, so
// it must not block or touch mutable state.
type HitTestFunc func(chromeless.Point) chromeless.Region

var (
	hitTestFn atomic.Pointer[HitTestFunc]
	// A process has one callback trampoline; purego callbacks are never
	// released, so it is created once and reused across registrations.
	hitTestCB uintptr
)

// cPoint matches SDL_Point.
type cPoint struct {
	X, Y int32
}

// SetHitTest registers fn as the window's OS hit-test callback.
func (w *Window) SetHitTest(fn HitTestFunc) error {
	hitTestFn.Store(&fn)
	if hitTestCB == 0 {
		hitTestCB = purego.NewCallback(hitTestTrampoline)
	}
	if !fnSetWindowHitTest(w.ptr, hitTestCB, 0) {
		return fmt.Errorf("SDL_SetWindowHitTest: %s", GetError())
	}
	return nil
}

func hitTestTrampoline(window, point, data uintptr) uintptr {
	fn := hitTestFn.Load()
	if fn == nil {
		return uintptr(hitTestNormal)
	}
	p := *(*cPoint)(unsafe.Pointer(point))
	region := (*fn)(chromeless.Point{X: float32(p.X), Y: float32(p.Y)})
	return uintptr(hitTestResult(region))
}

func hitTestResult(r chromeless.Region) int32 {
	switch r {
	case chromeless.RegionDraggable:
		return hitTestDraggable
	case chromeless.RegionResizeTopLeft:
		return hitTestResizeTopLeft
	case chromeless.RegionResizeTop:
		return hitTestResizeTop
	case chromeless.RegionResizeTopRight:
		return hitTestResizeTopRight
	case chromeless.RegionResizeRight:
		return hitTestResizeRight
	case chromeless.RegionResizeBottomRight:
		return hitTestResizeBottomRight
	case chromeless.RegionResizeBottom:
		return hitTestResizeBottom
	case chromeless.RegionResizeBottomLeft:
		return hitTestResizeBottomLeft
	case chromeless.RegionResizeLeft:
		return hitTestResizeLeft
	}
	return hitTestNormal
}
