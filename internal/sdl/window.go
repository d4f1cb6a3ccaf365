package sdl

import (
	"fmt"
	"unsafe"
)

// systemTheme values (SDL_SystemTheme).
const (
	systemThemeUnknown int32 = 0
	systemThemeLight   int32 = 1
	systemThemeDark    int32 = 2
)

// Window wraps an SDL_Window. It implements chromeless.Host.
type Window struct {
	ptr uintptr
}

// CreateWindow creates a window of w x h logical units with the given
// SDL_WindowFlags.
func CreateWindow(title string, w, h int, flags uint64) (*Window, error) {
	ptr := fnCreateWindow(title, int32(w), int32(h), flags)
	if ptr == 0 {
		return nil, fmt.Errorf("SDL_CreateWindow: %s", GetError())
	}
	return &Window{ptr: ptr}, nil
}

// Destroy destroys the window. Any renderer attached to it must be
// destroyed first.
func (w *Window) Destroy() {
	if w.ptr != 0 {
		fnDestroyWindow(w.ptr)
		w.ptr = 0
	}
}

// SetMinimumSize sets the window's minimum size in logical units.
func (w *Window) SetMinimumSize(minW, minH int) {
	fnSetWindowMinimumSize(w.ptr, int32(minW), int32(minH))
}

// PixelSize returns the window's current size in physical pixels.
func (w *Window) PixelSize() (int, int) {
	var pw, ph int32
	fnGetWindowSizeInPixels(w.ptr,
		uintptr(unsafe.Pointer(&pw)), uintptr(unsafe.Pointer(&ph)))
	return int(pw), int(ph)
}

// DisplayScale returns the content scale of the display the window is on.
func (w *Window) DisplayScale() float32 {
	scale := fnGetWindowDisplayScale(w.ptr)
	if scale <= 0 {
		return 1
	}
	return scale
}

// DarkTheme reports whether the OS is in dark mode.
func (w *Window) DarkTheme() bool {
	return fnGetSystemTheme() == systemThemeDark
}
