// Package sdl binds the subset of SDL3 the window chrome needs via purego.
// The library is loaded at runtime, so no CGo and no link-time SDL
// dependency; cross-compilation keeps working.
package sdl

import (
	"fmt"
	"os"
	"runtime"
	"sync"
	"unsafe"

	"github.com/ebitengine/purego"
)

var (
	libHandle uintptr
	libOnce   sync.Once
	libErr    error
)

// Core function pointers (populated by initLibrary).
var (
	fnInit                 func(flags uint32) bool
	fnQuit                 func()
	fnGetError             func() uintptr
	fnShowSimpleMessageBox func(flags uint32, title string, message string, window uintptr) bool
)

// Window function pointers.
var (
	fnCreateWindow          func(title string, w, h int32, flags uint64) uintptr
	fnDestroyWindow         func(window uintptr)
	fnSetWindowMinimumSize  func(window uintptr, w, h int32) bool
	fnGetWindowSizeInPixels func(window uintptr, wOut, hOut uintptr) bool
	fnGetWindowDisplayScale func(window uintptr) float32
	fnGetSystemTheme        func() int32
	fnSetWindowHitTest      func(window uintptr, callback uintptr, data uintptr) bool
)

// Renderer and texture function pointers.
var (
	fnCreateRenderer          func(window uintptr, name uintptr) uintptr
	fnDestroyRenderer         func(renderer uintptr)
	fnSetRenderDrawColor      func(renderer uintptr, r, g, b, a uint8) bool
	fnRenderClear             func(renderer uintptr) bool
	fnRenderFillRect          func(renderer uintptr, rect uintptr) bool
	fnRenderTextureRotated    func(renderer uintptr, texture, src, dst uintptr, angle float64, center uintptr, flip int32) bool
	fnRenderPresent           func(renderer uintptr) bool
	fnCreateTexture           func(renderer uintptr, format uint32, access int32, w, h int32) uintptr
	fnDestroyTexture          func(texture uintptr)
	fnUpdateTexture           func(texture uintptr, rect uintptr, pixels uintptr, pitch int32) bool
	fnSetTextureBlendMode     func(texture uintptr, mode uint32) bool
	fnSetTextureAlphaModFloat func(texture uintptr, alpha float32) bool
)

// Event function pointers.
var (
	fnWaitEventTimeout func(event uintptr, timeoutMS int32) bool
)

const initVideo uint32 = 0x00000020 // SDL_INIT_VIDEO

// Window flags (SDL_WindowFlags).
const (
	WindowBorderless       uint64 = 0x0000000000000010
	WindowResizable        uint64 = 0x0000000000000020
	WindowInputFocus       uint64 = 0x0000000000000200
	WindowHighPixelDensity uint64 = 0x0000000000002000
	WindowTransparent      uint64 = 0x0000000040000000
)

// Message box flags.
const MessageBoxError uint32 = 0x00000010 // SDL_MESSAGEBOX_ERROR

// libraryPath returns the candidate paths for the SDL3 dynamic library.
// CHROMELESS_SDL_PATH overrides the search entirely.
func libraryPath() []string {
	if path := os.Getenv("CHROMELESS_SDL_PATH"); path != "" {
		return []string{path}
	}
	switch runtime.GOOS {
	case "darwin":
		return []string{
			"libSDL3.dylib",
			"/opt/homebrew/lib/libSDL3.dylib",
			"/usr/local/lib/libSDL3.dylib",
		}
	case "windows":
		return []string{"SDL3.dll"}
	default:
		return []string{"libSDL3.so.0", "libSDL3.so"}
	}
}

// initLibrary loads SDL3 and registers all function pointers.
func initLibrary() error {
	libOnce.Do(func() {
		candidates := libraryPath()
		for _, path := range candidates {
			libHandle, libErr = openLibrary(path)
			if libErr == nil {
				break
			}
		}
		if libErr != nil {
			libErr = fmt.Errorf("load SDL3 (tried %v): %w", candidates, libErr)
			return
		}

		registerCoreFunctions()
		registerWindowFunctions()
		registerRenderFunctions()
		registerEventFunctions()
	})
	return libErr
}

func registerCoreFunctions() {
	purego.RegisterLibFunc(&fnInit, libHandle, "SDL_Init")
	purego.RegisterLibFunc(&fnQuit, libHandle, "SDL_Quit")
	purego.RegisterLibFunc(&fnGetError, libHandle, "SDL_GetError")
	purego.RegisterLibFunc(&fnShowSimpleMessageBox, libHandle, "SDL_ShowSimpleMessageBox")
}

func registerWindowFunctions() {
	purego.RegisterLibFunc(&fnCreateWindow, libHandle, "SDL_CreateWindow")
	purego.RegisterLibFunc(&fnDestroyWindow, libHandle, "SDL_DestroyWindow")
	purego.RegisterLibFunc(&fnSetWindowMinimumSize, libHandle, "SDL_SetWindowMinimumSize")
	purego.RegisterLibFunc(&fnGetWindowSizeInPixels, libHandle, "SDL_GetWindowSizeInPixels")
	purego.RegisterLibFunc(&fnGetWindowDisplayScale, libHandle, "SDL_GetWindowDisplayScale")
	purego.RegisterLibFunc(&fnGetSystemTheme, libHandle, "SDL_GetSystemTheme")
	purego.RegisterLibFunc(&fnSetWindowHitTest, libHandle, "SDL_SetWindowHitTest")
}

func registerRenderFunctions() {
	purego.RegisterLibFunc(&fnCreateRenderer, libHandle, "SDL_CreateRenderer")
	purego.RegisterLibFunc(&fnDestroyRenderer, libHandle, "SDL_DestroyRenderer")
	purego.RegisterLibFunc(&fnSetRenderDrawColor, libHandle, "SDL_SetRenderDrawColor")
	purego.RegisterLibFunc(&fnRenderClear, libHandle, "SDL_RenderClear")
	purego.RegisterLibFunc(&fnRenderFillRect, libHandle, "SDL_RenderFillRect")
	purego.RegisterLibFunc(&fnRenderTextureRotated, libHandle, "SDL_RenderTextureRotated")
	purego.RegisterLibFunc(&fnRenderPresent, libHandle, "SDL_RenderPresent")
	purego.RegisterLibFunc(&fnCreateTexture, libHandle, "SDL_CreateTexture")
	purego.RegisterLibFunc(&fnDestroyTexture, libHandle, "SDL_DestroyTexture")
	purego.RegisterLibFunc(&fnUpdateTexture, libHandle, "SDL_UpdateTexture")
	purego.RegisterLibFunc(&fnSetTextureBlendMode, libHandle, "SDL_SetTextureBlendMode")
	purego.RegisterLibFunc(&fnSetTextureAlphaModFloat, libHandle, "SDL_SetTextureAlphaModFloat")
}

func registerEventFunctions() {
	purego.RegisterLibFunc(&fnWaitEventTimeout, libHandle, "SDL_WaitEventTimeout")
}

// Init loads SDL3 and initializes its video subsystem.
func Init() error {
	if err := initLibrary(); err != nil {
		return err
	}
	if !fnInit(initVideo) {
		return fmt.Errorf("SDL_Init: %s", GetError())
	}
	return nil
}

// Quit shuts SDL down.
func Quit() { fnQuit() }

// GetError returns SDL's thread-local error string.
func GetError() string { return goString(fnGetError()) }

// ShowSimpleMessageBox shows a blocking modal message box. Used on startup
// failures where there may be no window to report through.
func ShowSimpleMessageBox(flags uint32, title, message string) {
	fnShowSimpleMessageBox(flags, title, message, 0)
}

// goString converts a NUL-terminated C string pointer to a Go string.
func goString(ptr uintptr) string {
	if ptr == 0 {
		return ""
	}
	var length int
	for {
		b := *(*byte)(unsafe.Pointer(ptr + uintptr(length)))
		if b == 0 {
			break
		}
		length++
		if length > 1<<20 { // safety limit
			break
		}
	}
	if length == 0 {
		return ""
	}
	buf := make([]byte, length)
	for i := 0; i < length; i++ {
		buf[i] = *(*byte)(unsafe.Pointer(ptr + uintptr(i)))
	}
	return string(buf)
}
