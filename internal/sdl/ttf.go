package sdl

import (
	"fmt"
	"os"
	"runtime"
	"sync"

	"github.com/ebitengine/purego"
)

// SDL3_ttf subset. The chrome draws no text itself; the text subsystem is
// initialized for client content and torn down with everything else.

var (
	ttfHandle uintptr
	ttfOnce   sync.Once
	ttfErr    error

	fnTTFInit func() bool
	fnTTFQuit func()
)

func ttfLibraryPath() []string {
	if path := os.Getenv("CHROMELESS_SDL_TTF_PATH"); path != "" {
		return []string{path}
	}
	switch runtime.GOOS {
	case "darwin":
		return []string{
			"libSDL3_ttf.dylib",
			"/opt/homebrew/lib/libSDL3_ttf.dylib",
			"/usr/local/lib/libSDL3_ttf.dylib",
		}
	case "windows":
		return []string{"SDL3_ttf.dll"}
	default:
		return []string{"libSDL3_ttf.so.0", "libSDL3_ttf.so"}
	}
}

// InitTTF loads SDL3_ttf and initializes it.
func InitTTF() error {
	ttfOnce.Do(func() {
		candidates := ttfLibraryPath()
		for _, path := range candidates {
			ttfHandle, ttfErr = openLibrary(path)
			if ttfErr == nil {
				break
			}
		}
		if ttfErr != nil {
			ttfErr = fmt.Errorf("load SDL3_ttf (tried %v): %w", candidates, ttfErr)
			return
		}
		purego.RegisterLibFunc(&fnTTFInit, ttfHandle, "TTF_Init")
		purego.RegisterLibFunc(&fnTTFQuit, ttfHandle, "TTF_Quit")
	})
	if ttfErr != nil {
		return ttfErr
	}
	if !fnTTFInit() {
		return fmt.Errorf("TTF_Init: %s", GetError())
	}
	return nil
}

// QuitTTF shuts the text subsystem down. No-op if InitTTF never succeeded.
func QuitTTF() {
	if fnTTFQuit != nil {
		fnTTFQuit()
	}
}
