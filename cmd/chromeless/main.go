// Command chromeless opens a borderless, resizable demo window with
// custom-drawn chrome: title bar, background, drop shadow and OS-integrated
// hit testing for moving and resizing.
package main

import (
	"flag"
	"log"
	"os"
	"runtime"
	"time"

	"github.com/agiangrant/chromeless"
	"github.com/agiangrant/chromeless/assets"
	"github.com/agiangrant/chromeless/internal/sdl"
)

func init() {
	// SDL windowing must stay on the main OS thread.
	runtime.LockOSThread()
}

func main() {
	configPath := flag.String("config", "chromeless.toml", "path to the TOML config file")
	flag.Parse()

	if err := run(*configPath); err != nil {
		os.Exit(1)
	}
}

// run keeps teardown on the defer stack so every exit path, including
// startup failures, releases resources in reverse acquisition order.
func run(configPath string) error {
	cfg, err := chromeless.LoadConfig(configPath)
	if err != nil {
		log.Print(err)
		return err
	}
	theme, err := cfg.BuildTheme()
	if err != nil {
		log.Print(err)
		return err
	}

	if err := sdl.Init(); err != nil {
		return fatal("Failed to initialize SDL3", err)
	}
	defer sdl.Quit()

	if cfg.TextSubsystem {
		if err := sdl.InitTTF(); err != nil {
			return fatal("Failed to initialize SDL3_ttf", err)
		}
		defer sdl.QuitTTF()
	}

	win, err := sdl.CreateWindow(cfg.Title, cfg.Width, cfg.Height,
		sdl.WindowHighPixelDensity|sdl.WindowResizable|sdl.WindowBorderless|
			sdl.WindowTransparent|sdl.WindowInputFocus)
	if err != nil {
		return fatal("Failed to create window", err)
	}
	defer win.Destroy()
	win.SetMinimumSize(cfg.MinWidth, cfg.MinHeight)

	rnd, err := sdl.CreateRenderer(win)
	if err != nil {
		return fatal("Failed to create renderer", err)
	}
	defer rnd.Destroy()

	shadow, err := loadShadowTextures(rnd)
	if err != nil {
		return fatal("Failed to load shadow textures", err)
	}

	app := chromeless.NewApp(win, theme)
	switch cfg.Theme {
	case chromeless.ThemeLight:
		theme.SetDark(false)
	case chromeless.ThemeDark:
		theme.SetDark(true)
	default:
		theme.SetDark(win.DarkTheme())
	}

	if err := win.SetHitTest(app.HitTest); err != nil {
		return fatal("Failed to enable hit tests", err)
	}

	app.Run(rnd, shadow, func() chromeless.EventKind {
		ev, ok := sdl.WaitEventTimeout(100 * time.Millisecond)
		if !ok {
			return chromeless.EventNone
		}
		return mapEvent(ev.Type)
	})
	return nil
}

// loadShadowTextures decodes the embedded shadow assets and uploads them
// with the fixed shadow translucency applied. The textures are owned by the
// renderer and destroyed with it.
func loadShadowTextures(rnd *sdl.Renderer) (*chromeless.ShadowTextures, error) {
	imgs, err := assets.Load()
	if err != nil {
		return nil, err
	}
	corner, err := rnd.CreateTextureFromImage(imgs.Corner)
	if err != nil {
		return nil, err
	}
	bottom, err := rnd.CreateTextureFromImage(imgs.Bottom)
	if err != nil {
		return nil, err
	}
	left, err := rnd.CreateTextureFromImage(imgs.Left)
	if err != nil {
		return nil, err
	}
	corner.SetAlphaMod(assets.Alpha)
	bottom.SetAlphaMod(assets.Alpha)
	left.SetAlphaMod(assets.Alpha)
	return &chromeless.ShadowTextures{Corner: corner, Bottom: bottom, Left: left}, nil
}

// mapEvent translates the SDL event stream into the chrome's event
// vocabulary. Unhandled event types map to EventNone.
func mapEvent(t sdl.EventType) chromeless.EventKind {
	switch t {
	case sdl.EventQuit:
		return chromeless.EventQuit
	case sdl.EventWindowExposed:
		return chromeless.EventExposed
	case sdl.EventWindowPixelSizeChanged:
		return chromeless.EventPixelSizeChanged
	case sdl.EventWindowDisplayScaleChanged:
		return chromeless.EventDisplayScaleChanged
	case sdl.EventSystemThemeChanged:
		return chromeless.EventSystemThemeChanged
	}
	return chromeless.EventNone
}

// fatal reports a startup failure through a blocking modal box and passes
// the error back up so deferred teardown still runs.
func fatal(title string, err error) error {
	sdl.ShowSimpleMessageBox(sdl.MessageBoxError, title, err.Error())
	return err
}
