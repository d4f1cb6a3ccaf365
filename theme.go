package chromeless

// Color is an 8-bit RGBA color as consumed by the render backend.
type Color struct {
	R uint8
	G uint8
	B uint8
	A uint8
}

// Palette is one set of chrome colors.
type Palette struct {
	Border     Color // fills Background, visible as the window border
	Background Color // fills ClientArea
	TitleBar   Color
}

// Stock palettes.
var (
	LightPalette = Palette{
		Border:     Color{200, 200, 200, 255},
		Background: Color{227, 227, 227, 255},
		TitleBar:   Color{255, 255, 255, 255},
	}
	DarkPalette = Palette{
		Border:     Color{55, 55, 55, 255},
		Background: Color{27, 27, 27, 255},
		TitleBar:   Color{0, 0, 0, 255},
	}
)

// Theme holds the light and dark palettes and which one is active. It is
// only touched from the main cycle: the OS theme notification mutates it,
// the renderer reads it.
type Theme struct {
	Light Palette
	Dark  Palette

	dark bool
}

// NewTheme returns a Theme with the stock palettes, light active.
func NewTheme() *Theme {
	return &Theme{Light: LightPalette, Dark: DarkPalette}
}

// SetDark selects the dark (or light) palette.
func (t *Theme) SetDark(dark bool) { t.dark = dark }

// IsDark reports whether the dark palette is active.
func (t *Theme) IsDark() bool { return t.dark }

// Active returns the currently selected palette.
func (t *Theme) Active() Palette {
	if t.dark {
		return t.Dark
	}
	return t.Light
}
