package chromeless

import (
	"errors"
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// ThemeMode selects which palette is active at startup.
type ThemeMode string

const (
	ThemeAuto  ThemeMode = "auto" // follow the OS theme
	ThemeLight ThemeMode = "light"
	ThemeDark  ThemeMode = "dark"
)

// Config is the optional chromeless.toml. Every field has a working default,
// so a missing file is not an error.
type Config struct {
	Title     string `toml:"title"`
	Width     int    `toml:"width"`
	Height    int    `toml:"height"`
	MinWidth  int    `toml:"min-width"`
	MinHeight int    `toml:"min-height"`

	// Theme is "auto", "light" or "dark".
	Theme ThemeMode `toml:"theme"`

	// TextSubsystem controls whether the SDL_ttf subsystem is initialized
	// at startup. The chrome itself draws no text; this exists for client
	// content that does.
	TextSubsystem bool `toml:"text-subsystem"`

	Palette PaletteConfig `toml:"palette"`
}

// PaletteConfig overrides individual palette colors as "#RRGGBB" strings.
// Empty fields keep the stock color.
type PaletteConfig struct {
	Light PaletteColors `toml:"light"`
	Dark  PaletteColors `toml:"dark"`
}

type PaletteColors struct {
	Border     string `toml:"border"`
	Background string `toml:"background"`
	TitleBar   string `toml:"title-bar"`
}

// DefaultConfig mirrors the stock demo window.
func DefaultConfig() Config {
	return Config{
		Title:         "Demo Window",
		Width:         800,
		Height:        600,
		MinWidth:      126,
		MinHeight:     126,
		Theme:         ThemeAuto,
		TextSubsystem: true,
	}
}

// LoadConfig reads a TOML config file. A missing file yields the defaults;
// a file that exists but does not parse or validate is an error.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse %s: %w", path, err)
	}
	if err := cfg.validate(); err != nil {
		return cfg, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

func (c Config) validate() error {
	switch c.Theme {
	case ThemeAuto, ThemeLight, ThemeDark:
	default:
		return fmt.Errorf("theme must be auto, light or dark, got %q", c.Theme)
	}
	if c.Width < c.MinWidth || c.Height < c.MinHeight {
		return fmt.Errorf("window size %dx%d below minimum %dx%d",
			c.Width, c.Height, c.MinWidth, c.MinHeight)
	}
	return nil
}

// BuildTheme returns the stock theme with the config's palette overrides
// applied.
func (c Config) BuildTheme() (*Theme, error) {
	t := NewTheme()
	if err := applyPalette(&t.Light, c.Palette.Light); err != nil {
		return nil, fmt.Errorf("palette.light: %w", err)
	}
	if err := applyPalette(&t.Dark, c.Palette.Dark); err != nil {
		return nil, fmt.Errorf("palette.dark: %w", err)
	}
	return t, nil
}

func applyPalette(p *Palette, c PaletteColors) error {
	for _, f := range []struct {
		dst *Color
		src string
	}{
		{&p.Border, c.Border},
		{&p.Background, c.Background},
		{&p.TitleBar, c.TitleBar},
	} {
		if f.src == "" {
			continue
		}
		col, err := ParseHexColor(f.src)
		if err != nil {
			return err
		}
		*f.dst = col
	}
	return nil
}

// ParseHexColor parses "#RRGGBB" into an opaque Color.
func ParseHexColor(s string) (Color, error) {
	if len(s) != 7 || s[0] != '#' {
		return Color{}, fmt.Errorf("color %q: want #RRGGBB", s)
	}
	var v [3]uint8
	for i := 0; i < 3; i++ {
		hi, ok1 := hexNibble(s[1+2*i])
		lo, ok2 := hexNibble(s[2+2*i])
		if !ok1 || !ok2 {
			return Color{}, fmt.Errorf("color %q: invalid hex digit", s)
		}
		v[i] = hi<<4 | lo
	}
	return Color{R: v[0], G: v[1], B: v[2], A: 255}, nil
}

func hexNibble(b byte) (uint8, bool) {
	switch {
	case b >= '0' && b <= '9':
		return b - '0', true
	case b >= 'a' && b <= 'f':
		return b - 'a' + 10, true
	case b >= 'A' && b <= 'F':
		return b - 'A' + 10, true
	}
	return 0, false
}
