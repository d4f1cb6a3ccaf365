// Package assets embeds the stock shadow textures and decodes them into
// NRGBA images ready for texture upload.
package assets

import (
	"bytes"
	_ "embed"
	"fmt"
	"image"
	"image/png"

	xdraw "golang.org/x/image/draw"
)

//go:embed corner.png
var cornerPNG []byte

//go:embed bottom.png
var bottomPNG []byte

//go:embed left.png
var leftPNG []byte

// Nominal shadow dimensions. The layout engine's insets and the compositor's
// slot geometry are derived from these, so decoded assets are normalized to
// them rather than the other way around.
const (
	CornerSize    = 55
	EdgeThickness = 16
)

// Alpha is the fixed translucency applied to every shadow texture.
const Alpha = 0.3

// ShadowImages are the three decoded shadow textures in their unflipped
// orientation: Corner shades a bottom-right corner, Bottom fades downward,
// Left fades leftward. Loaded once at startup, immutable afterwards.
type ShadowImages struct {
	Corner *image.NRGBA // CornerSize x CornerSize
	Bottom *image.NRGBA // tileable width x EdgeThickness
	Left   *image.NRGBA // EdgeThickness x tileable height
}

// Load decodes the embedded textures. A decode failure means a corrupt
// binary and is fatal to the caller.
func Load() (*ShadowImages, error) {
	corner, err := decode(cornerPNG, CornerSize, CornerSize)
	if err != nil {
		return nil, fmt.Errorf("corner: %w", err)
	}
	bottom, err := decode(bottomPNG, 0, EdgeThickness)
	if err != nil {
		return nil, fmt.Errorf("bottom: %w", err)
	}
	left, err := decode(leftPNG, EdgeThickness, 0)
	if err != nil {
		return nil, fmt.Errorf("left: %w", err)
	}
	return &ShadowImages{Corner: corner, Bottom: bottom, Left: left}, nil
}

// decode decodes a PNG and normalizes it to NRGBA. A nonzero wantW/wantH
// pins that dimension to its nominal size, rescaling if the asset ships at
// a different resolution; zero keeps the decoded extent (the edge textures
// tile along their free axis).
func decode(data []byte, wantW, wantH int) (*image.NRGBA, error) {
	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	b := img.Bounds()
	if wantW == 0 {
		wantW = b.Dx()
	}
	if wantH == 0 {
		wantH = b.Dy()
	}

	dst := image.NewNRGBA(image.Rect(0, 0, wantW, wantH))
	if wantW == b.Dx() && wantH == b.Dy() {
		xdraw.Copy(dst, image.Point{}, img, b, xdraw.Src, nil)
	} else {
		xdraw.CatmullRom.Scale(dst, dst.Bounds(), img, b, xdraw.Src, nil)
	}
	return dst, nil
}
