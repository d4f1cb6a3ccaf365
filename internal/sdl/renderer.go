package sdl

import (
	"fmt"
	"image"
	"runtime"
	"unsafe"

	"github.com/agiangrant/chromeless"
)

const (
	pixelFormatABGR8888 uint32 = 0x16762004 // R,G,B,A byte order, matches image.NRGBA
	textureAccessStatic int32  = 0
	blendModeBlend      uint32 = 0x00000001
)

// fRect matches SDL_FRect; chromeless.Rect has the same layout, so rects are
// passed through by pointer without copying field by field.
type fRect struct {
	X, Y, W, H float32
}

// Renderer wraps an SDL_Renderer. It implements chromeless.Renderer.
type Renderer struct {
	ptr uintptr
}

// CreateRenderer creates the default renderer for a window.
func CreateRenderer(w *Window) (*Renderer, error) {
	ptr := fnCreateRenderer(w.ptr, 0)
	if ptr == 0 {
		return nil, fmt.Errorf("SDL_CreateRenderer: %s", GetError())
	}
	return &Renderer{ptr: ptr}, nil
}

// Destroy destroys the renderer and every texture created from it.
func (r *Renderer) Destroy() {
	if r.ptr != 0 {
		fnDestroyRenderer(r.ptr)
		r.ptr = 0
	}
}

// Clear fills the whole target with c, ignoring blending.
func (r *Renderer) Clear(c chromeless.Color) {
	fnSetRenderDrawColor(r.ptr, c.R, c.G, c.B, c.A)
	fnRenderClear(r.ptr)
}

// FillRect fills rect with c. Draw errors are not checked: a dropped frame
// is repaired by the next redraw.
func (r *Renderer) FillRect(rect chromeless.Rect, c chromeless.Color) {
	fnSetRenderDrawColor(r.ptr, c.R, c.G, c.B, c.A)
	dst := fRect(rect)
	fnRenderFillRect(r.ptr, uintptr(unsafe.Pointer(&dst)))
}

// DrawTexture draws t stretched into dst, mirrored per flip. t must have
// been created by this package.
func (r *Renderer) DrawTexture(t chromeless.Texture, dst chromeless.Rect, flip chromeless.Flip) {
	tex := t.(*Texture)
	d := fRect(dst)
	fnRenderTextureRotated(r.ptr, tex.ptr, 0, uintptr(unsafe.Pointer(&d)), 0, 0, int32(flip))
}

// Present swaps the frame buffer.
func (r *Renderer) Present() {
	fnRenderPresent(r.ptr)
}

// Texture wraps an SDL_Texture. It implements chromeless.Texture.
type Texture struct {
	ptr uintptr
	w   int
	h   int
}

// CreateTextureFromImage uploads an NRGBA image as a static alpha-blended
// texture.
func (r *Renderer) CreateTextureFromImage(img *image.NRGBA) (*Texture, error) {
	w, h := img.Bounds().Dx(), img.Bounds().Dy()
	ptr := fnCreateTexture(r.ptr, pixelFormatABGR8888, textureAccessStatic, int32(w), int32(h))
	if ptr == 0 {
		return nil, fmt.Errorf("SDL_CreateTexture: %s", GetError())
	}
	if !fnUpdateTexture(ptr, 0, uintptr(unsafe.Pointer(&img.Pix[0])), int32(img.Stride)) {
		err := fmt.Errorf("SDL_UpdateTexture: %s", GetError())
		fnDestroyTexture(ptr)
		return nil, err
	}
	runtime.KeepAlive(img)
	fnSetTextureBlendMode(ptr, blendModeBlend)
	return &Texture{ptr: ptr, w: w, h: h}, nil
}

// SetAlphaMod sets the texture-wide alpha multiplier.
func (t *Texture) SetAlphaMod(alpha float32) {
	fnSetTextureAlphaModFloat(t.ptr, alpha)
}

// Size returns the texture extent in pixels.
func (t *Texture) Size() (int, int) { return t.w, t.h }

// Destroy destroys the texture. Destroying the renderer also destroys it;
// only one of the two may run.
func (t *Texture) Destroy() {
	if t.ptr != 0 {
		fnDestroyTexture(t.ptr)
		t.ptr = 0
	}
}
