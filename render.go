package chromeless

// Flip selects how a texture is mirrored when drawn. The bit values match
// SDL_FlipMode so backends can pass them through unchanged.
type Flip uint8

const (
	FlipNone       Flip = 0
	FlipHorizontal Flip = 1
	FlipVertical   Flip = 2
)

// Texture is an opaque handle to an uploaded texture, owned by the backend.
type Texture interface {
	// Size returns the texture extent in pixels.
	Size() (w, h int)
}

// Renderer is the slice of the graphics backend the chrome needs: clear,
// solid fills, textured draws with mirroring, and a buffer swap. The real
// implementation lives in internal/sdl; tests substitute a recording fake.
type Renderer interface {
	Clear(c Color)
	FillRect(r Rect, c Color)
	DrawTexture(t Texture, dst Rect, flip Flip)
	Present()
}

// RenderFrame draws one complete frame back to front: transparent clear,
// drop shadow, then the background / title bar / client area fills from the
// active palette. Nothing is visible until Present, so a frame is never
// shown partially drawn.
func RenderFrame(r Renderer, snap *Snapshot, shadow *ShadowTextures, theme *Theme) {
	p := theme.Active()

	r.Clear(Color{})
	DrawShadow(r, snap.Layout.Window.W, snap.Layout.Window.H, shadow)
	r.FillRect(snap.Layout.Background, p.Border)
	r.FillRect(snap.Layout.TitleBar, p.TitleBar)
	r.FillRect(snap.Layout.ClientArea, p.Background)
	r.Present()
}
