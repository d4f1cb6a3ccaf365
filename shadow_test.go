package chromeless

import "testing"

func TestShadowPlacements400(t *testing.T) {
	// At 400x400 the eight slots tile the perimeter exactly: 55x55 corners
	// plus 290-long edges of thickness 16.
	got := ShadowPlacements(400, 400)
	want := [8]ShadowPlacement{
		{ShadowCorner, Rect{0, 0, 55, 55}, FlipHorizontal | FlipVertical},
		{ShadowCorner, Rect{345, 0, 55, 55}, FlipVertical},
		{ShadowCorner, Rect{345, 345, 55, 55}, FlipNone},
		{ShadowCorner, Rect{0, 345, 55, 55}, FlipHorizontal},
		{ShadowBottom, Rect{55, 0, 290, 16}, FlipVertical},
		{ShadowBottom, Rect{55, 384, 290, 16}, FlipNone},
		{ShadowLeft, Rect{0, 55, 16, 290}, FlipNone},
		{ShadowLeft, Rect{384, 55, 16, 290}, FlipHorizontal},
	}
	if got != want {
		t.Errorf("ShadowPlacements(400, 400)\n got %+v\nwant %+v", got, want)
	}
}

func TestShadowPlacementsNoOverlap(t *testing.T) {
	sizes := []float32{110, 126, 400, 1000}
	for _, w := range sizes {
		for _, h := range sizes {
			window := Rect{0, 0, w, h}
			placements := ShadowPlacements(w, h)
			for i := range placements {
				if !window.ContainsRect(placements[i].Dest) {
					t.Fatalf("%vx%v: slot %d %+v outside window", w, h, i, placements[i].Dest)
				}
				for j := i + 1; j < len(placements); j++ {
					if placements[i].Dest.Overlaps(placements[j].Dest) {
						t.Fatalf("%vx%v: slots %d and %d overlap: %+v / %+v",
							w, h, i, j, placements[i].Dest, placements[j].Dest)
					}
				}
			}
		}
	}
}

func TestShadowPlacementsEdgeSpans(t *testing.T) {
	// The stretched edges must cover exactly the span between the corners,
	// so corners are never re-covered and no gap remains.
	const w, h = 801, 633
	for _, p := range ShadowPlacements(w, h) {
		switch p.Kind {
		case ShadowBottom:
			if p.Dest.X != ShadowCornerSize || p.Dest.W != w-2*ShadowCornerSize {
				t.Errorf("horizontal edge %+v does not span between corners", p.Dest)
			}
		case ShadowLeft:
			if p.Dest.Y != ShadowCornerSize || p.Dest.H != h-2*ShadowCornerSize {
				t.Errorf("vertical edge %+v does not span between corners", p.Dest)
			}
		}
	}
}

func TestDrawShadowTextureSelection(t *testing.T) {
	r := &recordingRenderer{}
	tex := testShadowTextures()
	DrawShadow(r, 400, 400, tex)

	if len(r.ops) != 8 {
		t.Fatalf("DrawShadow issued %d draws, want 8", len(r.ops))
	}
	counts := map[Texture]int{}
	for _, op := range r.ops {
		if op.kind != opTexture {
			t.Fatalf("unexpected op %v during shadow draw", op.kind)
		}
		counts[op.tex]++
	}
	if counts[tex.Corner] != 4 || counts[tex.Bottom] != 2 || counts[tex.Left] != 2 {
		t.Errorf("texture usage = corner:%d bottom:%d left:%d, want 4/2/2",
			counts[tex.Corner], counts[tex.Bottom], counts[tex.Left])
	}
}
