package assets

import "testing"

func TestLoadDimensions(t *testing.T) {
	imgs, err := Load()
	if err != nil {
		t.Fatal(err)
	}
	if w, h := imgs.Corner.Bounds().Dx(), imgs.Corner.Bounds().Dy(); w != CornerSize || h != CornerSize {
		t.Errorf("corner is %dx%d, want %dx%d", w, h, CornerSize, CornerSize)
	}
	if h := imgs.Bottom.Bounds().Dy(); h != EdgeThickness {
		t.Errorf("bottom edge height = %d, want %d", h, EdgeThickness)
	}
	if imgs.Bottom.Bounds().Dx() < 1 {
		t.Error("bottom edge has no tileable width")
	}
	if w := imgs.Left.Bounds().Dx(); w != EdgeThickness {
		t.Errorf("left edge width = %d, want %d", w, EdgeThickness)
	}
	if imgs.Left.Bounds().Dy() < 1 {
		t.Error("left edge has no tileable height")
	}
}

func TestGradientOrientation(t *testing.T) {
	// Unflipped orientations: corner shades toward bottom-right, bottom
	// fades downward, left fades leftward. The compositor's flip flags
	// depend on this.
	imgs, err := Load()
	if err != nil {
		t.Fatal(err)
	}

	if a := imgs.Corner.NRGBAAt(0, 0).A; a == 0 {
		t.Error("corner inner pixel is fully transparent")
	}
	if a := imgs.Corner.NRGBAAt(CornerSize-1, CornerSize-1).A; a != 0 {
		t.Errorf("corner outer pixel alpha = %d, want 0", a)
	}

	bottom := imgs.Bottom
	if top, low := bottom.NRGBAAt(0, 0).A, bottom.NRGBAAt(0, EdgeThickness-1).A; top <= low {
		t.Errorf("bottom edge does not fade downward: top %d, bottom %d", top, low)
	}

	left := imgs.Left
	if inner, outer := left.NRGBAAt(EdgeThickness-1, 0).A, left.NRGBAAt(0, 0).A; inner <= outer {
		t.Errorf("left edge does not fade leftward: inner %d, outer %d", inner, outer)
	}
}

func TestEdgesTile(t *testing.T) {
	// Edge textures get stretched along their long axis, so every column
	// (row) must be identical or seams would show.
	imgs, err := Load()
	if err != nil {
		t.Fatal(err)
	}

	b := imgs.Bottom
	for x := 1; x < b.Bounds().Dx(); x++ {
		for y := 0; y < EdgeThickness; y++ {
			if b.NRGBAAt(x, y) != b.NRGBAAt(0, y) {
				t.Fatalf("bottom edge column %d differs from column 0 at row %d", x, y)
			}
		}
	}

	l := imgs.Left
	for y := 1; y < l.Bounds().Dy(); y++ {
		for x := 0; x < EdgeThickness; x++ {
			if l.NRGBAAt(x, y) != l.NRGBAAt(x, 0) {
				t.Fatalf("left edge row %d differs from row 0 at column %d", y, x)
			}
		}
	}
}
