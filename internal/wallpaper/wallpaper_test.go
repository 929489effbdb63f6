package wallpaper

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/Frewacom/FARBS-Firefox/internal/colour"
)

// solidWithAccent draws a mostly grey image with one saturated region.
func solidWithAccent(accent color.RGBA) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, 128, 128))
	grey := color.RGBA{R: 120, G: 120, B: 120, A: 255}

	for y := 0; y < 128; y++ {
		for x := 0; x < 128; x++ {
			if x >= 32 && x < 96 && y >= 32 && y < 96 {
				img.Set(x, y, accent)
			} else {
				img.Set(x, y, grey)
			}
		}
	}
	return img
}

func TestAccentOfPicksSaturatedColour(t *testing.T) {
	red := color.RGBA{R: 200, G: 20, B: 20, A: 255}

	got := AccentOf(solidWithAccent(red))

	rgb, err := colour.ParseHex(got)
	if err != nil {
		t.Fatalf("AccentOf returned invalid hex %q: %v", got, err)
	}
	// Downscaling blends edges, so allow drift but require a clearly red
	// result.
	if rgb.R < 150 || rgb.G > 80 || rgb.B > 80 {
		t.Errorf("accent = %q, want a saturated red", got)
	}
}

func TestAccentFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "wall.png")
	file, err := os.Create(path)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := png.Encode(file, solidWithAccent(color.RGBA{R: 20, G: 20, B: 220, A: 255})); err != nil {
		t.Fatalf("encode: %v", err)
	}
	file.Close()

	got, err := Accent(path)
	if err != nil {
		t.Fatalf("Accent: %v", err)
	}

	rgb, err := colour.ParseHex(got)
	if err != nil {
		t.Fatalf("Accent returned invalid hex %q: %v", got, err)
	}
	if rgb.B < 150 {
		t.Errorf("accent = %q, want a saturated blue", got)
	}
}

func TestLoadErrors(t *testing.T) {
	if _, err := Load(""); err == nil {
		t.Error("Load(\"\") expected error")
	}
	if _, err := Load(filepath.Join(t.TempDir(), "missing.png")); err == nil {
		t.Error("Load of a missing file expected error")
	}

	// A non-image file must fail to decode.
	path := filepath.Join(t.TempDir(), "not-an-image.png")
	if err := os.WriteFile(path, []byte("plain text"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := Load(path); err == nil {
		t.Error("Load of a non-image expected error")
	}
}
