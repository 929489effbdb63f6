// Package wallpaper derives accent colours from wallpaper images referenced
// by pywal palette payloads.
package wallpaper

import (
	"fmt"
	"image"
	_ "image/gif"  // Register GIF format
	_ "image/jpeg" // Register JPEG format
	_ "image/png"  // Register PNG format
	"os"

	"golang.org/x/image/draw"
	_ "golang.org/x/image/webp" // Register WebP format

	"github.com/Frewacom/FARBS-Firefox/internal/colour"
)

// sampleSize is the edge length images are downscaled to before sampling.
// 64x64 keeps the scan cheap while preserving the dominant hues.
const sampleSize = 64

// Load decodes a wallpaper image from disk.
// Supported formats: JPEG, PNG, GIF, WebP.
func Load(path string) (image.Image, error) {
	if path == "" {
		return nil, fmt.Errorf("wallpaper path cannot be empty")
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open wallpaper: %w", err)
	}
	defer file.Close()

	img, _, err := image.Decode(file)
	if err != nil {
		return nil, fmt.Errorf("failed to decode wallpaper %s: %w", path, err)
	}
	return img, nil
}

// Accent returns the most saturated prominent colour of the wallpaper at
// path, as a hex string usable as a custom accent override.
func Accent(path string) (string, error) {
	img, err := Load(path)
	if err != nil {
		return "", err
	}
	return AccentOf(img), nil
}

// AccentOf picks the accent colour from an already-decoded image. The image
// is downscaled first so the scan cost is independent of resolution.
func AccentOf(img image.Image) string {
	small := downscale(img)
	bounds := small.Bounds()

	best := colour.RGB{}
	bestScore := -1.0

	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			r, g, b, _ := small.At(x, y).RGBA()
			rgb := colour.RGB{R: uint8(r >> 8), G: uint8(g >> 8), B: uint8(b >> 8)}

			_, s, l := colour.RGBToHSL(rgb)
			// Prefer saturated colours of medium lightness; washed-out and
			// near-black pixels make poor accents.
			score := s * (1 - abs(l-0.5)*2)
			if score > bestScore {
				bestScore = score
				best = rgb
			}
		}
	}

	return best.Hex()
}

// downscale resizes the image to at most sampleSize on each edge.
func downscale(img image.Image) image.Image {
	bounds := img.Bounds()
	if bounds.Dx() <= sampleSize && bounds.Dy() <= sampleSize {
		return img
	}

	dst := image.NewRGBA(image.Rect(0, 0, sampleSize, sampleSize))
	draw.ApproxBiLinear.Scale(dst, dst.Bounds(), img, bounds, draw.Src, nil)
	return dst
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
