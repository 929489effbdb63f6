// Package colour provides colour parsing and manipulation for palette generation.
package colour

import (
	"fmt"
	"strings"
)

// RGB represents a colour in RGB format.
type RGB struct {
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
}

// String returns the RGB colour as a string in the format "rgb(r, g, b)".
func (rgb RGB) String() string {
	return fmt.Sprintf("rgb(%d, %d, %d)", rgb.R, rgb.G, rgb.B)
}

// Hex returns the RGB colour as a hex string (e.g., "#1a2b3c").
func (rgb RGB) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", rgb.R, rgb.G, rgb.B)
}

// ParseHex parses a "#rrggbb" colour string. The leading '#' is optional.
func ParseHex(s string) (RGB, error) {
	hex := strings.TrimPrefix(s, "#")
	if len(hex) != 6 {
		return RGB{}, fmt.Errorf("invalid hex colour: %q", s)
	}

	var r, g, b uint8
	if _, err := fmt.Sscanf(hex, "%02x%02x%02x", &r, &g, &b); err != nil {
		return RGB{}, fmt.Errorf("invalid hex colour %q: %w", s, err)
	}

	return RGB{R: r, G: g, B: b}, nil
}

// StripHash removes the leading '#' marker from a hex colour string.
func StripHash(s string) string {
	return strings.TrimPrefix(s, "#")
}

// AdjustLuminance scales each channel of a hex colour by modifier, clamping
// the result to [min, max] per channel. Values outside 0-255 are clamped to
// the byte range first. Invalid input is returned unchanged.
func AdjustLuminance(hex string, modifier float64, min, max int) string {
	rgb, err := ParseHex(hex)
	if err != nil {
		return hex
	}

	adjusted := RGB{
		R: clampChannel(float64(rgb.R)*modifier, min, max),
		G: clampChannel(float64(rgb.G)*modifier, min, max),
		B: clampChannel(float64(rgb.B)*modifier, min, max),
	}

	return adjusted.Hex()
}

// clampChannel clamps a scaled channel value to [min, max] within the byte range.
func clampChannel(v float64, min, max int) uint8 {
	if min < 0 {
		min = 0
	}
	if max > 255 {
		max = 255
	}

	i := int(v)
	if i < min {
		i = min
	}
	if i > max {
		i = max
	}
	return uint8(i)
}
