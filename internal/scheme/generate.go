package scheme

import (
	"fmt"
	"hash/fnv"
	"sort"

	"github.com/Frewacom/FARBS-Firefox/internal/colour"
)

// Colorscheme is the fully derived bundle for one generation run. It is an
// immutable snapshot; Hash fingerprints the final palette so collaborators
// can skip re-rendering and re-persisting when nothing changed.
type Colorscheme struct {
	Hash             string            `json:"hash"`
	Mode             Mode              `json:"mode"`
	Palette          Palette           `json:"palette"`
	BrowserTheme     map[string]string `json:"browserTheme"`
	ExtensionTheme   string            `json:"extensionTheme"`
	DuckDuckGoTheme  map[string]string `json:"duckduckgoTheme"`
	DarkreaderScheme map[string]string `json:"darkreaderScheme"`
}

// Generate derives a complete colorscheme from a raw pywal palette. It is a
// pure function of its arguments: identical inputs always yield identical
// hashes and deep-equal outputs. The raw palette is copied before extension,
// so the caller's slice is never aliased.
func Generate(mode Mode, raw RawPalette, custom CustomColours, tmpl Template) Colorscheme {
	extended := Extend(raw)

	palette := buildPalette(extended, tmpl.Palette)
	palette = overlay(palette, custom)

	return Colorscheme{
		Hash:             hashPalette(palette),
		Mode:             mode,
		Palette:          palette,
		BrowserTheme:     applyTheme(palette, tmpl.Browser),
		ExtensionTheme:   extensionTheme(palette),
		DuckDuckGoTheme:  applyTheme(palette, tmpl.DuckDuckGo),
		DarkreaderScheme: darkreaderScheme(palette, mode),
	}
}

// buildPalette resolves each role to its extended-palette value.
func buildPalette(extended RawPalette, tmpl PaletteTemplate) Palette {
	palette := make(Palette, len(tmpl))
	for role, index := range tmpl {
		palette[role] = extended[index]
	}
	return palette
}

// overlay merges custom colours over a derived palette, returning a new
// mapping. Custom entries always win; neither input is mutated.
func overlay(palette Palette, custom CustomColours) Palette {
	merged := make(Palette, len(palette))
	for role, value := range palette {
		merged[role] = value
	}
	for role, value := range custom {
		merged[role] = value
	}
	return merged
}

// hashPalette fingerprints a palette: role names sorted lexicographically,
// values concatenated with their leading '#' stripped, FNV-1a over the
// result. Key insertion order can never affect the hash.
func hashPalette(palette Palette) string {
	roles := make([]string, 0, len(palette))
	for role := range palette {
		roles = append(roles, string(role))
	}
	sort.Strings(roles)

	h := fnv.New64a()
	for _, role := range roles {
		h.Write([]byte(colour.StripHash(palette[Role(role)])))
	}

	return fmt.Sprintf("%016x", h.Sum64())
}
