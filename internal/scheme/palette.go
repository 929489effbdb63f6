package scheme

import "github.com/Frewacom/FARBS-Firefox/internal/colour"

// RawPaletteLength is the number of colours pywal emits: the special
// background and foreground entries followed by the sixteen terminal
// colours. The helper version check guarantees this length before a palette
// reaches Extend.
const RawPaletteLength = 18

// RawPalette is the ordered colour sequence received from pywal: index 0 is
// the special background, index 1 the special foreground, indices 2-17 are
// color0 through color15.
type RawPalette []string

// SpecKind discriminates the two extended-colour variants.
type SpecKind int

const (
	// SpecDerived inserts a luminance-shifted copy of an existing entry.
	SpecDerived SpecKind = iota

	// SpecFixed inserts a literal colour string.
	SpecFixed
)

// ExtendedColourSpec describes one auxiliary colour inserted into the raw
// palette. TargetIndex addresses the growing sequence at the time the spec
// is applied, so declaration order matters.
type ExtendedColourSpec struct {
	Kind        SpecKind
	TargetIndex int

	// SpecFixed.
	Colour string

	// SpecDerived.
	SourceIndex int
	Modifier    float64
	Min         int
	Max         int
}

// Indices of the auxiliary colours appended by extendedSpecs. Templates
// address the extended palette with these.
const (
	indexBackgroundLight = 18
	indexPureText        = 19
	indexBackgroundExtra = 20
)

// extendedSpecs is the fixed ordered list of auxiliary colours. Each entry
// is spliced into the growing sequence in declaration order.
var extendedSpecs = []ExtendedColourSpec{
	{Kind: SpecDerived, TargetIndex: indexBackgroundLight, SourceIndex: 0, Modifier: 1.25, Min: 10, Max: 255},
	{Kind: SpecFixed, TargetIndex: indexPureText, Colour: "#ffffff"},
	{Kind: SpecDerived, TargetIndex: indexBackgroundExtra, SourceIndex: 0, Modifier: 0.75, Min: 0, Max: 60},
}

// ExtendedLength is the palette length after extension.
const ExtendedLength = RawPaletteLength + 3

// Extend expands a raw pywal palette with the fixed auxiliary colours. The
// input is copied before any insertion, so the caller's slice is never
// aliased or mutated. Length validation happens upstream; Extend itself has
// no error paths.
func Extend(raw RawPalette) RawPalette {
	return applySpecs(raw, extendedSpecs)
}

// applySpecs splices each spec's value into a growing copy of the palette,
// one spec at a time, in the order given.
func applySpecs(raw RawPalette, specs []ExtendedColourSpec) RawPalette {
	extended := make(RawPalette, len(raw), len(raw)+len(specs))
	copy(extended, raw)

	for _, spec := range specs {
		var value string
		switch spec.Kind {
		case SpecFixed:
			value = spec.Colour
		case SpecDerived:
			value = colour.AdjustLuminance(extended[spec.SourceIndex], spec.Modifier, spec.Min, spec.Max)
		}
		extended = insertAt(extended, spec.TargetIndex, value)
	}

	return extended
}

// insertAt inserts value at index i, shifting subsequent entries up.
func insertAt(palette RawPalette, i int, value string) RawPalette {
	palette = append(palette, "")
	copy(palette[i+1:], palette[i:])
	palette[i] = value
	return palette
}
