// Package scheme turns raw pywal palettes into full colorscheme bundles:
// a role-keyed palette, a browser chrome theme, extension CSS variables, a
// DuckDuckGo theme and a Dark Reader scheme, fingerprinted with a stable hash.
package scheme

import "fmt"

// Mode is the theme mode governing which colour pairing is emitted for the
// page-darkening integration.
type Mode string

const (
	ModeDark  Mode = "dark"
	ModeLight Mode = "light"
	ModeAuto  Mode = "auto"
)

// ParseMode parses a theme mode string, rejecting anything outside the
// three literal values.
func ParseMode(s string) (Mode, error) {
	switch Mode(s) {
	case ModeDark, ModeLight, ModeAuto:
		return Mode(s), nil
	default:
		return "", fmt.Errorf("invalid theme mode: %q", s)
	}
}
