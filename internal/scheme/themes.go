package scheme

import (
	"strings"

	"github.com/Frewacom/FARBS-Firefox/internal/colour"
)

// Dark Reader dynamic-theme option names.
const (
	darkSchemeText        = "darkSchemeTextColor"
	darkSchemeBackground  = "darkSchemeBackgroundColor"
	lightSchemeText       = "lightSchemeTextColor"
	lightSchemeBackground = "lightSchemeBackgroundColor"
)

// applyTheme resolves every template key against the palette, applying the
// entry's luminance modifier when one is declared.
func applyTheme(palette Palette, tmpl ThemeTemplate) map[string]string {
	theme := make(map[string]string, len(tmpl))
	for key, entry := range tmpl {
		value := palette[entry.Role]
		if entry.Modifier != 0 {
			value = colour.AdjustLuminance(value, entry.Modifier, entry.Min, entry.Max)
		}
		theme[key] = value
	}
	return theme
}

// extensionTheme emits the CSS rule applied to the extension's own pages:
// one ":root" selector holding a custom property per palette role, in fixed
// declaration order so equal palettes always produce byte-equal rules.
func extensionTheme(palette Palette) string {
	var b strings.Builder
	b.WriteString(":root{")
	for _, v := range extensionVars {
		b.WriteString(v.Variable)
		b.WriteByte(':')
		b.WriteString(palette[v.Role])
		b.WriteByte(';')
	}
	b.WriteString("}")
	return b.String()
}

// darkreaderScheme returns the Dark Reader colour pairing for the mode:
// exactly the dark pair for dark mode, exactly the light pair otherwise.
func darkreaderScheme(palette Palette, mode Mode) map[string]string {
	if mode == ModeDark {
		return map[string]string{
			darkSchemeText:       palette[RoleText],
			darkSchemeBackground: palette[RoleBackground],
		}
	}
	return map[string]string{
		lightSchemeText:       palette[RoleText],
		lightSchemeBackground: palette[RoleBackground],
	}
}
