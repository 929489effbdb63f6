package scheme

// Role is a semantic colour role in the generated palette.
type Role string

const (
	RoleBackground      Role = "background"
	RoleBackgroundLight Role = "backgroundLight"
	RoleBackgroundExtra Role = "backgroundExtra"
	RoleAccentPrimary   Role = "accentPrimary"
	RoleAccentSecondary Role = "accentSecondary"
	RoleText            Role = "text"
	RoleTextFocus       Role = "textFocus"
	RoleForeground      Role = "foreground"
)

// Palette maps colour roles to hex colour strings.
type Palette map[Role]string

// CustomColours is a partial role mapping of user-chosen overrides. Entries
// here always win over derived values.
type CustomColours map[Role]string

// PaletteTemplate maps colour roles to extended-palette indices.
type PaletteTemplate map[Role]int

// ThemeEntry maps one output key to a palette role, optionally shifting its
// luminance. A zero Modifier means the role's colour is used as-is.
type ThemeEntry struct {
	Role     Role
	Modifier float64
	Min      int
	Max      int
}

// ThemeTemplate maps themed-output keys to palette roles.
type ThemeTemplate map[string]ThemeEntry

// Template bundles the per-target templates for one theme mode. Instances
// are static configuration and never mutated at runtime.
type Template struct {
	Palette    PaletteTemplate
	Browser    ThemeTemplate
	DuckDuckGo ThemeTemplate
}

// DefaultDark is the template used for dark mode.
var DefaultDark = Template{
	Palette: PaletteTemplate{
		RoleBackground:      0,
		RoleBackgroundLight: indexBackgroundLight,
		RoleBackgroundExtra: indexBackgroundExtra,
		RoleAccentPrimary:   11,
		RoleAccentSecondary: 14,
		RoleText:            16,
		RoleTextFocus:       indexPureText,
		RoleForeground:      17,
	},
	Browser:    browserTemplate,
	DuckDuckGo: duckduckgoTemplate,
}

// DefaultLight is the template used for light mode. Background and text
// roles swap ends of the palette; the accent picks move to the darker
// terminal colours so they hold up on a light backdrop.
var DefaultLight = Template{
	Palette: PaletteTemplate{
		RoleBackground:      17,
		RoleBackgroundLight: indexPureText,
		RoleBackgroundExtra: indexBackgroundLight,
		RoleAccentPrimary:   3,
		RoleAccentSecondary: 6,
		RoleText:            0,
		RoleTextFocus:       indexBackgroundExtra,
		RoleForeground:      0,
	},
	Browser:    browserTemplate,
	DuckDuckGo: duckduckgoTemplate,
}

// browserTemplate maps Firefox theme colour keys to palette roles.
var browserTemplate = ThemeTemplate{
	"icons":                    {Role: RoleAccentPrimary},
	"icons_attention":          {Role: RoleAccentSecondary},
	"frame":                    {Role: RoleBackground},
	"tab_text":                 {Role: RoleTextFocus},
	"tab_loading":              {Role: RoleAccentPrimary},
	"tab_background_text":      {Role: RoleText},
	"tab_selected":             {Role: RoleBackgroundLight},
	"tab_line":                 {Role: RoleAccentPrimary},
	"toolbar":                  {Role: RoleBackgroundLight},
	"toolbar_field":            {Role: RoleBackgroundExtra},
	"toolbar_field_focus":      {Role: RoleBackgroundExtra},
	"toolbar_field_text":       {Role: RoleText},
	"toolbar_field_text_focus": {Role: RoleTextFocus},
	"ntp_background":           {Role: RoleBackground},
	"ntp_text":                 {Role: RoleForeground},
	"popup":                    {Role: RoleBackgroundLight},
	"popup_border":             {Role: RoleBackgroundLight},
	"popup_text":               {Role: RoleForeground},
	"sidebar":                  {Role: RoleBackgroundLight},
	"sidebar_border":           {Role: RoleBackgroundLight},
	"sidebar_text":             {Role: RoleForeground},
	"sidebar_highlight":        {Role: RoleAccentPrimary},
	"sidebar_highlight_text":   {Role: RoleTextFocus},
	"bookmark_text":            {Role: RoleText},
	"button_background_hover":  {Role: RoleBackgroundExtra},
	"button_background_active": {Role: RoleBackgroundExtra},
}

// duckduckgoTemplate maps DuckDuckGo appearance-setting keys to palette
// roles. The single-letter keys are DuckDuckGo's own setting names.
var duckduckgoTemplate = ThemeTemplate{
	"k7":  {Role: RoleBackground},
	"k8":  {Role: RoleText},
	"k9":  {Role: RoleAccentPrimary},
	"kj":  {Role: RoleBackground},
	"kx":  {Role: RoleAccentSecondary},
	"kaa": {Role: RoleAccentPrimary, Modifier: 1.2, Min: 0, Max: 255},
	"k21": {Role: RoleBackgroundLight},
}

// extensionVars lists the CSS custom properties emitted for the extension's
// own pages, in the order they appear in the generated rule.
var extensionVars = []struct {
	Variable string
	Role     Role
}{
	{"--background", RoleBackground},
	{"--background-light", RoleBackgroundLight},
	{"--background-extra", RoleBackgroundExtra},
	{"--accent-primary", RoleAccentPrimary},
	{"--accent-secondary", RoleAccentSecondary},
	{"--text", RoleText},
	{"--text-focus", RoleTextFocus},
	{"--foreground", RoleForeground},
}

// TemplateFor returns the default template for a theme mode. Auto resolves
// to the dark template; collaborators that track the system preference
// re-generate with an explicit mode when it changes.
func TemplateFor(mode Mode) Template {
	if mode == ModeLight {
		return DefaultLight
	}
	return DefaultDark
}
