package scheme

import (
	"reflect"
	"strings"
	"testing"
)

func TestGenerateIsPure(t *testing.T) {
	raw := testRawPalette()
	custom := CustomColours{RoleAccentPrimary: "#ff0000"}

	a := Generate(ModeDark, raw, custom, DefaultDark)
	b := Generate(ModeDark, raw, custom, DefaultDark)

	if a.Hash != b.Hash {
		t.Errorf("hashes differ for identical inputs: %s vs %s", a.Hash, b.Hash)
	}
	if !reflect.DeepEqual(a, b) {
		t.Error("outputs differ for identical inputs")
	}
}

func TestGenerateOverlayLaw(t *testing.T) {
	raw := testRawPalette()
	custom := CustomColours{
		RoleBackground: "#123456",
		RoleText:       "#abcdef",
	}

	cs := Generate(ModeDark, raw, custom, DefaultDark)

	for role, want := range custom {
		if got := cs.Palette[role]; got != want {
			t.Errorf("palette[%s] = %q, want custom override %q", role, got, want)
		}
	}
}

func TestGenerateWithoutCustomColours(t *testing.T) {
	raw := testRawPalette()

	cs := Generate(ModeDark, raw, nil, DefaultDark)

	extended := Extend(raw)
	for role, index := range DefaultDark.Palette {
		if got := cs.Palette[role]; got != extended[index] {
			t.Errorf("palette[%s] = %q, want %q", role, got, extended[index])
		}
	}
}

func TestHashIgnoresInsertionOrder(t *testing.T) {
	forward := Palette{}
	backward := Palette{}

	roles := []Role{RoleBackground, RoleText, RoleAccentPrimary, RoleForeground}
	for i, role := range roles {
		forward[role] = testRawPalette()[i]
	}
	for i := len(roles) - 1; i >= 0; i-- {
		backward[roles[i]] = testRawPalette()[i]
	}

	if hashPalette(forward) != hashPalette(backward) {
		t.Error("hash depends on key insertion order")
	}
}

func TestHashChangesWithPalette(t *testing.T) {
	raw := testRawPalette()

	plain := Generate(ModeDark, raw, nil, DefaultDark)
	overridden := Generate(ModeDark, raw, CustomColours{RoleBackground: "#fefefe"}, DefaultDark)

	if plain.Hash == overridden.Hash {
		t.Error("hash unchanged although the final palette differs")
	}
}

func TestDarkreaderSchemeShape(t *testing.T) {
	raw := testRawPalette()

	tests := []struct {
		mode     Mode
		wantKeys []string
	}{
		{ModeDark, []string{darkSchemeText, darkSchemeBackground}},
		{ModeLight, []string{lightSchemeText, lightSchemeBackground}},
		{ModeAuto, []string{lightSchemeText, lightSchemeBackground}},
	}

	for _, tt := range tests {
		t.Run(string(tt.mode), func(t *testing.T) {
			cs := Generate(tt.mode, raw, nil, TemplateFor(tt.mode))

			if len(cs.DarkreaderScheme) != 2 {
				t.Fatalf("darkreader scheme has %d keys, want exactly 2: %v",
					len(cs.DarkreaderScheme), cs.DarkreaderScheme)
			}
			for _, key := range tt.wantKeys {
				if _, ok := cs.DarkreaderScheme[key]; !ok {
					t.Errorf("darkreader scheme missing %q: %v", key, cs.DarkreaderScheme)
				}
			}
		})
	}
}

func TestExtensionThemeOrdering(t *testing.T) {
	cs := Generate(ModeDark, testRawPalette(), nil, DefaultDark)

	if !strings.HasPrefix(cs.ExtensionTheme, ":root{") || !strings.HasSuffix(cs.ExtensionTheme, ";}") {
		t.Fatalf("extension theme is not a single :root rule: %q", cs.ExtensionTheme)
	}

	// Variables must appear in declaration order.
	last := -1
	for _, v := range extensionVars {
		idx := strings.Index(cs.ExtensionTheme, v.Variable+":")
		if idx < 0 {
			t.Fatalf("extension theme missing %s: %q", v.Variable, cs.ExtensionTheme)
		}
		if idx < last {
			t.Fatalf("extension theme variables out of order: %q", cs.ExtensionTheme)
		}
		last = idx
	}
}

func TestBrowserThemeUsesTemplateRoles(t *testing.T) {
	cs := Generate(ModeDark, testRawPalette(), nil, DefaultDark)

	for key, entry := range DefaultDark.Browser {
		if entry.Modifier != 0 {
			continue
		}
		if got := cs.BrowserTheme[key]; got != cs.Palette[entry.Role] {
			t.Errorf("browserTheme[%s] = %q, want palette[%s] = %q",
				key, got, entry.Role, cs.Palette[entry.Role])
		}
	}
}

func TestDuckDuckGoThemeModifier(t *testing.T) {
	cs := Generate(ModeDark, testRawPalette(), nil, DefaultDark)

	// kaa declares a modifier, so it must differ from the plain role value
	// unless the adjustment saturates.
	entry := duckduckgoTemplate["kaa"]
	if entry.Modifier == 0 {
		t.Fatal("test expects kaa to declare a modifier")
	}
	if _, ok := cs.DuckDuckGoTheme["kaa"]; !ok {
		t.Fatal("duckduckgo theme missing kaa")
	}
}

func TestParseMode(t *testing.T) {
	for _, valid := range []string{"dark", "light", "auto"} {
		if _, err := ParseMode(valid); err != nil {
			t.Errorf("ParseMode(%q) unexpected error: %v", valid, err)
		}
	}
	for _, invalid := range []string{"", "Dark", "darkish", "day"} {
		if _, err := ParseMode(invalid); err == nil {
			t.Errorf("ParseMode(%q) expected error", invalid)
		}
	}
}
