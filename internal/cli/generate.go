package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"golang.org/x/term"

	"github.com/Frewacom/FARBS-Firefox/internal/cache"
	"github.com/Frewacom/FARBS-Firefox/internal/colour"
	"github.com/Frewacom/FARBS-Firefox/internal/scheme"
	"github.com/Frewacom/FARBS-Firefox/internal/wallpaper"
)

var (
	// Generate command flags
	generateInput           string
	generateMode            string
	generateColours         []string
	generateWallpaperAccent bool
	generateSave            bool
	generateJSON            bool
)

// generateCmd represents the generate command
var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Derive a colorscheme bundle from pywal colours",
	Long: `Derive the full colorscheme bundle (palette, browser theme, extension CSS,
DuckDuckGo theme and Dark Reader scheme) from a pywal colors.json file.

The input may be pywal's own colors.json shape or a bare 18-colour array in
helper wire order (background, foreground, color0..color15).

Examples:
  # From the default pywal cache
  farbs generate

  # Light mode from an explicit file, overriding one role
  farbs generate -i theme.json --mode light --colour accentPrimary=#f38ba8

  # Pull the primary accent from the wallpaper instead of the palette
  farbs generate --wallpaper-accent

  # Persist the result in the colorscheme cache
  farbs generate --save`,
	RunE: runGenerate,
}

func init() {
	addGenerateFlags(generateCmd.Flags())
}

// addGenerateFlags registers the generate command's flags on fs.
func addGenerateFlags(fs *pflag.FlagSet) {
	fs.StringVarP(&generateInput, "input", "i", "", "pywal colors.json path (default ~/.cache/wal/colors.json, '-' for stdin)")
	fs.StringVarP(&generateMode, "mode", "m", "dark", "theme mode (dark, light, auto)")
	fs.StringSliceVar(&generateColours, "colour", nil, "custom colour override as role=#rrggbb (repeatable)")
	fs.BoolVar(&generateWallpaperAccent, "wallpaper-accent", false, "derive accentPrimary from the wallpaper referenced by the input")
	fs.BoolVar(&generateSave, "save", false, "store the result in the colorscheme cache")
	fs.BoolVar(&generateJSON, "json", false, "always print JSON, even on a terminal")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	mode, err := scheme.ParseMode(generateMode)
	if err != nil {
		return err
	}

	raw, wallpaperPath, err := readPywalInput(generateInput)
	if err != nil {
		return err
	}
	if len(raw) != scheme.RawPaletteLength {
		return fmt.Errorf("pywal palette has %d colours, expected %d", len(raw), scheme.RawPaletteLength)
	}

	custom, err := parseColourOverrides(generateColours)
	if err != nil {
		return err
	}

	if generateWallpaperAccent {
		if wallpaperPath == "" {
			return fmt.Errorf("--wallpaper-accent requires an input that references a wallpaper")
		}
		accent, err := wallpaper.Accent(wallpaperPath)
		if err != nil {
			return fmt.Errorf("failed to derive wallpaper accent: %w", err)
		}
		logger.Debug("derived accent from wallpaper", "path", wallpaperPath, "accent", accent)
		custom[scheme.RoleAccentPrimary] = accent
	}

	cs := scheme.Generate(mode, raw, custom, scheme.TemplateFor(mode))

	if generateSave {
		dir, err := cache.DefaultDir()
		if err != nil {
			return err
		}
		store, err := cache.New(dir, logger)
		if err != nil {
			return err
		}
		if err := store.Put(cs); err != nil {
			return err
		}
		logger.Info("colorscheme cached", "hash", cs.Hash)
	}

	if !generateJSON && term.IsTerminal(int(os.Stdout.Fd())) {
		printSwatches(cmd.OutOrStdout(), cs)
		return nil
	}

	out := json.NewEncoder(cmd.OutOrStdout())
	out.SetIndent("", "  ")
	return out.Encode(cs)
}

// pywalFile is pywal's colors.json shape.
type pywalFile struct {
	Wallpaper string `json:"wallpaper"`
	Special   struct {
		Background string `json:"background"`
		Foreground string `json:"foreground"`
		Cursor     string `json:"cursor"`
	} `json:"special"`
	Colors map[string]string `json:"colors"`
}

// readPywalInput loads a raw palette in helper wire order from a pywal
// colors.json file, a bare colour array, or stdin.
func readPywalInput(path string) (scheme.RawPalette, string, error) {
	var data []byte
	var err error

	switch path {
	case "-":
		data, err = io.ReadAll(os.Stdin)
	case "":
		home, homeErr := os.UserHomeDir()
		if homeErr != nil {
			return nil, "", fmt.Errorf("failed to locate the default pywal cache: %w", homeErr)
		}
		data, err = os.ReadFile(filepath.Join(home, ".cache", "wal", "colors.json"))
	default:
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, "", fmt.Errorf("failed to read pywal colours: %w", err)
	}

	// Bare array in wire order.
	var raw scheme.RawPalette
	if err := json.Unmarshal(data, &raw); err == nil {
		return raw, "", nil
	}

	var file pywalFile
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, "", fmt.Errorf("failed to parse pywal colours: %w", err)
	}

	raw = scheme.RawPalette{file.Special.Background, file.Special.Foreground}
	for i := 0; i < 16; i++ {
		c, ok := file.Colors[fmt.Sprintf("color%d", i)]
		if !ok {
			return nil, "", fmt.Errorf("pywal colours missing color%d", i)
		}
		raw = append(raw, c)
	}

	return raw, file.Wallpaper, nil
}

// parseColourOverrides parses repeated role=#rrggbb flags.
func parseColourOverrides(specs []string) (scheme.CustomColours, error) {
	custom := make(scheme.CustomColours, len(specs))
	for _, spec := range specs {
		role, value, ok := strings.Cut(spec, "=")
		if !ok {
			return nil, fmt.Errorf("invalid colour override %q (expected role=#rrggbb)", spec)
		}
		if _, err := colour.ParseHex(value); err != nil {
			return nil, fmt.Errorf("invalid colour override %q: %w", spec, err)
		}
		custom[scheme.Role(role)] = value
	}
	return custom, nil
}

// printSwatches renders the palette as truecolor swatches for terminals.
func printSwatches(w io.Writer, cs scheme.Colorscheme) {
	fmt.Fprintf(w, "hash: %s  mode: %s\n\n", cs.Hash, cs.Mode)

	roles := []scheme.Role{
		scheme.RoleBackground,
		scheme.RoleBackgroundLight,
		scheme.RoleBackgroundExtra,
		scheme.RoleAccentPrimary,
		scheme.RoleAccentSecondary,
		scheme.RoleText,
		scheme.RoleTextFocus,
		scheme.RoleForeground,
	}

	for _, role := range roles {
		value := cs.Palette[role]
		rgb, err := colour.ParseHex(value)
		if err != nil {
			fmt.Fprintf(w, "%-18s %s\n", role, value)
			continue
		}
		fmt.Fprintf(w, "%-18s %s \x1b[48;2;%d;%d;%dm      \x1b[0m\n", role, value, rgb.R, rgb.G, rgb.B)
	}
}
