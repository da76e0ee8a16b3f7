// Package maple provides domain types and the compilation engine that turns
// small color palettes into Zed editor theme families.
package maple

import "context"

// Color is a color string in "#rgb", "#rgba", "#rrggbb" or "#rrggbbaa" form.
type Color string

// Hue names a base palette color.
type Hue string

// Known base hues.
const (
	HueRed    Hue = "red"
	HueOrange Hue = "orange"
	HueYellow Hue = "yellow"
	HueGreen  Hue = "green"
	HueCyan   Hue = "cyan"
	HueBlue   Hue = "blue"
	HuePurple Hue = "purple"
	HuePink   Hue = "pink"
	HueGray   Hue = "gray"
	HueBlack  Hue = "black"
	HueWhite  Hue = "white"
)

// BaseColor maps hue names to colors.
type BaseColor map[Hue]Color

// TokenColor maps syntax role paths (e.g. "keyword.normal") to colors.
type TokenColor map[string]Color

// UIColor maps editor surface roles (e.g. "background") to colors.
type UIColor map[string]Color

// ColorScheme is the unit of compilation. One scheme produces exactly one
// theme variant.
type ColorScheme struct {
	Name   string
	IsDark bool
	Base   BaseColor
	Token  TokenColor
	UI     UIColor
}

// Appearance returns the variant appearance derived from IsDark.
func (s ColorScheme) Appearance() Appearance {
	if s.IsDark {
		return AppearanceDark
	}
	return AppearanceLight
}

// Metadata describes the extension that ships the compiled themes.
type Metadata struct {
	ID          string // Extension identifier (e.g. "maple-theme")
	Name        string // Display name shown in the extension list
	Family      string // Theme family name inside the theme file
	Version     string
	Description string
	Repository  string
	Author      string
}

// ColorModel derives colors from palette entries.
type ColorModel interface {
	// Alpha returns c with the given opacity applied. Alpha is clamped to [0, 1].
	Alpha(c Color, alpha float64) (Color, error)
	// ContrastText returns a text color legible on the given background.
	ContrastText(background Color) (Color, error)
	// Mix linearly interpolates from a to b. t=0 returns a, t=1 returns b.
	Mix(a, b Color, t float64) (Color, error)
}

// SchemeLoader loads an ordered list of color schemes.
type SchemeLoader interface {
	Load(path string) ([]ColorScheme, error)
}

// ArtifactStore reads and writes generated artifacts.
type ArtifactStore interface {
	// Read returns the current content at path, or nil if the file does not exist.
	Read(path string) ([]byte, error)
	// Write replaces the content at path, creating parent directories as needed.
	Write(path string, data []byte) error
}

// Differ describes the differences between two artifact versions.
type Differ interface {
	// Diff returns a human readable description of the changes from old to new,
	// or an empty string if they are equal.
	Diff(old, new string) string
}

// Previewer displays a compiled theme family.
type Previewer interface {
	Preview(ctx context.Context, family *ThemeFamily) error
}

// SchemaFetcher downloads the versioned JSON schema for theme files.
type SchemaFetcher interface {
	Fetch(ctx context.Context, version string) ([]byte, error)
}
