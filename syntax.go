package maple

// FontStyle is the CSS-like font style of a highlight rule.
type FontStyle string

// Font styles.
const (
	FontStyleNormal  FontStyle = "normal"
	FontStyleItalic  FontStyle = "italic"
	FontStyleOblique FontStyle = "oblique"
)

// FontWeight is a CSS-like font weight (100-900). Zero means unset.
type FontWeight int

// Common font weights.
const (
	FontWeightNormal FontWeight = 400
	FontWeightBold   FontWeight = 700
)

// SyntaxStyle is an authored syntax style. A style with only Color set is a
// bare color.
type SyntaxStyle struct {
	Color           Color
	BackgroundColor Color
	FontStyle       FontStyle
	FontWeight      FontWeight
}

// Plain returns a bare color style.
func Plain(c Color) SyntaxStyle {
	return SyntaxStyle{Color: c}
}

// SyntaxRule assigns a style to a syntax role (e.g. "keyword", "emphasis.strong").
type SyntaxRule struct {
	Role  string
	Style SyntaxStyle
}

// HighlightRule is the normalized syntax rule written to the theme file.
// Unset fields are omitted so the editor applies its own defaults.
type HighlightRule struct {
	Color           Color      `json:"color"`
	FontStyle       FontStyle  `json:"font_style,omitempty"`
	FontWeight      FontWeight `json:"font_weight,omitempty"`
	BackgroundColor Color      `json:"background_color,omitempty"`
}

// BuildSyntax normalizes syntax rules into highlight rules keyed by role.
// A later rule for the same role replaces an earlier one.
func BuildSyntax(rules []SyntaxRule) map[string]HighlightRule {
	result := make(map[string]HighlightRule, len(rules))
	for _, r := range rules {
		result[r.Role] = HighlightRule{
			Color:           r.Style.Color,
			FontStyle:       r.Style.FontStyle,
			FontWeight:      r.Style.FontWeight,
			BackgroundColor: r.Style.BackgroundColor,
		}
	}
	return result
}
