// Package palette provides the built-in Maple color schemes.
package palette

import "github.com/fwojciec/maple"

// Scheme names, in display order.
const (
	NameDark  = "Maple Dark"
	NameLight = "Maple Light"
)

// Schemes returns the built-in schemes in display order. Each call returns
// fresh maps so callers may modify the result.
func Schemes() []maple.ColorScheme {
	return []maple.ColorScheme{Dark(), Light()}
}

// Dark returns the Maple Dark scheme.
func Dark() maple.ColorScheme {
	return maple.ColorScheme{
		Name:   NameDark,
		IsDark: true,
		Base: maple.BaseColor{
			maple.HueRed:    "#ee8a8f",
			maple.HueOrange: "#f1a67f",
			maple.HueYellow: "#e5d58b",
			maple.HueGreen:  "#a4dfae",
			maple.HueCyan:   "#8fd8e5",
			maple.HueBlue:   "#8fc7ff",
			maple.HuePurple: "#cfb6f8",
			maple.HuePink:   "#f3b8d8",
			maple.HueGray:   "#8a8d98",
		},
		Token: maple.TokenColor{
			"keyword.normal":      "#cfb6f8",
			"keyword.alt":         "#f3b8d8",
			"string":              "#a4dfae",
			"number":              "#f1a67f",
			"boolean":             "#f1a67f",
			"constant":            "#f1a67f",
			"comment":             "#6e7281",
			"function":            "#8fc7ff",
			"builtin":             "#8fd8e5",
			"operator":            "#ee8a8f",
			"punctuation":         "#a3a6b0",
			"namespace":           "#e5d58b",
			"link":                "#8fd8e5",
			"htmlTag":             "#ee8a8f",
			"type.normal":         "#8fd8e5",
			"class.normal":        "#e5d58b",
			"enum.normal":         "#e5d58b",
			"property.normal":     "#b7d3f2",
			"variable.local":      "#dcdde2",
			"variable.defaultLib": "#f3b8d8",
			"markdown.title":      "#8fc7ff",
			"markdown.bold":       "#ee8a8f",
			"markdown.italic":     "#cfb6f8",
			"css.pseudo":          "#cfb6f8",
			"diff.inserted":       "#a4dfae",
			"diff.deleted":        "#ee8a8f",
			"diff.changed":        "#8fc7ff",
		},
		UI: maple.UIColor{
			"background":          "#1e1f24",
			"foreground":          "#dcdde2",
			"secondary":           "#8fc7ff",
			"backgroundEditor":    "#1a1b1f",
			"backgroundEditorAlt": "#2b2d35",
			"selection":           "#4b5063",
			"cursor":              "#cfb6f8",
			"borderNormal":        "#2f3139",
			"borderActive":        "#8fc7ff",
			"scrollbar":           "#5d6172",
			"listItem":            "#33363f",
		},
	}
}

// Light returns the Maple Light scheme.
func Light() maple.ColorScheme {
	return maple.ColorScheme{
		Name:   NameLight,
		IsDark: false,
		Base: maple.BaseColor{
			maple.HueRed:    "#d25d63",
			maple.HueOrange: "#d5794a",
			maple.HueYellow: "#b09229",
			maple.HueGreen:  "#4c9a5a",
			maple.HueCyan:   "#2b93a5",
			maple.HueBlue:   "#3d7fd1",
			maple.HuePurple: "#8c62d4",
			maple.HuePink:   "#c2609a",
			maple.HueGray:   "#8a8d98",
		},
		Token: maple.TokenColor{
			"keyword.normal":      "#8c62d4",
			"keyword.alt":         "#c2609a",
			"string":              "#4c9a5a",
			"number":              "#d5794a",
			"boolean":             "#d5794a",
			"constant":            "#d5794a",
			"comment":             "#a0a3ad",
			"function":            "#3d7fd1",
			"builtin":             "#2b93a5",
			"operator":            "#d25d63",
			"punctuation":         "#6b6e78",
			"namespace":           "#b09229",
			"link":                "#2b93a5",
			"htmlTag":             "#d25d63",
			"type.normal":         "#2b93a5",
			"class.normal":        "#b09229",
			"enum.normal":         "#b09229",
			"property.normal":     "#4f6f99",
			"variable.local":      "#3a3c44",
			"variable.defaultLib": "#c2609a",
			"markdown.title":      "#3d7fd1",
			"markdown.bold":       "#d25d63",
			"markdown.italic":     "#8c62d4",
			"css.pseudo":          "#8c62d4",
			"diff.inserted":       "#4c9a5a",
			"diff.deleted":        "#d25d63",
			"diff.changed":        "#3d7fd1",
		},
		UI: maple.UIColor{
			"background":          "#f4f4f6",
			"foreground":          "#3a3c44",
			"secondary":           "#3d7fd1",
			"backgroundEditor":    "#fafafb",
			"backgroundEditorAlt": "#e6e7eb",
			"selection":           "#c9d7ee",
			"cursor":              "#8c62d4",
			"borderNormal":        "#dedfe4",
			"borderActive":        "#3d7fd1",
			"scrollbar":           "#b4b7c1",
			"listItem":            "#e1e3ea",
		},
	}
}
