package maple

import (
	"bytes"
	"encoding/json"
	"sort"
)

// Appearance is the light/dark tag of a theme variant.
type Appearance string

// Appearances.
const (
	AppearanceDark  Appearance = "dark"
	AppearanceLight Appearance = "light"
)

// ThemeStyle is the style object of a theme variant: the flattened UI keys
// plus the syntax rules under "syntax".
type ThemeStyle struct {
	UI     FlatStyle
	Syntax map[string]HighlightRule

	// Order lists UI keys in output order. UI keys it omits follow in
	// sorted order.
	Order []string
}

// MarshalJSON writes the UI keys and "syntax" as siblings of one object. UI
// keys come first in Order, then "syntax". A UI key named "syntax" is
// dropped.
func (s ThemeStyle) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for _, k := range s.keys() {
		if err := writeMember(&buf, k, s.UI[k]); err != nil {
			return nil, err
		}
		buf.WriteByte(',')
	}
	syntax := s.Syntax
	if syntax == nil {
		syntax = map[string]HighlightRule{}
	}
	if err := writeMember(&buf, "syntax", syntax); err != nil {
		return nil, err
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func (s ThemeStyle) keys() []string {
	keys := make([]string, 0, len(s.UI))
	seen := make(map[string]bool, len(s.UI))
	for _, k := range s.Order {
		if _, ok := s.UI[k]; ok && !seen[k] && k != "syntax" {
			seen[k] = true
			keys = append(keys, k)
		}
	}
	var rest []string
	for k := range s.UI {
		if !seen[k] && k != "syntax" {
			rest = append(rest, k)
		}
	}
	sort.Strings(rest)
	return append(keys, rest...)
}

func writeMember(buf *bytes.Buffer, key string, v any) error {
	enc := json.NewEncoder(buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(key); err != nil {
		return err
	}
	buf.Truncate(buf.Len() - 1)
	buf.WriteByte(':')
	if err := enc.Encode(v); err != nil {
		return err
	}
	buf.Truncate(buf.Len() - 1)
	return nil
}

// ThemeVariant is one compiled light or dark theme.
type ThemeVariant struct {
	Appearance Appearance `json:"appearance"`
	Name       string     `json:"name"`
	Style      ThemeStyle `json:"style"`
}

// ThemeFamily is the compiled theme file. Themes keep the scheme order.
type ThemeFamily struct {
	Name   string         `json:"name"`
	Author string         `json:"author"`
	Themes []ThemeVariant `json:"themes"`
}

// Variant returns the theme with the given name.
func (f *ThemeFamily) Variant(name string) (ThemeVariant, bool) {
	for _, t := range f.Themes {
		if t.Name == name {
			return t, true
		}
	}
	return ThemeVariant{}, false
}

// EncodeTheme serializes a theme family as JSON indented by two spaces with a
// trailing newline.
func EncodeTheme(f *ThemeFamily) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(f); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
