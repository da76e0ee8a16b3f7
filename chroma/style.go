package chroma

import (
	"fmt"
	"strings"

	chromalib "github.com/alecthomas/chroma/v2"
	"github.com/fwojciec/maple"
)

// tokenRoles maps chroma token types to syntax roles. Token types without an
// entry inherit from their category.
var tokenRoles = []struct {
	Type chromalib.TokenType
	Role string
}{
	{chromalib.Keyword, "keyword"},
	{chromalib.KeywordType, "type"},
	{chromalib.KeywordConstant, "boolean"},
	{chromalib.Comment, "comment"},
	{chromalib.String, "string"},
	{chromalib.StringInterpol, "embedded"},
	{chromalib.Number, "number"},
	{chromalib.Operator, "operator"},
	{chromalib.OperatorWord, "keyword"},
	{chromalib.Punctuation, "punctuation"},
	{chromalib.NameAttribute, "attribute"},
	{chromalib.NameBuiltin, "primary"},
	{chromalib.NameBuiltinPseudo, "variable.special"},
	{chromalib.NameClass, "constructor"},
	{chromalib.NameConstant, "constant"},
	{chromalib.NameDecorator, "attribute"},
	{chromalib.NameFunction, "function"},
	{chromalib.NameLabel, "label"},
	{chromalib.NameNamespace, "namespace"},
	{chromalib.NameProperty, "property"},
	{chromalib.NameTag, "tag"},
	{chromalib.NameVariable, "variable"},
	{chromalib.GenericHeading, "title"},
	{chromalib.GenericSubheading, "title"},
	{chromalib.GenericEmph, "emphasis"},
	{chromalib.GenericStrong, "emphasis.strong"},
	{chromalib.GenericInserted, "string"},
	{chromalib.GenericDeleted, "tag"},
}

// NewStyle builds a chroma style from the syntax rules of v. The background
// entry uses the variant's editor colors.
func NewStyle(v maple.ThemeVariant) (*chromalib.Style, error) {
	b := chromalib.NewStyleBuilder(v.Name)

	var bg []string
	if c, ok := v.Style.UI["editor.background"].(maple.Color); ok {
		bg = append(bg, "bg:"+opaque(c))
	}
	if c, ok := v.Style.UI["editor.foreground"].(maple.Color); ok {
		bg = append(bg, opaque(c))
	}
	if len(bg) > 0 {
		b.Add(chromalib.Background, strings.Join(bg, " "))
	}

	for _, tr := range tokenRoles {
		rule, ok := v.Style.Syntax[tr.Role]
		if !ok {
			continue
		}
		b.Add(tr.Type, entry(rule))
	}

	style, err := b.Build()
	if err != nil {
		return nil, fmt.Errorf("chroma: style %q: %w", v.Name, err)
	}
	return style, nil
}

// StyleFunc maps chroma token types to highlight rules.
type StyleFunc func(chromalib.TokenType) maple.HighlightRule

// StyleFromChroma returns a StyleFunc reading entries from style, including
// the entries token types inherit from their category.
func StyleFromChroma(style *chromalib.Style) StyleFunc {
	return func(tt chromalib.TokenType) maple.HighlightRule {
		e := style.Get(tt)
		var rule maple.HighlightRule
		if e.Colour.IsSet() {
			rule.Color = maple.Color(e.Colour.String())
		}
		if e.Italic == chromalib.Yes {
			rule.FontStyle = maple.FontStyleItalic
		}
		if e.Bold == chromalib.Yes {
			rule.FontWeight = maple.FontWeightBold
		}
		return rule
	}
}

func entry(r maple.HighlightRule) string {
	var parts []string
	if r.Color != "" {
		parts = append(parts, opaque(r.Color))
	}
	if r.BackgroundColor != "" {
		parts = append(parts, "bg:"+opaque(r.BackgroundColor))
	}
	// Sub-types inherit unset attributes from their category, so the
	// negative forms are always written.
	switch r.FontStyle {
	case maple.FontStyleItalic, maple.FontStyleOblique:
		parts = append(parts, "italic")
	default:
		parts = append(parts, "noitalic")
	}
	if r.FontWeight >= maple.FontWeightBold {
		parts = append(parts, "bold")
	} else {
		parts = append(parts, "nobold")
	}
	return strings.Join(parts, " ")
}

// opaque drops the alpha byte of "#rrggbbaa" colors, which chroma cannot parse.
func opaque(c maple.Color) string {
	if len(c) == 9 {
		return string(c[:7])
	}
	return string(c)
}
