package chroma_test

import (
	"testing"

	chromalib "github.com/alecthomas/chroma/v2"
	"github.com/fwojciec/maple"
	"github.com/fwojciec/maple/chroma"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testVariant() maple.ThemeVariant {
	return maple.ThemeVariant{
		Appearance: maple.AppearanceDark,
		Name:       "Test Dark",
		Style: maple.ThemeStyle{
			UI: maple.FlatStyle{
				"editor.background": maple.Color("#101010"),
				"editor.foreground": maple.Color("#dddddd"),
			},
			Syntax: map[string]maple.HighlightRule{
				"keyword":  {Color: "#ff00ff", FontStyle: maple.FontStyleItalic},
				"comment":  {Color: "#888888"},
				"type":     {Color: "#00ffff", FontWeight: maple.FontWeightBold},
				"variable": {Color: "#dcdde2e6"},
			},
		},
	}
}

func TestNewStyle(t *testing.T) {
	t.Parallel()

	t.Run("maps syntax roles to token types", func(t *testing.T) {
		t.Parallel()

		style, err := chroma.NewStyle(testVariant())
		require.NoError(t, err)

		kw := style.Get(chromalib.Keyword)
		assert.Equal(t, "#ff00ff", kw.Colour.String())
		assert.Equal(t, chromalib.Yes, kw.Italic)

		typ := style.Get(chromalib.KeywordType)
		assert.Equal(t, "#00ffff", typ.Colour.String())
		assert.Equal(t, chromalib.Yes, typ.Bold)
	})

	t.Run("sub types inherit their category", func(t *testing.T) {
		t.Parallel()

		style, err := chroma.NewStyle(testVariant())
		require.NoError(t, err)

		assert.Equal(t, "#ff00ff", style.Get(chromalib.KeywordNamespace).Colour.String())
		assert.Equal(t, "#888888", style.Get(chromalib.CommentSingle).Colour.String())
	})

	t.Run("mapped sub types reset category font attributes", func(t *testing.T) {
		t.Parallel()

		style, err := chroma.NewStyle(testVariant())
		require.NoError(t, err)

		typ := style.Get(chromalib.KeywordType)
		assert.Equal(t, chromalib.No, typ.Italic)
		assert.Equal(t, chromalib.Yes, typ.Bold)
		assert.Equal(t, chromalib.No, style.Get(chromalib.Keyword).Bold)
	})

	t.Run("drops alpha from translucent colors", func(t *testing.T) {
		t.Parallel()

		style, err := chroma.NewStyle(testVariant())
		require.NoError(t, err)

		assert.Equal(t, "#dcdde2", style.Get(chromalib.NameVariable).Colour.String())
	})

	t.Run("uses editor colors as background", func(t *testing.T) {
		t.Parallel()

		style, err := chroma.NewStyle(testVariant())
		require.NoError(t, err)

		bg := style.Get(chromalib.Background)
		assert.Equal(t, "#101010", bg.Background.String())
		assert.Equal(t, "#dddddd", bg.Colour.String())
	})
}

func TestStyleFromChroma(t *testing.T) {
	t.Parallel()

	style, err := chroma.NewStyle(testVariant())
	require.NoError(t, err)
	styleOf := chroma.StyleFromChroma(style)

	assert.Equal(t, maple.HighlightRule{Color: "#ff00ff", FontStyle: maple.FontStyleItalic}, styleOf(chromalib.Keyword))
	assert.Equal(t, maple.HighlightRule{Color: "#00ffff", FontWeight: maple.FontWeightBold}, styleOf(chromalib.KeywordType))
	assert.Equal(t, maple.Color("#dddddd"), styleOf(chromalib.Text).Color)
}

func TestTokenizer_TokenizeLines(t *testing.T) {
	t.Parallel()

	t.Run("splits tokens by line", func(t *testing.T) {
		t.Parallel()

		lines := chroma.NewTokenizer().TokenizeLines(testVariant(), "go", "// hi\npackage main")

		require.Len(t, lines, 2)
		assert.Equal(t, "// hi", text(lines[0]))
		assert.Equal(t, "package main", text(lines[1]))
		assert.Equal(t, maple.Color("#888888"), lines[0][0].Style.Color)
	})

	t.Run("styles keywords with the variant", func(t *testing.T) {
		t.Parallel()

		lines := chroma.NewTokenizer().TokenizeLines(testVariant(), "go", "package main")

		require.NotEmpty(t, lines)
		var found bool
		for _, tok := range lines[0] {
			if tok.Text == "package" {
				found = true
				assert.Equal(t, maple.HighlightRule{Color: "#ff00ff", FontStyle: maple.FontStyleItalic}, tok.Style)
			}
		}
		assert.True(t, found, "should find 'package' keyword token")
	})

	t.Run("returns nil for unsupported language", func(t *testing.T) {
		t.Parallel()

		lines := chroma.NewTokenizer().TokenizeLines(testVariant(), "nonexistent-language-xyz", "x")

		assert.Nil(t, lines)
	})

	t.Run("handles empty source", func(t *testing.T) {
		t.Parallel()

		lines := chroma.NewTokenizer().TokenizeLines(testVariant(), "go", "")

		assert.NotNil(t, lines)
		assert.Empty(t, lines)
	})
}

func TestDetector_DetectFromPath(t *testing.T) {
	t.Parallel()

	tests := []struct {
		path string
		want string
	}{
		{"sample.go", "Go"},
		{"testdata/sample.py", "Python"},
		{"notes.nosuchlanguage", ""},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, chroma.NewDetector().DetectFromPath(tt.path))
		})
	}
}

func text(tokens []maple.Span) string {
	var s string
	for _, tok := range tokens {
		s += tok.Text
	}
	return s
}
