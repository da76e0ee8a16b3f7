package lipgloss_test

import (
	"io"
	"strings"
	"testing"

	lipglosslib "github.com/charmbracelet/lipgloss"
	"github.com/fwojciec/maple"
	"github.com/fwojciec/maple/lipgloss"
	"github.com/fwojciec/maple/mock"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
)

func asciiRenderer() *lipglosslib.Renderer {
	return lipglosslib.NewRenderer(nil, termenv.WithProfile(termenv.Ascii))
}

// trueColorRenderer creates a lipgloss renderer that outputs true colors.
func trueColorRenderer() *lipglosslib.Renderer {
	r := lipglosslib.NewRenderer(io.Discard)
	r.SetColorProfile(termenv.TrueColor)
	return r
}

func testVariant() maple.ThemeVariant {
	return maple.ThemeVariant{
		Appearance: maple.AppearanceDark,
		Name:       "Test Dark",
		Style: maple.ThemeStyle{
			UI: maple.FlatStyle{
				"background":                    maple.Color("#101010"),
				"text":                          maple.Color("#eeeeee"),
				"editor.background":             maple.Color("#000000"),
				"editor.foreground":             maple.Color("#ffffff"),
				"editor.active_line.background": maple.Color("#ffffff80"),
				"terminal.ansi.red":             maple.Color("#ff0000"),
				"players":                       []maple.Player{{Cursor: "#ffffff"}},
			},
		},
	}
}

func TestRenderer_Render(t *testing.T) {
	t.Parallel()

	t.Run("lists swatches with their values", func(t *testing.T) {
		t.Parallel()

		out := lipgloss.NewRenderer(lipgloss.WithRenderer(asciiRenderer())).Render(testVariant(), 80)

		assert.Contains(t, out, "Test Dark (dark)")
		assert.Contains(t, out, "background")
		assert.Contains(t, out, "#101010")
		assert.Contains(t, out, "#ffffff80")
		assert.NotContains(t, out, "players")
	})

	t.Run("draws the plain sample without a tokenizer", func(t *testing.T) {
		t.Parallel()

		out := lipgloss.NewRenderer(
			lipgloss.WithRenderer(asciiRenderer()),
			lipgloss.WithSample("go", "package main\n"),
		).Render(testVariant(), 0)

		assert.Contains(t, out, "package main")
	})

	t.Run("highlights tokens from the tokenizer", func(t *testing.T) {
		t.Parallel()

		tokenizer := &mock.Tokenizer{
			TokenizeLinesFn: func(v maple.ThemeVariant, language, source string) [][]maple.Span {
				assert.Equal(t, "Test Dark", v.Name)
				assert.Equal(t, "go", language)
				return [][]maple.Span{{
					{Text: "func", Style: maple.HighlightRule{Color: "#ff00ff", FontStyle: maple.FontStyleItalic}},
				}}
			},
		}

		out := lipgloss.NewRenderer(
			lipgloss.WithRenderer(trueColorRenderer()),
			lipgloss.WithTokenizer(tokenizer),
			lipgloss.WithSample("go", "func"),
		).Render(testVariant(), 40)

		assert.Contains(t, out, "38;2;255;0;255")
		assert.Contains(t, out, "func")
	})

	t.Run("composites translucent colors over the editor background", func(t *testing.T) {
		t.Parallel()

		out := lipgloss.NewRenderer(lipgloss.WithRenderer(trueColorRenderer())).Render(testVariant(), 40)

		// #ffffff at 50% over #000000.
		assert.Contains(t, out, "48;2;128;128;128")
	})

	t.Run("renders both terminal rows", func(t *testing.T) {
		t.Parallel()

		out := lipgloss.NewRenderer(lipgloss.WithRenderer(trueColorRenderer())).Render(testVariant(), 40)

		assert.Contains(t, out, "48;2;255;0;0")
		sections := strings.Split(out, "\n\n")
		assert.Len(t, sections, 4)
	})
}
