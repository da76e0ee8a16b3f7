// Package lipgloss renders terminal samples of compiled themes using the
// Lipgloss styling library.
package lipgloss

import (
	"strings"

	lipglosslib "github.com/charmbracelet/lipgloss"
	"github.com/fwojciec/maple"
	"github.com/fwojciec/maple/colorful"
)

// Compile-time interface verification.
var _ maple.VariantRenderer = (*Renderer)(nil)

// SwatchKeys are the UI keys shown as color swatches, in display order.
var SwatchKeys = []string{
	"background",
	"text",
	"text.accent",
	"text.muted",
	"border",
	"border.focused",
	"editor.background",
	"editor.active_line.background",
	"element.selected",
	"created",
	"modified",
	"deleted",
	"success",
	"info",
	"warning",
	"error",
}

// DefaultSampleLanguage and DefaultSample are the code shown when no sample
// is configured.
const (
	DefaultSampleLanguage = "go"
	DefaultSample         = `// Package greet says hello.
package greet

import "fmt"

const defaultName = "world"

// Greeter greets people.
type Greeter struct {
	Name  string
	Times int
}

func (g *Greeter) Greet() error {
	for i := 0; i < g.Times; i++ {
		fmt.Printf("hello, %s!\n", g.Name)
	}
	return nil
}
`
)

// Renderer draws UI swatches, the ANSI palette and a highlighted code sample
// for a theme variant.
type Renderer struct {
	renderer  *lipglosslib.Renderer
	tokenizer maple.Tokenizer
	language  string
	sample    string
}

// Option configures a Renderer.
type Option func(*Renderer)

// WithRenderer sets the lipgloss renderer. Useful for testing with a fixed
// color profile.
func WithRenderer(r *lipglosslib.Renderer) Option {
	return func(rr *Renderer) { rr.renderer = r }
}

// WithTokenizer sets the tokenizer used to highlight the sample.
func WithTokenizer(t maple.Tokenizer) Option {
	return func(rr *Renderer) { rr.tokenizer = t }
}

// WithSample sets the code sample and its language.
func WithSample(language, source string) Option {
	return func(rr *Renderer) {
		rr.language = language
		rr.sample = source
	}
}

// NewRenderer creates a Renderer. Without a tokenizer the sample is drawn in
// the editor foreground color.
func NewRenderer(opts ...Option) *Renderer {
	r := &Renderer{
		renderer: lipglosslib.DefaultRenderer(),
		language: DefaultSampleLanguage,
		sample:   DefaultSample,
	}
	for _, o := range opts {
		o(r)
	}
	return r
}

// Render returns the sample for v, lines padded to width.
func (r *Renderer) Render(v maple.ThemeVariant, width int) string {
	p := painter{r: r.renderer, ui: v.Style.UI}
	p.bg = p.key("editor.background", "background")
	p.fg = p.key("editor.foreground", "text")

	var sections []string
	sections = append(sections, r.header(v))
	sections = append(sections, r.swatches(p))
	sections = append(sections, r.terminal(p))
	sections = append(sections, r.code(v, p, width))
	return strings.Join(sections, "\n\n")
}

func (r *Renderer) header(v maple.ThemeVariant) string {
	title := r.renderer.NewStyle().Bold(true).Render(v.Name)
	return title + " (" + string(v.Appearance) + ")"
}

func (r *Renderer) swatches(p painter) string {
	width := 0
	for _, k := range SwatchKeys {
		if _, ok := p.ui[k].(maple.Color); ok && len(k) > width {
			width = len(k)
		}
	}

	var lines []string
	for _, k := range SwatchKeys {
		c, ok := p.ui[k].(maple.Color)
		if !ok {
			continue
		}
		swatch := r.renderer.NewStyle().Background(p.solid(c)).Render("    ")
		lines = append(lines, swatch+" "+k+strings.Repeat(" ", width-len(k))+"  "+string(c))
	}
	return strings.Join(lines, "\n")
}

func (r *Renderer) terminal(p painter) string {
	var rows []string
	for _, bright := range []bool{false, true} {
		var cells []string
		for _, hue := range maple.ANSIHues {
			key := "terminal.ansi." + maple.BrightPrefixNamer(hue, bright)
			c, _ := p.ui[key].(maple.Color)
			cells = append(cells, r.renderer.NewStyle().Background(p.solid(c)).Render("   "))
		}
		rows = append(rows, strings.Join(cells, ""))
	}
	return strings.Join(rows, "\n")
}

func (r *Renderer) code(v maple.ThemeVariant, p painter, width int) string {
	base := r.renderer.NewStyle().Background(p.solid(p.bg)).Foreground(p.solid(p.fg))
	if width > 0 {
		base = base.Width(width)
	}

	var lines [][]maple.Span
	if r.tokenizer != nil {
		lines = r.tokenizer.TokenizeLines(v, r.language, r.sample)
	}
	if lines == nil {
		for _, l := range strings.Split(strings.TrimSuffix(r.sample, "\n"), "\n") {
			lines = append(lines, []maple.Span{{Text: l}})
		}
	}

	out := make([]string, 0, len(lines))
	for _, line := range lines {
		var sb strings.Builder
		for _, tok := range line {
			sb.WriteString(p.token(tok).Render(tok.Text))
		}
		out = append(out, base.Render(sb.String()))
	}
	return strings.Join(out, "\n")
}

// painter converts theme colors to lipgloss colors. Translucent colors are
// composited over the editor background.
type painter struct {
	r  *lipglosslib.Renderer
	ui maple.FlatStyle
	bg maple.Color
	fg maple.Color
}

func (p painter) key(keys ...string) maple.Color {
	for _, k := range keys {
		if c, ok := p.ui[k].(maple.Color); ok {
			return c
		}
	}
	return ""
}

func (p painter) solid(c maple.Color) lipglosslib.TerminalColor {
	rgb, alpha, err := colorful.Parse(c)
	if err != nil {
		return lipglosslib.NoColor{}
	}
	if alpha < 1 {
		if bg, _, err := colorful.Parse(p.bg); err == nil {
			rgb = bg.BlendRgb(rgb, alpha)
		}
	}
	return lipglosslib.Color(rgb.Clamped().Hex())
}

func (p painter) token(tok maple.Span) lipglosslib.Style {
	s := p.r.NewStyle().Background(p.solid(p.bg))
	color := tok.Style.Color
	if color == "" {
		color = p.fg
	}
	s = s.Foreground(p.solid(color))
	if bg := tok.Style.BackgroundColor; bg != "" {
		s = s.Background(p.solid(bg))
	}
	switch tok.Style.FontStyle {
	case maple.FontStyleItalic, maple.FontStyleOblique:
		s = s.Italic(true)
	}
	if tok.Style.FontWeight >= maple.FontWeightBold {
		s = s.Bold(true)
	}
	return s
}
