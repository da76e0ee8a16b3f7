// Package mock provides test doubles for the maple interfaces.
package mock

import (
	"context"

	"github.com/fwojciec/maple"
)

// Compile-time interface verification.
var (
	_ maple.ColorModel    = (*ColorModel)(nil)
	_ maple.SchemeLoader  = (*SchemeLoader)(nil)
	_ maple.ArtifactStore = (*ArtifactStore)(nil)
	_ maple.Differ        = (*Differ)(nil)
	_ maple.Previewer     = (*Previewer)(nil)
	_ maple.SchemaFetcher = (*SchemaFetcher)(nil)

	_ maple.Tokenizer        = (*Tokenizer)(nil)
	_ maple.LanguageDetector = (*LanguageDetector)(nil)
	_ maple.VariantRenderer  = (*VariantRenderer)(nil)
	_ maple.Clipboard        = (*Clipboard)(nil)
)

// ColorModel is a mock implementation of maple.ColorModel.
type ColorModel struct {
	AlphaFn        func(c maple.Color, alpha float64) (maple.Color, error)
	ContrastTextFn func(background maple.Color) (maple.Color, error)
	MixFn          func(a, b maple.Color, t float64) (maple.Color, error)
}

func (m *ColorModel) Alpha(c maple.Color, alpha float64) (maple.Color, error) {
	return m.AlphaFn(c, alpha)
}

func (m *ColorModel) ContrastText(background maple.Color) (maple.Color, error) {
	return m.ContrastTextFn(background)
}

func (m *ColorModel) Mix(a, b maple.Color, t float64) (maple.Color, error) {
	return m.MixFn(a, b, t)
}

// SchemeLoader is a mock implementation of maple.SchemeLoader.
type SchemeLoader struct {
	LoadFn func(path string) ([]maple.ColorScheme, error)
}

func (l *SchemeLoader) Load(path string) ([]maple.ColorScheme, error) {
	return l.LoadFn(path)
}

// ArtifactStore is a mock implementation of maple.ArtifactStore.
type ArtifactStore struct {
	ReadFn  func(path string) ([]byte, error)
	WriteFn func(path string, data []byte) error
}

func (s *ArtifactStore) Read(path string) ([]byte, error) {
	return s.ReadFn(path)
}

func (s *ArtifactStore) Write(path string, data []byte) error {
	return s.WriteFn(path, data)
}

// Differ is a mock implementation of maple.Differ.
type Differ struct {
	DiffFn func(old, new string) string
}

func (d *Differ) Diff(old, new string) string {
	return d.DiffFn(old, new)
}

// Previewer is a mock implementation of maple.Previewer.
type Previewer struct {
	PreviewFn func(ctx context.Context, family *maple.ThemeFamily) error
}

func (p *Previewer) Preview(ctx context.Context, family *maple.ThemeFamily) error {
	return p.PreviewFn(ctx, family)
}

// SchemaFetcher is a mock implementation of maple.SchemaFetcher.
type SchemaFetcher struct {
	FetchFn func(ctx context.Context, version string) ([]byte, error)
}

func (f *SchemaFetcher) Fetch(ctx context.Context, version string) ([]byte, error) {
	return f.FetchFn(ctx, version)
}

// Tokenizer is a mock implementation of maple.Tokenizer.
type Tokenizer struct {
	TokenizeLinesFn func(v maple.ThemeVariant, language, source string) [][]maple.Span
}

func (t *Tokenizer) TokenizeLines(v maple.ThemeVariant, language, source string) [][]maple.Span {
	return t.TokenizeLinesFn(v, language, source)
}

// LanguageDetector is a mock implementation of maple.LanguageDetector.
type LanguageDetector struct {
	DetectFromPathFn func(path string) string
}

func (d *LanguageDetector) DetectFromPath(path string) string {
	return d.DetectFromPathFn(path)
}

// VariantRenderer is a mock implementation of maple.VariantRenderer.
type VariantRenderer struct {
	RenderFn func(v maple.ThemeVariant, width int) string
}

func (r *VariantRenderer) Render(v maple.ThemeVariant, width int) string {
	return r.RenderFn(v, width)
}

// Clipboard is a mock implementation of maple.Clipboard.
type Clipboard struct {
	CopyFn func(content string) error
}

func (c *Clipboard) Copy(content string) error {
	return c.CopyFn(content)
}
