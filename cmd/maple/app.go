package main

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/fwojciec/maple"
	maplehttp "github.com/fwojciec/maple/http"
	"github.com/fwojciec/maple/palette"
)

// ErrStale is returned by check when generated files differ from the
// compiled output.
var ErrStale = errors.New("generated files are out of date")

// Artifacts are the compiled theme family and its encoded files.
type Artifacts struct {
	Family   *maple.ThemeFamily
	Theme    []byte
	Manifest []byte
}

// Generator compiles the configured schemes into artifacts.
type Generator struct {
	Config Config
	Loader maple.SchemeLoader
	Model  maple.ColorModel
}

// Generate loads, compiles and encodes the theme family.
func (g *Generator) Generate(ctx context.Context) (*Artifacts, error) {
	schemes := palette.Schemes()
	if g.Config.Palette != "" {
		var err error
		if schemes, err = g.Loader.Load(g.Config.Palette); err != nil {
			return nil, fmt.Errorf("load palette: %w", err)
		}
	}

	c := maple.NewCompiler(g.Model)
	c.Strict = g.Config.Strict
	c.Workers = g.Config.Workers

	meta := g.Config.Metadata
	family, err := c.Compile(ctx, meta.Family, meta.Author, schemes)
	if err != nil {
		return nil, err
	}

	theme, err := maple.EncodeTheme(family)
	if err != nil {
		return nil, fmt.Errorf("encode theme: %w", err)
	}
	manifest, err := maple.NewManifest(meta, filepath.Base(g.Config.ThemePath)).Encode()
	if err != nil {
		return nil, err
	}

	return &Artifacts{Family: family, Theme: theme, Manifest: manifest}, nil
}

type artifactFile struct {
	Path string
	Data []byte
}

// files pairs each artifact with its output path.
func (a *Artifacts) files(cfg Config) []artifactFile {
	return []artifactFile{
		{Path: cfg.ThemePath, Data: a.Theme},
		{Path: cfg.ManifestPath, Data: a.Manifest},
	}
}

// BuildApp writes the theme file and the extension manifest.
type BuildApp struct {
	Generator *Generator
	Store     maple.ArtifactStore
	Logger    *log.Logger
}

// Run compiles the theme and writes both artifacts.
func (a *BuildApp) Run(ctx context.Context) error {
	art, err := a.Generator.Generate(ctx)
	if err != nil {
		return err
	}
	for _, v := range art.Family.Themes {
		a.Logger.Debug("compiled variant", "name", v.Name, "appearance", v.Appearance, "keys", len(v.Style.UI))
	}

	cfg := a.Generator.Config
	for _, f := range art.files(cfg) {
		if err := a.Store.Write(f.Path, f.Data); err != nil {
			return err
		}
	}

	a.Logger.Info("theme updated",
		"theme", cfg.ThemePath,
		"manifest", cfg.ManifestPath,
		"variants", len(art.Family.Themes),
	)
	return nil
}

// CheckApp compares the compiled artifacts with the files on disk.
type CheckApp struct {
	Generator *Generator
	Store     maple.ArtifactStore
	Differ    maple.Differ
	Out       io.Writer
	Logger    *log.Logger
}

// Run prints a diff for every stale artifact and returns ErrStale if any
// artifact differs.
func (a *CheckApp) Run(ctx context.Context) error {
	art, err := a.Generator.Generate(ctx)
	if err != nil {
		return err
	}

	stale := false
	for _, f := range art.files(a.Generator.Config) {
		current, err := a.Store.Read(f.Path)
		if err != nil {
			return err
		}
		if bytes.Equal(current, f.Data) {
			continue
		}
		stale = true
		fmt.Fprintf(a.Out, "--- %s\n%s", f.Path, a.Differ.Diff(string(current), string(f.Data)))
	}

	if stale {
		return ErrStale
	}
	a.Logger.Info("theme up to date")
	return nil
}

// PreviewApp shows the compiled theme family interactively.
type PreviewApp struct {
	Generator *Generator
	Previewer maple.Previewer
}

// Run compiles the theme and blocks until the preview exits.
func (a *PreviewApp) Run(ctx context.Context) error {
	art, err := a.Generator.Generate(ctx)
	if err != nil {
		return err
	}
	return a.Previewer.Preview(ctx, art.Family)
}

// SchemaApp downloads the theme JSON schema.
type SchemaApp struct {
	Fetcher maple.SchemaFetcher
	Store   maple.ArtifactStore
	Dir     string
	Version string // Empty fetches maplehttp.DefaultSchemaVersion
	Logger  *log.Logger
}

// Run fetches the schema and writes it to <Dir>/<version>.json.
func (a *SchemaApp) Run(ctx context.Context) error {
	version := a.Version
	if version == "" {
		version = maplehttp.DefaultSchemaVersion
	}

	data, err := a.Fetcher.Fetch(ctx, version)
	if err != nil {
		return err
	}

	path := filepath.Join(a.Dir, version+".json")
	if err := a.Store.Write(path, data); err != nil {
		return err
	}
	a.Logger.Info("schema updated", "version", version, "path", path)
	return nil
}
