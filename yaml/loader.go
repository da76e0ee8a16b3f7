// Package yaml loads color schemes from YAML palette files.
package yaml

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/fwojciec/maple"
	"gopkg.in/yaml.v3"
)

// Compile-time interface verification.
var _ maple.SchemeLoader = (*Loader)(nil)

// ErrNoSchemes is returned for a palette file without schemes.
var ErrNoSchemes = errors.New("no schemes")

// Loader reads ordered color schemes from a YAML document of the form:
//
//	schemes:
//	  - name: Maple Dark
//	    dark: true
//	    base:
//	      red: "#ee8a8f"
//	    token:
//	      keyword:
//	        normal: "#cfb6f8"
//	    ui:
//	      background: "#1e1f24"
//
// Token and UI roles may be nested. Nested keys are joined with "." and a
// DEFAULT key names the role of the enclosing map itself.
type Loader struct{}

// NewLoader creates a new Loader.
func NewLoader() *Loader {
	return &Loader{}
}

type document struct {
	Schemes []scheme `yaml:"schemes"`
}

type scheme struct {
	Name  string            `yaml:"name"`
	Dark  bool              `yaml:"dark"`
	Base  map[string]string `yaml:"base"`
	Token map[string]any    `yaml:"token"`
	UI    map[string]any    `yaml:"ui"`
}

// Load reads the palette file at path.
func (l *Loader) Load(path string) ([]maple.ColorScheme, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	schemes, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return schemes, nil
}

// Decode reads schemes from r, preserving document order.
func Decode(r io.Reader) ([]maple.ColorScheme, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var doc document
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrNoSchemes
		}
		return nil, err
	}
	if len(doc.Schemes) == 0 {
		return nil, ErrNoSchemes
	}

	out := make([]maple.ColorScheme, 0, len(doc.Schemes))
	for i, s := range doc.Schemes {
		cs, err := s.colorScheme()
		if err != nil {
			name := s.Name
			if name == "" {
				name = fmt.Sprintf("#%d", i)
			}
			return nil, &maple.SchemeError{Scheme: name, Err: err}
		}
		out = append(out, cs)
	}
	return out, nil
}

// Unmarshal is Decode for an in-memory document.
func Unmarshal(data []byte) ([]maple.ColorScheme, error) {
	return Decode(bytes.NewReader(data))
}

func (s scheme) colorScheme() (maple.ColorScheme, error) {
	if s.Name == "" {
		return maple.ColorScheme{}, errors.New("missing name")
	}

	base := make(maple.BaseColor, len(s.Base))
	for hue, c := range s.Base {
		base[maple.Hue(hue)] = maple.Color(c)
	}

	token, err := roles("token", s.Token)
	if err != nil {
		return maple.ColorScheme{}, err
	}
	ui, err := roles("ui", s.UI)
	if err != nil {
		return maple.ColorScheme{}, err
	}

	return maple.ColorScheme{
		Name:   s.Name,
		IsDark: s.Dark,
		Base:   base,
		Token:  token,
		UI:     ui,
	}, nil
}

func roles(section string, m map[string]any) (map[string]maple.Color, error) {
	tree, err := maple.FromMap(m)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", section, err)
	}
	flat, err := maple.Flatten(tree)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", section, err)
	}
	if paths := maple.Collisions(tree); len(paths) > 0 {
		return nil, fmt.Errorf("%s: %w", section, &maple.CollisionError{Paths: paths})
	}

	out := make(map[string]maple.Color, len(flat))
	for role, v := range flat {
		c, ok := v.(string)
		if !ok {
			return nil, fmt.Errorf("%s: %w", section, &maple.StyleError{Path: role, Value: v})
		}
		out[role] = maple.Color(c)
	}
	return out, nil
}
