package maple

import "fmt"

// Source resolves a style tree node from a color scheme.
type Source interface {
	Resolve(s ColorScheme, m ColorModel) (Node, error)
}

// ColorSource resolves a single color from a color scheme.
type ColorSource interface {
	Source
	Color(s ColorScheme, m ColorModel) (Color, error)
}

// BaseRef refers to a base hue.
type BaseRef struct{ Hue Hue }

// Base returns a source for a base hue.
func Base(h Hue) BaseRef { return BaseRef{Hue: h} }

// Color implements ColorSource.
func (r BaseRef) Color(s ColorScheme, _ ColorModel) (Color, error) {
	c, ok := s.Base[r.Hue]
	if !ok || c == "" {
		return "", &ColorError{Palette: "base", Role: string(r.Hue)}
	}
	return c, nil
}

// Resolve implements Source.
func (r BaseRef) Resolve(s ColorScheme, m ColorModel) (Node, error) { return leaf(r, s, m) }

func (r BaseRef) String() string { return "base." + string(r.Hue) }

// UIRef refers to a UI role.
type UIRef struct{ Role string }

// UI returns a source for a UI role.
func UI(role string) UIRef { return UIRef{Role: role} }

// Color implements ColorSource.
func (r UIRef) Color(s ColorScheme, _ ColorModel) (Color, error) {
	c, ok := s.UI[r.Role]
	if !ok || c == "" {
		return "", &ColorError{Palette: "ui", Role: r.Role}
	}
	return c, nil
}

// Resolve implements Source.
func (r UIRef) Resolve(s ColorScheme, m ColorModel) (Node, error) { return leaf(r, s, m) }

func (r UIRef) String() string { return "ui." + r.Role }

// TokenRef refers to a syntax token role.
type TokenRef struct{ Role string }

// Token returns a source for a token role path such as "keyword.normal".
func Token(role string) TokenRef { return TokenRef{Role: role} }

// Color implements ColorSource.
func (r TokenRef) Color(s ColorScheme, _ ColorModel) (Color, error) {
	c, ok := s.Token[r.Role]
	if !ok || c == "" {
		return "", &ColorError{Palette: "token", Role: r.Role}
	}
	return c, nil
}

// Resolve implements Source.
func (r TokenRef) Resolve(s ColorScheme, m ColorModel) (Node, error) { return leaf(r, s, m) }

func (r TokenRef) String() string { return "token." + r.Role }

// AlphaRef applies an opacity to another color source. Dark and Light are the
// opacities used for dark and light schemes.
type AlphaRef struct {
	Src   ColorSource
	Dark  float64
	Light float64
}

// Alpha returns a source applying the same opacity on every scheme.
func Alpha(src ColorSource, alpha float64) AlphaRef {
	return AlphaRef{Src: src, Dark: alpha, Light: alpha}
}

// AlphaBy returns a source whose opacity depends on the scheme appearance.
func AlphaBy(src ColorSource, dark, light float64) AlphaRef {
	return AlphaRef{Src: src, Dark: dark, Light: light}
}

// Color implements ColorSource.
func (r AlphaRef) Color(s ColorScheme, m ColorModel) (Color, error) {
	c, err := r.Src.Color(s, m)
	if err != nil {
		return "", err
	}
	a := r.Light
	if s.IsDark {
		a = r.Dark
	}
	return m.Alpha(c, a)
}

// Resolve implements Source.
func (r AlphaRef) Resolve(s ColorScheme, m ColorModel) (Node, error) { return leaf(r, s, m) }

func (r AlphaRef) String() string {
	if r.Dark == r.Light {
		return fmt.Sprintf("alpha(%v, %g)", r.Src, r.Dark)
	}
	return fmt.Sprintf("alpha(%v, dark=%g, light=%g)", r.Src, r.Dark, r.Light)
}

// ContrastRef picks a text color legible on another color source.
type ContrastRef struct{ Background ColorSource }

// Contrast returns a source for text drawn on background.
func Contrast(background ColorSource) ContrastRef { return ContrastRef{Background: background} }

// Color implements ColorSource.
func (r ContrastRef) Color(s ColorScheme, m ColorModel) (Color, error) {
	bg, err := r.Background.Color(s, m)
	if err != nil {
		return "", err
	}
	return m.ContrastText(bg)
}

// Resolve implements Source.
func (r ContrastRef) Resolve(s ColorScheme, m ColorModel) (Node, error) { return leaf(r, s, m) }

func (r ContrastRef) String() string { return fmt.Sprintf("contrast(%v)", r.Background) }

// TerminalRef resolves to a group of the 16 ANSI terminal colors.
type TerminalRef struct{ Namer SlotNamer }

// Terminal returns a source for the terminal ANSI palette.
func Terminal(namer SlotNamer) TerminalRef { return TerminalRef{Namer: namer} }

// Resolve implements Source.
func (r TerminalRef) Resolve(s ColorScheme, m ColorModel) (Node, error) {
	palette, err := BuildTerminalPalette(m, s.Base, s.IsDark, r.Namer)
	if err != nil {
		return Node{}, err
	}
	n := Group()
	for _, hue := range ANSIHues {
		for _, bright := range []bool{false, true} {
			key := r.Namer(hue, bright)
			n.Entries = append(n.Entries, Entry{Key: key, Node: Leaf(palette[key])})
		}
	}
	return n, nil
}

func (r TerminalRef) String() string { return "terminal" }

// Player is the cursor and selection style of one collaborator.
type Player struct {
	Cursor     Color `json:"cursor"`
	Background Color `json:"background"`
	Selection  Color `json:"selection"`
}

// PlayersRef resolves to the single local player entry.
type PlayersRef struct {
	Cursor     ColorSource
	Background ColorSource
	Selection  ColorSource
}

// Players returns a source for the players array.
func Players(cursor, background, selection ColorSource) PlayersRef {
	return PlayersRef{Cursor: cursor, Background: background, Selection: selection}
}

// Resolve implements Source.
func (r PlayersRef) Resolve(s ColorScheme, m ColorModel) (Node, error) {
	var p Player
	for _, f := range []struct {
		src ColorSource
		dst *Color
	}{
		{r.Cursor, &p.Cursor},
		{r.Background, &p.Background},
		{r.Selection, &p.Selection},
	} {
		c, err := f.src.Color(s, m)
		if err != nil {
			return Node{}, err
		}
		*f.dst = c
	}
	return Leaf([]Player{p}), nil
}

func (r PlayersRef) String() string {
	return fmt.Sprintf("players(%v, %v, %v)", r.Cursor, r.Background, r.Selection)
}

func leaf(src ColorSource, s ColorScheme, m ColorModel) (Node, error) {
	c, err := src.Color(s, m)
	if err != nil {
		return Node{}, err
	}
	return Leaf(c), nil
}
