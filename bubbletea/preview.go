// Package bubbletea provides an interactive theme previewer using the Bubble
// Tea framework.
package bubbletea

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/fwojciec/maple"
)

// Compile-time interface verification.
var _ maple.Previewer = (*Previewer)(nil)

// statusBarHeight is the number of lines below the viewport.
const statusBarHeight = 1

// Model is the Bubble Tea model for previewing a theme family one variant
// at a time.
type Model struct {
	family     *maple.ThemeFamily
	renderer   maple.VariantRenderer
	index      int
	viewport   viewport.Model
	help       help.Model
	keymap     KeyMap
	ready      bool
	width      int
	pendingKey string
	clipboard  maple.Clipboard
	status     string
}

// ModelOption configures a Model.
type ModelOption func(*Model)

// WithClipboard enables copying the current variant as a theme file.
func WithClipboard(c maple.Clipboard) ModelOption {
	return func(m *Model) { m.clipboard = c }
}

// NewModel creates a Model showing the first variant of family.
func NewModel(family *maple.ThemeFamily, renderer maple.VariantRenderer, opts ...ModelOption) Model {
	m := Model{
		family:   family,
		renderer: renderer,
		help:     help.New(),
		keymap:   DefaultKeyMap(),
	}
	for _, opt := range opts {
		opt(&m)
	}
	return m
}

// Variant returns the variant currently shown.
func (m Model) Variant() (maple.ThemeVariant, bool) {
	if m.family == nil || len(m.family.Themes) == 0 {
		return maple.ThemeVariant{}, false
	}
	return m.family.Themes[m.index], true
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.pendingKey == "g" && key.Matches(msg, m.keymap.GotoTop) {
			m.viewport.GotoTop()
			m.pendingKey = ""
			return m, nil
		}
		if key.Matches(msg, m.keymap.GotoTop) {
			m.pendingKey = "g"
			return m, nil
		}
		m.pendingKey = ""
		m.status = ""

		switch {
		case key.Matches(msg, m.keymap.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keymap.NextVariant):
			m.cycle(1)
			return m, nil
		case key.Matches(msg, m.keymap.PrevVariant):
			m.cycle(-1)
			return m, nil
		case key.Matches(msg, m.keymap.Yank):
			m.yank()
			return m, nil
		case key.Matches(msg, m.keymap.GotoBottom):
			m.viewport.GotoBottom()
			return m, nil
		case key.Matches(msg, m.keymap.HalfPageUp):
			m.viewport.HalfPageUp()
			return m, nil
		case key.Matches(msg, m.keymap.HalfPageDown):
			m.viewport.HalfPageDown()
			return m, nil
		case key.Matches(msg, m.keymap.Up):
			m.viewport.ScrollUp(1)
			return m, nil
		case key.Matches(msg, m.keymap.Down):
			m.viewport.ScrollDown(1)
			return m, nil
		}
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
		if !m.ready {
			m.viewport = viewport.New(msg.Width, msg.Height-statusBarHeight)
			m.ready = true
		} else {
			m.viewport.Width = msg.Width
			m.viewport.Height = msg.Height - statusBarHeight
		}
		m.viewport.SetContent(m.content())
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}
	return m.viewport.View() + "\n" + m.statusBar()
}

func (m *Model) cycle(delta int) {
	n := 0
	if m.family != nil {
		n = len(m.family.Themes)
	}
	if n < 2 {
		return
	}
	m.index = (m.index + delta + n) % n
	m.viewport.SetContent(m.content())
	m.viewport.GotoTop()
}

// yank copies the current variant as a single-theme family.
func (m *Model) yank() {
	v, ok := m.Variant()
	if !ok || m.clipboard == nil {
		return
	}
	data, err := maple.EncodeTheme(&maple.ThemeFamily{
		Name:   m.family.Name,
		Author: m.family.Author,
		Themes: []maple.ThemeVariant{v},
	})
	if err == nil {
		err = m.clipboard.Copy(string(data))
	}
	if err != nil {
		m.status = "copy failed: " + err.Error()
		return
	}
	m.status = "copied " + v.Name
}

func (m Model) content() string {
	v, ok := m.Variant()
	if !ok {
		return "No themes to preview."
	}
	return m.renderer.Render(v, m.width)
}

func (m Model) statusBar() string {
	v, ok := m.Variant()
	if !ok {
		return m.help.View(m.keymap)
	}
	if m.status != "" {
		return fmt.Sprintf("%d/%d %s  %s", m.index+1, len(m.family.Themes), v.Name, m.status)
	}
	return fmt.Sprintf("%d/%d %s  %s", m.index+1, len(m.family.Themes), v.Name, m.help.View(m.keymap))
}

// Previewer implements maple.Previewer using a Bubble Tea TUI.
type Previewer struct {
	renderer maple.VariantRenderer
	opts     []ModelOption
}

// NewPreviewer creates a Previewer drawing variants with renderer.
func NewPreviewer(renderer maple.VariantRenderer, opts ...ModelOption) *Previewer {
	return &Previewer{renderer: renderer, opts: opts}
}

// Preview displays family and blocks until the user exits or ctx is done.
func (p *Previewer) Preview(ctx context.Context, family *maple.ThemeFamily) error {
	m := NewModel(family, p.renderer, p.opts...)
	prog := tea.NewProgram(m,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
		tea.WithContext(ctx),
	)
	_, err := prog.Run()
	return err
}
