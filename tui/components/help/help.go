// Package help provides an embeddable key-binding help overlay: a one-line
// short view and a scrollable full view rendered as a centered modal.
package help

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/grovetools/projection/tui/theme"
)

// KeyMap is any keymap that can describe its bindings.
type KeyMap interface {
	ShortHelp() []key.Binding
	FullHelp() [][]key.Binding
}

// Model represents an embeddable help component
type Model struct {
	Keys    KeyMap
	ShowAll bool
	Width   int
	Height  int
	Theme   *theme.Theme
	Title   string

	viewport viewport.Model
}

// New creates a new help model with default settings
func New(keys KeyMap) Model {
	vp := viewport.New(0, 0)
	// Disable mouse events for the viewport, as they would interfere with
	// the widget's own wheel handling.
	vp.MouseWheelEnabled = false
	return Model{
		Keys:     keys,
		Theme:    theme.DefaultTheme,
		viewport: vp,
	}
}

// WithTitle sets the title shown above the full help view.
func (m Model) WithTitle(title string) Model {
	m.Title = title
	return m
}

// Toggle switches between the short and full help views.
func (m *Model) Toggle() {
	m.ShowAll = !m.ShowAll
	if m.ShowAll {
		m.setViewportContent()
	}
}

// SetSize updates the component's dimensions.
func (m *Model) SetSize(width, height int) {
	m.Width = width
	m.Height = height
	if m.ShowAll {
		m.setViewportContent()
	}
}

// Update handles messages for the help component
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)

	case tea.KeyMsg:
		if m.ShowAll {
			if msg.Type == tea.KeyEsc || msg.String() == "?" || msg.String() == "q" {
				m.Toggle()
				return m, nil
			}
			m.viewport, cmd = m.viewport.Update(msg)
			return m, cmd
		}
	}

	return m, nil
}

// View renders the help component
func (m Model) View() string {
	if m.Theme == nil {
		m.Theme = theme.DefaultTheme
	}

	if m.ShowAll {
		content := m.viewport.View()
		return lipgloss.Place(m.Width, m.Height, lipgloss.Center, lipgloss.Center, content)
	}

	return m.viewShort()
}

// viewShort renders the compact, single-line help view.
func (m Model) viewShort() string {
	if m.Keys == nil {
		return ""
	}

	var pairs []string
	for _, binding := range m.Keys.ShortHelp() {
		if !binding.Enabled() {
			continue
		}
		keys := binding.Help().Key
		desc := binding.Help().Desc
		if keys != "" && desc != "" {
			pairs = append(pairs, fmt.Sprintf("%s %s",
				m.Theme.Highlight.Render(keys),
				m.Theme.Muted.Render(desc)))
		}
	}

	return strings.Join(pairs, m.Theme.Muted.Render(" • "))
}

func (m *Model) setViewportContent() {
	var b strings.Builder

	if m.Title != "" {
		b.WriteString(m.Theme.Title.Render(m.Title))
		b.WriteString("\n")
	}

	if m.Keys != nil {
		for _, group := range m.Keys.FullHelp() {
			for _, binding := range group {
				if !binding.Enabled() {
					continue
				}
				keys := binding.Help().Key
				desc := binding.Help().Desc
				if keys == "" && desc != "" {
					// A binding with no keys acts as a section header
					b.WriteString("\n")
					b.WriteString(m.Theme.Bold.Render(desc))
					b.WriteString("\n")
					continue
				}
				b.WriteString(fmt.Sprintf("  %s  %s\n",
					m.Theme.Highlight.Render(fmt.Sprintf("%-12s", keys)),
					desc))
			}
		}
	}

	content := m.Theme.Box.Render(b.String())

	width := lipgloss.Width(content)
	height := m.Height - 4
	if height < 5 {
		height = 5
	}
	if contentHeight := lipgloss.Height(content); contentHeight < height {
		height = contentHeight
	}

	m.viewport.Width = width
	m.viewport.Height = height
	m.viewport.SetContent(content)
}
