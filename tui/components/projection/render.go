package projection

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// View renders the widget: every visible element shifted toward the
// vanishing point and faded by its distance from the camera.
func (m Model) View() string {
	if m.help.ShowAll {
		return m.help.View()
	}

	var b strings.Builder

	// Header
	var header strings.Builder
	if m.title != "" {
		header.WriteString(m.theme.Title.Render(m.title))
		header.WriteString(" ")
	}
	header.WriteString(m.theme.Muted.Render(
		fmt.Sprintf("panel %d/%d · depth %d", m.anim.Panel()+1, m.anim.PanelCount(), m.anim.Current())))
	b.WriteString(header.String())
	b.WriteString("\n\n")

	// Layers render far-to-near so nearer elements read as on top
	offsets := m.anim.Offsets()
	for i := len(offsets) - 1; i >= 0; i-- {
		o := offsets[i]
		if !m.visible(o.Z) {
			continue
		}

		indent := m.indentFor(o.Z)
		style := m.styleFor(o.Z, o.Layer == m.anim.Panel() && !o.Child)

		content := o.Node.Content
		if content == "" {
			content = o.ID
		}
		for _, line := range strings.Split(strings.TrimRight(content, "\n"), "\n") {
			b.WriteString(strings.Repeat(" ", indent))
			if o.Child {
				b.WriteString("  ")
			}
			b.WriteString(style.Render(line))
			b.WriteString("\n")
		}
	}

	// Footer: short help
	b.WriteString("\n")
	b.WriteString(m.help.View())

	return b.String()
}

// visible reports whether an element at the given offset is on screen:
// elements the camera has passed (positive offset) and elements beyond the
// far plane are culled.
func (m Model) visible(z int) bool {
	if z > 0 {
		return false
	}
	return -z <= m.distance
}

// indentFor maps a depth offset to an indentation column: deeper elements
// shift toward the vanishing point.
func (m Model) indentFor(z int) int {
	if z >= 0 {
		return 0
	}
	depth := -z
	if depth > m.distance {
		depth = m.distance
	}

	maxIndent := int(m.origin * float64(m.width) / 2)
	if maxIndent <= 0 {
		maxIndent = 16
	}
	return depth * maxIndent / m.distance
}

// styleFor picks a fade rung from the theme based on distance from the
// camera. The foreground panel renders highlighted.
func (m Model) styleFor(z int, isPanel bool) lipgloss.Style {
	if isPanel && z == 0 {
		return m.theme.Highlight
	}

	depth := -z
	if depth < 0 {
		depth = 0
	}
	if depth > m.distance {
		depth = m.distance
	}

	rungs := len(m.theme.DepthRungs)
	rung := depth * rungs / (m.distance + 1)
	return m.theme.DepthStyle(rung)
}
