package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/blackcoderx/pm2md/pkg/render"
)

// View renders the entire TUI to a string.
func (m Model) View() string {
	if !m.ready {
		return "Initializing..."
	}

	var b strings.Builder

	if m.loading {
		b.WriteString(StatusActiveStyle.Render(m.spinner.View() + " fetching " + m.url))
		b.WriteString("\n")
	} else {
		b.WriteString(m.viewport.View())
		b.WriteString("\n")
	}

	b.WriteString(m.renderFooter())
	return b.String()
}

// document returns the Markdown of the current target, or "" before the
// collection has loaded.
func (m Model) document() string {
	if m.collection == nil {
		return ""
	}
	return render.Render(m.collection, m.target, m.opts)
}

// updateViewportContent re-renders the document into the viewport.
func (m *Model) updateViewportContent() {
	if !m.ready {
		return
	}

	doc := m.document()
	if doc == "" {
		m.viewport.SetContent("")
		return
	}

	if m.raw || m.renderer == nil {
		m.viewport.SetContent(doc)
		return
	}

	rendered, err := m.renderer.Render(doc)
	if err != nil {
		m.viewport.SetContent(doc)
		return
	}
	m.viewport.SetContent(rendered)
}

// renderFooter renders the target/status on the left and shortcuts on the right.
func (m Model) renderFooter() string {
	left := FooterAppNameStyle.Render("pm2md") + FooterTargetStyle.Render(m.target.String())
	if m.raw {
		left += FooterInfoStyle.Render("source")
	}
	if m.status != "" {
		left += FooterInfoStyle.Render(m.status)
	}

	parts := []string{
		ShortcutKeyStyle.Render("tab") + ShortcutDescStyle.Render(" target"),
		ShortcutKeyStyle.Render("r") + ShortcutDescStyle.Render(" source"),
		ShortcutKeyStyle.Render("y") + ShortcutDescStyle.Render(" copy"),
		ShortcutKeyStyle.Render("q") + ShortcutDescStyle.Render(" quit"),
	}
	right := strings.Join(parts, "    ")

	gap := m.width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 2 {
		gap = 2
	}

	return FooterStyle.Width(m.width).Render(left + strings.Repeat(" ", gap) + right)
}
