package tui

import (
	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/blackcoderx/pm2md/pkg/render"
)

// handleKeyMsg processes keyboard input. handled is false for keys that
// should fall through to the viewport (scrolling).
func (m Model) handleKeyMsg(msg tea.KeyMsg) (Model, tea.Cmd, bool) {
	switch msg.String() {
	case "ctrl+c", "esc", "q":
		if m.cancel != nil {
			m.cancel()
		}
		return m, tea.Quit, true

	case "tab":
		return m.handleSwitchTarget(), nil, true

	case "r":
		return m.handleToggleRaw(), nil, true

	case "ctrl+y", "y":
		return m.handleCopy(), nil, true

	default:
		return m, nil, false
	}
}

// handleSwitchTarget cycles through the render targets.
func (m Model) handleSwitchTarget() Model {
	next := 0
	for i, t := range render.Targets {
		if t == m.target {
			next = (i + 1) % len(render.Targets)
		}
	}
	m.target = render.Targets[next]
	m.status = ""
	m.updateViewportContent()
	m.viewport.GotoTop()
	return m
}

// handleToggleRaw switches between rendered and source view.
func (m Model) handleToggleRaw() Model {
	m.raw = !m.raw
	m.status = ""
	m.updateViewportContent()
	return m
}

// handleCopy copies the Markdown source of the current target.
func (m Model) handleCopy() Model {
	doc := m.document()
	if doc == "" {
		return m
	}
	if err := clipboard.WriteAll(doc); err != nil {
		m.status = "copy failed: " + err.Error()
		return m
	}
	m.status = "copied " + m.target.String() + " markdown"
	return m
}
