package tui

import (
	"context"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"

	"github.com/blackcoderx/pm2md/pkg/core"
	"github.com/blackcoderx/pm2md/pkg/render"
)

// newSpinner creates the loading spinner.
func newSpinner() spinner.Model {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(AccentColor)
	return s
}

// newGlamourRenderer creates a renderer wrapped to width. It returns nil
// if glamour cannot be configured; the view then shows raw Markdown.
func newGlamourRenderer(width int) *glamour.TermRenderer {
	if width < 40 {
		width = 40
	}
	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return nil
	}
	return renderer
}

// InitialModel creates the preview model for the collection at url.
// The fetch runs under a child of ctx that is cancelled when the user quits.
func InitialModel(ctx context.Context, fetcher core.Fetcher, url string, target render.Target, opts render.Options) Model {
	ctx, cancel := context.WithCancel(ctx)
	return Model{
		ctx:      ctx,
		cancel:   cancel,
		spinner:  newSpinner(),
		renderer: newGlamourRenderer(80),
		fetcher:  fetcher,
		url:      url,
		opts:     opts,
		target:   target,
		loading:  true,
	}
}

// Init starts the spinner and the fetch.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		m.spinner.Tick,
		fetchCollection(m.ctx, m.fetcher, m.url),
	)
}

// fetchCollection runs the fetch as a Bubble Tea command.
func fetchCollection(ctx context.Context, fetcher core.Fetcher, url string) tea.Cmd {
	return func() tea.Msg {
		c, err := fetcher.Fetch(ctx, url)
		return collectionMsg{collection: c, err: err}
	}
}
